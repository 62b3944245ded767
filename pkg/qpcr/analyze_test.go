package qpcr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/qpcr-go/pkg/qpcr/models"
	"go.uber.org/zap"
)

func findRow(rows []models.ResultRow, label string) (models.ResultRow, bool) {
	for _, r := range rows {
		if r.Position.String() == label {
			return r, true
		}
	}
	return models.ResultRow{}, false
}

func TestAnalyzePerfectCurve(t *testing.T) {
	rep, err := Analyze(newPlateFixture().input(t), DefaultOptions(), zap.NewNop())
	require.NoError(t, err)

	assert.InDelta(t, -1.5, rep.Curve.Slope, 1e-9)
	assert.InDelta(t, 30.0, rep.Curve.Intercept, 1e-9)
	assert.InDelta(t, 1.0, rep.Curve.RSquared, 1e-9)
	assert.NotEmpty(t, rep.Curve.Image)

	assert.Len(t, rep.Rows, models.Wells)
	assert.Len(t, rep.Named, models.Groups-7)
	assert.Empty(t, rep.Warnings)

	// Standard A1-3 back-calculates to its own dilution.
	a1, ok := findRow(rep.Rows, "A1")
	require.True(t, ok)
	assert.InDelta(t, 10.0, a1.LogCopies.Value, 1e-9)
	assert.InDelta(t, 15.0, a1.AverageCT.Value, 1e-9)
}

func TestAnalyzeOutlierTriplicate(t *testing.T) {
	p := newPlateFixture()
	p.set("A4", 25.0, 25.0, 40.0)

	rep, err := Analyze(p.input(t), DefaultOptions(), zap.NewNop())
	require.NoError(t, err)

	a4, _ := findRow(rep.Rows, "A4")
	a6, _ := findRow(rep.Rows, "A6")
	require.NotNil(t, a4.AverageCT)
	assert.InDelta(t, 25.0, a4.AverageCT.Value, 1e-9)
	assert.False(t, a4.Outlier)
	assert.True(t, a6.Outlier)
	assert.Nil(t, a6.AverageCT)
}

func TestAnalyzeBlankGroup(t *testing.T) {
	p := newPlateFixture()
	p.layout[1][1] = "" // B4-6

	rep, err := Analyze(p.input(t), DefaultOptions(), zap.NewNop())
	require.NoError(t, err)

	assert.Len(t, rep.Rows, models.Wells-3)
	for _, label := range []string{"B4", "B5", "B6"} {
		_, ok := findRow(rep.Rows, label)
		assert.False(t, ok, label)
	}
	assert.Len(t, rep.Named, models.Groups-7-1)
	for _, n := range rep.Named {
		assert.NotEqual(t, "sample B4-6", n.TestName)
	}
}

func TestAnalyzeUndeterminedWell(t *testing.T) {
	p := newPlateFixture()
	p.set("C5", "Undetermined")

	rep, err := Analyze(p.input(t), DefaultOptions(), zap.NewNop())
	require.NoError(t, err)

	c5, ok := findRow(rep.Rows, "C5")
	require.True(t, ok)
	assert.False(t, c5.CT.Valid)
	assert.False(t, c5.LogCopies.Valid)
	assert.False(t, c5.CopiesPerML.Valid)
	assert.False(t, c5.Titer.Valid)
	assert.False(t, c5.Outlier)

	// The rest of the group still averages.
	c4, _ := findRow(rep.Rows, "C4")
	require.NotNil(t, c4.AverageTiter)
	assert.True(t, c4.AverageTiter.Valid)
	assert.InDelta(t, c4.Titer.Value, c4.AverageTiter.Value, 1e-6)
}

func TestAnalyzeZeroCTIsUndetermined(t *testing.T) {
	p := newPlateFixture()
	p.set("C5", 0.0)

	// Go through the loader so the cell is parsed as the instrument wrote it.
	in, err := Load(p.save(t, t.TempDir()), DefaultOptions())
	require.NoError(t, err)

	rep, err := Analyze(in, DefaultOptions(), zap.NewNop())
	require.NoError(t, err)

	c5, ok := findRow(rep.Rows, "C5")
	require.True(t, ok)
	assert.False(t, c5.CT.Valid)
	assert.False(t, c5.LogCopies.Valid)
	assert.False(t, c5.CopiesPerML.Valid)
	assert.False(t, c5.Titer.Valid)
	assert.False(t, c5.Outlier)

	c4, _ := findRow(rep.Rows, "C4")
	require.NotNil(t, c4.AverageTiter)
	assert.InDelta(t, c4.Titer.Value, c4.AverageTiter.Value, 1e-6)
}

func TestAnalyzeDegenerateWarning(t *testing.T) {
	p := newPlateFixture()
	p.set("D7", 20.0, 22.0, 26.0)

	rep, err := Analyze(p.input(t), DefaultOptions(), zap.NewNop())
	require.NoError(t, err)

	var ct []models.Warning
	for _, w := range rep.Warnings {
		if w.Stage == "ct" {
			ct = append(ct, w)
		}
	}
	require.Len(t, ct, 1)
	assert.Equal(t, "D7-9", ct[0].Group)
	assert.Contains(t, ct[0].Message, models.ErrDegenerateTriplicate.Error())

	d7, _ := findRow(rep.Rows, "D7")
	assert.InDelta(t, 68.0/3, d7.AverageCT.Value, 1e-9)
	assert.False(t, d7.Outlier)
}

func TestAnalyzeInsufficientStandards(t *testing.T) {
	p := newPlateFixture()
	p.set("E1", "Undetermined", "Undetermined", "Undetermined")

	_, err := Analyze(p.input(t), DefaultOptions(), zap.NewNop())
	assert.ErrorIs(t, err, models.ErrInsufficientStandardData)
}

func TestAnalyzeWrongShape(t *testing.T) {
	in := newPlateFixture().input(t)
	in.CT = in.CT[:90]

	_, err := Analyze(in, DefaultOptions(), zap.NewNop())
	assert.ErrorIs(t, err, models.ErrMalformedInput)
}
