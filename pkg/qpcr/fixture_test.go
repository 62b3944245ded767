package qpcr

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/qpcr-go/pkg/qpcr/models"
	"github.com/xuri/excelize/v2"
)

// plateFixture is a plate whose standards lie exactly on CT = 30 - 1.5*logCopies
// and whose samples have identical replicates.
type plateFixture struct {
	ct     []interface{}
	layout [models.Rows][models.Spans]string
}

func newPlateFixture() *plateFixture {
	p := &plateFixture{ct: make([]interface{}, models.Wells)}
	for i := range p.ct {
		pos := models.PositionFromIndex(i)
		switch {
		case pos.IsStandard():
			p.ct[i] = 30 - 1.5*float64(10-pos.Row)
		default:
			p.ct[i] = 20 + float64(pos.Group())/4
		}
	}
	for r := 0; r < models.Rows; r++ {
		for s := 0; s < models.Spans; s++ {
			p.layout[r][s] = fmt.Sprintf("sample %c%s", 'A'+r, models.SpanLabels[s])
		}
		p.layout[r][models.StandardSpan] = fmt.Sprintf("std %d", 10-r)
	}
	p.layout[models.ControlRow][models.StandardSpan] = "DC"
	return p
}

func (p *plateFixture) set(label string, values ...interface{}) {
	pos, err := models.ParseWellPosition(label)
	if err != nil {
		panic(err)
	}
	for k, v := range values {
		p.ct[pos.Index()+k] = v
	}
}

func (p *plateFixture) input(t *testing.T) *Input {
	t.Helper()
	in := &Input{CT: make([]models.Reading, models.Wells)}
	for i, v := range p.ct {
		switch x := v.(type) {
		case float64:
			in.CT[i] = models.Determined(x)
		case string:
			in.CT[i] = models.Undetermined()
		default:
			t.Fatalf("unexpected fixture value %T", v)
		}
	}
	in.Layout.Names = p.layout
	return in
}

// save writes the fixture as an instrument export: raw sheet with CTs in
// column I from row 45, layout table on the second sheet.
func (p *plateFixture) save(t *testing.T, dir string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	raw := f.GetSheetName(0)
	require.NoError(t, f.SetSheetName(raw, "Results"))
	require.NoError(t, f.SetCellValue("Results", "A1", "Block Type"))
	require.NoError(t, f.SetCellValue("Results", "I44", "CT"))
	for i, v := range p.ct {
		cell, _ := excelize.CoordinatesToCellName(9, 45+i)
		require.NoError(t, f.SetCellValue("Results", cell, v))
	}

	_, err := f.NewSheet("Layout")
	require.NoError(t, err)
	header := []interface{}{"", "1-3", "4-6", "7-9", "10-12"}
	require.NoError(t, f.SetSheetRow("Layout", "A1", &header))
	for r := 0; r < models.Rows; r++ {
		row := []interface{}{string(rune('A' + r))}
		for s := 0; s < models.Spans; s++ {
			row = append(row, p.layout[r][s])
		}
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		require.NoError(t, f.SetSheetRow("Layout", cell, &row))
	}

	path := filepath.Join(dir, "plate.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}
