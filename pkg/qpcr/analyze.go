package qpcr

import (
	"fmt"

	"github.com/ukaji3/qpcr-go/pkg/qpcr/curve"
	"github.com/ukaji3/qpcr-go/pkg/qpcr/models"
	"github.com/ukaji3/qpcr-go/pkg/qpcr/plate"
	"github.com/ukaji3/qpcr-go/pkg/qpcr/titer"
	"github.com/ukaji3/qpcr-go/pkg/qpcr/triplicate"
	"go.uber.org/zap"
)

// Analyze runs the whole computation over one plate: CT averaging, the
// standard curve fit, titer conversion, titer averaging and blank pruning.
// It touches no files.
func Analyze(in *Input, opts Options, logger *zap.Logger) (*models.Report, error) {
	wells, err := plate.Wells(in.CT, in.Layout)
	if err != nil {
		return nil, err
	}
	groups, err := plate.Triplicates(wells)
	if err != nil {
		return nil, err
	}

	var warnings []models.Warning

	avgCT := make([]models.Reading, len(groups))
	for _, t := range groups {
		res := triplicate.Average(memberValues(t, func(w *models.Well) models.Reading { return w.CT }), opts.Tolerance)
		t.AverageCT, t.SDCT, t.DegenerateCT = res.Average, res.SD, res.Degenerate
		for k, w := range t.Wells {
			w.CTOutlier = res.Outliers[k]
		}
		avgCT[t.Group] = res.Average

		if res.Degenerate && (!t.Blank() || t.IsStandard()) {
			warnings = append(warnings, degenerateWarning(t, "ct", opts.Tolerance))
		}
	}

	c, err := curve.FitStandards(avgCT, opts.StandardLogCopies, opts.PlotWidth, opts.PlotHeight)
	if err != nil {
		return nil, err
	}
	logger.Info("Fitted standard curve",
		zap.Float64("slope", c.Slope),
		zap.Float64("intercept", c.Intercept),
		zap.Float64("r_squared", c.RSquared))

	titer.Apply(wells, c, opts.DilutionFactor)

	for _, t := range groups {
		res := triplicate.Average(memberValues(t, func(w *models.Well) models.Reading { return w.Titer }), opts.TiterTolerance)
		t.AverageTiter, t.SDTiter, t.DegenerateTiter = res.Average, res.SD, res.Degenerate
		for k, w := range t.Wells {
			w.TiterOutlier = res.Outliers[k]
		}

		if res.Degenerate && !t.Blank() {
			warnings = append(warnings, degenerateWarning(t, "titer", opts.TiterTolerance))
		}
	}

	for _, w := range warnings {
		logger.Warn("Degenerate triplicate",
			zap.String("group", w.Group),
			zap.String("stage", w.Stage))
	}

	kept := plate.PruneBlank(wells)
	logger.Debug("Pruned blank wells",
		zap.Int("wells", len(wells)),
		zap.Int("kept", len(kept)))

	return &models.Report{
		Rows:     plate.ResultRows(kept, groups),
		Named:    plate.Summary(groups),
		Curve:    c,
		Warnings: warnings,
	}, nil
}

func memberValues(t *models.Triplicate, field func(*models.Well) models.Reading) []models.Reading {
	values := make([]models.Reading, len(t.Wells))
	for k, w := range t.Wells {
		values[k] = field(w)
	}
	return values
}

func degenerateWarning(t *models.Triplicate, stage string, tolerance float64) models.Warning {
	return models.Warning{
		Group: t.Label(),
		Stage: stage,
		Message: fmt.Sprintf("%v: every member deviates more than %g from the mean; reporting the unfiltered mean",
			models.ErrDegenerateTriplicate, tolerance),
	}
}
