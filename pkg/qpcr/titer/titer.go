// Package titer converts cycle thresholds to viral titers through a fitted
// standard curve.
package titer

import (
	"math"

	"github.com/ukaji3/qpcr-go/pkg/qpcr/models"
)

// DefaultDilutionFactor scales copies/ml to the reported titer.
const DefaultDilutionFactor = 4520 * 2

// Result holds the values derived from one CT.
type Result struct {
	LogCopies   models.Reading
	CopiesPerML models.Reading
	Titer       models.Reading
}

// LogCopies inverts the standard curve CT = intercept + slope*logCopies.
func LogCopies(ct, slope, intercept float64) float64 {
	return (ct - intercept) / slope
}

// Compute derives log copies, copies/ml and titer from ct. An undetermined ct
// or a non-finite intermediate leaves every later value undetermined.
func Compute(ct models.Reading, slope, intercept, dilution float64) Result {
	if !ct.Valid {
		return Result{}
	}

	lc := models.Determined(LogCopies(ct.Value, slope, intercept))
	if !lc.Valid {
		return Result{}
	}
	copies := models.Determined(math.Pow(10, lc.Value))
	if !copies.Valid {
		return Result{LogCopies: lc}
	}
	return Result{
		LogCopies:   lc,
		CopiesPerML: copies,
		Titer:       models.Determined(copies.Value * dilution),
	}
}

// Apply fills the derived fields of each well from the curve.
func Apply(wells []models.Well, c *models.StandardCurve, dilution float64) {
	for i := range wells {
		r := Compute(wells[i].CT, c.Slope, c.Intercept, dilution)
		wells[i].LogCopies = r.LogCopies
		wells[i].CopiesPerML = r.CopiesPerML
		wells[i].Titer = r.Titer
	}
}
