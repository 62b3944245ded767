// Package curve fits and plots the CT-on-log-copies standard curve.
package curve

import (
	"fmt"
	"math"

	"github.com/ukaji3/qpcr-go/pkg/qpcr/models"
	"gonum.org/v1/gonum/stat"
)

// MinStandardPoints is the number of dilution standards a fit requires.
const MinStandardPoints = 7

// DefaultLogCopies are the log10 copy numbers of the dilution series, from
// most to least dilute.
var DefaultLogCopies = []float64{4, 5, 6, 7, 8, 9, 10}

// StandardPoints pairs the standard-span averages with their known log copy
// numbers. avg is indexed by triplicate group. Row A holds the most
// concentrated standard, so rows are taken bottom-up; the control row is
// skipped.
func StandardPoints(avg []models.Reading, logCopies []float64) ([]models.CurvePoint, error) {
	if len(avg) != models.Groups {
		return nil, fmt.Errorf("%w: expected %d group averages, got %d",
			models.ErrMalformedInput, models.Groups, len(avg))
	}

	var standards []models.Reading
	for row := 0; row < models.Rows; row++ {
		if row == models.ControlRow {
			continue
		}
		standards = append(standards, avg[row*models.Spans+models.StandardSpan])
	}

	if len(logCopies) > len(standards) {
		return nil, fmt.Errorf("%w: %d log copy values but only %d standard rows",
			models.ErrInsufficientStandardData, len(logCopies), len(standards))
	}

	points := make([]models.CurvePoint, 0, len(logCopies))
	for i, lc := range logCopies {
		r := standards[len(logCopies)-1-i]
		if !r.Valid {
			pos := models.WellPosition{Row: len(logCopies) - 1 - i, Column: 1}
			return nil, fmt.Errorf("%w: standard %s (log copies %g) is undetermined",
				models.ErrInsufficientStandardData, pos.GroupLabel(), lc)
		}
		points = append(points, models.CurvePoint{LogCopies: lc, CT: r.Value})
	}
	return points, nil
}

// Fit regresses CT on log copies by ordinary least squares.
func Fit(points []models.CurvePoint) (*models.StandardCurve, error) {
	if len(points) < MinStandardPoints {
		return nil, fmt.Errorf("%w: %d standards, need %d",
			models.ErrInsufficientStandardData, len(points), MinStandardPoints)
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	distinct := make(map[float64]struct{})
	for i, p := range points {
		xs[i] = p.LogCopies
		ys[i] = p.CT
		distinct[p.LogCopies] = struct{}{}
	}
	if len(distinct) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 distinct log copy values",
			models.ErrInsufficientStandardData)
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	if slope == 0 || math.IsNaN(slope) || math.IsInf(slope, 0) {
		return nil, fmt.Errorf("%w: degenerate slope %g",
			models.ErrInsufficientStandardData, slope)
	}

	return &models.StandardCurve{
		Points:    points,
		Slope:     slope,
		Intercept: intercept,
		RSquared:  stat.RSquared(xs, ys, nil, intercept, slope),
	}, nil
}

// FitStandards extracts the standards from the group averages, fits them and
// renders the plot.
func FitStandards(avg []models.Reading, logCopies []float64, width, height int) (*models.StandardCurve, error) {
	points, err := StandardPoints(avg, logCopies)
	if err != nil {
		return nil, err
	}

	c, err := Fit(points)
	if err != nil {
		return nil, err
	}

	c.Image, err = Plot(c, width, height)
	if err != nil {
		return nil, fmt.Errorf("render standard curve: %w", err)
	}
	return c, nil
}
