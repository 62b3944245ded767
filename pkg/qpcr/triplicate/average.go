// Package triplicate averages replicate wells with outlier rejection.
package triplicate

import (
	"math"

	"github.com/ukaji3/qpcr-go/pkg/qpcr/models"
	"gonum.org/v1/gonum/stat"
)

// DefaultTolerance is the maximum deviation from the group mean a member may
// have and still count toward the average.
const DefaultTolerance = 0.5

// tieEpsilon is the relative difference below which two deviations count as
// equal when picking the member farthest from the mean. It is scaled by the
// magnitude of the values, so titers in the 1e7-1e12 range tie the same way
// CTs do.
const tieEpsilon = 1e-12

// Result is the outcome of averaging one triplicate.
type Result struct {
	// Average is the mean of the retained members.
	Average models.Reading
	// SD is the population standard deviation of all determined members,
	// taken before any were excluded.
	SD models.Reading
	// Outliers is parallel to the input values.
	Outliers []bool
	// Degenerate is set when every determined member was rejected. Average
	// then holds the unfiltered mean and no member is flagged.
	Degenerate bool
}

// Average computes the outlier-filtered mean of values.
//
// Rejection is iterative: while the member farthest from the mean of the
// remaining members is strictly more than tolerance away, it is flagged and
// removed, and the mean recomputed. Members tied for farthest are removed
// together. A member exactly tolerance away is kept. Undetermined members take
// no part in the mean or SD and are never flagged.
func Average(values []models.Reading, tolerance float64) Result {
	res := Result{Outliers: make([]bool, len(values))}

	var remaining []int
	var determined []float64
	for i, v := range values {
		if v.Valid {
			remaining = append(remaining, i)
			determined = append(determined, v.Value)
		}
	}
	if len(determined) == 0 {
		return res
	}

	mean, sd := stat.PopMeanStdDev(determined, nil)
	res.SD = models.Determined(sd)

	for len(remaining) > 0 {
		m := meanOf(values, remaining)

		var worst float64
		for _, i := range remaining {
			worst = math.Max(worst, math.Abs(values[i].Value-m))
		}
		if worst <= tolerance {
			res.Average = models.Determined(m)
			return res
		}

		tie := tieEpsilon * math.Max(1, math.Abs(m)+worst)
		kept := make([]int, 0, len(remaining))
		for _, i := range remaining {
			if math.Abs(values[i].Value-m) >= worst-tie {
				res.Outliers[i] = true
				continue
			}
			kept = append(kept, i)
		}
		remaining = kept
	}

	res.Degenerate = true
	res.Outliers = make([]bool, len(values))
	res.Average = models.Determined(mean)
	return res
}

func meanOf(values []models.Reading, idx []int) float64 {
	vals := make([]float64, len(idx))
	for k, i := range idx {
		vals[k] = values[i].Value
	}
	return stat.Mean(vals, nil)
}
