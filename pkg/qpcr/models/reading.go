package models

import (
	"math"
	"strconv"
)

// UndeterminedLabel is how undetermined readings are rendered.
const UndeterminedLabel = "undetermined"

// Reading is a numeric value that may be undetermined, either because the
// instrument reported no amplification or because it was derived from such a
// reading.
type Reading struct {
	Value float64 `json:"value"`
	Valid bool    `json:"valid"`
}

// Determined wraps v. Non-finite values are undetermined.
func Determined(v float64) Reading {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Reading{}
	}
	return Reading{Value: v, Valid: true}
}

// Undetermined returns a missing reading.
func Undetermined() Reading {
	return Reading{}
}

func (r Reading) String() string {
	if !r.Valid {
		return UndeterminedLabel
	}
	return strconv.FormatFloat(r.Value, 'g', -1, 64)
}

// CellValue returns the value to store in a spreadsheet cell.
func (r Reading) CellValue() interface{} {
	if !r.Valid {
		return UndeterminedLabel
	}
	return r.Value
}
