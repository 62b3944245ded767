package models

// Well carries every value derived for one physical well.
type Well struct {
	Position WellPosition `json:"position"`
	// TestName is the layout name of the well's group; empty for blanks.
	TestName string `json:"test_name"`
	// CT is the raw cycle threshold.
	CT Reading `json:"ct"`
	// CTOutlier is set when CT was excluded from the group average.
	CTOutlier bool `json:"ct_outlier"`
	// LogCopies is log10 copies/ml back-calculated from CT.
	LogCopies Reading `json:"log_copies"`
	// CopiesPerML is 10^LogCopies.
	CopiesPerML Reading `json:"copies_per_ml"`
	// Titer is CopiesPerML scaled by the dilution factor.
	Titer Reading `json:"titer"`
	// TiterOutlier is set when Titer was excluded from the group average.
	TiterOutlier bool `json:"titer_outlier"`
}

// Blank reports whether the well's group has no layout name.
func (w Well) Blank() bool {
	return w.TestName == ""
}

// Triplicate is a group of three replicate wells.
type Triplicate struct {
	// Group is the plate-wide group index (0-31).
	Group int `json:"group"`
	// Row is the plate row (0 = A).
	Row int `json:"row"`
	// Span is the group within the row (0 = columns 1-3).
	Span int `json:"span"`
	// TestName is the layout name; empty for blanks.
	TestName string `json:"test_name"`
	// Wells holds the members in column order.
	Wells []*Well `json:"-"`

	AverageCT    Reading `json:"average_ct"`
	SDCT         Reading `json:"sd_ct"`
	AverageTiter Reading `json:"average_titer"`
	SDTiter      Reading `json:"sd_titer"`

	// DegenerateCT is set when every CT member deviated beyond tolerance.
	DegenerateCT bool `json:"degenerate_ct"`
	// DegenerateTiter is set when every titer member deviated beyond tolerance.
	DegenerateTiter bool `json:"degenerate_titer"`
}

// Label returns a label such as "B4-6".
func (t *Triplicate) Label() string {
	return WellPosition{Row: t.Row, Column: t.Span*GroupSize + 1}.GroupLabel()
}

// Blank reports whether the group has no layout name.
func (t *Triplicate) Blank() bool {
	return t.TestName == ""
}

// IsStandard reports whether the group is a dilution-series point.
func (t *Triplicate) IsStandard() bool {
	return t.Span == StandardSpan && t.Row != ControlRow
}

// IsControl reports whether the group is the device control.
func (t *Triplicate) IsControl() bool {
	return t.Span == StandardSpan && t.Row == ControlRow
}
