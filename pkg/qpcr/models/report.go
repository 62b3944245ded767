package models

// ResultRow is one line of the per-well results sheet. Group averages are only
// set on the first well of each triplicate.
type ResultRow struct {
	Position     WellPosition `json:"position"`
	CT           Reading      `json:"ct"`
	AverageCT    *Reading     `json:"average_ct,omitempty"`
	LogCopies    Reading      `json:"log_copies"`
	CopiesPerML  Reading      `json:"copies_per_ml"`
	Titer        Reading      `json:"titer"`
	AverageTiter *Reading     `json:"average_titer,omitempty"`
	SDTiter      *Reading     `json:"sd_titer,omitempty"`
	// Outlier marks a CT excluded from its group average.
	Outlier bool `json:"outlier"`
}

// NamedResultRow is one line of the per-test summary.
type NamedResultRow struct {
	TestName     string  `json:"test_name"`
	AverageTiter Reading `json:"average_titer"`
	SDTiter      Reading `json:"sd_titer"`
}

// Warning is a non-fatal problem found while processing a group.
type Warning struct {
	// Group is a label such as "B4-6".
	Group string `json:"group"`
	// Stage is "ct" or "titer".
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// Report is everything written to the output workbook.
type Report struct {
	Rows     []ResultRow      `json:"rows"`
	Named    []NamedResultRow `json:"named"`
	Curve    *StandardCurve   `json:"curve"`
	Warnings []Warning        `json:"warnings,omitempty"`
}
