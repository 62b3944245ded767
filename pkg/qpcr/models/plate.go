// Package models defines the data structures for a single qPCR plate run.
package models

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// Rows is the number of plate rows (A-H).
	Rows = 8
	// Columns is the number of plate columns (1-12).
	Columns = 12
	// Wells is the number of wells on the plate.
	Wells = Rows * Columns
	// GroupSize is the number of wells in a triplicate.
	GroupSize = 3
	// Spans is the number of triplicate groups per row.
	Spans = Columns / GroupSize
	// Groups is the number of triplicate groups on the plate.
	Groups = Rows * Spans

	// StandardSpan is the span (columns 1-3) holding the dilution series.
	StandardSpan = 0
	// ControlRow is the row (H) holding the device control. Its standard-span
	// group is a sample, not a dilution point.
	ControlRow = 7
	// StandardRows is the number of dilution points in the standard span,
	// rows A through G.
	StandardRows = Rows - 1
)

// SpanLabels are the layout column headers, indexed by span.
var SpanLabels = [Spans]string{"1-3", "4-6", "7-9", "10-12"}

// WellPosition identifies one physical well.
type WellPosition struct {
	// Row is the row index (0 = A).
	Row int `json:"row"`
	// Column is the column number (1-based).
	Column int `json:"column"`
}

// PositionFromIndex returns the position of the i-th well in row-major order.
func PositionFromIndex(i int) WellPosition {
	return WellPosition{Row: i / Columns, Column: i%Columns + 1}
}

// ParseWellPosition parses a label such as "B5".
func ParseWellPosition(s string) (WellPosition, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return WellPosition{}, fmt.Errorf("invalid well position %q", s)
	}
	row := int(s[0]) - 'A'
	col, err := strconv.Atoi(s[1:])
	if err != nil || row < 0 || row >= Rows || col < 1 || col > Columns {
		return WellPosition{}, fmt.Errorf("invalid well position %q", s)
	}
	return WellPosition{Row: row, Column: col}, nil
}

// Letter returns the row letter.
func (p WellPosition) Letter() string {
	return string(rune('A' + p.Row))
}

func (p WellPosition) String() string {
	return p.Letter() + strconv.Itoa(p.Column)
}

// Index returns the row-major well index.
func (p WellPosition) Index() int {
	return p.Row*Columns + p.Column - 1
}

// Span returns the triplicate group within the row.
func (p WellPosition) Span() int {
	return (p.Column - 1) / GroupSize
}

// Group returns the plate-wide triplicate group index.
func (p WellPosition) Group() int {
	return p.Row*Spans + p.Span()
}

// GroupLabel returns a label such as "B4-6" for the well's triplicate.
func (p WellPosition) GroupLabel() string {
	return p.Letter() + SpanLabels[p.Span()]
}

// IsStandard reports whether the well belongs to the dilution series.
func (p WellPosition) IsStandard() bool {
	return p.Span() == StandardSpan && p.Row != ControlRow
}

// PlateLayout names each triplicate group. An empty name marks a blank group.
type PlateLayout struct {
	Names [Rows][Spans]string `json:"names"`
}

// Name returns the test name loaded at the given row and span.
func (l PlateLayout) Name(row, span int) string {
	return l.Names[row][span]
}

// IsBlank reports whether the group at row and span was left empty.
func (l PlateLayout) IsBlank(row, span int) bool {
	return strings.TrimSpace(l.Names[row][span]) == ""
}
