package models

import (
	"errors"
	"fmt"
)

// ErrMalformedInput indicates a missing sheet, a wrong shape, or text where a
// number was expected.
var ErrMalformedInput = errors.New("malformed input")

// ErrInsufficientStandardData indicates the dilution series cannot support a fit.
var ErrInsufficientStandardData = errors.New("insufficient standard data")

// ErrDegenerateTriplicate indicates every member of a triplicate was an outlier.
var ErrDegenerateTriplicate = errors.New("degenerate triplicate")

// InputError represents a problem at a specific place in the input workbook.
type InputError struct {
	Sheet string
	Cell  string // A1 reference, empty when the problem is sheet-wide
	Err   error
}

func (e *InputError) Error() string {
	if e.Cell == "" {
		return fmt.Sprintf("sheet %q: %v", e.Sheet, e.Err)
	}
	return fmt.Sprintf("sheet %q cell %s: %v", e.Sheet, e.Cell, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// NewInputError creates a new InputError.
func NewInputError(sheet, cell string, err error) *InputError {
	return &InputError{
		Sheet: sheet,
		Cell:  cell,
		Err:   err,
	}
}
