package qpcr

import (
	"errors"
	"fmt"
	"os"

	"github.com/ukaji3/qpcr-go/pkg/qpcr/models"
	"github.com/ukaji3/qpcr-go/pkg/qpcr/parser"
)

// Input is the content of a plate-run workbook.
type Input struct {
	CT     []models.Reading
	Layout models.PlateLayout
}

// Load reads the raw CT values and the plate layout from the workbook at path.
func Load(path string, opts Options) (*Input, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	rng, err := parser.ParseRange(opts.CTRange)
	if err != nil {
		return nil, err
	}

	wb, err := parser.OpenWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	for _, idx := range []int{opts.CTSheet, opts.LayoutSheet} {
		if idx >= wb.SheetCount() {
			return nil, fmt.Errorf("%w: workbook has %d sheets, need sheet index %d",
				models.ErrMalformedInput, wb.SheetCount(), idx)
		}
	}

	rows, err := wb.Rows(opts.CTSheet)
	if err != nil {
		return nil, models.NewInputError(wb.SheetName(opts.CTSheet), "", err)
	}
	ct, err := parser.ExtractCT(wb.SheetName(opts.CTSheet), rows, rng)
	if err != nil {
		return nil, err
	}

	rows, err = wb.Rows(opts.LayoutSheet)
	if err != nil {
		return nil, models.NewInputError(wb.SheetName(opts.LayoutSheet), "", err)
	}
	layout, err := parser.ExtractLayout(wb.SheetName(opts.LayoutSheet), rows)
	if err != nil {
		return nil, err
	}

	return &Input{CT: ct, Layout: layout}, nil
}
