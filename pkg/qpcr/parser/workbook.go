package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat indicates a workbook extension no reader handles.
var ErrUnsupportedFormat = errors.New("unsupported workbook format")

// Workbook is a read-only view of a spreadsheet's sheets as string grids.
type Workbook interface {
	// SheetCount returns the number of sheets.
	SheetCount() int
	// SheetName returns the name of the sheet at index.
	SheetName(index int) string
	// Rows returns the cell values of the sheet at index, row by row.
	Rows(index int) ([][]string, error)
	Close() error
}

// OpenWorkbook opens path with the reader matching its extension.
func OpenWorkbook(path string) (Workbook, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open workbook: %w", err)
		}
		return &xlsxWorkbook{f: f}, nil
	case ".xls":
		wb, err := xls.Open(path, "utf-8")
		if err != nil {
			return nil, fmt.Errorf("failed to open workbook: %w", err)
		}
		if wb == nil {
			return nil, fmt.Errorf("failed to open workbook: %s has no Workbook stream", filepath.Base(path))
		}
		return &xlsWorkbook{wb: wb}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

type xlsxWorkbook struct {
	f *excelize.File
}

func (w *xlsxWorkbook) SheetCount() int {
	return len(w.f.GetSheetList())
}

func (w *xlsxWorkbook) SheetName(index int) string {
	return w.f.GetSheetName(index)
}

func (w *xlsxWorkbook) Rows(index int) ([][]string, error) {
	name := w.f.GetSheetName(index)
	if name == "" {
		return nil, fmt.Errorf("no sheet at index %d", index)
	}
	// Raw values keep full CT precision regardless of the cell number format.
	return w.f.GetRows(name, excelize.Options{RawCellValue: true})
}

func (w *xlsxWorkbook) Close() error {
	return w.f.Close()
}

// xlsMaxColumns is the BIFF8 column limit.
const xlsMaxColumns = 256

type xlsWorkbook struct {
	wb *xls.WorkBook
}

func (w *xlsWorkbook) SheetCount() int {
	return w.wb.NumSheets()
}

func (w *xlsWorkbook) SheetName(index int) string {
	if sheet := w.wb.GetSheet(index); sheet != nil {
		return sheet.Name
	}
	return ""
}

func (w *xlsWorkbook) Rows(index int) ([][]string, error) {
	sheet := w.wb.GetSheet(index)
	if sheet == nil {
		return nil, fmt.Errorf("no sheet at index %d", index)
	}

	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for rowID := 0; rowID <= int(sheet.MaxRow); rowID++ {
		row := xlsRow(sheet, rowID)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		rows = append(rows, xlsCells(row))
	}
	return rows, nil
}

func (w *xlsWorkbook) Close() error {
	return nil
}

// xlsRow returns nil for rows the file does not store; (*xls.WorkSheet).Row
// dereferences them.
func xlsRow(sheet *xls.WorkSheet, rowID int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(rowID)
}

// xlsCells reads a row up to its last non-empty cell. LastCol is only
// recorded for rows with a ROW record, so every column is probed.
func xlsCells(row *xls.Row) []string {
	var cells []string
	for colID := 0; colID < xlsMaxColumns; colID++ {
		v := row.Col(colID)
		if v == "" {
			continue
		}
		for len(cells) < colID {
			cells = append(cells, "")
		}
		cells = append(cells, v)
	}
	return cells
}
