// Package report writes an analysed plate run to a spreadsheet.
package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/qpcr-go/pkg/qpcr/curve"
	"github.com/ukaji3/qpcr-go/pkg/qpcr/models"
	"github.com/xuri/excelize/v2"
)

// Sheet names in the output workbook.
const (
	ResultsSheet  = "results"
	SummarySheet  = "results page 2"
	GraphSheet    = "graph"
	WarningsSheet = "warnings"
)

// DefaultHighlightColor fills the CT cell of every outlier well.
const DefaultHighlightColor = "FFFF00"

// PlotCell is where the standard-curve image is anchored on the graph sheet.
const PlotCell = "A8"

// ErrUnsupportedOutput indicates an output extension the writer cannot produce.
var ErrUnsupportedOutput = errors.New("unsupported output format")

var (
	resultsHeader = []interface{}{"Well Position", "CT", "Average CT", "log copies/ml",
		"copies/ml", "qpcr titer", "Average qpcr titer", "qpcr SD"}
	summaryHeader  = []interface{}{"test names", "Average qpcr titer", "qpcr SD"}
	warningsHeader = []interface{}{"group", "stage", "message"}
)

// Options configures the written workbook.
type Options struct {
	// HighlightColor is the RGB hex fill for outlier CT cells.
	HighlightColor string
	// OmitSummary drops the per-test summary sheet.
	OmitSummary bool
}

// CheckPath reports whether path names a workbook format the writer supports.
func CheckPath(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return nil
	default:
		return fmt.Errorf("%w: %q (use .xlsx or .xlsm)", ErrUnsupportedOutput, filepath.Ext(path))
	}
}

// Write saves rep to path.
func Write(path string, rep *models.Report, opts Options) error {
	if err := CheckPath(path); err != nil {
		return err
	}
	if rep.Curve == nil {
		return errors.New("report has no standard curve")
	}
	if opts.HighlightColor == "" {
		opts.HighlightColor = DefaultHighlightColor
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), ResultsSheet); err != nil {
		return err
	}
	if err := writeResults(f, rep.Rows, opts.HighlightColor); err != nil {
		return fmt.Errorf("write %s: %w", ResultsSheet, err)
	}

	if !opts.OmitSummary {
		if err := writeSummary(f, rep.Named); err != nil {
			return fmt.Errorf("write %s: %w", SummarySheet, err)
		}
	}

	if err := writeGraph(f, rep.Curve); err != nil {
		return fmt.Errorf("write %s: %w", GraphSheet, err)
	}

	if len(rep.Warnings) > 0 {
		if err := writeWarnings(f, rep.Warnings); err != nil {
			return fmt.Errorf("write %s: %w", WarningsSheet, err)
		}
	}

	f.SetActiveSheet(0)
	return f.SaveAs(path)
}

// WritePlot saves the rendered standard curve as a standalone image.
func WritePlot(path string, c *models.StandardCurve) error {
	if c == nil || len(c.Image) == 0 {
		return errors.New("no plot image to write")
	}
	return os.WriteFile(path, c.Image, 0644)
}

func writeResults(f *excelize.File, rows []models.ResultRow, color string) error {
	if err := setRow(f, ResultsSheet, 1, resultsHeader); err != nil {
		return err
	}

	highlight, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	for i, r := range rows {
		rowNum := i + 2
		values := []interface{}{
			r.Position.String(),
			r.CT.CellValue(),
			optional(r.AverageCT),
			r.LogCopies.CellValue(),
			r.CopiesPerML.CellValue(),
			r.Titer.CellValue(),
			optional(r.AverageTiter),
			optional(r.SDTiter),
		}
		if err := setRow(f, ResultsSheet, rowNum, values); err != nil {
			return err
		}

		if r.Outlier {
			cell, _ := excelize.CoordinatesToCellName(2, rowNum)
			if err := f.SetCellStyle(ResultsSheet, cell, cell, highlight); err != nil {
				return err
			}
		}
	}

	return f.SetColWidth(ResultsSheet, "A", "H", 18)
}

func writeSummary(f *excelize.File, rows []models.NamedResultRow) error {
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return err
	}
	if err := setRow(f, SummarySheet, 1, summaryHeader); err != nil {
		return err
	}
	for i, r := range rows {
		values := []interface{}{r.TestName, r.AverageTiter.CellValue(), r.SDTiter.CellValue()}
		if err := setRow(f, SummarySheet, i+2, values); err != nil {
			return err
		}
	}
	return f.SetColWidth(SummarySheet, "A", "C", 20)
}

func writeGraph(f *excelize.File, c *models.StandardCurve) error {
	if _, err := f.NewSheet(GraphSheet); err != nil {
		return err
	}

	stats := []interface{}{"slope = ", c.Slope, "intercept = ", c.Intercept, "r^2 = ", c.RSquared}
	if err := setRow(f, GraphSheet, 1, stats); err != nil {
		return err
	}

	avg := []interface{}{"Avg CT = "}
	for _, p := range c.Points {
		avg = append(avg, p.CT)
	}
	if err := setRow(f, GraphSheet, 2, avg); err != nil {
		return err
	}

	if err := setRow(f, GraphSheet, 3, []interface{}{"equation", curve.Equation(c)}); err != nil {
		return err
	}

	if len(c.Image) == 0 {
		return nil
	}
	return f.AddPictureFromBytes(GraphSheet, PlotCell, &excelize.Picture{
		Extension: ".png",
		File:      c.Image,
		Format:    &excelize.GraphicOptions{AltText: curve.Title},
	})
}

func writeWarnings(f *excelize.File, warnings []models.Warning) error {
	if _, err := f.NewSheet(WarningsSheet); err != nil {
		return err
	}
	if err := setRow(f, WarningsSheet, 1, warningsHeader); err != nil {
		return err
	}
	for i, w := range warnings {
		if err := setRow(f, WarningsSheet, i+2, []interface{}{w.Group, w.Stage, w.Message}); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// optional renders a group value that only the first well of a triplicate
// carries.
func optional(r *models.Reading) interface{} {
	if r == nil {
		return nil
	}
	return r.CellValue()
}
