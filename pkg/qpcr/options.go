// Package qpcr computes viral titers from a qPCR plate run and writes the
// annotated report.
package qpcr

import (
	"fmt"
	"os"
	"regexp"

	"github.com/ukaji3/qpcr-go/pkg/qpcr/curve"
	"github.com/ukaji3/qpcr-go/pkg/qpcr/models"
	"github.com/ukaji3/qpcr-go/pkg/qpcr/parser"
	"github.com/ukaji3/qpcr-go/pkg/qpcr/report"
	"github.com/ukaji3/qpcr-go/pkg/qpcr/titer"
	"github.com/ukaji3/qpcr-go/pkg/qpcr/triplicate"
	"gopkg.in/yaml.v2"
)

// DefaultPlotFile is where the standard-curve image is written beside the
// report.
const DefaultPlotFile = "std_c.png"

var hexColor = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// Options configures one run.
type Options struct {
	// CTSheet is the index of the raw instrument sheet.
	CTSheet int `yaml:"ct_sheet"`
	// LayoutSheet is the index of the plate-loading sheet.
	LayoutSheet int `yaml:"layout_sheet"`
	// CTRange is the single-column A1 range holding the 96 CT values.
	CTRange string `yaml:"ct_range"`
	// Tolerance is the CT outlier threshold.
	Tolerance float64 `yaml:"tolerance"`
	// TiterTolerance is the titer outlier threshold.
	TiterTolerance float64 `yaml:"titer_tolerance"`
	// DilutionFactor scales copies/ml to titer.
	DilutionFactor float64 `yaml:"dilution_factor"`
	// StandardLogCopies are the log10 copy numbers of the dilution series,
	// most dilute first.
	StandardLogCopies []float64 `yaml:"standard_log_copies"`
	// HighlightColor is the RGB hex fill for outlier CT cells.
	HighlightColor string `yaml:"highlight_color"`
	// PlotFile is where the standard-curve PNG is written.
	PlotFile string `yaml:"plot_file"`
	// PlotWidth and PlotHeight are the plot size in pixels.
	PlotWidth  int `yaml:"plot_width"`
	PlotHeight int `yaml:"plot_height"`
	// OmitSummary drops the "results page 2" sheet.
	OmitSummary bool `yaml:"omit_summary"`
}

// DefaultOptions returns default run options.
func DefaultOptions() Options {
	return Options{
		CTSheet:           0,
		LayoutSheet:       1,
		CTRange:           parser.DefaultCTRange,
		Tolerance:         triplicate.DefaultTolerance,
		TiterTolerance:    triplicate.DefaultTolerance,
		DilutionFactor:    titer.DefaultDilutionFactor,
		StandardLogCopies: append([]float64(nil), curve.DefaultLogCopies...),
		HighlightColor:    report.DefaultHighlightColor,
		PlotFile:          DefaultPlotFile,
		PlotWidth:         curve.DefaultSize,
		PlotHeight:        curve.DefaultSize,
	}
}

// LoadOptions reads a YAML file over the defaults. Keys absent from the file
// keep their default values.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("config validation failed: %w", err)
	}
	return opts, nil
}

// Validate checks that the options describe a usable run.
func (o Options) Validate() error {
	if o.CTSheet < 0 || o.LayoutSheet < 0 {
		return fmt.Errorf("sheet indexes must not be negative")
	}
	if _, err := parser.ParseRange(o.CTRange); err != nil {
		return err
	}
	if o.Tolerance <= 0 || o.TiterTolerance <= 0 {
		return fmt.Errorf("tolerances must be positive")
	}
	if o.DilutionFactor <= 0 {
		return fmt.Errorf("dilution factor must be positive")
	}
	if n := len(o.StandardLogCopies); n < curve.MinStandardPoints || n > models.StandardRows {
		return fmt.Errorf("need %d to %d standard log copy values, got %d",
			curve.MinStandardPoints, models.StandardRows, n)
	}
	if !hexColor.MatchString(o.HighlightColor) {
		return fmt.Errorf("highlight color %q is not an RGB hex value", o.HighlightColor)
	}
	if o.PlotFile == "" {
		return fmt.Errorf("plot file must be set")
	}
	return nil
}

func (o Options) reportOptions() report.Options {
	return report.Options{
		HighlightColor: o.HighlightColor,
		OmitSummary:    o.OmitSummary,
	}
}
