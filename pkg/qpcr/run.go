package qpcr

import (
	"fmt"
	"os"

	"github.com/ukaji3/qpcr-go/pkg/qpcr/report"
	"go.uber.org/zap"
)

// Run processes the workbook at input and writes the report to output. The
// report is only written once every computation has succeeded.
func Run(input, output string, opts Options, logger *zap.Logger) error {
	if err := opts.Validate(); err != nil {
		return NewArgumentError("options", err)
	}
	if err := report.CheckPath(output); err != nil {
		return NewArgumentError("output", err)
	}

	in, err := Load(input, opts)
	if err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}
	logger.Info("Loaded plate", zap.String("input", input), zap.Int("wells", len(in.CT)))

	rep, err := Analyze(in, opts, logger)
	if err != nil {
		return fmt.Errorf("analyze %s: %w", input, err)
	}

	if err := report.WritePlot(opts.PlotFile, rep.Curve); err != nil {
		return fmt.Errorf("write plot: %w", err)
	}
	if err := report.Write(output, rep, opts.reportOptions()); err != nil {
		// A plot without its report is partial output.
		if rmErr := os.Remove(opts.PlotFile); rmErr != nil {
			logger.Warn("Failed to remove plot", zap.String("plot", opts.PlotFile), zap.Error(rmErr))
		}
		return fmt.Errorf("write report: %w", err)
	}

	logger.Info("Wrote report",
		zap.String("output", output),
		zap.String("plot", opts.PlotFile),
		zap.Int("rows", len(rep.Rows)),
		zap.Int("tests", len(rep.Named)),
		zap.Int("warnings", len(rep.Warnings)))
	return nil
}
