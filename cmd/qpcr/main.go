// Package main provides the CLI entry point for qpcr-go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/qpcr-go/pkg/qpcr"
	"go.uber.org/zap"
)

var (
	configPath string
	plotFile   string
	noSummary  bool
	verbose    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "qpcr <input_file.(xlsx|xls|xlsm)> <output_file.(xlsx|xlsm)>",
		Short: "Compute viral titers from a qPCR plate run",
		Long: `qpcr reads raw CT values and a plate-loading layout from a workbook,
fits the dilution-series standard curve, and writes per-well and per-test
titers to a new workbook with outliers highlighted and the curve plotted.`,
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML file overriding the default assay settings")
	rootCmd.Flags().StringVar(&plotFile, "plot-file", "", "Where to write the standard curve image (default: std_c.png)")
	rootCmd.Flags().BoolVar(&noSummary, "no-summary", false, "Omit the \"results page 2\" sheet")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	opts := qpcr.DefaultOptions()
	if configPath != "" {
		opts, err = qpcr.LoadOptions(configPath)
		if err != nil {
			return err
		}
		logger.Debug("Loaded config", zap.String("path", configPath))
	}
	if plotFile != "" {
		opts.PlotFile = plotFile
	}
	if noSummary {
		opts.OmitSummary = true
	}

	// Past this point failures are not usage errors.
	cmd.SilenceUsage = true

	if err := qpcr.Run(args[0], args[1], opts, logger); err != nil {
		logger.Error("Run failed", zap.Error(err))
		return err
	}
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
