// Package main provides the CLI entry point for wbinspect.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/wbinspect-go/internal/config"
	"github.com/ukaji3/wbinspect-go/internal/logging"
	"github.com/ukaji3/wbinspect-go/pkg/wbinspect"
)

// flags holds command-line overrides for config values.
type flags struct {
	headRows  int
	maxListed int
	suggest   string
	logLevel  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var fl flags

	rootCmd := &cobra.Command{
		Use:   "wbinspect [workbook.xlsx]",
		Short: "Print a descriptive summary of every sheet in a workbook",
		Long: `wbinspect prints, for each sheet of an xlsx workbook, its dimensions,
columns, first rows, column types, numeric statistics, missing values and
categorical cardinality, followed by suggested analytical questions.

The workbook path may also be given with WBINSPECT_FILE.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, fl)
		},
	}

	rootCmd.Flags().IntVar(&fl.headRows, "head", 5, "Number of leading rows shown per sheet")
	rootCmd.Flags().IntVar(&fl.maxListed, "max-listed", 10, "List categorical values when the distinct count is at most this")
	rootCmd.Flags().StringVar(&fl.suggest, "suggest", "static", "Question catalog: static, data, or none")
	rootCmd.Flags().StringVar(&fl.logLevel, "log-level", "warn", "Diagnostic log level: debug, info, warn, error")

	return rootCmd
}

func run(cmd *cobra.Command, args []string, fl flags) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg, fl)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	inputPath := cfg.File
	if len(args) == 1 {
		inputPath = args[0]
	}
	if inputPath == "" {
		return errors.New("no workbook given: pass a path or set " + config.EnvPrefix + "_FILE")
	}

	mode, err := wbinspect.ParseSuggestMode(cfg.Suggest)
	if err != nil {
		return err
	}

	logger := logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	logger.Debug("starting analysis",
		"file", inputPath,
		"head_rows", cfg.HeadRows,
		"max_listed", cfg.MaxListedValues,
		"suggest", mode,
	)

	// Analysis failures are printed on stdout and do not change the exit status.
	wbinspect.Analyze(cmd.OutOrStdout(), inputPath, wbinspect.Options{
		HeadRows:        cfg.HeadRows,
		MaxListedValues: cfg.MaxListedValues,
		Suggestions:     mode,
		Logger:          logger,
	})
	return nil
}

// applyFlags copies explicitly set flags over config values.
func applyFlags(cmd *cobra.Command, cfg *config.Config, fl flags) {
	f := cmd.Flags()
	if f.Changed("head") {
		cfg.HeadRows = fl.headRows
	}
	if f.Changed("max-listed") {
		cfg.MaxListedValues = fl.maxListed
	}
	if f.Changed("suggest") {
		cfg.Suggest = fl.suggest
	}
	if f.Changed("log-level") {
		cfg.LogLevel = fl.logLevel
	}
}

