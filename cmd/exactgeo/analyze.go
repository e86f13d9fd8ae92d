package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"exactgeo/src/analysis"
	"exactgeo/src/config"
	"exactgeo/src/render"
)

var (
	analyzeConfig string
	analyzeFormat string
	analyzeColor  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a set of lines",
	Long: `Report the axis intercepts of every line, the intersection of every pair of
lines and the groups of parallel lines. Without --config the built-in demo set
of four lines is analyzed.`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfig, "config", "c", "", "Path to a YAML line set")
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", config.FormatText, "Output format: text, json")
	analyzeCmd.Flags().StringVar(&analyzeColor, "color", config.ColorAuto, "Color output: auto, always, never")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if analyzeConfig != "" {
		loaded, err := config.Load(analyzeConfig)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags override the file only when given explicitly.
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = analyzeFormat
	}
	if cmd.Flags().Changed("color") {
		cfg.Output.Color = analyzeColor
	}
	if err := cfg.Output.Validate(); err != nil {
		return err
	}

	logger.Debug("analyzing lines", "count", len(cfg.Lines), "config", analyzeConfig)
	report, err := analysis.New(logger).Run(cfg.Lines)
	if err != nil {
		return fmt.Errorf("analyzing lines: %w", err)
	}

	out := cmd.OutOrStdout()
	r, err := render.New(cfg.Output.Format, render.ColorEnabled(cfg.Output.Color, out))
	if err != nil {
		return err
	}
	return r.RenderReport(out, report)
}
