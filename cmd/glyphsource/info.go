package main

import (
	"log/slog"

	"github.com/letterink/glyphsource/internal/output"
	"github.com/spf13/cobra"
)

var (
	infoFormat string
	infoOut    string
	infoJobs   int
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <font.glyphs>",
	Short: "Summarize a Glyphs font source",
	Long: `Load a font source and report its identity, dimensions, masters,
instances, features and any problems recovered during decoding.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runInfoAction(args[0])
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringVar(&infoFormat, "format", "table", "Output format: table, json, yaml")
	infoCmd.Flags().StringVarP(&infoOut, "output", "o", "", "Output file path (default: stdout)")
	infoCmd.Flags().IntVar(&infoJobs, "jobs", 1, "Concurrent glyph decode workers (0 = all CPUs)")
}

// runInfoAction implements the core logic for the info command
func runInfoAction(path string) error {
	slog.Info("loading font", "path", path)

	font, diags, err := loadSource(path, infoJobs)
	if err != nil {
		return err
	}

	slog.Info("font loaded",
		"family", font.FamilyName,
		"glyphs", font.Glyphs().Len(),
		"masters", font.Masters().Len(),
		"instances", font.Instances().Len())

	report := output.NewReport(path, font, diags)
	return writeReport(report, infoFormat, infoOut)
}
