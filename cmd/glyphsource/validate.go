package main

import (
	"fmt"
	"log/slog"

	"github.com/letterink/glyphsource/internal/output"
	"github.com/spf13/cobra"
)

var (
	validateFormat string
	validateOut    string
	validateJobs   int
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <font.glyphs>",
	Short: "Check a font source for decode problems",
	Long: `Load a font source and report every field that could not be decoded.
Problems are recovered during loading, so one bad value never hides the
rest of the font. The command exits non-zero when any issue was found.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runValidateAction(args[0])
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateFormat, "format", "table", "Output format: table, json, yaml")
	validateCmd.Flags().StringVarP(&validateOut, "output", "o", "", "Output file path (default: stdout)")
	validateCmd.Flags().IntVar(&validateJobs, "jobs", 1, "Concurrent glyph decode workers (0 = all CPUs)")
}

// runValidateAction implements the core logic for the validate command
func runValidateAction(path string) error {
	slog.Info("validating font", "path", path)

	font, diags, err := loadSource(path, validateJobs)
	if err != nil {
		return err
	}

	report := output.NewReport(path, font, diags)
	if err := writeReport(report, validateFormat, validateOut); err != nil {
		return err
	}

	// Return non-zero exit code if any field failed to decode
	if !diags.Empty() {
		return fmt.Errorf("validation failed: %d issues", diags.Len())
	}

	slog.Info("font is clean", "family", font.FamilyName, "glyphs", font.Glyphs().Len())
	return nil
}
