package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/letterink/glyphsource/glyphs"
	"github.com/letterink/glyphsource/internal/output"
)

// loadSource reads a font source. Recoverable field problems end up in
// the returned diagnostics, not the error.
func loadSource(path string, jobs int) (*glyphs.Font, *glyphs.Diagnostics, error) {
	var opts []glyphs.DecodeOption
	if jobs != 1 {
		opts = append(opts, glyphs.WithConcurrency(jobs))
	}

	font, diags, err := glyphs.Load(path, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load font: %w", err)
	}

	slog.Debug("font loaded",
		"family", font.FamilyName,
		"glyphs", font.Glyphs().Len(),
		"masters", font.Masters().Len(),
		"issues", diags.Len())

	return font, diags, nil
}

// writeReport renders the report in the requested format, to stdout or
// to outFile when set.
func writeReport(report *output.Report, format, outFile string) error {
	writer := os.Stdout
	if outFile != "" {
		//nolint:gosec // G304: User-controlled output file path is intentional
		file, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			_ = file.Close() // Best-effort cleanup
		}()
		writer = file
		slog.Info("writing output", "file", outFile, "format", format)
	}

	formatter, err := output.NewFormatterFactory().Create(format, writer)
	if err != nil {
		return err
	}
	return formatter.Format(report)
}
