package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/letterink/glyphsource/glyphs"
	"github.com/letterink/glyphsource/plist"
	"github.com/spf13/cobra"
)

var (
	roundtripOut  string
	roundtripJobs int
)

// roundtripCmd represents the roundtrip command
var roundtripCmd = &cobra.Command{
	Use:   "roundtrip <font.glyphs>",
	Short: "Verify a font source survives parse and re-serialization",
	Long: `Load a font source, serialize it back to the Glyphs plain-text format,
parse that result again and compare the two documents. A stable source
produces the same document both times; --output writes the serialized
form for inspection.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runRoundtripAction(args[0])
	},
}

func init() {
	rootCmd.AddCommand(roundtripCmd)

	roundtripCmd.Flags().StringVarP(&roundtripOut, "output", "o", "", "Write the serialized font to this path")
	roundtripCmd.Flags().IntVar(&roundtripJobs, "jobs", 1, "Concurrent glyph decode workers (0 = all CPUs)")
}

// runRoundtripAction implements the core logic for the roundtrip command
func runRoundtripAction(path string) error {
	slog.Info("loading font", "path", path)

	font, diags, err := loadSource(path, roundtripJobs)
	if err != nil {
		return err
	}
	if !diags.Empty() {
		slog.Warn("decode recovered issues, round trip will drop those fields", "issues", diags.Len())
	}

	var buf bytes.Buffer
	if err := font.Write(&buf); err != nil {
		return fmt.Errorf("failed to serialize font: %w", err)
	}

	reparsed, _, err := glyphs.Parse(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return fmt.Errorf("failed to reparse serialized font: %w", err)
	}

	if roundtripOut != "" {
		if err := os.WriteFile(roundtripOut, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		slog.Info("wrote serialized font", "file", roundtripOut, "bytes", buf.Len())
	}

	if at, diff := plist.FirstDiff(font.Tree(), reparsed.Tree()); diff {
		return fmt.Errorf("round trip is unstable at %s", at)
	}

	fmt.Printf("✓ %s: round trip is stable (%d glyphs, %d bytes)\n", path, font.Glyphs().Len(), buf.Len())
	return nil
}
