package main

import (
	"fmt"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/letterink/glyphsource/glyphs"
	"github.com/letterink/glyphsource/internal/output"
	"github.com/spf13/cobra"
)

var (
	glyphsFormat string
	glyphsOut    string
	glyphsFilter string
	glyphsJobs   int
)

// GlyphEnv exposes glyph metadata for expression evaluation.
type GlyphEnv struct {
	Name        string `expr:"name"`
	Unicode     string `expr:"unicode"`
	Category    string `expr:"category"`
	SubCategory string `expr:"subCategory"`
	Script      string `expr:"script"`
	Export      bool   `expr:"export"`
	Layers      int    `expr:"layers"`
}

// glyphsCmd represents the glyphs command
var glyphsCmd = &cobra.Command{
	Use:   "glyphs <font.glyphs>",
	Short: "List the glyphs of a font source",
	Long: `Load a font source and list its glyphs with their codepoints,
categories and layer counts.

Filtering:
  --filter "export"                  List only exporting glyphs
  --filter "category == 'Letter'"    List letters
  --filter "script == 'latin' && layers > 2"
                                     Combine any glyph fields`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runGlyphsAction(args[0])
	},
}

func init() {
	rootCmd.AddCommand(glyphsCmd)

	glyphsCmd.Flags().StringVar(&glyphsFormat, "format", "table", "Output format: table, json, yaml")
	glyphsCmd.Flags().StringVarP(&glyphsOut, "output", "o", "", "Output file path (default: stdout)")
	glyphsCmd.Flags().StringVar(&glyphsFilter, "filter", "", "Filter expression (e.g. \"category == 'Letter'\")")
	glyphsCmd.Flags().IntVar(&glyphsJobs, "jobs", 1, "Concurrent glyph decode workers (0 = all CPUs)")
}

// runGlyphsAction implements the core logic for the glyphs command
func runGlyphsAction(path string) error {
	// Compile --filter expression ONCE at startup
	var program *vm.Program
	if glyphsFilter != "" {
		var err error
		program, err = expr.Compile(glyphsFilter,
			expr.Env(GlyphEnv{}),
			expr.AsBool())
		if err != nil {
			return fmt.Errorf("invalid --filter expression: %w\nExample: category == 'Letter' && export", err)
		}
	}

	slog.Info("loading font", "path", path)

	font, diags, err := loadSource(path, glyphsJobs)
	if err != nil {
		return err
	}

	report := output.NewReport(path, font, diags)
	for _, g := range font.Glyphs().All() {
		if program != nil {
			keep, err := matchGlyph(program, g)
			if err != nil {
				return fmt.Errorf("filter failed on glyph %s: %w", g.Name, err)
			}
			if !keep {
				continue
			}
		}
		report.Glyphs = append(report.Glyphs, output.NewGlyphRow(g))
	}

	slog.Info("glyphs listed", "matched", len(report.Glyphs), "total", font.Glyphs().Len())

	return writeReport(report, glyphsFormat, glyphsOut)
}

// matchGlyph runs the compiled filter program against one glyph.
func matchGlyph(program *vm.Program, g *glyphs.Glyph) (bool, error) {
	env := GlyphEnv{
		Name:        g.Name,
		Unicode:     g.Unicode,
		Category:    g.Category,
		SubCategory: g.SubCategory,
		Script:      g.Script,
		Export:      g.Export,
		Layers:      g.Layers().Len(),
	}

	result, err := expr.Run(program, env)
	if err != nil {
		return false, err
	}
	return result.(bool), nil
}
