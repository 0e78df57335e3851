package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/expr-lang/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letterink/glyphsource/glyphs"
	"github.com/letterink/glyphsource/internal/output"
)

func TestMatchGlyph(t *testing.T) {
	t.Parallel()

	font := glyphs.NewFont()
	master := glyphs.NewFontMaster()
	master.ID = "M1"
	font.Masters().Append(master)

	a := glyphs.NewGlyph("A")
	a.Unicode = "0041"
	a.Category = "Letter"
	a.Script = "latin"
	font.Glyphs().Append(a)
	a.Layers().Put("M1", glyphs.NewLayer())

	hyphen := glyphs.NewGlyph("hyphen")
	hyphen.Category = "Punctuation"
	hyphen.Export = false
	font.Glyphs().Append(hyphen)

	tests := []struct {
		name       string
		filter     string
		wantA      bool
		wantHyphen bool
	}{
		{"exporting only", "export", true, false},
		{"by category", "category == 'Letter'", true, false},
		{"by layer count", "layers > 0", true, false},
		{"by script or name", "script == 'latin' || name == 'hyphen'", true, true},
		{"by codepoint", "unicode == '0041'", true, false},
		{"nothing matches", "category == 'Mark'", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := expr.Compile(tt.filter, expr.Env(GlyphEnv{}), expr.AsBool())
			require.NoError(t, err)

			got, err := matchGlyph(program, a)
			require.NoError(t, err)
			assert.Equal(t, tt.wantA, got, "glyph A")

			got, err = matchGlyph(program, hyphen)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHyphen, got, "glyph hyphen")
		})
	}
}

func TestRunGlyphsAction_FilterAndOutput(t *testing.T) {
	// Save and restore command globals
	origFormat, origOut := glyphsFormat, glyphsOut
	origFilter, origJobs := glyphsFilter, glyphsJobs
	defer func() {
		glyphsFormat, glyphsOut = origFormat, origOut
		glyphsFilter, glyphsJobs = origFilter, origJobs
	}()

	fontPath := writeTestFont(t, cleanFont)
	outPath := filepath.Join(t.TempDir(), "report.json")

	glyphsFormat = "json"
	glyphsOut = outPath
	glyphsFilter = "export"
	glyphsJobs = 1

	require.NoError(t, runGlyphsAction(fontPath))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var report output.Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "Fixture Sans", report.FamilyName)
	assert.Equal(t, 2, report.GlyphCount, "counts cover the whole font")
	require.Len(t, report.Glyphs, 1, "rows cover only the filtered glyphs")
	assert.Equal(t, "A", report.Glyphs[0].Name)
}

func TestRunGlyphsAction_InvalidFilter(t *testing.T) {
	origFilter := glyphsFilter
	defer func() { glyphsFilter = origFilter }()

	glyphsFilter = "(("
	err := runGlyphsAction("ignored.glyphs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --filter expression")
}
