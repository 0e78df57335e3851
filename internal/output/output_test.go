package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/letterink/glyphsource/glyphs"
)

// createTestReport builds a report from a small font with one recovered
// decode issue.
func createTestReport(t *testing.T) *Report {
	t.Helper()

	font := glyphs.NewFont()
	font.FamilyName = "Demo Sans"
	font.Grid = 1
	font.GridSubDivision = 2
	require.NoError(t, font.SetVersionMinor(3))

	light := glyphs.NewFontMaster()
	light.ID = "M1"
	light.SetWeight("Light")
	light.Ascender = 800
	light.CapHeight = 700
	light.XHeight = 500
	light.Descender = -200

	bold := glyphs.NewFontMaster()
	bold.ID = "M2"
	bold.SetWeight("Bold")
	bold.WeightValue = 190
	bold.ItalicAngle = 9.5
	font.Masters().Append(light, bold)

	inst := glyphs.NewInstance()
	inst.Name = "Bold"
	font.Instances().Append(inst)

	a := glyphs.NewGlyph("A")
	a.Unicode = "0041"
	a.Category = "Letter"
	a.SubCategory = "Uppercase"
	font.Glyphs().Append(a)
	a.Layers().Put("M1", glyphs.NewLayer())

	b := glyphs.NewGlyph("b.alt")
	b.Export = false
	font.Glyphs().Append(b)

	font.Classes().Append(glyphs.NewClass("Uppercase", "A"))
	font.Features().Append(glyphs.NewFeature("liga", "sub f i by fi;"))
	font.FeaturePrefixes().Append(glyphs.NewFeaturePrefix("Languagesystems", "languagesystem DFLT dflt;"))
	font.SetKerningForPair("M1", "A", "V", -20)

	diags := &glyphs.Diagnostics{}
	diags.Add("glyphs[0]", "color", errors.New("cannot read color"))

	report := NewReport("Demo.glyphs", font, diags)
	for _, g := range font.Glyphs().All() {
		report.Glyphs = append(report.Glyphs, NewGlyphRow(g))
	}
	return report
}

func TestNewReport_CountsAndRows(t *testing.T) {
	t.Parallel()
	report := createTestReport(t)

	assert.Equal(t, "Demo.glyphs", report.Path)
	assert.Equal(t, "Demo Sans", report.FamilyName)
	assert.Equal(t, "1.003", report.Version)
	assert.Equal(t, 1000, report.UnitsPerEm)
	assert.Equal(t, 1, report.Grid)
	assert.Equal(t, 2, report.GridSubDiv)
	assert.Equal(t, 2, report.GlyphCount)
	assert.Equal(t, 2, report.MasterCount)
	assert.Equal(t, 1, report.InstanceCount)
	assert.Equal(t, 1, report.ClassCount)
	assert.Equal(t, 1, report.FeatureCount)
	assert.Equal(t, 1, report.PrefixCount)
	assert.Equal(t, 1, report.KernedMasters)

	require.Len(t, report.Masters, 2)
	assert.Equal(t, "Light", report.Masters[0].Name)
	assert.Equal(t, "Bold Italic", report.Masters[1].Name)
	assert.Equal(t, 190.0, report.Masters[1].WeightValue)

	require.Len(t, report.Instances, 1)
	assert.Equal(t, "DemoSans-Bold", report.Instances[0].FontName)

	require.Len(t, report.Issues, 1)
	assert.Equal(t, "glyphs[0]", report.Issues[0].Path)
	assert.Equal(t, "color", report.Issues[0].Key)
	assert.Equal(t, "cannot read color", report.Issues[0].Error)

	require.Len(t, report.Glyphs, 2)
	assert.Equal(t, "A", report.Glyphs[0].Char)
	assert.Equal(t, 1, report.Glyphs[0].Layers)
	assert.False(t, report.Glyphs[1].Export)
}

func TestTableFormatter_Format(t *testing.T) {
	t.Parallel()
	report := createTestReport(t)
	var buf bytes.Buffer

	formatter := NewTableFormatter(&buf)
	err := formatter.Format(report)
	require.NoError(t, err)

	output := buf.String()

	// Check header
	assert.Contains(t, output, "Demo Sans")
	assert.Contains(t, output, "(v1.003)")
	assert.Contains(t, output, "Source: Demo.glyphs")
	assert.Contains(t, output, "Units/em: 1000")
	assert.Contains(t, output, "Grid: 1/2")

	// Check masters section
	assert.Contains(t, output, "Masters:")
	assert.Contains(t, output, "Light")
	assert.Contains(t, output, "Bold Italic")
	assert.Contains(t, output, "Position: weight Bold (190), width Regular (100)")
	assert.Contains(t, output, "Italic angle: 9.50")

	// Check instances section
	assert.Contains(t, output, "Instances:")
	assert.Contains(t, output, "(DemoSans-Bold)")

	// Check glyphs section
	assert.Contains(t, output, "Glyphs:")
	assert.Contains(t, output, "U+0041")
	assert.Contains(t, output, "Letter/Uppercase")
	assert.Contains(t, output, "(1 layers)")

	// Check issues section
	assert.Contains(t, output, "Issues:")
	assert.Contains(t, output, "glyphs[0].color: cannot read color")

	// Check summary section
	assert.Contains(t, output, "Summary:")
	assert.Contains(t, output, "Masters:      2")
	assert.Contains(t, output, "Glyphs:       2")
	assert.Contains(t, output, "Features:     1 (+1 prefixes)")
	assert.Contains(t, output, "Kerning:      1 masters")
	assert.Contains(t, output, "Issues:   1")
}

func TestTableFormatter_NoColor(t *testing.T) {
	t.Parallel()
	report := createTestReport(t)
	var buf bytes.Buffer

	formatter := NewTableFormatter(&buf)
	formatter.EnableColor = false
	err := formatter.Format(report)
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "\033[")
}

func TestTableFormatter_CleanFont(t *testing.T) {
	t.Parallel()
	font := glyphs.NewFont()
	report := NewReport("", font, nil)

	var buf bytes.Buffer
	formatter := NewTableFormatter(&buf)
	err := formatter.Format(report)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Unnamed font")
	assert.NotContains(t, output, "Source:")
	assert.NotContains(t, output, "Grid:")
	assert.NotContains(t, output, "⚠")
	assert.Contains(t, output, "Issues:   0")
}

func TestJSONFormatter_Format_Indented(t *testing.T) {
	t.Parallel()
	report := createTestReport(t)
	var buf bytes.Buffer

	formatter := NewJSONFormatter(&buf, true)
	err := formatter.Format(report)
	require.NoError(t, err)

	output := buf.String()

	// Verify it's valid JSON
	var decoded Report
	err = json.Unmarshal([]byte(output), &decoded)
	require.NoError(t, err)

	// Verify content
	assert.Equal(t, "Demo Sans", decoded.FamilyName)
	assert.Equal(t, "1.003", decoded.Version)
	assert.Len(t, decoded.Masters, 2)
	assert.Len(t, decoded.Issues, 1)
	assert.Equal(t, "DemoSans-Bold", decoded.Instances[0].FontName)

	// Verify indentation (pretty-printed)
	assert.Contains(t, output, "  ")
	assert.True(t, strings.HasSuffix(output, "\n"))
}

func TestJSONFormatter_Format_Compact(t *testing.T) {
	t.Parallel()
	report := createTestReport(t)
	var buf bytes.Buffer

	formatter := NewJSONFormatter(&buf, false)
	err := formatter.Format(report)
	require.NoError(t, err)

	output := buf.String()

	var decoded Report
	err = json.Unmarshal([]byte(output), &decoded)
	require.NoError(t, err)
	assert.Equal(t, "Demo Sans", decoded.FamilyName)

	// Verify no indentation (compact)
	lines := strings.Split(output, "\n")
	assert.LessOrEqual(t, len(lines), 2)
}

func TestYAMLFormatter_Format(t *testing.T) {
	t.Parallel()
	report := createTestReport(t)
	var buf bytes.Buffer

	formatter := NewYAMLFormatter(&buf)
	err := formatter.Format(report)
	require.NoError(t, err)

	output := buf.String()

	// Verify it's valid YAML
	var decoded Report
	err = yaml.Unmarshal([]byte(output), &decoded)
	require.NoError(t, err)

	// Verify content
	assert.Equal(t, "Demo Sans", decoded.FamilyName)
	assert.Equal(t, 1000, decoded.UnitsPerEm)
	assert.Len(t, decoded.Masters, 2)
	assert.Len(t, decoded.Glyphs, 2)

	// Verify YAML structure
	assert.Contains(t, output, "familyName: Demo Sans")
	assert.Contains(t, output, "masters:")
	assert.Contains(t, output, "glyphs:")
}

func TestFormatterFactory_Create(t *testing.T) {
	t.Parallel()
	factory := NewFormatterFactory()
	var buf bytes.Buffer

	tests := []struct {
		format string
		want   any
	}{
		{"table", &TableFormatter{}},
		{"json", &JSONFormatter{}},
		{"yaml", &YAMLFormatter{}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			formatter, err := factory.Create(tt.format, &buf)
			require.NoError(t, err)
			assert.IsType(t, tt.want, formatter)
		})
	}
}

func TestFormatterFactory_UnknownFormat(t *testing.T) {
	t.Parallel()
	factory := NewFormatterFactory()

	_, err := factory.Create("xml", &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format: xml")
	assert.Contains(t, err.Error(), "table")

	assert.Equal(t, []string{"table", "json", "yaml"}, factory.SupportedFormats())
}
