// Package output renders font source reports for terminals and for
// machine consumption.
package output

import (
	"fmt"

	"github.com/letterink/glyphsource/glyphs"
)

// Report is the presentable state of one font source: identity, counts,
// per-master and optional per-glyph rows, plus any issues its decode
// raised.
type Report struct {
	Path          string        `json:"path,omitempty" yaml:"path,omitempty"`
	FamilyName    string        `json:"familyName" yaml:"familyName"`
	Version       string        `json:"version" yaml:"version"`
	UnitsPerEm    int           `json:"unitsPerEm" yaml:"unitsPerEm"`
	Grid          int           `json:"grid" yaml:"grid"`
	GridSubDiv    int           `json:"gridSubDivision" yaml:"gridSubDivision"`
	GlyphCount    int           `json:"glyphCount" yaml:"glyphCount"`
	MasterCount   int           `json:"masterCount" yaml:"masterCount"`
	InstanceCount int           `json:"instanceCount" yaml:"instanceCount"`
	ClassCount    int           `json:"classCount" yaml:"classCount"`
	FeatureCount  int           `json:"featureCount" yaml:"featureCount"`
	PrefixCount   int           `json:"featurePrefixCount" yaml:"featurePrefixCount"`
	KernedMasters int           `json:"kernedMasters" yaml:"kernedMasters"`
	Masters       []MasterRow   `json:"masters,omitempty" yaml:"masters,omitempty"`
	Instances     []InstanceRow `json:"instances,omitempty" yaml:"instances,omitempty"`
	Glyphs        []GlyphRow    `json:"glyphs,omitempty" yaml:"glyphs,omitempty"`
	Issues        []IssueRow    `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// MasterRow is the report line for one font master.
type MasterRow struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Weight      string  `json:"weight" yaml:"weight"`
	Width       string  `json:"width" yaml:"width"`
	WeightValue float64 `json:"weightValue" yaml:"weightValue"`
	WidthValue  float64 `json:"widthValue" yaml:"widthValue"`
	Ascender    float64 `json:"ascender" yaml:"ascender"`
	CapHeight   float64 `json:"capHeight" yaml:"capHeight"`
	XHeight     float64 `json:"xHeight" yaml:"xHeight"`
	Descender   float64 `json:"descender" yaml:"descender"`
	ItalicAngle float64 `json:"italicAngle,omitempty" yaml:"italicAngle,omitempty"`
}

// InstanceRow is the report line for one instance, including its derived
// naming.
type InstanceRow struct {
	Name        string  `json:"name" yaml:"name"`
	FontName    string  `json:"fontName" yaml:"fontName"`
	WeightClass string  `json:"weightClass" yaml:"weightClass"`
	WidthClass  string  `json:"widthClass" yaml:"widthClass"`
	Weight      float64 `json:"interpolationWeight" yaml:"interpolationWeight"`
	Width       float64 `json:"interpolationWidth" yaml:"interpolationWidth"`
	Exports     bool    `json:"exports" yaml:"exports"`
}

// GlyphRow is the report line for one glyph.
type GlyphRow struct {
	Name        string `json:"name" yaml:"name"`
	Unicode     string `json:"unicode,omitempty" yaml:"unicode,omitempty"`
	Char        string `json:"char,omitempty" yaml:"char,omitempty"`
	Category    string `json:"category,omitempty" yaml:"category,omitempty"`
	SubCategory string `json:"subCategory,omitempty" yaml:"subCategory,omitempty"`
	Script      string `json:"script,omitempty" yaml:"script,omitempty"`
	Export      bool   `json:"export" yaml:"export"`
	Layers      int    `json:"layers" yaml:"layers"`
}

// IssueRow is one recovered decode problem.
type IssueRow struct {
	Path  string `json:"path,omitempty" yaml:"path,omitempty"`
	Key   string `json:"key" yaml:"key"`
	Error string `json:"error" yaml:"error"`
}

// NewReport summarizes a loaded font and its decode diagnostics.
func NewReport(path string, font *glyphs.Font, diags *glyphs.Diagnostics) *Report {
	r := &Report{
		Path:          path,
		FamilyName:    font.FamilyName,
		Version:       fmt.Sprintf("%d.%03d", font.VersionMajor, font.VersionMinor()),
		UnitsPerEm:    font.UnitsPerEm,
		Grid:          font.Grid,
		GridSubDiv:    font.GridSubDivision,
		GlyphCount:    font.Glyphs().Len(),
		MasterCount:   font.Masters().Len(),
		InstanceCount: font.Instances().Len(),
		ClassCount:    font.Classes().Len(),
		FeatureCount:  font.Features().Len(),
		PrefixCount:   font.FeaturePrefixes().Len(),
		KernedMasters: font.Kerning().Len(),
	}
	for _, m := range font.Masters().All() {
		r.Masters = append(r.Masters, MasterRow{
			ID:          m.ID,
			Name:        m.Name(),
			Weight:      m.Weight(),
			Width:       m.Width(),
			WeightValue: m.WeightValue,
			WidthValue:  m.WidthValue,
			Ascender:    m.Ascender,
			CapHeight:   m.CapHeight,
			XHeight:     m.XHeight,
			Descender:   m.Descender,
			ItalicAngle: m.ItalicAngle,
		})
	}
	for _, inst := range font.Instances().All() {
		r.Instances = append(r.Instances, InstanceRow{
			Name:        inst.Name,
			FontName:    inst.FontName(),
			WeightClass: inst.WeightClass,
			WidthClass:  inst.WidthClass,
			Weight:      inst.InterpolationWeight,
			Width:       inst.InterpolationWidth,
			Exports:     inst.Exports,
		})
	}
	r.AddIssues(diags)
	return r
}

// NewGlyphRow builds the report line for one glyph.
func NewGlyphRow(g *glyphs.Glyph) GlyphRow {
	return GlyphRow{
		Name:        g.Name,
		Unicode:     g.Unicode,
		Char:        g.Char(),
		Category:    g.Category,
		SubCategory: g.SubCategory,
		Script:      g.Script,
		Export:      g.Export,
		Layers:      g.Layers().Len(),
	}
}

// AddIssues appends the diagnostics' issues to the report.
func (r *Report) AddIssues(diags *glyphs.Diagnostics) {
	for _, issue := range diags.Issues() {
		r.Issues = append(r.Issues, IssueRow{
			Path:  issue.Path,
			Key:   issue.Key,
			Error: issue.Err.Error(),
		})
	}
}
