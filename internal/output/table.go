package output

import (
	"fmt"
	"io"
	"strings"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

// TableFormatter renders a report as a human-readable table.
type TableFormatter struct {
	writer      io.Writer
	EnableColor bool
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		writer:      w,
		EnableColor: true, // Default to true, caller can disable
	}
}

// colorize returns the string wrapped in ANSI color codes if enabled.
func (f *TableFormatter) colorize(text, code string) string {
	if !f.EnableColor {
		return text
	}
	return code + text + colorReset
}

// Format writes the report as a table.
//
//nolint:errcheck // Table formatting errors are non-critical (best-effort terminal output)
func (f *TableFormatter) Format(report *Report) error {
	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 80), colorGray))
	fmt.Fprintf(f.writer, "Family: %s (v%s)\n", f.colorize(report.FamilyName, colorBold), report.Version)
	if report.Path != "" {
		fmt.Fprintf(f.writer, "Source: %s\n", report.Path)
	}
	fmt.Fprintf(f.writer, "Units/em: %d\n", report.UnitsPerEm)
	if report.Grid != 0 {
		if report.GridSubDiv > 1 {
			fmt.Fprintf(f.writer, "Grid: %d/%d\n", report.Grid, report.GridSubDiv)
		} else {
			fmt.Fprintf(f.writer, "Grid: %d\n", report.Grid)
		}
	}
	fmt.Fprintln(f.writer)

	if len(report.Masters) > 0 {
		f.formatMasters(report.Masters)
	}
	if len(report.Instances) > 0 {
		f.formatInstances(report.Instances)
	}
	if len(report.Glyphs) > 0 {
		f.formatGlyphs(report.Glyphs)
	}
	if len(report.Issues) > 0 {
		f.formatIssues(report.Issues)
	}

	f.formatSummary(report)
	return nil
}

//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatMasters(masters []MasterRow) {
	fmt.Fprintln(f.writer, f.colorize("Masters:", colorBold))
	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 80), colorGray))
	for _, m := range masters {
		fmt.Fprintf(f.writer, "%s %s\n", f.colorize("▪", colorCyan), f.colorize(m.Name, colorBold))
		fmt.Fprintf(f.writer, "  ID: %s\n", f.colorize(m.ID, colorGray))
		fmt.Fprintf(f.writer, "  Position: weight %s (%.0f), width %s (%.0f)\n",
			m.Weight, m.WeightValue, m.Width, m.WidthValue)
		fmt.Fprintf(f.writer, "  Metrics: asc %.0f, cap %.0f, x %.0f, desc %.0f\n",
			m.Ascender, m.CapHeight, m.XHeight, m.Descender)
		if m.ItalicAngle != 0 {
			fmt.Fprintf(f.writer, "  Italic angle: %.2f\n", m.ItalicAngle)
		}
	}
	fmt.Fprintln(f.writer)
}

//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatInstances(instances []InstanceRow) {
	fmt.Fprintln(f.writer, f.colorize("Instances:", colorBold))
	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 80), colorGray))
	for _, inst := range instances {
		marker := f.colorize("▪", colorGreen)
		if !inst.Exports {
			marker = f.colorize("▫", colorGray)
		}
		fmt.Fprintf(f.writer, "%s %s (%s)\n", marker, f.colorize(inst.Name, colorBold), inst.FontName)
		fmt.Fprintf(f.writer, "  Classes: %s / %s\n", inst.WeightClass, inst.WidthClass)
		fmt.Fprintf(f.writer, "  Position: weight %.0f, width %.0f\n", inst.Weight, inst.Width)
	}
	fmt.Fprintln(f.writer)
}

//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatGlyphs(rows []GlyphRow) {
	fmt.Fprintln(f.writer, f.colorize("Glyphs:", colorBold))
	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 80), colorGray))
	for _, g := range rows {
		padded := fmt.Sprintf("%-24s", g.Name)
		name := f.colorize(padded, colorBold)
		if !g.Export {
			name = f.colorize(padded, colorGray)
		}
		fmt.Fprint(f.writer, name)
		if g.Unicode != "" {
			fmt.Fprintf(f.writer, " U+%s", g.Unicode)
		}
		if g.Char != "" {
			fmt.Fprintf(f.writer, " %s", f.colorize(g.Char, colorCyan))
		}
		if g.Category != "" {
			detail := g.Category
			if g.SubCategory != "" {
				detail += "/" + g.SubCategory
			}
			fmt.Fprintf(f.writer, " %s", f.colorize(detail, colorBlue))
		}
		if g.Script != "" {
			fmt.Fprintf(f.writer, " %s", g.Script)
		}
		fmt.Fprintf(f.writer, " (%d layers)\n", g.Layers)
	}
	fmt.Fprintln(f.writer)
}

//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatIssues(issues []IssueRow) {
	fmt.Fprintf(f.writer, "%s\n", f.colorize("Issues:", colorBold))
	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 80), colorGray))
	for _, issue := range issues {
		location := issue.Key
		if issue.Path != "" {
			location = issue.Path + "." + issue.Key
		}
		fmt.Fprintf(f.writer, "%s %s: %s\n", f.colorize("⚠", colorYellow), location, issue.Error)
	}
	fmt.Fprintln(f.writer)
}

//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatSummary(report *Report) {
	fmt.Fprintln(f.writer, f.colorize("Summary:", colorBold))
	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 80), colorGray))
	fmt.Fprintf(f.writer, "Masters:      %d\n", report.MasterCount)
	fmt.Fprintf(f.writer, "Instances:    %d\n", report.InstanceCount)
	fmt.Fprintf(f.writer, "Glyphs:       %d\n", report.GlyphCount)
	fmt.Fprintf(f.writer, "Classes:      %d\n", report.ClassCount)
	fmt.Fprintf(f.writer, "Features:     %d (+%d prefixes)\n", report.FeatureCount, report.PrefixCount)
	fmt.Fprintf(f.writer, "Kerning:      %d masters\n", report.KernedMasters)
	if len(report.Issues) > 0 {
		fmt.Fprintf(f.writer, "  %s Issues:   %d\n", f.colorize("⚠", colorYellow), len(report.Issues))
	} else {
		fmt.Fprintf(f.writer, "  %s Issues:   0\n", f.colorize("✓", colorGreen))
	}
	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 80), colorGray))
}
