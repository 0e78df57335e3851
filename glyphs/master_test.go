package glyphs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_FontMaster_Defaults(t *testing.T) {
	m := NewFontMaster()

	assert.Equal(t, "Regular", m.Weight())
	assert.Equal(t, "Regular", m.Width())
	assert.Equal(t, 100.0, m.WeightValue)
	assert.Equal(t, 100.0, m.WidthValue)
	assert.Equal(t, "Regular", m.Name())
}

func Test_FontMaster_DerivedName(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m *FontMaster)
		want  string
	}{
		{
			"regular regular collapses", func(m *FontMaster) {}, "Regular",
		},
		{
			"weight drops redundant regular",
			func(m *FontMaster) { m.SetWeight("Bold") },
			"Bold",
		},
		{
			"width drops redundant regular",
			func(m *FontMaster) { m.SetWidth("Condensed") },
			"Condensed",
		},
		{
			"weight and width combine",
			func(m *FontMaster) { m.SetWeight("Light"); m.SetWidth("Expanded") },
			"Light Expanded",
		},
		{
			"custom name appended",
			func(m *FontMaster) { m.SetWeight("Bold"); m.CustomName = "Display" },
			"Bold Display",
		},
		{
			"duplicate custom name dropped",
			func(m *FontMaster) { m.SetWeight("Bold"); m.CustomName = "Bold" },
			"Bold",
		},
		{
			"italic angle appends italic",
			func(m *FontMaster) { m.SetWeight("Bold"); m.ItalicAngle = 11 },
			"Bold Italic",
		},
		{
			"regular italic keeps regular",
			func(m *FontMaster) { m.ItalicAngle = 9 },
			"Regular Italic",
		},
		{
			"tiny angle is not italic",
			func(m *FontMaster) { m.ItalicAngle = 0.005 },
			"Regular",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewFontMaster()
			tt.setup(m)
			assert.Equal(t, tt.want, m.Name())
		})
	}
}

func Test_FontMaster_NameParameterWins(t *testing.T) {
	m := NewFontMaster()
	m.SetWeight("Bold")
	require.NoError(t, m.CustomParameters().Set("Master Name", "Display Black"))

	assert.Equal(t, "Display Black", m.Name())
}

func Test_FontMaster_NameFreezesOnFirstRead(t *testing.T) {
	m := NewFontMaster()
	m.SetWeight("Bold")
	require.Equal(t, "Bold", m.Name())

	// Later attribute edits no longer rename the master.
	m.SetWeight("Black")
	m.ItalicAngle = 12
	assert.Equal(t, "Bold", m.Name())
}

func Test_FontMaster_SetNameOverrides(t *testing.T) {
	m := NewFontMaster()
	m.SetName("Primary")
	m.SetWeight("Bold")

	assert.Equal(t, "Primary", m.Name())
}

func Test_FontMaster_GuidesKeepBackReference(t *testing.T) {
	m := NewFontMaster()
	g := NewGuideLine()
	g.Position = NewPoint(0, 500)

	m.Guides().Append(g)
	assert.Same(t, m, g.Parent())
	assert.Equal(t, 1, m.Guides().Len())

	require.NoError(t, m.Guides().Remove(g))
	assert.Nil(t, g.Parent())
}
