package glyphs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Glyph_Char(t *testing.T) {
	tests := []struct {
		name    string
		unicode string
		want    string
	}{
		{"latin", "0041", "A"},
		{"bmp", "00E4", "ä"},
		{"supplementary", "1D400", "𝐀"},
		{"empty", "", ""},
		{"garbage", "zz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGlyph("x")
			g.Unicode = tt.unicode
			assert.Equal(t, tt.want, g.Char())
		})
	}
}

func Test_GlyphsProxy_Lookup(t *testing.T) {
	font := NewFont()
	adieresis := NewGlyph("adieresis")
	adieresis.Unicode = "00E4"
	font.Glyphs().Append(NewGlyph("A"), adieresis)

	tests := []struct {
		name string
		key  string
		want *Glyph
	}{
		{"by name", "adieresis", adieresis},
		{"by character", "ä", adieresis},
		{"by decomposed character", "ä", adieresis},
		{"by hex", "00E4", adieresis},
		{"by lowercase hex", "00e4", adieresis},
		{"miss", "missing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := font.Glyphs().Get(tt.key)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Same(t, tt.want, got)
		})
	}

	assert.True(t, font.Glyphs().Has("A"))
	assert.False(t, font.Glyphs().Has("B"))
}

func Test_GlyphsProxy_AppendBindsFont(t *testing.T) {
	font := NewFont()
	g := NewGlyph("A")
	font.Glyphs().Append(g)

	assert.Same(t, font, g.Parent())

	require.NoError(t, font.Glyphs().Remove("A"))
	assert.Nil(t, g.Parent())
	assert.ErrorIs(t, font.Glyphs().Remove("A"), ErrNotFound)
}

func Test_GlyphsProxy_AppendRebindsOpenLayers(t *testing.T) {
	// A glyph decoded before its font has layers without a master
	// association; claiming the glyph closes them.
	font := NewFont()
	master := NewFontMaster()
	master.ID = "M1"
	font.Masters().Append(master)

	g := NewGlyph("A")
	layer := NewLayer()
	layer.LayerID = "M1"
	g.storeLayer("M1", layer)
	layer.glyph = g

	require.Empty(t, layer.AssociatedMasterID)
	font.Glyphs().Append(g)
	assert.Equal(t, "M1", layer.AssociatedMasterID)
	assert.True(t, layer.IsMasterLayer())
}

func Test_LayersProxy_GetMaterializesMasterLayer(t *testing.T) {
	_, _, glyph := boundFont(t)

	require.False(t, glyph.Layers().Has("M1"))

	layer := glyph.Layers().Get("M1")
	require.NotNil(t, layer)
	assert.True(t, glyph.Layers().Has("M1"), "read-through stores the layer")
	assert.True(t, layer.IsMasterLayer())
	assert.Same(t, layer, glyph.Layers().Get("M1"))

	assert.Nil(t, glyph.Layers().Get("no-such-id"), "only master ids materialize")
}

func Test_LayersProxy_OrderAndRemoval(t *testing.T) {
	_, _, glyph := boundFont(t)

	first := NewLayer()
	second := NewLayer()
	glyph.Layers().Put("M1", first)
	glyph.Layers().Append(second)

	require.Equal(t, 2, glyph.Layers().Len())
	assert.Equal(t, "M1", glyph.Layers().IDs()[0])

	at, err := glyph.Layers().At(-1)
	require.NoError(t, err)
	assert.Same(t, second, at)

	require.NoError(t, glyph.Layers().Remove("M1"))
	assert.Equal(t, []string{second.LayerID}, glyph.Layers().IDs())
	assert.Nil(t, first.Parent())

	assert.ErrorIs(t, glyph.Layers().Remove("M1"), ErrNotFound)
}

func Test_LayersProxy_ReplaceWithMap(t *testing.T) {
	_, _, glyph := boundFont(t)

	a := NewLayer()
	a.LayerID = "B2"
	b := NewLayer()
	b.LayerID = "A1"
	require.NoError(t, glyph.Layers().Replace(map[string]*Layer{"B2": a, "A1": b}))

	assert.Equal(t, []string{"A1", "B2"}, glyph.Layers().IDs(), "map input is ordered by key")

	require.NoError(t, glyph.Layers().Replace(nil))
	assert.Equal(t, 0, glyph.Layers().Len())
}

func Test_Font_SelectionFollowsFlags(t *testing.T) {
	font := NewFont()
	a := NewGlyph("A")
	b := NewGlyph("B")
	c := NewGlyph("C")
	font.Glyphs().Append(a, b, c)

	assert.Empty(t, font.Selection())

	a.Selected = true
	c.Selected = true
	assert.Equal(t, []*Glyph{a, c}, font.Selection())
}
