package glyphs

import (
	"strconv"

	"github.com/letterink/glyphsource/plist"
)

// Glyph is one glyph of a font: identity, classification, kerning
// membership and the layers drawn for it.
type Glyph struct {
	Name                string
	Unicode             string
	Category            string
	SubCategory         string
	Script              string
	Production          string
	Export              bool
	Color               Color
	LastChange          Time
	Note                string
	LeftKerningGroup    string
	RightKerningGroup   string
	TopKerningGroup     string
	BottomKerningGroup  string
	LeftKerningKey      string
	RightKerningKey     string
	LeftMetricsKey      string
	RightMetricsKey     string
	TopMetricsKey       string
	BottomMetricsKey    string
	WidthMetricsKey     string
	VertWidthMetricsKey string
	PartsSettings       []*PartProperty
	Selected            bool

	layers     map[string]*Layer
	layerOrder []string
	userData   *plist.Dict
	font       *Font
}

// NewGlyph returns an exporting glyph with the given name and no layers.
func NewGlyph(name string) *Glyph {
	return &Glyph{Name: name, Export: true}
}

// Char returns the character the glyph's unicode value encodes, or ""
// when the glyph has no valid codepoint.
func (g *Glyph) Char() string {
	if g.Unicode == "" {
		return ""
	}
	n, err := strconv.ParseUint(g.Unicode, 16, 32)
	if err != nil {
		return ""
	}
	return string(rune(n))
}

// Layers returns the layer collection of the glyph.
func (g *Glyph) Layers() LayersProxy {
	return LayersProxy{glyph: g}
}

// UserData returns the freeform user data map of the glyph.
func (g *Glyph) UserData() UserDataProxy {
	return UserDataProxy{data: &g.userData}
}

// Parent returns the owning font.
func (g *Glyph) Parent() *Font {
	return g.font
}

// setupLayer binds layer to the glyph under id. When id names a font
// master the layer becomes that master's drawing.
func (g *Glyph) setupLayer(layer *Layer, id string) {
	layer.glyph = g
	layer.LayerID = id
	if f := g.font; f != nil && f.MasterForID(id) != nil {
		layer.AssociatedMasterID = id
	}
}

func (g *Glyph) storeLayer(id string, layer *Layer) {
	if g.layers == nil {
		g.layers = make(map[string]*Layer)
	}
	if _, ok := g.layers[id]; !ok {
		g.layerOrder = append(g.layerOrder, id)
	}
	g.layers[id] = layer
}

func (g *Glyph) deleteLayer(id string) {
	delete(g.layers, id)
	for i, key := range g.layerOrder {
		if key == id {
			g.layerOrder = append(g.layerOrder[:i], g.layerOrder[i+1:]...)
			return
		}
	}
}

func (g *Glyph) clearLayers() {
	g.layers = nil
	g.layerOrder = nil
}

var glyphFields = []fieldDef[Glyph]{
	colorField("color", func(g *Glyph) *Color { return &g.Color }),
	boolFieldDefault("export", true, func(g *Glyph) *bool { return &g.Export }),
	strField("glyphname", func(g *Glyph) *string { return &g.Name }),
	strField("production", func(g *Glyph) *string { return &g.Production }),
	timeField("lastChange", func(g *Glyph) *Time { return &g.LastChange }),
	{
		key: "layers",
		decode: func(g *Glyph, raw any, ctx *decodeCtx) error {
			layers, err := decodeList(ctx, "layers", raw, NewLayer, layerFields)
			if err != nil {
				return err
			}
			for _, layer := range layers {
				g.setupLayer(layer, layer.LayerID)
				g.storeLayer(layer.LayerID, layer)
			}
			return nil
		},
		should: func(g *Glyph) bool { return len(g.layerOrder) > 0 },
		encode: func(g *Glyph) any { return encodeList(g.Layers().All(), layerFields) },
	},
	strField("leftKerningGroup", func(g *Glyph) *string { return &g.LeftKerningGroup }),
	strField("leftMetricsKey", func(g *Glyph) *string { return &g.LeftMetricsKey }),
	strField("widthMetricsKey", func(g *Glyph) *string { return &g.WidthMetricsKey }),
	strField("vertWidthMetricsKey", func(g *Glyph) *string { return &g.VertWidthMetricsKey }),
	strField("note", func(g *Glyph) *string { return &g.Note }),
	strField("rightKerningGroup", func(g *Glyph) *string { return &g.RightKerningGroup }),
	strField("rightMetricsKey", func(g *Glyph) *string { return &g.RightMetricsKey }),
	strField("topKerningGroup", func(g *Glyph) *string { return &g.TopKerningGroup }),
	strField("topMetricsKey", func(g *Glyph) *string { return &g.TopMetricsKey }),
	strField("bottomKerningGroup", func(g *Glyph) *string { return &g.BottomKerningGroup }),
	strField("bottomMetricsKey", func(g *Glyph) *string { return &g.BottomMetricsKey }),
	strField("unicode", func(g *Glyph) *string { return &g.Unicode }),
	strField("script", func(g *Glyph) *string { return &g.Script }),
	strField("category", func(g *Glyph) *string { return &g.Category }),
	strField("subCategory", func(g *Glyph) *string { return &g.SubCategory }),
	dictField("userData", func(g *Glyph) **plist.Dict { return &g.userData }),
	{
		key: "partsSettings",
		decode: func(g *Glyph, raw any, ctx *decodeCtx) error {
			items, err := decodeList(ctx, "partsSettings", raw, NewPartProperty, partPropertyFields)
			if err != nil {
				return err
			}
			g.PartsSettings = items
			return nil
		},
		should: func(g *Glyph) bool { return len(g.PartsSettings) > 0 },
		encode: func(g *Glyph) any { return encodeList(g.PartsSettings, partPropertyFields) },
	},
	// Kerning exception keys appear in sources but are never re-emitted.
	{
		key: "leftKerningKey",
		decode: func(g *Glyph, raw any, _ *decodeCtx) error {
			s, err := toString(raw)
			if err != nil {
				return err
			}
			g.LeftKerningKey = s
			return nil
		},
	},
	{
		key: "rightKerningKey",
		decode: func(g *Glyph, raw any, _ *decodeCtx) error {
			s, err := toString(raw)
			if err != nil {
				return err
			}
			g.RightKerningKey = s
			return nil
		},
	},
}
