// Package glyphs models a Glyphs font source as a typed entity graph:
// a font owning masters, instances, glyphs, layers and outline elements,
// each decoded from and re-encoded to the generic property-list tree the
// file format carries. Collection access goes through proxies that keep
// parent back-references and key invariants intact, and serialization
// suppresses values that match their field defaults so written files
// stay minimal and diffable.
package glyphs

import (
	"fmt"
	"io"
	"os"

	"github.com/letterink/glyphsource/plist"
)

// Font is the root of the document graph.
type Font struct {
	AppVersion                 int
	DisplayStrings             string
	Copyright                  string
	Date                       Time
	Designer                   string
	DesignerURL                string
	DisablesAutomaticAlignment bool
	DisablesNiceNames          bool
	FamilyName                 string
	Grid                       int
	GridLength                 int
	GridSubDivision            int
	KeepAlternatesTogether     bool
	Manufacturer               string
	ManufacturerURL            string
	UnitsPerEm                 int
	VersionMajor               int

	versionMinor    int
	classes         []*Class
	features        []*Feature
	featurePrefixes []*FeaturePrefix
	glyphs          []*Glyph
	instances       []*Instance
	masters         []*FontMaster
	params          []*CustomParameter
	kerning         *Kerning
	userData        *plist.Dict
	filePath        string
}

// NewFont returns an empty font with the application defaults: version
// 1.000, 1000 units per em and a unit grid.
func NewFont() *Font {
	return &Font{
		FamilyName:      "Unnamed font",
		Grid:            0,
		GridLength:      1,
		GridSubDivision: 1,
		UnitsPerEm:      1000,
		VersionMajor:    1,
		kerning:         NewKerning(),
	}
}

// VersionMinor returns the minor part of the font version.
func (f *Font) VersionMinor() int {
	return f.versionMinor
}

// SetVersionMinor stores the minor version, which must stay within
// 0-999.
func (f *Font) SetVersionMinor(v int) error {
	if v < 0 || v > 999 {
		return fmt.Errorf("%w: %d", ErrVersionRange, v)
	}
	f.versionMinor = v
	return nil
}

// Masters returns the master list of the font.
func (f *Font) Masters() MastersProxy {
	return MastersProxy{listProxy[FontMaster]{
		items:  &f.masters,
		link:   func(m *FontMaster) { m.font = f },
		unlink: func(m *FontMaster) { m.font = nil },
	}}
}

// MasterForID returns the master stored under id, or nil.
func (f *Font) MasterForID(id string) *FontMaster {
	for _, m := range f.masters {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// Instances returns the instance list of the font.
func (f *Font) Instances() InstancesProxy {
	return InstancesProxy{listProxy[Instance]{
		items:  &f.instances,
		link:   func(i *Instance) { i.font = f },
		unlink: func(i *Instance) { i.font = nil },
	}}
}

// Glyphs returns the glyph collection of the font.
func (f *Font) Glyphs() GlyphsProxy {
	return GlyphsProxy{listProxy[Glyph]{
		items:  &f.glyphs,
		link:   f.setupGlyph,
		unlink: func(g *Glyph) { g.font = nil },
	}}
}

// Classes returns the OpenType class list of the font.
func (f *Font) Classes() ClassesProxy {
	return ClassesProxy{listProxy[Class]{
		items:  &f.classes,
		link:   func(c *Class) { c.font = f },
		unlink: func(c *Class) { c.font = nil },
	}}
}

// Features returns the OpenType feature list of the font.
func (f *Font) Features() FeaturesProxy {
	return FeaturesProxy{listProxy[Feature]{
		items:  &f.features,
		link:   func(ft *Feature) { ft.font = f },
		unlink: func(ft *Feature) { ft.font = nil },
	}}
}

// FeaturePrefixes returns the feature prefix list of the font.
func (f *Font) FeaturePrefixes() FeaturePrefixesProxy {
	return FeaturePrefixesProxy{listProxy[FeaturePrefix]{
		items:  &f.featurePrefixes,
		link:   func(p *FeaturePrefix) { p.font = f },
		unlink: func(p *FeaturePrefix) { p.font = nil },
	}}
}

// CustomParameters returns the custom parameter store of the font.
func (f *Font) CustomParameters() ParamsProxy {
	return ParamsProxy{owner: f, params: &f.params}
}

// UserData returns the freeform user data map of the font.
func (f *Font) UserData() UserDataProxy {
	return UserDataProxy{data: &f.userData}
}

// Kerning returns the kerning table of the font.
func (f *Font) Kerning() *Kerning {
	if f.kerning == nil {
		f.kerning = NewKerning()
	}
	return f.kerning
}

// SetKerning installs a replacement kerning table.
func (f *Font) SetKerning(k *Kerning) {
	f.kerning = k
}

// KerningForPair returns the kerning adjustment between left and right
// under the given master.
func (f *Font) KerningForPair(masterID, left, right string) (float64, bool) {
	return f.Kerning().Value(masterID, left, right)
}

// SetKerningForPair stores the kerning adjustment between left and right
// under the given master.
func (f *Font) SetKerningForPair(masterID, left, right string, value float64) {
	f.Kerning().Set(masterID, left, right, value)
}

// RemoveKerningForPair deletes the kerning adjustment between left and
// right under the given master.
func (f *Font) RemoveKerningForPair(masterID, left, right string) error {
	return f.Kerning().Remove(masterID, left, right)
}

// Note returns the font note, stored as the "note" custom parameter.
func (f *Font) Note() string {
	return f.CustomParameters().GetString("note")
}

// SetNote stores the font note as the "note" custom parameter.
func (f *Font) SetNote(note string) error {
	return f.CustomParameters().Set("note", note)
}

// Selection returns the glyphs currently flagged as selected, in glyph
// order.
func (f *Font) Selection() []*Glyph {
	var out []*Glyph
	for _, g := range f.glyphs {
		if g.Selected {
			out = append(out, g)
		}
	}
	return out
}

// FilePath returns the path the font was loaded from or last saved to.
func (f *Font) FilePath() string {
	return f.filePath
}

// setupGlyph claims g and rebinds any layers whose master association
// was left open, the state glyphs decoded before their font carry.
func (f *Font) setupGlyph(g *Glyph) {
	g.font = f
	for _, id := range g.layerOrder {
		layer := g.layers[id]
		if layer.AssociatedMasterID == "" {
			g.setupLayer(layer, layer.LayerID)
		}
	}
}

// Tree encodes the font into a generic tree, applying the default
// suppression policy field by field.
func (f *Font) Tree() *plist.Dict {
	return encodeFields(f, fontFields)
}

// Write serializes the font to w in the Glyphs text format.
func (f *Font) Write(w io.Writer) error {
	return plist.Write(w, f.Tree())
}

// Save writes the font back to the path it was loaded from.
func (f *Font) Save() error {
	if f.filePath == "" {
		return ErrNoFilePath
	}
	return f.SaveAs(f.filePath)
}

// SaveAs writes the font to path and remembers it for later saves.
func (f *Font) SaveAs(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save font: %w", err)
	}
	if err := f.Write(file); err != nil {
		file.Close()
		return fmt.Errorf("save font: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("save font: %w", err)
	}
	f.filePath = path
	return nil
}

var fontFields = []fieldDef[Font]{
	intField(".appVersion", func(f *Font) *int { return &f.AppVersion }),
	strField("DisplayStrings", func(f *Font) *string { return &f.DisplayStrings }),
	{
		key: "classes",
		decode: func(f *Font, raw any, ctx *decodeCtx) error {
			items, err := decodeList(ctx, "classes", raw, func() *Class { return &Class{} }, classFields)
			if err != nil {
				return err
			}
			return f.Classes().Replace(items)
		},
		should: func(f *Font) bool { return len(f.classes) > 0 },
		encode: func(f *Font) any { return encodeList(f.classes, classFields) },
	},
	strField("copyright", func(f *Font) *string { return &f.Copyright }),
	paramsField(
		func(f *Font) *[]*CustomParameter { return &f.params },
		func(f *Font) any { return f },
	),
	timeField("date", func(f *Font) *Time { return &f.Date }),
	strField("designer", func(f *Font) *string { return &f.Designer }),
	strField("designerURL", func(f *Font) *string { return &f.DesignerURL }),
	boolField("disablesAutomaticAlignment", func(f *Font) *bool { return &f.DisablesAutomaticAlignment }),
	boolField("disablesNiceNames", func(f *Font) *bool { return &f.DisablesNiceNames }),
	strField("familyName", func(f *Font) *string { return &f.FamilyName }),
	{
		key: "featurePrefixes",
		decode: func(f *Font, raw any, ctx *decodeCtx) error {
			items, err := decodeList(ctx, "featurePrefixes", raw, func() *FeaturePrefix { return &FeaturePrefix{} }, featurePrefixFields)
			if err != nil {
				return err
			}
			return f.FeaturePrefixes().Replace(items)
		},
		should: func(f *Font) bool { return len(f.featurePrefixes) > 0 },
		encode: func(f *Font) any { return encodeList(f.featurePrefixes, featurePrefixFields) },
	},
	{
		key: "features",
		decode: func(f *Font, raw any, ctx *decodeCtx) error {
			items, err := decodeList(ctx, "features", raw, func() *Feature { return &Feature{} }, featureFields)
			if err != nil {
				return err
			}
			return f.Features().Replace(items)
		},
		should: func(f *Font) bool { return len(f.features) > 0 },
		encode: func(f *Font) any { return encodeList(f.features, featureFields) },
	},
	{
		key: "fontMaster",
		decode: func(f *Font, raw any, ctx *decodeCtx) error {
			items, err := decodeList(ctx, "fontMaster", raw, NewFontMaster, masterFields)
			if err != nil {
				return err
			}
			return f.Masters().Replace(items)
		},
		should: func(f *Font) bool { return len(f.masters) > 0 },
		encode: func(f *Font) any { return encodeList(f.masters, masterFields) },
	},
	{
		key: "glyphs",
		decode: func(f *Font, raw any, ctx *decodeCtx) error {
			items, err := decodeGlyphList(ctx, raw)
			if err != nil {
				return err
			}
			return f.Glyphs().Replace(items)
		},
		should: func(f *Font) bool { return len(f.glyphs) > 0 },
		encode: func(f *Font) any { return encodeList(f.glyphs, glyphFields) },
	},
	intField("grid", func(f *Font) *int { return &f.Grid }),
	intFieldDefault("gridLength", 1, func(f *Font) *int { return &f.GridLength }),
	intFieldDefault("gridSubDivision", 1, func(f *Font) *int { return &f.GridSubDivision }),
	{
		key: "instances",
		decode: func(f *Font, raw any, ctx *decodeCtx) error {
			items, err := decodeList(ctx, "instances", raw, NewInstance, instanceFields)
			if err != nil {
				return err
			}
			return f.Instances().Replace(items)
		},
		should: func(f *Font) bool { return len(f.instances) > 0 },
		encode: func(f *Font) any { return encodeList(f.instances, instanceFields) },
	},
	boolField("keepAlternatesTogether", func(f *Font) *bool { return &f.KeepAlternatesTogether }),
	{
		key: "kerning",
		decode: func(f *Font, raw any, _ *decodeCtx) error {
			k, err := decodeKerning(raw)
			if err != nil {
				return err
			}
			f.kerning = k
			return nil
		},
		should: func(f *Font) bool { return f.kerning.Len() > 0 },
		encode: func(f *Font) any { return f.kerning.tree() },
	},
	strField("manufacturer", func(f *Font) *string { return &f.Manufacturer }),
	strField("manufacturerURL", func(f *Font) *string { return &f.ManufacturerURL }),
	alwaysWrite(intFieldDefault("unitsPerEm", 1000, func(f *Font) *int { return &f.UnitsPerEm })),
	dictField("userData", func(f *Font) **plist.Dict { return &f.userData }),
	intField("versionMajor", func(f *Font) *int { return &f.VersionMajor }),
	{
		key: "versionMinor",
		decode: func(f *Font, raw any, _ *decodeCtx) error {
			n, err := toInt(raw)
			if err != nil {
				return err
			}
			return f.SetVersionMinor(n)
		},
		should: func(*Font) bool { return true },
		encode: func(f *Font) any { return f.versionMinor },
	},
}
