package glyphs

import (
	"fmt"

	"github.com/letterink/glyphsource/plist"
)

// Layer holds the outlines drawn for one glyph at one master or
// intermediate position. The same type backs a layer's background
// drawing, which serializes a reduced key set.
type Layer struct {
	LayerID            string
	AssociatedMasterID string
	Width              float64
	VertWidth          float64
	Visible            bool
	Color              Color
	LeftMetricsKey     string
	RightMetricsKey    string
	WidthMetricsKey    string
	BackgroundImage    *plist.Dict

	name        string
	anchors     []*Anchor
	annotations []*Annotation
	components  []*Component
	guides      []*GuideLine
	hints       []*Hint
	paths       []*Path
	background  *Layer
	userData    *plist.Dict
	glyph       *Glyph
}

// NewLayer returns an empty layer named "Regular".
func NewLayer() *Layer {
	return &Layer{name: "Regular"}
}

// Name returns the display name of the layer. A master layer reports its
// master's name, so renaming the master renames the layer.
func (l *Layer) Name() string {
	if l.IsMasterLayer() {
		if f := l.font(); f != nil {
			if master := f.MasterForID(l.AssociatedMasterID); master != nil {
				return master.Name()
			}
		}
	}
	return l.name
}

// SetName stores the layer's own name. Master layers keep reporting the
// master name regardless.
func (l *Layer) SetName(name string) {
	l.name = name
}

// IsMasterLayer reports whether the layer is the primary drawing of its
// associated master.
func (l *Layer) IsMasterLayer() bool {
	return l.LayerID != "" && l.LayerID == l.AssociatedMasterID
}

// Background returns the background drawing, materializing an empty one
// on first access. A background is serialized only once it has content.
func (l *Layer) Background() *Layer {
	if l.background == nil {
		l.background = NewLayer()
	}
	return l.background
}

// Anchors returns the anchor list of the layer.
func (l *Layer) Anchors() AnchorsProxy {
	return AnchorsProxy{listProxy[Anchor]{
		items:  &l.anchors,
		link:   func(a *Anchor) { a.layer = l },
		unlink: func(a *Anchor) { a.layer = nil },
	}}
}

// Annotations returns the annotation list of the layer.
func (l *Layer) Annotations() AnnotationsProxy {
	return AnnotationsProxy{listProxy[Annotation]{
		items:  &l.annotations,
		link:   func(a *Annotation) { a.layer = l },
		unlink: func(a *Annotation) { a.layer = nil },
	}}
}

// Components returns the component list of the layer.
func (l *Layer) Components() ComponentsProxy {
	return ComponentsProxy{listProxy[Component]{
		items:  &l.components,
		link:   func(c *Component) { c.layer = l },
		unlink: func(c *Component) { c.layer = nil },
	}}
}

// Guides returns the guide list of the layer.
func (l *Layer) Guides() GuidesProxy {
	return GuidesProxy{listProxy[GuideLine]{
		items:  &l.guides,
		link:   func(g *GuideLine) { g.parent = l },
		unlink: func(g *GuideLine) { g.parent = nil },
	}}
}

// Hints returns the hint list of the layer.
func (l *Layer) Hints() HintsProxy {
	return HintsProxy{listProxy[Hint]{
		items:  &l.hints,
		link:   func(h *Hint) { h.layer = l },
		unlink: func(h *Hint) { h.layer = nil },
	}}
}

// Paths returns the path list of the layer.
func (l *Layer) Paths() PathsProxy {
	return PathsProxy{listProxy[Path]{
		items:  &l.paths,
		link:   func(p *Path) { p.layer = l },
		unlink: func(p *Path) { p.layer = nil },
	}}
}

// UserData returns the freeform user data map of the layer.
func (l *Layer) UserData() UserDataProxy {
	return UserDataProxy{data: &l.userData}
}

// Parent returns the owning glyph.
func (l *Layer) Parent() *Glyph {
	return l.glyph
}

func (l *Layer) font() *Font {
	if l.glyph == nil {
		return nil
	}
	return l.glyph.font
}

// hasContent reports whether any drawing state would serialize, used to
// decide whether a background is written at all.
func (l *Layer) hasContent() bool {
	return len(l.anchors) > 0 ||
		len(l.annotations) > 0 ||
		len(l.components) > 0 ||
		len(l.guides) > 0 ||
		len(l.hints) > 0 ||
		len(l.paths) > 0 ||
		l.Visible ||
		l.BackgroundImage.Len() > 0
}

var (
	layerAnchorsField = fieldDef[Layer]{
		key: "anchors",
		decode: func(l *Layer, raw any, ctx *decodeCtx) error {
			anchors, err := decodeList(ctx, "anchors", raw, func() *Anchor { return &Anchor{} }, anchorFields)
			if err != nil {
				return err
			}
			l.anchors = nil
			proxy := l.Anchors()
			for i, a := range anchors {
				if err := proxy.Append(a); err != nil {
					ctx.add(fmt.Sprintf("anchors[%d]", i), err)
				}
			}
			return nil
		},
		should: func(l *Layer) bool { return len(l.anchors) > 0 },
		encode: func(l *Layer) any { return encodeList(l.anchors, anchorFields) },
	}

	layerAnnotationsField = fieldDef[Layer]{
		key: "annotations",
		decode: func(l *Layer, raw any, ctx *decodeCtx) error {
			items, err := decodeList(ctx, "annotations", raw, NewAnnotation, annotationFields)
			if err != nil {
				return err
			}
			for _, a := range items {
				a.layer = l
			}
			l.annotations = items
			return nil
		},
		should: func(l *Layer) bool { return len(l.annotations) > 0 },
		encode: func(l *Layer) any { return encodeList(l.annotations, annotationFields) },
	}

	layerBackgroundImageField = dictField("backgroundImage",
		func(l *Layer) **plist.Dict { return &l.BackgroundImage })

	layerComponentsField = fieldDef[Layer]{
		key: "components",
		decode: func(l *Layer, raw any, ctx *decodeCtx) error {
			items, err := decodeList(ctx, "components", raw, func() *Component { return NewComponent("") }, componentFields)
			if err != nil {
				return err
			}
			for _, c := range items {
				c.layer = l
			}
			l.components = items
			return nil
		},
		should: func(l *Layer) bool { return len(l.components) > 0 },
		encode: func(l *Layer) any { return encodeList(l.components, componentFields) },
	}

	layerGuidesField = fieldDef[Layer]{
		key: "guideLines",
		decode: func(l *Layer, raw any, ctx *decodeCtx) error {
			items, err := decodeList(ctx, "guideLines", raw, NewGuideLine, guideFields)
			if err != nil {
				return err
			}
			for _, g := range items {
				g.parent = l
			}
			l.guides = items
			return nil
		},
		should: func(l *Layer) bool { return len(l.guides) > 0 },
		encode: func(l *Layer) any { return encodeList(l.guides, guideFields) },
	}

	layerHintsField = fieldDef[Layer]{
		key: "hints",
		decode: func(l *Layer, raw any, ctx *decodeCtx) error {
			items, err := decodeList(ctx, "hints", raw, NewHint, hintFields)
			if err != nil {
				return err
			}
			for _, h := range items {
				h.layer = l
			}
			l.hints = items
			return nil
		},
		should: func(l *Layer) bool { return len(l.hints) > 0 },
		encode: func(l *Layer) any { return encodeList(l.hints, hintFields) },
	}

	layerPathsField = fieldDef[Layer]{
		key: "paths",
		decode: func(l *Layer, raw any, ctx *decodeCtx) error {
			items, err := decodeList(ctx, "paths", raw, NewPath, pathFields)
			if err != nil {
				return err
			}
			for _, p := range items {
				p.layer = l
			}
			l.paths = items
			return nil
		},
		should: func(l *Layer) bool { return len(l.paths) > 0 },
		encode: func(l *Layer) any { return encodeList(l.paths, pathFields) },
	}

	layerVisibleField = boolField("visible", func(l *Layer) *bool { return &l.Visible })
)

// backgroundFields is the reduced key set a background drawing
// serializes with.
var backgroundFields = []fieldDef[Layer]{
	layerAnchorsField,
	layerAnnotationsField,
	layerBackgroundImageField,
	layerComponentsField,
	layerGuidesField,
	layerHintsField,
	layerPathsField,
	layerVisibleField,
}

var layerFields = []fieldDef[Layer]{
	layerAnchorsField,
	layerAnnotationsField,
	writeWhen(
		strField("associatedMasterId", func(l *Layer) *string { return &l.AssociatedMasterID }),
		func(l *Layer) bool { return l.LayerID != l.AssociatedMasterID && l.AssociatedMasterID != "" },
	),
	{
		key: "background",
		decode: func(l *Layer, raw any, ctx *decodeCtx) error {
			d, ok := raw.(*plist.Dict)
			if !ok {
				return coercionError("dict", raw)
			}
			bg := NewLayer()
			decodeFields(bg, backgroundFields, d, ctx.sub("background"))
			l.background = bg
			return nil
		},
		should: func(l *Layer) bool { return l.background != nil && l.background.hasContent() },
		encode: func(l *Layer) any { return encodeFields(l.background, backgroundFields) },
	},
	layerBackgroundImageField,
	colorField("color", func(l *Layer) *Color { return &l.Color }),
	layerComponentsField,
	layerGuidesField,
	layerHintsField,
	strField("layerId", func(l *Layer) *string { return &l.LayerID }),
	strField("leftMetricsKey", func(l *Layer) *string { return &l.LeftMetricsKey }),
	writeWhen(
		fieldDef[Layer]{
			key: "name",
			decode: func(l *Layer, raw any, _ *decodeCtx) error {
				s, err := toString(raw)
				if err != nil {
					return err
				}
				l.name = s
				return nil
			},
			encode: func(l *Layer) any { return l.name },
		},
		func(l *Layer) bool { return l.LayerID != l.AssociatedMasterID },
	),
	layerPathsField,
	strField("rightMetricsKey", func(l *Layer) *string { return &l.RightMetricsKey }),
	dictField("userData", func(l *Layer) **plist.Dict { return &l.userData }),
	floatField("vertWidth", func(l *Layer) *float64 { return &l.VertWidth }),
	layerVisibleField,
	alwaysWrite(floatField("width", func(l *Layer) *float64 { return &l.Width })),
	strField("widthMetricsKey", func(l *Layer) *string { return &l.WidthMetricsKey }),
}
