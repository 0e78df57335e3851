package glyphs

import (
	"fmt"

	"github.com/letterink/glyphsource/plist"
)

// Path is one closed or open contour of a layer.
type Path struct {
	Closed bool

	nodes []*Node
	layer *Layer
}

// NewPath returns an empty closed path.
func NewPath() *Path {
	return &Path{Closed: true}
}

// Nodes returns the node list of the path.
func (p *Path) Nodes() NodesProxy {
	return NodesProxy{listProxy[Node]{
		items:  &p.nodes,
		link:   func(n *Node) { n.path = p },
		unlink: func(n *Node) { n.path = nil },
	}}
}

// Parent returns the owning layer.
func (p *Path) Parent() *Layer {
	return p.layer
}

// Segments groups the nodes of the path into drawing segments. The
// document model does not carry the outline geometry.
func (p *Path) Segments() ([][]*Node, error) {
	return nil, ErrNotImplemented
}

// Direction reports the winding direction of the path. The document
// model does not carry the outline geometry.
func (p *Path) Direction() (int, error) {
	return 0, ErrNotImplemented
}

var pathFields = []fieldDef[Path]{
	alwaysWrite(boolField("closed", func(p *Path) *bool { return &p.Closed })),
	{
		key: "nodes",
		decode: func(p *Path, raw any, ctx *decodeCtx) error {
			arr, ok := raw.(plist.Array)
			if !ok {
				return coercionError("list", raw)
			}
			nodes := make([]*Node, 0, len(arr))
			for i, item := range arr {
				s, err := toString(item)
				if err != nil {
					ctx.add(fmt.Sprintf("nodes[%d]", i), err)
					continue
				}
				node, err := ParseNode(s)
				if err != nil {
					ctx.add(fmt.Sprintf("nodes[%d]", i), err)
					continue
				}
				node.path = p
				nodes = append(nodes, node)
			}
			p.nodes = nodes
			return nil
		},
		should: func(p *Path) bool { return len(p.nodes) > 0 },
		encode: func(p *Path) any {
			arr := make(plist.Array, len(p.nodes))
			for i, node := range p.nodes {
				arr[i] = node.String()
			}
			return arr
		},
	},
}

// Component places another glyph inside a layer under an affine
// transform.
type Component struct {
	Alignment int
	Anchor    string
	Locked    bool
	Name      string
	Piece     *plist.Dict
	Transform Transform

	layer *Layer
}

// NewComponent returns a component referencing the named glyph at the
// identity transform.
func NewComponent(glyphName string) *Component {
	return &Component{Name: glyphName, Transform: Identity()}
}

// Parent returns the owning layer.
func (c *Component) Parent() *Layer {
	return c.layer
}

var componentFields = []fieldDef[Component]{
	intField("alignment", func(c *Component) *int { return &c.Alignment }),
	strField("anchor", func(c *Component) *string { return &c.Anchor }),
	boolField("locked", func(c *Component) *bool { return &c.Locked }),
	strField("name", func(c *Component) *string { return &c.Name }),
	dictField("piece", func(c *Component) **plist.Dict { return &c.Piece }),
	transformField("transform", func(c *Component) *Transform { return &c.Transform }),
}

// Anchor is a named attachment point of a layer.
type Anchor struct {
	Name     string
	Position Point

	layer *Layer
}

// NewAnchor returns a named anchor at the given position.
func NewAnchor(name string, position Point) *Anchor {
	return &Anchor{Name: name, Position: position}
}

// Parent returns the owning layer.
func (a *Anchor) Parent() *Layer {
	return a.layer
}

var anchorFields = []fieldDef[Anchor]{
	strField("name", func(a *Anchor) *string { return &a.Name }),
	pointField("position", func(a *Anchor) *Point { return &a.Position }),
}

// GuideLine is a drawing guide owned by either a master or a layer.
type GuideLine struct {
	Alignment       string
	Angle           float64
	Filter          string
	Locked          bool
	Name            string
	Position        Point
	ShowMeasurement bool

	parent any
}

// NewGuideLine returns an empty guide.
func NewGuideLine() *GuideLine {
	return &GuideLine{}
}

// Parent returns the owning master or layer.
func (g *GuideLine) Parent() any {
	return g.parent
}

var guideFields = []fieldDef[GuideLine]{
	strField("alignment", func(g *GuideLine) *string { return &g.Alignment }),
	floatField("angle", func(g *GuideLine) *float64 { return &g.Angle }),
	strField("filter", func(g *GuideLine) *string { return &g.Filter }),
	boolField("locked", func(g *GuideLine) *bool { return &g.Locked }),
	strField("name", func(g *GuideLine) *string { return &g.Name }),
	pointField("position", func(g *GuideLine) *Point { return &g.Position }),
	boolField("showMeasurement", func(g *GuideLine) *bool { return &g.ShowMeasurement }),
}

// Annotation is an editor note pinned to a position in a layer.
type Annotation struct {
	Angle    float64
	Position Point
	Text     string
	Type     string
	Width    float64

	layer *Layer
}

// NewAnnotation returns an empty annotation.
func NewAnnotation() *Annotation {
	return &Annotation{}
}

// Parent returns the owning layer.
func (a *Annotation) Parent() *Layer {
	return a.layer
}

var annotationFields = []fieldDef[Annotation]{
	floatField("angle", func(a *Annotation) *float64 { return &a.Angle }),
	pointField("position", func(a *Annotation) *Point { return &a.Position }),
	strField("text", func(a *Annotation) *string { return &a.Text }),
	strField("type", func(a *Annotation) *string { return &a.Type }),
	floatField("width", func(a *Annotation) *float64 { return &a.Width }),
}

// Hint type values as the Glyphs application numbers them.
const (
	HintTopGhost      = -1
	HintStem          = 0
	HintBottomGhost   = 1
	HintTTAnchor      = 2
	HintTTStem        = 3
	HintTTAlign       = 4
	HintTTInterpolate = 5
	HintTTDiagonal    = 6
	HintTTDelta       = 8
	HintCorner        = 16
	HintCap           = 17
)

// Hint option bits.
const (
	HintOptionTTRound     = 0
	HintOptionTTRoundUp   = 1
	HintOptionTTRoundDown = 2
	HintOptionTTDontRound = 4
	HintOptionTriple      = 128
)

// Hint is a manual PostScript or TrueType hint attached to a layer.
type Hint struct {
	Horizontal bool
	Options    int
	Origin     Point
	Other1     Point
	Other2     Point
	Place      Point
	Scale      Point
	Stem       int
	Target     HintTarget
	Type       string

	layer *Layer
}

// NewHint returns an empty hint.
func NewHint() *Hint {
	return &Hint{}
}

// Parent returns the owning layer.
func (h *Hint) Parent() *Layer {
	return h.layer
}

var hintFields = []fieldDef[Hint]{
	boolField("horizontal", func(h *Hint) *bool { return &h.Horizontal }),
	intField("options", func(h *Hint) *int { return &h.Options }),
	pointField("origin", func(h *Hint) *Point { return &h.Origin }),
	pointField("other1", func(h *Hint) *Point { return &h.Other1 }),
	pointField("other2", func(h *Hint) *Point { return &h.Other2 }),
	pointField("place", func(h *Hint) *Point { return &h.Place }),
	pointField("scale", func(h *Hint) *Point { return &h.Scale }),
	intField("stem", func(h *Hint) *int { return &h.Stem }),
	{
		key: "target",
		decode: func(h *Hint, raw any, _ *decodeCtx) error {
			s, err := toString(raw)
			if err != nil {
				return err
			}
			target, err := ParseHintTarget(s)
			if err != nil {
				return err
			}
			h.Target = target
			return nil
		},
		should: func(h *Hint) bool { return !h.Target.IsZero() },
		encode: func(h *Hint) any { return h.Target.String() },
	},
	strField("type", func(h *Hint) *string { return &h.Type }),
}

// PartProperty describes one axis of a smart component: the dimension
// name plus the designed bottom and top poles.
type PartProperty struct {
	Name        string
	BottomName  string
	BottomValue int
	TopName     string
	TopValue    int
}

// NewPartProperty returns an empty smart component axis.
func NewPartProperty() *PartProperty {
	return &PartProperty{}
}

var partPropertyFields = []fieldDef[PartProperty]{
	alwaysWrite(strField("name", func(p *PartProperty) *string { return &p.Name })),
	alwaysWrite(strField("bottomName", func(p *PartProperty) *string { return &p.BottomName })),
	alwaysWrite(intField("bottomValue", func(p *PartProperty) *int { return &p.BottomValue })),
	alwaysWrite(strField("topName", func(p *PartProperty) *string { return &p.TopName })),
	alwaysWrite(intField("topValue", func(p *PartProperty) *int { return &p.TopValue })),
}
