package glyphs

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/letterink/glyphsource/plist"
)

// Node types.
const (
	NodeMove     = "move"
	NodeLine     = "line"
	NodeCurve    = "curve"
	NodeQCurve   = "qcurve"
	NodeOffCurve = "offcurve"
)

var nodeRx = regexp.MustCompile(`^([-.e\d]+) ([-.e\d]+) (LINE|CURVE|QCURVE|OFFCURVE|n/a)(?: (SMOOTH))?$`)

// Node is one on- or off-curve point of a path.
type Node struct {
	Position Point
	Type     string
	Smooth   bool

	path *Path
}

// NewNode returns a node of the given type at x, y.
func NewNode(x, y float64, nodeType string) *Node {
	return &Node{Position: NewPoint(x, y), Type: nodeType}
}

// ParseNode reads the literal node form "x y TYPE", with an optional
// trailing SMOOTH marker.
func ParseNode(s string) (*Node, error) {
	m := nodeRx.FindStringSubmatch(s)
	if m == nil {
		return nil, coercionError("node", s)
	}
	x, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil, coercionError("node", s)
	}
	y, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return nil, coercionError("node", s)
	}
	return &Node{
		Position: NewPoint(x, y),
		Type:     strings.ToLower(m[3]),
		Smooth:   m[4] != "",
	}, nil
}

// Parent returns the owning path.
func (n *Node) Parent() *Path {
	return n.path
}

// String renders the node in its literal file form.
func (n *Node) String() string {
	content := strings.ToUpper(n.Type)
	if n.Smooth {
		content += " SMOOTH"
	}
	return fmt.Sprintf("%s %s %s",
		plist.FloatString(n.Position.X), plist.FloatString(n.Position.Y), content)
}
