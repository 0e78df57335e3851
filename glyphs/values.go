package glyphs

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/letterink/glyphsource/plist"
)

// Leaf value types shared across the entity graph. Each one decodes from
// its Glyphs text form, renders back to it, and carries an explicit
// no-value sentinel (IsZero) consulted by the serialization policy: a zero
// wrapper means "field never set", not "field set to zero".

// Point is a 2-D position. The zero Point means "unset"; a point placed at
// the origin still renders.
type Point struct {
	X, Y float64

	set bool
}

// NewPoint returns a set point.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y, set: true}
}

// ParsePoint reads the "{x, y}" text form.
func ParsePoint(s string) (Point, error) {
	vals, err := braceFloats(s, 2)
	if err != nil {
		return Point{}, err
	}
	return NewPoint(vals[0], vals[1]), nil
}

// IsZero reports whether the point was never set.
func (p Point) IsZero() bool {
	return !p.set
}

// String renders the "{x, y}" text form.
func (p Point) String() string {
	return "{" + plist.FloatString(p.X) + ", " + plist.FloatString(p.Y) + "}"
}

// Transform is a 2-D affine transform in the Glyphs component order
// {xx, xy, yx, yy, dx, dy}.
type Transform struct {
	XX, XY, YX, YY, DX, DY float64
}

// Identity returns the identity transform, the declared default for
// components.
func Identity() Transform {
	return Transform{XX: 1, YY: 1}
}

// ScaleOffset builds a transform from independent scale and offset, the
// way components are commonly placed.
func ScaleOffset(sx, sy, dx, dy float64) Transform {
	return Transform{XX: sx, YY: sy, DX: dx, DY: dy}
}

// ParseTransform reads the "{xx, xy, yx, yy, dx, dy}" text form.
func ParseTransform(s string) (Transform, error) {
	vals, err := braceFloats(s, 6)
	if err != nil {
		return Transform{}, err
	}
	return Transform{vals[0], vals[1], vals[2], vals[3], vals[4], vals[5]}, nil
}

// IsIdentity reports whether the transform equals the identity default.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}

// String renders the "{xx, xy, yx, yy, dx, dy}" text form.
func (t Transform) String() string {
	parts := []string{
		plist.FloatString(t.XX), plist.FloatString(t.XY),
		plist.FloatString(t.YX), plist.FloatString(t.YY),
		plist.FloatString(t.DX), plist.FloatString(t.DY),
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Color is either a palette index or an RGBA component list. The zero
// Color means "no color".
type Color struct {
	index      int
	components []int
	set        bool
}

// IndexColor returns a palette-index color.
func IndexColor(i int) Color {
	return Color{index: i, set: true}
}

// ComponentColor returns an RGBA component-list color.
func ComponentColor(components ...int) Color {
	return Color{components: components, set: true}
}

// ParseColor reads a color from its generic tree form: an integer scalar
// or a list of integer components.
func ParseColor(raw any) (Color, error) {
	switch v := raw.(type) {
	case plist.Array:
		comps, err := plist.ParseIntList(v)
		if err != nil {
			return Color{}, err
		}
		return ComponentColor(comps...), nil
	case string, int, int64, float64:
		n, err := toInt(v)
		if err != nil {
			return Color{}, err
		}
		return IndexColor(n), nil
	default:
		return Color{}, coercionError("color", raw)
	}
}

// IsZero reports whether no color is set.
func (c Color) IsZero() bool {
	return !c.set
}

// Index returns the palette index and whether the color is index-form.
func (c Color) Index() (int, bool) {
	return c.index, c.set && c.components == nil
}

// Components returns the component list, nil for index-form colors.
func (c Color) Components() []int {
	return c.components
}

// treeValue renders the color back into its generic tree form.
func (c Color) treeValue() any {
	if c.components != nil {
		arr := make(plist.Array, len(c.components))
		for i, v := range c.components {
			arr[i] = v
		}
		return arr
	}
	return c.index
}

// timeLayout is the exact timestamp form Glyphs writes. The zone is always
// rendered +0000; values are stored in UTC.
const timeLayout = "2006-01-02 15:04:05 -0700"

// Time wraps a timestamp with the Glyphs text form. The zero Time is the
// no-value sentinel.
type Time struct {
	t time.Time
}

// NewTime returns a set timestamp, normalized to UTC.
func NewTime(t time.Time) Time {
	return Time{t: t.UTC()}
}

// ParseTime reads the "2006-01-02 15:04:05 +0000" text form.
func ParseTime(s string) (Time, error) {
	t, err := time.Parse(timeLayout, strings.TrimSpace(s))
	if err != nil {
		return Time{}, fmt.Errorf("invalid timestamp %q", s)
	}
	return NewTime(t), nil
}

// IsZero reports whether the timestamp was never set.
func (t Time) IsZero() bool {
	return t.t.IsZero()
}

// Time returns the wrapped time.
func (t Time) Time() time.Time {
	return t.t
}

// String renders the Glyphs text form.
func (t Time) String() string {
	return t.t.UTC().Format("2006-01-02 15:04:05") + " +0000"
}

// AlignmentZone is a vertical metrics zone, parsed from point text and
// rendered "{pos, size}".
type AlignmentZone struct {
	Position float64
	Size     float64
}

// ParseAlignmentZone reads the "{pos, size}" text form.
func ParseAlignmentZone(s string) (AlignmentZone, error) {
	vals, err := braceFloats(s, 2)
	if err != nil {
		return AlignmentZone{}, err
	}
	return AlignmentZone{Position: vals[0], Size: vals[1]}, nil
}

// String renders the "{pos, size}" text form.
func (z AlignmentZone) String() string {
	return "{" + plist.FloatString(z.Position) + ", " + plist.FloatString(z.Size) + "}"
}

// HintTarget is a hint endpoint: either a node index path or one of the
// "up"/"down" side sentinels.
type HintTarget struct {
	side  string
	point Point
}

// Side sentinels for hint targets.
const (
	HintSideUp   = "up"
	HintSideDown = "down"
)

// SideTarget returns an "up"/"down" target.
func SideTarget(side string) HintTarget {
	return HintTarget{side: side}
}

// PointTarget returns a node index path target.
func PointTarget(p Point) HintTarget {
	return HintTarget{point: p}
}

// ParseHintTarget reads a target: brace text is an index path, anything
// else is a side sentinel.
func ParseHintTarget(s string) (HintTarget, error) {
	if strings.HasPrefix(s, "{") {
		p, err := ParsePoint(s)
		if err != nil {
			return HintTarget{}, err
		}
		return PointTarget(p), nil
	}
	return SideTarget(s), nil
}

// IsZero reports whether no target is set.
func (t HintTarget) IsZero() bool {
	return t.side == "" && t.point.IsZero()
}

// Side returns the side sentinel, "" for point targets.
func (t HintTarget) Side() string {
	return t.side
}

// Point returns the index path point; IsZero for side targets.
func (t HintTarget) Point() Point {
	return t.point
}

// String renders the target text form.
func (t HintTarget) String() string {
	if t.side != "" {
		return t.side
	}
	return t.point.String()
}

// braceFloats parses "{a, b, ...}" into exactly n floats. The braces are
// optional on read; Glyphs always writes them.
func braceFloats(s string, n int) ([]float64, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "{")
	trimmed = strings.TrimSuffix(trimmed, "}")
	parts := strings.Split(trimmed, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma-separated values in %q", n, s)
	}
	vals := make([]float64, n)
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q in %q", part, s)
		}
		vals[i] = f
	}
	return vals, nil
}
