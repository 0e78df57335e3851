package glyphs

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/letterink/glyphsource/plist"
)

// FontMaster is one named point in the font's design space, carrying the
// vertical metrics, stems and zones drawn at that point.
type FontMaster struct {
	ID              string
	Ascender        float64
	CapHeight       float64
	CustomName      string
	Custom1         string
	Custom2         string
	CustomValue     float64
	Descender       float64
	HorizontalStems []int
	VerticalStems   []int
	ItalicAngle     float64
	Visible         bool
	WeightValue     float64
	WidthValue      float64
	XHeight         float64
	AlignmentZones  []AlignmentZone

	weight     string
	width      string
	name       string
	nameFrozen bool
	guides     []*GuideLine
	params     []*CustomParameter
	userData   *plist.Dict
	font       *Font
}

// NewFontMaster returns a regular-weight, regular-width master at the
// default interpolation position.
func NewFontMaster() *FontMaster {
	return &FontMaster{
		weight:      "Regular",
		width:       "Regular",
		WeightValue: 100,
		WidthValue:  100,
	}
}

// Weight returns the weight class name, "Regular" when unset.
func (m *FontMaster) Weight() string {
	if m.weight == "" {
		return "Regular"
	}
	return m.weight
}

// SetWeight stores the weight class name.
func (m *FontMaster) SetWeight(weight string) {
	m.weight = weight
}

// Width returns the width class name, "Regular" when unset.
func (m *FontMaster) Width() string {
	if m.width == "" {
		return "Regular"
	}
	return m.width
}

// SetWidth stores the width class name.
func (m *FontMaster) SetWidth(width string) {
	m.width = width
}

// Name returns the display name of the master. A "Master Name" custom
// parameter wins; otherwise the name is derived from the weight, width
// and custom class names, dropping a redundant "Regular" and appending
// "Italic" for a noticeable italic angle. The first computed value is
// kept for the lifetime of the master, so later attribute edits do not
// rename it.
func (m *FontMaster) Name() string {
	if m.nameFrozen {
		return m.name
	}
	name := m.CustomParameters().GetString("Master Name")
	if name == "" {
		names := []string{m.Weight(), m.Width()}
		for _, custom := range []string{m.CustomName, m.Custom1, m.Custom2} {
			if custom != "" && !slices.Contains(names, custom) {
				names = append(names, custom)
			}
		}
		if len(names) > 1 {
			if i := slices.Index(names, "Regular"); i >= 0 {
				names = slices.Delete(names, i, i+1)
			}
		}
		if math.Abs(m.ItalicAngle) > 0.01 {
			names = append(names, "Italic")
		}
		name = strings.Join(names, " ")
	}
	m.name = name
	m.nameFrozen = true
	return name
}

// SetName fixes the master name, overriding the derived form.
func (m *FontMaster) SetName(name string) {
	m.name = name
	m.nameFrozen = true
}

// Guides returns the guide list of the master.
func (m *FontMaster) Guides() GuidesProxy {
	return GuidesProxy{listProxy[GuideLine]{
		items:  &m.guides,
		link:   func(g *GuideLine) { g.parent = m },
		unlink: func(g *GuideLine) { g.parent = nil },
	}}
}

// CustomParameters returns the custom parameter store of the master.
func (m *FontMaster) CustomParameters() ParamsProxy {
	return ParamsProxy{owner: m, params: &m.params}
}

// UserData returns the freeform user data map of the master.
func (m *FontMaster) UserData() UserDataProxy {
	return UserDataProxy{data: &m.userData}
}

// Parent returns the owning font.
func (m *FontMaster) Parent() *Font {
	return m.font
}

var masterFields = []fieldDef[FontMaster]{
	{
		key: "alignmentZones",
		decode: func(m *FontMaster, raw any, ctx *decodeCtx) error {
			arr, ok := raw.(plist.Array)
			if !ok {
				return coercionError("list", raw)
			}
			zones := make([]AlignmentZone, 0, len(arr))
			for i, item := range arr {
				s, err := toString(item)
				if err != nil {
					ctx.add(fmt.Sprintf("alignmentZones[%d]", i), err)
					continue
				}
				zone, err := ParseAlignmentZone(s)
				if err != nil {
					ctx.add(fmt.Sprintf("alignmentZones[%d]", i), err)
					continue
				}
				zones = append(zones, zone)
			}
			m.AlignmentZones = zones
			return nil
		},
		should: func(m *FontMaster) bool { return len(m.AlignmentZones) > 0 },
		encode: func(m *FontMaster) any {
			arr := make(plist.Array, len(m.AlignmentZones))
			for i, zone := range m.AlignmentZones {
				arr[i] = zone.String()
			}
			return arr
		},
	},
	floatField("ascender", func(m *FontMaster) *float64 { return &m.Ascender }),
	floatField("capHeight", func(m *FontMaster) *float64 { return &m.CapHeight }),
	strField("custom", func(m *FontMaster) *string { return &m.CustomName }),
	paramsField(
		func(m *FontMaster) *[]*CustomParameter { return &m.params },
		func(m *FontMaster) any { return m },
	),
	floatField("customValue", func(m *FontMaster) *float64 { return &m.CustomValue }),
	floatField("descender", func(m *FontMaster) *float64 { return &m.Descender }),
	{
		key: "guideLines",
		decode: func(m *FontMaster, raw any, ctx *decodeCtx) error {
			guides, err := decodeList(ctx, "guideLines", raw, NewGuideLine, guideFields)
			if err != nil {
				return err
			}
			for _, g := range guides {
				g.parent = m
			}
			m.guides = guides
			return nil
		},
		should: func(m *FontMaster) bool { return len(m.guides) > 0 },
		encode: func(m *FontMaster) any { return encodeList(m.guides, guideFields) },
	},
	intsField("horizontalStems", func(m *FontMaster) *[]int { return &m.HorizontalStems }),
	strField("id", func(m *FontMaster) *string { return &m.ID }),
	floatField("italicAngle", func(m *FontMaster) *float64 { return &m.ItalicAngle }),
	dictField("userData", func(m *FontMaster) **plist.Dict { return &m.userData }),
	intsField("verticalStems", func(m *FontMaster) *[]int { return &m.VerticalStems }),
	boolField("visible", func(m *FontMaster) *bool { return &m.Visible }),
	{
		key: "weight",
		decode: func(m *FontMaster, raw any, _ *decodeCtx) error {
			s, err := toString(raw)
			if err != nil {
				return err
			}
			m.weight = s
			return nil
		},
		should: func(m *FontMaster) bool { return m.Weight() != "Regular" },
		encode: func(m *FontMaster) any { return m.Weight() },
	},
	floatFieldDefault("weightValue", 100, func(m *FontMaster) *float64 { return &m.WeightValue }),
	{
		key: "width",
		decode: func(m *FontMaster, raw any, _ *decodeCtx) error {
			s, err := toString(raw)
			if err != nil {
				return err
			}
			m.width = s
			return nil
		},
		should: func(m *FontMaster) bool { return m.Width() != "Regular" },
		encode: func(m *FontMaster) any { return m.Width() },
	},
	floatFieldDefault("widthValue", 100, func(m *FontMaster) *float64 { return &m.WidthValue }),
	floatField("xHeight", func(m *FontMaster) *float64 { return &m.XHeight }),
}
