package glyphs

import (
	"strings"

	"github.com/letterink/glyphsource/plist"
)

// Instance is one static font to be generated from the masters by
// interpolation.
type Instance struct {
	Exports                bool
	InstanceInterpolations *plist.Dict
	InterpolationCustom    float64
	InterpolationCustom1   float64
	InterpolationCustom2   float64
	InterpolationWeight    float64
	InterpolationWidth     float64
	IsBold                 bool
	IsItalic               bool
	LinkStyle              string
	ManualInterpolation    bool
	Name                   string
	WeightClass            string
	WidthClass             string

	params []*CustomParameter
	font   *Font
}

// NewInstance returns an exporting "Regular" instance at the default
// interpolation position.
func NewInstance() *Instance {
	return &Instance{
		Exports:             true,
		InterpolationWeight: 100,
		InterpolationWidth:  100,
		Name:                "Regular",
		WeightClass:         "Regular",
		WidthClass:          "Medium (normal)",
	}
}

// CustomParameters returns the custom parameter store of the instance.
func (i *Instance) CustomParameters() ParamsProxy {
	return ParamsProxy{owner: i, params: &i.params}
}

// Parent returns the owning font.
func (i *Instance) Parent() *Font {
	return i.font
}

// Interpolate computes the static font this instance describes. The
// document model does not carry the interpolation math.
func (i *Instance) Interpolate() (*Font, error) {
	return nil, ErrNotImplemented
}

func (i *Instance) paramString(name string) string {
	v, ok := i.CustomParameters().Get(name)
	if !ok {
		return ""
	}
	return v.String()
}

// isStandardStyle reports whether the instance name is one of the four
// style-linkable Windows styles.
func (i *Instance) isStandardStyle() bool {
	switch i.Name {
	case "Regular", "Bold", "Italic", "Bold Italic":
		return true
	}
	return false
}

// FamilyName returns the "familyName" parameter, falling back to the
// owning font's family name.
func (i *Instance) FamilyName() string {
	if v := i.paramString("familyName"); v != "" {
		return v
	}
	if i.font != nil {
		return i.font.FamilyName
	}
	return ""
}

// SetFamilyName stores an instance-specific family name parameter.
func (i *Instance) SetFamilyName(name string) error {
	return i.CustomParameters().Set("familyName", name)
}

// PreferredFamily returns the "preferredFamily" parameter, falling back
// to the owning font's family name.
func (i *Instance) PreferredFamily() string {
	if v := i.paramString("preferredFamily"); v != "" {
		return v
	}
	if i.font != nil {
		return i.font.FamilyName
	}
	return ""
}

// SetPreferredFamily stores a "preferredFamily" parameter.
func (i *Instance) SetPreferredFamily(name string) error {
	return i.CustomParameters().Set("preferredFamily", name)
}

// PreferredSubfamilyName returns the "preferredSubfamilyName" parameter,
// falling back to the instance name.
func (i *Instance) PreferredSubfamilyName() string {
	if v := i.paramString("preferredSubfamilyName"); v != "" {
		return v
	}
	return i.Name
}

// SetPreferredSubfamilyName stores a "preferredSubfamilyName" parameter.
func (i *Instance) SetPreferredSubfamilyName(name string) error {
	return i.CustomParameters().Set("preferredSubfamilyName", name)
}

// WindowsFamily returns the "styleMapFamilyName" parameter. Without one,
// non-standard style names are appended to the family name so Windows
// sees distinct families.
func (i *Instance) WindowsFamily() string {
	if v := i.paramString("styleMapFamilyName"); v != "" {
		return v
	}
	if i.isStandardStyle() {
		return i.FamilyName()
	}
	return i.FamilyName() + " " + i.Name
}

// SetWindowsFamily stores a "styleMapFamilyName" parameter.
func (i *Instance) SetWindowsFamily(name string) error {
	return i.CustomParameters().Set("styleMapFamilyName", name)
}

// WindowsStyle returns the style-map style: the instance name when it is
// one of the four standard styles, "Regular" otherwise.
func (i *Instance) WindowsStyle() string {
	if i.isStandardStyle() {
		return i.Name
	}
	return "Regular"
}

// WindowsLinkedToStyle returns the style this instance is style-linked
// to.
func (i *Instance) WindowsLinkedToStyle() string {
	return i.LinkStyle
}

// FontName returns the "postscriptFontName" parameter, falling back to
// the space-free family name joined to the instance name.
func (i *Instance) FontName() string {
	if v := i.paramString("postscriptFontName"); v != "" {
		return v
	}
	return strings.ReplaceAll(i.FamilyName(), " ", "") + "-" + i.Name
}

// SetFontName stores a "postscriptFontName" parameter.
func (i *Instance) SetFontName(name string) error {
	return i.CustomParameters().Set("postscriptFontName", name)
}

// FullName returns the "postscriptFullName" parameter, falling back to
// the family name followed by the instance name.
func (i *Instance) FullName() string {
	if v := i.paramString("postscriptFullName"); v != "" {
		return v
	}
	return i.FamilyName() + " " + i.Name
}

// SetFullName stores a "postscriptFullName" parameter.
func (i *Instance) SetFullName(name string) error {
	return i.CustomParameters().Set("postscriptFullName", name)
}

var instanceFields = []fieldDef[Instance]{
	boolFieldDefault("exports", true, func(i *Instance) *bool { return &i.Exports }),
	paramsField(
		func(i *Instance) *[]*CustomParameter { return &i.params },
		func(i *Instance) any { return i },
	),
	floatField("interpolationCustom", func(i *Instance) *float64 { return &i.InterpolationCustom }),
	floatField("interpolationCustom1", func(i *Instance) *float64 { return &i.InterpolationCustom1 }),
	floatField("interpolationCustom2", func(i *Instance) *float64 { return &i.InterpolationCustom2 }),
	floatFieldDefault("interpolationWeight", 100, func(i *Instance) *float64 { return &i.InterpolationWeight }),
	floatFieldDefault("interpolationWidth", 100, func(i *Instance) *float64 { return &i.InterpolationWidth }),
	dictField("instanceInterpolations", func(i *Instance) **plist.Dict { return &i.InstanceInterpolations }),
	boolField("isBold", func(i *Instance) *bool { return &i.IsBold }),
	boolField("isItalic", func(i *Instance) *bool { return &i.IsItalic }),
	strField("linkStyle", func(i *Instance) *string { return &i.LinkStyle }),
	boolField("manualInterpolation", func(i *Instance) *bool { return &i.ManualInterpolation }),
	strField("name", func(i *Instance) *string { return &i.Name }),
	strFieldDefault("weightClass", "Regular", func(i *Instance) *string { return &i.WeightClass }),
	strFieldDefault("widthClass", "Medium (normal)", func(i *Instance) *string { return &i.WidthClass }),
}
