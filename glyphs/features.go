package glyphs

import "github.com/letterink/glyphsource/plist"

// Class is a named OpenType glyph class.
type Class struct {
	Name      string
	Automatic bool
	Disabled  bool
	Notes     string

	code string
	font *Font
}

// NewClass returns a class with the given name and member code.
func NewClass(name, code string) *Class {
	c := &Class{Name: name}
	c.SetCode(code)
	return c
}

// Code returns the class member list with escapes resolved.
func (c *Class) Code() string {
	return c.code
}

// SetCode stores code, resolving plist text escapes and typographic
// quotes first.
func (c *Class) SetCode(code string) {
	c.code = plist.DecodeFeatureText(code)
}

// Parent returns the owning font.
func (c *Class) Parent() *Font {
	return c.font
}

var classFields = []fieldDef[Class]{
	boolField("automatic", func(c *Class) *bool { return &c.Automatic }),
	{
		key: "code",
		decode: func(c *Class, raw any, _ *decodeCtx) error {
			s, err := toString(raw)
			if err != nil {
				return err
			}
			c.SetCode(s)
			return nil
		},
		should: func(c *Class) bool { return c.code != "" },
		encode: func(c *Class) any { return c.code },
	},
	boolField("disabled", func(c *Class) *bool { return &c.Disabled }),
	strField("name", func(c *Class) *string { return &c.Name }),
	strField("notes", func(c *Class) *string { return &c.Notes }),
}

// Feature is one OpenType feature with its source code.
type Feature struct {
	Name      string
	Automatic bool
	Disabled  bool
	Notes     string

	code string
	font *Font
}

// NewFeature returns a feature with the given tag and source code.
func NewFeature(name, code string) *Feature {
	f := &Feature{Name: name}
	f.SetCode(code)
	return f
}

// Code returns the feature source with escapes resolved.
func (f *Feature) Code() string {
	return f.code
}

// SetCode stores code, resolving plist text escapes and typographic
// quotes first.
func (f *Feature) SetCode(code string) {
	f.code = plist.DecodeFeatureText(code)
}

// Parent returns the owning font.
func (f *Feature) Parent() *Font {
	return f.font
}

var featureFields = []fieldDef[Feature]{
	boolField("automatic", func(f *Feature) *bool { return &f.Automatic }),
	{
		key: "code",
		decode: func(f *Feature, raw any, _ *decodeCtx) error {
			s, err := toString(raw)
			if err != nil {
				return err
			}
			f.SetCode(s)
			return nil
		},
		should: func(f *Feature) bool { return f.code != "" },
		encode: func(f *Feature) any { return f.code },
	},
	boolField("disabled", func(f *Feature) *bool { return &f.Disabled }),
	strField("name", func(f *Feature) *string { return &f.Name }),
	strField("notes", func(f *Feature) *string { return &f.Notes }),
}

// FeaturePrefix is a block of feature-file code placed ahead of all
// feature definitions.
type FeaturePrefix struct {
	Name      string
	Automatic bool
	Disabled  bool
	Notes     string

	code string
	font *Font
}

// NewFeaturePrefix returns a prefix with the given name and source code.
func NewFeaturePrefix(name, code string) *FeaturePrefix {
	p := &FeaturePrefix{Name: name}
	p.SetCode(code)
	return p
}

// Code returns the prefix source with escapes resolved.
func (p *FeaturePrefix) Code() string {
	return p.code
}

// SetCode stores code, resolving plist text escapes and typographic
// quotes first.
func (p *FeaturePrefix) SetCode(code string) {
	p.code = plist.DecodeFeatureText(code)
}

// Parent returns the owning font.
func (p *FeaturePrefix) Parent() *Font {
	return p.font
}

var featurePrefixFields = []fieldDef[FeaturePrefix]{
	boolField("automatic", func(p *FeaturePrefix) *bool { return &p.Automatic }),
	{
		key: "code",
		decode: func(p *FeaturePrefix, raw any, _ *decodeCtx) error {
			s, err := toString(raw)
			if err != nil {
				return err
			}
			p.SetCode(s)
			return nil
		},
		should: func(p *FeaturePrefix) bool { return p.code != "" },
		encode: func(p *FeaturePrefix) any { return p.code },
	},
	boolField("disabled", func(p *FeaturePrefix) *bool { return &p.Disabled }),
	strField("name", func(p *FeaturePrefix) *string { return &p.Name }),
	strField("notes", func(p *FeaturePrefix) *string { return &p.Notes }),
}
