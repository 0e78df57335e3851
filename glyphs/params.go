package glyphs

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/letterink/glyphsource/plist"
)

// ParamKind tags the canonical type of a custom parameter value. The kind
// is fixed at assignment time by the name-keyed registry and never
// re-inferred.
type ParamKind int

const (
	ParamString ParamKind = iota
	ParamInt
	ParamFloat
	ParamBool
	ParamIntList
	ParamDict
	ParamList
)

func (k ParamKind) String() string {
	switch k {
	case ParamString:
		return "string"
	case ParamInt:
		return "integer"
	case ParamFloat:
		return "float"
	case ParamBool:
		return "boolean"
	case ParamIntList:
		return "integer list"
	case ParamDict:
		return "dictionary"
	case ParamList:
		return "list"
	default:
		return "unknown"
	}
}

// Parameter names with a registered coercion rule. Any name not listed
// here stores its value as-is (string, list or dictionary).
var (
	intParamNames = []string{
		"ascender", "blueShift", "capHeight", "descender", "hheaAscender",
		"hheaDescender", "hheaLineGap", "macintoshFONDFamilyID",
		"openTypeHeadLowestRecPPEM", "openTypeHheaAscender",
		"openTypeHheaCaretOffset",
		"openTypeHheaCaretSlopeRise", "openTypeHheaCaretSlopeRun",
		"openTypeHheaDescender", "openTypeHheaLineGap",
		"openTypeOS2StrikeoutPosition", "openTypeOS2StrikeoutSize",
		"openTypeOS2SubscriptXOffset", "openTypeOS2SubscriptXSize",
		"openTypeOS2SubscriptYOffset", "openTypeOS2SubscriptYSize",
		"openTypeOS2SuperscriptXOffset", "openTypeOS2SuperscriptXSize",
		"openTypeOS2SuperscriptYOffset", "openTypeOS2SuperscriptYSize",
		"openTypeOS2TypoAscender", "openTypeOS2TypoDescender",
		"openTypeOS2TypoLineGap", "openTypeOS2WeightClass",
		"openTypeOS2WidthClass",
		"openTypeOS2WinAscent", "openTypeOS2WinDescent",
		"openTypeVheaCaretOffset",
		"openTypeVheaCaretSlopeRise", "openTypeVheaCaretSlopeRun",
		"openTypeVheaVertTypoAscender", "openTypeVheaVertTypoDescender",
		"openTypeVheaVertTypoLineGap", "postscriptBlueFuzz",
		"postscriptBlueShift",
		"postscriptDefaultWidthX", "postscriptSlantAngle",
		"postscriptUnderlinePosition", "postscriptUnderlineThickness",
		"postscriptUniqueID", "postscriptWindowsCharacterSet",
		"shoulderHeight",
		"smallCapHeight", "typoAscender", "typoDescender", "typoLineGap",
		"underlinePosition", "underlineThickness", "unitsPerEm",
		"vheaVertAscender",
		"vheaVertDescender", "vheaVertLineGap", "weightClass", "widthClass",
		"winAscent", "winDescent", "xHeight", "year", "Grid Spacing",
	}
	floatParamNames = []string{"postscriptBlueScale"}
	boolParamNames  = []string{
		"isFixedPitch", "postscriptForceBold", "postscriptIsFixedPitch",
		"Don’t use Production Names", "DisableAllAutomaticBehaviour",
		"Use Typo Metrics", "Has WWS Names", "Use Extension Kerning",
	}
	intListParamNames = []string{
		"fsType", "openTypeOS2CodePageRanges", "openTypeOS2FamilyClass",
		"openTypeOS2Panose", "openTypeOS2Type", "openTypeOS2UnicodeRanges",
		"panose", "unicodeRanges", "codePageRanges", "openTypeHeadFlags",
	}
	dictParamNames = []string{"GASP Table"}
)

var paramKinds = map[string]ParamKind{}

func init() {
	for _, name := range intParamNames {
		paramKinds[name] = ParamInt
	}
	for _, name := range floatParamNames {
		paramKinds[name] = ParamFloat
	}
	for _, name := range boolParamNames {
		paramKinds[name] = ParamBool
	}
	for _, name := range intListParamNames {
		paramKinds[name] = ParamIntList
	}
	for _, name := range dictParamNames {
		paramKinds[name] = ParamDict
	}
	paramKinds["note"] = ParamString
}

// ParamValue is the canonical, already-coerced value of a custom
// parameter: a tagged variant with one case per kind. The zero value is
// the empty string.
type ParamValue struct {
	kind ParamKind
	s    string
	i    int
	f    float64
	b    bool
	ints []int
	dict *plist.Dict
	list plist.Array
}

// StringValue returns a string-kind value.
func StringValue(s string) ParamValue {
	return ParamValue{kind: ParamString, s: s}
}

// IntValue returns an integer-kind value.
func IntValue(n int) ParamValue {
	return ParamValue{kind: ParamInt, i: n}
}

// FloatValue returns a float-kind value.
func FloatValue(f float64) ParamValue {
	return ParamValue{kind: ParamFloat, f: f}
}

// BoolValue returns a boolean-kind value.
func BoolValue(b bool) ParamValue {
	return ParamValue{kind: ParamBool, b: b}
}

// IntListValue returns an integer-list-kind value.
func IntListValue(vals ...int) ParamValue {
	return ParamValue{kind: ParamIntList, ints: vals}
}

// DictValue returns a dictionary-kind value.
func DictValue(d *plist.Dict) ParamValue {
	return ParamValue{kind: ParamDict, dict: d}
}

// ListValue returns a list-kind value.
func ListValue(items plist.Array) ParamValue {
	return ParamValue{kind: ParamList, list: items}
}

// Kind returns the value's canonical kind.
func (v ParamValue) Kind() ParamKind {
	return v.kind
}

// Int returns the integer case.
func (v ParamValue) Int() (int, bool) {
	return v.i, v.kind == ParamInt
}

// Float returns the float case.
func (v ParamValue) Float() (float64, bool) {
	return v.f, v.kind == ParamFloat
}

// Bool returns the boolean case.
func (v ParamValue) Bool() (bool, bool) {
	return v.b, v.kind == ParamBool
}

// IntList returns the integer-list case.
func (v ParamValue) IntList() ([]int, bool) {
	return v.ints, v.kind == ParamIntList
}

// Dict returns the dictionary case.
func (v ParamValue) Dict() (*plist.Dict, bool) {
	return v.dict, v.kind == ParamDict
}

// List returns the list case.
func (v ParamValue) List() (plist.Array, bool) {
	return v.list, v.kind == ParamList
}

// Any returns the value as a plain Go value, for display and generic
// encoding.
func (v ParamValue) Any() any {
	switch v.kind {
	case ParamInt:
		return v.i
	case ParamFloat:
		return v.f
	case ParamBool:
		return v.b
	case ParamIntList:
		return v.ints
	case ParamDict:
		return v.dict
	case ParamList:
		return v.list
	default:
		return v.s
	}
}

// String returns a plain display form of the value.
func (v ParamValue) String() string {
	switch v.kind {
	case ParamInt:
		return strconv.Itoa(v.i)
	case ParamFloat:
		return plist.FloatString(v.f)
	case ParamBool:
		if v.b {
			return "1"
		}
		return "0"
	case ParamIntList:
		return "(" + strings.Join(plist.IntStrings(v.ints), ",") + ")"
	case ParamDict:
		return plist.ValueString(v.dict)
	case ParamList:
		return plist.ValueString(v.list)
	default:
		return v.s
	}
}

// coerceParamValue casts raw to the canonical kind registered for name.
// Unregistered names pass strings, lists and dictionaries through
// unchanged. This runs exactly once, at assignment.
func coerceParamValue(name string, raw any) (ParamValue, error) {
	if pv, ok := raw.(ParamValue); ok {
		return pv, nil
	}
	if kind, fixed := paramKinds[name]; fixed {
		switch kind {
		case ParamInt:
			n, err := toInt(raw)
			if err != nil {
				return ParamValue{}, err
			}
			return IntValue(n), nil
		case ParamFloat:
			f, err := toFloat(raw)
			if err != nil {
				return ParamValue{}, err
			}
			return FloatValue(f), nil
		case ParamBool:
			b, err := toBool(raw)
			if err != nil {
				return ParamValue{}, err
			}
			return BoolValue(b), nil
		case ParamIntList:
			vals, err := plist.ParseIntList(raw)
			if err != nil {
				return ParamValue{}, err
			}
			return IntListValue(vals...), nil
		case ParamDict:
			d, err := coerceParamDict(raw)
			if err != nil {
				return ParamValue{}, err
			}
			return DictValue(d), nil
		case ParamString:
			s, err := toString(raw)
			if err != nil {
				return ParamValue{}, err
			}
			return StringValue(s), nil
		}
	}
	switch t := raw.(type) {
	case string:
		return StringValue(t), nil
	case int:
		return IntValue(t), nil
	case int64:
		return IntValue(int(t)), nil
	case float64:
		return FloatValue(t), nil
	case bool:
		return BoolValue(t), nil
	case []int:
		return IntListValue(t...), nil
	case *plist.Dict:
		if err := checkParamDict(t); err != nil {
			return ParamValue{}, err
		}
		return DictValue(t), nil
	case plist.Array:
		if err := checkParamList(t); err != nil {
			return ParamValue{}, err
		}
		return ListValue(t), nil
	case []string:
		arr := make(plist.Array, len(t))
		for i, s := range t {
			arr[i] = s
		}
		return ListValue(arr), nil
	case []any:
		arr := plist.Array(t)
		if err := checkParamList(arr); err != nil {
			return ParamValue{}, err
		}
		return ListValue(arr), nil
	default:
		return ParamValue{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, raw)
	}
}

// coerceParamDict accepts a parsed dictionary or its raw text form.
func coerceParamDict(raw any) (*plist.Dict, error) {
	switch t := raw.(type) {
	case *plist.Dict:
		if err := checkParamDict(t); err != nil {
			return nil, err
		}
		return t, nil
	case string:
		v, err := plist.ParseValue([]byte(t))
		if err != nil {
			return nil, err
		}
		d, ok := v.(*plist.Dict)
		if !ok {
			return nil, coercionError("dictionary", raw)
		}
		return d, nil
	default:
		return nil, coercionError("dictionary", raw)
	}
}

// checkParamDict rejects dictionary values the renderer has no rule for:
// entries must be scalars.
func checkParamDict(d *plist.Dict) error {
	for _, key := range d.Keys() {
		v, _ := d.Get(key)
		switch v.(type) {
		case string, int, int64, float64:
		default:
			return fmt.Errorf("%w: dictionary entry %q is %T", ErrUnsupportedValue, key, v)
		}
	}
	return nil
}

// checkParamList rejects list elements the renderer has no rule for:
// scalars and one level of dictionaries.
func checkParamList(arr plist.Array) error {
	for i, item := range arr {
		switch t := item.(type) {
		case string, int, int64, float64:
		case *plist.Dict:
			_ = t
		default:
			return fmt.Errorf("%w: list element %d is %T", ErrUnsupportedValue, i, item)
		}
	}
	return nil
}

// CustomParameter is one name/value setting outside the fixed schema. Its
// value always holds the canonical type for its name.
type CustomParameter struct {
	Name string

	value  ParamValue
	parent any
}

// NewCustomParameter builds a parameter, coercing value per the name's
// registered rule.
func NewCustomParameter(name string, value any) (*CustomParameter, error) {
	p := &CustomParameter{Name: name}
	if err := p.SetValue(value); err != nil {
		return nil, err
	}
	return p, nil
}

// Value returns the stored, already-coerced value.
func (p *CustomParameter) Value() ParamValue {
	return p.value
}

// SetValue coerces raw per the parameter name's registered rule and
// stores the result.
func (p *CustomParameter) SetValue(raw any) error {
	v, err := coerceParamValue(p.Name, raw)
	if err != nil {
		return err
	}
	p.value = v
	return nil
}

// Parent returns the entity owning this parameter.
func (p *CustomParameter) Parent() any {
	return p.parent
}

func (p *CustomParameter) String() string {
	return fmt.Sprintf("<%s: %s>", p.Name, p.value.String())
}

// PlistValue renders the parameter in its exact on-disk form. Values that
// need escaping are escaped here, never in storage.
func (p *CustomParameter) PlistValue() (string, error) {
	value, err := renderParamValue(p.value)
	if err != nil {
		return "", err
	}
	return "{\nname = " + plist.ScalarString(p.Name) + ";\nvalue = " + value + ";\n}", nil
}

func renderParamValue(v ParamValue) (string, error) {
	switch v.kind {
	case ParamInt:
		return strconv.Itoa(v.i), nil
	case ParamFloat:
		return plist.FloatString(v.f), nil
	case ParamBool:
		if v.b {
			return "1", nil
		}
		return "0", nil
	case ParamIntList:
		if len(v.ints) == 0 {
			return "(\n)", nil
		}
		return "(\n" + strings.Join(plist.IntStrings(v.ints), ",\n") + "\n)", nil
	case ParamDict:
		return renderParamDict(v.dict)
	case ParamList:
		return renderParamList(v.list)
	case ParamString:
		return plist.EncodeFeatureText(v.s), nil
	default:
		return "", fmt.Errorf("%w: kind %d", ErrUnsupportedValue, v.kind)
	}
}

// renderParamDict writes entries with keys sorted lexicographically.
func renderParamDict(d *plist.Dict) (string, error) {
	keys := d.Keys()
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		raw, _ := d.Get(key)
		value, err := renderParamScalar(raw)
		if err != nil {
			return "", err
		}
		lines = append(lines, plist.ScalarString(key)+" = "+value+";")
	}
	return "{\n" + strings.Join(lines, "\n") + "\n}", nil
}

// renderParamList writes elements newline-joined inside parentheses;
// nested dictionaries keep their own key order.
func renderParamList(arr plist.Array) (string, error) {
	values := make([]string, 0, len(arr))
	for _, item := range arr {
		switch t := item.(type) {
		case *plist.Dict:
			values = append(values, plist.ValueString(t))
		default:
			value, err := renderParamScalar(item)
			if err != nil {
				return "", err
			}
			values = append(values, value)
		}
	}
	return "(\n" + strings.Join(values, ",\n") + "\n)", nil
}

func renderParamScalar(raw any) (string, error) {
	switch t := raw.(type) {
	case string:
		return plist.ScalarString(t), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case float64:
		return plist.FloatString(t), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, raw)
	}
}

// decodeParams builds the parameter list for one owner from its raw tree
// form. A parameter whose value fails coercion is kept with an empty
// value and reported.
func decodeParams(ctx *decodeCtx, key string, raw any) ([]*CustomParameter, error) {
	arr, ok := raw.(plist.Array)
	if !ok {
		return nil, coercionError("list", raw)
	}
	out := make([]*CustomParameter, 0, len(arr))
	for i, item := range arr {
		sub, ok := item.(*plist.Dict)
		if !ok {
			ctx.add(fmt.Sprintf("%s[%d]", key, i), coercionError("dictionary", item))
			continue
		}
		nameRaw, _ := sub.Get("name")
		name, err := toString(nameRaw)
		if err != nil {
			ctx.child(key, i).add("name", err)
			continue
		}
		p := &CustomParameter{Name: name}
		if valueRaw, present := sub.Get("value"); present {
			if err := p.SetValue(valueRaw); err != nil {
				ctx.child(key, i).add("value", err)
			}
		}
		out = append(out, p)
	}
	return out, nil
}

// encodeParams renders each parameter to its exact text form, carried as
// raw nodes so the writer emits them verbatim.
func encodeParams(params []*CustomParameter) plist.Array {
	arr := make(plist.Array, 0, len(params))
	for _, p := range params {
		text, err := p.PlistValue()
		if err != nil {
			continue
		}
		arr = append(arr, plist.Raw(text))
	}
	return arr
}

// paramsField wires a customParameters table entry for any entity that
// owns parameters.
func paramsField[T any](get func(*T) *[]*CustomParameter, owner func(*T) any) fieldDef[T] {
	return fieldDef[T]{
		key: "customParameters",
		decode: func(t *T, raw any, ctx *decodeCtx) error {
			params, err := decodeParams(ctx, "customParameters", raw)
			if err != nil {
				return err
			}
			for _, p := range params {
				p.parent = owner(t)
			}
			*get(t) = params
			return nil
		},
		should: func(t *T) bool { return len(*get(t)) > 0 },
		encode: func(t *T) any { return encodeParams(*get(t)) },
	}
}
