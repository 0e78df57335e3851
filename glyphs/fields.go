package glyphs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/letterink/glyphsource/plist"
)

// Every entity declares a static, ordered field descriptor table mapping
// its serialized keys to decode, default-suppression and encode behavior.
// Declaration order is write order. Construction from the generic tree
// walks the input keys against the table: unknown keys are ignored, and a
// failed coercion is recorded as a diagnostic without touching the
// entity's other fields.

// fieldDef describes one serialized field of entity type T.
type fieldDef[T any] struct {
	key string

	// decode applies a raw tree value to the entity.
	decode func(t *T, raw any, ctx *decodeCtx) error

	// should reports whether the field differs from its default and
	// must appear in the output.
	should func(t *T) bool

	// encode renders the current value as a generic tree node.
	encode func(t *T) any
}

// decodeCtx carries the diagnostics sink, the entity path used to locate
// issues inside the document, and the worker limit for sharded decodes.
type decodeCtx struct {
	diags   *Diagnostics
	path    string
	workers int
}

func (c *decodeCtx) add(key string, err error) {
	c.diags.Add(c.path, key, err)
}

// child returns the context for element i of a repeated field.
func (c *decodeCtx) child(key string, i int) *decodeCtx {
	return &decodeCtx{diags: c.diags, path: fmt.Sprintf("%s[%d]", c.join(key), i), workers: c.workers}
}

// sub returns the context for a nested single-valued field.
func (c *decodeCtx) sub(key string) *decodeCtx {
	return &decodeCtx{diags: c.diags, path: c.join(key), workers: c.workers}
}

func (c *decodeCtx) join(key string) string {
	if c.path == "" {
		return key
	}
	return c.path + "." + key
}

// decodeFields applies src to t field by field. Per-field failures are
// recorded and decoding continues with the remaining fields.
func decodeFields[T any](t *T, defs []fieldDef[T], src *plist.Dict, ctx *decodeCtx) {
	for _, key := range src.Keys() {
		def := findField(defs, key)
		if def == nil {
			continue
		}
		raw, _ := src.Get(key)
		if err := def.decode(t, raw, ctx); err != nil {
			ctx.add(key, err)
		}
	}
}

// encodeFields renders t into a generic tree dictionary, emitting only the
// fields the suppression policy marks as required, in table order.
func encodeFields[T any](t *T, defs []fieldDef[T]) *plist.Dict {
	out := plist.NewDict()
	for _, def := range defs {
		if def.encode == nil {
			continue
		}
		if def.should != nil && !def.should(t) {
			continue
		}
		if v := def.encode(t); v != nil {
			out.Set(def.key, v)
		}
	}
	return out
}

func findField[T any](defs []fieldDef[T], key string) *fieldDef[T] {
	for i := range defs {
		if defs[i].key == key {
			return &defs[i]
		}
	}
	return nil
}

// decodeList constructs one child entity per element of a raw list. A
// malformed element is reported and skipped; its siblings still load.
func decodeList[E any](ctx *decodeCtx, key string, raw any, fresh func() *E, defs []fieldDef[E]) ([]*E, error) {
	arr, ok := raw.(plist.Array)
	if !ok {
		return nil, coercionError("list", raw)
	}
	out := make([]*E, 0, len(arr))
	for i, item := range arr {
		sub, ok := item.(*plist.Dict)
		if !ok {
			ctx.add(fmt.Sprintf("%s[%d]", key, i), coercionError("dictionary", item))
			continue
		}
		e := fresh()
		decodeFields(e, defs, sub, ctx.child(key, i))
		out = append(out, e)
	}
	return out, nil
}

// encodeList renders child entities element-wise.
func encodeList[E any](items []*E, defs []fieldDef[E]) plist.Array {
	arr := make(plist.Array, 0, len(items))
	for _, item := range items {
		arr = append(arr, encodeFields(item, defs))
	}
	return arr
}

// Raw scalar coercions. The parser hands every scalar over as a string;
// programmatic trees may carry native numbers and bools, which are
// accepted as-is.

func toString(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return plist.FloatString(v), nil
	case bool:
		if v {
			return "1", nil
		}
		return "0", nil
	default:
		return "", coercionError("string", raw)
	}
}

func toInt(raw any) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, coercionError("integer", raw)
		}
		return n, nil
	default:
		return 0, coercionError("integer", raw)
	}
}

func toFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, coercionError("float", raw)
		}
		return f, nil
	default:
		return 0, coercionError("float", raw)
	}
}

// toBool treats 0 and "0" as false and any other numeric value as true,
// the way the format encodes booleans.
func toBool(raw any) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case int:
		return v != 0, nil
	case int64:
		return v != 0, nil
	case float64:
		return v != 0, nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return false, nil
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n != 0, nil
		}
		return true, nil
	default:
		return false, coercionError("boolean", raw)
	}
}

// Field constructors. Fields without a declared default fall through to
// the type-intrinsic rules: numerics and bools omit their zero value,
// strings omit empty, wrapper value types omit their no-value sentinel.

func strField[T any](key string, get func(*T) *string) fieldDef[T] {
	return strFieldDefault(key, "", get)
}

func strFieldDefault[T any](key, def string, get func(*T) *string) fieldDef[T] {
	return fieldDef[T]{
		key: key,
		decode: func(t *T, raw any, _ *decodeCtx) error {
			s, err := toString(raw)
			if err != nil {
				return err
			}
			*get(t) = s
			return nil
		},
		should: func(t *T) bool { return *get(t) != def },
		encode: func(t *T) any { return *get(t) },
	}
}

func intField[T any](key string, get func(*T) *int) fieldDef[T] {
	return intFieldDefault(key, 0, get)
}

func intFieldDefault[T any](key string, def int, get func(*T) *int) fieldDef[T] {
	return fieldDef[T]{
		key: key,
		decode: func(t *T, raw any, _ *decodeCtx) error {
			n, err := toInt(raw)
			if err != nil {
				return err
			}
			*get(t) = n
			return nil
		},
		should: func(t *T) bool { return *get(t) != def },
		encode: func(t *T) any { return *get(t) },
	}
}

func floatField[T any](key string, get func(*T) *float64) fieldDef[T] {
	return floatFieldDefault(key, 0, get)
}

func floatFieldDefault[T any](key string, def float64, get func(*T) *float64) fieldDef[T] {
	return fieldDef[T]{
		key: key,
		decode: func(t *T, raw any, _ *decodeCtx) error {
			f, err := toFloat(raw)
			if err != nil {
				return err
			}
			*get(t) = f
			return nil
		},
		should: func(t *T) bool { return *get(t) != def },
		encode: func(t *T) any { return *get(t) },
	}
}

func boolField[T any](key string, get func(*T) *bool) fieldDef[T] {
	return boolFieldDefault(key, false, get)
}

func boolFieldDefault[T any](key string, def bool, get func(*T) *bool) fieldDef[T] {
	return fieldDef[T]{
		key: key,
		decode: func(t *T, raw any, _ *decodeCtx) error {
			b, err := toBool(raw)
			if err != nil {
				return err
			}
			*get(t) = b
			return nil
		},
		should: func(t *T) bool { return *get(t) != def },
		encode: func(t *T) any { return *get(t) },
	}
}

func pointField[T any](key string, get func(*T) *Point) fieldDef[T] {
	return fieldDef[T]{
		key: key,
		decode: func(t *T, raw any, _ *decodeCtx) error {
			s, err := toString(raw)
			if err != nil {
				return err
			}
			p, err := ParsePoint(s)
			if err != nil {
				return err
			}
			*get(t) = p
			return nil
		},
		should: func(t *T) bool { return !get(t).IsZero() },
		encode: func(t *T) any { return get(t).String() },
	}
}

func timeField[T any](key string, get func(*T) *Time) fieldDef[T] {
	return fieldDef[T]{
		key: key,
		decode: func(t *T, raw any, _ *decodeCtx) error {
			s, err := toString(raw)
			if err != nil {
				return err
			}
			ts, err := ParseTime(s)
			if err != nil {
				return err
			}
			*get(t) = ts
			return nil
		},
		should: func(t *T) bool { return !get(t).IsZero() },
		encode: func(t *T) any { return get(t).String() },
	}
}

// transformField omits the identity transform, the type's declared
// default.
func transformField[T any](key string, get func(*T) *Transform) fieldDef[T] {
	return fieldDef[T]{
		key: key,
		decode: func(t *T, raw any, _ *decodeCtx) error {
			s, err := toString(raw)
			if err != nil {
				return err
			}
			m, err := ParseTransform(s)
			if err != nil {
				return err
			}
			*get(t) = m
			return nil
		},
		should: func(t *T) bool { return !get(t).IsIdentity() },
		encode: func(t *T) any { return get(t).String() },
	}
}

func colorField[T any](key string, get func(*T) *Color) fieldDef[T] {
	return fieldDef[T]{
		key: key,
		decode: func(t *T, raw any, _ *decodeCtx) error {
			c, err := ParseColor(raw)
			if err != nil {
				return err
			}
			*get(t) = c
			return nil
		},
		should: func(t *T) bool { return !get(t).IsZero() },
		encode: func(t *T) any { return get(t).treeValue() },
	}
}

// intsField reads an integer list from an array of scalars or a delimited
// string; it is written as an array only when non-empty.
func intsField[T any](key string, get func(*T) *[]int) fieldDef[T] {
	return fieldDef[T]{
		key: key,
		decode: func(t *T, raw any, _ *decodeCtx) error {
			vals, err := plist.ParseIntList(raw)
			if err != nil {
				return err
			}
			*get(t) = vals
			return nil
		},
		should: func(t *T) bool { return len(*get(t)) > 0 },
		encode: func(t *T) any {
			vals := *get(t)
			arr := make(plist.Array, len(vals))
			for i, v := range vals {
				arr[i] = v
			}
			return arr
		},
	}
}

// dictField keeps a nested tree verbatim; it is written only when it has
// entries.
func dictField[T any](key string, get func(*T) **plist.Dict) fieldDef[T] {
	return fieldDef[T]{
		key: key,
		decode: func(t *T, raw any, _ *decodeCtx) error {
			d, ok := raw.(*plist.Dict)
			if !ok {
				return coercionError("dictionary", raw)
			}
			*get(t) = d
			return nil
		},
		should: func(t *T) bool { return (*get(t)).Len() > 0 },
		encode: func(t *T) any { return *get(t) },
	}
}

// alwaysWrite marks a field as emitted regardless of value. Entity
// overrides like this take precedence over every default rule.
func alwaysWrite[T any](def fieldDef[T]) fieldDef[T] {
	def.should = func(*T) bool { return true }
	return def
}

// writeWhen replaces a field's suppression rule with an entity-specific
// one.
func writeWhen[T any](def fieldDef[T], should func(*T) bool) fieldDef[T] {
	def.should = should
	return def
}
