package plist

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Write encodes a complete document: the dictionary followed by a trailing
// newline, matching the layout the Glyphs application produces.
func Write(w io.Writer, d *Dict) error {
	tw := &textWriter{w: w}
	tw.dict(d)
	tw.str("\n")
	return tw.err
}

// WriteValue encodes a single value.
func WriteValue(w io.Writer, v any) error {
	tw := &textWriter{w: w}
	tw.value(v)
	return tw.err
}

// ValueString renders a single value to text.
func ValueString(v any) string {
	var b strings.Builder
	if err := WriteValue(&b, v); err != nil {
		return ""
	}
	return b.String()
}

type textWriter struct {
	w   io.Writer
	err error
}

func (tw *textWriter) str(s string) {
	if tw.err != nil {
		return
	}
	_, tw.err = io.WriteString(tw.w, s)
}

func (tw *textWriter) value(v any) {
	switch t := v.(type) {
	case *Dict:
		tw.dict(t)
	case Array:
		tw.array(t)
	case Raw:
		tw.str(string(t))
	case string:
		tw.str(ScalarString(t))
	case bool:
		if t {
			tw.str("1")
		} else {
			tw.str("0")
		}
	case int:
		tw.str(strconv.Itoa(t))
	case int64:
		tw.str(strconv.FormatInt(t, 10))
	case float64:
		tw.str(FloatString(t))
	default:
		if tw.err == nil {
			tw.err = fmt.Errorf("plist: cannot write value of type %T", v)
		}
	}
}

func (tw *textWriter) dict(d *Dict) {
	tw.str("{\n")
	for _, key := range d.Keys() {
		v, _ := d.Get(key)
		tw.str(ScalarString(key))
		tw.str(" = ")
		tw.value(v)
		tw.str(";\n")
	}
	tw.str("}")
}

func (tw *textWriter) array(a Array) {
	tw.str("(\n")
	for i, v := range a {
		if i > 0 {
			tw.str(",\n")
		}
		tw.value(v)
	}
	if len(a) > 0 {
		tw.str("\n")
	}
	tw.str(")")
}
