package plist

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NeedsQuotes reports whether a scalar must be written in quoted form.
// Bare tokens are non-empty runs of ASCII letters, digits, '.' and '_'.
func NeedsQuotes(s string) bool {
	if s == "" {
		return true
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '.' || c == '_':
		default:
			return true
		}
	}
	return false
}

// QuoteString wraps s in double quotes, escaping embedded quotes and
// replacing newlines and tabs with their octal escapes.
func QuoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\012`)
		case '\t':
			b.WriteString(`\011`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// ScalarString renders a string scalar, quoting it only when required.
func ScalarString(s string) string {
	if NeedsQuotes(s) {
		return QuoteString(s)
	}
	return s
}

// FloatString renders a float the way the Glyphs application does:
// integral values carry no decimal point, everything else uses the fewest
// of one, two or three decimals that represents the value.
func FloatString(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	switch {
	case math.Round(f*10)/10 == f:
		return strconv.FormatFloat(f, 'f', 1, 64)
	case math.Round(f*100)/100 == f:
		return strconv.FormatFloat(f, 'f', 2, 64)
	default:
		return strconv.FormatFloat(f, 'f', 3, 64)
	}
}

var featureEscapes = [...]struct{ escaped, plain string }{
	{`\012`, "\n"},
	{`\011`, "\t"},
	{`\U2018`, "'"},
	{`\U2019`, "'"},
	{`\U201C`, `"`},
	{`\U201D`, `"`},
}

// DecodeFeatureText resolves the escape sequences Glyphs embeds in feature
// code, class code and free-form string values. Typographic quotes are
// normalized to their ASCII forms.
func DecodeFeatureText(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	for _, r := range featureEscapes {
		s = strings.ReplaceAll(s, r.escaped, r.plain)
	}
	return s
}

// EncodeFeatureText quotes the text when required, escaping embedded
// quotes, newlines and tabs.
func EncodeFeatureText(s string) string {
	if !NeedsQuotes(s) {
		return s
	}
	return QuoteString(s)
}

// ParseIntList decodes an integer-list value: a native []int, an array
// of scalars, a single scalar, or a comma-delimited (optionally
// parenthesized) string.
func ParseIntList(v any) ([]int, error) {
	switch t := v.(type) {
	case []int:
		return t, nil
	case Array:
		out := make([]int, 0, len(t))
		for _, item := range t {
			n, err := scalarInt(item)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
		return out, nil
	case string:
		s := strings.TrimSpace(t)
		s = strings.TrimPrefix(s, "(")
		s = strings.TrimSuffix(s, ")")
		parts := strings.Split(s, ",")
		out := make([]int, 0, len(parts))
		for _, part := range parts {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("plist: invalid integer %q in list", part)
			}
			out = append(out, n)
		}
		return out, nil
	default:
		n, err := scalarInt(v)
		if err != nil {
			return nil, err
		}
		return []int{n}, nil
	}
}

// IntStrings renders each integer as decimal text.
func IntStrings(vals []int) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = strconv.Itoa(v)
	}
	return out
}

func scalarInt(v any) (int, error) {
	switch t := v.(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, fmt.Errorf("plist: invalid integer %q", t)
		}
		return n, nil
	case int:
		return t, nil
	case int64:
		return int(t), nil
	case float64:
		return int(t), nil
	default:
		return 0, fmt.Errorf("plist: cannot read %T as integer", v)
	}
}
