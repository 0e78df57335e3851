package plist

import (
	"fmt"
	"strings"
)

// ParseError reports where in the input parsing failed.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("plist: line %d: %s", e.Line, e.Msg)
}

// Parse reads a complete document whose top level is a dictionary.
func Parse(data []byte) (*Dict, error) {
	p := &parser{data: data, line: 1}
	p.skipSpace()
	if p.peek() != '{' {
		return nil, p.errf("document must start with '{'")
	}
	d, err := p.parseDict()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.data) {
		return nil, p.errf("unexpected content after closing '}'")
	}
	return d, nil
}

// ParseValue reads a single value: a dictionary, an array, or a string
// scalar.
func ParseValue(data []byte) (any, error) {
	p := &parser{data: data, line: 1}
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.data) {
		return nil, p.errf("unexpected content after value")
	}
	return v, nil
}

type parser struct {
	data []byte
	pos  int
	line int
}

func (p *parser) errf(format string, args ...any) error {
	return &ParseError{Line: p.line, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) peek() byte {
	if p.pos >= len(p.data) {
		return 0
	}
	return p.data[p.pos]
}

func (p *parser) skipSpace() {
	for p.pos < len(p.data) {
		switch p.data[p.pos] {
		case '\n':
			p.line++
			p.pos++
		case ' ', '\t', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) parseValue() (any, error) {
	p.skipSpace()
	switch p.peek() {
	case 0:
		return nil, p.errf("unexpected end of input")
	case '{':
		return p.parseDict()
	case '(':
		return p.parseArray()
	case '"':
		return p.parseQuoted()
	default:
		return p.parseBare()
	}
}

func (p *parser) parseDict() (*Dict, error) {
	p.pos++ // consume '{'
	d := NewDict()
	for {
		p.skipSpace()
		switch p.peek() {
		case 0:
			return nil, p.errf("unterminated dictionary")
		case '}':
			p.pos++
			return d, nil
		}
		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.peek() != '=' {
			return nil, p.errf("expected '=' after key %q", key)
		}
		p.pos++
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		switch p.peek() {
		case ';':
			p.pos++
		case '}':
		default:
			return nil, p.errf("expected ';' after value for key %q", key)
		}
		d.Set(key, value)
	}
}

func (p *parser) parseArray() (Array, error) {
	p.pos++ // consume '('
	arr := Array{}
	for {
		p.skipSpace()
		switch p.peek() {
		case 0:
			return nil, p.errf("unterminated array")
		case ')':
			p.pos++
			return arr, nil
		}
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case ')':
		default:
			return nil, p.errf("expected ',' or ')' in array")
		}
	}
}

func (p *parser) parseKey() (string, error) {
	if p.peek() == '"' {
		return p.parseQuoted()
	}
	return p.parseBare()
}

// parseQuoted unescapes only `\"`. Every other backslash sequence passes
// through verbatim: escapes like \012 and \U2019 belong to field-level
// decoders, and keeping them intact is what makes parse/write stable on
// application-written files.
func (p *parser) parseQuoted() (string, error) {
	p.pos++ // consume '"'
	var b strings.Builder
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		switch c {
		case '"':
			p.pos++
			return b.String(), nil
		case '\\':
			if p.pos+1 < len(p.data) && p.data[p.pos+1] == '"' {
				b.WriteByte('"')
				p.pos += 2
				continue
			}
			b.WriteByte('\\')
			p.pos++
		case '\n':
			p.line++
			b.WriteByte(c)
			p.pos++
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return "", p.errf("unterminated string")
}

func (p *parser) parseBare() (string, error) {
	start := p.pos
	for p.pos < len(p.data) && !isDelim(p.data[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", p.errf("unexpected character %q", string(p.data[p.pos]))
	}
	return string(p.data[start:p.pos]), nil
}

func isDelim(c byte) bool {
	switch c {
	case '{', '}', '(', ')', '=', ';', ',', '"', ' ', '\t', '\n', '\r':
		return true
	}
	return false
}
