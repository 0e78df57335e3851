// Package plist reads and writes the OpenStep-style property list dialect
// used by Glyphs font sources: `{ key = value; }` dictionaries, `( a, b )`
// arrays, and quoted or bare string scalars, newline separated and without
// indentation.
//
// Parsing never infers types: every scalar comes back as a string, so
// values like leading-zero hex codes and version numbers survive untouched.
// Interpreting scalars is the caller's job. Programmatic trees may also
// carry int, int64, float64 and bool values; the writer renders those with
// the same text rules the Glyphs application uses.
package plist

// Dict is a string-keyed mapping that preserves insertion order.
type Dict struct {
	keys   []string
	values map[string]any
}

// Array is an ordered, heterogeneous value list.
type Array []any

// Raw is pre-rendered property list text. The writer emits it verbatim,
// with no quoting or escaping.
type Raw string

// NewDict returns an empty ordered dictionary.
func NewDict() *Dict {
	return &Dict{values: make(map[string]any)}
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Has reports whether key is present.
func (d *Dict) Has(key string) bool {
	if d == nil {
		return false
	}
	_, ok := d.values[key]
	return ok
}

// Get returns the value stored under key.
func (d *Dict) Get(key string) (any, bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d.values[key]
	return v, ok
}

// Set stores value under key. An existing key keeps its position, a new
// key is appended.
func (d *Dict) Set(key string, value any) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Delete removes key and reports whether it was present.
func (d *Dict) Delete(key string) bool {
	if d == nil {
		return false
	}
	if _, ok := d.values[key]; !ok {
		return false
	}
	delete(d.values, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// GetString returns the string scalar stored under key.
func (d *Dict) GetString(key string) (string, bool) {
	v, ok := d.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// GetDict returns the nested dictionary stored under key.
func (d *Dict) GetDict(key string) (*Dict, bool) {
	v, ok := d.Get(key)
	if !ok {
		return nil, false
	}
	sub, ok := v.(*Dict)
	return sub, ok
}

// GetArray returns the array stored under key.
func (d *Dict) GetArray(key string) (Array, bool) {
	v, ok := d.Get(key)
	if !ok {
		return nil, false
	}
	arr, ok := v.(Array)
	return arr, ok
}
