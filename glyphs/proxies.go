package glyphs

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// newID returns a fresh master or layer id in the uppercase UUID form
// the Glyphs application writes.
func newID() string {
	return strings.ToUpper(uuid.NewString())
}

// GlyphsProxy is the glyph collection of a font.
type GlyphsProxy struct {
	listProxy[Glyph]
}

// Get returns the glyph stored under name. A single-character name is
// matched against glyph codepoints after NFC normalization, a longer one
// against its uppercased hex form, so Get("ä") and Get("00e4") find the
// same glyph. Returns nil when nothing matches.
func (p GlyphsProxy) Get(name string) *Glyph {
	for _, g := range *p.items {
		if g.Name == name {
			return g
		}
	}
	if composed := norm.NFC.String(name); utf8.RuneCountInString(composed) == 1 {
		r, _ := utf8.DecodeRuneInString(composed)
		code := fmt.Sprintf("%04X", r)
		for _, g := range *p.items {
			if g.Unicode == code {
				return g
			}
		}
		return nil
	}
	upper := strings.ToUpper(name)
	for _, g := range *p.items {
		if g.Unicode == upper {
			return g
		}
	}
	return nil
}

// Has reports whether Get(name) finds a glyph.
func (p GlyphsProxy) Has(name string) bool {
	return p.Get(name) != nil
}

// Remove detaches and removes the glyph stored under name.
func (p GlyphsProxy) Remove(name string) error {
	for i, g := range *p.items {
		if g.Name == name {
			return p.RemoveAt(i)
		}
	}
	return fmt.Errorf("%w: glyph %q", ErrNotFound, name)
}

// Replace installs a new glyph list: a slice, another GlyphsProxy, or
// nil to clear.
func (p GlyphsProxy) Replace(values any) error {
	switch v := values.(type) {
	case nil:
		p.replace(nil)
		return nil
	case []*Glyph:
		p.replace(v)
		return nil
	case GlyphsProxy:
		p.replace(v.All())
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrInvalidCollection, values)
	}
}

// MastersProxy is the master list of a font, keyed by master id.
type MastersProxy struct {
	listProxy[FontMaster]
}

// Get returns the master stored under id, or nil.
func (p MastersProxy) Get(id string) *FontMaster {
	for _, m := range *p.items {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// Append claims each master, generating a fresh id for any master that
// lacks one.
func (p MastersProxy) Append(masters ...*FontMaster) {
	for _, m := range masters {
		if m.ID == "" {
			m.ID = newID()
		}
		p.link(m)
		*p.items = append(*p.items, m)
	}
}

// Extend appends every master in order.
func (p MastersProxy) Extend(masters []*FontMaster) {
	p.Append(masters...)
}

// Insert places a master at i, generating an id if it lacks one.
func (p MastersProxy) Insert(i int, m *FontMaster) error {
	if m.ID == "" {
		m.ID = newID()
	}
	return p.listProxy.Insert(i, m)
}

// Replace installs a new master list, claiming and keying every master
// as appending each one would: a slice, another MastersProxy, or nil to
// clear.
func (p MastersProxy) Replace(values any) error {
	switch v := values.(type) {
	case nil:
		p.replace(nil)
		return nil
	case []*FontMaster:
		*p.items = nil
		p.Append(v...)
		return nil
	case MastersProxy:
		return p.Replace(v.All())
	default:
		return fmt.Errorf("%w: %T", ErrInvalidCollection, values)
	}
}

// InstancesProxy is the instance list of a font.
type InstancesProxy struct {
	listProxy[Instance]
}

// Replace installs a new instance list: a slice, another InstancesProxy,
// or nil to clear.
func (p InstancesProxy) Replace(values any) error {
	switch v := values.(type) {
	case nil:
		p.replace(nil)
		return nil
	case []*Instance:
		p.replace(v)
		return nil
	case InstancesProxy:
		p.replace(v.All())
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrInvalidCollection, values)
	}
}

// ClassesProxy is the OpenType class list of a font, addressable by
// position or class name.
type ClassesProxy struct {
	listProxy[Class]
}

// Get returns the class stored under name, or nil.
func (p ClassesProxy) Get(name string) *Class {
	for _, c := range *p.items {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Set replaces the class stored under name, keeping its position.
func (p ClassesProxy) Set(name string, c *Class) error {
	for i, existing := range *p.items {
		if existing.Name == name {
			p.link(c)
			(*p.items)[i] = c
			return nil
		}
	}
	return fmt.Errorf("%w: class %q", ErrNotFound, name)
}

// Remove detaches and removes the class stored under name.
func (p ClassesProxy) Remove(name string) error {
	for i, existing := range *p.items {
		if existing.Name == name {
			return p.RemoveAt(i)
		}
	}
	return fmt.Errorf("%w: class %q", ErrNotFound, name)
}

// Replace installs a new class list: a slice, another ClassesProxy, or
// nil to clear.
func (p ClassesProxy) Replace(values any) error {
	switch v := values.(type) {
	case nil:
		p.replace(nil)
		return nil
	case []*Class:
		p.replace(v)
		return nil
	case ClassesProxy:
		p.replace(v.All())
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrInvalidCollection, values)
	}
}

// FeaturesProxy is the OpenType feature list of a font.
type FeaturesProxy struct {
	listProxy[Feature]
}

// Get returns the feature stored under the given tag, or nil.
func (p FeaturesProxy) Get(name string) *Feature {
	for _, f := range *p.items {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Replace installs a new feature list: a slice, another FeaturesProxy,
// or nil to clear.
func (p FeaturesProxy) Replace(values any) error {
	switch v := values.(type) {
	case nil:
		p.replace(nil)
		return nil
	case []*Feature:
		p.replace(v)
		return nil
	case FeaturesProxy:
		p.replace(v.All())
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrInvalidCollection, values)
	}
}

// FeaturePrefixesProxy is the feature prefix list of a font.
type FeaturePrefixesProxy struct {
	listProxy[FeaturePrefix]
}

// Get returns the prefix stored under name, or nil.
func (p FeaturePrefixesProxy) Get(name string) *FeaturePrefix {
	for _, f := range *p.items {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Replace installs a new prefix list: a slice, another
// FeaturePrefixesProxy, or nil to clear.
func (p FeaturePrefixesProxy) Replace(values any) error {
	switch v := values.(type) {
	case nil:
		p.replace(nil)
		return nil
	case []*FeaturePrefix:
		p.replace(v)
		return nil
	case FeaturePrefixesProxy:
		p.replace(v.All())
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrInvalidCollection, values)
	}
}

// LayersProxy is the layer collection of a glyph: keyed by layer id,
// iterated in declared order.
type LayersProxy struct {
	glyph *Glyph
}

// Len returns the number of layers.
func (p LayersProxy) Len() int {
	return len(p.glyph.layerOrder)
}

// At returns the layer at i in declared order; negative indices count
// from the end.
func (p LayersProxy) At(i int) (*Layer, error) {
	idx, err := resolveIndex(i, len(p.glyph.layerOrder))
	if err != nil {
		return nil, err
	}
	return p.glyph.layers[p.glyph.layerOrder[idx]], nil
}

// IDs returns the layer ids in declared order.
func (p LayersProxy) IDs() []string {
	out := make([]string, len(p.glyph.layerOrder))
	copy(out, p.glyph.layerOrder)
	return out
}

// All returns the layers in declared order.
func (p LayersProxy) All() []*Layer {
	out := make([]*Layer, 0, len(p.glyph.layerOrder))
	for _, id := range p.glyph.layerOrder {
		out = append(out, p.glyph.layers[id])
	}
	return out
}

// Get returns the layer stored under id. When id names a font master
// that has no layer on this glyph yet, an empty layer is created, bound
// and stored before being returned. Returns nil otherwise.
func (p LayersProxy) Get(id string) *Layer {
	if layer, ok := p.glyph.layers[id]; ok {
		return layer
	}
	if f := p.glyph.font; f != nil && f.MasterForID(id) != nil {
		layer := NewLayer()
		p.Put(id, layer)
		return layer
	}
	return nil
}

// Has reports whether a layer is stored under id, without materializing
// master layers the way Get does.
func (p LayersProxy) Has(id string) bool {
	_, ok := p.glyph.layers[id]
	return ok
}

// Put binds layer to the glyph and stores it under id.
func (p LayersProxy) Put(id string, layer *Layer) {
	p.glyph.setupLayer(layer, id)
	p.glyph.storeLayer(id, layer)
}

// Append binds each layer and stores it under its own layer id. An
// empty layer id gets a fresh uppercase UUID; an empty associated master
// id defaults to the font's first master.
func (p LayersProxy) Append(layers ...*Layer) {
	for _, layer := range layers {
		if layer.AssociatedMasterID == "" {
			if f := p.glyph.font; f != nil && len(f.masters) > 0 {
				layer.AssociatedMasterID = f.masters[0].ID
			}
		}
		if layer.LayerID == "" {
			layer.LayerID = newID()
		}
		p.glyph.setupLayer(layer, layer.LayerID)
		p.glyph.storeLayer(layer.LayerID, layer)
	}
}

// Extend appends every layer in order.
func (p LayersProxy) Extend(layers []*Layer) {
	p.Append(layers...)
}

// Remove detaches and removes the layer stored under id.
func (p LayersProxy) Remove(id string) error {
	layer, ok := p.glyph.layers[id]
	if !ok {
		return fmt.Errorf("%w: layer %q", ErrNotFound, id)
	}
	layer.glyph = nil
	p.glyph.deleteLayer(id)
	return nil
}

// RemoveAt detaches and removes the layer at i in declared order.
func (p LayersProxy) RemoveAt(i int) error {
	idx, err := resolveIndex(i, len(p.glyph.layerOrder))
	if err != nil {
		return err
	}
	return p.Remove(p.glyph.layerOrder[idx])
}

// Replace installs a new layer set, re-keying and re-linking every
// layer exactly as appending each one in order would: a slice, a map,
// another LayersProxy, or nil to clear. Map input is ordered by key
// first so the declared order is deterministic.
func (p LayersProxy) Replace(values any) error {
	switch v := values.(type) {
	case nil:
		p.glyph.clearLayers()
		return nil
	case []*Layer:
		p.glyph.clearLayers()
		p.Append(v...)
		return nil
	case map[string]*Layer:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		layers := make([]*Layer, 0, len(keys))
		for _, key := range keys {
			layers = append(layers, v[key])
		}
		return p.Replace(layers)
	case LayersProxy:
		return p.Replace(v.All())
	default:
		return fmt.Errorf("%w: %T", ErrInvalidCollection, values)
	}
}

// AnchorsProxy is the anchor list of a layer. Anchor names are unique
// within a layer; inserting operations keep that invariant.
type AnchorsProxy struct {
	listProxy[Anchor]
}

// Get returns the anchor stored under name, or nil.
func (p AnchorsProxy) Get(name string) *Anchor {
	for _, a := range *p.items {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Append claims each anchor, replacing any anchor of the same name in
// place and appending otherwise. Unnamed anchors are rejected.
func (p AnchorsProxy) Append(anchors ...*Anchor) error {
	for _, anchor := range anchors {
		if anchor.Name == "" {
			return ErrAnchorName
		}
		p.link(anchor)
		replaced := false
		for i, existing := range *p.items {
			if existing.Name == anchor.Name {
				p.unlink(existing)
				(*p.items)[i] = anchor
				replaced = true
				break
			}
		}
		if !replaced {
			*p.items = append(*p.items, anchor)
		}
	}
	return nil
}

// Extend appends every anchor in order, with the same replace-by-name
// behavior as Append.
func (p AnchorsProxy) Extend(anchors []*Anchor) error {
	return p.Append(anchors...)
}

// Insert places anchor at i, displacing any same-named anchor first.
// Unnamed anchors are rejected.
func (p AnchorsProxy) Insert(i int, anchor *Anchor) error {
	if anchor.Name == "" {
		return ErrAnchorName
	}
	for j, existing := range *p.items {
		if existing.Name == anchor.Name {
			p.unlink(existing)
			*p.items = append((*p.items)[:j], (*p.items)[j+1:]...)
			break
		}
	}
	return p.listProxy.Insert(i, anchor)
}

// Set renames anchor to name and stores it, replacing any existing
// anchor of that name in place.
func (p AnchorsProxy) Set(name string, anchor *Anchor) error {
	if name == "" {
		return ErrAnchorName
	}
	anchor.Name = name
	return p.Append(anchor)
}

// Remove detaches and removes the anchor stored under name.
func (p AnchorsProxy) Remove(name string) error {
	for i, existing := range *p.items {
		if existing.Name == name {
			return p.RemoveAt(i)
		}
	}
	return fmt.Errorf("%w: anchor %q", ErrNotFound, name)
}

// Replace installs a new anchor list, applying the same name invariants
// as appending each anchor in order: a slice, another AnchorsProxy, or
// nil to clear.
func (p AnchorsProxy) Replace(values any) error {
	switch v := values.(type) {
	case nil:
		*p.items = nil
		return nil
	case []*Anchor:
		*p.items = nil
		return p.Append(v...)
	case AnchorsProxy:
		return p.Replace(v.All())
	default:
		return fmt.Errorf("%w: %T", ErrInvalidCollection, values)
	}
}

// PathsProxy is the path list of a layer.
type PathsProxy struct {
	listProxy[Path]
}

// Replace installs a new path list: a slice, another PathsProxy, or nil
// to clear.
func (p PathsProxy) Replace(values any) error {
	switch v := values.(type) {
	case nil:
		p.replace(nil)
		return nil
	case []*Path:
		p.replace(v)
		return nil
	case PathsProxy:
		p.replace(v.All())
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrInvalidCollection, values)
	}
}

// ComponentsProxy is the component list of a layer.
type ComponentsProxy struct {
	listProxy[Component]
}

// Replace installs a new component list: a slice, another
// ComponentsProxy, or nil to clear.
func (p ComponentsProxy) Replace(values any) error {
	switch v := values.(type) {
	case nil:
		p.replace(nil)
		return nil
	case []*Component:
		p.replace(v)
		return nil
	case ComponentsProxy:
		p.replace(v.All())
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrInvalidCollection, values)
	}
}

// GuidesProxy is the guide list of a master or a layer.
type GuidesProxy struct {
	listProxy[GuideLine]
}

// Replace installs a new guide list: a slice, another GuidesProxy, or
// nil to clear.
func (p GuidesProxy) Replace(values any) error {
	switch v := values.(type) {
	case nil:
		p.replace(nil)
		return nil
	case []*GuideLine:
		p.replace(v)
		return nil
	case GuidesProxy:
		p.replace(v.All())
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrInvalidCollection, values)
	}
}

// AnnotationsProxy is the annotation list of a layer.
type AnnotationsProxy struct {
	listProxy[Annotation]
}

// Replace installs a new annotation list: a slice, another
// AnnotationsProxy, or nil to clear.
func (p AnnotationsProxy) Replace(values any) error {
	switch v := values.(type) {
	case nil:
		p.replace(nil)
		return nil
	case []*Annotation:
		p.replace(v)
		return nil
	case AnnotationsProxy:
		p.replace(v.All())
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrInvalidCollection, values)
	}
}

// HintsProxy is the hint list of a layer.
type HintsProxy struct {
	listProxy[Hint]
}

// Replace installs a new hint list: a slice, another HintsProxy, or nil
// to clear.
func (p HintsProxy) Replace(values any) error {
	switch v := values.(type) {
	case nil:
		p.replace(nil)
		return nil
	case []*Hint:
		p.replace(v)
		return nil
	case HintsProxy:
		p.replace(v.All())
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrInvalidCollection, values)
	}
}

// NodesProxy is the node list of a path.
type NodesProxy struct {
	listProxy[Node]
}

// Replace installs a new node list: a slice, another NodesProxy, or nil
// to clear.
func (p NodesProxy) Replace(values any) error {
	switch v := values.(type) {
	case nil:
		p.replace(nil)
		return nil
	case []*Node:
		p.replace(v)
		return nil
	case NodesProxy:
		p.replace(v.All())
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrInvalidCollection, values)
	}
}
