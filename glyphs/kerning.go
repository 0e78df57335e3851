package glyphs

import (
	"fmt"

	"github.com/letterink/glyphsource/plist"
)

// Kerning is the three-level kerning table of a font: master id, then
// left glyph name or class, then right glyph name or class, down to a
// numeric adjustment. All levels keep source order; every stored value
// is a float.
type Kerning struct {
	masters *plist.Dict
}

// NewKerning returns an empty kerning table.
func NewKerning() *Kerning {
	return &Kerning{masters: plist.NewDict()}
}

// Len returns the number of masters carrying kerning.
func (k *Kerning) Len() int {
	if k == nil {
		return 0
	}
	return k.masters.Len()
}

// MasterIDs returns the master ids carrying kerning, in source order.
func (k *Kerning) MasterIDs() []string {
	if k == nil {
		return nil
	}
	return k.masters.Keys()
}

// Pairs returns the left-side keys stored for a master, in source order.
func (k *Kerning) Pairs(masterID string) []string {
	left, ok := k.leftTable(masterID)
	if !ok {
		return nil
	}
	return left.Keys()
}

// Value returns the kerning adjustment for a pair under a master.
func (k *Kerning) Value(masterID, left, right string) (float64, bool) {
	leftTable, ok := k.leftTable(masterID)
	if !ok {
		return 0, false
	}
	rightTable, ok := dictAt(leftTable, left)
	if !ok {
		return 0, false
	}
	raw, ok := rightTable.Get(right)
	if !ok {
		return 0, false
	}
	value, err := toFloat(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}

// Set stores the kerning adjustment for a pair under a master, creating
// intermediate tables as needed.
func (k *Kerning) Set(masterID, left, right string, value float64) {
	if k.masters == nil {
		k.masters = plist.NewDict()
	}
	leftTable, ok := dictAt(k.masters, masterID)
	if !ok {
		leftTable = plist.NewDict()
		k.masters.Set(masterID, leftTable)
	}
	rightTable, ok := dictAt(leftTable, left)
	if !ok {
		rightTable = plist.NewDict()
		leftTable.Set(left, rightTable)
	}
	rightTable.Set(right, value)
}

// Remove deletes the pair under a master, pruning tables emptied by the
// removal.
func (k *Kerning) Remove(masterID, left, right string) error {
	leftTable, ok := k.leftTable(masterID)
	if !ok {
		return fmt.Errorf("%w: kerning for master %q", ErrNotFound, masterID)
	}
	rightTable, ok := dictAt(leftTable, left)
	if !ok {
		return fmt.Errorf("%w: kerning %s %s", ErrNotFound, left, right)
	}
	if !rightTable.Delete(right) {
		return fmt.Errorf("%w: kerning %s %s", ErrNotFound, left, right)
	}
	if rightTable.Len() == 0 {
		leftTable.Delete(left)
	}
	if leftTable.Len() == 0 {
		k.masters.Delete(masterID)
	}
	return nil
}

func (k *Kerning) leftTable(masterID string) (*plist.Dict, bool) {
	if k == nil {
		return nil, false
	}
	return dictAt(k.masters, masterID)
}

func (k *Kerning) tree() *plist.Dict {
	if k == nil {
		return nil
	}
	return k.masters
}

func dictAt(d *plist.Dict, key string) (*plist.Dict, bool) {
	raw, ok := d.Get(key)
	if !ok {
		return nil, false
	}
	sub, ok := raw.(*plist.Dict)
	return sub, ok
}

// decodeKerning reads the nested table, forcing every leaf to a float.
// A single bad leaf rejects the whole table.
func decodeKerning(raw any) (*Kerning, error) {
	src, ok := raw.(*plist.Dict)
	if !ok {
		return nil, coercionError("dict", raw)
	}
	k := NewKerning()
	for _, masterID := range src.Keys() {
		rawLeft, _ := src.Get(masterID)
		leftSrc, ok := rawLeft.(*plist.Dict)
		if !ok {
			return nil, coercionError("dict", rawLeft)
		}
		for _, left := range leftSrc.Keys() {
			rawRight, _ := leftSrc.Get(left)
			rightSrc, ok := rawRight.(*plist.Dict)
			if !ok {
				return nil, coercionError("dict", rawRight)
			}
			for _, right := range rightSrc.Keys() {
				leaf, _ := rightSrc.Get(right)
				value, err := toFloat(leaf)
				if err != nil {
					return nil, err
				}
				k.Set(masterID, left, right, value)
			}
		}
	}
	return k, nil
}
