package glyphs

import (
	"fmt"

	"github.com/letterink/glyphsource/plist"
)

// Proxies are thin views bound to one owning entity and one backing
// collection; they are the only sanctioned mutation path for that
// collection. Back-reference assignment happens exclusively in proxy
// insert and remove operations, never inside the elements themselves.

// resolveIndex maps i onto [0, n), counting negative indices from the
// end.
func resolveIndex(i, n int) (int, error) {
	idx := i
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return 0, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, n)
	}
	return idx, nil
}

// listProxy is the positional core shared by every slice-backed
// collection. link and unlink maintain the element back-reference.
type listProxy[T any] struct {
	items  *[]*T
	link   func(*T)
	unlink func(*T)
}

// Len returns the number of elements.
func (p listProxy[T]) Len() int {
	return len(*p.items)
}

// At returns the element at i; negative indices count from the end.
func (p listProxy[T]) At(i int) (*T, error) {
	idx, err := resolveIndex(i, len(*p.items))
	if err != nil {
		return nil, err
	}
	return (*p.items)[idx], nil
}

// All returns a copy of the elements in order.
func (p listProxy[T]) All() []*T {
	out := make([]*T, len(*p.items))
	copy(out, *p.items)
	return out
}

// Append links each element to the owner and adds it at the end.
func (p listProxy[T]) Append(items ...*T) {
	for _, item := range items {
		p.link(item)
		*p.items = append(*p.items, item)
	}
}

// Extend appends every element of items in order.
func (p listProxy[T]) Extend(items []*T) {
	p.Append(items...)
}

// Insert links item and places it at i; i may equal Len to append.
func (p listProxy[T]) Insert(i int, item *T) error {
	n := len(*p.items)
	idx := i
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx > n {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, n)
	}
	p.link(item)
	*p.items = append(*p.items, nil)
	copy((*p.items)[idx+1:], (*p.items)[idx:])
	(*p.items)[idx] = item
	return nil
}

// RemoveAt detaches and removes the element at i.
func (p listProxy[T]) RemoveAt(i int) error {
	idx, err := resolveIndex(i, len(*p.items))
	if err != nil {
		return err
	}
	p.unlink((*p.items)[idx])
	*p.items = append((*p.items)[:idx], (*p.items)[idx+1:]...)
	return nil
}

// Remove detaches and removes the given element.
func (p listProxy[T]) Remove(item *T) error {
	for i, candidate := range *p.items {
		if candidate == item {
			return p.RemoveAt(i)
		}
	}
	return fmt.Errorf("%w: element not in collection", ErrNotFound)
}

// replace installs items as the new backing collection, re-linking each
// element exactly as an individual append would.
func (p listProxy[T]) replace(items []*T) {
	next := make([]*T, 0, len(items))
	for _, item := range items {
		p.link(item)
		next = append(next, item)
	}
	*p.items = next
}

// ParamsProxy is the ordered custom-parameter store of one entity.
type ParamsProxy struct {
	owner  any
	params *[]*CustomParameter
}

// Len returns the number of parameters.
func (p ParamsProxy) Len() int {
	return len(*p.params)
}

// At returns the parameter at i; negative indices count from the end.
func (p ParamsProxy) At(i int) (*CustomParameter, error) {
	idx, err := resolveIndex(i, len(*p.params))
	if err != nil {
		return nil, err
	}
	return (*p.params)[idx], nil
}

// All returns the parameters in insertion order.
func (p ParamsProxy) All() []*CustomParameter {
	out := make([]*CustomParameter, len(*p.params))
	copy(out, *p.params)
	return out
}

// Get returns the first parameter value stored under name.
func (p ParamsProxy) Get(name string) (ParamValue, bool) {
	for _, param := range *p.params {
		if param.Name == name {
			return param.value, true
		}
	}
	return ParamValue{}, false
}

// GetString returns the string form of the first parameter stored under
// name, or "" when absent.
func (p ParamsProxy) GetString(name string) string {
	v, ok := p.Get(name)
	if !ok {
		return ""
	}
	return v.String()
}

// Set coerces value per the name's registered rule, updating the first
// matching parameter in place or appending a new one.
func (p ParamsProxy) Set(name string, value any) error {
	for _, param := range *p.params {
		if param.Name == name {
			return param.SetValue(value)
		}
	}
	param, err := NewCustomParameter(name, value)
	if err != nil {
		return err
	}
	p.Append(param)
	return nil
}

// Append adds param at the end, claiming ownership.
func (p ParamsProxy) Append(params ...*CustomParameter) {
	for _, param := range params {
		param.parent = p.owner
		*p.params = append(*p.params, param)
	}
}

// Extend appends every parameter in order.
func (p ParamsProxy) Extend(params []*CustomParameter) {
	p.Append(params...)
}

// Insert places param at i.
func (p ParamsProxy) Insert(i int, param *CustomParameter) error {
	n := len(*p.params)
	idx := i
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx > n {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, n)
	}
	param.parent = p.owner
	*p.params = append(*p.params, nil)
	copy((*p.params)[idx+1:], (*p.params)[idx:])
	(*p.params)[idx] = param
	return nil
}

// Remove deletes the first parameter stored under name.
func (p ParamsProxy) Remove(name string) error {
	for i, param := range *p.params {
		if param.Name == name {
			param.parent = nil
			*p.params = append((*p.params)[:i], (*p.params)[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: custom parameter %q", ErrNotFound, name)
}

// RemoveAt deletes the parameter at i.
func (p ParamsProxy) RemoveAt(i int) error {
	idx, err := resolveIndex(i, len(*p.params))
	if err != nil {
		return err
	}
	(*p.params)[idx].parent = nil
	*p.params = append((*p.params)[:idx], (*p.params)[idx+1:]...)
	return nil
}

// Replace installs a new parameter list: a slice, another ParamsProxy,
// or nil to clear.
func (p ParamsProxy) Replace(values any) error {
	switch v := values.(type) {
	case nil:
		*p.params = nil
		return nil
	case []*CustomParameter:
		next := make([]*CustomParameter, 0, len(v))
		for _, param := range v {
			param.parent = p.owner
			next = append(next, param)
		}
		*p.params = next
		return nil
	case ParamsProxy:
		return p.Replace(v.All())
	default:
		return fmt.Errorf("%w: %T", ErrInvalidCollection, values)
	}
}

// UserDataProxy is the free-form string-keyed store of one entity. The
// backing dictionary is created on first write.
type UserDataProxy struct {
	data **plist.Dict
}

// Len returns the number of entries.
func (u UserDataProxy) Len() int {
	return (*u.data).Len()
}

// Get returns the value stored under key.
func (u UserDataProxy) Get(key string) (any, bool) {
	return (*u.data).Get(key)
}

// Set stores value under key.
func (u UserDataProxy) Set(key string, value any) {
	if *u.data == nil {
		*u.data = plist.NewDict()
	}
	(*u.data).Set(key, value)
}

// Delete removes key and reports whether it was present.
func (u UserDataProxy) Delete(key string) bool {
	return (*u.data).Delete(key)
}

// Keys returns the keys in insertion order.
func (u UserDataProxy) Keys() []string {
	return (*u.data).Keys()
}

// Replace installs d as the backing dictionary.
func (u UserDataProxy) Replace(d *plist.Dict) {
	*u.data = d
}
