package glyphs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the distinct failure kinds callers are expected to
// branch on. Name lookups that simply miss return a nil element, not an
// error; these cover genuine misuse.
var (
	// ErrIndexOutOfRange reports a positional access outside the
	// collection bounds.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNotFound reports a delete or replace aimed at a name that is
	// not present in the collection.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCollection reports a bulk replacement with a value kind
	// the proxy does not accept.
	ErrInvalidCollection = errors.New("unsupported collection value")

	// ErrAnchorName rejects inserting an anchor without a name.
	ErrAnchorName = errors.New("anchor must have a name")

	// ErrVersionRange rejects a minor version outside 0-999.
	ErrVersionRange = errors.New("minor version must be between 0 and 999")

	// ErrUnsupportedValue reports a custom parameter value shape that
	// cannot be stored or rendered.
	ErrUnsupportedValue = errors.New("unsupported custom parameter value")

	// ErrNoFilePath reports a Save on a font that was never loaded from
	// nor saved to a path.
	ErrNoFilePath = errors.New("font has no file path")

	// ErrNotImplemented marks operations the document model declares but
	// does not compute.
	ErrNotImplemented = errors.New("not implemented")
)

// CoercionError reports a raw value that could not be cast to the type its
// field declares. During tree decoding these are collected as diagnostics
// rather than returned, so one bad field never aborts a whole font.
type CoercionError struct {
	Want string
	Raw  any
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("cannot coerce %T (%v) to %s", e.Raw, e.Raw, e.Want)
}

func coercionError(want string, raw any) error {
	return &CoercionError{Want: want, Raw: raw}
}
