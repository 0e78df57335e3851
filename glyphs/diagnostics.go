package glyphs

import (
	"fmt"
	"log/slog"
)

// Issue is one recovered per-field decode failure: the entity path inside
// the document, the serialized key, and the cause.
type Issue struct {
	Path string
	Key  string
	Err  error
}

func (i Issue) String() string {
	if i.Path == "" {
		return fmt.Sprintf("%s: %v", i.Key, i.Err)
	}
	return fmt.Sprintf("%s.%s: %v", i.Path, i.Key, i.Err)
}

// Diagnostics aggregates the issues raised while building a font from a
// generic tree. Loading a malformed file yields a best-effort graph plus
// this report instead of failing outright.
type Diagnostics struct {
	issues []Issue
}

// Add records one issue and logs it through the default slog handler.
func (d *Diagnostics) Add(path, key string, err error) {
	if d == nil {
		return
	}
	d.issues = append(d.issues, Issue{Path: path, Key: key, Err: err})
	slog.Debug("field coercion failed", "path", path, "key", key, "error", err)
}

// Issues returns the recorded issues in the order they were raised.
func (d *Diagnostics) Issues() []Issue {
	if d == nil {
		return nil
	}
	return d.issues
}

// Len returns the number of recorded issues.
func (d *Diagnostics) Len() int {
	if d == nil {
		return 0
	}
	return len(d.issues)
}

// Empty reports whether the decode raised no issues.
func (d *Diagnostics) Empty() bool {
	return d.Len() == 0
}

func (d *Diagnostics) merge(other *Diagnostics) {
	if d == nil || other == nil {
		return
	}
	d.issues = append(d.issues, other.issues...)
}
