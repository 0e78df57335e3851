package plist

import "fmt"

// Equal reports whether two trees hold the same content. Scalars compare
// by their rendered text, so a native 100 equals the parsed scalar "100".
func Equal(a, b any) bool {
	_, diff := FirstDiff(a, b)
	return !diff
}

// FirstDiff locates the first position where two trees differ, walking
// dictionaries in key order and arrays by index. diff is false and the
// path empty when the trees are equal.
func FirstDiff(a, b any) (path string, diff bool) {
	return firstDiff("", a, b)
}

func firstDiff(path string, a, b any) (string, bool) {
	switch av := a.(type) {
	case *Dict:
		bv, isDict := b.(*Dict)
		if !isDict {
			return path, true
		}
		aKeys, bKeys := av.Keys(), bv.Keys()
		for i, key := range aKeys {
			if i >= len(bKeys) || bKeys[i] != key {
				return joinPath(path, key), true
			}
			aVal, _ := av.Get(key)
			bVal, _ := bv.Get(key)
			if p, diff := firstDiff(joinPath(path, key), aVal, bVal); diff {
				return p, true
			}
		}
		if len(bKeys) > len(aKeys) {
			return joinPath(path, bKeys[len(aKeys)]), true
		}
		return "", false
	case Array:
		bv, isArray := b.(Array)
		if !isArray {
			return path, true
		}
		n := min(len(av), len(bv))
		for i := 0; i < n; i++ {
			if p, diff := firstDiff(fmt.Sprintf("%s[%d]", path, i), av[i], bv[i]); diff {
				return p, true
			}
		}
		if len(av) != len(bv) {
			return fmt.Sprintf("%s[%d]", path, n), true
		}
		return "", false
	default:
		if ValueString(a) == ValueString(b) {
			return "", false
		}
		return path, true
	}
}

func joinPath(base, key string) string {
	if base == "" {
		return key
	}
	return base + "." + key
}
