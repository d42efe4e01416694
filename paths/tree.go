package paths

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers for decoded documents
//
// JSON and YAML documents decode to trees of map[string]any and []any. These
// functions read and write such trees with dot-separated keys; a segment
// that parses as an integer indexes into a list.
//
//	doc := map[string]any{
//	    "user": map[string]any{
//	        "name":  "Alice",
//	        "roles": []any{"admin", "dev"},
//	    },
//	}
//
//	Dig(doc, "user.name")      → "Alice", true
//	Dig(doc, "user.roles.1")   → "dev", true
//	Put(doc, "user.age", 30)
//	Put(doc, "user.roles.1", "ops")
//	Forget(doc, "user.roles")
// ─────────────────────────────────────────────────────────────────────────────

// Dig returns the value at the dot-notation key and whether it exists.
// The empty key addresses the whole tree.
func Dig(tree any, key string) (any, bool) {
	if key == "" {
		return tree, true
	}
	current := tree
	for _, seg := range strings.Split(key, ".") {
		switch node := current.(type) {
		case map[string]any:
			v, ok := node[seg]
			if !ok {
				return nil, false
			}
			current = v
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false
			}
			current = node[i]
		default:
			return nil, false
		}
	}
	return current, true
}

// Put writes value into m at the dot-notation key, creating intermediate
// maps as needed. A segment under a list must be an index within it; the
// element is replaced in place. Missing keys and scalar values on the way
// become maps.
//
//	Put(m, "user.address.postcode", "EC1")
//	Put(m, "user.roles.1", "ops")
func Put(m map[string]any, key string, value any) error {
	return put(m, key, key, value)
}

func put(node any, full, key string, value any) error {
	seg, rest, nested := strings.Cut(key, ".")
	switch n := node.(type) {
	case map[string]any:
		if !nested {
			n[seg] = value
			return nil
		}
		child := n[seg]
		if !isContainer(child) {
			child = make(map[string]any)
			n[seg] = child
		}
		return put(child, full, rest, value)
	case []any:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= len(n) {
			return fmt.Errorf("%w: %q in %q (length %d)", ErrBadIndex, seg, full, len(n))
		}
		if !nested {
			n[i] = value
			return nil
		}
		child := n[i]
		if !isContainer(child) {
			child = make(map[string]any)
			n[i] = child
		}
		return put(child, full, rest, value)
	}
	return nil
}

func isContainer(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	}
	return false
}

// Forget removes the dot-notation key from m. An index into a list
// removes that element and shifts the rest down. Missing keys are ignored
// and intermediate containers are not cleaned up.
func Forget(m map[string]any, key string) {
	forget(m, key)
}

// forget returns node without key. Lists shrink, so the caller stores the
// result back in the parent.
func forget(node any, key string) any {
	seg, rest, nested := strings.Cut(key, ".")
	switch n := node.(type) {
	case map[string]any:
		if !nested {
			delete(n, seg)
		} else if child, ok := n[seg]; ok {
			n[seg] = forget(child, rest)
		}
		return n
	case []any:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= len(n) {
			return n
		}
		if !nested {
			return slices.Delete(slices.Clone(n), i, i+1)
		}
		n[i] = forget(n[i], rest)
		return n
	}
	return node
}

// Flatten turns a nested tree into a single-level map with dot-notation
// keys. List elements are keyed by their index.
//
//	Flatten(map[string]any{"a": map[string]any{"b": 1}, "c": []any{"x"}})
//	// → map[string]any{"a.b": 1, "c.0": "x"}
func Flatten(tree map[string]any) map[string]any {
	out := make(map[string]any)
	flattenInto("", tree, out)
	return out
}

func flattenInto(prefix string, node any, out map[string]any) {
	join := func(k string) string {
		if prefix == "" {
			return k
		}
		return prefix + "." + k
	}
	switch n := node.(type) {
	case map[string]any:
		for k, v := range n {
			flattenInto(join(k), v, out)
		}
	case []any:
		for i, v := range n {
			flattenInto(join(strconv.Itoa(i)), v, out)
		}
	default:
		out[prefix] = node
	}
}

// Merge merges src into a copy of dst and returns it. Nested maps are
// merged recursively; any other src value replaces the dst value.
func Merge(dst, src map[string]any) map[string]any {
	out := maps.Clone(dst)
	if out == nil {
		out = make(map[string]any, len(src))
	}
	for k, sv := range src {
		dm, dIsMap := out[k].(map[string]any)
		sm, sIsMap := sv.(map[string]any)
		if dIsMap && sIsMap {
			out[k] = Merge(dm, sm)
			continue
		}
		out[k] = sv
	}
	return out
}
