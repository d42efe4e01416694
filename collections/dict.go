package collections

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// Dict is an immutable, insertion-ordered map from K to V.
//
// Iteration (Keys, Values, Entries, First, Last …) follows the order in
// which keys were first inserted. Overwriting a key keeps its position.
//
//	d := collections.DictOf(collections.To("a", 1), collections.To("b", 2))
//	d2 := d.Put("c", 3) // d is unchanged
type Dict[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// DictOf creates a Dict from key/value pairs. Later pairs win.
func DictOf[K comparable, V any](entries ...Pair[K, V]) *Dict[K, V] {
	d := newDict[K, V](len(entries))
	for _, e := range entries {
		d.set(e.First, e.Second)
	}
	return d
}

// DictFrom creates a Dict from a Go map. Keys listed in order come first;
// the remaining keys follow, sorted by their printed form so the result is
// deterministic.
func DictFrom[K comparable, V any](m map[K]V, order ...K) *Dict[K, V] {
	d := newDict[K, V](len(m))
	for _, k := range order {
		if v, ok := m[k]; ok {
			d.set(k, v)
		}
	}
	rest := lo.Filter(lo.Keys(m), func(k K, _ int) bool { return !d.ContainsKey(k) })
	slices.SortFunc(rest, func(a, b K) int { return strings.Compare(fmt.Sprint(a), fmt.Sprint(b)) })
	for _, k := range rest {
		d.set(k, m[k])
	}
	return d
}

func newDict[K comparable, V any](capacity int) *Dict[K, V] {
	return &Dict[K, V]{keys: make([]K, 0, capacity), values: make(map[K]V, capacity)}
}

// set mutates d in place; only used while d is still private to a builder.
func (d *Dict[K, V]) set(k K, v V) {
	if _, ok := d.values[k]; !ok {
		d.keys = append(d.keys, k)
	}
	d.values[k] = v
}

func (d *Dict[K, V]) clone() *Dict[K, V] {
	out := newDict[K, V](len(d.keys))
	for _, k := range d.keys {
		out.set(k, d.values[k])
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the value stored under k and whether it was present.
func (d *Dict[K, V]) Get(k K) (V, bool) {
	v, ok := d.values[k]
	return v, ok
}

// GetOrDefault returns the value under k, or def when k is absent.
func (d *Dict[K, V]) GetOrDefault(k K, def V) V {
	if v, ok := d.values[k]; ok {
		return v
	}
	return def
}

// ContainsKey reports whether k is present.
func (d *Dict[K, V]) ContainsKey(k K) bool {
	_, ok := d.values[k]
	return ok
}

// Len returns the number of entries.
func (d *Dict[K, V]) Len() int { return len(d.keys) }

// IsEmpty reports whether the dict has no entries.
func (d *Dict[K, V]) IsEmpty() bool { return len(d.keys) == 0 }

// Keys returns the keys in insertion order.
func (d *Dict[K, V]) Keys() []K { return slices.Clone(d.keys) }

// Values returns the values in key insertion order.
func (d *Dict[K, V]) Values() []V {
	return lo.Map(d.keys, func(k K, _ int) V { return d.values[k] })
}

// Entries returns the key/value pairs in insertion order.
func (d *Dict[K, V]) Entries() []Pair[K, V] {
	return lo.Map(d.keys, func(k K, _ int) Pair[K, V] { return To(k, d.values[k]) })
}

// ToMap returns a plain Go map copy of d.
func (d *Dict[K, V]) ToMap() map[K]V {
	out := make(map[K]V, len(d.values))
	for k, v := range d.values {
		out[k] = v
	}
	return out
}

// String renders the entries in order, e.g. {a: 1, b: 2}.
func (d *Dict[K, V]) String() string {
	parts := lo.Map(d.keys, func(k K, _ int) string { return fmt.Sprintf("%v: %v", k, d.values[k]) })
	return "{" + strings.Join(parts, ", ") + "}"
}

// ─────────────────────────────────────────────────────────────────────────────
// Modification (copy on write)
// ─────────────────────────────────────────────────────────────────────────────

// Put returns a new Dict with k set to v.
func (d *Dict[K, V]) Put(k K, v V) *Dict[K, V] {
	out := d.clone()
	out.set(k, v)
	return out
}

// PutAll returns a new Dict with every pair applied in order.
func (d *Dict[K, V]) PutAll(entries ...Pair[K, V]) *Dict[K, V] {
	out := d.clone()
	for _, e := range entries {
		out.set(e.First, e.Second)
	}
	return out
}

// Delete returns a new Dict without the given keys.
func (d *Dict[K, V]) Delete(keys ...K) *Dict[K, V] {
	return d.Filter(func(k K, _ V) bool { return !lo.Contains(keys, k) })
}

// Reverse returns a new Dict with the iteration order reversed.
func (d *Dict[K, V]) Reverse() *Dict[K, V] {
	out := newDict[K, V](len(d.keys))
	for i := len(d.keys) - 1; i >= 0; i-- {
		k := d.keys[i]
		out.set(k, d.values[k])
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering & predicates
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns the entries for which fn returns true.
func (d *Dict[K, V]) Filter(fn func(K, V) bool) *Dict[K, V] {
	out := newDict[K, V](len(d.keys))
	for _, k := range d.keys {
		if v := d.values[k]; fn(k, v) {
			out.set(k, v)
		}
	}
	return out
}

// FilterNil returns the entries whose value is not nil.
func (d *Dict[K, V]) FilterNil() *Dict[K, V] {
	return d.Filter(func(_ K, v V) bool { return !isNil(v) })
}

// AnyMatch reports whether some entry satisfies fn.
func (d *Dict[K, V]) AnyMatch(fn func(K, V) bool) bool {
	_, ok := d.First(fn)
	return ok
}

// AllMatch reports whether every entry satisfies fn.
func (d *Dict[K, V]) AllMatch(fn func(K, V) bool) bool {
	return !d.AnyMatch(func(k K, v V) bool { return !fn(k, v) })
}

// NoneMatch reports whether no entry satisfies fn.
func (d *Dict[K, V]) NoneMatch(fn func(K, V) bool) bool { return !d.AnyMatch(fn) }

// First returns the first entry, optionally the first matching fns[0].
func (d *Dict[K, V]) First(fns ...func(K, V) bool) (Pair[K, V], bool) {
	for _, k := range d.keys {
		v := d.values[k]
		if len(fns) == 0 || fns[0](k, v) {
			return To(k, v), true
		}
	}
	return Pair[K, V]{}, false
}

// Last returns the last entry, optionally the last matching fns[0].
func (d *Dict[K, V]) Last(fns ...func(K, V) bool) (Pair[K, V], bool) {
	for i := len(d.keys) - 1; i >= 0; i-- {
		k := d.keys[i]
		v := d.values[k]
		if len(fns) == 0 || fns[0](k, v) {
			return To(k, v), true
		}
	}
	return Pair[K, V]{}, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Type-changing functions
// ─────────────────────────────────────────────────────────────────────────────

// MapKeys re-keys every entry. When two entries map to the same key the
// later one wins.
func MapKeys[K, K2 comparable, V any](d *Dict[K, V], fn func(K, V) K2) *Dict[K2, V] {
	return MapEntries(d, func(k K, v V) Pair[K2, V] { return To(fn(k, v), v) })
}

// MapValues transforms every value, keeping keys and order.
func MapValues[K comparable, V, V2 any](d *Dict[K, V], fn func(K, V) V2) *Dict[K, V2] {
	return MapEntries(d, func(k K, v V) Pair[K, V2] { return To(k, fn(k, v)) })
}

// MapValuesIndexed is [MapValues] with the entry's position passed first.
func MapValuesIndexed[K comparable, V, V2 any](d *Dict[K, V], fn func(int, K, V) V2) *Dict[K, V2] {
	out := newDict[K, V2](len(d.keys))
	for i, k := range d.keys {
		out.set(k, fn(i, k, d.values[k]))
	}
	return out
}

// MapValuesNotNil transforms the non-nil values and drops nil results.
func MapValuesNotNil[K comparable, V, V2 any](d *Dict[K, V], fn func(K, V) V2) *Dict[K, V2] {
	out := newDict[K, V2](len(d.keys))
	for _, k := range d.keys {
		v := d.values[k]
		if isNil(v) {
			continue
		}
		if v2 := fn(k, v); !isNil(v2) {
			out.set(k, v2)
		}
	}
	return out
}

// MapEntries transforms every entry into a new key/value pair.
func MapEntries[K, K2 comparable, V, V2 any](d *Dict[K, V], fn func(K, V) Pair[K2, V2]) *Dict[K2, V2] {
	out := newDict[K2, V2](len(d.keys))
	for _, k := range d.keys {
		e := fn(k, d.values[k])
		out.set(e.First, e.Second)
	}
	return out
}

// FoldDict reduces the entries in order, starting from initial.
func FoldDict[K comparable, V, A any](d *Dict[K, V], initial A, fn func(A, K, V) A) A {
	acc := initial
	for _, k := range d.keys {
		acc = fn(acc, k, d.values[k])
	}
	return acc
}

// SortedKeys returns the keys in ascending natural order.
func SortedKeys[K constraints.Ordered, V any](d *Dict[K, V]) []K {
	keys := slices.Clone(d.keys)
	slices.Sort(keys)
	return keys
}
