package collections

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Set is an immutable, insertion-ordered set of comparable items.
//
//	s := collections.SetOf(3, 1, 3, 2) // {3, 1, 2}
//	s.Contains(1)                      // true
type Set[T comparable] struct {
	items []T
	index map[T]struct{}
}

// SetOf creates a Set from the given items, dropping duplicates.
func SetOf[T comparable](items ...T) *Set[T] {
	return SetFrom(items)
}

// SetFrom creates a Set from a slice, dropping duplicates.
func SetFrom[T comparable](items []T) *Set[T] {
	s := &Set[T]{items: make([]T, 0, len(items)), index: make(map[T]struct{}, len(items))}
	for _, item := range items {
		s.insert(item)
	}
	return s
}

func (s *Set[T]) insert(item T) {
	if _, ok := s.index[item]; ok {
		return
	}
	s.index[item] = struct{}{}
	s.items = append(s.items, item)
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns the items in insertion order.
func (s *Set[T]) All() []T { return append([]T{}, s.items...) }

// Len returns the number of items.
func (s *Set[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the set has no items.
func (s *Set[T]) IsEmpty() bool { return len(s.items) == 0 }

// Contains reports whether item is in the set.
func (s *Set[T]) Contains(item T) bool {
	_, ok := s.index[item]
	return ok
}

// ContainsAll reports whether every item is in the set.
func (s *Set[T]) ContainsAll(items ...T) bool {
	return lo.EveryBy(items, s.Contains)
}

// Equal reports whether s and other hold the same items, in any order.
func (s *Set[T]) Equal(other *Set[T]) bool {
	return s.Len() == other.Len() && other.ContainsAll(s.items...)
}

// ToList returns the items as a List in insertion order.
func (s *Set[T]) ToList() *List[T] { return ListFrom(s.items) }

// String renders the items in order, e.g. {1, 2, 3}.
func (s *Set[T]) String() string {
	parts := lo.Map(s.items, func(item T, _ int) string { return fmt.Sprint(item) })
	return "{" + strings.Join(parts, ", ") + "}"
}

// ─────────────────────────────────────────────────────────────────────────────
// Modification (copy on write)
// ─────────────────────────────────────────────────────────────────────────────

// Add returns a new Set including item.
func (s *Set[T]) Add(item T) *Set[T] { return s.AddAll(item) }

// AddAll returns a new Set including items.
func (s *Set[T]) AddAll(items ...T) *Set[T] {
	out := SetFrom(s.items)
	for _, item := range items {
		out.insert(item)
	}
	return out
}

// Remove returns a new Set without item.
func (s *Set[T]) Remove(item T) *Set[T] { return s.RemoveAll(item) }

// RemoveAll returns a new Set without any of items.
func (s *Set[T]) RemoveAll(items ...T) *Set[T] {
	return SetFrom(lo.Without(s.items, items...))
}

// Union returns the items in s followed by the new items of other.
func (s *Set[T]) Union(other *Set[T]) *Set[T] { return s.AddAll(other.items...) }

// Difference returns the items of s that are not in other.
func (s *Set[T]) Difference(other *Set[T]) *Set[T] {
	return s.Filter(func(item T) bool { return !other.Contains(item) })
}

// Intersect returns the items of s that are also in other.
func (s *Set[T]) Intersect(other *Set[T]) *Set[T] {
	return s.Filter(other.Contains)
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering & search
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns the items for which fn returns true.
func (s *Set[T]) Filter(fn func(T) bool) *Set[T] {
	return SetFrom(lo.Filter(s.items, func(item T, _ int) bool { return fn(item) }))
}

// AnyMatch reports whether some item satisfies fn.
func (s *Set[T]) AnyMatch(fn func(T) bool) bool { return lo.SomeBy(s.items, fn) }

// AllMatch reports whether every item satisfies fn.
func (s *Set[T]) AllMatch(fn func(T) bool) bool { return lo.EveryBy(s.items, fn) }

// NoneMatch reports whether no item satisfies fn.
func (s *Set[T]) NoneMatch(fn func(T) bool) bool { return lo.NoneBy(s.items, fn) }

// First returns the first item in insertion order, optionally the first
// matching fns[0].
func (s *Set[T]) First(fns ...func(T) bool) (T, bool) { return s.ToList().First(fns...) }

// Last returns the last item in insertion order, optionally the last
// matching fns[0].
func (s *Set[T]) Last(fns ...func(T) bool) (T, bool) { return s.ToList().Last(fns...) }

// ─────────────────────────────────────────────────────────────────────────────
// Type-changing functions
// ─────────────────────────────────────────────────────────────────────────────

// MapSet maps every item, collapsing results that become equal.
func MapSet[T, U comparable](s *Set[T], fn func(T) U) *Set[U] {
	return SetFrom(lo.Map(s.items, func(item T, _ int) U { return fn(item) }))
}

// FlatMapSet maps every item to a slice and collects the distinct results.
func FlatMapSet[T, U comparable](s *Set[T], fn func(T) []U) *Set[U] {
	return SetFrom(lo.FlatMap(s.items, func(item T, _ int) []U { return fn(item) }))
}

// FoldSet reduces the items in insertion order, starting from initial.
func FoldSet[T comparable, A any](s *Set[T], initial A, fn func(A, T) A) A {
	return Fold(s.ToList(), initial, fn)
}

// ZipSet pairs up the items of a and b in insertion order, stopping at the
// shorter set.
func ZipSet[A, B comparable](a *Set[A], b *Set[B]) *Set[Pair[A, B]] {
	return SetFrom(Zip(a.ToList(), b.ToList()).items)
}
