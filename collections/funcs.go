package collections

import (
	"slices"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// This file contains package-level generic functions for operations that
// transform a List[T] into something of another element type.
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations must be stand-alone functions. They compose with method
// chains:
//
//	labels := collections.Map(
//	    collections.ListOf(1, 2, 3, 4).Filter(func(n int) bool { return n%2 == 0 }),
//	    strconv.Itoa,
//	)
//
// Indexed variants receive the item's position first, Kotlin style. The
// NotNil variants skip nil items and drop nil results; the positions they
// pass are those of the source list.

// ─────────────────────────────────────────────────────────────────────────────
// Map
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to every item and returns a new List[U].
//
//	doubled := collections.Map(collections.ListOf(1, 2, 3),
//	    func(n int) string { return strconv.Itoa(n * 2) })
func Map[T, U any](l *List[T], fn func(T) U) *List[U] {
	return wrap(lo.Map(l.items, func(item T, _ int) U { return fn(item) }))
}

// MapIndexed is [Map] with the item's index passed first.
func MapIndexed[T, U any](l *List[T], fn func(int, T) U) *List[U] {
	return wrap(lo.Map(l.items, func(item T, i int) U { return fn(i, item) }))
}

// MapNotNil applies fn to every non-nil item and keeps the non-nil results.
//
//	names := collections.MapNotNil(users, func(u *User) *string { return u.Nickname })
func MapNotNil[T, U any](l *List[T], fn func(T) U) *List[U] {
	return MapNotNilIndexed(l, func(_ int, item T) U { return fn(item) })
}

// MapNotNilIndexed is [MapNotNil] with the item's index passed first.
func MapNotNilIndexed[T, U any](l *List[T], fn func(int, T) U) *List[U] {
	return wrap(lo.FilterMap(l.items, func(item T, i int) (U, bool) {
		if isNil(item) {
			var zero U
			return zero, false
		}
		out := fn(i, item)
		return out, !isNil(out)
	}))
}

// ─────────────────────────────────────────────────────────────────────────────
// FlatMap / Flatten / NestedMap
// ─────────────────────────────────────────────────────────────────────────────

// FlatMap applies fn to every item (producing a []U per item) and flattens
// the results into a single List[U].
//
//	words := collections.FlatMap(collections.ListOf("hello world", "foo bar"),
//	    strings.Fields)
//	// → ["hello", "world", "foo", "bar"]
func FlatMap[T, U any](l *List[T], fn func(T) []U) *List[U] {
	return wrap(lo.FlatMap(l.items, func(item T, _ int) []U { return fn(item) }))
}

// FlatMapIndexed is [FlatMap] with the item's index passed first.
func FlatMapIndexed[T, U any](l *List[T], fn func(int, T) []U) *List[U] {
	return wrap(lo.FlatMap(l.items, func(item T, i int) []U { return fn(i, item) }))
}

// FlatMapNotNil is [FlatMap] over the non-nil items, dropping nil elements
// from the produced slices.
func FlatMapNotNil[T, U any](l *List[T], fn func(T) []U) *List[U] {
	return FlatMap(l.FilterNil(), fn).FilterNil()
}

// Flatten flattens a List[[]T] into a List[T] (one level only).
//
//	flat := collections.Flatten(collections.ListOf([]int{1, 2}, []int{3, 4}))
//	// → [1, 2, 3, 4]
func Flatten[T any](l *List[[]T]) *List[T] {
	return wrap(lo.Flatten(l.items))
}

// FlattenLists flattens a list of lists into a single list.
func FlattenLists[T any](l *List[*List[T]]) *List[T] {
	return FlatMap(l, func(inner *List[T]) []T { return inner.items })
}

// NestedMap applies fn to every item of every inner list, keeping the
// nesting.
//
//	collections.NestedMap(collections.ListOf(collections.ListOf(1, 2), collections.ListOf(3)),
//	    func(n int) int { return n * 10 })
//	// → [[10, 20], [30]]
func NestedMap[T, U any](l *List[*List[T]], fn func(T) U) *List[*List[U]] {
	return Map(l, func(inner *List[T]) *List[U] { return Map(inner, fn) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Fold
// ─────────────────────────────────────────────────────────────────────────────

// Fold reduces the list to a single value of type A, starting from initial.
//
//	csv := collections.Fold(collections.ListOf(1, 2, 3), "",
//	    func(acc string, n int) string { return acc + strconv.Itoa(n) })
func Fold[T, A any](l *List[T], initial A, fn func(A, T) A) A {
	return lo.Reduce(l.items, func(acc A, item T, _ int) A { return fn(acc, item) }, initial)
}

// FoldIndexed is [Fold] with the item's index passed first.
func FoldIndexed[T, A any](l *List[T], initial A, fn func(int, A, T) A) A {
	return lo.Reduce(l.items, func(acc A, item T, i int) A { return fn(i, acc, item) }, initial)
}

// ─────────────────────────────────────────────────────────────────────────────
// Indexed search
// ─────────────────────────────────────────────────────────────────────────────

// FirstIndexed applies fn to the first item and its index.
// Returns the zero value and false for an empty list.
func FirstIndexed[T, U any](l *List[T], fn func(int, T) U) (U, bool) {
	if len(l.items) == 0 {
		var zero U
		return zero, false
	}
	return fn(0, l.items[0]), true
}

// LastIndexed applies fn to the last item and its index.
func LastIndexed[T, U any](l *List[T], fn func(int, T) U) (U, bool) {
	if len(l.items) == 0 {
		var zero U
		return zero, false
	}
	i := len(l.items) - 1
	return fn(i, l.items[i]), true
}

// ─────────────────────────────────────────────────────────────────────────────
// Conversions
// ─────────────────────────────────────────────────────────────────────────────

// MapToSet maps every item and collects the distinct results.
func MapToSet[T any, K comparable](l *List[T], fn func(T) K) *Set[K] {
	return SetFrom(lo.Map(l.items, func(item T, _ int) K { return fn(item) }))
}

// MapToDict maps every item to a key/value pair. Later pairs overwrite
// earlier ones with the same key.
func MapToDict[T any, K comparable, V any](l *List[T], fn func(T) Pair[K, V]) *Dict[K, V] {
	return Associate(l, fn)
}

// ToList copies any enumerable into a List.
func ToList[T any](e Enumerable[T]) *List[T] {
	return wrap(e.All())
}

// ToSet collects the distinct items of any enumerable.
func ToSet[T comparable](e Enumerable[T]) *Set[T] {
	return SetFrom(e.All())
}

// Zip combines two lists element-by-element into Pairs.
// Stops at the shorter of the two lists.
//
//	pairs := collections.Zip(
//	    collections.ListOf("a", "b", "c"),
//	    collections.ListOf(1, 2, 3),
//	) // → [(a,1), (b,2), (c,3)]
func Zip[A, B any](a *List[A], b *List[B]) *List[Pair[A, B]] {
	n := min(len(a.items), len(b.items))
	out := make([]Pair[A, B], n)
	for i := range n {
		out[i] = To(a.items[i], b.items[i])
	}
	return wrap(out)
}

// ─────────────────────────────────────────────────────────────────────────────
// Comparable / ordered helpers
// ─────────────────────────────────────────────────────────────────────────────

// Remove returns a new list without any occurrence of item.
func Remove[T comparable](l *List[T], item T) *List[T] {
	return RemoveAll(l, item)
}

// RemoveAll returns a new list without any occurrence of the given items.
func RemoveAll[T comparable](l *List[T], items ...T) *List[T] {
	return wrap(lo.Without(l.items, items...))
}

// Contains reports whether item is in the list.
func Contains[T comparable](l *List[T], item T) bool {
	return lo.Contains(l.items, item)
}

// Distinct returns the list without duplicates, keeping first occurrences.
func Distinct[T comparable](l *List[T]) *List[T] {
	return wrap(lo.Uniq(l.items))
}

// Sum adds up the items. It returns zero for an empty list.
func Sum[T constraints.Integer | constraints.Float](l *List[T]) T {
	var total T
	for _, item := range l.items {
		total += item
	}
	return total
}

// Sorted returns a new list in ascending natural order.
func Sorted[T constraints.Ordered](l *List[T]) *List[T] {
	out := slices.Clone(l.items)
	slices.Sort(out)
	return wrap(out)
}
