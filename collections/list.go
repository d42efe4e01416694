package collections

import (
	"fmt"
	"slices"

	"github.com/go-json-experiment/json"
	"github.com/samber/lo"
)

// List is a generic, immutable wrapper around a slice of T with a
// Kotlin-style functional API.
//
// Every method that transforms the list returns a *new* List, leaving the
// original unchanged, so a List may be read from many goroutines without
// locking.
//
// # Creating a list
//
//	l := collections.ListOf(1, 2, 3, 4, 5)
//	l := collections.ListFrom([]string{"a", "b", "c"})
//	l := collections.EmptyList[int]()
//
// # Method chaining
//
//	evens := collections.ListOf(1, 2, 3, 4, 5, 6).
//	    Filter(func(n int) bool { return n%2 == 0 }).
//	    Reverse()
//
// # Type-transforming operations
//
// Go methods cannot introduce type parameters, so operations that change
// the element type (Map, GroupBy, Associate, …) are package-level
// functions:
//
//	labels := collections.Map(l, strconv.Itoa)
type List[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// ListOf creates a List from a variadic list of items (copied).
func ListOf[T any](items ...T) *List[T] {
	return &List[T]{items: slices.Clone(items)}
}

// ListFrom creates a List from a slice (the slice is copied).
func ListFrom[T any](items []T) *List[T] {
	return ListOf(items...)
}

// EmptyList creates an empty List of type T.
func EmptyList[T any]() *List[T] {
	return &List[T]{items: []T{}}
}

func wrap[T any](items []T) *List[T] {
	if items == nil {
		items = []T{}
	}
	return &List[T]{items: items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (l *List[T]) All() []T { return slices.Clone(l.items) }

// Len returns the number of items.
func (l *List[T]) Len() int { return len(l.items) }

// IsEmpty reports whether the list contains no items.
func (l *List[T]) IsEmpty() bool { return len(l.items) == 0 }

// IsNotEmpty reports whether the list has at least one item.
func (l *List[T]) IsNotEmpty() bool { return len(l.items) > 0 }

// Get returns the item at index together with a presence flag.
// Negative indexes count from the end.
func (l *List[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 {
		index += len(l.items)
	}
	if index < 0 || index >= len(l.items) {
		return zero, false
	}
	return l.items[index], true
}

// ToJSON serialises the items to a JSON array.
func (l *List[T]) ToJSON() ([]byte, error) {
	return json.Marshal(l.items, json.DefaultOptionsV2())
}

// MarshalJSON implements the json.Marshaler interface.
func (l *List[T]) MarshalJSON() ([]byte, error) { return l.ToJSON() }

// String returns a JSON representation of the list, falling back to %v
// when the items cannot be encoded.
func (l *List[T]) String() string {
	b, err := l.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", l.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(index, item) for every item.
func (l *List[T]) Each(fn func(int, T)) {
	for i, item := range l.items {
		fn(i, item)
	}
}

// Tap calls fn(l) for side-effects and returns l for further chaining.
func (l *List[T]) Tap(fn func(*List[T])) *List[T] {
	fn(l)
	return l
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new list with only the items for which fn returns true.
func (l *List[T]) Filter(fn func(T) bool) *List[T] {
	return wrap(lo.Filter(l.items, func(item T, _ int) bool { return fn(item) }))
}

// FilterIndexed is [List.Filter] with the item's index passed first.
func (l *List[T]) FilterIndexed(fn func(int, T) bool) *List[T] {
	return wrap(lo.Filter(l.items, func(item T, i int) bool { return fn(i, item) }))
}

// Reject returns a new list without the items for which fn returns true.
func (l *List[T]) Reject(fn func(T) bool) *List[T] {
	return l.Filter(func(item T) bool { return !fn(item) })
}

// FilterNil returns a new list without nil items (nil pointers, interfaces,
// maps, slices, funcs and channels). Lists of value types are returned
// unchanged.
func (l *List[T]) FilterNil() *List[T] {
	return l.Reject(isNil[T])
}

func isNil[T any](item T) bool { return lo.IsNil(item) }

// ─────────────────────────────────────────────────────────────────────────────
// Predicates
// ─────────────────────────────────────────────────────────────────────────────

// AnyMatch reports whether at least one item satisfies fn.
func (l *List[T]) AnyMatch(fn func(T) bool) bool { return lo.SomeBy(l.items, fn) }

// AllMatch reports whether every item satisfies fn. It is true for an empty
// list.
func (l *List[T]) AllMatch(fn func(T) bool) bool { return lo.EveryBy(l.items, fn) }

// NoneMatch reports whether no item satisfies fn.
func (l *List[T]) NoneMatch(fn func(T) bool) bool { return lo.NoneBy(l.items, fn) }

// ─────────────────────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first item, optionally the first matching fns[0].
// Returns the zero value and false when the list is empty or nothing
// matches.
func (l *List[T]) First(fns ...func(T) bool) (T, bool) {
	if len(fns) > 0 {
		return lo.Find(l.items, fns[0])
	}
	return l.Get(0)
}

// Last returns the last item, optionally the last matching fns[0].
func (l *List[T]) Last(fns ...func(T) bool) (T, bool) {
	if len(fns) > 0 {
		item, _, ok := lo.FindLastIndexOf(l.items, fns[0])
		return item, ok
	}
	return l.Get(-1)
}

// FirstOrFail returns the first item matching fn, or [ErrNoMatchingItems].
func (l *List[T]) FirstOrFail(fn func(T) bool) (T, error) {
	item, ok := l.First(fn)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// LastOrFail returns the last item matching fn, or [ErrNoMatchingItems].
func (l *List[T]) LastOrFail(fn func(T) bool) (T, error) {
	item, ok := l.Last(fn)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// FirstNotNil is [List.First] over the non-nil items.
func (l *List[T]) FirstNotNil(fns ...func(T) bool) (T, bool) {
	return l.FilterNil().First(fns...)
}

// LastNotNil is [List.Last] over the non-nil items.
func (l *List[T]) LastNotNil(fns ...func(T) bool) (T, bool) {
	return l.FilterNil().Last(fns...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Reduction
// ─────────────────────────────────────────────────────────────────────────────

// Reduce folds the items from the left using the first item as the initial
// accumulator. It returns [ErrEmptyCollection] for an empty list.
//
// To fold into another type or from an explicit initial value use the
// package-level [Fold].
func (l *List[T]) Reduce(fn func(acc, item T) T) (T, error) {
	if len(l.items) == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	return lo.Reduce(l.items[1:], func(acc T, item T, _ int) T { return fn(acc, item) }, l.items[0]), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Add / Remove / Reorder
// ─────────────────────────────────────────────────────────────────────────────

// Add returns a new list with item appended.
func (l *List[T]) Add(item T) *List[T] { return l.AddAll(item) }

// AddAll returns a new list with items appended.
func (l *List[T]) AddAll(items ...T) *List[T] {
	out := make([]T, 0, len(l.items)+len(items))
	out = append(out, l.items...)
	return wrap(append(out, items...))
}

// Concat returns a new list with all items from other appended.
func (l *List[T]) Concat(other *List[T]) *List[T] { return l.AddAll(other.items...) }

// Reverse returns a new list with the items in reverse order.
func (l *List[T]) Reverse() *List[T] {
	out := slices.Clone(l.items)
	slices.Reverse(out)
	return wrap(out)
}

// Sort returns a new list sorted by cmp (negative when a < b). The sort is
// stable.
func (l *List[T]) Sort(cmp func(a, b T) int) *List[T] {
	out := slices.Clone(l.items)
	slices.SortStableFunc(out, cmp)
	return wrap(out)
}

// Take returns at most n items from the start.
func (l *List[T]) Take(n int) *List[T] {
	n = min(max(n, 0), len(l.items))
	return ListFrom(l.items[:n])
}

// Drop returns the list without its first n items.
func (l *List[T]) Drop(n int) *List[T] {
	n = min(max(n, 0), len(l.items))
	return ListFrom(l.items[n:])
}

// Chunk splits the list into consecutive lists of size items. The last
// chunk may be shorter. Returns nil when size <= 0.
func (l *List[T]) Chunk(size int) []*List[T] {
	if size <= 0 {
		return nil
	}
	return lo.Map(lo.Chunk(l.items, size), func(c []T, _ int) *List[T] { return wrap(c) })
}
