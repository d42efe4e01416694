package collections

// Enumerable is the read-only surface shared by [List] and [Set].
//
// Accept Enumerable in your own functions so callers can pass either
// container; [ToList] and [ToSet] convert between them.
type Enumerable[T any] interface {
	// All returns a copy of every item as a plain Go slice.
	All() []T

	// Len returns the number of items.
	Len() int

	// IsEmpty reports whether there are no items.
	IsEmpty() bool

	// First returns the first item, optionally matching fns[0].
	First(fns ...func(T) bool) (T, bool)

	// Last returns the last item, optionally matching fns[0].
	Last(fns ...func(T) bool) (T, bool)

	AnyMatch(fn func(T) bool) bool
	AllMatch(fn func(T) bool) bool
	NoneMatch(fn func(T) bool) bool
}

var (
	_ Enumerable[int] = (*List[int])(nil)
	_ Enumerable[int] = (*Set[int])(nil)
)

// Count returns how many items of e satisfy fn.
func Count[T any](e Enumerable[T], fn func(T) bool) int {
	n := 0
	for _, item := range e.All() {
		if fn(item) {
			n++
		}
	}
	return n
}
