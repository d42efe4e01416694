package collections

import "errors"

// Sentinel errors returned by List, Set and Dict operations.
var (
	// ErrEmptyCollection is returned when an operation requires at least one
	// element but the collection is empty.
	ErrEmptyCollection = errors.New("collections: operation on empty collection")

	// ErrNoMatchingItems is returned by FirstOrFail / LastOrFail when no
	// item satisfies the predicate.
	ErrNoMatchingItems = errors.New("collections: no items match the given condition")

	// ErrNotCallable is raised by [Func] and [Pred] when the supplied
	// transform is neither a function of the expected type nor a
	// placeholder expression.
	ErrNotCallable = errors.New("collections: transform is not callable")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("collections: macro not found")
)
