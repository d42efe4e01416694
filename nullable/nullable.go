// Package nullable provides Nullable[T], an optional value that remembers
// how to build a default for itself.
//
// A Nullable is either present (holding a T) or absent. Reading an absent
// Nullable through [Nullable.Value] yields its default: the result of the
// [WithDefault] constructor when one was given, the zero T otherwise.
//
//	name := nullable.Empty[string](nullable.WithDefault(func() string { return "anonymous" }))
//	name.Value()                       // "anonymous"
//	name.IsPresent()                   // false
//
// Transformations keep absence: mapping or evaluating an expression against
// an absent value produces another absent value and no error.
//
//	n := nullable.Of("test")
//	size, _ := nullable.Eval(n, placeholder.It.Size())        // present, 4
//	none, _ := nullable.Eval(nullable.Empty[string](), placeholder.It.Size()) // absent
package nullable

import (
	"fmt"

	"github.com/samber/mo"

	"github.com/rxonhe/go-tython/placeholder"
)

// Nullable is an optional T with a default-construction strategy. The zero
// value is absent with the zero T as default.
type Nullable[T any] struct {
	opt mo.Option[T]
	def func() T
}

// Option configures a Nullable at construction.
type Option[T any] func(*Nullable[T])

// WithDefault sets the constructor used by [Nullable.Value] when the value
// is absent.
func WithDefault[T any](fn func() T) Option[T] {
	return func(n *Nullable[T]) { n.def = fn }
}

func build[T any](opt mo.Option[T], opts []Option[T]) Nullable[T] {
	n := Nullable[T]{opt: opt}
	for _, o := range opts {
		o(&n)
	}
	return n
}

// Of returns a present Nullable holding v.
func Of[T any](v T, opts ...Option[T]) Nullable[T] {
	return build(mo.Some(v), opts)
}

// Empty returns an absent Nullable.
func Empty[T any](opts ...Option[T]) Nullable[T] {
	return build(mo.None[T](), opts)
}

// FromPtr returns a Nullable holding *p, or an absent one when p is nil.
func FromPtr[T any](p *T, opts ...Option[T]) Nullable[T] {
	if p == nil {
		return Empty(opts...)
	}
	return Of(*p, opts...)
}

// Get returns the held value and whether it is present.
func (n Nullable[T]) Get() (T, bool) { return n.opt.Get() }

// IsPresent reports whether a value is held.
func (n Nullable[T]) IsPresent() bool { return n.opt.IsPresent() }

// IsAbsent reports whether no value is held.
func (n Nullable[T]) IsAbsent() bool { return n.opt.IsAbsent() }

// Value returns the held value, or the default when absent.
func (n Nullable[T]) Value() T {
	if v, ok := n.opt.Get(); ok {
		return v
	}
	if n.def != nil {
		return n.def()
	}
	return n.opt.OrEmpty()
}

// OrElse returns the held value, or fallback when absent.
func (n Nullable[T]) OrElse(fallback T) T { return n.opt.OrElse(fallback) }

// Ptr returns a pointer to a copy of the held value, or nil when absent.
func (n Nullable[T]) Ptr() *T {
	v, ok := n.opt.Get()
	if !ok {
		return nil
	}
	return &v
}

// Filter returns n when it is present and satisfies fn, absent otherwise.
func (n Nullable[T]) Filter(fn func(T) bool) Nullable[T] {
	if v, ok := n.opt.Get(); ok && fn(v) {
		return n
	}
	return Nullable[T]{def: n.def}
}

// String renders the held value, or "<absent>".
func (n Nullable[T]) String() string {
	if v, ok := n.opt.Get(); ok {
		return fmt.Sprint(v)
	}
	return "<absent>"
}

// MarshalJSON encodes the held value, or null when absent.
func (n Nullable[T]) MarshalJSON() ([]byte, error) { return n.opt.MarshalJSON() }

// UnmarshalJSON decodes null as absent and anything else as present.
func (n *Nullable[T]) UnmarshalJSON(b []byte) error { return n.opt.UnmarshalJSON(b) }

// ─────────────────────────────────────────────────────────────────────────────
// Transformations
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to the held value. An absent n maps to an absent result.
func Map[T, U any](n Nullable[T], fn func(T) U) Nullable[U] {
	if v, ok := n.opt.Get(); ok {
		return Of(fn(v))
	}
	return Empty[U]()
}

// FlatMap applies fn, which may itself produce an absent value.
func FlatMap[T, U any](n Nullable[T], fn func(T) Nullable[U]) Nullable[U] {
	if v, ok := n.opt.Get(); ok {
		return fn(v)
	}
	return Empty[U]()
}

// Eval evaluates e against the held value. An absent n, or a nil result,
// yields an absent Nullable without error; a failing evaluation returns
// the [*placeholder.EvalError].
func Eval[T any](n Nullable[T], e placeholder.Evaluator) (Nullable[any], error) {
	return EvalAs[T, any](n, e)
}

// EvalAs is [Eval] with the result converted to U.
func EvalAs[T, U any](n Nullable[T], e placeholder.Evaluator) (Nullable[U], error) {
	v, ok := n.opt.Get()
	if !ok {
		return Empty[U](), nil
	}
	out, err := e.Eval(v)
	if err != nil {
		return Empty[U](), err
	}
	if out == nil {
		return Empty[U](), nil
	}
	u, err := placeholder.Convert[U](out)
	if err != nil {
		return Empty[U](), err
	}
	return Of(u), nil
}
