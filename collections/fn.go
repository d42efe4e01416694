package collections

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/rxonhe/go-tython/placeholder"
)

// Func normalises a caller-supplied transform into a func(T) U.
//
// fn may be a func(T) U, which is returned as is, or a
// [placeholder.Evaluator] such as a [placeholder.Expr], which is evaluated
// against each item. The expression's result is converted to U; a failing
// evaluation panics with the [*placeholder.EvalError]. Wrap the pipeline in
// [Try] to get it back as an error:
//
//	err := collections.Try(func() {
//	    out = collections.Map(list, collections.Func[int, int](placeholder.It.Mul(2)))
//	})
//
// Anything else panics with [ErrNotCallable].
func Func[T, U any](fn any) func(T) U {
	switch f := fn.(type) {
	case func(T) U:
		return f
	case placeholder.Evaluator:
		return func(item T) U {
			out, err := f.Eval(item)
			if err != nil {
				panic(err)
			}
			u, err := placeholder.Convert[U](out)
			if err != nil {
				panic(err)
			}
			return u
		}
	}
	panic(fmt.Errorf("%w: %T is not a func(%T) %T", ErrNotCallable, fn, *new(T), *new(U)))
}

// Pred normalises a predicate. Expressions are evaluated and their result
// judged with [placeholder.Truthy], so a chain ending in a comparison and
// one ending in, say, a length both work.
func Pred[T any](fn any) func(T) bool {
	switch f := fn.(type) {
	case func(T) bool:
		return f
	case placeholder.Evaluator:
		return func(item T) bool {
			out, err := f.Eval(item)
			if err != nil {
				panic(err)
			}
			return placeholder.Truthy(out)
		}
	}
	panic(fmt.Errorf("%w: %T is not a func(%T) bool", ErrNotCallable, fn, *new(T)))
}

// Try runs fn and returns the evaluation failure or [ErrNotCallable] that
// [Func] or [Pred] panicked with. Other panics propagate.
func Try(fn func()) error {
	recovered, ok := lo.TryWithErrorValue(func() error {
		fn()
		return nil
	})
	if ok {
		return nil
	}
	if err, isErr := recovered.(error); isErr {
		var evalErr *placeholder.EvalError
		if errors.As(err, &evalErr) || errors.Is(err, ErrNotCallable) || errors.Is(err, placeholder.ErrTypeMismatch) {
			return err
		}
	}
	panic(recovered)
}
