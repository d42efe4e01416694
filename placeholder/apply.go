package placeholder

import (
	"fmt"
	"reflect"
)

// Evaluator is implemented by anything that can be applied to a single
// value. [Expr] is the canonical implementation.
type Evaluator interface {
	Eval(v any) (any, error)
}

var _ Evaluator = Expr{}

// Apply invokes fn the way collection helpers do with caller-supplied
// transforms: an [Evaluator] (such as an [Expr]) is evaluated against its
// single argument; any other function is called with args.
//
//	placeholder.Apply(placeholder.It.Add(1), 41)           // 42, nil
//	placeholder.Apply(func(a, b int) int { return a*b }, 6, 7) // 42, nil
//
// A trailing error result of fn is returned as the error.
func Apply(fn any, args ...any) (any, error) {
	if ev, ok := fn.(Evaluator); ok {
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: expression takes 1 argument, got %d", ErrArity, len(args))
		}
		return ev.Eval(args[0])
	}
	switch f := fn.(type) {
	case func(any) any:
		if len(args) == 1 {
			return f(args[0]), nil
		}
	case func(any) (any, error):
		if len(args) == 1 {
			return f(args[0])
		}
	case Transform:
		if len(args) == 1 {
			return f(args[0])
		}
	}
	if fn == nil || reflect.TypeOf(fn).Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %T", ErrNotCallable, fn)
	}
	return call(fn, args)
}

// IsExpr reports whether fn is a deferred expression.
func IsExpr(fn any) bool {
	_, ok := fn.(Expr)
	return ok
}
