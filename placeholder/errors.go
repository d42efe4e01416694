package placeholder

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors wrapped by [EvalError].
//
// Use [errors.Is] for comparisons:
//
//	_, err := placeholder.It.RDiv(10).Eval(0)
//	if errors.Is(err, placeholder.ErrDivisionByZero) {
//	    // ...
//	}
var (
	// ErrUnsupportedOperand is returned when an operator is applied to a
	// runtime value (or operand) whose type does not support it.
	ErrUnsupportedOperand = errors.New("placeholder: unsupported operand type")

	// ErrDivisionByZero is returned by divide, floor-divide and modulo when
	// the divisor is zero.
	ErrDivisionByZero = errors.New("placeholder: division by zero")

	// ErrNegativeShift is returned when a shift count is negative.
	ErrNegativeShift = errors.New("placeholder: negative shift count")

	// ErrIndexOutOfRange is returned when indexing past either end of a
	// slice, array or string.
	ErrIndexOutOfRange = errors.New("placeholder: index out of range")

	// ErrKeyNotFound is returned when indexing a map with a missing key.
	ErrKeyNotFound = errors.New("placeholder: key not found")

	// ErrNoAttribute is returned when a value has no field, method or map
	// entry with the requested name.
	ErrNoAttribute = errors.New("placeholder: no such attribute")

	// ErrNotCallable is returned when a call step is applied to a value that
	// is not a function, or when [Apply] is given something it cannot invoke.
	ErrNotCallable = errors.New("placeholder: value is not callable")

	// ErrArity is returned when a function is called with the wrong number
	// of arguments.
	ErrArity = errors.New("placeholder: wrong number of arguments")

	// ErrStopIteration is returned by a next step on an exhausted iterator.
	ErrStopIteration = errors.New("placeholder: iterator exhausted")

	// ErrTypeMismatch is returned by [EvalAs] when the result does not have
	// the requested type.
	ErrTypeMismatch = errors.New("placeholder: result type mismatch")
)

// EvalError reports which step of an expression failed and against which
// intermediate value.
type EvalError struct {
	// Op is the rendered operation, e.g. "divide(0)".
	Op string
	// Step is the zero-based position of the failing record.
	Step int
	// Value is the running value the step was applied to.
	Value any
	// Err is the underlying failure.
	Err error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("placeholder: error evaluating %s on %#v (step %d): %v", e.Op, e.Value, e.Step, e.Err)
}

func (e *EvalError) Unwrap() error { return e.Err }

func unsupported(op Op, operands ...any) error {
	switch len(operands) {
	case 1:
		return fmt.Errorf("%w for %s: %s", ErrUnsupportedOperand, op, typeName(operands[0]))
	case 2:
		return fmt.Errorf("%w for %s: %s and %s", ErrUnsupportedOperand, op, typeName(operands[0]), typeName(operands[1]))
	}
	return fmt.Errorf("%w for %s", ErrUnsupportedOperand, op)
}

func typeName(x any) string {
	if t, ok := x.(reflect.Type); ok {
		return t.String()
	}
	return fmt.Sprintf("%T", x)
}
