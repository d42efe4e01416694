package placeholder

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"go.uber.org/zap"
)

// Transform is the function applied by a custom record. It receives the
// running value and returns the next one.
type Transform func(any) (any, error)

// Record is one step of an [Expr]: an operation plus its captured operand.
// Records are immutable once created.
type Record struct {
	Op Op
	// Operand is the captured right-hand side (left-hand side when
	// Reversed). It is meaningful only when HasOperand is true.
	Operand    any
	HasOperand bool
	// Reversed marks the swapped form: operand op value.
	Reversed bool

	name string
	fn   Transform
	args []any
}

// Name returns the operation name used in renderings, e.g. "subtract" or
// "rsubtract" for the reversed form.
func (r Record) Name() string {
	switch {
	case r.Op == OpCustom && r.name != "":
		return r.name
	case r.Reversed:
		return "r" + r.Op.String()
	}
	return r.Op.String()
}

// String renders the record as name(operand), e.g. "add(5)" or "negate()".
func (r Record) String() string {
	var sb strings.Builder
	sb.WriteString(r.Name())
	sb.WriteByte('(')
	switch {
	case r.Op == OpCall:
		for i, a := range r.args {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", a)
		}
	case r.HasOperand:
		fmt.Fprintf(&sb, "%v", r.Operand)
	}
	sb.WriteByte(')')
	return sb.String()
}

// apply runs the record against v.
func (r Record) apply(v any) (any, error) {
	switch r.Op {
	case OpCustom:
		if r.fn == nil {
			return nil, fmt.Errorf("placeholder: operation %q has no transform", r.Name())
		}
		return r.fn(v)
	case OpAdd, OpSub, OpMul, OpDiv, OpFloorDiv, OpMod, OpPow,
		OpShl, OpShr, OpAnd, OpOr, OpXor:
		if r.Reversed {
			return binary(r.Op, r.Operand, v)
		}
		return binary(r.Op, v, r.Operand)
	case OpNeg, OpPos, OpAbs, OpInvert:
		return unary(r.Op, v)
	case OpLt, OpLe, OpEq, OpNe, OpGt, OpGe:
		return compare(r.Op, v, r.Operand)
	case OpContains:
		return contains(v, r.Operand)
	case OpIndex:
		return index(v, r.Operand)
	case OpAttr:
		return attr(v, r.Operand.(string))
	case OpCall:
		return call(v, r.args)
	case OpIter:
		return newIterator(v, false)
	case OpNext:
		return next(v)
	case OpLen:
		return length(v)
	case OpReversed:
		return newIterator(v, true)
	case OpBool:
		return Truthy(v), nil
	}
	return nil, fmt.Errorf("placeholder: unknown operation %s", r.Op)
}

// node is a cell of the persistent record list. Extending an expression
// allocates one node pointing at the previous tail, so every expression
// shares its prefix with the expression it was derived from.
type node struct {
	prev *node
	rec  Record
	n    int
}

// Expr is a deferred expression: an immutable, append-only chain of
// [Record]s evaluated later against a seed value.
//
// The zero value is the identity expression. Every builder method returns a
// new Expr and leaves the receiver untouched, so an Expr may be shared and
// evaluated from many goroutines without locking.
type Expr struct {
	tail *node
	typ  reflect.Type
}

// It is the identity expression, the usual starting point:
//
//	double := placeholder.It.Mul(2)
var It = Identity()

// Identity returns an expression with no records. Evaluating it returns the
// seed unchanged.
func Identity() Expr { return Expr{} }

// Typed returns an identity expression tagged with T. The tag is carried
// along the chain for callers that want to validate results; it does not
// constrain evaluation.
func Typed[T any]() Expr {
	return Expr{typ: reflect.TypeFor[T]()}
}

// As returns a copy of e tagged with t.
func (e Expr) As(t reflect.Type) Expr {
	return Expr{tail: e.tail, typ: t}
}

// Type returns the declared result type tag, or nil.
func (e Expr) Type() reflect.Type { return e.typ }

// Len returns the number of records in e.
func (e Expr) Len() int {
	if e.tail == nil {
		return 0
	}
	return e.tail.n
}

// IsIdentity reports whether e has no records.
func (e Expr) IsIdentity() bool { return e.tail == nil }

// Records returns the records of e in evaluation order.
func (e Expr) Records() []Record {
	out := make([]Record, e.Len())
	for n := e.tail; n != nil; n = n.prev {
		out[n.n-1] = n.rec
	}
	return out
}

func (e Expr) with(r Record) Expr {
	n := &node{prev: e.tail, rec: r, n: e.Len() + 1}
	return Expr{tail: n, typ: e.typ}
}

// WithOperation returns a new expression equal to e with one custom record
// appended. operand is kept for rendering only; fn is what runs at
// evaluation time and usually closes over operand.
func (e Expr) WithOperation(name string, fn Transform, operand ...any) Expr {
	r := Record{Op: OpCustom, name: name, fn: fn}
	if len(operand) > 0 {
		r.Operand, r.HasOperand = operand[0], true
	}
	return e.with(r)
}

func (e Expr) op(o Op, operand any) Expr {
	return e.with(Record{Op: o, Operand: operand, HasOperand: true})
}

func (e Expr) rop(o Op, operand any) Expr {
	return e.with(Record{Op: o, Operand: operand, HasOperand: true, Reversed: true})
}

func (e Expr) unaryOp(o Op) Expr {
	return e.with(Record{Op: o})
}

// Eval folds the records of e over seed, left to right, and returns the
// final value. An empty expression returns seed.
//
// The first failing step stops evaluation and is reported as an
// [*EvalError] naming the step and the value it was applied to.
func (e Expr) Eval(seed any) (any, error) {
	if e.tail == nil {
		return seed, nil
	}
	log := logger()
	acc := seed
	for i, r := range e.Records() {
		out, err := r.apply(acc)
		if err != nil {
			evalErr := &EvalError{Op: r.String(), Step: i, Value: acc, Err: err}
			log.Debug("placeholder step failed",
				zap.Int("step", i),
				zap.Stringer("op", r),
				zap.Any("value", acc),
				zap.Error(err))
			return nil, evalErr
		}
		if ce := log.Check(zap.DebugLevel, "placeholder step"); ce != nil {
			ce.Write(zap.Int("step", i), zap.Stringer("op", r), zap.Any("in", acc), zap.Any("out", out))
		}
		acc = out
	}
	return acc, nil
}

// MustEval is like [Expr.Eval] but panics with the [*EvalError] on failure.
func (e Expr) MustEval(seed any) any {
	v, err := e.Eval(seed)
	if err != nil {
		panic(err)
	}
	return v
}

// EvalAs evaluates e against seed and asserts the result to T.
// A nil result yields the zero T. A result of another type that converts to
// T (e.g. int64 to int) is converted; anything else is [ErrTypeMismatch].
func EvalAs[T any](e Expr, seed any) (T, error) {
	var zero T
	v, err := e.Eval(seed)
	if err != nil {
		return zero, err
	}
	return Convert[T](v)
}

// Convert asserts v to T, converting between numeric types when the
// value survives the conversion unchanged. A conversion that would
// truncate, wrap or flip the sign is [ErrTypeMismatch]. nil becomes the
// zero T.
func Convert[T any](v any) (T, error) {
	var zero T
	if v == nil {
		return zero, nil
	}
	if t, ok := v.(T); ok {
		return t, nil
	}
	want := reflect.TypeFor[T]()
	rv := reflect.ValueOf(v)
	if isNumberKind(rv.Kind()) && isNumberKind(want.Kind()) {
		out := rv.Convert(want)
		if !lossless(rv, out) {
			return zero, fmt.Errorf("%w: %v (%T) does not fit %s", ErrTypeMismatch, v, v, want)
		}
		return out.Interface().(T), nil
	}
	return zero, fmt.Errorf("%w: got %T, want %s", ErrTypeMismatch, v, want)
}

// String renders e as a dotted chain of its records, e.g.
// "self.add(5).multiply(2)". The identity expression renders as "self".
func (e Expr) String() string {
	if e.tail == nil {
		return "self"
	}
	recs := e.Records()
	parts := make([]string, 0, len(recs)+1)
	parts = append(parts, "self")
	for _, r := range recs {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, ".")
}

// lossless reports whether out holds the same number as in and converts
// back to it exactly.
func lossless(in, out reflect.Value) bool {
	if kindClass(in.Kind()) == floatNum && kindClass(out.Kind()) == floatNum {
		f := in.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return true
		}
	}
	if !Equal(in.Interface(), out.Interface()) {
		return false
	}
	return out.Convert(in.Type()).Interface() == in.Interface()
}
