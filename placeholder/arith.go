package placeholder

import (
	"cmp"
	"math"
	"reflect"
	"strings"
)

type numClass uint8

const (
	notNumber numClass = iota
	signedInt
	unsignedInt
	floatNum
)

var (
	int64Type   = reflect.TypeFor[int64]()
	uint64Type  = reflect.TypeFor[uint64]()
	float64Type = reflect.TypeFor[float64]()
)

func kindClass(k reflect.Kind) numClass {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signedInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return unsignedInt
	case reflect.Float32, reflect.Float64:
		return floatNum
	}
	return notNumber
}

func isNumberKind(k reflect.Kind) bool { return kindClass(k) != notNumber }

// number is a decoded numeric operand together with its original type.
type number struct {
	class numClass
	i     int64
	u     uint64
	f     float64
	typ   reflect.Type
}

func toNumber(x any) (number, bool) {
	if x == nil {
		return number{}, false
	}
	rv := reflect.ValueOf(x)
	n := number{class: kindClass(rv.Kind()), typ: rv.Type()}
	switch n.class {
	case signedInt:
		n.i = rv.Int()
	case unsignedInt:
		n.u = rv.Uint()
	case floatNum:
		n.f = rv.Float()
	default:
		return n, false
	}
	return n, true
}

func (n number) float() float64 {
	switch n.class {
	case signedInt:
		return float64(n.i)
	case unsignedInt:
		return float64(n.u)
	}
	return n.f
}

func (n number) int() int64 {
	if n.class == unsignedInt {
		return int64(n.u)
	}
	return n.i
}

func (n number) negative() bool {
	switch n.class {
	case signedInt:
		return n.i < 0
	case floatNum:
		return n.f < 0
	}
	return false
}

func as(v any, t reflect.Type) any {
	return reflect.ValueOf(v).Convert(t).Interface()
}

// ─────────────────────────────────────────────────────────────────────────────
// Binary operators
// ─────────────────────────────────────────────────────────────────────────────

// binary applies a op b. Integers of one type stay in that type; mixed
// integer types compute in int64 (uint64 when both are unsigned); any float
// promotes to float64, or float32 when both sides are float32.
func binary(op Op, a, b any) (any, error) {
	switch op {
	case OpAdd:
		if out, ok := concat(a, b); ok {
			return out, nil
		}
	case OpMul:
		if out, ok := repeat(a, b); ok {
			return out, nil
		}
		if out, ok := repeat(b, a); ok {
			return out, nil
		}
	case OpAnd, OpOr, OpXor:
		x, okX := a.(bool)
		y, okY := b.(bool)
		if okX && okY {
			switch op {
			case OpAnd:
				return x && y, nil
			case OpOr:
				return x || y, nil
			}
			return x != y, nil
		}
	}

	na, okA := toNumber(a)
	nb, okB := toNumber(b)
	if !okA || !okB {
		return nil, unsupported(op, a, b)
	}
	if na.class == floatNum || nb.class == floatNum || op == OpDiv {
		return floatOp(op, na, nb)
	}
	if na.class == unsignedInt && nb.class == unsignedInt {
		return uintOp(op, na, nb)
	}
	return intOp(op, na, nb)
}

func floatOp(op Op, na, nb number) (any, error) {
	x, y := na.float(), nb.float()
	t := float64Type
	if na.typ == nb.typ && na.class == floatNum {
		t = na.typ
	}
	var r float64
	switch op {
	case OpAdd:
		r = x + y
	case OpSub:
		r = x - y
	case OpMul:
		r = x * y
	case OpDiv:
		if y == 0 {
			return nil, ErrDivisionByZero
		}
		r = x / y
	case OpFloorDiv:
		if y == 0 {
			return nil, ErrDivisionByZero
		}
		r = math.Floor(x / y)
	case OpMod:
		if y == 0 {
			return nil, ErrDivisionByZero
		}
		r = math.Mod(x, y)
		if r != 0 && (r < 0) != (y < 0) {
			r += y
		}
	case OpPow:
		if x == 0 && y < 0 {
			return nil, ErrDivisionByZero
		}
		r = math.Pow(x, y)
	default:
		return nil, unsupported(op, na.typ, nb.typ)
	}
	return as(r, t), nil
}

func intOp(op Op, na, nb number) (any, error) {
	x, y := na.int(), nb.int()
	t := int64Type
	if na.typ == nb.typ {
		t = na.typ
	}
	var r int64
	switch op {
	case OpAdd:
		r = x + y
	case OpSub:
		r = x - y
	case OpMul:
		r = x * y
	case OpFloorDiv:
		if y == 0 {
			return nil, ErrDivisionByZero
		}
		r = x / y
		if x%y != 0 && (x < 0) != (y < 0) {
			r--
		}
	case OpMod:
		if y == 0 {
			return nil, ErrDivisionByZero
		}
		r = x % y
		if r != 0 && (r < 0) != (y < 0) {
			r += y
		}
	case OpPow:
		if y < 0 {
			if x == 0 {
				return nil, ErrDivisionByZero
			}
			return math.Pow(float64(x), float64(y)), nil
		}
		r = ipow(x, y)
	case OpShl, OpShr:
		if y < 0 {
			return nil, ErrNegativeShift
		}
		if op == OpShl {
			r = x << uint64(y)
		} else {
			r = x >> uint64(y)
		}
	case OpAnd:
		r = x & y
	case OpOr:
		r = x | y
	case OpXor:
		r = x ^ y
	default:
		return nil, unsupported(op, na.typ, nb.typ)
	}
	return as(r, t), nil
}

func uintOp(op Op, na, nb number) (any, error) {
	x, y := na.u, nb.u
	t := uint64Type
	if na.typ == nb.typ {
		t = na.typ
	}
	var r uint64
	switch op {
	case OpAdd:
		r = x + y
	case OpSub:
		r = x - y
	case OpMul:
		r = x * y
	case OpFloorDiv:
		if y == 0 {
			return nil, ErrDivisionByZero
		}
		r = x / y
	case OpMod:
		if y == 0 {
			return nil, ErrDivisionByZero
		}
		r = x % y
	case OpPow:
		r = 1
		for base, exp := x, y; exp > 0; exp >>= 1 {
			if exp&1 == 1 {
				r *= base
			}
			base *= base
		}
	case OpShl:
		r = x << y
	case OpShr:
		r = x >> y
	case OpAnd:
		r = x & y
	case OpOr:
		r = x | y
	case OpXor:
		r = x ^ y
	default:
		return nil, unsupported(op, na.typ, nb.typ)
	}
	return as(r, t), nil
}

func ipow(base, exp int64) int64 {
	r := int64(1)
	for ; exp > 0; exp >>= 1 {
		if exp&1 == 1 {
			r *= base
		}
		base *= base
	}
	return r
}

// concat handles non-numeric addition: strings and same-typed slices.
func concat(a, b any) (any, bool) {
	if a == nil || b == nil {
		return nil, false
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case ra.Kind() == reflect.String && rb.Kind() == reflect.String:
		return as(ra.String()+rb.String(), ra.Type()), true
	case ra.Kind() == reflect.Slice && ra.Type() == rb.Type():
		out := reflect.MakeSlice(ra.Type(), 0, ra.Len()+rb.Len())
		out = reflect.AppendSlice(out, ra)
		out = reflect.AppendSlice(out, rb)
		return out.Interface(), true
	}
	return nil, false
}

// repeat handles seq * n for strings and slices. Counts below zero yield
// an empty sequence.
func repeat(seq, count any) (any, bool) {
	if seq == nil {
		return nil, false
	}
	n, ok := toNumber(count)
	if !ok || n.class == floatNum {
		return nil, false
	}
	times := max(n.int(), 0)
	rs := reflect.ValueOf(seq)
	switch rs.Kind() {
	case reflect.String:
		return as(strings.Repeat(rs.String(), int(times)), rs.Type()), true
	case reflect.Slice:
		out := reflect.MakeSlice(rs.Type(), 0, rs.Len()*int(times))
		for range times {
			out = reflect.AppendSlice(out, rs)
		}
		return out.Interface(), true
	}
	return nil, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Unary operators
// ─────────────────────────────────────────────────────────────────────────────

func unary(op Op, v any) (any, error) {
	n, ok := toNumber(v)
	if !ok {
		return nil, unsupported(op, v)
	}
	switch op {
	case OpPos:
		return v, nil
	case OpNeg:
		switch n.class {
		case signedInt:
			return as(-n.i, n.typ), nil
		case floatNum:
			return as(-n.f, n.typ), nil
		}
	case OpAbs:
		switch n.class {
		case signedInt:
			if n.i < 0 {
				return as(-n.i, n.typ), nil
			}
			return v, nil
		case unsignedInt:
			return v, nil
		case floatNum:
			return as(math.Abs(n.f), n.typ), nil
		}
	case OpInvert:
		switch n.class {
		case signedInt:
			return as(^n.i, n.typ), nil
		case unsignedInt:
			return as(^n.u, n.typ), nil
		}
	}
	return nil, unsupported(op, v)
}

// ─────────────────────────────────────────────────────────────────────────────
// Comparison
// ─────────────────────────────────────────────────────────────────────────────

func compare(op Op, a, b any) (any, error) {
	if op == OpEq {
		return Equal(a, b), nil
	}
	if op == OpNe {
		return !Equal(a, b), nil
	}
	c, ok := order(a, b)
	if !ok {
		return nil, unsupported(op, a, b)
	}
	if c == unordered {
		return false, nil
	}
	switch op {
	case OpLt:
		return c < 0, nil
	case OpLe:
		return c <= 0, nil
	case OpGt:
		return c > 0, nil
	}
	return c >= 0, nil
}

// unordered is the result of order when a NaN is involved; every ordering
// comparison against it is false.
const unordered = 2

// order compares a and b when both are numbers or both are strings.
func order(a, b any) (int, bool) {
	if na, ok := toNumber(a); ok {
		nb, ok := toNumber(b)
		if !ok {
			return 0, false
		}
		return compareNumbers(na, nb), true
	}
	if a == nil || b == nil {
		return 0, false
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Kind() == reflect.String && rb.Kind() == reflect.String {
		return strings.Compare(ra.String(), rb.String()), true
	}
	return 0, false
}

func compareNumbers(a, b number) int {
	switch {
	case a.class == floatNum || b.class == floatNum:
		x, y := a.float(), b.float()
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		case x == y:
			return 0
		}
		return unordered
	case a.class == unsignedInt && b.class == unsignedInt:
		return cmp.Compare(a.u, b.u)
	case a.class == signedInt && b.class == signedInt:
		return cmp.Compare(a.i, b.i)
	case a.negative():
		return -1
	case b.negative():
		return 1
	}
	au, bu := a.u, b.u
	if a.class == signedInt {
		au = uint64(a.i)
	}
	if b.class == signedInt {
		bu = uint64(b.i)
	}
	return cmp.Compare(au, bu)
}

// Equal reports whether a and b are equal the way an equality step sees
// them: numbers by value regardless of their Go type (NaN equals
// nothing), everything else with [reflect.DeepEqual].
func Equal(a, b any) bool {
	if na, ok := toNumber(a); ok {
		if nb, ok := toNumber(b); ok {
			return compareNumbers(na, nb) == 0
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}
