package placeholder_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxonhe/go-tython/placeholder"
)

type greeter struct {
	Name  string
	count int
}

func (g greeter) Greet(other string) string { return "hi " + other + ", I am " + g.Name }

func (g *greeter) Bump() int {
	g.count++
	return g.count
}

func TestArithmetic(t *testing.T) {
	p := placeholder.It
	tests := []struct {
		name string
		expr placeholder.Expr
		seed any
		want any
	}{
		{"add ints", p.Add(2), 3, 5},
		{"add mixed", p.Add(0.5), 3, 3.5},
		{"add strings", p.Add("cd"), "ab", "abcd"},
		{"add slices", p.Add([]int{3}), []int{1, 2}, []int{1, 2, 3}},
		{"sub uint", p.Sub(uint(1)), uint(3), uint(2)},
		{"mul", p.Mul(4), 3, 12},
		{"mul string", p.Mul(3), "ab", "ababab"},
		{"rmul string", p.RMul(2), "x", "xx"},
		{"div is true division", p.Div(2), 7, 3.5},
		{"div float32", p.Div(float32(2)), float32(1), float32(0.5)},
		{"floordiv", p.FloorDiv(2), 7, 3},
		{"floordiv negative", p.FloorDiv(2), -7, -4},
		{"floordiv float", p.FloorDiv(2.0), 7.5, 3.0},
		{"mod", p.Mod(3), 7, 1},
		{"mod negative dividend", p.Mod(2), -7, 1},
		{"mod negative divisor", p.Mod(-2), 7, -1},
		{"mod float", p.Mod(2.0), -1.5, 0.5},
		{"pow", p.Pow(10), 2, 1024},
		{"pow negative exponent", p.Pow(-1), 2, 0.5},
		{"rpow", p.RPow(2), 3, 8},
		{"shl", p.Shl(3), 1, 8},
		{"shr", p.Shr(1), 8, 4},
		{"rshl", p.RShl(1), 4, 16},
		{"and", p.And(6), 3, 2},
		{"or", p.Or(4), 3, 7},
		{"xor", p.Xor(1), 3, 2},
		{"bool and", p.And(false), true, false},
		{"bool or", p.Or(true), false, true},
		{"bool xor", p.Xor(true), true, false},
		{"radd", p.RAdd("pre-"), "fix", "pre-fix"},
		{"rdiv", p.RDiv(1), 4, 0.25},
		{"rfloordiv", p.RFloorDiv(7), 2, 3},
		{"rmod", p.RMod(7), 4, 3},
		{"rand", p.RAnd(1), 3, 1},
		{"ror", p.ROr(8), 1, 9},
		{"rxor", p.RXor(8), 9, 1},
		{"rshr", p.RShr(16), 2, 4},
		{"mixed int types", p.Add(int32(1)), int64(1), int64(2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, eval(t, tt.expr, tt.seed))
		})
	}
}

func TestArithmeticErrors(t *testing.T) {
	p := placeholder.It
	tests := []struct {
		name string
		expr placeholder.Expr
		seed any
		want error
	}{
		{"div zero", p.Div(0), 1, placeholder.ErrDivisionByZero},
		{"floordiv zero", p.FloorDiv(0), 1, placeholder.ErrDivisionByZero},
		{"mod zero", p.Mod(0), 1, placeholder.ErrDivisionByZero},
		{"float mod zero", p.Mod(0.0), 1.5, placeholder.ErrDivisionByZero},
		{"zero to negative power", p.Pow(-1), 0, placeholder.ErrDivisionByZero},
		{"negative shift", p.Shl(-1), 1, placeholder.ErrNegativeShift},
		{"shift float", p.Shl(1), 1.5, placeholder.ErrUnsupportedOperand},
		{"sub strings", p.Sub("a"), "b", placeholder.ErrUnsupportedOperand},
		{"add nil", p.Add(1), nil, placeholder.ErrUnsupportedOperand},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.expr.Eval(tt.seed)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUnary(t *testing.T) {
	p := placeholder.It
	assert.Equal(t, -5, eval(t, p.Neg(), 5))
	assert.Equal(t, 2.5, eval(t, p.Neg(), -2.5))
	assert.Equal(t, 5, eval(t, p.Pos(), 5))
	assert.Equal(t, 3, eval(t, p.Abs(), -3))
	assert.Equal(t, 3.5, eval(t, p.Abs(), -3.5))
	assert.Equal(t, uint8(7), eval(t, p.Abs(), uint8(7)))
	assert.Equal(t, -1, eval(t, p.Invert(), 0))
	assert.Equal(t, uint8(0xfa), eval(t, p.Invert(), uint8(5)))

	_, err := p.Neg().Eval(uint(1))
	assert.ErrorIs(t, err, placeholder.ErrUnsupportedOperand)
	_, err = p.Invert().Eval(1.5)
	assert.ErrorIs(t, err, placeholder.ErrUnsupportedOperand)
}

func TestComparison(t *testing.T) {
	p := placeholder.It
	tests := []struct {
		expr placeholder.Expr
		seed any
		want bool
	}{
		{p.Lt(5), 3, true},
		{p.Lt(3), 3, false},
		{p.Le(3), 3, true},
		{p.Gt(2.5), 3, true},
		{p.Ge(4), 3, false},
		{p.Eq(3.0), 3, true},
		{p.Eq(uint8(3)), 3, true},
		{p.Ne(3), 3, false},
		{p.Eq("a"), "a", true},
		{p.Eq([]int{1}), []int{1}, true},
		{p.Eq(1), "1", false},
		{p.Lt("b"), "a", true},
		{p.Gt(uint(1)), -1, false},
		{p.Lt(uint(1)), -1, true},
		{p.Lt(1.0), math.NaN(), false},
		{p.Le(1.0), math.NaN(), false},
		{p.Gt(1.0), math.NaN(), false},
		{p.Ge(1.0), math.NaN(), false},
		{p.Gt(math.NaN()), 1, false},
		{p.Eq(math.NaN()), math.NaN(), false},
		{p.Ne(math.NaN()), math.NaN(), true},
		{p.Ne(1), math.NaN(), true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, eval(t, tt.expr, tt.seed), "%s on %v", tt.expr, tt.seed)
	}

	_, err := p.Lt(1).Eval("a")
	assert.ErrorIs(t, err, placeholder.ErrUnsupportedOperand)
}

func TestContains(t *testing.T) {
	p := placeholder.It
	assert.Equal(t, true, eval(t, p.Contains("ell"), "hello"))
	assert.Equal(t, false, eval(t, p.Contains("xyz"), "hello"))
	assert.Equal(t, true, eval(t, p.Contains(2), []int{1, 2, 3}))
	assert.Equal(t, true, eval(t, p.Contains(2.0), []int{1, 2, 3}))
	assert.Equal(t, true, eval(t, p.Contains("a"), map[string]int{"a": 1}))
	assert.Equal(t, false, eval(t, p.Contains(1), map[string]int{"a": 1}))
	assert.Equal(t, false, eval(t, p.Contains(math.NaN()), []float64{1, math.NaN()}))

	_, err := p.Contains(1).Eval(42)
	assert.ErrorIs(t, err, placeholder.ErrUnsupportedOperand)
}

func TestIndex(t *testing.T) {
	p := placeholder.It
	assert.Equal(t, "b", eval(t, p.Index(1), []string{"a", "b", "c"}))
	assert.Equal(t, "c", eval(t, p.Index(-1), []string{"a", "b", "c"}))
	assert.Equal(t, 2, eval(t, p.Index(1), [3]int{1, 2, 3}))
	assert.Equal(t, "é", eval(t, p.Index(1), "héllo"))
	assert.Equal(t, 1, eval(t, p.Index("a"), map[string]int{"a": 1}))
	assert.Equal(t, "x", eval(t, p.Index(int64(7)), map[int]string{7: "x"}))

	_, err := p.Index(3).Eval([]int{1, 2, 3})
	assert.ErrorIs(t, err, placeholder.ErrIndexOutOfRange)
	_, err = p.Index("z").Eval(map[string]int{"a": 1})
	assert.ErrorIs(t, err, placeholder.ErrKeyNotFound)
	_, err = p.Index(1.5).Eval([]int{1, 2})
	assert.ErrorIs(t, err, placeholder.ErrUnsupportedOperand)
}

func TestAttrAndCall(t *testing.T) {
	p := placeholder.It
	g := greeter{Name: "Ann"}

	assert.Equal(t, "Ann", eval(t, p.Attr("Name"), g))
	assert.Equal(t, "Ann", eval(t, p.Attr("Name"), &g))
	assert.Equal(t, "hi Bob, I am Ann", eval(t, p.Attr("Greet").Call("Bob"), g))
	assert.Equal(t, 1, eval(t, p.Attr("Bump").Call(), &g))
	assert.Equal(t, 1, eval(t, p.Attr("Bump").Call(), greeter{}))
	assert.Equal(t, 3, eval(t, p.Attr("port"), map[string]int{"port": 3}))

	_, err := p.Attr("count").Eval(g)
	assert.ErrorIs(t, err, placeholder.ErrNoAttribute)
	_, err = p.Attr("Name").Eval((*greeter)(nil))
	assert.ErrorIs(t, err, placeholder.ErrNoAttribute)

	assert.Equal(t, "HI", eval(t, p.Call(), func() string { return "HI" }))
	assert.Equal(t, "a-b", eval(t, p.Call([]string{"a", "b"}, "-"), strings.Join))
	assert.Equal(t, []any{1, "x"}, eval(t, p.Call(), func() (int, string) { return 1, "x" }))
	assert.Nil(t, eval(t, p.Call(), func() {}))
	assert.Equal(t, 6, eval(t, p.Call(1, 2, 3), func(ns ...int) int {
		sum := 0
		for _, n := range ns {
			sum += n
		}
		return sum
	}))

	_, err = p.Call(1).Eval(func() {})
	assert.ErrorIs(t, err, placeholder.ErrArity)
	_, err = p.Call().Eval(42)
	assert.ErrorIs(t, err, placeholder.ErrNotCallable)
}

type inner struct{ X int }

func TestNilTargetsFailWithEvalError(t *testing.T) {
	p := placeholder.It
	var evalErr *placeholder.EvalError

	_, err := p.Call().Eval((func())(nil))
	require.ErrorAs(t, err, &evalErr)
	assert.ErrorIs(t, err, placeholder.ErrNotCallable)

	_, err = p.Attr("X").Eval(struct{ *inner }{})
	require.ErrorAs(t, err, &evalErr)
	assert.ErrorIs(t, err, placeholder.ErrNoAttribute)

	assert.Equal(t, 7, eval(t, p.Attr("X"), struct{ *inner }{&inner{X: 7}}))
}

func TestIteration(t *testing.T) {
	p := placeholder.It
	assert.Equal(t, 4, eval(t, p.Iter().Next(), []int{4, 5}))
	assert.Equal(t, 5, eval(t, p.Reversed().Next(), []int{4, 5}))
	assert.Equal(t, "b", eval(t, p.Reversed().Next(), "ab"))
	assert.Equal(t, "a", eval(t, p.Iter().Next(), map[string]int{"b": 2, "a": 1}))

	_, err := p.Iter().Next().Eval([]int{})
	assert.ErrorIs(t, err, placeholder.ErrStopIteration)
	_, err = p.Next().Eval([]int{1})
	assert.ErrorIs(t, err, placeholder.ErrUnsupportedOperand)

	it := eval(t, p.Iter(), []int{1, 2, 3}).(*placeholder.Iterator)
	var got []any
	for v := range it.Seq() {
		got = append(got, v)
	}
	assert.Equal(t, []any{1, 2, 3}, got)
	assert.Equal(t, 0, it.Remaining())
}

func TestSizeAndBool(t *testing.T) {
	p := placeholder.It
	assert.Equal(t, 5, eval(t, p.Size(), "héllo"))
	assert.Equal(t, 2, eval(t, p.Size(), []int{1, 2}))
	assert.Equal(t, 1, eval(t, p.Size(), map[int]int{1: 1}))

	_, err := p.Size().Eval(3)
	assert.ErrorIs(t, err, placeholder.ErrUnsupportedOperand)

	for _, falsy := range []any{nil, 0, 0.0, "", []int{}, map[string]int{}, false, (*greeter)(nil)} {
		assert.Equal(t, false, eval(t, p.Bool(), falsy), "%#v", falsy)
	}
	for _, truthy := range []any{1, -0.5, "x", []int{0}, true, &greeter{}, greeter{}} {
		assert.Equal(t, true, eval(t, p.Bool(), truthy), "%#v", truthy)
	}
}

func TestThen(t *testing.T) {
	e := placeholder.It.
		Then(placeholder.OpAdd, 5, false).
		Then(placeholder.OpSub, 100, true).
		Then(placeholder.OpNeg, nil, false)
	require.Equal(t, "self.add(5).rsubtract(100).negate()", e.String())
	assert.Equal(t, -92, eval(t, e, 3))

	op, ok := placeholder.ParseOp("mul")
	require.True(t, ok)
	assert.Equal(t, placeholder.OpMul, op)
	op, ok = placeholder.ParseOp("floorDivide")
	require.True(t, ok)
	assert.Equal(t, placeholder.OpFloorDiv, op)
	_, ok = placeholder.ParseOp("nope")
	assert.False(t, ok)
}
