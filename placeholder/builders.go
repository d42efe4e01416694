package placeholder

// ─────────────────────────────────────────────────────────────────────────────
// Arithmetic: value op operand
// ─────────────────────────────────────────────────────────────────────────────

// Add records value + x.
func (e Expr) Add(x any) Expr { return e.op(OpAdd, x) }

// Sub records value - x.
func (e Expr) Sub(x any) Expr { return e.op(OpSub, x) }

// Mul records value * x.
func (e Expr) Mul(x any) Expr { return e.op(OpMul, x) }

// Div records value / x as true division: the result is always a float.
func (e Expr) Div(x any) Expr { return e.op(OpDiv, x) }

// FloorDiv records value / x rounded toward negative infinity.
func (e Expr) FloorDiv(x any) Expr { return e.op(OpFloorDiv, x) }

// Mod records value mod x; the sign of the result follows x.
func (e Expr) Mod(x any) Expr { return e.op(OpMod, x) }

// Pow records value raised to the power x.
func (e Expr) Pow(x any) Expr { return e.op(OpPow, x) }

// Shl records value << x.
func (e Expr) Shl(x any) Expr { return e.op(OpShl, x) }

// Shr records value >> x.
func (e Expr) Shr(x any) Expr { return e.op(OpShr, x) }

// And records value & x (logical and for booleans).
func (e Expr) And(x any) Expr { return e.op(OpAnd, x) }

// Or records value | x (logical or for booleans).
func (e Expr) Or(x any) Expr { return e.op(OpOr, x) }

// Xor records value ^ x.
func (e Expr) Xor(x any) Expr { return e.op(OpXor, x) }

// ─────────────────────────────────────────────────────────────────────────────
// Reversed arithmetic: operand op value
// ─────────────────────────────────────────────────────────────────────────────

// RAdd records x + value.
func (e Expr) RAdd(x any) Expr { return e.rop(OpAdd, x) }

// RSub records x - value.
//
//	placeholder.It.RSub(3).Eval(10) // → -7
func (e Expr) RSub(x any) Expr { return e.rop(OpSub, x) }

// RMul records x * value.
func (e Expr) RMul(x any) Expr { return e.rop(OpMul, x) }

// RDiv records x / value.
func (e Expr) RDiv(x any) Expr { return e.rop(OpDiv, x) }

// RFloorDiv records x floor-divided by value.
func (e Expr) RFloorDiv(x any) Expr { return e.rop(OpFloorDiv, x) }

// RMod records x mod value.
func (e Expr) RMod(x any) Expr { return e.rop(OpMod, x) }

// RPow records x raised to the power value.
func (e Expr) RPow(x any) Expr { return e.rop(OpPow, x) }

// RShl records x << value.
func (e Expr) RShl(x any) Expr { return e.rop(OpShl, x) }

// RShr records x >> value.
func (e Expr) RShr(x any) Expr { return e.rop(OpShr, x) }

// RAnd records x & value.
func (e Expr) RAnd(x any) Expr { return e.rop(OpAnd, x) }

// ROr records x | value.
func (e Expr) ROr(x any) Expr { return e.rop(OpOr, x) }

// RXor records x ^ value.
func (e Expr) RXor(x any) Expr { return e.rop(OpXor, x) }

// ─────────────────────────────────────────────────────────────────────────────
// Unary
// ─────────────────────────────────────────────────────────────────────────────

// Neg records -value.
func (e Expr) Neg() Expr { return e.unaryOp(OpNeg) }

// Pos records +value. Numbers pass through unchanged.
func (e Expr) Pos() Expr { return e.unaryOp(OpPos) }

// Abs records the absolute value.
func (e Expr) Abs() Expr { return e.unaryOp(OpAbs) }

// Invert records the bitwise complement ^value.
func (e Expr) Invert() Expr { return e.unaryOp(OpInvert) }

// ─────────────────────────────────────────────────────────────────────────────
// Comparison
// ─────────────────────────────────────────────────────────────────────────────

// Lt records value < x.
func (e Expr) Lt(x any) Expr { return e.op(OpLt, x) }

// Le records value <= x.
func (e Expr) Le(x any) Expr { return e.op(OpLe, x) }

// Eq records value == x. Numbers compare by value across types; anything
// else compares deeply.
func (e Expr) Eq(x any) Expr { return e.op(OpEq, x) }

// Ne records value != x.
func (e Expr) Ne(x any) Expr { return e.op(OpNe, x) }

// Gt records value > x.
func (e Expr) Gt(x any) Expr { return e.op(OpGt, x) }

// Ge records value >= x.
func (e Expr) Ge(x any) Expr { return e.op(OpGe, x) }

// ─────────────────────────────────────────────────────────────────────────────
// Access
// ─────────────────────────────────────────────────────────────────────────────

// Contains records "x in value": substring for strings, element for slices
// and arrays, key for maps.
func (e Expr) Contains(x any) Expr { return e.op(OpContains, x) }

// Index records value[key]. Negative integer keys count from the end.
func (e Expr) Index(key any) Expr { return e.op(OpIndex, key) }

// Attr records access to the field, method or string map key called name.
func (e Expr) Attr(name string) Expr { return e.op(OpAttr, name) }

// Call records a call of the running value with args.
//
//	upper := placeholder.It.Attr("ToUpper").Call()
func (e Expr) Call(args ...any) Expr {
	cp := make([]any, len(args))
	copy(cp, args)
	return e.with(Record{Op: OpCall, args: cp})
}

// Iter records conversion of the running value to an [*Iterator].
func (e Expr) Iter() Expr { return e.unaryOp(OpIter) }

// Next records one step of an [*Iterator].
func (e Expr) Next() Expr { return e.unaryOp(OpNext) }

// Size records the length of the running value.
func (e Expr) Size() Expr { return e.unaryOp(OpLen) }

// Reversed records a reversed [*Iterator] over the running value.
func (e Expr) Reversed() Expr { return e.unaryOp(OpReversed) }

// Bool records the truthiness of the running value. See [Truthy].
func (e Expr) Bool() Expr { return e.unaryOp(OpBool) }

// Then records op with operand, choosing the reversed form when reversed is
// set. It is the dynamic counterpart of the named builders, used when the
// operation is only known at run time (for example when parsed from text).
// Unary operations ignore operand. Call takes operand as its sole argument
// unless operand is a []any, which is spread.
func (e Expr) Then(op Op, operand any, reversed bool) Expr {
	switch {
	case op == OpCall:
		if args, ok := operand.([]any); ok {
			return e.Call(args...)
		}
		if operand == nil {
			return e.Call()
		}
		return e.Call(operand)
	case op == OpAttr:
		name, _ := operand.(string)
		return e.Attr(name)
	case reversed && op.Reversible():
		return e.rop(op, operand)
	case op.TakesOperand():
		return e.op(op, operand)
	}
	return e.unaryOp(op)
}
