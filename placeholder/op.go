package placeholder

import "fmt"

// Op identifies the kind of step stored in a [Record].
//
// Each operator the host language would intercept through overloading is an
// explicit variant here; [Expr.Eval] dispatches on it.
type Op uint8

const (
	// OpCustom is a caller-supplied transform added with [Expr.WithOperation].
	OpCustom Op = iota

	// Arithmetic
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpFloorDiv
	OpMod
	OpPow

	// Bitwise
	OpShl
	OpShr
	OpAnd
	OpOr
	OpXor

	// Unary
	OpNeg
	OpPos
	OpAbs
	OpInvert

	// Comparison
	OpLt
	OpLe
	OpEq
	OpNe
	OpGt
	OpGe

	// Access
	OpContains
	OpIndex
	OpAttr
	OpCall
	OpIter
	OpNext
	OpLen
	OpReversed
	OpBool

	opCount
)

var opNames = [opCount]string{
	OpCustom:   "custom",
	OpAdd:      "add",
	OpSub:      "subtract",
	OpMul:      "multiply",
	OpDiv:      "divide",
	OpFloorDiv: "floorDivide",
	OpMod:      "modulo",
	OpPow:      "power",
	OpShl:      "shiftLeft",
	OpShr:      "shiftRight",
	OpAnd:      "and",
	OpOr:       "or",
	OpXor:      "xor",
	OpNeg:      "negate",
	OpPos:      "positive",
	OpAbs:      "abs",
	OpInvert:   "invert",
	OpLt:       "lessThan",
	OpLe:       "lessEqual",
	OpEq:       "equal",
	OpNe:       "notEqual",
	OpGt:       "greaterThan",
	OpGe:       "greaterEqual",
	OpContains: "contains",
	OpIndex:    "index",
	OpAttr:     "attr",
	OpCall:     "call",
	OpIter:     "iter",
	OpNext:     "next",
	OpLen:      "len",
	OpReversed: "reversed",
	OpBool:     "bool",
}

// String returns the name used when rendering an expression, e.g. "add".
func (o Op) String() string {
	if o < opCount {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// Binary reports whether o combines the running value with an operand.
func (o Op) Binary() bool {
	return o >= OpAdd && o <= OpXor || o >= OpLt && o <= OpGe
}

// Reversible reports whether o has a swapped-operand form (operand op value).
func (o Op) Reversible() bool {
	return o >= OpAdd && o <= OpXor
}

// TakesOperand reports whether o captures an operand when recorded.
func (o Op) TakesOperand() bool {
	return o.Binary() || o == OpContains || o == OpIndex || o == OpAttr
}

// Ops returns every built-in operation, in declaration order.
// OpCustom is not included.
func Ops() []Op {
	out := make([]Op, 0, opCount-1)
	for o := OpAdd; o < opCount; o++ {
		out = append(out, o)
	}
	return out
}

// ParseOp looks up an operation by its rendered name ("add", "multiply", …)
// or by one of the short aliases accepted on the command line ("sub", "mul",
// "div", "lt", …).
func ParseOp(name string) (Op, bool) {
	for o := OpAdd; o < opCount; o++ {
		if opNames[o] == name {
			return o, true
		}
	}
	o, ok := opAliases[name]
	return o, ok
}

var opAliases = map[string]Op{
	"sub":      OpSub,
	"mul":      OpMul,
	"div":      OpDiv,
	"floordiv": OpFloorDiv,
	"mod":      OpMod,
	"pow":      OpPow,
	"shl":      OpShl,
	"shr":      OpShr,
	"neg":      OpNeg,
	"pos":      OpPos,
	"lt":       OpLt,
	"le":       OpLe,
	"eq":       OpEq,
	"ne":       OpNe,
	"gt":       OpGt,
	"ge":       OpGe,
	"in":       OpContains,
	"getitem":  OpIndex,
	"getattr":  OpAttr,
}
