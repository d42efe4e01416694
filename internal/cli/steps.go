package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rxonhe/go-tython/paths"
	"github.com/rxonhe/go-tython/placeholder"
)

var (
	errUnknownOp    = errors.New("unknown operation")
	errUnknownType  = errors.New("unknown seed type")
	errBadSeedValue = errors.New("seed does not parse as requested type")
)

// Step is one recorded operation, as written on the command line or in a
// chain file:
//
//	steps:
//	  - op: add
//	    arg: 5
//	  - op: divide
//	    arg: 10
//	    reversed: true
type Step struct {
	Op       string `yaml:"op"`
	Arg      any    `yaml:"arg,omitempty"`
	Reversed bool   `yaml:"reversed,omitempty"`
}

// Chain is the layout of a chain file.
type Chain struct {
	Steps []Step `yaml:"steps"`
}

// LoadChain reads the steps of a YAML chain file.
func LoadChain(p paths.Path) ([]Step, error) {
	chain, ok, err := paths.ReadYAMLAs[Chain](p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("chain file %s does not exist", p)
	}
	return chain.Steps, nil
}

// ParseStep parses "op", "op:arg" or "rop:arg". A leading "r" on a
// reversible operation that is not itself an operation name selects the
// swapped form, so "rdiv:10" divides 10 by the running value. Call
// arguments are comma separated: "call:1,2".
func ParseStep(s string) (Step, error) {
	name, raw, hasArg := strings.Cut(s, ":")
	op, _, ok := lookupOp(name)
	if !ok {
		return Step{}, fmt.Errorf("%w: %q", errUnknownOp, name)
	}
	step := Step{Op: name}
	switch {
	case !hasArg:
	case op == placeholder.OpCall:
		args := make([]any, 0)
		for _, a := range strings.Split(raw, ",") {
			args = append(args, GuessValue(a))
		}
		step.Arg = args
	case op == placeholder.OpAttr:
		step.Arg = raw
	default:
		step.Arg = GuessValue(raw)
	}
	return step, nil
}

func lookupOp(name string) (op placeholder.Op, reversed, ok bool) {
	if op, ok := placeholder.ParseOp(name); ok {
		return op, false, true
	}
	if base, trimmed := strings.CutPrefix(name, "r"); trimmed {
		if op, ok := placeholder.ParseOp(base); ok && op.Reversible() {
			return op, true, true
		}
	}
	return 0, false, false
}

// Expr records the step onto e.
func (s Step) Expr(e placeholder.Expr) (placeholder.Expr, error) {
	op, reversed, ok := lookupOp(s.Op)
	if !ok {
		return e, fmt.Errorf("%w: %q", errUnknownOp, s.Op)
	}
	if op == placeholder.OpAttr {
		if _, isName := s.Arg.(string); !isName {
			return e, fmt.Errorf("attr needs a name, got %v", s.Arg)
		}
	}
	return e.Then(op, s.Arg, reversed || s.Reversed), nil
}

// BuildExpr records steps in order onto the identity expression.
func BuildExpr(steps []Step) (placeholder.Expr, error) {
	e := placeholder.Identity()
	for i, s := range steps {
		var err error
		if e, err = s.Expr(e); err != nil {
			return e, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return e, nil
}

// GuessValue reads s as an int, a float, a bool or, failing those, a
// string. Quotes force a string: "'5'" is the string "5".
func GuessValue(s string) any {
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if s == "true" || s == "false" {
		return s == "true"
	}
	return s
}

// ParseSeed reads s as the named type, or guesses when typ is empty.
func ParseSeed(s, typ string) (any, error) {
	var (
		v   any
		err error
	)
	switch typ {
	case "":
		return GuessValue(s), nil
	case "int":
		v, err = strconv.Atoi(s)
	case "float":
		v, err = strconv.ParseFloat(s, 64)
	case "bool":
		v, err = strconv.ParseBool(s)
	case "string":
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q (want int, float, string or bool)", errUnknownType, typ)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %q as %s", errBadSeedValue, s, typ)
	}
	return v, nil
}
