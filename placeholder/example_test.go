package placeholder_test

import (
	"errors"
	"fmt"

	"github.com/rxonhe/go-tython/placeholder"
)

func ExampleExpr_Eval() {
	e := placeholder.It.Add(5).Mul(2)
	v, _ := e.Eval(3)
	fmt.Println(e, "=", v)
	// Output: self.add(5).multiply(2) = 16
}

func ExampleExpr_RSub() {
	v, _ := placeholder.It.RSub(3).Eval(10)
	fmt.Println(v)
	// Output: -7
}

func ExampleExpr_WithOperation() {
	square := placeholder.It.WithOperation("square", func(v any) (any, error) {
		n, ok := v.(int)
		if !ok {
			return nil, fmt.Errorf("want int, got %T", v)
		}
		return n * n, nil
	})
	v, _ := square.Add(1).Eval(4)
	fmt.Println(square.Add(1), v)
	// Output: self.square().add(1) 17
}

func ExampleEvalError() {
	_, err := placeholder.It.RDiv(10).Eval(0)
	var evalErr *placeholder.EvalError
	if errors.As(err, &evalErr) {
		fmt.Println(evalErr.Op, evalErr.Value)
	}
	fmt.Println(errors.Is(err, placeholder.ErrDivisionByZero))
	// Output:
	// rdivide(10) 0
	// true
}

func ExampleApply() {
	for _, fn := range []any{
		placeholder.It.Mul(2),
		func(n int) int { return n + 100 },
	} {
		v, _ := placeholder.Apply(fn, 21)
		fmt.Println(v)
	}
	// Output:
	// 42
	// 121
}
