// Package placeholder records a chain of operations against a value that
// does not exist yet and applies the chain later, the way Kotlin's "it" or
// a lambda shorthand would.
//
// # Building
//
// Start from [It] (or [Identity]) and chain builder methods. Each call
// returns a new [Expr]; the receiver is never modified:
//
//	double := placeholder.It.Mul(2)
//	next   := double.Add(1)            // double is still "self.multiply(2)"
//
// Go has no operator overloading, so every operator is a method: [Expr.Add],
// [Expr.Sub], [Expr.Lt], [Expr.Index], [Expr.Attr], [Expr.Call], … The
// reversed forms ([Expr.RSub], [Expr.RDiv], …) put the operand on the left:
//
//	placeholder.It.RSub(3) // 3 - value
//
// Anything not covered by a built-in operation can be recorded with
// [Expr.WithOperation].
//
// # Evaluating
//
// [Expr.Eval] folds the chain over a seed from left to right:
//
//	v, err := placeholder.It.Add(5).Mul(2).Eval(3) // 16, nil
//
// Operand types are only checked at evaluation time. A failing step is
// reported as an [*EvalError] naming the step and the value it received:
//
//	_, err := placeholder.It.RDiv(10).Eval(0)
//	// placeholder: error evaluating rdivide(10) on 0 (step 0): placeholder: division by zero
//
// # Rendering
//
// An Expr prints as the dotted list of its steps, which is what shows up in
// logs and error messages:
//
//	fmt.Println(placeholder.It.Add(5).Mul(2)) // self.add(5).multiply(2)
//
// # Collaborators
//
// Code that accepts either a plain function or an expression calls [Apply],
// which evaluates expressions and invokes everything else directly.
package placeholder
