// Package collections provides immutable, Kotlin-flavoured List, Set and
// Dict types with a fluent functional API.
//
// # Overview
//
//	names := collections.Map(
//	    collections.ListOf(users...).Filter(func(u User) bool { return u.Active }),
//	    func(u User) string { return u.Name },
//	)
//
// [List] wraps a slice, [Set] keeps distinct items in insertion order and
// [Dict] is an insertion-ordered map. Every transforming call returns a new
// value, so all three are safe to share between goroutines.
//
// # Type-transforming operations
//
// Methods cannot introduce type parameters, so everything that changes the
// element type is a package-level function: [Map], [FlatMap], [Fold],
// [GroupBy], the Associate family, [MapValues], [MapSet] and so on.
//
// # Placeholder expressions
//
// Anywhere a function is expected, [Func] and [Pred] let callers pass a
// [placeholder.Expr] instead:
//
//	big := list.Filter(collections.Pred[int](placeholder.It.Gt(10)))
//	sq  := collections.Map(list, collections.Func[int, int](placeholder.It.Pow(2)))
//
// An expression that fails to evaluate panics with its
// [*placeholder.EvalError]; run the pipeline inside [Try] to get it back
// as an error.
//
// # Macros
//
// Named operations can be attached at run time, either as functions with
// [RegisterMacro] or as recorded expressions with [RegisterExprMacro], and
// invoked on any List, Set or Dict:
//
//	collections.RegisterExprMacro("size", placeholder.It.Size())
//	n, _ := collections.SetOf("a", "b").Macro("size") // 2
package collections
