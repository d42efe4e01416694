package collections

import "fmt"

// Pair holds two values of possibly different types.
// It is the element of [Dict.Entries] and what the Associate* functions
// expect their transform to return (key first).
type Pair[A, B any] struct {
	First  A
	Second B
}

// To builds a Pair, reading like Kotlin's infix "to":
//
//	collections.To("a", 1) // ("a", 1)
func To[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Unpack returns both halves of p.
func (p Pair[A, B]) Unpack() (A, B) { return p.First, p.Second }

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
