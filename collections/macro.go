package collections

import (
	"fmt"
	"slices"
	"sync"

	"github.com/samber/lo"

	"github.com/rxonhe/go-tython/placeholder"
)

// MacroFunc extends List, Set and Dict with a named operation. The
// receiver arrives untyped because one registry serves every
// instantiation; assert it back to the concrete type inside the macro.
type MacroFunc func(receiver any, args ...any) any

type registry struct {
	mu     sync.RWMutex
	byName map[string]MacroFunc
}

func (r *registry) set(name string, fn MacroFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if fn == nil {
		delete(r.byName, name)
		return
	}
	r.byName[name] = fn
}

func (r *registry) get(name string) (MacroFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.byName[name]
	return fn, ok
}

func (r *registry) names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := lo.Keys(r.byName)
	slices.Sort(names)
	return names
}

func (r *registry) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.byName)
}

var macros = &registry{byName: make(map[string]MacroFunc)}

// RegisterMacro stores fn under name, replacing any earlier macro with
// that name. A nil fn unregisters it.
//
//	collections.RegisterMacro("evens", func(recv any, _ ...any) any {
//	    return recv.(*collections.List[int]).Filter(func(n int) bool { return n%2 == 0 })
//	})
//
//	evens, _ := collections.ListOf(1, 2, 3, 4).Macro("evens") // [2,4]
func RegisterMacro(name string, fn MacroFunc) { macros.set(name, fn) }

// RegisterExprMacro stores a recorded expression under name. Calling the
// macro evaluates e against the receiver; extra args are ignored.
//
//	collections.RegisterExprMacro("size", placeholder.It.Size())
func RegisterExprMacro(name string, e placeholder.Evaluator) {
	macros.set(name, func(recv any, _ ...any) any {
		out, err := e.Eval(recv)
		if err != nil {
			panic(err)
		}
		return out
	})
}

// HasMacro reports whether name is registered.
func HasMacro(name string) bool {
	_, ok := macros.get(name)
	return ok
}

// MacroNames returns the registered names in sorted order.
func MacroNames() []string { return macros.names() }

// FlushMacros unregisters every macro. Tests use it to start clean.
func FlushMacros() { macros.reset() }

// CallMacro runs the macro registered under name against receiver.
// Unknown names give [ErrMacroNotFound]; an expression macro that fails
// gives its [*placeholder.EvalError].
func CallMacro(name string, receiver any, args ...any) (out any, err error) {
	fn, ok := macros.get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMacroNotFound, name)
	}
	err = Try(func() { out = fn(receiver, args...) })
	return out, err
}

// Macro runs the named macro with l as receiver. See [CallMacro].
func (l *List[T]) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, l, args...)
}

// Macro runs the named macro with s as receiver.
func (s *Set[T]) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, s, args...)
}

// Macro runs the named macro with d as receiver.
func (d *Dict[K, V]) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, d, args...)
}
