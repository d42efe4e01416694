package holder

import (
	"fmt"
	"reflect"
)

// Key names a slot in a [Holder] and fixes the type of the value stored
// under it.
//
//	var (
//	    UserName = holder.NewKey[string]("user_name")
//	    Retries  = holder.NewKey[int]("retries")
//	)
type Key[T any] struct {
	name string
}

// NewKey returns a key for values of type T.
func NewKey[T any](name string) Key[T] {
	return Key[T]{name: name}
}

// Name returns the key's name.
func (k Key[T]) Name() string { return k.name }

// Type returns the value type the key carries.
func (k Key[T]) Type() reflect.Type { return reflect.TypeFor[T]() }

func (k Key[T]) String() string { return fmt.Sprintf("%s (%s)", k.name, k.Type()) }

// Of pairs the key with v for [Holder.Offer].
func (k Key[T]) Of(v T) Entry {
	return Entry{name: k.name, typ: k.Type(), value: v}
}

// Declare makes the key known to h without storing a value, so untyped
// [Holder.Set] calls can be checked against it.
func (k Key[T]) Declare(h *Holder) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.declare(k.name, k.Type())
}

// Entry is a key/value pair produced by [Key.Of].
type Entry struct {
	name  string
	typ   reflect.Type
	value any
}

func (e Entry) String() string { return fmt.Sprintf("%s=%v", e.name, e.value) }

// accepts reports whether v may be stored under a key of type t. Interface
// keys take anything implementing them, including nil.
func accepts(t reflect.Type, v any) bool {
	if v == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
			return true
		}
		return false
	}
	vt := reflect.TypeOf(v)
	if t.Kind() == reflect.Interface {
		return vt.Implements(t)
	}
	return vt == t
}
