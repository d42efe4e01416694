// Package holder provides a typed key/value store.
//
// Each [Key] carries the type of the value stored under it, so reads need
// no type assertions and writes through a key cannot store the wrong type:
//
//	var Retries = holder.NewKey[int]("retries")
//
//	h := holder.New()
//	holder.Put(h, Retries, 3)
//	n := holder.Get(h, Retries) // 3
//
// Slices, maps and arrays are copied on the way in and on the way out, so a
// caller never shares mutable state with the holder.
//
// A Holder is safe for concurrent use.
package holder

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
)

// Holder stores values under typed keys.
type Holder struct {
	mu     sync.RWMutex
	values map[string]any
	types  map[string]reflect.Type
}

// New creates an empty [Holder].
func New() *Holder {
	return &Holder{
		values: make(map[string]any),
		types:  make(map[string]reflect.Type),
	}
}

// declare fixes the type of name. The caller holds h.mu.
func (h *Holder) declare(name string, t reflect.Type) error {
	if prev, ok := h.types[name]; ok && prev != t {
		return fmt.Errorf("%w: %s is %s, not %s", ErrTypeMismatch, name, prev, t)
	}
	h.types[name] = t
	return nil
}

// Put stores v under k. It fails only when the key's name was already
// declared with a different type.
func Put[T any](h *Holder, k Key[T], v T) error {
	return h.Offer(k.Of(v))
}

// Get returns the value stored under k, or def (the zero value if
// omitted) when nothing is stored.
func Get[T any](h *Holder, k Key[T], def ...T) T {
	if v, ok := Lookup(h, k); ok {
		return v
	}
	if len(def) > 0 {
		return clone(def[0])
	}
	var zero T
	return zero
}

// Lookup returns the value stored under k and whether one is stored.
func Lookup[T any](h *Holder, k Key[T]) (T, bool) {
	h.mu.RLock()
	raw, ok := h.values[k.name]
	h.mu.RUnlock()

	var zero T
	if !ok {
		return zero, false
	}
	v, isT := raw.(T)
	if !isT {
		// untyped nil stored under a nilable key
		return zero, true
	}
	return clone(v), true
}

// Offer stores every entry, or none of them if any entry's key conflicts
// with an earlier declaration or with another entry of the same call.
//
//	err := h.Offer(
//	    UserName.Of("alice"),
//	    Retries.Of(3),
//	)
func (h *Holder) Offer(entries ...Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	batch := make(map[string]reflect.Type, len(entries))
	for _, e := range entries {
		prev, ok := batch[e.name]
		if !ok {
			prev, ok = h.types[e.name]
		}
		if ok && prev != e.typ {
			return fmt.Errorf("%w: %s is %s, not %s", ErrTypeMismatch, e.name, prev, e.typ)
		}
		batch[e.name] = e.typ
	}
	for _, e := range entries {
		h.types[e.name] = e.typ
		h.values[e.name] = cloneAny(e.value)
	}
	return nil
}

// Set stores value under a name declared by an earlier typed write or
// [Key.Declare]. The value must have exactly the declared type; keys
// declared with an interface type accept any implementation, and nilable
// types accept nil.
func (h *Holder) Set(name string, value any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	t, ok := h.types[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, name)
	}
	if !accepts(t, value) {
		return fmt.Errorf("%w: %s must be %s, not %T", ErrTypeMismatch, name, t, value)
	}
	h.values[name] = cloneAny(value)
	return nil
}

// Value returns the untyped value stored under name.
func (h *Holder) Value(name string) (any, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	v, ok := h.values[name]
	return cloneAny(v), ok
}

// Has reports whether a value is stored under name.
func (h *Holder) Has(name string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.values[name]
	return ok
}

// Delete removes the value stored under name. The key stays declared.
func (h *Holder) Delete(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.values, name)
}

// Len returns the number of stored values.
func (h *Holder) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.values)
}

// Names returns the names of stored values in sorted order.
func (h *Holder) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	names := make([]string, 0, len(h.values))
	for name := range h.values {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ─────────────────────────────────────────────────────────────────────────────
// Copying
// ─────────────────────────────────────────────────────────────────────────────

func clone[T any](v T) T {
	c, ok := cloneAny(v).(T)
	if !ok {
		return v
	}
	return c
}

func cloneAny(v any) any {
	if v == nil {
		return nil
	}
	return deepCopy(reflect.ValueOf(v)).Interface()
}

// deepCopy copies slices, maps and arrays recursively, including those
// nested in interface values. Other values, pointers included, are
// returned as is.
func deepCopy(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := range v.Len() {
			out.Index(i).Set(deepCopy(v.Index(i)))
		}
		return out
	case reflect.Map:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), deepCopy(iter.Value()))
		}
		return out
	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		for i := range v.Len() {
			out.Index(i).Set(deepCopy(v.Index(i)))
		}
		return out
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(deepCopy(v.Elem()))
		return out
	}
	return v
}
