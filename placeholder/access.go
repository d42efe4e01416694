package placeholder

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"
)

// Lener is implemented by containers that report their own length.
type Lener interface {
	Len() int
}

func contains(container, x any) (any, error) {
	if container == nil {
		return nil, unsupported(OpContains, container)
	}
	rv := reflect.ValueOf(container)
	switch rv.Kind() {
	case reflect.String:
		switch sub := x.(type) {
		case string:
			return strings.Contains(rv.String(), sub), nil
		case rune:
			return strings.ContainsRune(rv.String(), sub), nil
		}
		return nil, unsupported(OpContains, container, x)
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			if Equal(rv.Index(i).Interface(), x) {
				return true, nil
			}
		}
		return false, nil
	case reflect.Map:
		key, ok := mapKey(rv, x)
		if !ok {
			return false, nil
		}
		return rv.MapIndex(key).IsValid(), nil
	}
	if it, ok := container.(*Iterator); ok {
		for _, item := range it.rest() {
			if Equal(item, x) {
				return true, nil
			}
		}
		return false, nil
	}
	return nil, unsupported(OpContains, container)
}

// mapKey converts x to the key type of m when possible.
func mapKey(m reflect.Value, x any) (reflect.Value, bool) {
	kt := m.Type().Key()
	if x == nil {
		switch kt.Kind() {
		case reflect.Interface, reflect.Pointer:
			return reflect.Zero(kt), true
		}
		return reflect.Value{}, false
	}
	kv := reflect.ValueOf(x)
	switch {
	case kv.Type().AssignableTo(kt):
		return kv, true
	case isNumberKind(kv.Kind()) && isNumberKind(kt.Kind()),
		kv.Kind() == reflect.String && kt.Kind() == reflect.String:
		return kv.Convert(kt), true
	}
	return reflect.Value{}, false
}

func index(container, key any) (any, error) {
	if container == nil {
		return nil, unsupported(OpIndex, container)
	}
	rv := reflect.ValueOf(container)
	switch rv.Kind() {
	case reflect.Map:
		k, ok := mapKey(rv, key)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
		}
		v := rv.MapIndex(k)
		if !v.IsValid() {
			return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
		}
		return v.Interface(), nil
	case reflect.Slice, reflect.Array, reflect.String:
		n, ok := toNumber(key)
		if !ok || n.class == floatNum {
			return nil, unsupported(OpIndex, container, key)
		}
		if rv.Kind() == reflect.String {
			runes := []rune(rv.String())
			i, err := position(n.int(), len(runes))
			if err != nil {
				return nil, err
			}
			return as(string(runes[i]), rv.Type()), nil
		}
		i, err := position(n.int(), rv.Len())
		if err != nil {
			return nil, err
		}
		return rv.Index(i).Interface(), nil
	case reflect.Pointer:
		if !rv.IsNil() && rv.Elem().Kind() == reflect.Array {
			return index(rv.Elem().Interface(), key)
		}
	}
	return nil, unsupported(OpIndex, container, key)
}

// position resolves a possibly negative index against length n.
func position(i int64, n int) (int, error) {
	if i < 0 {
		i += int64(n)
	}
	if i < 0 || i >= int64(n) {
		return 0, fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, i, n)
	}
	return int(i), nil
}

// attr looks up name on v: first as a method (value or pointer receiver),
// then as an exported struct field, then as a key of a string-keyed map.
func attr(v any, name string) (any, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: %q on nil", ErrNoAttribute, name)
	}
	rv := reflect.ValueOf(v)
	if m := rv.MethodByName(name); m.IsValid() {
		return m.Interface(), nil
	}
	if rv.Kind() != reflect.Pointer {
		// Methods with pointer receivers need an addressable copy.
		ptr := reflect.New(rv.Type())
		ptr.Elem().Set(rv)
		if m := ptr.MethodByName(name); m.IsValid() {
			return m.Interface(), nil
		}
	}
	base := rv
	for base.Kind() == reflect.Pointer || base.Kind() == reflect.Interface {
		if base.IsNil() {
			return nil, fmt.Errorf("%w: %q on nil %s", ErrNoAttribute, name, rv.Type())
		}
		base = base.Elem()
	}
	switch base.Kind() {
	case reflect.Struct:
		if f, ok := base.Type().FieldByName(name); ok && f.IsExported() {
			fv, err := base.FieldByIndexErr(f.Index)
			if err != nil {
				return nil, fmt.Errorf("%w: %q on %s: %v", ErrNoAttribute, name, rv.Type(), err)
			}
			return fv.Interface(), nil
		}
	case reflect.Map:
		if base.Type().Key().Kind() == reflect.String {
			if val := base.MapIndex(reflect.ValueOf(name).Convert(base.Type().Key())); val.IsValid() {
				return val.Interface(), nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q on %s", ErrNoAttribute, name, rv.Type())
}

// call invokes fn with args. A trailing error result becomes the step's
// failure; the remaining results are returned as nil (none), the value
// (one) or a []any (several).
func call(fn any, args []any) (any, error) {
	if fn == nil {
		return nil, ErrNotCallable
	}
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %T", ErrNotCallable, fn)
	}
	if fv.IsNil() {
		return nil, fmt.Errorf("%w: nil %T", ErrNotCallable, fn)
	}
	in, err := callArgs(fv.Type(), args)
	if err != nil {
		return nil, err
	}
	out := fv.Call(in)
	if n := len(out); n > 0 && fv.Type().Out(n-1) == errorType {
		if e := out[n-1]; !e.IsNil() {
			return nil, e.Interface().(error)
		}
		out = out[:n-1]
	}
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	}
	res := make([]any, len(out))
	for i, o := range out {
		res[i] = o.Interface()
	}
	return res, nil
}

var errorType = reflect.TypeFor[error]()

func callArgs(ft reflect.Type, args []any) ([]reflect.Value, error) {
	fixed := ft.NumIn()
	if ft.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return nil, fmt.Errorf("%w: want at least %d, got %d", ErrArity, fixed, len(args))
		}
	} else if len(args) != fixed {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrArity, fixed, len(args))
	}
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		var pt reflect.Type
		if i < fixed {
			pt = ft.In(i)
		} else {
			pt = ft.In(fixed).Elem()
		}
		v, err := argValue(a, pt)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		in[i] = v
	}
	return in, nil
}

func argValue(a any, pt reflect.Type) (reflect.Value, error) {
	if a == nil {
		switch pt.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
			return reflect.Zero(pt), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: nil for %s", ErrUnsupportedOperand, pt)
	}
	av := reflect.ValueOf(a)
	switch {
	case av.Type().AssignableTo(pt):
		return av, nil
	case isNumberKind(av.Kind()) && isNumberKind(pt.Kind()):
		return av.Convert(pt), nil
	case av.Type().ConvertibleTo(pt) && av.Kind() == pt.Kind():
		return av.Convert(pt), nil
	}
	return reflect.Value{}, fmt.Errorf("%w: %s for %s", ErrUnsupportedOperand, av.Type(), pt)
}

func length(v any) (any, error) {
	if l, ok := v.(Lener); ok {
		return l.Len(), nil
	}
	if v == nil {
		return nil, unsupported(OpLen, v)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return utf8.RuneCountInString(rv.String()), nil
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len(), nil
	}
	return nil, unsupported(OpLen, v)
}

// Truthy reports the truth value of v: false for nil, false, zero numbers,
// empty strings and empty containers, nil pointers and funcs; true
// otherwise.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	if n, ok := toNumber(v); ok {
		return n.float() != 0
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return false
	}
	if l, ok := v.(Lener); ok {
		return l.Len() > 0
	}
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface, reflect.Func:
		return !rv.IsNil()
	}
	return true
}
