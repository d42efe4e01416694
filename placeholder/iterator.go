package placeholder

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"
)

// Iterator is the value produced by an iteration step. It walks a snapshot
// of the source taken when the step ran.
//
// An Iterator is a runtime value, not part of an expression: each
// evaluation builds its own, so sharing an [Expr] stays safe. A single
// Iterator is not safe for concurrent use.
type Iterator struct {
	items []any
	pos   int
}

// NewIterator returns an iterator over items.
func NewIterator(items ...any) *Iterator {
	cp := make([]any, len(items))
	copy(cp, items)
	return &Iterator{items: cp}
}

// Next returns the next item and true, or nil and false when exhausted.
func (it *Iterator) Next() (any, bool) {
	if it.pos >= len(it.items) {
		return nil, false
	}
	v := it.items[it.pos]
	it.pos++
	return v, true
}

// Remaining returns the number of items not yet returned by Next.
func (it *Iterator) Remaining() int { return len(it.items) - it.pos }

// Seq returns the remaining items as a range-over-func sequence. Ranging
// consumes them.
func (it *Iterator) Seq() iter.Seq[any] {
	return func(yield func(any) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func (it *Iterator) rest() []any { return it.items[it.pos:] }

func (it *Iterator) String() string {
	return fmt.Sprintf("iterator(%d remaining)", it.Remaining())
}

// newIterator snapshots v: strings yield one-rune strings, slices and
// arrays their elements, maps their keys in ascending order.
func newIterator(v any, reversed bool) (any, error) {
	items, err := iterItems(v, reversed)
	if err != nil {
		return nil, err
	}
	if reversed {
		slices.Reverse(items)
	}
	return &Iterator{items: items}, nil
}

func iterItems(v any, reversed bool) ([]any, error) {
	op := OpIter
	if reversed {
		op = OpReversed
	}
	switch src := v.(type) {
	case nil:
		return nil, unsupported(op, v)
	case *Iterator:
		return slices.Clone(src.rest()), nil
	case iter.Seq[any]:
		return slices.Collect(src), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		runes := []rune(rv.String())
		items := make([]any, len(runes))
		for i, r := range runes {
			items[i] = as(string(r), rv.Type())
		}
		return items, nil
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return items, nil
	case reflect.Map:
		keys := make([]any, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.Interface())
		}
		slices.SortFunc(keys, func(a, b any) int {
			if c, ok := order(a, b); ok && c != unordered {
				return c
			}
			return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
		})
		return keys, nil
	}
	return nil, unsupported(op, v)
}

func next(v any) (any, error) {
	it, ok := v.(*Iterator)
	if !ok {
		return nil, unsupported(OpNext, v)
	}
	item, ok := it.Next()
	if !ok {
		return nil, ErrStopIteration
	}
	return item, nil
}
