package collections

// Grouping and association build an insertion-ordered [Dict] from a list.
// For every Associate* function a later item that produces an existing key
// replaces the earlier value but keeps the key's position.

// GroupBy groups items by the key extracted by fn. Each group keeps the
// items in list order.
//
//	byDept := collections.GroupBy(employees,
//	    func(e Employee) string { return e.Department })
func GroupBy[T any, K comparable](l *List[T], fn func(T) K) *Dict[K, *List[T]] {
	return groupBy(l.items, func(item T) (K, bool) { return fn(item), true })
}

// GroupByNotNil is [GroupBy] over the non-nil items; items whose key is nil
// are dropped too. fn is called once per non-nil item.
func GroupByNotNil[T any, K comparable](l *List[T], fn func(T) K) *Dict[K, *List[T]] {
	return groupBy(l.items, func(item T) (K, bool) {
		var k K
		if isNil(item) {
			return k, false
		}
		k = fn(item)
		return k, !isNil(k)
	})
}

// groupBy groups the items whose key reports ok.
func groupBy[T any, K comparable](items []T, key func(T) (K, bool)) *Dict[K, *List[T]] {
	var order []K
	groups := make(map[K][]T)
	for _, item := range items {
		k, ok := key(item)
		if !ok {
			continue
		}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], item)
	}
	out := newDict[K, *List[T]](len(order))
	for _, k := range order {
		out.set(k, wrap(groups[k]))
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Associate: item → (key, value)
// ─────────────────────────────────────────────────────────────────────────────

// Associate builds a Dict from the pair fn returns for each item.
//
//	ages := collections.Associate(people,
//	    func(p Person) collections.Pair[string, int] { return collections.To(p.Name, p.Age) })
func Associate[T any, K comparable, V any](l *List[T], fn func(T) Pair[K, V]) *Dict[K, V] {
	return AssociateIndexed(l, func(_ int, item T) Pair[K, V] { return fn(item) })
}

// AssociateNotNil is [Associate] over the non-nil items; pairs with a nil
// value are dropped.
func AssociateNotNil[T any, K comparable, V any](l *List[T], fn func(T) Pair[K, V]) *Dict[K, V] {
	return AssociateIndexedNotNil(l, func(_ int, item T) Pair[K, V] { return fn(item) })
}

// AssociateIndexed is [Associate] with the item's index passed first.
func AssociateIndexed[T any, K comparable, V any](l *List[T], fn func(int, T) Pair[K, V]) *Dict[K, V] {
	out := newDict[K, V](len(l.items))
	for i, item := range l.items {
		e := fn(i, item)
		out.set(e.First, e.Second)
	}
	return out
}

// AssociateIndexedNotNil is [AssociateNotNil] with the item's index passed
// first. Indexes are those of the source list.
func AssociateIndexedNotNil[T any, K comparable, V any](l *List[T], fn func(int, T) Pair[K, V]) *Dict[K, V] {
	out := newDict[K, V](len(l.items))
	for i, item := range l.items {
		if isNil(item) {
			continue
		}
		if e := fn(i, item); !isNil(e.First) && !isNil(e.Second) {
			out.set(e.First, e.Second)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// AssociateBy: key(item) → item
// ─────────────────────────────────────────────────────────────────────────────

// AssociateBy indexes items by the key fn extracts.
//
//	byID := collections.AssociateBy(users, func(u User) int { return u.ID })
func AssociateBy[T any, K comparable](l *List[T], fn func(T) K) *Dict[K, T] {
	return AssociateIndexed(l, func(_ int, item T) Pair[K, T] { return To(fn(item), item) })
}

// AssociateByNotNil is [AssociateBy] over the non-nil items, dropping nil
// keys.
func AssociateByNotNil[T any, K comparable](l *List[T], fn func(T) K) *Dict[K, T] {
	return AssociateIndexedNotNil(l, func(_ int, item T) Pair[K, T] { return To(fn(item), item) })
}

// AssociateByIndexed is [AssociateBy] with the item's index passed first.
func AssociateByIndexed[T any, K comparable](l *List[T], fn func(int, T) K) *Dict[K, T] {
	return AssociateIndexed(l, func(i int, item T) Pair[K, T] { return To(fn(i, item), item) })
}

// ─────────────────────────────────────────────────────────────────────────────
// AssociateWith: item → value(item)
// ─────────────────────────────────────────────────────────────────────────────

// AssociateWith maps each distinct item to the value fn computes for it.
//
//	lengths := collections.AssociateWith(words, func(w string) int { return len(w) })
func AssociateWith[T comparable, V any](l *List[T], fn func(T) V) *Dict[T, V] {
	return AssociateIndexed(l, func(_ int, item T) Pair[T, V] { return To(item, fn(item)) })
}

// AssociateWithNotNil is [AssociateWith] over the non-nil items, dropping
// nil values.
func AssociateWithNotNil[T comparable, V any](l *List[T], fn func(T) V) *Dict[T, V] {
	return AssociateIndexedNotNil(l, func(_ int, item T) Pair[T, V] { return To(item, fn(item)) })
}

// AssociateWithIndexed is [AssociateWith] with the item's index passed first.
func AssociateWithIndexed[T comparable, V any](l *List[T], fn func(int, T) V) *Dict[T, V] {
	return AssociateIndexed(l, func(i int, item T) Pair[T, V] { return To(item, fn(i, item)) })
}

// AssociateWithIndexedNotNil is [AssociateWithNotNil] with the item's index
// passed first.
func AssociateWithIndexedNotNil[T comparable, V any](l *List[T], fn func(int, T) V) *Dict[T, V] {
	return AssociateIndexedNotNil(l, func(i int, item T) Pair[T, V] { return To(item, fn(i, item)) })
}
