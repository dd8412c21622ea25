package ordered

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Map is a persistent (immutable) ordered map. Every mutating operation
// returns a new incarnation of the map and leaves the receiver unchanged;
// both incarnations share all untouched nodes.
//
// Use it like this:
//
//	m := ordered.NewMap[int, string]()
//	m = m.With(42, "Galaxy")
//	value, found := m.Find(42)   // returns "Galaxy"
//
// Maps carry an injected total order over their keys and therefore have to
// be created with NewMap, NewMapOf or MapFrom; a zero-value Map panics on
// the first operation that needs the comparator.
type Map[K, V any] struct {
	root  *node[K, V]
	order Ordering[K]
}

// NewMap creates an empty map over the natural order of K.
func NewMap[K constraints.Ordered, V any]() Map[K, V] {
	return NewMapOf[K, V](Natural[K])
}

// NewMapOf creates an empty map over an explicitly supplied total order.
func NewMapOf[K, V any](order Ordering[K]) Map[K, V] {
	assertThat(order != nil, "map needs a total order over its keys")
	return Map[K, V]{order: order}
}

// MapFrom creates a map over the natural order of K, holding the given
// pairs. Pairs with equivalent keys overwrite left to right.
func MapFrom[K constraints.Ordered, V any](pairs ...Pair[K, V]) Map[K, V] {
	m := NewMap[K, V]()
	for _, pair := range pairs {
		m = m.With(pair.Key, pair.Value)
	}
	return m
}

func (m Map[K, V]) ordering() Ordering[K] {
	assertThat(m.order != nil, "map has no total order; create maps with NewMap or NewMapOf")
	return m.order
}

// --- Queries ---------------------------------------------------------------

// Len returns the number of entries in the map, in O(1).
func (m Map[K, V]) Len() int {
	return size(m.root)
}

// IsEmpty reports whether the map holds no entries.
func (m Map[K, V]) IsEmpty() bool {
	return m.root == nil
}

// Find locates a key in the map, if present, and returns the value
// associated with it. If key is not found, the zero value for type V will
// be returned, together with found=false.
func (m Map[K, V]) Find(key K) (V, bool) {
	order := m.ordering()
	if n := findExact(m.root, func(stored K) int { return order(key, stored) }); n != nil {
		return n.value, true
	}
	var none V
	return none, false
}

// FindKey returns the stored key equivalent to key under the map's order.
// The stored key may differ in identity from the probe, e.g. for orders
// that compare only part of a composite key.
func (m Map[K, V]) FindKey(key K) (K, bool) {
	order := m.ordering()
	if n := findExact(m.root, func(stored K) int { return order(key, stored) }); n != nil {
		return n.key, true
	}
	var none K
	return none, false
}

// Contains reports whether a key equivalent to key is present.
func (m Map[K, V]) Contains(key K) bool {
	_, found := m.Find(key)
	return found
}

// At returns the value associated with key and panics if key is absent.
// Callers assert the key's existence by using At; Find is the
// non-panicking variant.
func (m Map[K, V]) At(key K) V {
	value, found := m.Find(key)
	assertThat(found, "no entry found for key %v", key)
	return value
}

// --- Mutators --------------------------------------------------------------

// With returns a copy of the map with key inserted, associated with value.
// If an entry for an equivalent key is already present, the entry is
// replaced — last write wins, including the key itself: the new incarnation
// stores the key passed here, not the previously stored one.
func (m Map[K, V]) With(key K, value V) Map[K, V] {
	order := m.ordering()
	tracer().Debugf("map.With: insert key=%v", key)
	return Map[K, V]{root: insertNode(m.root, key, value, order), order: order}
}

// WithIfAbsent returns a copy of the map with key inserted, unless an
// equivalent key is already present; then the map is returned unchanged
// together with ok=false.
func (m Map[K, V]) WithIfAbsent(key K, value V) (Map[K, V], bool) {
	if m.Contains(key) {
		return m, false
	}
	return m.With(key, value), true
}

// Update returns a copy of the map with the value for key replaced by
// f applied to the stored value. If key is absent, the map is returned
// unchanged and f is never called.
func (m Map[K, V]) Update(key K, f func(V) V) Map[K, V] {
	stored, found := m.Find(key)
	if !found {
		return m
	}
	return m.With(key, f(stored))
}

// Upsert returns a copy of the map with key associated with value if key
// was absent, and otherwise with the stored value replaced by f applied
// to it.
func (m Map[K, V]) Upsert(key K, value V, f func(V) V) Map[K, V] {
	if stored, found := m.Find(key); found {
		return m.With(key, f(stored))
	}
	return m.With(key, value)
}

// Without returns a copy of the map with key deleted, if present, together
// with the removed entry. If key is not found, the map is returned
// unchanged and ok=false.
func (m Map[K, V]) Without(key K) (Map[K, V], Pair[K, V], bool) {
	order := m.ordering()
	rest, removed := removeNode(m.root, func(stored K) int { return order(key, stored) })
	if removed == nil {
		return m, Pair[K, V]{}, false
	}
	tracer().Debugf("map.Without: removed key=%v", removed.key)
	return Map[K, V]{root: rest, order: order},
		Pair[K, V]{Key: removed.key, Value: removed.value}, true
}

// WithoutMin returns a copy of the map with the smallest entry deleted,
// together with that entry. ok=false only for an empty map.
func (m Map[K, V]) WithoutMin() (Map[K, V], Pair[K, V], bool) {
	if m.root == nil {
		return m, Pair[K, V]{}, false
	}
	rest, removed := deleteMin(m.root)
	return Map[K, V]{root: rest, order: m.order},
		Pair[K, V]{Key: removed.key, Value: removed.value}, true
}

// WithoutMax returns a copy of the map with the largest entry deleted,
// together with that entry. ok=false only for an empty map.
func (m Map[K, V]) WithoutMax() (Map[K, V], Pair[K, V], bool) {
	if m.root == nil {
		return m, Pair[K, V]{}, false
	}
	rest, removed := deleteMax(m.root)
	return Map[K, V]{root: rest, order: m.order},
		Pair[K, V]{Key: removed.key, Value: removed.value}, true
}

// --- Iteration -------------------------------------------------------------

// Iter iterates the map in ascending key order.
func (m Map[K, V]) Iter() *Iter[K, V] {
	return newIter(m.root)
}

// RevIter iterates the map in descending key order.
func (m Map[K, V]) RevIter() *RevIter[K, V] {
	return newRevIter(m.root)
}

// Range iterates the entries delimited by min and max, double-ended.
func (m Map[K, V]) Range(min, max Bound[K]) *Range[K, V] {
	return newRange(m.root, min, max, m.ordering())
}

// Keys iterates the keys of the map in ascending order.
func (m Map[K, V]) Keys() *Keys[K, V] {
	return &Keys[K, V]{src: m.Iter()}
}

// Values iterates the values of the map in ascending key order.
func (m Map[K, V]) Values() *Values[K, V] {
	return &Values[K, V]{src: m.Iter()}
}

// --- Comparison and formatting ---------------------------------------------

// Equal reports whether m and other hold equivalent keys associated with
// equal values, with eq deciding value equality. Equality is defined over
// the ascending iteration sequence, never over physical node structure:
// maps with identical content but different insertion histories compare
// equal.
func (m Map[K, V]) Equal(other Map[K, V], eq func(a, b V) bool) bool {
	if m.Len() != other.Len() {
		return false
	}
	order := m.ordering()
	a, b := m.Iter(), other.Iter()
	for {
		pa, ok := a.Next()
		if !ok {
			return true
		}
		pb, _ := b.Next()
		if order(pa.Key, pb.Key) != 0 || !eq(pa.Value, pb.Value) {
			return false
		}
	}
}

// Compare orders m and other lexicographically over their ascending
// iteration sequences, with cmp ordering values. A map that is a strict
// prefix of the other sorts first.
func (m Map[K, V]) Compare(other Map[K, V], cmp func(a, b V) int) int {
	order := m.ordering()
	a, b := m.Iter(), other.Iter()
	for {
		pa, oka := a.Next()
		pb, okb := b.Next()
		switch {
		case !oka && !okb:
			return 0
		case !oka:
			return -1
		case !okb:
			return +1
		}
		if c := order(pa.Key, pb.Key); c != 0 {
			return c
		}
		if c := cmp(pa.Value, pb.Value); c != 0 {
			return c
		}
	}
}

// String renders the map as "{k: v, …}" in ascending key order.
func (m Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	it := m.Iter()
	for first := true; ; first = false {
		pair, ok := it.Next()
		if !ok {
			break
		}
		if !first {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v: %v", pair.Key, pair.Value)
	}
	sb.WriteByte('}')
	return sb.String()
}
