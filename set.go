package ordered

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Set is a persistent (immutable) ordered set. Every mutating operation
// returns a new incarnation of the set and leaves the receiver unchanged;
// both incarnations share all untouched nodes.
//
// Use it like this:
//
//	s := ordered.SetFrom(3, 1, 2)
//	s2 := s.With(4)
//	s.Contains(4)    // false — s is unchanged
//	s2.Contains(4)   // true
//
// Like maps, sets carry an injected total order and have to be created with
// NewSet, NewSetOf or SetFrom.
type Set[K any] struct {
	root  *node[K, struct{}]
	order Ordering[K]
}

// NewSet creates an empty set over the natural order of K.
func NewSet[K constraints.Ordered]() Set[K] {
	return NewSetOf(Natural[K])
}

// NewSetOf creates an empty set over an explicitly supplied total order.
func NewSetOf[K any](order Ordering[K]) Set[K] {
	assertThat(order != nil, "set needs a total order over its elements")
	return Set[K]{order: order}
}

// SetFrom creates a set over the natural order of K, holding the given
// elements.
func SetFrom[K constraints.Ordered](keys ...K) Set[K] {
	s := NewSet[K]()
	for _, key := range keys {
		s = s.With(key)
	}
	return s
}

func (s Set[K]) ordering() Ordering[K] {
	assertThat(s.order != nil, "set has no total order; create sets with NewSet or NewSetOf")
	return s.order
}

// --- Queries ---------------------------------------------------------------

// Len returns the number of elements in the set, in O(1).
func (s Set[K]) Len() int {
	return size(s.root)
}

// IsEmpty reports whether the set holds no elements.
func (s Set[K]) IsEmpty() bool {
	return s.root == nil
}

// Find returns the stored element equivalent to key under the set's order.
// The stored element may differ in identity from the probe, e.g. for orders
// that compare only part of a composite element.
func (s Set[K]) Find(key K) (K, bool) {
	order := s.ordering()
	if n := findExact(s.root, func(stored K) int { return order(key, stored) }); n != nil {
		return n.key, true
	}
	var none K
	return none, false
}

// Contains reports whether an element equivalent to key is present.
func (s Set[K]) Contains(key K) bool {
	_, found := s.Find(key)
	return found
}

// --- Mutators --------------------------------------------------------------

// With returns a copy of the set with key inserted. If an equivalent
// element is already present it is replaced by key — last write wins,
// including element identity.
func (s Set[K]) With(key K) Set[K] {
	order := s.ordering()
	tracer().Debugf("set.With: insert element=%v", key)
	return Set[K]{root: insertNode(s.root, key, struct{}{}, order), order: order}
}

// Without returns a copy of the set with key deleted, if present, together
// with the removed element. If key is not found, the set is returned
// unchanged and ok=false.
func (s Set[K]) Without(key K) (Set[K], K, bool) {
	order := s.ordering()
	rest, removed := removeNode(s.root, func(stored K) int { return order(key, stored) })
	if removed == nil {
		var none K
		return s, none, false
	}
	tracer().Debugf("set.Without: removed element=%v", removed.key)
	return Set[K]{root: rest, order: order}, removed.key, true
}

// WithoutMin returns a copy of the set with the smallest element deleted,
// together with that element. ok=false only for an empty set.
func (s Set[K]) WithoutMin() (Set[K], K, bool) {
	if s.root == nil {
		var none K
		return s, none, false
	}
	rest, removed := deleteMin(s.root)
	return Set[K]{root: rest, order: s.order}, removed.key, true
}

// WithoutMax returns a copy of the set with the largest element deleted,
// together with that element. ok=false only for an empty set.
func (s Set[K]) WithoutMax() (Set[K], K, bool) {
	if s.root == nil {
		var none K
		return s, none, false
	}
	rest, removed := deleteMax(s.root)
	return Set[K]{root: rest, order: s.order}, removed.key, true
}

// --- Iteration -------------------------------------------------------------

// SetIter iterates a set in ascending order.
type SetIter[K any] struct {
	src *Iter[K, struct{}]
}

// Next yields the next element in ascending order, with ok=false once the
// iterator is exhausted.
func (it *SetIter[K]) Next() (K, bool) {
	pair, ok := it.src.Next()
	return pair.Key, ok
}

// Len returns the exact number of elements the iterator will still yield.
func (it *SetIter[K]) Len() int {
	return it.src.Len()
}

// SetRevIter iterates a set in descending order.
type SetRevIter[K any] struct {
	src *RevIter[K, struct{}]
}

// Next yields the next element in descending order, with ok=false once the
// iterator is exhausted.
func (it *SetRevIter[K]) Next() (K, bool) {
	pair, ok := it.src.Next()
	return pair.Key, ok
}

// Len returns the exact number of elements the iterator will still yield.
func (it *SetRevIter[K]) Len() int {
	return it.src.Len()
}

// SetRange iterates the elements of a set delimited by two Bounds,
// double-ended like Range.
type SetRange[K any] struct {
	src *Range[K, struct{}]
}

// Next yields the smallest remaining element of the range.
func (it *SetRange[K]) Next() (K, bool) {
	pair, ok := it.src.Next()
	return pair.Key, ok
}

// NextBack yields the largest remaining element of the range.
func (it *SetRange[K]) NextBack() (K, bool) {
	pair, ok := it.src.NextBack()
	return pair.Key, ok
}

// Iter iterates the set in ascending order.
func (s Set[K]) Iter() *SetIter[K] {
	return &SetIter[K]{src: newIter(s.root)}
}

// RevIter iterates the set in descending order.
func (s Set[K]) RevIter() *SetRevIter[K] {
	return &SetRevIter[K]{src: newRevIter(s.root)}
}

// Range iterates the elements delimited by min and max, double-ended.
func (s Set[K]) Range(min, max Bound[K]) *SetRange[K] {
	return &SetRange[K]{src: newRange(s.root, min, max, s.ordering())}
}

// --- Comparison and formatting ---------------------------------------------

// Equal reports whether s and other hold equivalent elements. Equality is
// defined over the ascending iteration sequence, never over physical node
// structure.
func (s Set[K]) Equal(other Set[K]) bool {
	if s.Len() != other.Len() {
		return false
	}
	order := s.ordering()
	a, b := s.Iter(), other.Iter()
	for {
		ka, ok := a.Next()
		if !ok {
			return true
		}
		kb, _ := b.Next()
		if order(ka, kb) != 0 {
			return false
		}
	}
}

// Compare orders s and other lexicographically over their ascending
// iteration sequences. A set that is a strict prefix of the other sorts
// first.
func (s Set[K]) Compare(other Set[K]) int {
	order := s.ordering()
	a, b := s.Iter(), other.Iter()
	for {
		ka, oka := a.Next()
		kb, okb := b.Next()
		switch {
		case !oka && !okb:
			return 0
		case !oka:
			return -1
		case !okb:
			return +1
		}
		if c := order(ka, kb); c != 0 {
			return c
		}
	}
}

// String renders the set as "{e, …}" in ascending order.
func (s Set[K]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	it := s.Iter()
	for first := true; ; first = false {
		key, ok := it.Next()
		if !ok {
			break
		}
		if !first {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", key)
	}
	sb.WriteByte('}')
	return sb.String()
}
