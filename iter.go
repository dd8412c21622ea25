package ordered

// Pair is one element of a map: a key together with its associated value.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// --- Ascending iteration ---------------------------------------------------

// Iter iterates a map in ascending key order. It is lazy and restartable:
// obtaining a fresh Iter from the same map restarts at the smallest key,
// and the underlying map is never affected by iteration.
//
// The iterator holds a stack of ancestors whose left spine has been fully
// descended; traversal itself is iterative, never recursive.
type Iter[K, V any] struct {
	stack []*node[K, V]
}

func newIter[K, V any](root *node[K, V]) *Iter[K, V] {
	it := &Iter[K, V]{}
	it.pushLeftSpine(root)
	return it
}

func (it *Iter[K, V]) pushLeftSpine(n *node[K, V]) {
	for ; n != nil; n = n.left {
		it.stack = append(it.stack, n)
	}
}

// Next yields the next pair in ascending key order, with ok=false once the
// iterator is exhausted.
func (it *Iter[K, V]) Next() (Pair[K, V], bool) {
	if len(it.stack) == 0 {
		return Pair[K, V]{}, false
	}
	top := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.pushLeftSpine(top.right)
	return Pair[K, V]{Key: top.key, Value: top.value}, true
}

// Len returns the exact number of pairs the iterator will still yield.
// Computed in O(depth) from the cached subtree sizes.
func (it *Iter[K, V]) Len() int {
	n := 0
	for _, nd := range it.stack {
		n += size(nd.right) + 1
	}
	return n
}

// --- Descending iteration --------------------------------------------------

// RevIter iterates a map in descending key order. It is the exact mirror
// image of Iter: right spines are stacked, left children are descended
// after a pop.
type RevIter[K, V any] struct {
	stack []*node[K, V]
}

func newRevIter[K, V any](root *node[K, V]) *RevIter[K, V] {
	it := &RevIter[K, V]{}
	it.pushRightSpine(root)
	return it
}

func (it *RevIter[K, V]) pushRightSpine(n *node[K, V]) {
	for ; n != nil; n = n.right {
		it.stack = append(it.stack, n)
	}
}

// Next yields the next pair in descending key order, with ok=false once the
// iterator is exhausted.
func (it *RevIter[K, V]) Next() (Pair[K, V], bool) {
	if len(it.stack) == 0 {
		return Pair[K, V]{}, false
	}
	top := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.pushRightSpine(top.left)
	return Pair[K, V]{Key: top.key, Value: top.value}, true
}

// Len returns the exact number of pairs the iterator will still yield.
func (it *RevIter[K, V]) Len() int {
	n := 0
	for _, nd := range it.stack {
		n += size(nd.left) + 1
	}
	return n
}

// --- Bounded, double-ended iteration ---------------------------------------

// Range iterates the sub-sequence of a map delimited by a lower and an
// upper Bound. It is double-ended: Next consumes ascending from the lower
// bound, NextBack descending from the upper bound, and both may be
// interleaved freely. Together they yield every element of the range
// exactly once; the range is exhausted precisely when the two cursors meet.
type Range[K, V any] struct {
	order            Ordering[K]
	min, max         Bound[K]
	fwd, bwd         []*node[K, V]
	fwdLast, bwdLast *K // last key yielded at either end
	done             bool
}

// newRange performs two independent directed descents: one seeding the
// forward stack at the first element satisfying min, one seeding the
// backward stack at the last element satisfying max.
func newRange[K, V any](root *node[K, V], min, max Bound[K], order Ordering[K]) *Range[K, V] {
	r := &Range[K, V]{order: order, min: min, max: max}
	for n := root; n != nil; {
		if r.satisfiesMin(n.key) {
			r.fwd = append(r.fwd, n)
			n = n.left
		} else {
			n = n.right
		}
	}
	for n := root; n != nil; {
		if r.satisfiesMax(n.key) {
			r.bwd = append(r.bwd, n)
			n = n.right
		} else {
			n = n.left
		}
	}
	return r
}

func (r *Range[K, V]) satisfiesMin(key K) bool {
	if r.min.kind == unbounded {
		return true
	}
	return r.min.admitsLower(r.order(key, r.min.key))
}

func (r *Range[K, V]) satisfiesMax(key K) bool {
	if r.max.kind == unbounded {
		return true
	}
	return r.max.admitsUpper(r.order(key, r.max.key))
}

// Next yields the smallest remaining element of the range, with ok=false
// once the upper bound is passed or the backward cursor has been met.
func (r *Range[K, V]) Next() (Pair[K, V], bool) {
	if r.done || len(r.fwd) == 0 {
		return Pair[K, V]{}, false
	}
	top := r.fwd[len(r.fwd)-1]
	r.fwd = r.fwd[:len(r.fwd)-1]
	if !r.satisfiesMax(top.key) ||
		(r.bwdLast != nil && r.order(top.key, *r.bwdLast) >= 0) {
		r.done = true
		return Pair[K, V]{}, false
	}
	for n := top.right; n != nil; n = n.left {
		r.fwd = append(r.fwd, n)
	}
	key := top.key
	r.fwdLast = &key
	return Pair[K, V]{Key: top.key, Value: top.value}, true
}

// NextBack yields the largest remaining element of the range, with ok=false
// once the lower bound is passed or the forward cursor has been met.
func (r *Range[K, V]) NextBack() (Pair[K, V], bool) {
	if r.done || len(r.bwd) == 0 {
		return Pair[K, V]{}, false
	}
	top := r.bwd[len(r.bwd)-1]
	r.bwd = r.bwd[:len(r.bwd)-1]
	if !r.satisfiesMin(top.key) ||
		(r.fwdLast != nil && r.order(top.key, *r.fwdLast) <= 0) {
		r.done = true
		return Pair[K, V]{}, false
	}
	for n := top.left; n != nil; n = n.right {
		r.bwd = append(r.bwd, n)
	}
	key := top.key
	r.bwdLast = &key
	return Pair[K, V]{Key: top.key, Value: top.value}, true
}

// --- Projections -----------------------------------------------------------

// pairSource is any cursor yielding pairs with an exact remaining count.
type pairSource[K, V any] interface {
	Next() (Pair[K, V], bool)
	Len() int
}

// Keys projects the key out of a pair-yielding cursor, forwarding the size
// hint unchanged.
type Keys[K, V any] struct {
	src pairSource[K, V]
}

func (it *Keys[K, V]) Next() (K, bool) {
	pair, ok := it.src.Next()
	return pair.Key, ok
}

func (it *Keys[K, V]) Len() int {
	return it.src.Len()
}

// Values projects the value out of a pair-yielding cursor, forwarding the
// size hint unchanged.
type Values[K, V any] struct {
	src pairSource[K, V]
}

func (it *Values[K, V]) Next() (V, bool) {
	pair, ok := it.src.Next()
	return pair.Value, ok
}

func (it *Values[K, V]) Len() int {
	return it.src.Len()
}
