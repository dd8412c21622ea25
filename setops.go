package ordered

/*
Set algebra is lazy: each operation wraps two ascending cursors behind a
one-element lookahead and merges them on demand. No intermediate collection
is built; a full drain costs O(n+m) comparisons, each cursor advancing
monotonically with no backtracking. Since the operands are trees, the
inputs are duplicate-free, and so are the merged results.

Both operands must be built over the same total order; the merge uses the
receiver's.
*/

// peekIter is an ascending tree cursor with one element of lookahead.
type peekIter[K any] struct {
	src  *Iter[K, struct{}]
	head K
	ok   bool
}

func newPeekIter[K any](root *node[K, struct{}]) *peekIter[K] {
	p := &peekIter[K]{src: newIter(root)}
	p.advance()
	return p
}

func (p *peekIter[K]) advance() {
	pair, ok := p.src.Next()
	p.head, p.ok = pair.Key, ok
}

// Intersection lazily iterates the elements present in both sets, in
// ascending order.
type Intersection[K any] struct {
	a, b  *peekIter[K]
	order Ordering[K]
}

// Intersection iterates the elements present in both s and other.
func (s Set[K]) Intersection(other Set[K]) *Intersection[K] {
	return &Intersection[K]{
		a:     newPeekIter(s.root),
		b:     newPeekIter(other.root),
		order: s.ordering(),
	}
}

func (it *Intersection[K]) Next() (K, bool) {
	for it.a.ok && it.b.ok {
		switch cmp := it.order(it.a.head, it.b.head); {
		case cmp < 0:
			it.a.advance()
		case cmp > 0:
			it.b.advance()
		default:
			key := it.a.head
			it.a.advance()
			it.b.advance()
			return key, true
		}
	}
	var none K
	return none, false
}

// Union lazily iterates the elements present in either set, in ascending
// order. Elements present in both are yielded once, represented by the
// receiver's element.
type Union[K any] struct {
	a, b  *peekIter[K]
	order Ordering[K]
}

// Union iterates the elements present in s, other, or both.
func (s Set[K]) Union(other Set[K]) *Union[K] {
	return &Union[K]{
		a:     newPeekIter(s.root),
		b:     newPeekIter(other.root),
		order: s.ordering(),
	}
}

func (it *Union[K]) Next() (K, bool) {
	switch {
	case !it.a.ok && !it.b.ok:
		var none K
		return none, false
	case !it.b.ok:
		key := it.a.head
		it.a.advance()
		return key, true
	case !it.a.ok:
		key := it.b.head
		it.b.advance()
		return key, true
	}
	switch cmp := it.order(it.a.head, it.b.head); {
	case cmp < 0:
		key := it.a.head
		it.a.advance()
		return key, true
	case cmp > 0:
		key := it.b.head
		it.b.advance()
		return key, true
	}
	key := it.a.head
	it.a.advance()
	it.b.advance()
	return key, true
}

// Difference lazily iterates the elements present in the receiver but not
// in the other set, in ascending order.
type Difference[K any] struct {
	a, b  *peekIter[K]
	order Ordering[K]
}

// Difference iterates the elements present in s but not in other.
func (s Set[K]) Difference(other Set[K]) *Difference[K] {
	return &Difference[K]{
		a:     newPeekIter(s.root),
		b:     newPeekIter(other.root),
		order: s.ordering(),
	}
}

func (it *Difference[K]) Next() (K, bool) {
	for it.a.ok {
		if !it.b.ok {
			key := it.a.head
			it.a.advance()
			return key, true
		}
		switch cmp := it.order(it.a.head, it.b.head); {
		case cmp < 0:
			key := it.a.head
			it.a.advance()
			return key, true
		case cmp > 0:
			it.b.advance()
		default:
			it.a.advance()
			it.b.advance()
		}
	}
	var none K
	return none, false
}

// SymmetricDifference lazily iterates the elements present in exactly one
// of the two sets, in ascending order.
type SymmetricDifference[K any] struct {
	a, b  *peekIter[K]
	order Ordering[K]
}

// SymmetricDifference iterates the elements present in s or in other, but
// not in both.
func (s Set[K]) SymmetricDifference(other Set[K]) *SymmetricDifference[K] {
	return &SymmetricDifference[K]{
		a:     newPeekIter(s.root),
		b:     newPeekIter(other.root),
		order: s.ordering(),
	}
}

func (it *SymmetricDifference[K]) Next() (K, bool) {
	for it.a.ok || it.b.ok {
		switch {
		case !it.b.ok:
			key := it.a.head
			it.a.advance()
			return key, true
		case !it.a.ok:
			key := it.b.head
			it.b.advance()
			return key, true
		}
		switch cmp := it.order(it.a.head, it.b.head); {
		case cmp < 0:
			key := it.a.head
			it.a.advance()
			return key, true
		case cmp > 0:
			key := it.b.head
			it.b.advance()
			return key, true
		default:
			it.a.advance()
			it.b.advance()
		}
	}
	var none K
	return none, false
}
