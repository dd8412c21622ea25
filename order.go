package ordered

import "golang.org/x/exp/constraints"

// Ordering is a total order over K, injected into maps and sets at creation
// time. It returns a negative number if a sorts before b, zero if both are
// equivalent, and a positive number if a sorts after b.
//
// An Ordering must be reflexive, antisymmetric, transitive and total; the
// collections do not (and cannot) verify this. Two collections may only be
// combined or compared when built over the same Ordering.
type Ordering[K any] func(a, b K) int

// Natural is the default Ordering for types with a built-in order.
func Natural[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	}
	return 0
}
