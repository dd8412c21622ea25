package ordered

/*
Remarks:
--------

- The tree is weight-balanced: siblings may differ in subtree size by at
  most a factor of weightRatio. Balance is restored with single or double
  rotations, selected by comparing grandchild sizes against rotationRatio.
  The scheme and its constants (Δ=3, Γ=2) follow Adams' "Implementing Sets
  Efficiently in a Functional Language".

- A nil *node is the empty tree. Nodes are shared freely between tree
  incarnations and are never mutated after construction; every construction
  runs through newNode or the balancing constructors, which compute the
  cached subtree size.

- All functions in this file are structural recursion over the root-to-edit
  path; they allocate O(log n) new nodes and leave everything off that path
  shared with the previous incarnation.
*/

const (
	weightRatio   = 3 // maximum weight ratio between sibling subtrees
	rotationRatio = 2 // selects single vs. double rotation
)

// node is one immutable cell of a weight-balanced binary search tree.
type node[K, V any] struct {
	size        int // element count of the subtree rooted here, cached
	key         K
	value       V
	left, right *node[K, V]
}

func size[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.size
}

func newNode[K, V any](key K, value V, left, right *node[K, V]) *node[K, V] {
	return &node[K, V]{
		size:  size(left) + size(right) + 1,
		key:   key,
		value: value,
		left:  left,
		right: right,
	}
}

// isBalanced reports whether a subtree of size b is acceptable as the
// sibling of one of size a, i.e. not too heavy relative to it.
func isBalanced(a, b int) bool {
	return weightRatio*(a+1) >= b+1
}

// isSingle decides the rotation kind for an unbalanced node: true selects a
// single rotation, false a double rotation through the inner grandchild.
func isSingle(a, b int) bool {
	return a+1 < rotationRatio*(b+1)
}

// findExact descends from n by repeatedly probing the stored keys. probe
// compares the sought representation against its argument, so lookups work
// with any representation that is ordered consistently with the stored
// keys. Returns nil if no stored key probes as equal.
func findExact[K, V any](n *node[K, V], probe func(K) int) *node[K, V] {
	for n != nil {
		switch cmp := probe(n.key); {
		case cmp < 0:
			n = n.left
		case cmp > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// insertNode returns the root of a new incarnation of n with key present.
// If an equivalent key is already stored, the new node carries the new key
// as well as the new value (last write wins, including key identity) and
// keeps both children shared.
func insertNode[K, V any](n *node[K, V], key K, value V, order Ordering[K]) *node[K, V] {
	if n == nil {
		return &node[K, V]{size: 1, key: key, value: value}
	}
	switch cmp := order(key, n.key); {
	case cmp < 0:
		return balanceRight(n.key, n.value, insertNode(n.left, key, value, order), n.right)
	case cmp > 0:
		return balanceLeft(n.key, n.value, n.left, insertNode(n.right, key, value, order))
	}
	return &node[K, V]{size: n.size, key: key, value: value, left: n.left, right: n.right}
}

// deleteMin strips the leftmost node from the subtree rooted at n, which
// must not be nil. Every ancestor on the way back up is rebalanced.
func deleteMin[K, V any](n *node[K, V]) (rest, removed *node[K, V]) {
	if n.left == nil {
		return n.right, n
	}
	rest, removed = deleteMin(n.left)
	return balanceLeft(n.key, n.value, rest, n.right), removed
}

// deleteMax is the mirror image of deleteMin.
func deleteMax[K, V any](n *node[K, V]) (rest, removed *node[K, V]) {
	if n.right == nil {
		return n.left, n
	}
	rest, removed = deleteMax(n.right)
	return balanceRight(n.key, n.value, n.left, rest), removed
}

// removeNode locates the node probing as equal and glues its children
// together. removed == nil signals that no stored key matched; the input
// tree is then returned unchanged.
func removeNode[K, V any](n *node[K, V], probe func(K) int) (rest, removed *node[K, V]) {
	if n == nil {
		return nil, nil
	}
	switch cmp := probe(n.key); {
	case cmp < 0:
		rest, removed = removeNode(n.left, probe)
		if removed == nil {
			return n, nil
		}
		return balanceLeft(n.key, n.value, rest, n.right), removed
	case cmp > 0:
		rest, removed = removeNode(n.right, probe)
		if removed == nil {
			return n, nil
		}
		return balanceRight(n.key, n.value, n.left, rest), removed
	}
	return glue(n.left, n.right), n
}

// glue merges two subtrees into one, promoting the boundary element of the
// heavier side. Precondition: every key in left precedes every key in
// right. At the only call site this holds because left and right were the
// children of a single BST node.
func glue[K, V any](left, right *node[K, V]) *node[K, V] {
	switch {
	case left == nil:
		return right
	case right == nil:
		return left
	}
	if left.size > right.size {
		rest, boundary := deleteMax(left)
		return balanceLeft(boundary.key, boundary.value, rest, right)
	}
	rest, boundary := deleteMin(right)
	return balanceRight(boundary.key, boundary.value, left, rest)
}

// balanceLeft rebuilds a node whose left subtree shrank or whose right
// subtree grew by one element, restoring the weight invariant with at most
// one rotation towards the left. The untouched subtrees stay shared.
func balanceLeft[K, V any](key K, value V, left, right *node[K, V]) *node[K, V] {
	if right == nil {
		return newNode(key, value, left, nil)
	}
	if isBalanced(size(left), right.size) {
		return newNode(key, value, left, right)
	}
	if isSingle(size(right.left), size(right.right)) {
		// single rotation: the right child becomes the new root
		return newNode(right.key, right.value,
			newNode(key, value, left, right.left),
			right.right)
	}
	// double rotation: the inner grandchild becomes the new root
	rl := right.left
	assertThat(rl != nil, "weight invariant broken: inner grandchild missing in double rotation")
	return newNode(rl.key, rl.value,
		newNode(key, value, left, rl.left),
		newNode(right.key, right.value, rl.right, right.right))
}

// balanceRight is the exact mirror image of balanceLeft, for a node whose
// left subtree grew or whose right subtree shrank.
func balanceRight[K, V any](key K, value V, left, right *node[K, V]) *node[K, V] {
	if left == nil {
		return newNode(key, value, nil, right)
	}
	if isBalanced(size(right), left.size) {
		return newNode(key, value, left, right)
	}
	if isSingle(size(left.right), size(left.left)) {
		// single rotation: the left child becomes the new root
		return newNode(left.key, left.value,
			left.left,
			newNode(key, value, left.right, right))
	}
	// double rotation: the inner grandchild becomes the new root
	lr := left.right
	assertThat(lr != nil, "weight invariant broken: inner grandchild missing in double rotation")
	return newNode(lr.key, lr.value,
		newNode(left.key, left.value, left.left, lr.left),
		newNode(key, value, lr.right, right))
}
