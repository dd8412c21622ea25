package ordered

// Bound is an endpoint of a range query. The zero value is an unbounded
// endpoint, i.e. Range(Bound[K]{}, Bound[K]{}) iterates the whole
// collection.
type Bound[K any] struct {
	key  K
	kind boundKind
}

type boundKind int8

const (
	unbounded boundKind = iota
	included
	excluded
)

// Unbounded is an endpoint that every key satisfies.
func Unbounded[K any]() Bound[K] {
	return Bound[K]{}
}

// Included is an endpoint that keys equivalent to key satisfy.
func Included[K any](key K) Bound[K] {
	return Bound[K]{key: key, kind: included}
}

// Excluded is an endpoint that keys equivalent to key do not satisfy.
func Excluded[K any](key K) Bound[K] {
	return Bound[K]{key: key, kind: excluded}
}

// admitsLower reports whether a key comparing as cmp against the bound key
// satisfies the bound when it acts as a lower endpoint. cmp is
// order(key, b.key).
func (b Bound[K]) admitsLower(cmp int) bool {
	switch b.kind {
	case included:
		return cmp >= 0
	case excluded:
		return cmp > 0
	}
	return true
}

// admitsUpper is the mirror of admitsLower for an upper endpoint.
func (b Bound[K]) admitsUpper(cmp int) bool {
	switch b.kind {
	case included:
		return cmp <= 0
	case excluded:
		return cmp < 0
	}
	return true
}
