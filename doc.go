/*
Package ordered implements persistent (immutable) ordered maps and sets,
backed by a weight-balanced binary search tree.

A persistent collection has copy-on-write behaviour: every “modification”
(insertion, replacement or deletion) creates a new incarnation of the
collection, leaving the original unmodified. Under the hood copy-on-write
retains most of the memory held by the original and re-creates only the
O(log n) nodes on the path from the root to the edit. Thus most of the
structure/memory is shared between original and copy, transparently to
clients. Old incarnations stay valid indefinitely, which makes the types
natural for snapshots, undo-history and lock-free concurrent readers.

Use it like this:

	m := ordered.NewMap[int, string]()
	m2 := m.With(42, "Galaxy")
	value, found := m2.Find(42)     // "Galaxy", true
	_, found = m.Find(42)           // m is unchanged: false

Keys are ordered by an injected comparator. Types with a natural order get
one for free (NewMap/NewSet); any other type may supply its own total order:

	people := ordered.NewMapOf[Person, int](func(a, b Person) int {
		return strings.Compare(a.Name, b.Name)
	})

Sets additionally support lazy set algebra (intersection, union, difference,
symmetric difference), computed as merge-joins over the ordered iteration of
both operands.

Immutable collections are inherently concurrency-safe: readers on separate
goroutines may traverse different incarnations aliasing the same nodes
without synchronization.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ordered

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordered'.
func tracer() tracing.Trace {
	return tracing.Select("ordered")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("ordered: "+msg, msgargs...)
		panic(msg)
	}
}
