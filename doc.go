/*
Package persist provides persistent (immutable) collections — vectors,
hash maps, sorted maps, sets and lazy sequences — together with a uniform
operation protocol over all of them.

The concrete collection types live in sub-packages (persistent/vector,
persistent/hashmap, persistent/btree, persistent/set, seq). Code that
wants to work with collection values generically, without branching on
concrete types, calls the operations of this package instead: Conj, Seq,
Count, Lookup, Assoc, Nth, Peek, and friends. Each operation resolves the
capabilities of the concrete value and returns a coll.CapabilityError for
values which do not support it.

All collections are values: "mutating" operations return a new incarnation
sharing unaffected structure with the original. Arbitrary concurrent
readers of distinct or shared incarnations require no locking.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package persist

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persist'.
func tracer() tracing.Trace {
	return tracing.Select("persist")
}
