/*
Package coll defines the capability protocol shared by the persistent
collections of this module, together with the value kinds flowing through
that protocol.

Collections advertise their abilities through small query interfaces
(Counted, Seqable, Associative, Indexed, Stack, SetLike, Sorted, Reversible).
Generic algorithms—equality, hashing, ordering, destructuring—operate on
these interfaces instead of branching on concrete types. A type simply does
not implement the interfaces for capabilities it lacks; operations requiring
a missing capability report a CapabilityError instead of attempting an
emulation.

Structural equality and hashing (Equal, Hash) are value-based, so collections
may be used as map keys and set members.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package coll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persist.coll'.
func tracer() tracing.Trace {
	return tracing.Select("persist.coll")
}
