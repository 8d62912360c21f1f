/*
Package seq implements sequential views on collections, together with lazy
sequences.

A Seq is a logical list: something with a first element and a tail. Concrete
collections (vectors, maps, sets, sorted trees) provide Seq views onto their
elements; package seq itself contributes cons cells, a persistent list and
lazy cells which defer and memoize the production of successive elements.
Lazy sequences may be unbounded; callers are expected to bound traversal
(e.g. with Take) before forcing the whole of such a sequence.

All sequence values are immutable and safe for concurrent use. The only
synchronization involved is the at-most-once realization of a lazy cell.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persist.seq'.
func tracer() tracing.Trace {
	return tracing.Select("persist.seq")
}
