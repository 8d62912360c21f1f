/*
Package btree implements a persistent (immutable) in-memory B-tree,
mapping keys to values in sort order.

Keys are ordered by a comparator function. If none is given, a default
total order over Go's basic types is used (see package coll). Lookup,
insertion and deletion run in O(log n), with modifications copying only
the nodes along the path from the root to the touched leaf. All other
nodes are shared between tree incarnations.

A good introduction to B-trees and their algorithms may be found at
https://algorithmtutor.com/Data-Structures/Tree/B-Trees/.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package btree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persist.btree'.
func tracer() tracing.Trace {
	return tracing.Select("persist.btree")
}
