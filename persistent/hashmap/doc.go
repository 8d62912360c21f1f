/*
Package hashmap implements an immutable persistent hash map with
O(log32 n) lookup and insertion.

The map is a hash-array-mapped trie over bitmap-indexed nodes: a key's hash
is consumed five bits per level to select a slot, and updating an entry
copies only the node path from the root to that slot. All other nodes are
shared between the old and the new incarnation of the map.

Keys are compared by structural equality, not identity, so persistent
collections themselves are legal keys. A stored nil value is legitimate and
distinguishable from an absent key (see FindEntry and GetOr).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hashmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persist.hashmap'.
func tracer() tracing.Trace {
	return tracing.Select("persist.hashmap")
}
