/*
Package trie provides the node substrate shared by the trie-shaped
persistent collections of this module.

Two node flavours exist: dense nodes with a fixed fanout of 32, used by the
bit-partitioned vector, and sparse bitmap-indexed nodes, used by the hashed
map. Nodes are immutable once published: every "modifying" operation
allocates a new node which shares all unaffected children with the original.
Sharing is arbitrary—one node may be referenced by any number of coexisting
collection incarnations—so nodes are reclaimed by ordinary garbage
collection, never by explicit lifetime tracking.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package trie

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persist.trie'.
func tracer() tracing.Trace {
	return tracing.Select("persist.trie")
}
