/*
Package vector implements an immutable persistent vector: an indexed,
ordered collection with O(log32 n) access and update and amortized O(1)
append at the end.

An immutable persistent vector has copy-on-write behaviour: each
“modification” (append, replacement, removal at the end) creates a new
incarnation, leaving the original unmodified. Under the hood the vector is
a bit-partitioned trie with a small tail buffer; an update copies only the
nodes on the path to the changed position, so most of the structure/memory
is shared between original and copy, transparently to clients.

Immutable vectors are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persist.vector'.
func tracer() tracing.Trace {
	return tracing.Select("persist.vector")
}
