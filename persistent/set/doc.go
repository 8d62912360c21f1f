/*
Package set implements persistent (immutable) sets.

Sets come in two flavours, selected at creation time: hashed sets, backed
by a hash array mapped trie, and ordered sets, backed by a persistent
B-tree. Both share the same API; ordered sets additionally support
in-order and ranged traversal.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package set

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persist.set'.
func tracer() tracing.Trace {
	return tracing.Select("persist.set")
}
