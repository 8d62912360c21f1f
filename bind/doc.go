/*
Package bind implements destructuring: extracting named bindings from a
collection value by matching it against a binding pattern.

Patterns are trees built from three node kinds — plain names, positional
sequence patterns and key patterns — and may nest arbitrarily. Matching a
pattern against a source value yields a flat, ordered list of bindings,
evaluated left to right.

Destructuring is deliberately permissive about missing data and strict
about capability mismatches: an absent key or a too-short sequence binds
the absence marker coll.NotFound, while a positional pattern applied to a
non-sequential value (or a key pattern applied to a value without lookup)
is an error.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package bind

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persist.bind'.
func tracer() tracing.Trace {
	return tracing.Select("persist.bind")
}
