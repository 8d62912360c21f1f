package coll

import "github.com/npillmayer/persist/seq"

// The query side of the capability protocol. Collections implement the
// interfaces matching their abilities; operations producing new collection
// incarnations (conjoin, associate, …) are dispatched per concrete variant
// by the top-level persist package, since Go method signatures cannot
// covary on the receiver type.

// Counted is implemented by collections knowing their size in O(1).
// Lazy sequences deliberately do not implement it: counting a sequence is
// an O(n) traversal and goes through seq.Count.
type Counted interface {
	Len() int
}

// Seqable is implemented by every collection providing a sequential view
// of its elements (entries, for associative collections).
type Seqable interface {
	Seq() seq.Seq
}

// Sequential marks collections whose elements carry a defined order and
// which compare equal element-by-element (vectors, lists, sequences).
type Sequential interface {
	Sequential()
}

// Associative is implemented by collections mapping keys to values.
type Associative interface {
	// GetOr returns the value for key, or def if key is absent. Since nil
	// is a legitimate stored value, callers distinguishing absence pass
	// NotFound (or use FindEntry).
	GetOr(key, def any) any
	// FindEntry returns the entry for key and whether the key is present.
	FindEntry(key any) (Entry, bool)
	// Has reports whether key is present.
	Has(key any) bool
}

// Indexed is implemented by collections with O(log n) positional access.
// Nth fails fast (panics with an IndexError) for indexes outside [0, Len);
// it never returns a sentinel. The persist package offers a checked,
// error-returning variant.
type Indexed interface {
	Nth(i int) any
}

// Stack is the query side of stack capability: Peek returns the element a
// pop would remove, without removing it.
type Stack interface {
	Peek() any
}

// SetLike is implemented by collections with membership semantics.
type SetLike interface {
	Contains(x any) bool
}

// Sorted is implemented by collections ordered by a comparator.
// Bounds are compared with the collection's own comparator; nil bounds are
// unbounded. Range traversal is lazy and requires no re-sorting.
type Sorted interface {
	Range(lo, hi any, loIncl, hiIncl bool) seq.Seq
	ReverseRange(lo, hi any, loIncl, hiIncl bool) seq.Seq
}

// Reversible is implemented by collections which can hand out a reverse
// sequential view without re-sorting or copying.
type Reversible interface {
	ReverseSeq() seq.Seq
}
