package persist

import (
	"github.com/npillmayer/persist/coll"
	"github.com/npillmayer/persist/persistent/btree"
	"github.com/npillmayer/persist/persistent/hashmap"
	"github.com/npillmayer/persist/persistent/set"
	"github.com/npillmayer/persist/persistent/vector"
	"github.com/npillmayer/persist/seq"
	"github.com/pkg/errors"
)

// The operation protocol over collection values. Query operations (Count,
// Lookup, Nth, …) resolve capability interfaces from package coll; the
// operations producing new collection incarnations (Conj, Assoc, Dissoc,
// Pop) dispatch per concrete variant, since Go method signatures cannot
// covary on the receiver type.
//
// All operations are total over `any`: a value whose type lacks the
// requested capability yields a coll.CapabilityError instead of a
// best-effort emulation.

// Conj conjoins items onto a collection at its natural insertion point:
// the end for vectors, the front for lists and sequences, wherever for maps
// and sets. Maps accept coll.Entry values or two-element sequential
// collections. Conjoining onto nil starts a fresh list.
func Conj(c any, items ...any) (any, error) {
	result := c
	for _, x := range items {
		var err error
		if result, err = conj1(result, x); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func conj1(c, x any) (any, error) {
	switch target := c.(type) {
	case nil:
		return seq.NewList(x), nil
	case vector.Vector:
		return target.Conj(x), nil
	case hashmap.Map:
		entry, err := hashmap.EntryOf(x)
		if err != nil {
			return nil, err
		}
		return target.Assoc(entry.Key, entry.Value), nil
	case btree.Tree:
		entry, err := hashmap.EntryOf(x)
		if err != nil {
			return nil, err
		}
		return target.With(entry.Key, entry.Value), nil
	case set.Set:
		return target.Conj(x), nil
	case *seq.List:
		return target.Cons(x), nil
	case seq.Seq:
		return seq.NewCons(x, target), nil
	}
	return nil, coll.CapabilityError{Op: "conjoin", Value: c}
}

// Seq returns a sequential view over a collection's elements (entries, for
// associative collections), or nil for empty collections and nil itself.
func Seq(c any) (seq.Seq, error) {
	if s, ok := coll.ToSeq(c); ok {
		return s, nil
	}
	return nil, coll.CapabilityError{Op: "sequence-view", Value: c}
}

// Count returns the number of elements in a collection. For counted
// collections this is O(1); for sequences it is an O(n) traversal, which
// will not terminate on infinite sequences.
func Count(c any) (int, error) {
	if c == nil {
		return 0, nil
	}
	if counted, ok := c.(coll.Counted); ok {
		return counted.Len(), nil
	}
	if s, ok := coll.ToSeq(c); ok {
		return seq.Count(s), nil
	}
	return 0, coll.CapabilityError{Op: "count", Value: c}
}

// IsEmpty reports whether a collection holds no elements. Unlike Count it
// forces at most one element of a lazy sequence.
func IsEmpty(c any) (bool, error) {
	if c == nil {
		return true, nil
	}
	if counted, ok := c.(coll.Counted); ok {
		return counted.Len() == 0, nil
	}
	if s, ok := coll.ToSeq(c); ok {
		return seq.IsEmpty(s), nil
	}
	return false, coll.CapabilityError{Op: "is-empty", Value: c}
}

// Lookup returns the value associated with key, or def if key is absent.
// A stored nil value is returned as nil, not as def; callers needing to
// distinguish absence pass coll.NotFound as def, or use FindEntry. Looking
// up in nil yields def. Sets answer lookup with the element itself.
func Lookup(c, key, def any) (any, error) {
	switch target := c.(type) {
	case nil:
		return def, nil
	case coll.Associative:
		return target.GetOr(key, def), nil
	case coll.SetLike:
		if target.Contains(key) {
			return key, nil
		}
		return def, nil
	}
	return nil, coll.CapabilityError{Op: "lookup", Value: c}
}

// FindEntry returns the entry for key together with a presence flag,
// distinguishing an absent key from a key associated with nil.
func FindEntry(c, key any) (coll.Entry, bool, error) {
	switch target := c.(type) {
	case nil:
		return coll.Entry{}, false, nil
	case coll.Associative:
		entry, found := target.FindEntry(key)
		return entry, found, nil
	}
	return coll.Entry{}, false, coll.CapabilityError{Op: "lookup", Value: c}
}

// Contains reports membership: key presence for associative collections,
// element membership for sets.
func Contains(c, x any) (bool, error) {
	switch target := c.(type) {
	case nil:
		return false, nil
	case coll.SetLike:
		return target.Contains(x), nil
	case coll.Associative:
		return target.Has(x), nil
	}
	return false, coll.CapabilityError{Op: "membership", Value: c}
}

// Assoc associates key with value in a map, or replaces the element at an
// index of a vector (an index equal to the length appends). Associating
// onto nil starts a fresh hash map.
func Assoc(c, key, value any) (any, error) {
	switch target := c.(type) {
	case nil:
		return hashmap.New(key, value), nil
	case hashmap.Map:
		return target.Assoc(key, value), nil
	case btree.Tree:
		return target.With(key, value), nil
	case vector.Vector:
		i, ok := asInt(key)
		if !ok || i < 0 || i > target.Len() {
			return nil, coll.IndexError{Index: i, Length: target.Len()}
		}
		return target.Assoc(i, value), nil
	}
	return nil, coll.CapabilityError{Op: "associate", Value: c}
}

// Dissoc removes key from a map. Keys not present are ignored.
func Dissoc(c, key any) (any, error) {
	switch target := c.(type) {
	case nil:
		return nil, nil
	case hashmap.Map:
		return target.Without(key), nil
	case btree.Tree:
		return target.WithDeleted(key), nil
	}
	return nil, coll.CapabilityError{Op: "disassociate", Value: c}
}

// Nth returns the element at index i of an indexed collection. Unlike
// Lookup, an index outside [0, Count) is an error, not a default.
func Nth(c any, i int) (any, error) {
	indexed, ok := c.(coll.Indexed)
	if !ok {
		return nil, coll.CapabilityError{Op: "indexed-access", Value: c}
	}
	if counted, ok := c.(coll.Counted); ok {
		if i < 0 || i >= counted.Len() {
			return nil, coll.IndexError{Index: i, Length: counted.Len()}
		}
	}
	return indexed.Nth(i), nil
}

// Peek returns the element Pop would remove — the last element of a vector,
// the first element of a list — or nil for an empty collection.
func Peek(c any) (any, error) {
	switch target := c.(type) {
	case vector.Vector:
		if target.Len() == 0 {
			return nil, nil
		}
		return target.Peek(), nil
	case *seq.List:
		if target.Len() == 0 {
			return nil, nil
		}
		return target.Peek(), nil
	}
	return nil, coll.CapabilityError{Op: "stack-peek", Value: c}
}

// Pop removes the element Peek returns. Unlike Peek, popping an empty
// collection is an error.
func Pop(c any) (any, error) {
	switch target := c.(type) {
	case vector.Vector:
		if target.Len() == 0 {
			return nil, errors.Errorf("cannot pop an empty %T", c)
		}
		return target.Pop(), nil
	case *seq.List:
		if target.Len() == 0 {
			return nil, errors.Errorf("cannot pop an empty %T", c)
		}
		return target.Pop(), nil
	}
	return nil, coll.CapabilityError{Op: "stack-pop", Value: c}
}

// RangeView returns a lazy ordered view of the entries of a sorted
// collection between lo and hi. Nil bounds are unbounded; the inclusive
// flags decide whether entries equal to a bound are included.
func RangeView(c, lo, hi any, loIncl, hiIncl bool) (seq.Seq, error) {
	if sorted, ok := c.(coll.Sorted); ok && isOrdered(c) {
		return sorted.Range(lo, hi, loIncl, hiIncl), nil
	}
	return nil, coll.CapabilityError{Op: "range-view", Value: c}
}

// ReverseRangeView is RangeView in descending order, starting near hi.
func ReverseRangeView(c, lo, hi any, loIncl, hiIncl bool) (seq.Seq, error) {
	if sorted, ok := c.(coll.Sorted); ok && isOrdered(c) {
		return sorted.ReverseRange(lo, hi, loIncl, hiIncl), nil
	}
	return nil, coll.CapabilityError{Op: "reverse-range-view", Value: c}
}

// ReverseSeqView returns the elements of a reversible collection in reverse
// order, without re-sorting or copying.
func ReverseSeqView(c any) (seq.Seq, error) {
	if reversible, ok := c.(coll.Reversible); ok && isOrdered(c) {
		return reversible.ReverseSeq(), nil
	}
	return nil, coll.CapabilityError{Op: "reverse-sequence-view", Value: c}
}

// isOrdered weeds out hashed sets, whose method set carries the ordered
// traversals but whose backing store cannot honor them.
func isOrdered(c any) bool {
	if s, ok := c.(set.Set); ok {
		return s.Sorted()
	}
	return true
}

func asInt(key any) (int, bool) {
	switch k := key.(type) {
	case int:
		return k, true
	case int8:
		return int(k), true
	case int16:
		return int(k), true
	case int32:
		return int(k), true
	case int64:
		return int(k), true
	case uint:
		return int(k), true
	case uint8:
		return int(k), true
	case uint16:
		return int(k), true
	case uint32:
		return int(k), true
	case uint64:
		return int(k), true
	}
	return 0, false
}
