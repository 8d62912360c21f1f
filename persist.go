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

// Construction entry points for each collection kind. These are thin
// wrappers over the sub-package constructors, collected here so that
// client code usually needs just this one import.

// NewVector creates a persistent vector holding the given items.
func NewVector(items ...any) vector.Vector {
	return vector.New(items...)
}

// NewList creates a persistent singly-linked list holding the given items.
func NewList(items ...any) *seq.List {
	return seq.NewList(items...)
}

// NewMap creates a persistent hash map from alternating keys and values.
func NewMap(kvs ...any) hashmap.Map {
	return hashmap.New(kvs...)
}

// NewSortedMap creates a persistent sorted map from alternating keys and
// values, ordered by cmp. A nil cmp selects the default total order
// (see coll.Compare).
func NewSortedMap(cmp coll.Comparator, kvs ...any) btree.Tree {
	tree := btree.Immutable()
	if cmp != nil {
		tree = btree.Immutable(btree.CompareWith(cmp))
	}
	if len(kvs)%2 != 0 {
		panic("persist: odd number of arguments to NewSortedMap")
	}
	for i := 0; i < len(kvs); i += 2 {
		tree = tree.With(kvs[i], kvs[i+1])
	}
	return tree
}

// NewSet creates a persistent hashed set holding the given items.
func NewSet(items ...any) set.Set {
	return set.New(items...)
}

// NewSortedSet creates a persistent ordered set holding the given items,
// ordered by cmp. A nil cmp selects the default total order.
func NewSortedSet(cmp coll.Comparator, items ...any) set.Set {
	s := set.Immutable(set.Ordered())
	if cmp != nil {
		s = set.Immutable(set.OrderedBy(cmp))
	}
	return s.Conj(items...)
}

// Into pours the elements of a sequence into a collection, conjoining them
// one by one, and returns the resulting collection. The sequence is fully
// realized; pouring an infinite sequence will not terminate.
func Into(target any, s seq.Seq) (any, error) {
	result := target
	for t := s; !seq.IsEmpty(t); t = seq.Next(t) {
		var err error
		if result, err = Conj(result, seq.First(t)); err != nil {
			return nil, errors.Wrap(err, "cannot pour sequence into collection")
		}
	}
	return result, nil
}
