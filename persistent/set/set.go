package set

import (
	"fmt"

	"github.com/npillmayer/persist/coll"
	"github.com/npillmayer/persist/persistent/btree"
	"github.com/npillmayer/persist/persistent/hashmap"
	"github.com/npillmayer/persist/seq"
)

// engine is the backing store of a set. Elements are kept as the keys of a
// persistent map, with the element doubling as its own value.
type engine interface {
	with(x any) engine
	without(x any) engine
	size() int
	has(x any) bool
	elements() seq.Seq
}

type hashEngine struct {
	m hashmap.Map
}

func (e hashEngine) with(x any) engine    { return hashEngine{m: e.m.Assoc(x, x)} }
func (e hashEngine) without(x any) engine { return hashEngine{m: e.m.Without(x)} }
func (e hashEngine) size() int            { return e.m.Len() }
func (e hashEngine) has(x any) bool       { return e.m.Has(x) }
func (e hashEngine) elements() seq.Seq    { return keysOf(e.m.Seq()) }

type treeEngine struct {
	t btree.Tree
}

func (e treeEngine) with(x any) engine    { return treeEngine{t: e.t.With(x, x)} }
func (e treeEngine) without(x any) engine { return treeEngine{t: e.t.WithDeleted(x)} }
func (e treeEngine) size() int            { return e.t.Len() }
func (e treeEngine) has(x any) bool       { return e.t.Has(x) }
func (e treeEngine) elements() seq.Seq    { return keysOf(e.t.Seq()) }

func keysOf(entries seq.Seq) seq.Seq {
	return seq.Map(func(x any) any {
		return x.(coll.Entry).Key
	}, entries)
}

// Set is a persistent set of (heterogeneous) elements. The zero value is an
// empty hashed set, ready for use. All modifications return a new incarnation,
// structurally sharing state with the old one.
type Set struct {
	eng engine
}

// Immutable constructs a set with options, if you need any.
// Use it like this:
//
//	words := set.Immutable(set.Ordered())
//	words = words.Conj("chapeau", "bonnet")
//
func Immutable(opts ...Option) Set {
	s := Set{}
	for _, option := range opts {
		s = option(s)
	}
	return s.init()
}

// Option is a type to help initializing sets at creation time.
type Option func(Set) Set

// Ordered is an option to back the set by a B-tree, keeping elements sorted
// by the default total order (see coll.Compare).
func Ordered() Option {
	return func(s Set) Set {
		s.eng = treeEngine{t: btree.Immutable()}
		return s
	}
}

// OrderedBy is an option to back the set by a B-tree with a custom element
// order. cmp has to establish a total order over all elements of the set.
func OrderedBy(cmp coll.Comparator) Option {
	return func(s Set) Set {
		s.eng = treeEngine{t: btree.Immutable(btree.CompareWith(cmp))}
		return s
	}
}

// New creates a hashed set holding the given items.
func New(items ...any) Set {
	return Set{}.Conj(items...)
}

// FromSeq creates a hashed set holding the elements of a sequence. The
// sequence is fully realized.
func FromSeq(s seq.Seq) Set {
	result := Set{}.init()
	for t := s; !seq.IsEmpty(t); t = seq.Next(t) {
		result.eng = result.eng.with(seq.First(t))
	}
	return result
}

func (s Set) init() Set {
	if s.eng == nil {
		s.eng = hashEngine{m: hashmap.Immutable()}
	}
	return s
}

// Len returns the number of elements in the set.
func (s Set) Len() int {
	if s.eng == nil {
		return 0
	}
	return s.eng.size()
}

// Contains returns true if x is an element of the set.
func (s Set) Contains(x any) bool {
	if s.eng == nil {
		return false
	}
	return s.eng.has(x)
}

// Sorted returns true if the set keeps its elements in order.
func (s Set) Sorted() bool {
	_, ok := s.eng.(treeEngine)
	return ok
}

// Conj returns a set with items added. Adding an element already present
// leaves the set unchanged (apart from being a new incarnation).
func (s Set) Conj(items ...any) Set {
	s = s.init()
	for _, x := range items {
		s.eng = s.eng.with(x)
	}
	return s
}

// Disj returns a set with items removed. Items not present are ignored.
func (s Set) Disj(items ...any) Set {
	s = s.init()
	for _, x := range items {
		s.eng = s.eng.without(x)
	}
	return s
}

// Seq returns a lazy sequence of the set's elements, or nil for an empty
// set. Ordered sets yield their elements in order; for hashed sets the
// order is unspecified.
func (s Set) Seq() seq.Seq {
	if s.eng == nil {
		return nil
	}
	return s.eng.elements()
}

// ReverseSeq returns the elements of an ordered set in reverse order.
// Calling it on a hashed set is a programming error.
func (s Set) ReverseSeq() seq.Seq {
	eng, ok := s.eng.(treeEngine)
	assertThat(ok, "reverse traversal requires an ordered set")
	return keysOf(eng.t.ReverseSeq())
}

// Range returns the elements of an ordered set between lo and hi, in order.
// A nil bound is unbounded on that side. Calling it on a hashed set is a
// programming error.
func (s Set) Range(lo, hi any, loIncl, hiIncl bool) seq.Seq {
	eng, ok := s.eng.(treeEngine)
	assertThat(ok, "ranged traversal requires an ordered set")
	return keysOf(eng.t.Range(lo, hi, loIncl, hiIncl))
}

// ReverseRange returns the elements of an ordered set between lo and hi, in
// reverse order. Calling it on a hashed set is a programming error.
func (s Set) ReverseRange(lo, hi any, loIncl, hiIncl bool) seq.Seq {
	eng, ok := s.eng.(treeEngine)
	assertThat(ok, "ranged traversal requires an ordered set")
	return keysOf(eng.t.ReverseRange(lo, hi, loIncl, hiIncl))
}

// Equal compares s to other collections for structural equality, i.e. same
// membership. Element order and backing store do not matter.
func (s Set) Equal(other any) bool {
	return coll.Equal(s, other)
}

// Hash returns a structural hash value, consistent with Equal.
func (s Set) Hash() uint32 {
	return coll.Hash(s)
}

func (s Set) String() string {
	return "#" + seq.Format(s.Seq(), "{", "}")
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("set: "+msg, msgargs...)
		panic(msg)
	}
}
