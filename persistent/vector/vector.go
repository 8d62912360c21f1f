package vector

import (
	"fmt"

	"github.com/npillmayer/persist/coll"
	"github.com/npillmayer/persist/maybe"
	"github.com/npillmayer/persist/persistent/trie"
	"github.com/npillmayer/persist/seq"
)

// Vector is an immutable persistent vector. The zero value is a valid
// empty vector:
//
//     v := vector.Vector{}.Conj(42)
//
// returning a vector holding the single element 42.
type Vector struct {
	length uint32
	shift  uint32
	root   *trie.Dense
	tail   []any
}

// New builds a vector holding the given items in order.
func New(items ...any) Vector {
	v := Vector{}
	for _, x := range items {
		v = v.Conj(x)
	}
	return v
}

// FromSeq realizes a sequence into a vector. Diverges for unbounded
// sequences.
func FromSeq(s seq.Seq) Vector {
	v := Vector{}
	for t := s; !seq.IsEmpty(t); t = seq.Next(t) {
		v = v.Conj(seq.First(t))
	}
	return v
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements; O(1).
func (v Vector) Len() int {
	return int(v.length)
}

// Nth returns the element at position i. Indexes outside [0, Len) are a
// programming error: Nth fails fast with a coll.IndexError and never
// returns a sentinel.
func (v Vector) Nth(i int) any {
	if i < 0 || uint32(i) >= v.length {
		panic(coll.IndexError{Index: i, Length: v.Len()})
	}
	return v.leafFor(uint32(i))[uint32(i)&trie.Mask]
}

// leafFor returns the value bucket holding position i.
func (v Vector) leafFor(i uint32) []any {
	if i >= v.tailOffset() {
		return v.tail
	}
	node := v.root
	for level := v.shift; level > 0; level -= trie.Bits {
		node = node.ChildAt(int((i >> level) & trie.Mask))
	}
	return node.Leafs()
}

// Assoc returns a new vector with position i replaced by value; O(log32 n)
// path copy. i == Len() appends, like Conj. Other indexes outside the
// vector fail fast with a coll.IndexError.
func (v Vector) Assoc(i int, value any) Vector {
	if i < 0 || uint32(i) > v.length {
		panic(coll.IndexError{Index: i, Length: v.Len()})
	}
	if uint32(i) == v.length {
		return v.Conj(value)
	}
	if uint32(i) >= v.tailOffset() {
		newTail := cloneTail(v.tail, len(v.tail))
		newTail[uint32(i)&trie.Mask] = value
		return Vector{length: v.length, shift: v.shift, root: v.root, tail: newTail}
	}
	return Vector{length: v.length, shift: v.shift, root: doAssoc(v.shift, v.root, uint32(i), value), tail: v.tail}
}

func doAssoc(level uint32, node *trie.Dense, i uint32, value any) *trie.Dense {
	if level == 0 {
		return node.WithLeafAt(int(i&trie.Mask), value)
	}
	subidx := int((i >> level) & trie.Mask)
	return node.WithChildAt(subidx, doAssoc(level-trie.Bits, node.ChildAt(subidx), i, value))
}

// Conj returns a new vector with value appended at the end; amortized O(1)
// through the tail buffer, with a periodic O(log32 n) flush of the full
// tail into the trie.
func (v Vector) Conj(value any) Vector {
	if uint32(len(v.tail)) < trie.Fanout { // just append value to tail
		newTail := cloneTail(v.tail, len(v.tail)+1)
		newTail[len(newTail)-1] = value
		return Vector{length: v.length + 1, shift: v.shift, root: v.root, tail: newTail}
	}
	// tail is full ⇒ have to move tail into the trie
	tracer().Debugf("tail is full, flushing %v into the trie", v.tail)
	newTail := []any{value}
	tailNode := trie.NewLeaf(v.tail)
	if v.length == trie.Fanout { // trie was empty ⇒ tail becomes the root
		assertThat(v.root == nil, "inconsistency: vector.root expected to be nil")
		return Vector{length: v.length + 1, shift: 0, root: tailNode, tail: newTail}
	}
	if (v.length >> trie.Bits) > (1 << v.shift) { // root is full ⇒ grow the trie
		newRoot := trie.NewInner()
		newRoot = newRoot.WithChildAt(0, v.root)
		newRoot = newRoot.WithChildAt(1, trie.NewPath(v.shift, tailNode))
		return Vector{length: v.length + 1, shift: v.shift + trie.Bits, root: newRoot, tail: newTail}
	}
	// still space under the current root
	return Vector{length: v.length + 1, shift: v.shift, root: v.pushLeaf(v.shift, v.root, tailNode), tail: newTail}
}

func (v Vector) pushLeaf(level uint32, parent *trie.Dense, tailNode *trie.Dense) *trie.Dense {
	subidx := int(((v.length - 1) >> level) & trie.Mask)
	if level == trie.Bits {
		return parent.WithChildAt(subidx, tailNode)
	}
	if child := parent.ChildAt(subidx); child != nil {
		return parent.WithChildAt(subidx, v.pushLeaf(level-trie.Bits, child, tailNode))
	}
	return parent.WithChildAt(subidx, trie.NewPath(level-trie.Bits, tailNode))
}

// Peek returns the last element, i.e. the end where Conj appends.
// Peeking an empty vector is a programming error and fails fast.
func (v Vector) Peek() any {
	assertThat(v.length > 0, "attempt to peek at an empty vector")
	return v.tail[len(v.tail)-1]
}

// Last returns the last element, or Nothing for an empty vector.
func (v Vector) Last() maybe.Maybe[any] {
	if v.length == 0 {
		return maybe.Nothing[any]()
	}
	return maybe.Just(v.tail[len(v.tail)-1])
}

// Pop returns a new vector without the last element. Popping an empty
// vector is a programming error and fails fast.
func (v Vector) Pop() Vector {
	assertThat(v.length > 0, "attempt to pop an empty vector")
	if v.length == 1 {
		return Vector{}
	}
	if ((v.length - 1) & trie.Mask) > 0 { // tail keeps at least one element
		return Vector{length: v.length - 1, shift: v.shift, root: v.root, tail: cloneTail(v.tail, len(v.tail)-1)}
	}
	// tail holds a single element ⇒ steal the trie's last leaf as new tail
	newTail := v.leafFor(v.length - 2)
	newRoot := v.popLeaf(v.shift, v.root)
	shift := v.shift
	if newRoot == nil {
		return Vector{length: v.length - 1, shift: 0, root: nil, tail: newTail}
	}
	if shift >= trie.Bits && newRoot.ChildAt(1) == nil { // can lower the trie
		newRoot = newRoot.ChildAt(0)
		shift -= trie.Bits
	}
	return Vector{length: v.length - 1, shift: shift, root: newRoot, tail: newTail}
}

// popLeaf removes the rightmost leaf, returning nil if the subtree under
// node becomes empty.
func (v Vector) popLeaf(level uint32, node *trie.Dense) *trie.Dense {
	if level == 0 { // root is the leaf being stolen
		return nil
	}
	subidx := int(((v.length - 2) >> level) & trie.Mask)
	if level == trie.Bits {
		if subidx == 0 {
			return nil
		}
		return node.WithChildAt(subidx, nil)
	}
	child := v.popLeaf(level-trie.Bits, node.ChildAt(subidx))
	if child == nil && subidx == 0 {
		return nil
	}
	return node.WithChildAt(subidx, child)
}

func (v Vector) tailOffset() uint32 {
	if v.length < trie.Fanout {
		return 0
	}
	return ((v.length - 1) >> trie.Bits) << trie.Bits
}

// --- Capabilities ------------------------------------------------------------

// Sequential marks vectors as order-carrying: they compare equal to any
// sequential collection holding the same elements in the same order.
func (Vector) Sequential() {}

// GetOr answers index lookups associatively: an in-range integer key
// returns the element, anything else returns def. Unlike Nth, GetOr never
// fails.
func (v Vector) GetOr(key, def any) any {
	if i, ok := asIndex(key); ok && i >= 0 && uint32(i) < v.length {
		return v.Nth(i)
	}
	return def
}

// FindEntry returns the (index, element) entry for an in-range integer key.
func (v Vector) FindEntry(key any) (coll.Entry, bool) {
	if i, ok := asIndex(key); ok && i >= 0 && uint32(i) < v.length {
		return coll.Entry{Key: i, Value: v.Nth(i)}, true
	}
	return coll.Entry{}, false
}

// Has reports whether key is an in-range index.
func (v Vector) Has(key any) bool {
	i, ok := asIndex(key)
	return ok && i >= 0 && uint32(i) < v.length
}

// Equal compares v to other sequential collections structurally: equal iff
// same length and pairwise-equal elements, regardless of representation.
func (v Vector) Equal(other any) bool {
	return coll.Equal(v, other)
}

// Hash returns a structural hash consistent with Equal.
func (v Vector) Hash() uint32 {
	return coll.Hash(v)
}

func (v Vector) String() string {
	return seq.Format(v.Seq(), "[", "]")
}

// --- Helpers ---------------------------------------------------------------

func cloneTail(tail []any, l int) []any {
	newTail := make([]any, l)
	copy(newTail, tail[:min(l, len(tail))])
	return newTail
}

func asIndex(key any) (int, bool) {
	switch k := key.(type) {
	case int:
		return k, true
	case int32:
		return int(k), true
	case int64:
		return int(k), true
	case uint:
		return int(k), true
	case uint32:
		return int(k), true
	case uint64:
		return int(k), true
	}
	return 0, false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("vector: "+msg, msgargs...)
		panic(msg)
	}
}
