package trie

import (
	"fmt"
	"strings"
)

// Tree geometry. A fanout of 32 keeps tries shallow (depth ⌈log32 n⌉) while
// bounding the per-node copy cost of an update.
const (
	Bits   uint32 = 5
	Fanout uint32 = 1 << Bits
	Mask   uint32 = Fanout - 1
)

// Dense is a node of a bit-partitioned trie: either an inner node owning a
// fixed-size array of child slots, or a leaf holding up to Fanout values.
type Dense struct {
	children []*Dense
	leafs    []any
}

// NewLeaf creates a leaf node holding a copy of the given values.
// Providing more than Fanout values is a programming error.
func NewLeaf(values []any) *Dense {
	assertThat(len(values) <= int(Fanout), "leaf overflow: %d values", len(values))
	l := make([]any, len(values))
	copy(l, values)
	return &Dense{leafs: l}
}

// NewInner creates an inner node with Fanout empty child slots.
func NewInner() *Dense {
	return &Dense{children: make([]*Dense, Fanout)}
}

// IsLeaf discriminates leafs from inner nodes.
func (node *Dense) IsLeaf() bool {
	return node.children == nil
}

// ChildAt returns the child in slot i, which may be nil for an unoccupied
// slot. Calling it with an out-of-range index or on a leaf fails fast.
func (node *Dense) ChildAt(i int) *Dense {
	assertThat(!node.IsLeaf(), "attempt to get child of a leaf")
	assertThat(i >= 0 && i < len(node.children), "child index out of range: %d", i)
	return node.children[i]
}

// WithChildAt returns a new inner node with slot i set to child, sharing
// all other children with node. child may be nil, clearing the slot.
func (node *Dense) WithChildAt(i int, child *Dense) *Dense {
	assertThat(!node.IsLeaf(), "attempt to set child of a leaf")
	assertThat(i >= 0 && i < len(node.children), "child index out of range: %d", i)
	cow := make([]*Dense, len(node.children))
	copy(cow, node.children)
	cow[i] = child
	return &Dense{children: cow}
}

// LeafAt returns the value at position i of a leaf.
func (node *Dense) LeafAt(i int) any {
	assertThat(node.IsLeaf(), "attempt to get leaf value of an inner node")
	assertThat(i >= 0 && i < len(node.leafs), "leaf index out of range: %d", i)
	return node.leafs[i]
}

// WithLeafAt returns a new leaf with position i replaced by value, sharing
// nothing and copying the (at most Fanout) values.
func (node *Dense) WithLeafAt(i int, value any) *Dense {
	assertThat(node.IsLeaf(), "attempt to set leaf value of an inner node")
	assertThat(i >= 0 && i < len(node.leafs), "leaf index out of range: %d", i)
	cow := make([]any, len(node.leafs))
	copy(cow, node.leafs)
	cow[i] = value
	return &Dense{leafs: cow}
}

// Leafs exposes the value bucket of a leaf. Callers must treat the returned
// slice as read-only; it is shared between incarnations.
func (node *Dense) Leafs() []any {
	assertThat(node.IsLeaf(), "attempt to get leaf bucket of an inner node")
	return node.leafs
}

// NewPath wraps node into a chain of inner nodes reaching down the given
// number of levels (levels is a shift, i.e. a multiple of Bits).
func NewPath(levels uint32, node *Dense) *Dense {
	for level := levels; level > 0; level -= Bits {
		top := NewInner()
		top.children[0] = node
		node = top
	}
	return node
}

func (node *Dense) String() string {
	if node == nil {
		return "_"
	}
	b := strings.Builder{}
	b.WriteByte('[')
	if node.IsLeaf() {
		for i, l := range node.leafs {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(fmt.Sprintf("%v", l))
		}
	} else {
		for i, c := range node.children {
			if i > 0 {
				b.WriteByte(',')
			}
			if c == nil {
				b.WriteByte('_')
			} else {
				b.WriteString("▪︎")
			}
		}
	}
	b.WriteByte(']')
	return b.String()
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("trie: "+msg, msgargs...)
		panic(msg)
	}
}
