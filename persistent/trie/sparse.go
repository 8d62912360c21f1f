package trie

import (
	"math/bits"
	"strings"
)

// Sparse is a bitmap-indexed trie node: the bitmap records which of the 32
// logical slots are occupied, and the occupied slots are packed into a
// short array. A slot holds either a child *Sparse or a client payload
// (the hashed map stores its entries this way).
type Sparse struct {
	bitmap uint32
	slots  []any
}

// BitFor returns the bitmap bit selected by the hash chunk at the given
// shift.
func BitFor(hash, shift uint32) uint32 {
	return 1 << ((hash >> shift) & Mask)
}

// Len returns the number of occupied slots.
func (node *Sparse) Len() int {
	if node == nil {
		return 0
	}
	return len(node.slots)
}

// Has reports whether the slot selected by bit is occupied.
func (node *Sparse) Has(bit uint32) bool {
	return node != nil && node.bitmap&bit != 0
}

// At returns the payload of the slot selected by bit. Querying an
// unoccupied slot is a programming error.
func (node *Sparse) At(bit uint32) any {
	assertThat(node.Has(bit), "attempt to access unoccupied sparse slot")
	return node.slots[node.index(bit)]
}

// index maps a bitmap bit to its position in the packed slot array.
func (node *Sparse) index(bit uint32) int {
	return bits.OnesCount32(node.bitmap & (bit - 1))
}

// WithSlot returns a new node with the slot selected by bit holding x,
// inserting the slot if it was unoccupied. All other slots are shared.
func (node *Sparse) WithSlot(bit uint32, x any) *Sparse {
	if node == nil {
		return &Sparse{bitmap: bit, slots: []any{x}}
	}
	i := node.index(bit)
	if node.bitmap&bit != 0 {
		cow := make([]any, len(node.slots))
		copy(cow, node.slots)
		cow[i] = x
		return &Sparse{bitmap: node.bitmap, slots: cow}
	}
	cow := make([]any, len(node.slots)+1)
	copy(cow, node.slots[:i])
	cow[i] = x
	copy(cow[i+1:], node.slots[i:])
	return &Sparse{bitmap: node.bitmap | bit, slots: cow}
}

// WithoutSlot returns a new node with the slot selected by bit removed.
// Removing an unoccupied slot is a programming error.
func (node *Sparse) WithoutSlot(bit uint32) *Sparse {
	assertThat(node.Has(bit), "attempt to remove unoccupied sparse slot")
	if len(node.slots) == 1 {
		return nil
	}
	i := node.index(bit)
	cow := make([]any, len(node.slots)-1)
	copy(cow, node.slots[:i])
	copy(cow[i:], node.slots[i+1:])
	return &Sparse{bitmap: node.bitmap &^ bit, slots: cow}
}

// Slots exposes the packed payload array. Callers must treat the returned
// slice as read-only; it is shared between incarnations.
func (node *Sparse) Slots() []any {
	if node == nil {
		return nil
	}
	return node.slots
}

func (node *Sparse) String() string {
	if node == nil {
		return "_"
	}
	b := strings.Builder{}
	b.WriteByte('{')
	for i := range node.slots {
		if i > 0 {
			b.WriteByte(' ')
		}
		if _, isChild := node.slots[i].(*Sparse); isChild {
			b.WriteString("▪︎")
		} else {
			b.WriteString("·")
		}
	}
	b.WriteByte('}')
	return b.String()
}
