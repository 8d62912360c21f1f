package hashmap

import (
	"github.com/npillmayer/persist/persistent/trie"
	"github.com/npillmayer/persist/seq"
)

// Iteration order follows the trie layout, i.e. key hashes: it is
// insertion-independent and not guaranteed stable across semantically
// equal maps built differently. Every entry appears exactly once.

// frame is one level of the depth-first walk over trie nodes. When the
// current slot is an overflow bucket, overIndex walks its entries.
type frame struct {
	node      *trie.Sparse
	index     int
	over      *overflow
	overIndex int
}

// Seq returns a lazy sequence of the map's entries, or nil for an empty
// map.
func (m Map) Seq() seq.Seq {
	if m.count == 0 {
		return nil
	}
	return entrySeq(descend(nil, m.root))
}

// descend pushes node and the chain of its first-slot children, leaving
// the stack pointing at an entry.
func descend(stack []frame, node *trie.Sparse) []frame {
	for {
		f := frame{node: node}
		switch slot := node.Slots()[0].(type) {
		case *trie.Sparse:
			stack = append(stack, f)
			node = slot
		case *overflow:
			f.over = slot
			return append(stack, f)
		default:
			return append(stack, f)
		}
	}
}

// entrySeq lazily yields the entry the stack currently points at, then
// advances. Each cell captures its own copy of the stack, keeping the
// sequence itself persistent.
func entrySeq(stack []frame) seq.Seq {
	if len(stack) == 0 {
		return nil
	}
	return seq.Lazy(func() (any, seq.Seq, bool) {
		return current(stack), entrySeq(advance(stack)), true
	})
}

func current(stack []frame) any {
	top := stack[len(stack)-1]
	if top.over != nil {
		return top.over.entries[top.overIndex]
	}
	return top.node.Slots()[top.index]
}

func advance(prev []frame) []frame {
	stack := make([]frame, len(prev))
	copy(stack, prev)
	top := &stack[len(stack)-1]
	if top.over != nil {
		if top.overIndex+1 < len(top.over.entries) {
			top.overIndex++
			return stack
		}
		top.over = nil
	}
	top.index++
	for {
		top = &stack[len(stack)-1]
		if top.index >= top.node.Len() {
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return nil
			}
			stack[len(stack)-1].index++
			continue
		}
		switch slot := top.node.Slots()[top.index].(type) {
		case *trie.Sparse:
			return descend(stack, slot)
		case *overflow:
			top.over, top.overIndex = slot, 0
			return stack
		default:
			return stack
		}
	}
}
