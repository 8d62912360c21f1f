package btree

import (
	"sort"

	"github.com/npillmayer/persist/coll"
	"github.com/npillmayer/persist/seq"
)

// Lazy in-order walks over a tree. A walk is a stack of slots: the top slot
// always points at the item to yield next. For forward walks, a slot
// {node, i} on the stack means the walk is currently inside children[i],
// with items[i] due after that subtree is exhausted. Reverse walks mirror
// this: inside children[i+1], with items[i] due next.
//
// Each sequence cell captures its own copy of the stack, so walks are as
// persistent as the tree itself.

// Seq returns a lazy sequence of the tree's entries in key order, or nil
// for an empty tree.
func (tree Tree) Seq() seq.Seq {
	if tree.root == nil {
		return nil
	}
	return tree.forwardSeq(descendMin(nil, tree.root))
}

// ReverseSeq returns a lazy sequence of the tree's entries in reverse key
// order, or nil for an empty tree.
func (tree Tree) ReverseSeq() seq.Seq {
	if tree.root == nil {
		return nil
	}
	return tree.reverseSeq(descendMax(nil, tree.root))
}

// Range returns a lazy sequence of the entries with keys between lo and hi,
// in key order. loIncl and hiIncl control whether an entry with key equal to
// the respective bound is included. A nil bound is unbounded on that side.
func (tree Tree) Range(lo, hi any, loIncl, hiIncl bool) seq.Seq {
	tree = tree.init()
	if tree.root == nil {
		return nil
	}
	var stack []slot
	if lo == nil {
		stack = descendMin(nil, tree.root)
	} else {
		stack = tree.seekForward(lo, loIncl)
	}
	if hi == nil {
		return tree.forwardSeq(stack)
	}
	return tree.boundedSeq(stack, hi, hiIncl)
}

// ReverseRange returns a lazy sequence of the entries with keys between lo
// and hi, in reverse key order (i.e. starting near hi).
func (tree Tree) ReverseRange(lo, hi any, loIncl, hiIncl bool) seq.Seq {
	tree = tree.init()
	if tree.root == nil {
		return nil
	}
	var stack []slot
	if hi == nil {
		stack = descendMax(nil, tree.root)
	} else {
		stack = tree.seekBackward(hi, hiIncl)
	}
	if lo == nil {
		return tree.reverseSeq(stack)
	}
	return tree.boundedReverseSeq(stack, lo, loIncl)
}

// --- Walker mechanics ---------------------------------------------------------

func walkItem(stack []slot) coll.Entry {
	top := stack[len(stack)-1]
	item := top.node.items[top.index]
	return coll.Entry{Key: item.key, Value: item.value}
}

// descendMin pushes node and the chain of leftmost children below it.
func descendMin(stack []slot, node *xnode) []slot {
	for !node.isLeaf() {
		stack = append(stack, slot{node: node, index: 0})
		node = node.children[0]
	}
	return append(stack, slot{node: node, index: 0})
}

// descendMax pushes node and the chain of rightmost children below it.
func descendMax(stack []slot, node *xnode) []slot {
	for !node.isLeaf() {
		stack = append(stack, slot{node: node, index: len(node.items) - 1})
		node = node.children[len(node.children)-1]
	}
	return append(stack, slot{node: node, index: len(node.items) - 1})
}

// stepForward advances a forward walk past the item the stack points at,
// returning nil when the walk is exhausted.
func stepForward(prev []slot) []slot {
	stack := make([]slot, len(prev))
	copy(stack, prev)
	top := &stack[len(stack)-1]
	if !top.node.isLeaf() {
		// yield the subtree right of the item, then the next item
		top.index++
		return descendMin(stack, top.node.children[top.index])
	}
	top.index++
	for len(stack) > 0 {
		top = &stack[len(stack)-1]
		if top.index < len(top.node.items) {
			return stack
		}
		stack = stack[:len(stack)-1]
	}
	return nil
}

// stepBackward advances a reverse walk past the item the stack points at.
func stepBackward(prev []slot) []slot {
	stack := make([]slot, len(prev))
	copy(stack, prev)
	top := &stack[len(stack)-1]
	if !top.node.isLeaf() {
		// yield the subtree left of the item, then the previous item
		child := top.node.children[top.index]
		top.index--
		return descendMax(stack, child)
	}
	top.index--
	for len(stack) > 0 {
		top = &stack[len(stack)-1]
		if top.index >= 0 {
			return stack
		}
		stack = stack[:len(stack)-1]
	}
	return nil
}

func (tree Tree) forwardSeq(stack []slot) seq.Seq {
	if len(stack) == 0 {
		return nil
	}
	return seq.Lazy(func() (any, seq.Seq, bool) {
		return walkItem(stack), tree.forwardSeq(stepForward(stack)), true
	})
}

func (tree Tree) reverseSeq(stack []slot) seq.Seq {
	if len(stack) == 0 {
		return nil
	}
	return seq.Lazy(func() (any, seq.Seq, bool) {
		return walkItem(stack), tree.reverseSeq(stepBackward(stack)), true
	})
}

func (tree Tree) boundedSeq(stack []slot, hi any, hiIncl bool) seq.Seq {
	if len(stack) == 0 {
		return nil
	}
	entry := walkItem(stack)
	if cmp := tree.compare(entry.Key, hi); cmp > 0 || (cmp == 0 && !hiIncl) {
		return nil
	}
	return seq.Lazy(func() (any, seq.Seq, bool) {
		return entry, tree.boundedSeq(stepForward(stack), hi, hiIncl), true
	})
}

func (tree Tree) boundedReverseSeq(stack []slot, lo any, loIncl bool) seq.Seq {
	if len(stack) == 0 {
		return nil
	}
	entry := walkItem(stack)
	if cmp := tree.compare(entry.Key, lo); cmp < 0 || (cmp == 0 && !loIncl) {
		return nil
	}
	return seq.Lazy(func() (any, seq.Seq, bool) {
		return entry, tree.boundedReverseSeq(stepBackward(stack), lo, loIncl), true
	})
}

// --- Seeking ------------------------------------------------------------------

// seekForward positions a forward walk onto the first item admissible for
// lower bound lo.
func (tree Tree) seekForward(lo any, incl bool) []slot {
	var stack []slot
	node := tree.root
	for {
		items := node.items
		index := sort.Search(len(items), func(i int) bool {
			cmp := tree.compare(items[i].key, lo)
			if incl {
				return cmp >= 0
			}
			return cmp > 0
		})
		stack = append(stack, slot{node: node, index: index})
		if node.isLeaf() {
			break
		}
		node = node.children[index]
	}
	// pop exhausted slots; an index past the last item means the bound lies
	// right of every item in that node
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.index < len(top.node.items) {
			return stack
		}
		stack = stack[:len(stack)-1]
	}
	return nil
}

// seekBackward positions a reverse walk onto the last item admissible for
// upper bound hi.
func (tree Tree) seekBackward(hi any, incl bool) []slot {
	var stack []slot
	node := tree.root
	for {
		items := node.items
		index := sort.Search(len(items), func(i int) bool {
			cmp := tree.compare(items[i].key, hi)
			if incl {
				return cmp > 0
			}
			return cmp >= 0
		})
		// index is the child link to descend into; index-1 the item candidate
		stack = append(stack, slot{node: node, index: index - 1})
		if node.isLeaf() {
			break
		}
		node = node.children[index]
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.index >= 0 {
			return stack
		}
		stack = stack[:len(stack)-1]
	}
	return nil
}
