package btree

import (
	"fmt"
	"strconv"
	"strings"
)

// --- Slot ---------------------------------------------------------------------

// slot holds a step of a path: a node together with the index of the item
// or child link the step refers to.
type slot struct {
	node  *xnode
	index int
}

func (s slot) String() string {
	return strconv.Itoa(s.index) + "@" + s.node.String()
}

func (s slot) item() xitem {
	return s.node.items[s.index]
}

// items returns a slice of items contained in s.node. If s is an empty slot
// (no node contained), a valid zero-length slice is returned (i.e., making
// it safe to call `s.items()` for empty slots).
func (s slot) items() []xitem {
	if s.node == nil {
		return []xitem{}
	}
	return s.node.items
}

func (s slot) len() int {
	if s.node == nil {
		return 0
	}
	return len(s.node.items)
}

func (s slot) underfull(lowWaterMark uint) bool {
	if s.node == nil {
		return true
	}
	return s.node.underfull(lowWaterMark)
}

func (s slot) leftSibling(child slot) slot {
	if s.node == nil || len(s.node.children) == 0 || s.index == 0 {
		return slot{}
	}
	assertThat(s.index <= len(s.node.children), "internal inconsistency: child index overflow")
	lsib := s.node.children[s.index-1]
	tracer().Debugf("left sibling of %s = %s, index in parent is %d", child, lsib, s.index-1)
	return slot{node: lsib, index: len(lsib.items)}
}

func (s slot) rightSibling(child slot) slot {
	if s.node == nil || len(s.node.children) == 0 || s.index >= len(s.node.children)-1 {
		return slot{}
	}
	rsib := s.node.children[s.index+1]
	tracer().Debugf("right sibling of %s = %s, index in parent is %d", child, rsib, s.index+1)
	return slot{node: rsib, index: len(rsib.items)}
}

// mergeinfo is an ad-hoc tuple for merging tree nodes. It points to the
// separator slot in the parent node, together with the two child nodes to
// be merged.
type mergeinfo struct {
	parent slot
	left   slot
	right  slot
}

// siblings2 returns child and a sibling (either left or right) as a correctly
// ordered pair, with the parent slot shifted to the separator item between
// the two. If child is an only child, a pair with an empty right sibling will
// be returned.
func (s slot) siblings2(child slot) mergeinfo {
	assertThat(!s.node.isLeaf(), "attempt to find siblings for a leaf")
	assertThat(s.index < len(s.node.children), "internal inconsistency: child index overflow")
	mi := mergeinfo{parent: s}
	sbl := s.leftSibling(child)
	if sbl.node != nil {
		mi.left, mi.right = sbl, child
		mi.parent.index--
	} else { // no left sibling available
		sbl = s.rightSibling(child)
		mi.left, mi.right = child, sbl
	}
	assertThat(mi.left.node != nil, "sibling-pair needs to have non-empty left sibling")
	return mi
}

// stealPredOrSucc walks down into one of the subtrees adjacent to the item
// at s (the in-order predecessor's or successor's subtree, whichever holds
// more items at the top), extending path down to the leaf holding the item
// to steal. The caller is expected to delete the stolen item from the leaf
// and re-balance along the returned path.
//
// s is the last slot of path; its index may be shifted to reflect the child
// link followed.
func (s slot) stealPredOrSucc(path slotPath) (xitem, slotPath) {
	left := s.node.children[s.index]
	right := s.node.children[s.index+1]
	if len(left.items) >= len(right.items) {
		// steal in-order predecessor: rightmost item of left subtree
		node := left
		for !node.isLeaf() {
			path = append(path, slot{node: node, index: len(node.children) - 1})
			node = node.children[len(node.children)-1]
		}
		path = append(path, slot{node: node, index: len(node.items) - 1})
		return node.items[len(node.items)-1], path
	}
	// steal in-order successor: leftmost item of right subtree
	path[len(path)-1].index = s.index + 1
	node := right
	for !node.isLeaf() {
		path = append(path, slot{node: node, index: 0})
		node = node.children[0]
	}
	path = append(path, slot{node: node, index: 0})
	return node.items[0], path
}

// --- Path ---------------------------------------------------------------------

// slotPath is the path from a tree's root to an item's slot.
type slotPath []slot

func (path slotPath) String() string {
	var sb = strings.Builder{}
	sb.WriteRune('[')
	for _, s := range path {
		sb.WriteString(fmt.Sprintf("⟨%s⟩", s))
	}
	sb.WriteRune(']')
	return sb.String()
}

func (path slotPath) last() slot {
	if len(path) == 0 {
		return slot{}
	}
	return path[len(path)-1]
}

// foldR folds f over path from right to left, i.e. from the leafs upwards.
func (path slotPath) foldR(f func(slot, slot) slot, zero slot) slot {
	r := zero
	for i := len(path) - 1; i >= 0; i-- {
		r = f(path[i], r)
	}
	return r
}

func (path slotPath) dropLast() slotPath {
	if len(path) == 0 {
		return path
	}
	return path[:len(path)-1]
}
