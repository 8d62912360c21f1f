package btree

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/persist/coll"
)

// --- Nodes -------------------------------------------------------------------

// xitem is a key together with its associated value.
type xitem struct {
	key   any
	value any
}

func (item xitem) String() string {
	return fmt.Sprintf("%v", item.key)
}

// xnode is a node of a B-tree. Leafs have no children; inner nodes hold
// len(items)+1 child links. Nodes are never mutated once linked into a
// tree: the with… methods all return modified copies.
type xnode struct {
	items    []xitem
	children []*xnode
}

func (node *xnode) isLeaf() bool {
	return len(node.children) == 0
}

func (node *xnode) String() string {
	if node == nil {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteRune('[')
	for i, item := range node.items {
		if i > 0 {
			sb.WriteRune(' ')
		}
		sb.WriteString(item.String())
	}
	sb.WriteRune(']')
	return sb.String()
}

func (node xnode) clone() xnode {
	return node.cloneWithCapacity(len(node.items))
}

func (node xnode) cloneWithCapacity(cap int) xnode {
	if cap < len(node.items) {
		cap = len(node.items)
	}
	cow := xnode{items: make([]xitem, len(node.items), cap)}
	copy(cow.items, node.items)
	if !node.isLeaf() {
		cow.children = make([]*xnode, len(node.children), cap+1)
		copy(cow.children, node.children)
	}
	return cow
}

// slice copies out the sub-node covering items[from:to], including the
// child links surrounding them. to < 0 selects up to the last item.
func (node xnode) slice(from, to int) xnode {
	if to < 0 {
		to = len(node.items)
	}
	s := xnode{items: make([]xitem, to-from)}
	copy(s.items, node.items[from:to])
	if !node.isLeaf() {
		s.children = make([]*xnode, to-from+1)
		copy(s.children, node.children[from:to+1])
	}
	return s
}

// asNonLeaf equips a leaf with an (empty) children-vector, making it an
// inner node. Required when a new root grows out of a split.
func (node xnode) asNonLeaf() xnode {
	if !node.isLeaf() {
		return node
	}
	node.children = make([]*xnode, len(node.items)+1)
	return node
}

func (node *xnode) overfull(highWaterMark uint) bool {
	return node != nil && uint(len(node.items)) > highWaterMark
}

func (node *xnode) underfull(lowWaterMark uint) bool {
	return node == nil || uint(len(node.items)) < lowWaterMark
}

// findSlot locates key within node, or the child link to descend into.
// sort.Search will find the smallest index for which items[i].key ≥ key.
func (node *xnode) findSlot(key any, compare coll.Comparator) (bool, int) {
	items, itemcnt := node.items, len(node.items)
	slotinx := sort.Search(itemcnt, func(i int) bool {
		return compare(items[i].key, key) >= 0
	})
	return slotinx < itemcnt && compare(items[slotinx].key, key) == 0, slotinx
}

// --- Copy-on-write node modification -----------------------------------------

func (node xnode) withReplacedValue(item xitem, at int) xnode {
	assertThat(at < len(node.items), "given item index out of range: %d ≥ %d", at, len(node.items))
	cow := node.clone()
	cow.items[at].value = item.value
	return cow
}

// withInsertedItem inserts item at position `at`, shifting the tail of
// the node to the right. For inner nodes a vacant child link is inserted
// at position `at` as well; callers are expected to fill it in.
func (node xnode) withInsertedItem(item xitem, at int) xnode {
	assertThat(at <= len(node.items), "given item index out of range: %d > %d", at, len(node.items))
	cow := node.cloneWithCapacity(ceiling(len(node.items) + 1))
	cow.items = append(cow.items, xitem{})
	copy(cow.items[at+1:], cow.items[at:])
	cow.items[at] = item
	if !cow.isLeaf() {
		cow.children = append(cow.children, nil)
		copy(cow.children[at+1:], cow.children[at:])
		cow.children[at] = nil
	}
	return cow
}

// withDeletedItem removes the item at position `at` together with the
// child link at the same position.
func (node xnode) withDeletedItem(at int) xnode {
	assertThat(at < len(node.items), "given item index out of range: %d ≥ %d", at, len(node.items))
	cow := node.clone()
	cow.items = append(cow.items[:at], cow.items[at+1:]...)
	if !cow.isLeaf() {
		cow.children = append(cow.children[:at], cow.children[at+1:]...)
	}
	return cow
}

// withCutRight removes the rightmost item of a node, returning the copy,
// the item, and the item's right child link (nil for leafs).
func (node xnode) withCutRight() (xnode, xitem, *xnode) {
	assertThat(len(node.items) > 0, "attempt to cut right item from empty node")
	cow := node.clone()
	item := cow.items[len(cow.items)-1]
	cow.items = cow.items[:len(cow.items)-1]
	var child *xnode
	if !cow.isLeaf() {
		child = cow.children[len(cow.children)-1]
		cow.children = cow.children[:len(cow.children)-1]
	}
	return cow, item, child
}

// withCutLeft removes the leftmost item of a node, returning the copy,
// the item, and the item's left child link (nil for leafs).
func (node xnode) withCutLeft() (xnode, xitem, *xnode) {
	assertThat(len(node.items) > 0, "attempt to cut left item from empty node")
	cow := node.clone()
	item := cow.items[0]
	cow.items = cow.items[1:]
	var child *xnode
	if !cow.isLeaf() {
		child = cow.children[0]
		cow.children = cow.children[1:]
	}
	return cow, item, child
}

// splitChild splits an overfull child node around its median item.
// It is not checked if the child is indeed overfull.
// Returns a modified copy of node with 2 new children, where the left one
// substitutes a child of node.
//
// It's legal to pass in xnode{} as node (in order to create a new Tree.root).
func (node xnode) splitChild(s slot, compare coll.Comparator) slot {
	child := s.node
	half := len(child.items) / 2
	median := child.items[half]
	siblingL := child.slice(0, half)
	siblingR := child.slice(half+1, -1)
	found, index := node.findSlot(median.key, compare)
	assertThat(!found, "internal inconsistency: child has same key as parent (during split)")
	cow := node.withInsertedItem(median, index).asNonLeaf()
	cow.children[index] = &siblingL
	cow.children[index+1] = &siblingR
	return slot{node: &cow, index: index}
}

// --- Rebalancing combinators --------------------------------------------------

// splitAndClone is the foldR-operator for insertion: overfull children get
// split, others just re-linked into a clone of their parent.
func splitAndClone(highWaterMark uint, compare coll.Comparator) func(slot, slot) slot {
	return func(parent, child slot) slot {
		tracer().Debugf("split&propagate: parent = %s, child = %s", parent, child)
		if child.node.overfull(highWaterMark) {
			return parent.node.splitChild(child, compare)
		}
		return cloneSeam(parent, child)
	}
}

// cloneSeam clones parent and links the (already cloned) child into it.
func cloneSeam(parent, child slot) slot {
	cowParent := parent.node.clone()
	cowParent.children[parent.index] = child.node
	return slot{node: &cowParent, index: parent.index}
}

// balance is the foldR-operator for deletion: underfull children get
// refilled by rotation or merging, others just re-linked.
func balance(lowWaterMark uint) func(slot, slot) slot {
	return func(parent, child slot) slot {
		tracer().Debugf("balance: parent = %s, child = %s", parent, child)
		if child.node.underfull(lowWaterMark) {
			return parent.balance(child, lowWaterMark)
		}
		return cloneSeam(parent, child)
	}
}

func (parent slot) balance(child slot, lowWaterMark uint) slot {
	assertThat(len(parent.node.children) > 0, "attempt to balance parent w/ zero children")
	if !parent.leftSibling(child).underfull(lowWaterMark + 1) {
		// steal item from left sibling ⇒ rotate right
		return parent.rotateRight(parent.leftSibling(child), child)
	} else if !parent.rightSibling(child).underfull(lowWaterMark + 1) {
		// steal item from right sibling ⇒ rotate left
		return parent.rotateLeft(child, parent.rightSibling(child))
	}
	// steal item from parent and merge child with a sibling
	return parent.merge(parent.siblings2(child))
}

// merge steals an item from parent and merges child with a sibling.
// Returns a new parent which may be underfull or even empty (in case of
// parent being root).
func (parent slot) merge(siblings mergeinfo) slot {
	parent = siblings.parent // siblings2 may have shifted the separator index
	assertThat(parent.len() > 0, "attempt to extract an item from an empty parent node")
	separator := parent.item()
	cow := parent.node.withDeletedItem(parent.index)
	newParent := slot{node: &cow, index: parent.index}
	lsbl, rsbl := siblings.left, siblings.right // rsbl may be slot{}, i.e. empty
	cowch := lsbl.node.cloneWithCapacity(ceiling(lsbl.len() + rsbl.len() + 1))
	cowch.items = append(cowch.items, separator)
	cowch.items = append(cowch.items, rsbl.items()...)
	if !cowch.isLeaf() && rsbl.len() > 0 {
		cowch.children = append(cowch.children, rsbl.node.children...)
		assertThat(len(cowch.children) == len(cowch.items)+1, "internal inconsistency after merge")
	}
	cow.children[parent.index] = &cowch // link new parent to merged child
	return newParent
}

// rotateRight moves the rightmost item of the left sibling up into the
// parent, and the separator item of the parent down into child.
func (parent slot) rotateRight(lsbl, child slot) slot {
	cow := parent.node.clone()
	sep := parent.index - 1 // separator between left sibling and child
	cowlsbl, stolen, grandChild := lsbl.node.withCutRight()
	separator := cow.items[sep]
	cow.items[sep] = stolen
	cowChild := child.node.withInsertedItem(separator, 0)
	if !cowChild.isLeaf() {
		cowChild.children[0] = grandChild
	}
	cow.children[sep] = &cowlsbl
	cow.children[sep+1] = &cowChild
	return slot{node: &cow, index: parent.index}
}

// rotateLeft moves the leftmost item of the right sibling up into the
// parent, and the separator item of the parent down into child.
func (parent slot) rotateLeft(child, rsbl slot) slot {
	cow := parent.node.clone()
	sep := parent.index // separator between child and right sibling
	cowrsbl, stolen, grandChild := rsbl.node.withCutLeft()
	separator := cow.items[sep]
	cow.items[sep] = stolen
	cowChild := child.node.cloneWithCapacity(ceiling(len(child.node.items) + 1))
	cowChild.items = append(cowChild.items, separator)
	if !cowChild.isLeaf() {
		cowChild.children = append(cowChild.children, grandChild)
	}
	cow.children[sep] = &cowChild
	cow.children[sep+1] = &cowrsbl
	return slot{node: &cow, index: parent.index}
}

// --- Helpers ------------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("btree: "+msg, msgargs...)
		panic(msg)
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func ceiling(n int) int {
	return ((n + 1) >> 1) << 1
}
