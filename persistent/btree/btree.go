package btree

/*
Remarks:
--------

- 'cow' stands for copy-on-write and is used throughout the code for variables
  holding clones of nodes.

- We use a programming-style reminiscent of functional programming (see the
  foldR-based re-balancing) where it makes things easier to understand.

- A new modified incarnation of a tree always is reflected by a new tree.root.

*/

import (
	"strings"

	"github.com/npillmayer/persist/coll"
	"github.com/npillmayer/persist/maybe"
)

const defaultLowWaterMark uint = 3 // 2^n - 1
// The high water mark has to be at least twice the low water mark: a split of
// an overfull node then yields two halves of exactly lowWaterMark items, and
// merging two underfull siblings never overflows the merged node again.
const defaultHighWaterMark uint = defaultLowWaterMark * 2

// Tree is a persistent in-memory B-tree, mapping keys to values in the order
// of its comparator. The zero value is an empty tree ordered by coll.Compare,
// i.e. this is legal:
//
//	tree := btree.Tree{}.With("a", 1)
//
// returning a tree containing a single key "a" associated with value 1.
//
// Trees are immutable: With and WithDeleted return new incarnations, sharing
// all untouched nodes with their predecessor.
type Tree struct {
	root          *xnode
	size          int
	depth         uint
	lowWaterMark  uint
	highWaterMark uint
	compare       coll.Comparator
}

// Immutable constructs a B-tree with options, if you need any.
// Use it like this:
//
//	tree := btree.Immutable(btree.Degree(16))
//	tree = tree.With(42, "Galaxy")
//	value, found := tree.Find(42)   // returns "Galaxy", true
//
func Immutable(opts ...Option) Tree {
	tree := Tree{}.init()
	for _, option := range opts {
		tree = option(tree)
	}
	return tree
}

// Option is a type to help initializing B-trees at creation time.
type Option func(Tree) Tree

// Degree is an option to set the minimum number of children a node in the
// tree owns. The lower bound for the degree is 3.
func Degree(n int) Option {
	return func(tree Tree) Tree {
		low := max(2, n-1)
		tree.lowWaterMark = uint(low)
		tree.highWaterMark = uint(low * 2)
		return tree
	}
}

// CompareWith is an option to set the ordering of keys. cmp has to establish
// a total order over all keys used with the tree.
func CompareWith(cmp coll.Comparator) Option {
	return func(tree Tree) Tree {
		tree.compare = cmp
		return tree
	}
}

// init fills in defaults for zero-value trees, making Tree{} usable.
func (tree Tree) init() Tree {
	if tree.lowWaterMark == 0 {
		tree.lowWaterMark = defaultLowWaterMark
		tree.highWaterMark = defaultHighWaterMark
	}
	if tree.compare == nil {
		tree.compare = coll.Compare
	}
	return tree
}

// --- API ------------------------------------------------------------------

// Len returns the number of entries in the tree.
func (tree Tree) Len() int {
	return tree.size
}

// Find locates a key in a tree, if present, and returns the value associated
// with the key. If key is not found, nil will be returned, together with
// found=false.
func (tree Tree) Find(key any) (any, bool) {
	tree = tree.init()
	var found bool
	var path slotPath = make(slotPath, 0, tree.depth)
	if found, path = tree.findKeyAndPath(key, path); found {
		return path.last().item().value, true
	}
	return nil, false
}

// GetOr returns the value associated with key, or def if key is not present.
// A nil value stored under key is returned as nil, not as def.
func (tree Tree) GetOr(key, def any) any {
	if value, found := tree.Find(key); found {
		return value
	}
	return def
}

// FindEntry locates key and returns its entry (key and value), together with
// a flag indicating presence.
func (tree Tree) FindEntry(key any) (coll.Entry, bool) {
	tree = tree.init()
	var found bool
	var path slotPath = make(slotPath, 0, tree.depth)
	if found, path = tree.findKeyAndPath(key, path); found {
		item := path.last().item()
		return coll.Entry{Key: item.key, Value: item.value}, true
	}
	return coll.Entry{}, false
}

// Has returns true if key is present in the tree.
func (tree Tree) Has(key any) bool {
	_, found := tree.Find(key)
	return found
}

// With returns a copy of a tree with a new key inserted, which is associated
// with `value`. If an entry for key is already present in tree, the associated
// value will be replaced (in a new incarnation of the tree, nevertheless).
func (tree Tree) With(key, value any) Tree {
	tree = tree.init()
	var found bool
	var path slotPath = make(slotPath, 0, tree.depth)
	if found, path = tree.findKeyAndPath(key, path); found {
		return tree.replacing(key, value, path)
	}
	tracer().Debugf("insert: slot path = %s", path)
	item := xitem{key: key, value: value}
	if tree.root == nil { // virgin tree ⇒ insert first node and return
		newTree := tree.shallowCloneWithRoot(xnode{}.withInsertedItem(item, 0))
		newTree.depth, newTree.size = 1, 1
		return newTree
	}
	leafSlot := path.last()
	assertThat(leafSlot.node.isLeaf(), "attempt to insert item at non-leaf")
	cow := leafSlot.node.withInsertedItem(item, leafSlot.index) // copy-on-write
	tracer().Debugf("insert: created copy of (leaf + key@%d) = %s", leafSlot.index, &cow)
	newRoot := path.dropLast().foldR(splitAndClone(tree.highWaterMark, tree.compare),
		slot{node: &cow, index: leafSlot.index},
	)
	newTree := tree.shallowCloneWithRoot(*newRoot.node)
	newTree.size++
	if newRoot.node.overfull(tree.highWaterMark) {
		newRoot = xnode{}.splitChild(newRoot, tree.compare)
		newTree.root = newRoot.node
		newTree.depth++
	}
	return newTree
}

// WithDeleted returns a copy of a tree with key deleted, if present.
// If key is not found, tree is returned unchanged.
func (tree Tree) WithDeleted(key any) Tree {
	tree = tree.init()
	var found bool
	var path slotPath = make(slotPath, 0, tree.depth)
	if found, path = tree.findKeyAndPath(key, path); !found {
		return tree // no need for modification
	}
	tracer().Debugf("deletion: slot path = %s", path)
	del := path.last()
	var leafSlot slot
	if del.node.isLeaf() {
		cow := del.node.withDeletedItem(del.index) // copy-on-write
		leafSlot = slot{node: &cow, index: del.index}
	} else { // for inner nodes:
		// swap item with rightmost item of left subtree or leftmost item of
		// right subtree, then delete it from the leaf it was stolen from
		cow := del.node.clone()
		path[len(path)-1].node = &cow
		delSlot := slot{node: &cow, index: del.index}
		leafItem, leafPath := delSlot.stealPredOrSucc(path)
		cow.items[del.index] = leafItem
		l := leafPath.last()
		cowLeaf := l.node.withDeletedItem(l.index)
		path = leafPath // continue with path from root to leaf
		leafSlot = slot{node: &cowLeaf, index: l.index}
	}
	// balance from leaf-node upwards, starting at the leaf where we deleted an item
	newRoot := path.dropLast().foldR(balance(tree.lowWaterMark), leafSlot)
	tracer().Debugf("deletion: new root = %s", newRoot)
	newTree := tree.shallowCloneWithRoot(*newRoot.node)
	newTree.size--
	switch { // catch border cases where root is empty after deletion
	case newRoot.len() == 0 && !newRoot.node.isLeaf():
		newTree.root = newRoot.node.children[0]
		newTree.depth--
	case newRoot.len() == 0 && newRoot.node.isLeaf():
		newTree.root = nil
		newTree.depth = 0
	}
	return newTree
}

// Min returns the entry with the smallest key, or nothing for an empty tree.
func (tree Tree) Min() maybe.Maybe[coll.Entry] {
	if tree.root == nil {
		return maybe.Nothing[coll.Entry]()
	}
	node := tree.root
	for !node.isLeaf() {
		node = node.children[0]
	}
	item := node.items[0]
	return maybe.Just(coll.Entry{Key: item.key, Value: item.value})
}

// Max returns the entry with the greatest key, or nothing for an empty tree.
func (tree Tree) Max() maybe.Maybe[coll.Entry] {
	if tree.root == nil {
		return maybe.Nothing[coll.Entry]()
	}
	node := tree.root
	for !node.isLeaf() {
		node = node.children[len(node.children)-1]
	}
	item := node.items[len(node.items)-1]
	return maybe.Just(coll.Entry{Key: item.key, Value: item.value})
}

// Equal compares tree to other collections for structural equality, i.e.
// same set of key/value pairs (ordering and degree do not matter).
func (tree Tree) Equal(other any) bool {
	return coll.Equal(tree, other)
}

// Hash returns a structural hash value, consistent with Equal.
func (tree Tree) Hash() uint32 {
	return coll.Hash(tree)
}

func (tree Tree) String() string {
	var sb strings.Builder
	sb.WriteRune('{')
	first := true
	for s := tree.Seq(); s != nil; s = s.Next() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		entry := s.First().(coll.Entry)
		sb.WriteString(entry.String())
	}
	sb.WriteRune('}')
	return sb.String()
}

// --- Internal helpers -------------------------------------------------------

// findKeyAndPath tracks the path from the root to the slot where key lives,
// or — when not found — to the leaf slot where key would be inserted.
func (tree Tree) findKeyAndPath(key any, pathBuf slotPath) (found bool, path slotPath) {
	path = pathBuf[:0]
	if tree.root == nil {
		return
	}
	var index int
	var node *xnode = tree.root // walking nodes, start search at the top
	for !node.isLeaf() {
		found, index = node.findSlot(key, tree.compare)
		path = append(path, slot{node: node, index: index})
		if found {
			return // we have an exact match
		}
		node = node.children[index]
	}
	found, index = node.findSlot(key, tree.compare)
	path = append(path, slot{node: node, index: index})
	tracer().Debugf("slot path for key=%v -> %s", key, path)
	return
}

// replacing swaps the value in the slot at the end of path, cloning the seam
// from the root down to it.
func (tree Tree) replacing(key, value any, path slotPath) Tree {
	assertThat(len(path) > 0, "cannot replace item without path")
	hit := path.last() // slot where key lives
	cow := hit.node.withReplacedValue(xitem{key: key, value: value}, hit.index)
	newRoot := path.dropLast().foldR(cloneSeam, slot{node: &cow, index: hit.index})
	return tree.shallowCloneWithRoot(*newRoot.node)
}

func (tree Tree) shallowCloneWithRoot(node xnode) Tree {
	tree.root = &node
	return tree
}
