package trie

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDenseLeafSharing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.trie")
	defer teardown()
	//
	leaf := NewLeaf([]any{1, 2, 3})
	modified := leaf.WithLeafAt(1, 99)
	if leaf.LeafAt(1) != 2 {
		t.Errorf("expected original leaf to still hold 2 at pos 1, has %v", leaf.LeafAt(1))
	}
	if modified.LeafAt(1) != 99 {
		t.Errorf("expected modified leaf to hold 99 at pos 1, has %v", modified.LeafAt(1))
	}
}

func TestDenseChildSharing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.trie")
	defer teardown()
	//
	leafA, leafB := NewLeaf([]any{"a"}), NewLeaf([]any{"b"})
	inner := NewInner().WithChildAt(0, leafA).WithChildAt(1, leafB)
	modified := inner.WithChildAt(0, NewLeaf([]any{"x"}))
	if inner.ChildAt(0) != leafA {
		t.Error("expected original inner node to keep its child at slot 0, doesn't")
	}
	if modified.ChildAt(1) != leafB {
		t.Error("expected untouched child at slot 1 to be shared, isn't")
	}
}

func TestDenseNewPath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.trie")
	defer teardown()
	//
	leaf := NewLeaf([]any{42})
	top := NewPath(2*Bits, leaf)
	if top.IsLeaf() {
		t.Fatal("expected NewPath to produce an inner node, didn't")
	}
	if top.ChildAt(0).IsLeaf() {
		t.Fatal("expected path of depth 2 above leaf, got 1")
	}
	if top.ChildAt(0).ChildAt(0) != leaf {
		t.Error("expected leaf at the bottom of the path, isn't")
	}
}

func TestSparseSlots(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.trie")
	defer teardown()
	//
	var node *Sparse // nil node is a valid empty node
	if node.Len() != 0 {
		t.Errorf("expected empty node to have length 0, has %d", node.Len())
	}
	bit7, bit3 := uint32(1)<<7, uint32(1)<<3
	node = node.WithSlot(bit7, "seven")
	node = node.WithSlot(bit3, "three")
	if node.Len() != 2 {
		t.Fatalf("expected node to have 2 slots, has %d", node.Len())
	}
	// slots are kept in bit order
	if node.At(bit3) != "three" {
		t.Errorf("expected slot for bit 3 to hold 'three', has %v", node.At(bit3))
	}
	if !node.Has(bit7) || node.Has(uint32(1)<<5) {
		t.Error("expected node to have bits 3 and 7 occupied, and no others")
	}
}

func TestSparseWithoutSlot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.trie")
	defer teardown()
	//
	bitA, bitB := uint32(1)<<2, uint32(1)<<9
	node := (*Sparse)(nil).WithSlot(bitA, "a").WithSlot(bitB, "b")
	shrunk := node.WithoutSlot(bitA)
	if node.Len() != 2 {
		t.Errorf("expected original node to still have 2 slots, has %d", node.Len())
	}
	if shrunk.Len() != 1 || !shrunk.Has(bitB) {
		t.Errorf("expected shrunk node to hold just bit 9, has %d slots", shrunk.Len())
	}
	if shrunk.WithoutSlot(bitB) != nil {
		t.Error("expected removing the last slot to yield the nil node, didn't")
	}
}

func TestSparseBitFor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.trie")
	defer teardown()
	//
	hash := uint32(0b10111_00001)
	if BitFor(hash, 0) != 1<<1 {
		t.Errorf("expected bottom 5 bits of hash to select bit 1, got %b", BitFor(hash, 0))
	}
	if BitFor(hash, Bits) != 1<<0b10111 {
		t.Errorf("expected next 5 bits of hash to select bit 23, got %b", BitFor(hash, Bits))
	}
}
