package set

import (
	"testing"

	"github.com/npillmayer/persist/coll"
	"github.com/npillmayer/persist/seq"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestSetZeroValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.set")
	defer teardown()
	//
	var s Set
	if s.Len() != 0 {
		t.Errorf("expected zero value set to be empty, has %d elements", s.Len())
	}
	if s.Contains("x") {
		t.Error("expected zero value set to contain nothing, does")
	}
	if s.Seq() != nil {
		t.Error("expected Seq of empty set to be nil, isn't")
	}
	s = s.Conj("x")
	if s.Len() != 1 || !s.Contains("x") {
		t.Errorf("expected zero value set to be usable, conj produced %v", s)
	}
}

func TestSetConjDisj(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.set")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	s := New(1, 2, 3, 2, 1)
	if s.Len() != 3 {
		t.Errorf("expected set of 3 distinct elements, has %d", s.Len())
	}
	again := s.Conj(2)
	if again.Len() != 3 {
		t.Errorf("expected re-adding an element to be a no-op, set grew to %d", again.Len())
	}
	gone := s.Disj(2, 99) // 99 not present
	if gone.Len() != 2 || gone.Contains(2) {
		t.Errorf("expected 2 to be gone after disj, set is %v", gone)
	}
	if twice := gone.Disj(2); !twice.Equal(gone) {
		t.Errorf("expected disj to be idempotent, second disj produced %v", twice)
	}
	if !s.Contains(2) {
		t.Error("expected original set to still hold 2, doesn't")
	}
}

func TestSetOrdered(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.set")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	s := Immutable(Ordered()).Conj(5, 1, 4, 2, 3)
	if !s.Sorted() {
		t.Error("expected tree-backed set to report Sorted, doesn't")
	}
	if New(1).Sorted() {
		t.Error("expected hashed set not to report Sorted, does")
	}
	if str := seq.Format(s.Seq(), "(", ")"); str != "(1 2 3 4 5)" {
		t.Errorf("expected ordered walk (1 2 3 4 5), is %s", str)
	}
	if str := seq.Format(s.ReverseSeq(), "(", ")"); str != "(5 4 3 2 1)" {
		t.Errorf("expected reverse walk (5 4 3 2 1), is %s", str)
	}
	if str := seq.Format(s.Range(2, 4, true, false), "(", ")"); str != "(2 3)" {
		t.Errorf("expected range [2,4) to be (2 3), is %s", str)
	}
	if str := seq.Format(s.ReverseRange(2, nil, true, true), "(", ")"); str != "(5 4 3 2)" {
		t.Errorf("expected reverse range from 2 up to be (5 4 3 2), is %s", str)
	}
}

func TestSetOrderedBy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.set")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	descending := func(a, b any) int { return -coll.Compare(a, b) }
	s := Immutable(OrderedBy(descending)).Conj(1, 2, 3)
	if str := seq.Format(s.Seq(), "(", ")"); str != "(3 2 1)" {
		t.Errorf("expected custom order (3 2 1), is %s", str)
	}
}

func TestSetRangeOnHashedSetPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.set")
	defer teardown()
	//
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected ranged traversal of a hashed set to panic, didn't")
		}
	}()
	New(1, 2, 3).Range(1, 2, true, true)
}

func TestSetAlgebra(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.set")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	a := New(1, 2, 3, 4)
	b := New(3, 4, 5, 6)
	assert.True(t, a.Union(b).Equal(New(1, 2, 3, 4, 5, 6)), "union")
	assert.True(t, a.Intersect(b).Equal(New(3, 4)), "intersection")
	assert.True(t, a.Difference(b).Equal(New(1, 2)), "difference")
	assert.True(t, b.Difference(a).Equal(New(5, 6)), "difference is not symmetric")
	//
	empty := New()
	assert.True(t, a.Union(empty).Equal(a), "union with Ø")
	assert.True(t, a.Intersect(empty).Equal(empty), "intersection with Ø")
	assert.True(t, a.Difference(a).Equal(empty), "difference with itself")
	//
	assert.Equal(t, 4, a.Len(), "operands must not change")
	assert.Equal(t, 4, b.Len(), "operands must not change")
}

func TestSetSubsets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.set")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	a := New(1, 2)
	b := New(1, 2, 3)
	assert.True(t, a.SubsetOf(b))
	assert.False(t, b.SubsetOf(a))
	assert.True(t, b.SupersetOf(a))
	assert.True(t, a.SubsetOf(a), "every set is a subset of itself")
	assert.True(t, New().SubsetOf(a), "Ø is a subset of everything")
}

func TestSetEqualAcrossBackingStores(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.set")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	hashed := New(1, 2, 3)
	ordered := Immutable(Ordered()).Conj(3, 1, 2)
	if !hashed.Equal(ordered) {
		t.Error("expected hashed and ordered set with same members to be equal, aren't")
	}
	if hashed.Hash() != ordered.Hash() {
		t.Errorf("expected equal sets to have equal hashes, %#x vs %#x",
			hashed.Hash(), ordered.Hash())
	}
	if hashed.Equal(New(1, 2)) {
		t.Error("expected sets of different size to differ, don't")
	}
	if hashed.Equal(New(1, 2, 4)) {
		t.Error("expected sets with different members to differ, don't")
	}
}

func TestSetFromSeq(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.set")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	s := FromSeq(seq.RangeOf(0, 5, 1))
	if s.Len() != 5 {
		t.Errorf("expected set of 5 elements from seq, has %d", s.Len())
	}
	for i := 0; i < 5; i++ {
		if !s.Contains(i) {
			t.Errorf("expected set to contain %d, doesn't", i)
		}
	}
}

func TestSetString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.set")
	defer teardown()
	//
	s := Immutable(Ordered()).Conj(1, 2)
	if str := s.String(); str != "#{1 2}" {
		t.Errorf("expected ordered set to print as #{1 2}, is %s", str)
	}
}
