package seq

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// counting returns the unbounded sequence 0, 1, 2, … and increments realized
// each time a cell's producer actually runs.
func counting(from int, realized *int32) Seq {
	return Lazy(func() (any, Seq, bool) {
		atomic.AddInt32(realized, 1)
		return from, counting(from+1, realized), true
	})
}

func TestLazyProducerRunsOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.seq")
	defer teardown()
	//
	var realized int32
	s := counting(0, &realized)
	_ = First(s)
	_ = First(s)
	_ = IsEmpty(s)
	if realized != 1 {
		t.Errorf("expected cell to be realized exactly once, was %d times", realized)
	}
}

func TestLazyTakeForcesNoMoreThanDemanded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.seq")
	defer teardown()
	//
	var realized int32
	items := Slice(Take(5, counting(0, &realized)))
	if len(items) != 5 || items[0] != 0 || items[4] != 4 {
		t.Errorf("expected prefix 0…4 of unbounded sequence, got %v", items)
	}
	if realized != 5 {
		t.Errorf("expected exactly 5 cells to be realized, were %d", realized)
	}
}

func TestLazyRestDoesNotForceTailHead(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.seq")
	defer teardown()
	//
	var realized int32
	s := counting(0, &realized)
	_ = Rest(s)
	if realized != 1 {
		t.Errorf("expected Rest to force only the cell itself, realized %d", realized)
	}
}

func TestLazyConcurrentForce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.seq")
	defer teardown()
	//
	var realized int32
	s := counting(7, &realized)
	var wg sync.WaitGroup
	results := make([]any, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = First(s)
		}(i)
	}
	wg.Wait()
	if realized != 1 {
		t.Errorf("expected concurrent demands to realize the cell once, was %d times", realized)
	}
	for i, r := range results {
		if r != 7 {
			t.Fatalf("expected goroutine %d to observe 7, observed %v", i, r)
		}
	}
}

func TestLazyIterate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.seq")
	defer teardown()
	//
	double := func(x any) any { return x.(int) * 2 }
	s := Take(4, Iterate(double, 1))
	if str := Format(s, "(", ")"); str != "(1 2 4 8)" {
		t.Errorf("expected iteration (1 2 4 8), is %s", str)
	}
}

func TestLazyRangeOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.seq")
	defer teardown()
	//
	if str := Format(RangeOf(0, 5, 1), "(", ")"); str != "(0 1 2 3 4)" {
		t.Errorf("expected range (0 1 2 3 4), is %s", str)
	}
	if str := Format(RangeOf(5, 0, -2), "(", ")"); str != "(5 3 1)" {
		t.Errorf("expected range (5 3 1), is %s", str)
	}
	if RangeOf(3, 3, 1) != nil {
		t.Error("expected empty range to be nil, isn't")
	}
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected range with step 0 to panic, didn't")
		}
	}()
	RangeOf(0, 1, 0)
}

func TestLazyMapFilter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.seq")
	defer teardown()
	//
	square := func(x any) any { return x.(int) * x.(int) }
	even := func(x any) bool { return x.(int)%2 == 0 }
	s := Map(square, Filter(even, RangeOf(0, 7, 1)))
	if str := Format(s, "(", ")"); str != "(0 4 16 36)" {
		t.Errorf("expected squares of evens (0 4 16 36), is %s", str)
	}
	if Map(square, nil) != nil {
		t.Error("expected map over nil sequence to be nil, isn't")
	}
}

func TestLazyDrop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.seq")
	defer teardown()
	//
	s := Drop(3, RangeOf(0, 6, 1))
	if str := Format(s, "(", ")"); str != "(3 4 5)" {
		t.Errorf("expected (3 4 5) after dropping 3, is %s", str)
	}
	if !IsEmpty(Drop(10, RangeOf(0, 3, 1))) {
		t.Error("expected dropping past the end to be empty, isn't")
	}
}

func TestLazyConcat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.seq")
	defer teardown()
	//
	s := Concat(NewList(1, 2), nil, Empty, NewList(3))
	if str := Format(s, "(", ")"); str != "(1 2 3)" {
		t.Errorf("expected concatenation (1 2 3), is %s", str)
	}
	if !IsEmpty(Concat(nil, Empty)) {
		t.Error("expected concatenation of empties to be empty, isn't")
	}
}

func TestLazyReduce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.seq")
	defer teardown()
	//
	sum := Reduce(func(acc, x any) any { return acc.(int) + x.(int) }, 0, RangeOf(1, 11, 1))
	if sum != 55 {
		t.Errorf("expected sum of 1…10 to be 55, is %v", sum)
	}
}
