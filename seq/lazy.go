package seq

import "sync"

// Producer computes one step of a lazy sequence: the next element, the tail
// to continue with, and ok=false once the sequence has terminated. A
// producer runs at most once per cell.
type Producer func() (element any, tail Seq, ok bool)

// LazySeq is a single cell of a lazy sequence. It starts out unrealized;
// the first demand for its element (or for knowledge about its emptiness)
// runs the producer exactly once and caches the outcome. Realization is
// guarded per cell, so unrelated sequences never contend with each other,
// and concurrent demands on the same cell all observe the same result.
type LazySeq struct {
	once    sync.Once
	produce Producer
	head    any
	tail    Seq
	done    bool
}

// Lazy returns a sequence whose first cell will be computed by produce on
// first demand.
func Lazy(produce Producer) Seq {
	return &LazySeq{produce: produce}
}

func (l *LazySeq) force() {
	l.once.Do(func() {
		head, tail, ok := l.produce()
		l.produce = nil
		if !ok {
			l.done = true
			return
		}
		l.head = head
		l.tail = tail
	})
}

func (l *LazySeq) First() any {
	l.force()
	if l.done {
		return nil
	}
	return l.head
}

func (l *LazySeq) Rest() Seq {
	l.force()
	if l.done || l.tail == nil {
		return Empty
	}
	return l.tail
}

func (l *LazySeq) Next() Seq {
	l.force()
	if l.done {
		return nil
	}
	return normalize(l.tail)
}

func (l *LazySeq) String() string {
	return Format(l, "(", ")")
}

// --- Combinators ---------------------------------------------------------

// Take returns a lazy sequence of at most n elements of s.
func Take(n int, s Seq) Seq {
	if n <= 0 || s == nil {
		return nil
	}
	return Lazy(func() (any, Seq, bool) {
		t := normalize(s)
		if t == nil {
			return nil, nil, false
		}
		return t.First(), Take(n-1, t.Rest()), true
	})
}

// Drop returns a lazy sequence of s without its first n elements.
func Drop(n int, s Seq) Seq {
	return Lazy(func() (any, Seq, bool) {
		t := normalize(s)
		for i := 0; i < n && t != nil; i++ {
			t = t.Next()
		}
		if t == nil {
			return nil, nil, false
		}
		return t.First(), t.Rest(), true
	})
}

// Map returns a lazy sequence of f applied to every element of s.
func Map(f func(any) any, s Seq) Seq {
	if s == nil {
		return nil
	}
	return Lazy(func() (any, Seq, bool) {
		t := normalize(s)
		if t == nil {
			return nil, nil, false
		}
		return f(t.First()), Map(f, t.Rest()), true
	})
}

// Filter returns a lazy sequence of the elements of s for which pred holds.
func Filter(pred func(any) bool, s Seq) Seq {
	if s == nil {
		return nil
	}
	return Lazy(func() (any, Seq, bool) {
		t := normalize(s)
		for t != nil && !pred(t.First()) {
			t = t.Next()
		}
		if t == nil {
			return nil, nil, false
		}
		return t.First(), Filter(pred, t.Rest()), true
	})
}

// Concat chains the given sequences into one lazy sequence.
func Concat(seqs ...Seq) Seq {
	return Lazy(func() (any, Seq, bool) {
		for i, s := range seqs {
			if t := normalize(s); t != nil {
				rest := append([]Seq{t.Rest()}, seqs[i+1:]...)
				return t.First(), Concat(rest...), true
			}
		}
		return nil, nil, false
	})
}

// Iterate returns the unbounded lazy sequence x, f(x), f(f(x)), …
func Iterate(f func(any) any, x any) Seq {
	return Lazy(func() (any, Seq, bool) {
		return x, Iterate(f, f(x)), true
	})
}

// RangeOf returns the integers from `from` (inclusive) up to `to`
// (exclusive), advancing by step. A step of 0 is a programming error.
func RangeOf(from, to, step int) Seq {
	if step == 0 {
		panic("seq: range with step 0")
	}
	if (step > 0 && from >= to) || (step < 0 && from <= to) {
		return nil
	}
	return Lazy(func() (any, Seq, bool) {
		return from, RangeOf(from+step, to, step), true
	})
}

// Reduce folds s left to right, starting from zero. Diverges for
// unbounded sequences.
func Reduce(f func(acc, x any) any, zero any, s Seq) any {
	acc := zero
	for t := normalize(s); t != nil; t = t.Next() {
		acc = f(acc, t.First())
	}
	return acc
}
