package seq

import (
	"fmt"
	"strings"
)

// Seq is the sequential view shared by all collections of this module.
// A nil Seq denotes the terminated (empty) sequence.
type Seq interface {
	// First returns the element at the front, or nil for an empty sequence.
	First() any
	// Rest returns the tail. It never returns nil: the tail of the last
	// element is a (possibly unrealized) empty sequence. Rest never forces
	// the first element of the returned tail.
	Rest() Seq
	// Next returns the tail, or nil if the tail is empty. Determining
	// emptiness may cost one additional step of forcing compared to Rest.
	Next() Seq
}

// Empty is the canonical empty sequence.
var Empty Seq = emptySeq{}

type emptySeq struct{}

func (emptySeq) First() any { return nil }
func (emptySeq) Rest() Seq  { return Empty }
func (emptySeq) Next() Seq  { return nil }

func (emptySeq) String() string { return "()" }

// normalize reduces a tail to nil if it turns out to be empty, forcing at
// most one lazy cell.
func normalize(s Seq) Seq {
	if s == nil {
		return nil
	}
	switch t := s.(type) {
	case emptySeq:
		return nil
	case *LazySeq:
		t.force()
		if t.done {
			return nil
		}
		return t
	}
	return s
}

// First returns the first element of s, or nil for empty sequences.
func First(s Seq) any {
	if s = normalize(s); s == nil {
		return nil
	}
	return s.First()
}

// Rest returns the tail of s without forcing the tail's first element.
func Rest(s Seq) Seq {
	if s == nil {
		return Empty
	}
	return s.Rest()
}

// Next returns the tail of s, or nil if s has at most one element.
func Next(s Seq) Seq {
	if s = normalize(s); s == nil {
		return nil
	}
	return s.Next()
}

// Second returns the second element of s, or nil.
func Second(s Seq) any {
	return First(Next(s))
}

// IsEmpty checks whether s holds no elements, forcing at most one cell.
func IsEmpty(s Seq) bool {
	return normalize(s) == nil
}

// Count walks s and returns the number of elements. This is an O(n)
// traversal with no fast path; it diverges for unbounded sequences.
func Count(s Seq) int {
	n := 0
	for s = normalize(s); s != nil; s = s.Next() {
		n++
	}
	return n
}

// --- Cons cells --------------------------------------------------------------

// Cons is a single sequence cell: an element prepended to a tail.
type Cons struct {
	head any
	tail Seq
}

// NewCons prepends x to tail. A nil tail is legal and denotes the end.
func NewCons(x any, tail Seq) *Cons {
	return &Cons{head: x, tail: tail}
}

func (c *Cons) First() any { return c.head }

func (c *Cons) Rest() Seq {
	if c.tail == nil {
		return Empty
	}
	return c.tail
}

func (c *Cons) Next() Seq {
	return normalize(c.tail)
}

func (c *Cons) String() string {
	return Format(c, "(", ")")
}

// --- Persistent list ---------------------------------------------------------

// List is a persistent singly linked list with O(1) length and O(1)
// prepend. The zero value is not used; an empty list is a nil *List,
// which is a valid receiver for all methods.
type List struct {
	head   any
	tail   *List
	length int
}

// NewList builds a list holding the given items in order.
func NewList(items ...any) *List {
	var l *List
	for i := len(items) - 1; i >= 0; i-- {
		l = l.Cons(items[i])
	}
	return l
}

// Cons returns a new list with x prepended.
func (l *List) Cons(x any) *List {
	if l == nil {
		return &List{head: x, length: 1}
	}
	return &List{head: x, tail: l, length: l.length + 1}
}

// Len returns the number of elements; O(1).
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

func (l *List) First() any {
	if l == nil {
		return nil
	}
	return l.head
}

func (l *List) Rest() Seq {
	if l == nil || l.tail == nil {
		return Empty
	}
	return l.tail
}

func (l *List) Next() Seq {
	if l == nil || l.tail == nil {
		return nil
	}
	return l.tail
}

// Peek returns the element a Pop would remove, i.e. the front of the list.
func (l *List) Peek() any {
	return l.First()
}

// Pop returns the list without its front element. Popping an empty list is
// a programming error and panics.
func (l *List) Pop() *List {
	if l == nil {
		panic("seq: attempt to pop an empty list")
	}
	return l.tail
}

func (l *List) String() string {
	if l == nil {
		return "()"
	}
	return Format(l, "(", ")")
}

// --- Conversion helpers ------------------------------------------------------

// FromSlice returns a sequence over the items of a slice.
func FromSlice(items []any) Seq {
	if len(items) == 0 {
		return nil
	}
	return NewList(items...)
}

// Slice realizes s into a Go slice. Diverges for unbounded sequences.
func Slice(s Seq) []any {
	var items []any
	for s = normalize(s); s != nil; s = s.Next() {
		items = append(items, s.First())
	}
	return items
}

// Format renders a sequence with the given delimiters, realizing it fully.
func Format(s Seq, start, end string) string {
	b := strings.Builder{}
	b.WriteString(start)
	if s = normalize(s); s != nil {
		b.WriteString(fmt.Sprint(s.First()))
		for s = s.Next(); s != nil; s = s.Next() {
			b.WriteByte(' ')
			b.WriteString(fmt.Sprint(s.First()))
		}
	}
	b.WriteString(end)
	return b.String()
}
