package vector

import "github.com/npillmayer/persist/seq"

// vectorSeq is a forward sequential view on a vector. Its tail is the same
// vector with an advanced offset, so Rest/Next are O(1) and allocate no
// intermediate collection.
type vectorSeq struct {
	v    Vector
	from int
}

// Seq returns a sequential view over the elements, or nil for an empty
// vector.
func (v Vector) Seq() seq.Seq {
	if v.length == 0 {
		return nil
	}
	return vectorSeq{v: v}
}

func (s vectorSeq) First() any {
	return s.v.Nth(s.from)
}

func (s vectorSeq) Next() seq.Seq {
	if s.from+1 >= s.v.Len() {
		return nil
	}
	return vectorSeq{v: s.v, from: s.from + 1}
}

func (s vectorSeq) Rest() seq.Seq {
	if next := s.Next(); next != nil {
		return next
	}
	return seq.Empty
}

func (vectorSeq) Sequential() {}

func (s vectorSeq) String() string {
	return seq.Format(s, "(", ")")
}

// reverseSeq walks a vector from the end towards the front.
type reverseSeq struct {
	v  Vector
	at int
}

// ReverseSeq returns a sequential view over the elements in reverse order,
// without copying or re-sorting; nil for an empty vector.
func (v Vector) ReverseSeq() seq.Seq {
	if v.length == 0 {
		return nil
	}
	return reverseSeq{v: v, at: v.Len() - 1}
}

func (s reverseSeq) First() any {
	return s.v.Nth(s.at)
}

func (s reverseSeq) Next() seq.Seq {
	if s.at == 0 {
		return nil
	}
	return reverseSeq{v: s.v, at: s.at - 1}
}

func (s reverseSeq) Rest() seq.Seq {
	if next := s.Next(); next != nil {
		return next
	}
	return seq.Empty
}

func (reverseSeq) Sequential() {}

func (s reverseSeq) String() string {
	return seq.Format(s, "(", ")")
}
