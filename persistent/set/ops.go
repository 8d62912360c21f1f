package set

import (
	"github.com/npillmayer/persist/seq"
)

// Set algebra. Binary operations keep the backing store (and ordering) of
// the receiver; the other set only needs to answer membership queries.

// Union returns a set holding all elements of s and other.
func (s Set) Union(other Set) Set {
	s = s.init()
	count := 0
	for t := other.Seq(); !seq.IsEmpty(t); t = seq.Next(t) {
		s.eng = s.eng.with(seq.First(t))
		count++
	}
	tracer().Debugf("set union merged %d elements", count)
	return s
}

// Intersect returns a set holding the elements present in both s and other.
func (s Set) Intersect(other Set) Set {
	result := s.init()
	for t := s.Seq(); !seq.IsEmpty(t); t = seq.Next(t) {
		if x := seq.First(t); !other.Contains(x) {
			result.eng = result.eng.without(x)
		}
	}
	return result
}

// Difference returns a set holding the elements of s not present in other.
func (s Set) Difference(other Set) Set {
	result := s.init()
	for t := other.Seq(); !seq.IsEmpty(t); t = seq.Next(t) {
		result.eng = result.eng.without(seq.First(t))
	}
	return result
}

// SubsetOf returns true if every element of s is an element of other.
func (s Set) SubsetOf(other Set) bool {
	if s.Len() > other.Len() {
		return false
	}
	for t := s.Seq(); !seq.IsEmpty(t); t = seq.Next(t) {
		if !other.Contains(seq.First(t)) {
			return false
		}
	}
	return true
}

// SupersetOf returns true if every element of other is an element of s.
func (s Set) SupersetOf(other Set) bool {
	return other.SubsetOf(s)
}
