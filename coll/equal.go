package coll

import (
	"fmt"
	"math"
	"reflect"

	"github.com/npillmayer/persist/seq"
)

// Equality classes. A value belongs to exactly one class; values of
// different classes are never equal. Sequential wins over associative, so
// vectors—which answer index lookups through the Associative interface—
// still compare element-by-element.
const (
	classScalar = iota
	classSequential
	classSet
	classMap
)

func classOf(x any) int {
	if _, ok := x.(Sequential); ok {
		return classSequential
	}
	if _, ok := x.(seq.Seq); ok {
		return classSequential
	}
	if _, ok := x.(SetLike); ok {
		return classSet
	}
	if _, ok := x.(Associative); ok {
		return classMap
	}
	return classScalar
}

// ToSeq returns the sequential view of x, or ok=false if x has none.
// nil yields the empty sequence.
func ToSeq(x any) (seq.Seq, bool) {
	switch t := x.(type) {
	case nil:
		return nil, true
	case seq.Seq:
		return t, true
	case Seqable:
		return t.Seq(), true
	case []any:
		return seq.FromSlice(t), true
	}
	return nil, false
}

// Equal compares two values structurally. Collections are compared by
// content: sequentials pairwise in order, maps by entry sets, sets by
// membership. Equality never depends on how a collection was built.
// Scalars compare with Go equality of identical dynamic types.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ca, cb := classOf(a), classOf(b)
	if ca != cb {
		return false
	}
	switch ca {
	case classSequential:
		sa, _ := ToSeq(a)
		sb, _ := ToSeq(b)
		return seqEqual(sa, sb)
	case classSet:
		return setEqual(a.(SetLike), b.(SetLike))
	case classMap:
		return mapEqual(a.(Associative), b.(Associative))
	}
	return scalarEqual(a, b)
}

func seqEqual(a, b seq.Seq) bool {
	for {
		ea, eb := seq.IsEmpty(a), seq.IsEmpty(b)
		if ea || eb {
			return ea == eb
		}
		if !Equal(seq.First(a), seq.First(b)) {
			return false
		}
		a, b = seq.Next(a), seq.Next(b)
	}
}

func setEqual(a, b SetLike) bool {
	ca, aCounted := a.(Counted)
	cb, bCounted := b.(Counted)
	if !aCounted || !bCounted || ca.Len() != cb.Len() {
		return false
	}
	sa, ok := ToSeq(a)
	if !ok {
		return false
	}
	for s := sa; !seq.IsEmpty(s); s = seq.Next(s) {
		if !b.Contains(seq.First(s)) {
			return false
		}
	}
	return true
}

func mapEqual(a, b Associative) bool {
	ca, aCounted := a.(Counted)
	cb, bCounted := b.(Counted)
	if !aCounted || !bCounted || ca.Len() != cb.Len() {
		return false
	}
	sa, ok := ToSeq(a)
	if !ok {
		return false
	}
	for s := sa; !seq.IsEmpty(s); s = seq.Next(s) {
		entry, isEntry := seq.First(s).(Entry)
		if !isEntry {
			return false
		}
		other, present := b.FindEntry(entry.Key)
		if !present || !Equal(entry.Value, other.Value) {
			return false
		}
	}
	return true
}

func scalarEqual(a, b any) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// --- Hashing -------------------------------------------------------------

const (
	fnvOffset uint32 = 2166136261
	fnvPrime  uint32 = 16777619
)

// Hash computes a structural hash consistent with Equal: equal values hash
// equally, so collections can serve as map keys and set members.
// Counting-free for scalars; O(n) over collection contents.
func Hash(x any) uint32 {
	if x == nil {
		return 0
	}
	switch classOf(x) {
	case classSequential:
		s, _ := ToSeq(x)
		h := uint32(1)
		for ; !seq.IsEmpty(s); s = seq.Next(s) {
			h = h*31 + Hash(seq.First(s))
		}
		return h
	case classSet:
		s, _ := ToSeq(x)
		var h uint32
		for ; !seq.IsEmpty(s); s = seq.Next(s) {
			h += Hash(seq.First(s))
		}
		return h ^ 0x53455421
	case classMap:
		s, _ := ToSeq(x)
		var h uint32
		for ; !seq.IsEmpty(s); s = seq.Next(s) {
			if entry, ok := seq.First(s).(Entry); ok {
				h += Hash(entry.Key) ^ Hash(entry.Value)
			}
		}
		return h ^ 0x4d415021
	}
	return scalarHash(x)
}

func scalarHash(x any) uint32 {
	switch v := x.(type) {
	case bool:
		if v {
			return 1231
		}
		return 1237
	case string:
		return hashString(v, 0)
	case Keyword:
		return hashString(string(v), 0x2a)
	case Symbol:
		return hashString(string(v), 0x2b)
	case int:
		return hashUint64(uint64(int64(v)))
	case int8:
		return hashUint64(uint64(int64(v)))
	case int16:
		return hashUint64(uint64(int64(v)))
	case int32:
		return hashUint64(uint64(int64(v)))
	case int64:
		return hashUint64(uint64(v))
	case uint:
		return hashUint64(uint64(v))
	case uint8:
		return hashUint64(uint64(v))
	case uint16:
		return hashUint64(uint64(v))
	case uint32:
		return hashUint64(uint64(v))
	case uint64:
		return hashUint64(v)
	case uintptr:
		return hashUint64(uint64(v))
	case float32:
		return hashUint64(uint64(math.Float64bits(float64(v))))
	case float64:
		return hashUint64(uint64(math.Float64bits(v)))
	}
	// last resort for exotic scalar types; stable within a process
	tracer().Debugf("hashing value of type %T through its print representation", x)
	return hashString(fmt.Sprint(x), 0x3f)
}

func hashString(s string, seed byte) uint32 {
	h := fnvOffset
	h = (h ^ uint32(seed)) * fnvPrime
	for i := 0; i < len(s); i++ {
		h = (h ^ uint32(s[i])) * fnvPrime
	}
	return h
}

func hashUint64(v uint64) uint32 {
	v ^= v >> 33
	v *= 0xff51afd7ed558ccd
	v ^= v >> 33
	return uint32(v) ^ uint32(v>>32)
}
