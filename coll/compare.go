package coll

import (
	"fmt"
	"strings"

	"github.com/npillmayer/persist/seq"
)

// Comparator is a three-way total order over keys: negative for a<b, zero
// for equal keys, positive for a>b. It must be a strict total order;
// handing a non-total "comparator" to a sorted collection results in
// undefined ordering (not a guaranteed failure).
type Comparator func(a, b any) int

// Compare is the default total order used by sorted collections when no
// explicit comparator is supplied: numbers numerically, strings, keywords
// and symbols lexicographically, booleans false<true, sequential
// collections pairwise (shorter first on a tie). Values of different kinds
// order by a fixed kind rank, nil first. It is a pure function of its
// arguments; there is no mutable process-wide configuration.
func Compare(a, b any) int {
	ra, rb := kindRank(a), kindRank(b)
	if ra != rb {
		return ra - rb
	}
	switch ra {
	case rankNil:
		return 0
	case rankBool:
		return boolCompare(a.(bool), b.(bool))
	case rankNumber:
		fa, _ := asFloat(a)
		fb, _ := asFloat(b)
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return +1
		}
		return 0
	case rankText:
		return strings.Compare(textOf(a), textOf(b))
	case rankSequential:
		sa, _ := ToSeq(a)
		sb, _ := ToSeq(b)
		return seqCompare(sa, sb)
	}
	// no natural order; fall back to print representations to keep the
	// order total and deterministic within a process
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

const (
	rankNil = iota
	rankBool
	rankNumber
	rankText
	rankSequential
	rankOpaque
)

func kindRank(x any) int {
	switch x.(type) {
	case nil:
		return rankNil
	case bool:
		return rankBool
	case string, Keyword, Symbol:
		return rankText
	}
	if _, ok := asFloat(x); ok {
		return rankNumber
	}
	if _, ok := x.(Sequential); ok {
		return rankSequential
	}
	if _, ok := x.(seq.Seq); ok {
		return rankSequential
	}
	return rankOpaque
}

func boolCompare(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	}
	return +1
}

func textOf(x any) string {
	switch v := x.(type) {
	case string:
		return v
	case Keyword:
		return string(v)
	case Symbol:
		return string(v)
	}
	return ""
}

func seqCompare(a, b seq.Seq) int {
	for {
		ea, eb := seq.IsEmpty(a), seq.IsEmpty(b)
		switch {
		case ea && eb:
			return 0
		case ea:
			return -1
		case eb:
			return +1
		}
		if c := Compare(seq.First(a), seq.First(b)); c != 0 {
			return c
		}
		a, b = seq.Next(a), seq.Next(b)
	}
}

func asFloat(x any) (float64, bool) {
	switch v := x.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}
