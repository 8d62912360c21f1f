package coll

import (
	"fmt"

	"github.com/npillmayer/persist/seq"
)

// NotFound is the absence marker: a sentinel distinct from every value a
// collection may legitimately store, including nil. Lookup-style operations
// return it for absent keys, so that a stored nil remains distinguishable
// from "no entry".
var NotFound = notFound{}

type notFound struct{}

func (notFound) String() string {
	return "‹not-found›"
}

// Found reports whether v is a proper value, i.e. not the absence marker.
func Found(v any) bool {
	return v != NotFound
}

// Keyword is a self-evaluating name, typically used as a map selector.
type Keyword string

func (k Keyword) String() string {
	return ":" + string(k)
}

// Symbol is a plain identifier-like name.
type Symbol string

func (s Symbol) String() string {
	return string(s)
}

// --- Map entries -------------------------------------------------------------

// Entry is a key/value pair as handed out by associative collections.
// An Entry behaves like a sequential collection of two elements, so it can
// be destructured positionally.
type Entry struct {
	Key   any
	Value any
}

func (e Entry) String() string {
	return fmt.Sprintf("[%v %v]", e.Key, e.Value)
}

// Len returns 2.
func (e Entry) Len() int { return 2 }

// Nth returns the key for index 0 and the value for index 1.
func (e Entry) Nth(i int) any {
	switch i {
	case 0:
		return e.Key
	case 1:
		return e.Value
	}
	panic(IndexError{Index: i, Length: 2})
}

// Seq views the entry as the two-element sequence (key value).
func (e Entry) Seq() seq.Seq {
	return seq.NewCons(e.Key, seq.NewCons(e.Value, nil))
}

// Sequential marks entries as order-carrying.
func (Entry) Sequential() {}
