package bind

import (
	"strings"

	"github.com/npillmayer/persist/coll"
)

// Pattern is a node of a binding-pattern tree. The three implementations
// are Name, SeqPattern and KeyPattern; patterns nest arbitrarily.
type Pattern interface {
	pattern()
}

// Name binds a value to an identifier. The identifier "_" consumes the
// value without recording a binding.
type Name struct {
	Ident string
}

// Discard is the throw-away pattern, consuming a value without binding it.
var Discard = Name{Ident: "_"}

// SeqPattern destructures a source positionally: each element pattern is
// matched against successive elements of a sequential view of the source.
// If the source runs short, the remaining element patterns receive the
// absence marker coll.NotFound.
type SeqPattern struct {
	Elems []Pattern
	// Rest, if non-empty, names a binding capturing the tail remaining
	// after the positional elements — always as a sequence, even if the
	// source was an indexed collection.
	Rest string
	// Whole, if non-empty, names a binding capturing the original,
	// un-viewed source.
	Whole string
}

// KeyEntry is one selector/sub-pattern pair of a KeyPattern.
type KeyEntry struct {
	Selector any
	Sub      Pattern
}

// KeyPattern destructures a source by key lookup. Besides explicit entries
// it offers the three shorthand families Keys, Strs and Syms, binding
// identifiers to the values selected by the identifier's own name as a
// keyword, a string, or a symbol, respectively.
type KeyPattern struct {
	Entries []KeyEntry
	Keys    []string // ident ← lookup by coll.Keyword(ident)
	Strs    []string // ident ← lookup by ident as a plain string
	Syms    []string // ident ← lookup by coll.Symbol(ident)
	// Defaults supplies fallback values per identifier, consulted only when
	// the key is absent from the source — a present key wins even if its
	// value is nil or false.
	Defaults map[string]any
	// Whole, if non-empty, names a binding capturing the original source.
	Whole string
}

func (Name) pattern()       {}
func (SeqPattern) pattern() {}
func (KeyPattern) pattern() {}

// entries returns the explicit entries followed by the desugared shorthand
// families, in declaration order.
func (p KeyPattern) entries() []KeyEntry {
	entries := make([]KeyEntry, 0, len(p.Entries)+len(p.Keys)+len(p.Strs)+len(p.Syms))
	entries = append(entries, p.Entries...)
	for _, ident := range p.Keys {
		entries = append(entries, KeyEntry{Selector: coll.Keyword(ident), Sub: Name{Ident: ident}})
	}
	for _, ident := range p.Strs {
		entries = append(entries, KeyEntry{Selector: ident, Sub: Name{Ident: ident}})
	}
	for _, ident := range p.Syms {
		entries = append(entries, KeyEntry{Selector: coll.Symbol(ident), Sub: Name{Ident: ident}})
	}
	return entries
}

// Binding is one identifier/value pair produced by Destructure. Bindings
// are simultaneous: values never refer to earlier bindings, only to the
// source.
type Binding struct {
	Name  string
	Value any
}

func (b Binding) String() string {
	var sb strings.Builder
	sb.WriteString(b.Name)
	sb.WriteString(" = ")
	if !coll.Found(b.Value) {
		sb.WriteString("‹not-found›")
	} else {
		sb.WriteString(stringify(b.Value))
	}
	return sb.String()
}
