package bind

import (
	"fmt"

	"github.com/npillmayer/persist"
	"github.com/npillmayer/persist/coll"
	"github.com/npillmayer/persist/seq"
	"github.com/pkg/errors"
)

// Destructure matches pattern against source, producing a flat, ordered
// list of bindings. Whole-bindings come first within their pattern node;
// all other bindings follow in left-to-right pattern order.
//
// Missing data is not an error: absent keys and exhausted sequences bind
// coll.NotFound (unless a default applies). Capability mismatches are:
// positional patterns require a sequence-viewable source, key patterns a
// source supporting lookup.
func Destructure(pattern Pattern, source any) ([]Binding, error) {
	b := binder{}
	if err := b.bind(pattern, source); err != nil {
		return nil, err
	}
	tracer().Debugf("destructured %d binding(s)", len(b.bindings))
	return b.bindings, nil
}

type binder struct {
	bindings []Binding
}

func (b *binder) bind(pattern Pattern, source any) error {
	switch p := pattern.(type) {
	case Name:
		return b.bindName(p, source)
	case SeqPattern:
		return b.bindSeq(p, source)
	case KeyPattern:
		return b.bindKeys(p, source)
	case nil:
		return coll.PatternError{Reason: "nil pattern node"}
	}
	return coll.PatternError{Reason: fmt.Sprintf("unknown pattern node of type %T", pattern)}
}

func (b *binder) bindName(p Name, value any) error {
	if p.Ident == "" {
		return coll.PatternError{Reason: "empty identifier"}
	}
	if p.Ident == "_" { // consume without binding
		return nil
	}
	b.bindings = append(b.bindings, Binding{Name: p.Ident, Value: value})
	return nil
}

func (b *binder) bindSeq(p SeqPattern, source any) error {
	if p.Whole != "" {
		// the whole-binding captures the original source, not the view
		b.bindings = append(b.bindings, Binding{Name: p.Whole, Value: source})
	}
	s, ok := coll.ToSeq(scrub(source))
	if !ok {
		return errors.Wrapf(coll.CapabilityError{Op: "sequence-view", Value: source},
			"cannot destructure value positionally")
	}
	for _, elem := range p.Elems {
		value := any(coll.NotFound)
		if !seq.IsEmpty(s) {
			value = seq.First(s)
		}
		if err := b.bindSub(elem, value); err != nil {
			return err
		}
		s = seq.Rest(s)
	}
	if p.Rest != "" {
		tail := seq.Seq(seq.Empty)
		if !seq.IsEmpty(s) {
			tail = s
		}
		b.bindings = append(b.bindings, Binding{Name: p.Rest, Value: tail})
	}
	return nil
}

func (b *binder) bindKeys(p KeyPattern, source any) error {
	if p.Whole != "" {
		b.bindings = append(b.bindings, Binding{Name: p.Whole, Value: source})
	}
	src := scrub(source)
	for _, entry := range p.Entries {
		if entry.Sub == nil {
			return coll.PatternError{Reason: fmt.Sprintf("key pattern entry %v lacks a sub-pattern", entry.Selector)}
		}
	}
	for _, entry := range p.entries() {
		value, err := persist.Lookup(src, entry.Selector, coll.NotFound)
		if err != nil {
			return errors.Wrapf(err, "cannot destructure value by key %v", entry.Selector)
		}
		if name, isName := entry.Sub.(Name); isName {
			// defaults are presence-based: a present key wins, even when its
			// value is nil or false
			if !coll.Found(value) {
				if def, hasDefault := p.Defaults[name.Ident]; hasDefault {
					value = def
				}
			}
			if err := b.bindName(name, value); err != nil {
				return err
			}
			continue
		}
		if err := b.bind(entry.Sub, scrub(value)); err != nil {
			return err
		}
	}
	return nil
}

// bindSub recurses into a sub-pattern. Leaf names receive the extracted
// value as-is (including the absence marker); nested patterns receive nil
// instead of the marker, so that missing branches destructure into all-
// absent bindings rather than failing.
func (b *binder) bindSub(sub Pattern, value any) error {
	if name, isName := sub.(Name); isName {
		return b.bindName(name, value)
	}
	return b.bind(sub, scrub(value))
}

// scrub converts the absence marker to nil before a value crosses into a
// nested pattern or a capability check.
func scrub(x any) any {
	if !coll.Found(x) {
		return nil
	}
	return x
}

func stringify(x any) string {
	return fmt.Sprintf("%v", x)
}
