package hashmap

import (
	"fmt"
	"strings"

	"github.com/npillmayer/persist/coll"
	"github.com/npillmayer/persist/persistent/trie"
	"github.com/npillmayer/persist/seq"
)

// maxShift is the level at which a 32-bit hash is exhausted; entries whose
// keys collide on the full hash live in overflow buckets below it.
const maxShift = 30

// Map is an immutable persistent hash map. The zero value is a valid
// empty map:
//
//     m := hashmap.Map{}.Assoc("key", 42)
//
type Map struct {
	props
	count int
	root  *trie.Sparse
}

type props struct {
	hash func(any) uint32
	eq   func(a, b any) bool
}

func (p props) init() props {
	if p.hash == nil {
		p.hash = coll.Hash
	}
	if p.eq == nil {
		p.eq = coll.Equal
	}
	return p
}

// Immutable constructs an empty hash map with options, if you need any.
func Immutable(opts ...Option) Map {
	m := Map{}
	for _, option := range opts {
		m.props = option(m.props)
	}
	return m
}

// Option is a type to help initializing hash maps at creation time.
type Option func(props) props

// Hasher is an option to replace the structural hash function for keys.
// The function must be consistent with the key equality in use.
func Hasher(hash func(any) uint32) Option {
	return func(p props) props {
		p.hash = hash
		return p
	}
}

// KeyEquality is an option to replace structural key equality.
func KeyEquality(eq func(a, b any) bool) Option {
	return func(p props) props {
		p.eq = eq
		return p
	}
}

// New builds a map from alternating keys and values. An odd number of
// arguments is a programming error.
func New(kvs ...any) Map {
	assertThat(len(kvs)%2 == 0, "map literal needs an even number of arguments, has %d", len(kvs))
	m := Map{}
	for i := 0; i < len(kvs); i += 2 {
		m = m.Assoc(kvs[i], kvs[i+1])
	}
	return m
}

// FromSeq builds a map from a sequence of entries (coll.Entry values or
// two-element sequential collections).
func FromSeq(s seq.Seq) Map {
	m := Map{}
	for t := s; !seq.IsEmpty(t); t = seq.Next(t) {
		m = m.Conj(seq.First(t))
	}
	return m
}

// overflow is a bucket of entries whose keys collide on the full hash.
type overflow struct {
	hash    uint32
	entries []coll.Entry
}

// --- API -------------------------------------------------------------------

// Len returns the number of entries; O(1).
func (m Map) Len() int {
	return m.count
}

// Get returns the value stored for key together with a presence flag, so a
// stored nil remains distinguishable from an absent key.
func (m Map) Get(key any) (any, bool) {
	entry, found := m.FindEntry(key)
	return entry.Value, found
}

// GetOr returns the value stored for key, or def if the key is absent.
// Callers needing to distinguish a stored nil from absence pass
// coll.NotFound as def, or use FindEntry.
func (m Map) GetOr(key, def any) any {
	if entry, found := m.FindEntry(key); found {
		return entry.Value
	}
	return def
}

// FindEntry returns the entry stored for key and whether key is present.
func (m Map) FindEntry(key any) (coll.Entry, bool) {
	m.props = m.props.init()
	node := m.root
	h := m.hash(key)
	for shift := uint32(0); node != nil; shift += trie.Bits {
		bit := trie.BitFor(h, shift)
		if !node.Has(bit) {
			return coll.Entry{}, false
		}
		switch slot := node.At(bit).(type) {
		case *trie.Sparse:
			node = slot
		case *overflow:
			for _, entry := range slot.entries {
				if m.eq(entry.Key, key) {
					return entry, true
				}
			}
			return coll.Entry{}, false
		case coll.Entry:
			if m.eq(slot.Key, key) {
				return slot, true
			}
			return coll.Entry{}, false
		}
	}
	return coll.Entry{}, false
}

// Has reports whether key is present.
func (m Map) Has(key any) bool {
	_, found := m.FindEntry(key)
	return found
}

// Assoc returns a new map with key set to value; O(log32 n) path copy.
// Inserting an existing key replaces its value without changing Len.
func (m Map) Assoc(key, value any) Map {
	m.props = m.props.init()
	root, added := m.assoc(m.root, 0, m.hash(key), coll.Entry{Key: key, Value: value})
	count := m.count
	if added {
		count++
	}
	return Map{props: m.props, count: count, root: root}
}

func (m Map) assoc(node *trie.Sparse, shift, h uint32, entry coll.Entry) (*trie.Sparse, bool) {
	bit := trie.BitFor(h, shift)
	if !node.Has(bit) {
		return node.WithSlot(bit, entry), true
	}
	switch slot := node.At(bit).(type) {
	case *trie.Sparse:
		child, added := m.assoc(slot, shift+trie.Bits, h, entry)
		return node.WithSlot(bit, child), added
	case *overflow:
		if slot.hash == h {
			bucket, added := slot.with(entry, m.eq)
			return node.WithSlot(bit, bucket), added
		}
		// hashes differ, so we are above maxShift: push the bucket down
		child, _ := m.assoc(m.pushDown(shift+trie.Bits, slot.hash, slot), shift+trie.Bits, h, entry)
		return node.WithSlot(bit, child), true
	case coll.Entry:
		if m.eq(slot.Key, entry.Key) {
			return node.WithSlot(bit, entry), false
		}
		return node.WithSlot(bit, m.merge(shift+trie.Bits, m.hash(slot.Key), slot, h, entry)), true
	}
	panic("hashmap: corrupt trie node")
}

// with returns a new bucket with entry added or replaced; the returned
// flag reports a genuine addition.
func (b *overflow) with(entry coll.Entry, eq func(a, b any) bool) (*overflow, bool) {
	for i, e := range b.entries {
		if eq(e.Key, entry.Key) {
			cow := make([]coll.Entry, len(b.entries))
			copy(cow, b.entries)
			cow[i] = entry
			return &overflow{hash: b.hash, entries: cow}, false
		}
	}
	cow := make([]coll.Entry, len(b.entries)+1)
	copy(cow, b.entries)
	cow[len(b.entries)] = entry
	return &overflow{hash: b.hash, entries: cow}, true
}

// merge resolves two distinct keys landing in the same slot by creating
// the subtrie (or overflow bucket) distinguishing their hashes.
func (m Map) merge(shift, h1 uint32, e1 coll.Entry, h2 uint32, e2 coll.Entry) any {
	if h1 == h2 {
		if shift > maxShift {
			tracer().Debugf("full hash collision on %x, keeping an overflow bucket", h1)
			return &overflow{hash: h1, entries: []coll.Entry{e1, e2}}
		}
		child := m.merge(shift+trie.Bits, h1, e1, h2, e2)
		var node *trie.Sparse
		return node.WithSlot(trie.BitFor(h1, shift), child)
	}
	b1, b2 := trie.BitFor(h1, shift), trie.BitFor(h2, shift)
	var node *trie.Sparse
	if b1 == b2 {
		child := m.merge(shift+trie.Bits, h1, e1, h2, e2)
		return node.WithSlot(b1, child)
	}
	node = node.WithSlot(b1, e1)
	return node.WithSlot(b2, e2)
}

// pushDown wraps an overflow bucket into a single-slot node at the given
// level.
func (m Map) pushDown(shift, h uint32, b *overflow) *trie.Sparse {
	var node *trie.Sparse
	return node.WithSlot(trie.BitFor(h, shift), b)
}

// Without returns a new map with key removed; returns an equal map if key
// is absent.
func (m Map) Without(key any) Map {
	m.props = m.props.init()
	root, removed := m.without(m.root, 0, m.hash(key), key)
	if !removed {
		return m
	}
	return Map{props: m.props, count: m.count - 1, root: root}
}

func (m Map) without(node *trie.Sparse, shift, h uint32, key any) (*trie.Sparse, bool) {
	bit := trie.BitFor(h, shift)
	if !node.Has(bit) {
		return node, false
	}
	switch slot := node.At(bit).(type) {
	case *trie.Sparse:
		child, removed := m.without(slot, shift+trie.Bits, h, key)
		if !removed {
			return node, false
		}
		if inline, ok := singleEntry(child); ok {
			return node.WithSlot(bit, inline), true
		}
		if child == nil {
			return node.WithoutSlot(bit), true
		}
		return node.WithSlot(bit, child), true
	case *overflow:
		for i, e := range slot.entries {
			if m.eq(e.Key, key) {
				if len(slot.entries) == 2 {
					return node.WithSlot(bit, slot.entries[1-i]), true
				}
				cow := make([]coll.Entry, 0, len(slot.entries)-1)
				cow = append(cow, slot.entries[:i]...)
				cow = append(cow, slot.entries[i+1:]...)
				return node.WithSlot(bit, &overflow{hash: slot.hash, entries: cow}), true
			}
		}
		return node, false
	case coll.Entry:
		if m.eq(slot.Key, key) {
			return node.WithoutSlot(bit), true
		}
		return node, false
	}
	panic("hashmap: corrupt trie node")
}

// singleEntry reports whether node has shrunk to a single plain entry
// which can be inlined into the parent.
func singleEntry(node *trie.Sparse) (coll.Entry, bool) {
	if node.Len() != 1 {
		return coll.Entry{}, false
	}
	entry, ok := node.Slots()[0].(coll.Entry)
	return entry, ok
}

// Conj treats a coll.Entry or a two-element sequential collection as an
// associate operation. Anything else is a programming error.
func (m Map) Conj(x any) Map {
	entry, err := EntryOf(x)
	assertThat(err == nil, "cannot conjoin %T onto a map", x)
	return m.Assoc(entry.Key, entry.Value)
}

// EntryOf coerces a value into a key/value entry: either a coll.Entry or a
// two-element sequential collection.
func EntryOf(x any) (coll.Entry, error) {
	if entry, ok := x.(coll.Entry); ok {
		return entry, nil
	}
	if !isSequential(x) {
		return coll.Entry{}, coll.CapabilityError{Op: "associate", Value: x}
	}
	s, _ := coll.ToSeq(x)
	rest := seq.Next(s)
	if seq.IsEmpty(s) || rest == nil || seq.Next(rest) != nil {
		return coll.Entry{}, coll.CapabilityError{Op: "associate", Value: x}
	}
	return coll.Entry{Key: seq.First(s), Value: seq.First(rest)}, nil
}

func isSequential(x any) bool {
	if _, ok := x.(coll.Sequential); ok {
		return true
	}
	_, ok := x.(seq.Seq)
	return ok
}

// Equal compares m to other collections for structural equality, i.e. same
// set of key/value pairs. Entry order does not matter.
func (m Map) Equal(other any) bool {
	return coll.Equal(m, other)
}

// Hash returns a structural hash value, consistent with Equal.
func (m Map) Hash() uint32 {
	return coll.Hash(m)
}

func (m Map) String() string {
	b := strings.Builder{}
	b.WriteByte('{')
	first := true
	for s := m.Seq(); !seq.IsEmpty(s); s = seq.Next(s) {
		entry := seq.First(s).(coll.Entry)
		if !first {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%v %v", entry.Key, entry.Value))
		first = false
	}
	b.WriteByte('}')
	return b.String()
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("hashmap: "+msg, msgargs...)
		panic(msg)
	}
}
