package bind

import (
	"testing"

	"github.com/npillmayer/persist"
	"github.com/npillmayer/persist/coll"
	"github.com/npillmayer/persist/seq"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBindName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.bind")
	defer teardown()
	//
	bindings, err := Destructure(Name{Ident: "x"}, 42)
	if err != nil {
		t.Fatalf("destructure failed: %v", err)
	}
	if len(bindings) != 1 || bindings[0].Name != "x" || bindings[0].Value != 42 {
		t.Errorf("expected single binding x = 42, got %v", bindings)
	}
	bindings, err = Destructure(Discard, 42)
	if err != nil || len(bindings) != 0 {
		t.Errorf("expected discard to bind nothing, got %v (err %v)", bindings, err)
	}
	if _, err = Destructure(Name{}, 42); err == nil {
		t.Error("expected empty identifier to be a pattern error, isn't")
	}
}

func TestBindSeqPattern(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.bind")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	pattern := SeqPattern{
		Elems: []Pattern{
			Name{Ident: "a"},
			Discard,
			SeqPattern{Elems: []Pattern{Discard, Name{Ident: "b"}}},
		},
		Rest: "rest",
	}
	source := persist.NewVector(10, 20, persist.NewVector(1, 2, 3), 30, 40)
	bindings, err := Destructure(pattern, source)
	if err != nil {
		t.Fatalf("destructure failed: %v", err)
	}
	if len(bindings) != 3 {
		t.Fatalf("expected 3 bindings, got %v", bindings)
	}
	expectBinding(t, bindings[0], "a", 10)
	expectBinding(t, bindings[1], "b", 2)
	if bindings[2].Name != "rest" {
		t.Fatalf("expected third binding to be the rest, is %v", bindings[2])
	}
	rest, _ := bindings[2].Value.(seq.Seq)
	if str := seq.Format(rest, "(", ")"); str != "(30 40)" {
		t.Errorf("expected rest to be (30 40), is %s", str)
	}
}

func TestBindSeqPatternRunsShort(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.bind")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	pattern := SeqPattern{
		Elems: []Pattern{Name{Ident: "a"}, Name{Ident: "b"}, Name{Ident: "c"}},
		Rest:  "rest",
	}
	bindings, err := Destructure(pattern, persist.NewList(1))
	if err != nil {
		t.Fatalf("destructure failed: %v", err)
	}
	expectBinding(t, bindings[0], "a", 1)
	if coll.Found(bindings[1].Value) || coll.Found(bindings[2].Value) {
		t.Errorf("expected missing positionals to bind the absence marker, got %v", bindings)
	}
	rest, _ := bindings[3].Value.(seq.Seq)
	if !seq.IsEmpty(rest) {
		t.Errorf("expected rest of exhausted source to be empty, is %v", rest)
	}
}

func TestBindSeqPatternWhole(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.bind")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	source := persist.NewVector(1, 2)
	pattern := SeqPattern{
		Elems: []Pattern{Name{Ident: "a"}},
		Whole: "all",
	}
	bindings, err := Destructure(pattern, source)
	if err != nil {
		t.Fatalf("destructure failed: %v", err)
	}
	// the whole-binding comes first and captures the original source
	if bindings[0].Name != "all" || !coll.Equal(bindings[0].Value, source) {
		t.Errorf("expected whole-binding of the original vector, got %v", bindings[0])
	}
	expectBinding(t, bindings[1], "a", 1)
}

func TestBindSeqPatternOnScalarFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.bind")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	pattern := SeqPattern{Elems: []Pattern{Name{Ident: "a"}}}
	if _, err := Destructure(pattern, 42); err == nil {
		t.Error("expected positional destructuring of a scalar to fail, didn't")
	}
}

func TestBindKeyPattern(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.bind")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	source := persist.NewMap(
		coll.Keyword("name"), "lua",
		coll.Keyword("version"), 54,
	)
	pattern := KeyPattern{
		Keys: []string{"name", "version", "author"},
	}
	bindings, err := Destructure(pattern, source)
	if err != nil {
		t.Fatalf("destructure failed: %v", err)
	}
	expectBinding(t, bindings[0], "name", "lua")
	expectBinding(t, bindings[1], "version", 54)
	if coll.Found(bindings[2].Value) {
		t.Errorf("expected absent key to bind the absence marker, got %v", bindings[2])
	}
}

func TestBindKeyPatternDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.bind")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	pattern := KeyPattern{
		Keys:     []string{"k", "missing"},
		Defaults: map[string]any{"k": "default", "missing": "default"},
	}
	// a present key wins over its default, even bound to false or nil
	source := persist.NewMap(coll.Keyword("k"), false)
	bindings, err := Destructure(pattern, source)
	if err != nil {
		t.Fatalf("destructure failed: %v", err)
	}
	expectBinding(t, bindings[0], "k", false)
	expectBinding(t, bindings[1], "missing", "default")
}

func TestBindKeyPatternSelectorFamilies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.bind")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	source := persist.NewMap(
		coll.Keyword("a"), 1,
		"b", 2,
		coll.Symbol("c"), 3,
	)
	pattern := KeyPattern{
		Keys: []string{"a"},
		Strs: []string{"b"},
		Syms: []string{"c"},
	}
	bindings, err := Destructure(pattern, source)
	if err != nil {
		t.Fatalf("destructure failed: %v", err)
	}
	expectBinding(t, bindings[0], "a", 1)
	expectBinding(t, bindings[1], "b", 2)
	expectBinding(t, bindings[2], "c", 3)
}

func TestBindKeyPatternExplicitEntries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.bind")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	source := persist.NewMap(
		7, persist.NewVector("x", "y"),
	)
	pattern := KeyPattern{
		Entries: []KeyEntry{
			{Selector: 7, Sub: SeqPattern{Elems: []Pattern{Name{Ident: "first"}}}},
		},
		Whole: "m",
	}
	bindings, err := Destructure(pattern, source)
	if err != nil {
		t.Fatalf("destructure failed: %v", err)
	}
	if bindings[0].Name != "m" {
		t.Errorf("expected whole-binding first, got %v", bindings[0])
	}
	expectBinding(t, bindings[1], "first", "x")
}

func TestBindKeyPatternOnVector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.bind")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	// vectors answer key lookups by index
	source := persist.NewVector("zero", "one")
	pattern := KeyPattern{
		Entries: []KeyEntry{
			{Selector: 1, Sub: Name{Ident: "second"}},
			{Selector: 5, Sub: Name{Ident: "nope"}},
		},
	}
	bindings, err := Destructure(pattern, source)
	if err != nil {
		t.Fatalf("destructure failed: %v", err)
	}
	expectBinding(t, bindings[0], "second", "one")
	if coll.Found(bindings[1].Value) {
		t.Errorf("expected out-of-range index selector to bind the absence marker, got %v", bindings[1])
	}
}

func TestBindKeyPatternOnScalarFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.bind")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	pattern := KeyPattern{Keys: []string{"k"}}
	if _, err := Destructure(pattern, 42); err == nil {
		t.Error("expected key destructuring of a scalar to fail, didn't")
	}
}

func TestBindNestedMissingBranch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.bind")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	// the branch under :address is absent; its sub-pattern must still
	// produce (all-absent) bindings instead of failing
	pattern := KeyPattern{
		Entries: []KeyEntry{
			{Selector: coll.Keyword("address"), Sub: KeyPattern{Keys: []string{"city"}}},
		},
	}
	bindings, err := Destructure(pattern, persist.NewMap(coll.Keyword("name"), "n"))
	if err != nil {
		t.Fatalf("destructure failed: %v", err)
	}
	if len(bindings) != 1 || coll.Found(bindings[0].Value) {
		t.Errorf("expected city to bind the absence marker, got %v", bindings)
	}
}

func TestBindMalformedPatterns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.bind")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	if _, err := Destructure(nil, 42); err == nil {
		t.Error("expected nil pattern to be a pattern error, isn't")
	}
	pattern := KeyPattern{Entries: []KeyEntry{{Selector: "k", Sub: nil}}}
	if _, err := Destructure(pattern, persist.NewMap()); err == nil {
		t.Error("expected key entry without sub-pattern to be a pattern error, isn't")
	}
}

func expectBinding(t *testing.T, b Binding, name string, value any) {
	t.Helper()
	if b.Name != name || !coll.Equal(b.Value, value) {
		t.Errorf("expected binding %s = %v, is %v", name, value, b)
	}
}
