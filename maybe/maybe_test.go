package maybe

import "testing"

func TestMaybeJustAndNothing(t *testing.T) {
	m := Just(7)
	if !m.IsJust() {
		t.Error("expected Just(7) to be present, isn't")
	}
	if v, ok := m.Value(); !ok || v != 7 {
		t.Errorf("expected value 7, is %v (ok=%v)", v, ok)
	}
	n := Nothing[int]()
	if n.IsJust() {
		t.Error("expected Nothing to be absent, isn't")
	}
	if n.WithDefault(42) != 42 {
		t.Error("expected absent value to fall back to the default, doesn't")
	}
	if m.WithDefault(42) != 7 {
		t.Error("expected present value to win over the default, doesn't")
	}
}

func TestMaybeFromFound(t *testing.T) {
	if !FromFound(1, true).IsJust() {
		t.Error("expected (1, true) to convert to Just, doesn't")
	}
	if FromFound(1, false).IsJust() {
		t.Error("expected (1, false) to convert to Nothing, doesn't")
	}
}

func TestMaybeMapAndThen(t *testing.T) {
	double := func(x int) int { return x * 2 }
	if v, _ := Just(3).Map(double).Value(); v != 6 {
		t.Errorf("expected mapped value 6, is %v", v)
	}
	if Nothing[int]().Map(double).IsJust() {
		t.Error("expected map over Nothing to stay Nothing, doesn't")
	}
	str := Map(func(x int) string { return "n" }, Just(1))
	if v, _ := str.Value(); v != "n" {
		t.Errorf("expected type-changing map to yield n, is %v", v)
	}
	half := func(x int) Maybe[int] {
		if x%2 != 0 {
			return Nothing[int]()
		}
		return Just(x / 2)
	}
	if v, _ := AndThen(half, Just(8)).Value(); v != 4 {
		t.Errorf("expected chained computation to yield 4, is %v", v)
	}
	if AndThen(half, Just(7)).IsJust() {
		t.Error("expected failing chain to be Nothing, isn't")
	}
}
