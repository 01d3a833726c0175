package pipe

import (
	"testing"
)

func TestIdentity(t *testing.T) {
	t.Parallel()
	if Identity(42) != 42 {
		t.Fatalf("identity must return its argument")
	}

	var nothing *int
	if Identity(nothing) != nil {
		t.Fatalf("identity must pass nil pointers through")
	}
}

func TestConstant_IgnoresInput(t *testing.T) {
	t.Parallel()
	answer := Constant[string](42)
	if answer("anything") != 42 || answer("") != 42 {
		t.Fatalf("constant must return the captured value regardless of input")
	}
}

func TestConstant_SnapshotsAtConstruction(t *testing.T) {
	t.Parallel()
	v := 1
	captured := Constant[struct{}](v)
	v = 99

	if got := captured(struct{}{}); got != 1 {
		t.Fatalf("mutating the source after construction must not change the result, got %v", got)
	}
}

func TestProp_PresentKey(t *testing.T) {
	t.Parallel()
	name := Prop[string, string]("name")
	got := name(map[string]string{"name": "Alice", "role": "admin"})
	if got != "Alice" {
		t.Fatalf("expected %q, got %q", "Alice", got)
	}
}

func TestProp_MissingKeyYieldsZeroValue(t *testing.T) {
	t.Parallel()
	age := Prop[string, int]("age")
	if got := age(map[string]int{"height": 170}); got != 0 {
		t.Fatalf("expected zero value for missing key, got %v", got)
	}
}
