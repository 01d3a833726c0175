package pipe

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestTap_PassesValueThroughUnchanged(t *testing.T) {
	t.Parallel()
	var seen []int
	stage := Tap(func(n int) { seen = append(seen, n) })

	if got := stage(7); got != 7 {
		t.Fatalf("expected 7, got %v", got)
	}
	if len(seen) != 1 || seen[0] != 7 {
		t.Fatalf("side effect should run exactly once with the value, got %v", seen)
	}
}

func TestWhen_TruePredicate(t *testing.T) {
	t.Parallel()
	stage := When(func(n int) bool { return n > 0 }, func(n int) int { return n * 2 })
	if got := stage(5); got != 10 {
		t.Fatalf("expected 10, got %v", got)
	}
}

func TestWhen_FalsePredicate(t *testing.T) {
	t.Parallel()
	called := false
	stage := When(func(n int) bool { return n > 0 }, func(n int) int {
		called = true
		return n * 2
	})
	if got := stage(-5); got != -5 {
		t.Fatalf("expected -5, got %v", got)
	}
	if called {
		t.Fatalf("transform must not run when the predicate is false")
	}
}

func TestBranch_OnlyTakenBranchRuns(t *testing.T) {
	t.Parallel()
	var trueRuns, falseRuns int
	stage := Branch(func(n int) bool { return n > 0 },
		func(n int) string { trueRuns++; return "pos" },
		func(n int) string { falseRuns++; return "neg" },
	)

	if got := stage(5); got != "pos" {
		t.Fatalf("expected %q, got %q", "pos", got)
	}
	if trueRuns != 1 || falseRuns != 0 {
		t.Fatalf("only the taken branch may run, got true=%d false=%d", trueRuns, falseRuns)
	}

	if got := stage(-1); got != "neg" {
		t.Fatalf("expected %q, got %q", "neg", got)
	}
	if trueRuns != 1 || falseRuns != 1 {
		t.Fatalf("only the taken branch may run, got true=%d false=%d", trueRuns, falseRuns)
	}
}

func TestTryCatch_SuccessPath(t *testing.T) {
	t.Parallel()
	parse := TryCatch(
		func(raw string) (map[string]any, error) {
			var out map[string]any
			err := json.Unmarshal([]byte(raw), &out)
			return out, err
		},
		func(_ error, raw string) map[string]any {
			return map[string]any{"error": true, "raw": raw}
		},
	)

	got := parse(`{"a":1}`)
	if got["a"] != float64(1) {
		t.Fatalf("expected a=1, got %v", got)
	}
}

func TestTryCatch_FallbackReceivesErrorAndInput(t *testing.T) {
	t.Parallel()
	var captured error
	parse := TryCatch(
		func(raw string) (map[string]any, error) {
			var out map[string]any
			err := json.Unmarshal([]byte(raw), &out)
			return out, err
		},
		func(err error, raw string) map[string]any {
			captured = err
			return map[string]any{"error": true, "raw": raw}
		},
	)

	got := parse("not json")
	if got["error"] != true || got["raw"] != "not json" {
		t.Fatalf("fallback should reference the attempted input, got %v", got)
	}
	if captured == nil {
		t.Fatalf("handler must receive the failure")
	}
}

func TestTryCatch_HandlerNotInvokedOnSuccess(t *testing.T) {
	t.Parallel()
	stage := TryCatch(
		func(n int) (int, error) { return n + 1, nil },
		func(error, int) int {
			t.Fatalf("handler must not run when fn succeeds")
			return 0
		},
	)
	if got := stage(1); got != 2 {
		t.Fatalf("expected 2, got %v", got)
	}
}

func TestTryCatch_HandlerPanicPropagates(t *testing.T) {
	t.Parallel()
	stage := TryCatch(
		func(int) (int, error) { return 0, errors.New("boom") },
		func(error, int) int { panic("handler failure") },
	)

	defer func() {
		if r := recover(); r != "handler failure" {
			t.Fatalf("handler failures must propagate uncaught, got %v", r)
		}
	}()
	stage(1)
}
