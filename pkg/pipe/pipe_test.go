package pipe

import (
	"strconv"
	"testing"
)

func TestPipe_NoStages(t *testing.T) {
	t.Parallel()
	if got := Pipe(42); got != 42 {
		t.Fatalf("expected 42, got %v", got)
	}
}

func TestPipe_SingleStage(t *testing.T) {
	t.Parallel()
	double := func(n int) int { return n * 2 }
	if got := Pipe(21, double); got != double(21) {
		t.Fatalf("expected %v, got %v", double(21), got)
	}
}

func TestPipe_OrderMatchesNestedCalls(t *testing.T) {
	t.Parallel()
	f := func(n int) int { return n + 1 }
	g := func(n int) int { return n * 3 }
	h := func(n int) int { return n - 2 }

	want := h(g(f(7)))
	if got := Pipe(7, f, g, h); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestPipe_EachStageRunsExactlyOnce(t *testing.T) {
	t.Parallel()
	calls := make([]int, 3)
	stage := func(i int) func(int) int {
		return func(n int) int {
			calls[i]++
			return n
		}
	}

	Pipe(0, stage(0), stage(1), stage(2))
	for i, c := range calls {
		if c != 1 {
			t.Fatalf("stage %d ran %d times, expected exactly once", i, c)
		}
	}
}

func TestPipe2_TypeChange(t *testing.T) {
	t.Parallel()
	got := Pipe2(21,
		func(n int) int { return n * 2 },
		strconv.Itoa,
	)
	if got != "42" {
		t.Fatalf("expected %q, got %q", "42", got)
	}
}

func TestPipe9_FullChain(t *testing.T) {
	t.Parallel()
	inc := func(n int) int { return n + 1 }
	got := Pipe9(0, inc, inc, inc, inc, inc, inc, inc, inc,
		func(n int) string { return strconv.Itoa(n) })
	if got != "8" {
		t.Fatalf("expected %q, got %q", "8", got)
	}
}

func TestPipe_PanicPropagatesAndAbortsChain(t *testing.T) {
	t.Parallel()
	ranAfter := false

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected the stage panic to propagate")
		}
		if r != "stage failure" {
			t.Fatalf("expected the original panic value, got %v", r)
		}
		if ranAfter {
			t.Fatalf("no stage should run after a failing stage")
		}
	}()

	Pipe(1,
		func(n int) int { panic("stage failure") },
		func(n int) int { ranAfter = true; return n },
	)
}
