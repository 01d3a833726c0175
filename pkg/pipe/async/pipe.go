package async

import (
	"context"

	"github.com/hashicorp/go-multierror"
)

// Stage is one async link in a chain: it receives the previous stage's
// settled value and returns its own output, plain (Resolved) or deferred
// (a Promise still being produced).
type Stage[In, Out any] func(ctx context.Context, in In) Deferred[Out]

// Lift adapts a plain stage function into an async stage producing an
// already-settled result.
func Lift[In, Out any](fn func(In) Out) Stage[In, Out] {
	return func(_ context.Context, in In) Deferred[Out] {
		return Resolved(fn(in))
	}
}

// LiftErr adapts a fallible stage function; a non-nil error rejects the
// stage's output.
func LiftErr[In, Out any](fn func(In) (Out, error)) Stage[In, Out] {
	return func(_ context.Context, in In) Deferred[Out] {
		out, err := fn(in)
		if err != nil {
			return Rejected[Out](err)
		}
		return Resolved(out)
	}
}

// PipeAsync threads value through stages strictly in sequence, awaiting each
// stage's output before invoking the next, and returns a deferred settling
// with the final result. With no stages the result resolves to value. The
// first stage failure rejects the chain; no later stage runs.
func PipeAsync[T any](ctx context.Context, value T, stages ...Stage[T, T]) Deferred[T] {
	p := NewPromise[T]()
	go func() {
		current := value
		for _, stage := range stages {
			if err := ctx.Err(); err != nil {
				p.Reject(err)
				return
			}
			next, err := stage(ctx, current).Await(ctx)
			if err != nil {
				p.Reject(err)
				return
			}
			current = next
		}
		p.Resolve(current)
	}()
	return p
}

// Then appends one type-changing stage to a deferred: it awaits d, feeds the
// value to next, and settles with next's awaited output. Chaining Then calls
// builds a type-changing async pipe.
func Then[A, B any](ctx context.Context, d Deferred[A], next Stage[A, B]) Deferred[B] {
	p := NewPromise[B]()
	go func() {
		in, err := d.Await(ctx)
		if err != nil {
			p.Reject(err)
			return
		}
		out, err := next(ctx, in).Await(ctx)
		if err != nil {
			p.Reject(err)
			return
		}
		p.Resolve(out)
	}()
	return p
}

// Tap returns a stage that awaits sideEffect and then passes the original
// value through unchanged. A non-nil error from the side effect rejects the
// stage, so downstream stages never see the value.
func Tap[T any](sideEffect func(ctx context.Context, value T) error) Stage[T, T] {
	return func(ctx context.Context, value T) Deferred[T] {
		if err := sideEffect(ctx, value); err != nil {
			return Rejected[T](err)
		}
		return Resolved(value)
	}
}

// AwaitAll awaits every deferred in order and returns the successful values,
// preserving input order among them. Failures do not stop the remaining
// awaits; the returned error aggregates every failure, or is nil when all
// settle successfully. AwaitAll spawns nothing itself; any concurrency
// belongs to whoever produced the deferreds.
func AwaitAll[T any](ctx context.Context, ds ...Deferred[T]) ([]T, error) {
	var errs *multierror.Error
	out := make([]T, 0, len(ds))
	for _, d := range ds {
		v, err := d.Await(ctx)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		out = append(out, v)
	}
	return out, errs.ErrorOrNil()
}
