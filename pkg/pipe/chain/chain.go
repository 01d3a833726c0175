package chain

import (
	"github.com/corvid-agent/pipe/pkg/pipe"
)

// Flow wraps a function from In to Out built up one stage at a time. The
// zero value is not usable; construct through Start or From. A Flow never
// mutates after construction, so it is safe to share and reuse.
type Flow[In, Out any] struct {
	run func(In) Out
}

// Start begins a flow that passes its input through unchanged.
func Start[T any]() Flow[T, T] {
	return Flow[T, T]{run: pipe.Identity[T]}
}

// From begins a flow from an existing stage function.
func From[In, Out any](fn func(In) Out) Flow[In, Out] {
	return Flow[In, Out]{run: fn}
}

// Then appends a stage whose output type may differ from the flow's current
// output type.
func Then[In, Mid, Out any](f Flow[In, Mid], next func(Mid) Out) Flow[In, Out] {
	return Flow[In, Out]{run: func(value In) Out {
		return next(f.run(value))
	}}
}

// Select appends a pure transformation. Identical to Then; the name reads
// better when the step is a projection rather than a computation.
func Select[In, Mid, Out any](f Flow[In, Mid], project func(Mid) Out) Flow[In, Out] {
	return Then(f, project)
}

// ThenTry appends a fallible stage. When try fails, onError receives the
// error and the stage's input and its result is used instead.
func ThenTry[In, Mid, Out any](f Flow[In, Mid], try func(Mid) (Out, error),
	onError func(err error, input Mid) Out) Flow[In, Out] {
	return Then(f, pipe.TryCatch(try, onError))
}

// Attempt appends a same-type fallible step. When try fails, onError
// receives the error and the step's input and its result is used instead.
// For a fallible step whose output type differs, use ThenTry.
func (f Flow[In, Out]) Attempt(try func(Out) (Out, error),
	onError func(err error, input Out) Out) Flow[In, Out] {
	return Flow[In, Out]{run: func(value In) Out {
		return pipe.TryCatch(try, onError)(f.run(value))
	}}
}

// Tap appends a side effect that observes the current value without
// changing it.
func (f Flow[In, Out]) Tap(sideEffect func(Out)) Flow[In, Out] {
	return Flow[In, Out]{run: func(value In) Out {
		return pipe.Tap(sideEffect)(f.run(value))
	}}
}

// When appends a conditional same-type transformation.
func (f Flow[In, Out]) When(predicate func(Out) bool,
	transform func(Out) Out) Flow[In, Out] {
	return Flow[In, Out]{run: func(value In) Out {
		return pipe.When(predicate, transform)(f.run(value))
	}}
}

// Run applies the flow to a value.
func (f Flow[In, Out]) Run(value In) Out {
	return f.run(value)
}

// Fn returns the flow as a plain stage function, usable inside Pipe or any
// other combinator.
func (f Flow[In, Out]) Fn() func(In) Out {
	return f.run
}
