// Package async threads a value through stages that may produce deferred
// results. A Deferred[T] is a value that may not be available yet; Await
// blocks until it settles or the context ends.
//
// Two implementations exist: Resolved/Rejected wrap already-settled values,
// and Promise is a channel-backed deferred settled exactly once (the first
// Resolve or Reject wins; later settles are ignored).
//
// Key operations:
// - Resolved/Rejected: lift a plain value or error into a Deferred
// - NewPromise/Go: create a promise, optionally fed by a spawned producer
// - Lift/LiftErr: adapt plain stage functions into async stages
// - PipeAsync: run same-type stages strictly in sequence
// - Then: append one type-changing async stage to a deferred
// - Tap: awaited side effect that passes the value through
// - AwaitAll: await several deferreds, aggregating every failure
//
// Sequencing is strict: stage K+1 never starts before stage K's output has
// settled, and the first failure rejects the whole chain with no further
// stages run. The chain is not cancellable once a stage is running; the
// context bounds each Await, which is how a caller races the result against
// a timeout.
package async
