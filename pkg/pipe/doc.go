// Package pipe contains single-value, synchronous composition primitives.
// A stage is any unary function; the package threads a value through a flat
// list of stages instead of nesting calls at the call site.
//
// Go has no variadic generics, so type-changing chains are enumerated as
// fixed-arity entry points (Pipe2..Pipe9, Compose2..Compose5, Flow2..Flow7)
// while the variadic Pipe/Compose/Flow cover same-type chains of any length.
// The fully type-erased variadic path lives in the erased subpackage, and a
// progressively-typed builder in the chain subpackage.
//
// Key operations:
// - Pipe/Pipe2..Pipe9: apply stages eagerly, left to right
// - Compose/Compose2..Compose5: right-to-left composition, returns a function
// - Flow/Flow2..Flow7: left-to-right composition, returns a reusable function
// - Tap: run a side effect and pass the value through unchanged
// - When/Branch: conditional stages
// - TryCatch: convert a stage's error return into a fallback value
// - Identity/Constant/Prop: trivial stages for plugging into chains
//
// No combinator here retries, wraps, or recovers: a panic in a user stage
// unwinds through the combinator untouched, and only TryCatch looks at an
// error at all.
package pipe
