// Package erased is the type-erased variadic fallback for chains longer
// than the enumerated typed entry points in pkg/pipe, or whose stage list
// is only known at runtime. Stages here are func(any) any; type checking
// is the caller's problem, which is the point: reaching for this package
// is the explicit opt-in, never a silent hole in a typed chain.
//
// Key operations:
// - Pipe: apply erased stages eagerly, left to right
// - Compose: right-to-left composition, returns a function
// - Flow: left-to-right composition, returns a reusable function
// - Field: reflective projection of a struct field or string map key
package erased
