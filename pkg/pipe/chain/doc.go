// Package chain provides a typed builder over unary stages, for chains
// whose value type changes step by step without reaching for the erased
// variadic entry points.
//
// Go methods cannot introduce new type parameters, so type-changing steps
// are free functions taking the builder as their first argument, while
// same-type steps are ordinary methods.
//
// Key operations:
// - Start/From: begin a flow from the identity or from a function
// - Then: append a stage with a new output type
// - ThenTry: append a fallible stage with a fallback handler
// - Select: append a pure transformation (alias for Then, reads better mid-chain)
// - Tap/When/Attempt: same-type steps as methods
// - Run/Fn: collapse the builder into a result or a reusable function
package chain
