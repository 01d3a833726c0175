// Package seq lifts per-element functions into stages over slices, so a
// collection transformation can sit inside an ordinary pipe chain.
//
// Key operations:
// - Map: apply a function per element, same length and order
// - Filter: keep elements matching a predicate, preserving relative order
// - FlatMap: map each element to a slice and concatenate the results
// - Reduce: strict left fold into an accumulator
// - TryMap: fallible per-element map, collecting every element failure
//
// No adapter mutates its input slice; each produces a fresh slice (or a
// scalar, for Reduce).
package seq
