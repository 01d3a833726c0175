// Package trace provides logging stages for observing a pipeline while it
// runs. Everything here is an ordinary pass-through or wrapper stage; the
// core combinator packages themselves never log.
//
// Key operations:
// - Tap: pass-through stage that debug-logs the value at a named point
// - Stage: wrap a stage, logging its name and elapsed time per call
// - Recover: TryCatch handler that logs the failure and yields a fallback
package trace
