package seq

import (
	"github.com/hashicorp/go-multierror"
)

// Map returns a stage applying fn to every element in original order. The
// output has the same length as the input and a fresh backing array.
func Map[A, B any](fn func(A) B) func([]A) []B {
	return func(in []A) []B {
		out := make([]B, len(in))
		for i, v := range in {
			out[i] = fn(v)
		}
		return out
	}
}

// Filter returns a stage keeping only the elements for which predicate
// holds, preserving their relative order.
func Filter[T any](predicate func(T) bool) func([]T) []T {
	return func(in []T) []T {
		out := make([]T, 0, len(in))
		for _, v := range in {
			if predicate(v) {
				out = append(out, v)
			}
		}
		return out
	}
}

// FlatMap returns a stage applying fn per element and concatenating the
// resulting slices in order.
func FlatMap[A, B any](fn func(A) []B) func([]A) []B {
	return func(in []A) []B {
		out := make([]B, 0, len(in))
		for _, v := range in {
			out = append(out, fn(v)...)
		}
		return out
	}
}

// Reduce returns a stage folding the slice left to right, starting from
// initial and returning the final accumulator.
//
// Example:
//
//	sum := Reduce(func(acc, n int) int { return acc + n }, 0)
//	sum([]int{1, 2, 3, 4}) // 10
func Reduce[T, Acc any](fn func(Acc, T) Acc, initial Acc) func([]T) Acc {
	return func(in []T) Acc {
		acc := initial
		for _, v := range in {
			acc = fn(acc, v)
		}
		return acc
	}
}

// TryMap returns a stage applying a fallible fn per element. Elements whose
// fn call fails are dropped from the output and their errors accumulated;
// the returned error aggregates every failure, or is nil when all elements
// succeed.
func TryMap[A, B any](fn func(A) (B, error)) func([]A) ([]B, error) {
	return func(in []A) ([]B, error) {
		var errs *multierror.Error
		out := make([]B, 0, len(in))
		for _, v := range in {
			b, err := fn(v)
			if err != nil {
				errs = multierror.Append(errs, err)
				continue
			}
			out = append(out, b)
		}
		return out, errs.ErrorOrNil()
	}
}
