package pipe

// Tap returns a stage that invokes sideEffect with the incoming value and
// returns that value unchanged, so downstream stages see the identical input.
// The side effect's outcome is ignored; a panic inside it propagates.
func Tap[T any](sideEffect func(T)) func(T) T {
	return func(value T) T {
		sideEffect(value)
		return value
	}
}

// When returns a stage applying transform only when predicate holds,
// otherwise passing the value through unchanged. Transform keeps the input
// type, so the stage can sit anywhere in a same-type chain.
//
// Example:
//
//	double := When(func(n int) bool { return n > 0 }, func(n int) int { return n * 2 })
//	double(5)  // 10
//	double(-5) // -5
func When[T any](predicate func(T) bool, transform func(T) T) func(T) T {
	return func(value T) T {
		if predicate(value) {
			return transform(value)
		}
		return value
	}
}

// Branch returns a stage applying ifTrue when predicate holds and ifFalse
// otherwise. Exactly one of the two runs per call; the other's side effects
// never happen for that call.
func Branch[In, Out any](predicate func(In) bool, ifTrue func(In) Out,
	ifFalse func(In) Out) func(In) Out {
	return func(value In) Out {
		if predicate(value) {
			return ifTrue(value)
		}
		return ifFalse(value)
	}
}

// TryCatch returns a stage invoking fn and, on a non-nil error, substituting
// onError's result. The handler receives both the error and the original
// input, so a fallback can reference what was attempted. Failures inside
// onError itself are not intercepted.
//
// Example:
//
//	parse := TryCatch(strconv.Atoi, func(_ error, raw string) int { return -1 })
//	parse("42")       // 42
//	parse("not int")  // -1
func TryCatch[In, Out any](fn func(In) (Out, error),
	onError func(err error, input In) Out) func(In) Out {
	return func(value In) Out {
		out, err := fn(value)
		if err != nil {
			return onError(err, value)
		}
		return out
	}
}
