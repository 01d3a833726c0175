package pipe

// Identity returns the supplied value unchanged. Useful as a neutral stage
// or a branch arm that keeps the value as-is.
func Identity[T any](value T) T {
	return value
}

// Constant returns a stage that ignores its input and always returns the
// value captured at construction. Go passes the capture by value: scalars
// and structs are snapshotted, while slices, maps and pointers keep sharing
// their referent with the caller.
//
// Example:
//
//	fallback := Constant[error](0)
//	fallback(errors.New("ignored")) // 0
func Constant[In, T any](value T) func(In) T {
	return func(In) T {
		return value
	}
}

// Prop returns a stage projecting a single key out of a map. A missing key
// yields the value type's zero value. Field projection on a struct is an
// ordinary accessor function in Go; for a reflective lookup on arbitrary
// inputs see the erased subpackage.
//
// Example:
//
//	name := Prop[string, string]("name")
//	name(map[string]string{"name": "Alice"}) // "Alice"
func Prop[K comparable, V any](key K) func(map[K]V) V {
	return func(record map[K]V) V {
		return record[key]
	}
}
