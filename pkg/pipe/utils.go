package pipe

import (
	"reflect"
)

// IsNil reports whether i is nil or a typed nil pointer.
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// Errors flattens err into its component errors. Aggregates produced by
// errors.Join and by hashicorp/go-multierror are both unwrapped; any other
// error comes back as a single-element slice.
func Errors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	if m, ok := err.(interface{ WrappedErrors() []error }); ok {
		return m.WrappedErrors()
	}

	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}

	return []error{err}
}
