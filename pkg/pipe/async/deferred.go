package async

import (
	"context"
	"errors"
)

// Deferred is a value that may not be available yet. Await blocks until the
// value settles or ctx ends, whichever comes first.
type Deferred[T any] interface {
	// Await returns the settled value, the settling error, or ctx's error
	// when the context ends before the value is available.
	Await(ctx context.Context) (T, error)
}

type settled[T any] struct {
	value T
	err   error
}

func (s settled[T]) Await(context.Context) (T, error) {
	// already settled, so the context has nothing left to bound
	return s.value, s.err
}

// Resolved wraps an already-available value as a Deferred.
func Resolved[T any](value T) Deferred[T] {
	return settled[T]{value: value}
}

var errNilRejection = errors.New("async: rejected with nil error")

// Rejected wraps an error as an already-failed Deferred. A nil err is
// replaced so the deferred still reports failure.
func Rejected[T any](err error) Deferred[T] {
	if err == nil {
		err = errNilRejection
	}
	return settled[T]{err: err}
}
