package async

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Promise is a Deferred settled exactly once by Resolve or Reject. Each
// promise carries an id and UTC creation time for correlating pipeline runs.
type Promise[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	once      sync.Once
	done      chan struct{}
	value     T
	err       error
}

// NewPromise returns an unsettled promise.
func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		done:      make(chan struct{}),
	}
}

// Go runs fn in its own goroutine and returns a promise settled with fn's
// outcome.
func Go[T any](fn func() (T, error)) *Promise[T] {
	p := NewPromise[T]()
	go func() {
		v, err := fn()
		if err != nil {
			p.Reject(err)
			return
		}
		p.Resolve(v)
	}()
	return p
}

// Resolve settles the promise with a value. Only the first settle has any
// effect.
func (p *Promise[T]) Resolve(value T) {
	p.once.Do(func() {
		p.value = value
		close(p.done)
	})
}

// Reject settles the promise with an error. Only the first settle has any
// effect. A nil err is replaced, matching Rejected.
func (p *Promise[T]) Reject(err error) {
	if err == nil {
		err = errNilRejection
	}
	p.once.Do(func() {
		p.err = err
		close(p.done)
	})
}

// Await blocks until the promise settles or ctx ends. A value that already
// settled is delivered even when ctx has ended.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.value, p.err
	default:
	}

	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// ID returns the promise's correlation id.
func (p *Promise[T]) ID() uuid.UUID {
	return p.id
}

// CreatedAt returns the promise's creation time (UTC).
func (p *Promise[T]) CreatedAt() time.Time {
	return p.createdAt
}
