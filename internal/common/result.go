package common

import (
	"context"
	"errors"
)

// errNoCause stands in when Fail is handed a nil error.
var errNoCause = errors.New("operation failed")

// Result is the outcome of an asynchronous operation: either a value or an error.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Fail wraps an error. A nil err still yields a failed result.
func Fail[T any](err error) Result[T] {
	if err == nil {
		err = errNoCause
	}
	return Result[T]{err: err}
}

// ResultOf builds a Result from the usual (value, error) pair.
func ResultOf[T any](value T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(value)
}

// IsOk reports whether the result carries a value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Value returns the value, or the zero value for a failed result.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the error of a failed result.
func (r Result[T]) Err() error {
	return r.err
}

// Unwrap returns the (value, error) pair.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// Task is a cancellable unit of asynchronous work.
type Task[T any] struct {
	done   chan struct{}
	cancel context.CancelFunc
	result Result[T]
}

// Go starts fn in a new goroutine and returns a handle on it.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Task[T] {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task[T]{
		done:   make(chan struct{}),
		cancel: cancel,
	}

	go func() {
		defer close(t.done)
		defer cancel()
		value, err := fn(ctx)
		t.result = ResultOf(value, err)
	}()

	return t
}

// Done is closed once the task has finished.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Cancel asks the task to stop. The task still runs to completion.
func (t *Task[T]) Cancel() {
	t.cancel()
}

// Wait blocks until the task finishes or ctx ends, whichever comes first.
func (t *Task[T]) Wait(ctx context.Context) Result[T] {
	select {
	case <-t.done:
		return t.result
	case <-ctx.Done():
		return Fail[T](ctx.Err())
	}
}
