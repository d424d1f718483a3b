package executor

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrTimeout is returned by WaitTimeout when the deadline passes first.
var ErrTimeout = errors.New("executor: timed out waiting for result")

// Future is a one-shot handle on the result of a submitted function.
type Future[T any] struct {
	id   string
	done chan struct{}
	val  T
	err  error
}

func newFuture[T any](id string) *Future[T] {
	return &Future[T]{id: id, done: make(chan struct{})}
}

// resolve stores the outcome and releases waiters. Called once per future,
// by the worker that owns the task.
func (f *Future[T]) resolve(v T, err error) {
	f.val, f.err = v, err
	close(f.done)
}

// ID returns the task id assigned at submission.
func (f *Future[T]) ID() string {
	return f.id
}

// Done is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the result is available or ctx is done.
// A ctx error leaves the task itself untouched.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// WaitTimeout waits at most d for the result. d ≤ 0 waits forever.
//
// Errors:
//   - ErrTimeout on expiry; the task keeps running and still resolves.
//   - whatever the task resolved with, otherwise.
func (f *Future[T]) WaitTimeout(d time.Duration) (T, error) {
	if d <= 0 {
		<-f.done

		return f.val, f.err
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.val, f.err
	case <-timer.C:
		var zero T
		return zero, fmt.Errorf("task %s after %s: %w", f.id, d, ErrTimeout)
	}
}
