package snailshell

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/snailshell/executor"
	"github.com/katalvlaran/snailshell/spiral"
)

// Shell submits spiral traversals to an executor.
// A Shell built by New owns its executor; one built by Wrap borrows it.
type Shell struct {
	exec  *executor.Executor
	owned bool
}

// New starts a dedicated executor configured by opts.
func New(opts executor.Options) (*Shell, error) {
	e, err := executor.New(opts)
	if err != nil {
		return nil, err
	}

	return &Shell{exec: e, owned: true}, nil
}

// Wrap returns a Shell that dispatches to e without taking ownership:
// Close on the Shell leaves e running.
func Wrap(e *executor.Executor) *Shell {
	return &Shell{exec: e}
}

// Executor returns the executor the Shell dispatches to.
func (s *Shell) Executor() *executor.Executor {
	return s.exec
}

// Close shuts down the executor if the Shell owns it.
func (s *Shell) Close() error {
	if !s.owned {
		return nil
	}

	return s.exec.Close()
}

// Submit validates m synchronously and schedules spiral.Traverse(m) on the
// Shell's executor. The caller must not mutate m until the future resolves.
//
// Errors:
//   - spiral.ErrNonSquare — returned directly; nothing is queued.
//   - executor.ErrClosed or ctx's error — from the executor.
func Submit[T any](ctx context.Context, s *Shell, m [][]T) (*executor.Future[[]T], error) {
	if _, err := spiral.Validate(m); err != nil {
		return nil, fmt.Errorf("Submit: %w", err)
	}

	return executor.Submit(ctx, s.exec, func(context.Context) ([]T, error) {
		return spiral.Traverse(m)
	})
}

// Snail traverses m on the process-wide default executor and waits for the
// result. timeout ≤ 0 waits until ctx is done.
//
// Errors:
//   - spiral.ErrNonSquare, executor.ErrTimeout, or ctx's error.
func Snail[T any](ctx context.Context, m [][]T, timeout time.Duration) ([]T, error) {
	e, err := executor.Default()
	if err != nil {
		return nil, err
	}
	f, err := Submit(ctx, Wrap(e), m)
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		return f.WaitTimeout(timeout)
	}

	return f.Wait(ctx)
}
