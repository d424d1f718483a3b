package executor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/snailshell/internal/logger"
)

var (
	// ErrClosed is returned by Submit once Close has started.
	ErrClosed = errors.New("executor: closed")

	// ErrNilExecutor is returned by Submit when given a nil *Executor.
	ErrNilExecutor = errors.New("executor: nil executor")

	// ErrNilTask is returned by Submit when given a nil function.
	ErrNilTask = errors.New("executor: nil task")

	// ErrTaskPanicked is the resolution of a future whose function panicked.
	ErrTaskPanicked = errors.New("executor: task panicked")
)

// task is a queued unit of work. run resolves the owning future itself and
// reports the metric result label.
type task struct {
	id  string
	run func() string
}

// Executor owns a fixed set of worker goroutines fed by a bounded queue.
// Its zero value is not usable; call New.
type Executor struct {
	name    string
	log     *slog.Logger
	metrics *metrics

	mu     sync.RWMutex // guards closed and sends on queue
	closed bool
	queue  chan task

	workers   errgroup.Group
	closeOnce sync.Once
}

// New validates opts, registers metrics and starts opts.Workers workers.
// Errors: ErrBadOptions, or a registration conflict from opts.Registerer.
// Complexity: O(Workers) goroutines, O(QueueSize) buffered slots.
func New(opts Options) (*Executor, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("executor.New: %w", err)
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	m, err := newMetrics(opts.Name, opts.Registerer)
	if err != nil {
		return nil, fmt.Errorf("executor.New: %w", err)
	}

	e := &Executor{
		name:    opts.Name,
		log:     log.With("executor", opts.Name),
		metrics: m,
		queue:   make(chan task, opts.QueueSize),
	}
	for i := 0; i < opts.Workers; i++ {
		worker := i
		e.workers.Go(func() error {
			e.loop(worker)
			return nil
		})
	}
	e.log.Debug("executor.started", "workers", opts.Workers, "queue_size", opts.QueueSize)

	return e, nil
}

// Name returns the executor's metric label.
func (e *Executor) Name() string {
	return e.name
}

// Closed reports whether Close has been called.
func (e *Executor) Closed() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.closed
}

// Close stops intake, lets workers drain every queued task and waits for
// them to exit. Safe to call more than once; later calls wait as well.
func (e *Executor) Close() error {
	e.closeOnce.Do(func() {
		e.mu.Lock()
		e.closed = true
		close(e.queue)
		e.mu.Unlock()
		e.log.Debug("executor.closing")
	})
	err := e.workers.Wait()
	e.log.Debug("executor.closed")

	return err
}

// loop is a worker's body: run tasks until the queue is closed and empty.
func (e *Executor) loop(worker int) {
	for t := range e.queue {
		e.metrics.inFlight.Inc()
		start := time.Now()
		result := t.run()
		elapsed := time.Since(start)
		e.metrics.inFlight.Dec()

		e.metrics.taskDuration.Observe(elapsed.Seconds())
		e.metrics.tasksCompleted.WithLabelValues(result).Inc()
		e.log.Debug("task.done", "id", t.id, "worker", worker, "result", result, "elapsed", elapsed)
	}
}

// enqueue hands t to the workers, blocking while the queue is full.
func (e *Executor) enqueue(ctx context.Context, t task) error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.closed {
		return ErrClosed
	}
	// A done ctx must fail here even when the queue has room.
	if err := ctx.Err(); err != nil {
		return err
	}

	select {
	case e.queue <- t:
		e.metrics.tasksSubmitted.Inc()
		e.log.Debug("task.submitted", "id", t.id)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Submit schedules fn for exactly one execution on e and returns its future.
//
// fn receives ctx. If ctx is already done when a worker picks the task up,
// fn is skipped and the future resolves with ctx's error.
//
// Errors:
//   - ErrNilExecutor, ErrNilTask — programmer errors.
//   - ErrClosed — e is closed.
//   - ctx's error — ctx ended while waiting for queue space.
func Submit[T any](ctx context.Context, e *Executor, fn func(context.Context) (T, error)) (*Future[T], error) {
	if e == nil {
		return nil, ErrNilExecutor
	}
	if fn == nil {
		return nil, ErrNilTask
	}

	f := newFuture[T](uuid.NewString())
	t := task{
		id: f.id,
		run: func() (result string) {
			var zero T
			defer func() {
				if r := recover(); r != nil {
					e.log.Error("task.panicked", "id", f.id, "panic", r)
					f.resolve(zero, fmt.Errorf("task %s: %w: %v", f.id, ErrTaskPanicked, r))
					result = resultPanic
				}
			}()

			if err := ctx.Err(); err != nil {
				f.resolve(zero, err)
				return resultCancelled
			}
			v, err := fn(ctx)
			f.resolve(v, err)
			if err != nil {
				return resultError
			}
			return resultOK
		},
	}

	if err := e.enqueue(ctx, t); err != nil {
		return nil, fmt.Errorf("executor.Submit: %w", err)
	}

	return f, nil
}
