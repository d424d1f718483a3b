package executor

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Defaults.
const (
	// DefaultWorkers keeps a single permanently alive worker.
	DefaultWorkers = 1
	// DefaultQueueSize bounds the number of tasks waiting for a worker.
	DefaultQueueSize = 64
	// DefaultName labels the metrics of an unnamed executor.
	DefaultName = "default"
)

// ErrBadOptions indicates an invalid Options value.
var ErrBadOptions = errors.New("executor: invalid options")

// Options configures an Executor.
//
// Fields:
//   - Name       — const label "executor" on every metric.
//   - Workers    — number of worker goroutines, ≥ 1.
//   - QueueSize  — buffered tasks beyond the running ones, ≥ 0.
//     Submit blocks while the queue is full.
//   - Logger     — structured logger; nil discards.
//   - Registerer — prometheus registerer; nil leaves metrics unregistered.
type Options struct {
	Name       string
	Workers    int
	QueueSize  int
	Logger     *slog.Logger
	Registerer prometheus.Registerer
}

// DefaultOptions returns Options with a single worker and a queue of
// DefaultQueueSize.
func DefaultOptions() Options {
	return Options{
		Name:      DefaultName,
		Workers:   DefaultWorkers,
		QueueSize: DefaultQueueSize,
	}
}

// validate checks ranges and fills the name.
func (o *Options) validate() error {
	if o.Workers < 1 {
		return fmt.Errorf("Workers=%d: %w", o.Workers, ErrBadOptions)
	}
	if o.QueueSize < 0 {
		return fmt.Errorf("QueueSize=%d: %w", o.QueueSize, ErrBadOptions)
	}
	if o.Name == "" {
		o.Name = DefaultName
	}

	return nil
}
