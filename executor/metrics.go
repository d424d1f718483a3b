package executor

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Result labels for tasksCompleted.
const (
	resultOK        = "ok"
	resultError     = "error"
	resultPanic     = "panic"
	resultCancelled = "cancelled"
)

type metrics struct {
	// tasksSubmitted counts tasks accepted into the queue.
	tasksSubmitted prometheus.Counter
	// tasksCompleted counts resolved tasks by result.
	tasksCompleted *prometheus.CounterVec
	// taskDuration tracks the time a worker spent on each task.
	taskDuration prometheus.Histogram
	// inFlight is the number of tasks currently held by workers.
	inFlight prometheus.Gauge
}

// newMetrics builds the executor's collectors and registers them with reg.
// A nil reg leaves them unregistered. Collectors already registered under the
// same name and labels, e.g. by a closed executor of the same Name, are
// reused so their series keep accumulating.
func newMetrics(name string, reg prometheus.Registerer) (*metrics, error) {
	labels := prometheus.Labels{"executor": name}
	var err error
	m := &metrics{}

	if m.tasksSubmitted, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name:        "snailshell_executor_tasks_submitted_total",
		Help:        "Total tasks accepted by the executor",
		ConstLabels: labels,
	})); err != nil {
		return nil, err
	}
	if m.tasksCompleted, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "snailshell_executor_tasks_completed_total",
		Help:        "Total tasks resolved by result",
		ConstLabels: labels,
	}, []string{"result"})); err != nil {
		return nil, err
	}
	if m.taskDuration, err = register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:        "snailshell_executor_task_duration_seconds",
		Help:        "Task execution duration in seconds",
		ConstLabels: labels,
		Buckets:     prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
	})); err != nil {
		return nil, err
	}
	if m.inFlight, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        "snailshell_executor_tasks_in_flight",
		Help:        "Tasks currently running on a worker",
		ConstLabels: labels,
	})); err != nil {
		return nil, err
	}

	return m, nil
}

// register adds c to reg, returning the collector already registered in its
// place when there is one of the same type.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if reg == nil {
		return c, nil
	}
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}

	return c, fmt.Errorf("register metrics: %w", err)
}
