package executor

import "sync"

// Process-wide executor with an explicit lifecycle.
var (
	defaultMu   sync.Mutex
	defaultExec *Executor
)

// Default returns the process-wide executor, creating it with
// DefaultOptions on first use or after ShutdownDefault.
func Default() (*Executor, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultExec != nil && !defaultExec.Closed() {
		return defaultExec, nil
	}
	e, err := New(DefaultOptions())
	if err != nil {
		return nil, err
	}
	defaultExec = e

	return e, nil
}

// ShutdownDefault closes the process-wide executor, if any, waiting for
// queued tasks to finish. Call it once during process shutdown.
func ShutdownDefault() error {
	defaultMu.Lock()
	e := defaultExec
	defaultExec = nil
	defaultMu.Unlock()

	if e == nil {
		return nil
	}

	return e.Close()
}
