// Package executor runs submitted work on a bounded pool of long-lived
// worker goroutines and hands back one-shot futures.
//
// 🚀 Lifecycle
//
//	e, err := executor.New(executor.DefaultOptions()) // workers start here
//	defer e.Close()                                    // drain + join
//
//	f, err := executor.Submit(ctx, e, func(ctx context.Context) (int, error) {
//	  return 42, nil
//	})
//	v, err := f.WaitTimeout(10 * time.Second)
//
// A process-wide instance is available through Default (created on first
// use) and released with ShutdownDefault.
//
// Guarantees:
//   - each submitted function runs at most once;
//   - every future resolves exactly once, to the function's result, its
//     error, ErrTaskPanicked, or the submitter's context error when the
//     context was cancelled before a worker picked the task up;
//   - no ordering between independently submitted tasks when Workers > 1.
//     With the default single worker, tasks run in submission order.
//
// Metrics are exported through prometheus client_golang when
// Options.Registerer is set.
package executor
