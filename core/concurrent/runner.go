package concurrent

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// WorkerFunc is the unit of work executed for each item.
type WorkerFunc[T any, R any] func(ctx context.Context, item T) (R, error)

// RunnerConfig configures the concurrent runner.
type RunnerConfig struct {
	// MaxConcurrency bounds the number of in-flight workers. 0 means unlimited.
	MaxConcurrency int
	// Name is used as a log field to identify the batch.
	Name string
}

// RunResult contains the outcome of a concurrent run. Successes and failures
// are collected separately so callers can drop failures without losing the
// accounting of what went wrong.
type RunResult[R any] struct {
	Results []R
	Errors  []error
}

// Runner executes a worker over a batch of items concurrently and gathers
// every (result-or-error) outcome. A single failing item never aborts the run.
type Runner[T any, R any] struct {
	config RunnerConfig
	logger *zap.Logger
}

// NewRunner creates a new concurrent runner with the given configuration.
func NewRunner[T any, R any](config RunnerConfig, logger *zap.Logger) *Runner[T, R] {
	if config.Name == "" {
		config.Name = "runner"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner[T, R]{config: config, logger: logger}
}

// Run executes the worker for every item and waits for all of them.
func (r *Runner[T, R]) Run(ctx context.Context, items []T, worker WorkerFunc[T, R]) RunResult[R] {
	if len(items) == 0 {
		return RunResult[R]{Results: []R{}, Errors: []error{}}
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make([]R, 0, len(items))
		errs    []error
	)

	// Throttle channel for limiting concurrency (if configured)
	var throttle chan struct{}
	if r.config.MaxConcurrency > 0 {
		throttle = make(chan struct{}, r.config.MaxConcurrency)
	}

	for _, item := range items {
		wg.Add(1)

		if throttle != nil {
			throttle <- struct{}{}
		}

		go func(item T) {
			defer wg.Done()
			if throttle != nil {
				defer func() { <-throttle }()
			}

			result, err := worker(ctx, item)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				r.logger.Warn("batch item failed",
					zap.String("batch", r.config.Name),
					zap.Error(err),
				)
				errs = append(errs, err)
				return
			}
			results = append(results, result)
		}(item)
	}

	wg.Wait()

	return RunResult[R]{Results: results, Errors: errs}
}
