package audit

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// collect runs every task and gathers their results. In sequential mode
// the tasks run one at a time in order; in parallel mode an errgroup with
// SetLimit bounds the worker pool. Results land in a pre-allocated slice
// by index, so no ordering is imposed beyond the final merge.
//
// Tasks cannot fail; per-issue problems are part of their result value.
// The only error out of collect is context cancellation.
func collect[T any](ctx context.Context, parallel bool, workers int, tasks []func() T) ([]T, error) {
	results := make([]T, len(tasks))

	// An errgroup limited to zero workers admits no goroutines at all, so
	// a non-positive worker count degrades to sequential execution.
	if !parallel || workers <= 0 {
		for i, task := range tasks {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
			results[i] = task()
		}
		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, task := range tasks {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = task()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
