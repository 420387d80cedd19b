// Package fanout runs a check across a slice of items with bounded
// concurrency and stops at the first failure.
package fanout

import (
	"context"
	"sync"
)

// Each calls fn for every item using at most maxWorkers goroutines. The
// first error cancels the context handed to the remaining calls, stops
// scheduling new ones, and is returned once in-flight calls finish. If ctx
// is cancelled first, its cause is returned.
//
// Each returns nil for an empty slice without calling fn. maxWorkers below 1
// is treated as 1.
func Each[T any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) error) error {
	if len(items) == 0 {
		return nil
	}
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

schedule:
	for _, item := range items {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			break schedule
		}
		if ctx.Err() != nil {
			<-sem
			break
		}
		wg.Go(func() {
			defer func() { <-sem }()
			if err := fn(ctx, item); err != nil {
				cancel(err)
			}
		})
	}

	wg.Wait()
	return context.Cause(ctx)
}
