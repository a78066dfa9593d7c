// Package worker implements the bounded concurrent mapper used by every
// analyzer: fixed-width batches over a list of items, an inter-batch
// pacing delay as crude backpressure against the upstream rate limit,
// and per-item isolated failure handling.
package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	itemsMapped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "insights_mapper_items_total",
		Help: "Total items processed by the bounded mapper",
	})

	itemsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "insights_mapper_item_failures_total",
		Help: "Items whose worker returned an error or panicked",
	})

	batchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "insights_mapper_batch_duration_seconds",
		Help:    "Duration of one mapper batch",
		Buckets: prometheus.DefBuckets,
	})
)

// Result pairs an input item with its outcome. Exactly one of Value and
// Err is meaningful.
type Result[T, R any] struct {
	Item  T
	Value R
	Err   error
}

// Options tunes the mapper. A zero BatchSize falls back to the
// default; a zero Pacing disables the inter-batch delay.
type Options struct {
	// BatchSize is the concurrency width; all workers in a batch run
	// concurrently and the mapper waits for the full batch before
	// starting the next.
	BatchSize int
	// Pacing is slept between batches, not after the last one.
	Pacing time.Duration
}

const (
	defaultBatchSize = 10
	defaultPacing    = 100 * time.Millisecond
)

// Map applies fn to every item with bounded concurrency. A single
// item's failure (error or panic) never aborts the batch or the overall
// map; it is reported in that item's Result. Results are returned in
// input order.
func Map[T, R any](ctx context.Context, items []T, opts Options, fn func(context.Context, T) (R, error)) []Result[T, R] {
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}
	if opts.Pacing < 0 {
		opts.Pacing = defaultPacing
	}

	results := make([]Result[T, R], len(items))

	for start := 0; start < len(items); start += opts.BatchSize {
		end := start + opts.BatchSize
		if end > len(items) {
			end = len(items)
		}

		batchStart := time.Now()
		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				results[idx] = runOne(ctx, items[idx], fn)
			}(i)
		}
		wg.Wait()
		batchDuration.Observe(time.Since(batchStart).Seconds())

		if end < len(items) && opts.Pacing > 0 {
			select {
			case <-time.After(opts.Pacing):
			case <-ctx.Done():
				// Mark the remainder as canceled rather than dropping it.
				for i := end; i < len(items); i++ {
					results[i] = Result[T, R]{Item: items[i], Err: ctx.Err()}
					itemsMapped.Inc()
					itemsFailed.Inc()
				}
				return results
			}
		}
	}

	return results
}

func runOne[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (res Result[T, R]) {
	res.Item = item
	defer func() {
		itemsMapped.Inc()
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("worker panic: %v", r)
		}
		if res.Err != nil {
			itemsFailed.Inc()
		}
	}()

	res.Value, res.Err = fn(ctx, item)
	return res
}
