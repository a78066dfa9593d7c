package worker

import (
	"context"
	"sync"
	"testing"
)

// Analyzers run independently and may map over overlapping id lists at
// the same time; the mapper itself must hold no shared state between
// calls.
func TestMapConcurrentInvocations(t *testing.T) {
	items := make([]int, 40)
	for i := range items {
		items[i] = i
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results := Map(context.Background(), items, Options{BatchSize: 5, Pacing: 0}, func(_ context.Context, n int) (int, error) {
				return n * 2, nil
			})
			for i, r := range results {
				if r.Value != i*2 {
					t.Errorf("result %d = %d, want %d", i, r.Value, i*2)
					return
				}
			}
		}()
	}
	wg.Wait()
}
