package concurrent

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunner_Run(t *testing.T) {
	t.Run("Empty Input", func(t *testing.T) {
		r := NewRunner[int, int](RunnerConfig{}, nil)
		out := r.Run(context.Background(), nil, func(ctx context.Context, item int) (int, error) {
			return item, nil
		})
		assert.Empty(t, out.Results)
		assert.Empty(t, out.Errors)
	})

	t.Run("Partial Failure", func(t *testing.T) {
		r := NewRunner[int, int](RunnerConfig{Name: "test"}, nil)
		out := r.Run(context.Background(), []int{1, 2, 3, 4, 5}, func(ctx context.Context, item int) (int, error) {
			if item%2 == 0 {
				return 0, fmt.Errorf("item %d failed", item)
			}
			return item * 10, nil
		})

		assert.Len(t, out.Results, 3)
		assert.Len(t, out.Errors, 2)
		assert.ElementsMatch(t, []int{10, 30, 50}, out.Results)
	})

	t.Run("Respects Max Concurrency", func(t *testing.T) {
		var inFlight, peak int32
		r := NewRunner[int, int](RunnerConfig{MaxConcurrency: 2}, nil)
		out := r.Run(context.Background(), []int{1, 2, 3, 4, 5, 6, 7, 8}, func(ctx context.Context, item int) (int, error) {
			n := atomic.AddInt32(&inFlight, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			defer atomic.AddInt32(&inFlight, -1)
			return item, nil
		})

		assert.Len(t, out.Results, 8)
		assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
	})
}
