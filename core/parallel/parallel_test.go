package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkers(t *testing.T) {
	assert.Equal(t, runtime.NumCPU(), Workers(0))
	assert.Equal(t, runtime.NumCPU(), Workers(-3))
	assert.Equal(t, 5, Workers(5))
}

func TestParallelize_CoversEveryItemOnce(t *testing.T) {
	for _, tc := range []struct{ items, workers int }{{0, 4}, {1, 4}, {7, 3}, {100, 8}, {3, 10}} {
		seen := make([]int32, tc.items)
		Parallelize(tc.items, tc.workers, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&seen[i], 1)
			}
		})
		for i, n := range seen {
			assert.Equal(t, int32(1), n, "items=%d workers=%d index=%d", tc.items, tc.workers, i)
		}
	}
}

func TestParallelizeWithThreshold_SequentialBelowThreshold(t *testing.T) {
	var mu sync.Mutex
	var calls [][2]int
	ParallelizeWithThreshold(10, 100, 4, func(start, end int) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, [2]int{start, end})
	})
	assert.Equal(t, [][2]int{{0, 10}}, calls)

	calls = nil
	ParallelizeWithThreshold(0, 100, 4, func(start, end int) {
		calls = append(calls, [2]int{start, end})
	})
	assert.Empty(t, calls)
}
