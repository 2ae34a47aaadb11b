package parallel

import (
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func newTestPool(t *testing.T, workers int) *WorkerPool {
	t.Helper()

	pool, err := NewWorkerPool(workers)
	if err != nil {
		t.Fatalf("NewWorkerPool(%d) failed: %v", workers, err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func TestWorkerPoolBasicOperations(t *testing.T) {
	pool := newTestPool(t, 4)

	executed := false
	if !pool.Submit(func() { executed = true }) {
		t.Error("Task submission failed")
	}

	pool.Close()

	if !executed {
		t.Error("Task was not executed")
	}
}

func TestWorkerPoolConcurrentSubmissions(t *testing.T) {
	pool := newTestPool(t, 10)

	numTasks := 100
	var counter int64

	var wg sync.WaitGroup
	for i := 0; i < numTasks; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pool.Submit(func() {
				atomic.AddInt64(&counter, 1)
			})
		}()
	}

	wg.Wait()
	pool.Close()

	if counter != int64(numTasks) {
		t.Errorf("Expected counter %d, got %d", numTasks, counter)
	}
}

// Closing while other goroutines submit must not panic
func TestWorkerPoolCloseRace(t *testing.T) {
	for iteration := 0; iteration < 50; iteration++ {
		pool, _ := NewWorkerPool(4)

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 10; j++ {
					pool.Submit(func() {
						time.Sleep(100 * time.Microsecond)
					})
				}
			}()
		}

		pool.Close()
		wg.Wait()
	}
}

func TestWorkerPoolSubmitAfterClose(t *testing.T) {
	pool := newTestPool(t, 2)
	pool.Close()

	if pool.Submit(func() {}) {
		t.Error("Submit after Close should return false")
	}
}

func TestWorkerPoolPanicRecovery(t *testing.T) {
	pool := newTestPool(t, 2)

	var ran int64
	pool.Submit(func() { panic("boom") })
	pool.Submit(func() { atomic.AddInt64(&ran, 1) })
	pool.Wait()

	if ran != 1 {
		t.Error("Worker should survive a panicking task")
	}
	if err := pool.Err(); !errors.Is(err, ErrTaskPanicked) {
		t.Errorf("Err() = %v, want ErrTaskPanicked", err)
	}
}

func TestWorkerPoolSizes(t *testing.T) {
	if _, err := NewWorkerPool(math.MaxInt); !errors.Is(err, ErrTooManyWorkers) {
		t.Errorf("Expected ErrTooManyWorkers, got %v", err)
	}

	tests := []struct {
		requested int
		expected  int
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{16, 16},
	}
	for _, tt := range tests {
		pool := newTestPool(t, tt.requested)
		if pool.workers != tt.expected {
			t.Errorf("NewWorkerPool(%d) has %d workers, want %d", tt.requested, pool.workers, tt.expected)
		}
	}
}
