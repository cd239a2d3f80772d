package workers

import (
	"os"
	"runtime"
	"strconv"
	"sync"
)

// OverrideEnv names the environment variable that fixes the worker count.
const OverrideEnv = "PLS_WORKERS"

// Count returns a worker count scaled from GOMAXPROCS, which follows the
// container CPU limit. The multiplier is 1.0 for CPU-bound work and 2.0 for
// I/O-bound work. A limit of 0 means no cap. PLS_WORKERS overrides the
// computed value but still respects the limit.
func Count(multiplier float64, limit int) int {
	if override := os.Getenv(OverrideEnv); override != "" {
		if count, err := strconv.Atoi(override); err == nil && count > 0 {
			if limit > 0 && count > limit {
				return limit
			}
			return count
		}
	}

	n := int(float64(runtime.GOMAXPROCS(0)) * multiplier)
	if n < 1 {
		n = 1
	}
	if limit > 0 && n > limit {
		n = limit
	}
	return n
}

// ForIO returns a worker count for I/O-bound tasks (2 per CPU).
func ForIO(limit int) int {
	return Count(2.0, limit)
}

// Map calls fn for every item using at most n goroutines and returns the
// results in input order. n below 1 is treated as 1.
func Map[T, R any](items []T, n int, fn func(T) R) []R {
	results := make([]R, len(items))
	if len(items) == 0 {
		return results
	}
	if n < 1 {
		n = 1
	}
	if n > len(items) {
		n = len(items)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = fn(items[i])
			}
		}()
	}

	for i := range items {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
