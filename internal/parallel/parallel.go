// Package parallel provides parallel execution utilities for corpus scanning.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
//
// Corpus work is file-grained, so the chunk floor is 1: even two files are
// worth scanning concurrently because each scan is I/O bound.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 1,
	}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinChunkSize || n < 2 {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// MapErr executes f(i) for i in [0, n), collecting one result per index.
//
// Unlike For, each invocation may fail; the first error (by index order) is
// returned and the remaining results are discarded. All invocations run to
// completion even when one fails, which keeps the goroutine accounting
// simple and costs little for corpus-sized n.
func MapErr[T any](n int, f func(i int) (T, error), cfg Config) ([]T, error) {
	results := make([]T, n)
	errs := make([]error, n)

	For(n, func(i int) {
		results[i], errs[i] = f(i)
	}, cfg)

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
