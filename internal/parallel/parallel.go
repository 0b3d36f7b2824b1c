// Package parallel provides the worker pool used for batch fan-out.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Number of worker goroutines to use.
	MinUnits   int  // Minimum work units before goroutines pay off.
}

// DefaultConfig returns sensible defaults based on CPU count.
// Work units here are coarse (a whole image per unit), so there is no chunk
// floor beyond needing more than one unit.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		MinUnits:   2,
	}
}

// WithWorkers returns a config with an explicit pool size.
// n < 1 disables parallelism.
func WithWorkers(n int) Config {
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		MinUnits:   2,
	}
}

// For executes f(i) for i in [0, n) with optional parallelism and blocks
// until every call has returned. Falls back to sequential execution if
// parallelism is disabled or n is too small.
//
// f must be safe to call concurrently for distinct i. No iteration order is
// guaranteed; callers that care about ordering must write results into
// index-addressed slots.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < cfg.MinUnits {
		// Sequential fallback.
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, 1)

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
