// Package parallel runs independent units of work, such as cross-validation
// folds, on a bounded number of goroutines.
package parallel

import (
	"runtime"
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Maximum number of concurrent goroutines.
}

// DefaultConfig sizes the pool to the physical core count.
//
// Training is floating point bound, so hyperthreads add little. When the CPU
// topology is unknown the logical CPU count is used.
func DefaultConfig() Config {
	n := cpuid.CPU.PhysicalCores
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
	}
}

// Sequential returns a Config that runs everything on the calling goroutine.
func Sequential() Config {
	return Config{Enabled: false, NumWorkers: 1}
}

// WithWorkers returns a copy of cfg limited to n workers. n <= 0 keeps cfg.
func (cfg Config) WithWorkers(n int) Config {
	if n <= 0 {
		return cfg
	}
	cfg.NumWorkers = n
	cfg.Enabled = n > 1
	return cfg
}

// For executes f(i) for i in [0, n), at most cfg.NumWorkers at a time.
// Falls back to sequential execution if parallelism is disabled or n < 2.
//
// Every i runs even if another one fails. The returned error is the one of
// the smallest failing i, so the result does not depend on scheduling.
func For(n int, f func(i int) error, cfg Config) error {
	if n <= 0 {
		return nil
	}

	errs := make([]error, n)
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < 2 {
		for i := 0; i < n; i++ {
			errs[i] = f(i)
		}
		return first(errs)
	}

	sem := make(chan struct{}, cfg.NumWorkers)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		sem <- struct{}{}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			errs[i] = f(i)
		}(i)
	}
	wg.Wait()

	return first(errs)
}

func first(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
