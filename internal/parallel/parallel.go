// Package parallel provides the fan-out-over-a-range helper used by the
// photo source collaborator to spread per-file work across CPUs.
package parallel

import (
	"runtime"
	"sync"
)

// Run calls fn(i) for every i in [start, end), splitting the range into
// contiguous batches of (end-start)/runtime.NumCPU() indices, one
// goroutine per batch (so a remainder adds goroutines beyond the CPU
// count). Ranges smaller than the CPU count run sequentially in the
// calling goroutine.
func Run(start, end int, fn func(i int)) {
	workers := runtime.NumCPU()
	if end-start < workers {
		for i := start; i < end; i++ {
			fn(i)
		}
		return
	}

	batchSize := (end - start) / workers
	if batchSize < 1 {
		batchSize = 1
	}

	var wg sync.WaitGroup
	for i := start; i < end; i += batchSize {
		wg.Add(1)
		go func(from, to int) {
			defer wg.Done()
			if to > end {
				to = end
			}
			for j := from; j < to; j++ {
				fn(j)
			}
		}(i, i+batchSize)
	}
	wg.Wait()
}
