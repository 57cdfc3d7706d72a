// Package parallel provides a small bounded data-parallel helper for the
// embarrassingly-parallel passes spec.md §5 calls out: forest reset, label
// image synthesis, tree-statistics accumulation, saliency normalisation,
// and seed relabelling. Every such pass writes only to per-index cells, so
// chunked ranges never need synchronization beyond the closing WaitGroup.
//
// No corpus repository wires a worker-pool library (no errgroup, no
// third-party pool); this mirrors the teacher's own concurrency story —
// core/concurrency_test.go exercises sync.RWMutex directly rather than a
// pool abstraction — so this helper stays on the standard library.
package parallel

import (
	"runtime"
	"sync"
)

// minChunk is the smallest amount of work worth handing to its own
// goroutine; below this, Range runs inline.
const minChunk = 4096

// Range calls fn(i) for every i in [0,n) using a bounded number of
// goroutines, then waits for all of them to finish before returning.
// fn must only write to index-local state (cell i or an accumulator slot
// reserved for i); Range performs no synchronization between calls.
//
// Complexity: O(n/workers) wall-clock assuming fn is O(1); O(1) extra
// space beyond the caller-owned output.
func Range(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	if n <= minChunk || workers == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}
