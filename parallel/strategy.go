// SPDX-License-Identifier: MIT
// File: strategy.go
// Role: Strategy interface and the two built-in execution strategies.
// Concurrency:
//   - Sequential runs on the caller's goroutine.
//   - Parallel fans out over an errgroup and waits for every chunk.

package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Strategy names, stable for logs.
const (
	NameSequential = "sequential"
	NameParallel   = "parallel"
)

// minChunk is the smallest index range handed to one goroutine.
// Below it the scheduling overhead dominates the per-item work.
const minChunk = 64

// Strategy visits indices [0,n) and returns after every visit has finished.
type Strategy interface {
	// ForEach calls fn(i) once for every i in [0,n). n<=0 is a no-op.
	ForEach(n int, fn func(i int))

	// Name identifies the strategy in logs.
	Name() string
}

// Sequential visits indices in ascending order on the calling goroutine.
type Sequential struct{}

// ForEach implements Strategy.
func (Sequential) ForEach(n int, fn func(i int)) {
	for i := 0; i < n; i++ {
		fn(i)
	}
}

// Name implements Strategy.
func (Sequential) Name() string { return NameSequential }

// Parallel splits [0,n) into contiguous chunks and visits them concurrently.
//
// Fan-out is also gated by size: with n <= 64 (the minimum chunk) or a single
// worker, ForEach runs inline on the caller's goroutine. This threshold is a
// per-call decision and is separate from the build-time choice of Default.
type Parallel struct {
	workers  int
	chunkMin int
}

// NewParallel returns a Parallel strategy running at most workers goroutines
// at once. workers<=0 means runtime.GOMAXPROCS(0).
// Complexity: O(1).
func NewParallel(workers int) *Parallel {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &Parallel{workers: workers, chunkMin: minChunk}
}

// Workers reports the concurrency limit.
func (p *Parallel) Workers() int { return p.workers }

// Name implements Strategy.
func (p *Parallel) Name() string { return NameParallel }

// ForEach implements Strategy.
//
// Steps:
//  1. Size chunks so that each worker gets about one, but never below the minimum chunk.
//  2. Launch one errgroup task per chunk with SetLimit(workers).
//  3. Wait: the return of Wait is the barrier that publishes fn's writes.
//
// Complexity: O(n) total work, O(n/workers) span.
func (p *Parallel) ForEach(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	floor := p.chunkMin
	if floor <= 0 {
		floor = minChunk
	}
	if p.workers == 1 || n <= floor {
		Sequential{}.ForEach(n, fn)
		return
	}

	chunk := (n + p.workers - 1) / p.workers
	if chunk < floor {
		chunk = floor
	}

	var g errgroup.Group
	g.SetLimit(p.workers)
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				fn(i)
			}
			return nil
		})
	}
	// Tasks never fail; Wait is only the barrier.
	_ = g.Wait()
}
