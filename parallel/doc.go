// Package parallel provides the "maybe-parallel for-each" primitive used by
// bulk scans in outedges.
//
// A Strategy visits every index in [0,n) exactly once and returns only after
// all visits have completed, so any state written by the callback is visible
// to the caller afterwards. Visit order is unspecified for Parallel and
// ascending for Sequential; algorithms written against Strategy must not
// depend on order.
//
// Strategies:
//
//	Sequential{}       – single goroutine, ascending order.
//	NewParallel(w)     – contiguous chunks fanned out over an errgroup with
//	                     at most w goroutines in flight (w<=0 → GOMAXPROCS).
//	Default            – selected once at build time (see below).
//
// Capability selection:
//
//	Default is fixed by build constraints, never per call:
//	  • js, wasip1, or the `outedges_sequential` build tag → Sequential{}.
//	  • every other target                              → NewParallel(0).
//	ParallelSupported reports which of the two was compiled in.
//
// Callbacks run concurrently under Parallel; any shared state they touch
// must be synchronized by the caller.
package parallel
