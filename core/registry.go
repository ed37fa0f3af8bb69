// File: registry.go
// Role: Edge lifecycle & queries on the global Registry:
//       AddEdge/RemoveEdge/HasEdge/GetEdge/Edges/EdgeCount/View, plus nextUID().
// Determinism:
//   - Edges() returns edges sorted by UID asc.
//   - nextUID() is monotonic and never yields 0.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries and View under mu read lock.

package core

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// AddEdge creates a new directed edge from→to carrying weight w and records
// it in the registry. The returned pointer is the shared edge reference.
//
// Steps:
//  1. Validate endpoints and loop policy.
//  2. Generate uid atomically.
//  3. Store under write lock.
//
// Complexity: O(1) amortized.
func (r *Registry[W]) AddEdge(from, to *Node, w W) (*Edge[W], error) {
	if from == nil || to == nil {
		return nil, ErrNilNode
	}
	if from == to && !r.allowLoops {
		return nil, fmt.Errorf("AddEdge(%s→%s): %w", from.ID, to.ID, ErrLoopNotAllowed)
	}

	e := &Edge[W]{UID: r.nextUID(), From: from, To: to, Weight: w}

	r.mu.Lock()
	r.edges[e.UID] = e
	r.mu.Unlock()

	return e, nil
}

// RemoveEdge deletes the edge with the given uid.
// Unlike per-node stores, the registry reports a missing uid as ErrEdgeNotFound.
// Complexity: O(1).
func (r *Registry[W]) RemoveEdge(uid EdgeUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.edges[uid]; !ok {
		return fmt.Errorf("RemoveEdge(%s): %w", uid, ErrEdgeNotFound)
	}
	delete(r.edges, uid)

	return nil
}

// HasEdge reports whether uid is present.
func (r *Registry[W]) HasEdge(uid EdgeUID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.edges[uid]

	return ok
}

// GetEdge returns the shared edge for uid, or ErrEdgeNotFound.
//
// Contract:
//   - The returned *Edge must be treated as read-only by callers.
//
// Complexity: O(1).
func (r *Registry[W]) GetEdge(uid EdgeUID) (*Edge[W], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.edges[uid]
	if !ok {
		return nil, fmt.Errorf("GetEdge(%s): %w", uid, ErrEdgeNotFound)
	}

	return e, nil
}

// Edges returns all edges sorted by UID asc.
// Complexity: O(E log E).
func (r *Registry[W]) Edges() []*Edge[W] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Edge[W], 0, len(r.edges))
	for _, e := range r.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UID < out[j].UID })

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (r *Registry[W]) EdgeCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.edges)
}

// View calls fn with the live uid→edge catalog while holding the read lock.
// fn must not mutate the map, must not retain it after returning, and must
// not call mutating Registry methods (that would deadlock).
//
// This is the hand-off point for bulk scans such as outgoing-edge discovery.
func (r *Registry[W]) View(fn func(edges map[EdgeUID]*Edge[W])) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn(r.edges)
}

// nextUID reserves the next EdgeUID. Safe for concurrent callers.
func (r *Registry[W]) nextUID() EdgeUID {
	return EdgeUID(atomic.AddUint64(&r.uidSeq, 1))
}
