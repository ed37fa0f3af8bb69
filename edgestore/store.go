// SPDX-License-Identifier: MIT
// File: store.go
// Role: EdgeMap shared handle and Store point operations:
//       New/Size/Get/Has/Add/RemoveID/RemoveEdge/Edges.
// Determinism:
//   - Edges() returns edges sorted by UID asc.
// Concurrency:
//   - None of these methods lock. See doc.go for the caller's obligations.

package edgestore

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/outedges/core"
	"github.com/katalvlaran/outedges/parallel"
)

// EdgeMap is the shared storage behind one or more Stores.
//
// mu serializes Discover merges, including lazy allocation of a zero-value
// map; point operations do not take it.
type EdgeMap[W core.Weight] struct {
	mu sync.Mutex
	m  map[core.EdgeUID]*core.Edge[W]
}

// NewEdgeMap returns an empty map handle ready to be shared.
func NewEdgeMap[W core.Weight]() *EdgeMap[W] {
	return &EdgeMap[W]{m: make(map[core.EdgeUID]*core.Edge[W])}
}

// Len returns the number of entries. Not synchronized.
func (em *EdgeMap[W]) Len() int {
	if em == nil {
		return 0
	}

	return len(em.m)
}

// Store is the outgoing-edge registry of a single node.
type Store[W core.Weight] struct {
	owner    *core.Node
	edges    *EdgeMap[W]
	strategy parallel.Strategy
	log      *zap.Logger
}

// New creates the store for owner. A non-nil shared handle is adopted as-is,
// so the new store aliases every other holder of shared (even when it is
// currently empty). A nil handle allocates private storage.
//
// Complexity: O(len(opts)).
func New[W core.Weight](owner *core.Node, shared *EdgeMap[W], opts ...Option) *Store[W] {
	if shared == nil {
		shared = NewEdgeMap[W]()
	}
	cfg := newStoreConfig(opts...)

	return &Store[W]{
		owner:    owner,
		edges:    shared,
		strategy: cfg.strategy,
		log:      cfg.log,
	}
}

// Owner returns the node whose outgoing edges this store tracks.
func (s *Store[W]) Owner() *core.Node { return s.owner }

// Map returns the storage handle; pass it to New to create an aliasing store.
func (s *Store[W]) Map() *EdgeMap[W] { return s.edges }

// Size returns the number of edges currently held.
// Complexity: O(1).
func (s *Store[W]) Size() int {
	return s.edges.Len()
}

// Get returns the edge stored under uid, or an error wrapping ErrEdgeNotFound.
//
// Contract:
//   - The returned pointer is the shared edge; treat it as read-only.
//
// Complexity: O(1).
func (s *Store[W]) Get(uid core.EdgeUID) (*core.Edge[W], error) {
	if s.edges != nil {
		if e, ok := s.edges.m[uid]; ok {
			return e, nil
		}
	}

	return nil, fmt.Errorf("Get(%s): %w", uid, ErrEdgeNotFound)
}

// Has reports whether uid is present.
func (s *Store[W]) Has(uid core.EdgeUID) bool {
	if s.edges == nil {
		return false
	}
	_, ok := s.edges.m[uid]

	return ok
}

// Add inserts e under e.UID unless that key is already taken; an existing
// entry is never replaced, so re-adding is a no-op. Add does not check that
// e.From is the owner. A nil e is ignored.
//
// Complexity: O(1) amortized.
func (s *Store[W]) Add(e *core.Edge[W]) {
	if e == nil {
		return
	}
	m := s.ensure()
	if _, exists := m.m[e.UID]; exists {
		return
	}
	m.m[e.UID] = e
}

// RemoveID deletes the entry for uid. Absent uid is a no-op.
// Complexity: O(1).
func (s *Store[W]) RemoveID(uid core.EdgeUID) {
	if s.edges == nil || s.edges.m == nil {
		return
	}
	delete(s.edges.m, uid)
}

// RemoveEdge deletes the entry whose stored pointer is e itself.
// An entry holding a different *Edge with the same UID is left alone;
// use RemoveID for uid-based removal. nil e is a no-op.
//
// Complexity: O(1) when e is stored under e.UID, O(k) otherwise.
func (s *Store[W]) RemoveEdge(e *core.Edge[W]) {
	if s.edges == nil || s.edges.m == nil || e == nil {
		return
	}
	// Fast path: the usual slot for e.
	if s.edges.m[e.UID] == e {
		delete(s.edges.m, e.UID)
		return
	}
	// e.UID may have been reassigned after insertion; fall back to a scan.
	for uid, stored := range s.edges.m {
		if stored == e {
			delete(s.edges.m, uid)
			return
		}
	}
}

// Edges returns the held edges sorted by UID asc.
// Complexity: O(k log k).
func (s *Store[W]) Edges() []*core.Edge[W] {
	if s.edges == nil {
		return nil
	}
	out := make([]*core.Edge[W], 0, len(s.edges.m))
	for _, e := range s.edges.m {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UID < out[j].UID })

	return out
}

// ensure lazily allocates storage for a zero-value Store or EdgeMap.
// Unsynchronized like the other point operations; merge allocates the inner
// map under the merge lock instead.
func (s *Store[W]) ensure() *EdgeMap[W] {
	if s.edges == nil {
		s.edges = NewEdgeMap[W]()
	}
	if s.edges.m == nil {
		s.edges.m = make(map[core.EdgeUID]*core.Edge[W])
	}

	return s.edges
}
