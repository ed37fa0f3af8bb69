// SPDX-License-Identifier: MIT
// File: discover.go
// Role: Bulk rebuild of the outgoing set from the global edge catalog.
// Concurrency:
//   - Scan fan-out via parallel.Strategy; matches collected under a scan-local mutex.
//   - Merge under EdgeMap.mu.

package edgestore

import (
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/outedges/core"
	"github.com/katalvlaran/outedges/parallel"
)

// discovered is one accumulated match.
type discovered[W core.Weight] struct {
	uid  core.EdgeUID
	edge *core.Edge[W]
}

// Discover scans edges for entries whose From is the owner (pointer identity)
// and merges them into the store without overwriting existing keys.
// edges is only read. nil entries are skipped. A store without an owner
// matches nothing.
//
// Steps:
//  1. Copy the catalog values into a slice so the strategy can index them.
//  2. ForEach: on match, lock acc.mu, append, unlock.
//  3. ForEach has returned, so every append is visible; merge under EdgeMap.mu.
//
// Complexity: O(E) work. The snapshot is one sequential pass over the map;
// only the From comparison runs under the strategy, O(E/workers) span.
func (s *Store[W]) Discover(edges map[core.EdgeUID]*core.Edge[W]) {
	strategy := s.strategyOrDefault()
	if len(edges) == 0 || s.owner == nil {
		s.logger().Debug("outgoing edge discovery skipped",
			zap.String("owner", s.ownerID()),
			zap.Int("scanned", len(edges)))
		return
	}

	snapshot := make([]*core.Edge[W], 0, len(edges))
	for _, e := range edges {
		snapshot = append(snapshot, e)
	}

	var acc struct {
		mu    sync.Mutex
		found []discovered[W]
	}
	owner := s.owner
	strategy.ForEach(len(snapshot), func(i int) {
		e := snapshot[i]
		if e == nil || e.From != owner {
			return
		}
		acc.mu.Lock()
		acc.found = append(acc.found, discovered[W]{uid: e.UID, edge: e})
		acc.mu.Unlock()
	})

	merged := s.merge(acc.found)

	s.logger().Debug("outgoing edges discovered",
		zap.String("owner", s.ownerID()),
		zap.String("strategy", strategy.Name()),
		zap.Int("scanned", len(snapshot)),
		zap.Int("matched", len(acc.found)),
		zap.Int("merged", merged))
}

// DiscoverFrom runs Discover over r's catalog while r is read-locked.
// A nil registry is a no-op.
func (s *Store[W]) DiscoverFrom(r *core.Registry[W]) {
	if r == nil {
		return
	}
	r.View(s.Discover)
}

// merge inserts found into the shared map under its merge lock and returns
// how many entries were new.
func (s *Store[W]) merge(found []discovered[W]) int {
	if len(found) == 0 {
		return 0
	}
	// found is non-empty only when the store has an owner, and New always
	// sets the handle alongside the owner, so s.edges is non-nil here.
	m := s.edges

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.m == nil {
		m.m = make(map[core.EdgeUID]*core.Edge[W])
	}
	merged := 0
	for _, d := range found {
		if _, exists := m.m[d.uid]; exists {
			continue
		}
		m.m[d.uid] = d.edge
		merged++
	}

	return merged
}

func (s *Store[W]) strategyOrDefault() parallel.Strategy {
	if s.strategy == nil {
		return parallel.Default
	}

	return s.strategy
}

func (s *Store[W]) logger() *zap.Logger {
	if s.log == nil {
		return zap.NewNop()
	}

	return s.log
}

func (s *Store[W]) ownerID() string {
	if s.owner == nil {
		return ""
	}

	return s.owner.ID
}
