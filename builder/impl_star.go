// SPDX-License-Identifier: MIT
// Package: outedges/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub node has the fixed label CenterNodeID.
//   - Leaves are labelled via cfg.idFn for i = 1..n-1.
//   - For each leaf, emits Center→leaf then leaf→Center, so the hub owns
//     n-1 outgoing edges and every leaf owns exactly one.
//
// Complexity: O(n) nodes + O(2n-2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/outedges/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a bidirectional star with n nodes.
func Star[W core.Weight](n int) Constructor[W] {
	return func(f *Fixture[W], cfg builderConfig, wf WeightFn[W]) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := f.node(CenterNodeID)

		for i := 1; i < n; i++ {
			leaf := f.node(cfg.idFn(i))
			if err := f.link(methodStar, hub, leaf, cfg, wf); err != nil {
				return err
			}
			if err := f.link(methodStar, leaf, hub, cfg, wf); err != nil {
				return err
			}
		}

		return nil
	}
}
