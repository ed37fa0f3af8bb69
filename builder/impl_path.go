// SPDX-License-Identifier: MIT
// Package: outedges/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Nodes labelled cfg.idFn(0..n-1); edges i→i+1 in ascending i.
//   - The last node has no outgoing edge.
//
// Complexity: O(n) nodes + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/outedges/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a directed path P_n.
func Path[W core.Weight](n int) Constructor[W] {
	return func(f *Fixture[W], cfg builderConfig, wf WeightFn[W]) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		prev := f.node(cfg.idFn(0))
		for i := 1; i < n; i++ {
			next := f.node(cfg.idFn(i))
			if err := f.link(methodPath, prev, next, cfg, wf); err != nil {
				return err
			}
			prev = next
		}

		return nil
	}
}
