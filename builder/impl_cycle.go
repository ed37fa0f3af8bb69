// SPDX-License-Identifier: MIT
// Package: outedges/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Nodes labelled cfg.idFn(0..n-1), all created before any edge.
//   • Edges i→(i+1)%n in ascending i; every node owns exactly one.
//
// Complexity: O(n) nodes + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/outedges/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a directed ring C_n.
func Cycle[W core.Weight](n int) Constructor[W] {
	return func(f *Fixture[W], cfg builderConfig, wf WeightFn[W]) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ring := make([]*core.Node, n)
		for i := range ring {
			ring[i] = f.node(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			if err := f.link(methodCycle, ring[i], ring[(i+1)%n], cfg, wf); err != nil {
				return err
			}
		}

		return nil
	}
}
