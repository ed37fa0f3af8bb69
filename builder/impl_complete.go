// SPDX-License-Identifier: MIT
// Package: outedges/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • For every unordered pair {i,j}, i<j, emits i→j then j→i, in
//     lexicographic (i,j) order. No self-loops.
//   • Every node owns exactly n-1 outgoing edges.
//
// Complexity: O(n) nodes + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/outedges/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete digraph on n nodes.
func Complete[W core.Weight](n int) Constructor[W] {
	return func(f *Fixture[W], cfg builderConfig, wf WeightFn[W]) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		nodes := make([]*core.Node, n)
		for i := range nodes {
			nodes[i] = f.node(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := f.link(methodComplete, nodes[i], nodes[j], cfg, wf); err != nil {
					return err
				}
				if err := f.link(methodComplete, nodes[j], nodes[i], cfg, wf); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
