// SPDX-License-Identifier: MIT
// Package: outedges/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model: Erdős–Rényi-like digraph. Each ordered pair (i,j), i≠j, is
// included independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//   - Nodes labelled cfg.idFn(0..n-1) in ascending order.
//
// Determinism:
//   - Trial order is i asc, then j asc; fixed seed ⇒ identical registry.
//
// Complexity: O(n) nodes + O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/outedges/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random digraph over n
// nodes with independent edge probability p.
func RandomSparse[W core.Weight](n int, p float64) Constructor[W] {
	return func(f *Fixture[W], cfg builderConfig, wf WeightFn[W]) error {
		// 1) Validate in documented priority: size, probability, RNG.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Create all nodes first so isolated nodes still exist.
		nodes := make([]*core.Node, n)
		for i := range nodes {
			nodes[i] = f.node(cfg.idFn(i))
		}

		// 3) Ordered-pair trials.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if !include(cfg, p) {
					continue
				}
				if err := f.link(methodRandomSparse, nodes[i], nodes[j], cfg, wf); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// include draws one Bernoulli(p) trial. p==0 and p==1 never consume the RNG.
func include(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}

	return cfg.rng.Float64() < p
}
