// SPDX-License-Identifier: MIT
// Package: outedges/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildRegistry(ropts, bopts, wf, cons...). Creates the
//     registry, resolves cfg, runs cons in order.
//   - Constructors are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical
//     node labels, edge UIDs and endpoints.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/outedges/core"
)

// Constructor applies a deterministic mutation to a Fixture. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Resolve nodes through f.node so equal labels map to one *core.Node.
//   - Emit edges in a stable, documented order.
type Constructor[W core.Weight] func(f *Fixture[W], cfg builderConfig, wf WeightFn[W]) error

// Fixture is a populated registry plus the label → node index used to build it.
type Fixture[W core.Weight] struct {
	// Registry owns every edge emitted by the constructors.
	Registry *core.Registry[W]

	nodes map[string]*core.Node
	order []string
}

// Node returns the node labelled id, or nil if no constructor created it.
func (f *Fixture[W]) Node(id string) *core.Node {
	return f.nodes[id]
}

// Nodes returns all nodes in creation order.
func (f *Fixture[W]) Nodes() []*core.Node {
	out := make([]*core.Node, len(f.order))
	for i, id := range f.order {
		out[i] = f.nodes[id]
	}

	return out
}

// node returns the node labelled id, creating it on first use.
func (f *Fixture[W]) node(id string) *core.Node {
	if n, ok := f.nodes[id]; ok {
		return n
	}
	n := core.NewNode(id)
	f.nodes[id] = n
	f.order = append(f.order, id)

	return n
}

// link adds from→to with a weight drawn from wf and wraps failures with method context.
func (f *Fixture[W]) link(method string, from, to *core.Node, cfg builderConfig, wf WeightFn[W]) error {
	if _, err := f.Registry.AddEdge(from, to, wf(cfg.rng)); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, from.ID, to.ID, err)
	}

	return nil
}

// BuildRegistry creates a core.Registry with ropts, resolves the builder
// configuration from bopts, and applies all constructors in order. A nil wf
// gives every edge the zero value of W. Any constructor error is wrapped with
// "BuildRegistry: %w" and returned immediately; no partial cleanup is attempted.
//
// Complexity: Σ cost of each constructor plus O(len(bopts)).
func BuildRegistry[W core.Weight](
	ropts []core.RegistryOption,
	bopts []BuilderOption,
	wf WeightFn[W],
	cons ...Constructor[W],
) (*Fixture[W], error) {
	f := &Fixture[W]{
		Registry: core.NewRegistry[W](ropts...),
		nodes:    make(map[string]*core.Node),
	}
	cfg := newBuilderConfig(bopts...)
	if wf == nil {
		wf = ZeroWeightFn[W]
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildRegistry: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(f, cfg, wf); err != nil {
			return nil, fmt.Errorf("BuildRegistry: %w", err)
		}
	}

	return f, nil
}
