// SPDX-License-Identifier: MIT
// Package edgestore_test contains fixtures shared by the edgestore tests.
package edgestore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/outedges/core"
	"github.com/katalvlaran/outedges/edgestore"
	"github.com/katalvlaran/outedges/parallel"
)

// Common node labels.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
)

// strategies lists every execution strategy discovery must agree across.
func strategies() []parallel.Strategy {
	return []parallel.Strategy{
		parallel.Sequential{},
		parallel.NewParallel(1),
		parallel.NewParallel(4),
		parallel.NewParallel(0),
	}
}

// triangle holds the registry {e1: A→B, e2: B→C, e3: A→C}.
type triangle struct {
	reg        *core.Registry[int64]
	a, b, c    *core.Node
	e1, e2, e3 *core.Edge[int64]
}

// newTriangle BUILDS the canonical three-edge fixture: A owns e1 and e3, B owns e2.
func newTriangle(t *testing.T) triangle {
	t.Helper()
	tr := triangle{
		reg: core.NewRegistry[int64](),
		a:   core.NewNode(NodeA),
		b:   core.NewNode(NodeB),
		c:   core.NewNode(NodeC),
	}
	var err error
	tr.e1, err = tr.reg.AddEdge(tr.a, tr.b, 1)
	require.NoError(t, err)
	tr.e2, err = tr.reg.AddEdge(tr.b, tr.c, 2)
	require.NoError(t, err)
	tr.e3, err = tr.reg.AddEdge(tr.a, tr.c, 3)
	require.NoError(t, err)

	return tr
}

// uids RETURNS the sorted UIDs held by s.
func uids[W core.Weight](s *edgestore.Store[W]) []core.EdgeUID {
	edges := s.Edges()
	out := make([]core.EdgeUID, len(edges))
	for i, e := range edges {
		out[i] = e.UID
	}

	return out
}
