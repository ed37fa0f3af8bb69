// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for outedges/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and labels for Registry tests.
//   - Keep magic numbers and labels out of test bodies.

package core_test

import (
	"github.com/katalvlaran/outedges/core"
)

// Common node labels used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"

	VertexHub = "Hub"
)

// Common weights used across core tests.
const (
	Weight1 = 1
	Weight3 = 3
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// uidsOf RETURNS the UIDs of edges in slice order.
//
// Notes:
//   - Registry.Edges() is sorted by UID, so the result is sorted too.
func uidsOf[W core.Weight](edges []*core.Edge[W]) []core.EdgeUID {
	out := make([]core.EdgeUID, len(edges))
	for i, e := range edges {
		out[i] = e.UID
	}

	return out
}
