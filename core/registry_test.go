// SPDX-License-Identifier: MIT
// Package core_test verifies Registry lifecycle, identity and ordering contracts.
package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/outedges/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdgeUID_String(t *testing.T) {
	assert.Equal(t, "e1", core.EdgeUID(1).String())
	assert.Equal(t, "e42", core.EdgeUID(42).String())
	assert.Equal(t, "e18446744073709551615", core.EdgeUID(^uint64(0)).String())
}

func TestRegistry_AddGetRemove(t *testing.T) {
	r := core.NewRegistry[int64]()
	a, b := core.NewNode(VertexA), core.NewNode(VertexB)

	e, err := r.AddEdge(a, b, Weight3)
	require.NoError(t, err)
	require.Equal(t, core.EdgeUID(1), e.UID)
	require.Same(t, a, e.From)
	require.Same(t, b, e.To)
	require.Equal(t, int64(Weight3), e.Weight)

	got, err := r.GetEdge(e.UID)
	require.NoError(t, err)
	require.Same(t, e, got, "GetEdge must return the shared pointer")
	require.True(t, r.HasEdge(e.UID))
	require.Equal(t, 1, r.EdgeCount())

	require.NoError(t, r.RemoveEdge(e.UID))
	require.False(t, r.HasEdge(e.UID))

	err = r.RemoveEdge(e.UID)
	require.True(t, errors.Is(err, core.ErrEdgeNotFound))

	_, err = r.GetEdge(e.UID)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestRegistry_Validation(t *testing.T) {
	a := core.NewNode(VertexA)

	r := core.NewRegistry[core.Unweighted]()
	_, err := r.AddEdge(nil, a, core.Unweighted{})
	require.ErrorIs(t, err, core.ErrNilNode)
	_, err = r.AddEdge(a, nil, core.Unweighted{})
	require.ErrorIs(t, err, core.ErrNilNode)
	_, err = r.AddEdge(a, a, core.Unweighted{})
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	require.Zero(t, r.EdgeCount())

	looped := core.NewRegistry[core.Unweighted](core.WithLoops())
	e, err := looped.AddEdge(a, a, core.Unweighted{})
	require.NoError(t, err)
	require.Same(t, e.From, e.To)
}

// TestRegistry_NodeIdentity locks in that nodes with equal labels are distinct.
func TestRegistry_NodeIdentity(t *testing.T) {
	r := core.NewRegistry[float64]()
	a1, a2 := core.NewNode(VertexA), core.NewNode(VertexA)

	e1, err := r.AddEdge(a1, a2, 1.5)
	require.NoError(t, err, "same label, different nodes is not a loop")
	assert.NotSame(t, e1.From, e1.To)
}

func TestRegistry_EdgesSorted(t *testing.T) {
	r := core.NewRegistry[int]()
	a, b, c := core.NewNode(VertexA), core.NewNode(VertexB), core.NewNode(VertexC)
	for _, pair := range [][2]*core.Node{{a, b}, {b, c}, {c, a}, {a, c}} {
		_, err := r.AddEdge(pair[0], pair[1], 0)
		require.NoError(t, err)
	}
	require.NoError(t, r.RemoveEdge(2))

	edges := r.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, []core.EdgeUID{1, 3, 4}, uidsOf(edges))
}

func TestRegistry_View(t *testing.T) {
	r := core.NewRegistry[int]()
	a, b := core.NewNode(VertexA), core.NewNode(VertexB)
	e, err := r.AddEdge(a, b, Weight1)
	require.NoError(t, err)

	var seen int
	r.View(func(edges map[core.EdgeUID]*core.Edge[int]) {
		seen = len(edges)
		assert.Same(t, e, edges[e.UID])
	})
	assert.Equal(t, 1, seen)
}
