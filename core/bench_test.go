// Package core_test provides benchmarks for core.Registry operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/outedges/core"
)

// BenchmarkAddEdge measures the cost of cataloging a new edge.
func BenchmarkAddEdge(b *testing.B) {
	r := core.NewRegistry[int64]()
	root := core.NewNode("Root")
	leaf := core.NewNode("Leaf")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = r.AddEdge(root, leaf, int64(i))
	}
}

// BenchmarkEdges measures sorted snapshots of a 1000-edge star.
func BenchmarkEdges(b *testing.B) {
	r := core.NewRegistry[core.Unweighted]()
	center := core.NewNode("Center")
	for i := 0; i < 1000; i++ {
		_, _ = r.AddEdge(center, core.NewNode(fmt.Sprintf("Node%d", i)), core.Unweighted{})
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Edges()
	}
}
