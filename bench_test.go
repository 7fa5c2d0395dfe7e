// Package digraph_test provides benchmarks for Graph operations.
package digraph_test

import (
	"testing"

	"github.com/katalvlaran/digraph"
)

// benchGraph builds a pre-sized graph with n vertices and a ring of n edges.
func benchGraph(n int) *digraph.Graph[int] {
	g := digraph.New[int](digraph.WithCapacity(n))
	for v := 0; v < n; v++ {
		g.AddVertex(v)
	}
	for v := 0; v < n; v++ {
		_, _ = g.AddEdge(v, (v+1)%n, int64(v+1))
	}

	return g
}

// BenchmarkAddVertex_Presized measures building a 500-vertex graph into a
// matrix that never grows.
func BenchmarkAddVertex_Presized(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g := digraph.New[int](digraph.WithCapacity(500))
		for v := 0; v < 500; v++ {
			g.AddVertex(v)
		}
	}
}

// BenchmarkAddVertex_Growing builds the same graph from the default capacity,
// paying a grow-by-one matrix copy for nearly every insertion.
func BenchmarkAddVertex_Growing(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g := digraph.New[int]()
		for v := 0; v < 500; v++ {
			g.AddVertex(v)
		}
	}
}

// BenchmarkHasEdge measures the O(1) matrix probe.
func BenchmarkHasEdge(b *testing.B) {
	g := benchGraph(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.HasEdge(i%1000, (i+1)%1000)
	}
}

// BenchmarkEdges measures the O(V²) full enumeration on 1000 vertices.
func BenchmarkEdges(b *testing.B) {
	g := benchGraph(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Edges()
	}
}

// BenchmarkRemoveAddVertex measures the remove/recycle/insert cycle.
func BenchmarkRemoveAddVertex(b *testing.B) {
	g := benchGraph(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.RemoveVertex(i % 1000)
		g.AddVertex(i % 1000)
	}
}

// BenchmarkClone measures the O(V + side²) deep copy.
func BenchmarkClone(b *testing.B) {
	g := benchGraph(500)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
