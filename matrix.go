// File: matrix.go
// Role: Numeric export and debug rendering of the weight matrix.

package digraph

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// DenseMatrix copies the live weights into a gonum dense matrix for numeric
// post-processing (spectra, powers, centrality). Row r and column r of the
// result both correspond to labels[r]; label order is unspecified but
// consistent between the matrix and the returned slice. Dead indices are not
// exported, so the result is VertexCount×VertexCount.
//
// Returns (nil, nil) for an empty graph, since gonum rejects 0×0 matrices.
// The result is a copy; mutating it never affects the graph.
// Complexity: O(V²).
func (g *Graph[V]) DenseMatrix() (*mat.Dense, []V) {
	n := g.idx.Len()
	if n == 0 {
		return nil, nil
	}
	labels := g.idx.Keys()
	m := mat.NewDense(n, n, nil)
	var si, di int
	for r, src := range labels {
		si, _ = g.idx.Get(src)
		for c, dst := range labels {
			di, _ = g.idx.Get(dst)
			m.Set(r, c, float64(g.data[g.cell(si, di)]))
		}
	}

	return m, labels
}

// String renders a human-readable snapshot: counts, matrix side, and one
// weight row per live vertex. Debug output only — the format is not stable
// and must not be parsed or round-tripped.
// Complexity: O(V²).
func (g *Graph[V]) String() string {
	labels := g.idx.Keys()
	var sb strings.Builder
	fmt.Fprintf(&sb, "Graph{vertices: %d, edges: %d, side: %d}\n", g.idx.Len(), g.edgeCount, g.side)
	var si, di int
	for _, src := range labels {
		si, _ = g.idx.Get(src)
		fmt.Fprintf(&sb, "  %v:", src)
		for _, dst := range labels {
			di, _ = g.idx.Get(dst)
			fmt.Fprintf(&sb, " %d", g.data[g.cell(si, di)])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
