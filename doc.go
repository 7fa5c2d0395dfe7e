// Package digraph implements a generic weighted directed graph over a dense
// adjacency matrix, with a label↔index bijection translating arbitrary
// comparable vertex labels into compact matrix coordinates.
//
// What:
//
//   - Graph[V] stores edge weights in a square row-major int64 matrix; a zero
//     cell means "no edge", any positive cell is the weight of the directed
//     edge between its row (source) and column (destination) indices.
//   - Vertex labels are translated through bimap.Bimap[V, int]; freed indices
//     are recycled through an explicit free list so the matrix side stays
//     bounded by the peak live vertex count.
//   - Self-loops are ordinary edges; at most one edge exists per ordered pair.
//
// Why a dense matrix?
//
//   - Edge existence and weight queries are a single slice read, O(1).
//   - Removal semantics are exact: a removed vertex's row and column are
//     zeroed, so a recycled index can never resurrect a phantom edge.
//   - The trade-off is O(V²) space and O(V²) full-edge enumeration; reach for
//     an adjacency-list library when your graphs are large and sparse.
//
// Weight model:
//
//   - Weights are non-negative; AddEdge rejects negatives with
//     ErrNegativeWeight.
//   - Weight 0 is indistinguishable from "no edge". AddEdge(a, b, 0) succeeds
//     but the stored edge is invisible to HasEdge/Edges/EdgeWeight. This is a
//     documented modeling limitation of the matrix encoding, preserved on
//     purpose — callers needing zero-weight edges must shift their weight
//     domain.
//
// Concurrency:
//
//   - None. Every operation is a bounded synchronous computation. Wrap the
//     whole Graph in a single exclusive lock to share it across goroutines;
//     matrix growth reallocates shared storage, so finer-grained locking is
//     not safe.
//
// Errors:
//
//   - ErrNegativeWeight: negative weight passed to AddEdge.
//   - ErrVertexNotFound: weight or degree query against an absent vertex.
//
// See bimap/ for the underlying bijection primitive.
package digraph
