// File: methods_edges.go
// Role: Edge lifecycle and queries over the weight matrix.
//
// Weight model reminder: 0 encodes "no edge". AddEdge accepts weight 0 for
// compatibility with the non-negative contract, but such an edge is
// observably absent (HasEdge false, not enumerated, EdgeWeight 0). Callers
// needing distinguishable zero-weight edges must shift their weight domain.

package digraph

// AddEdge inserts the directed edge src→dst with the given weight.
//
// Returns ErrNegativeWeight (graph unchanged) if weight < 0. Returns false
// if either endpoint is absent or an edge already exists for the ordered
// pair; change a weight by RemoveEdge followed by AddEdge. Self-loops are
// ordinary edges.
// Complexity: O(1).
func (g *Graph[V]) AddEdge(src, dst V, weight int64) (bool, error) {
	if weight < 0 {
		return false, ErrNegativeWeight
	}
	si, err := g.idx.Get(src)
	if err != nil {
		return false, nil
	}
	di, err := g.idx.Get(dst)
	if err != nil {
		return false, nil
	}
	if g.data[g.cell(si, di)] != 0 {
		return false, nil
	}
	g.data[g.cell(si, di)] = weight
	// A zero weight leaves the cell at "absent"; counting it would break the
	// edge-count ↔ non-zero-cell correspondence.
	if weight != 0 {
		g.edgeCount++
	}

	return true, nil
}

// HasEdge reports whether the directed edge src→dst exists. False when either
// endpoint is absent; otherwise true iff the matrix cell is non-zero.
// Complexity: O(1).
func (g *Graph[V]) HasEdge(src, dst V) bool {
	si, err := g.idx.Get(src)
	if err != nil {
		return false
	}
	di, err := g.idx.Get(dst)
	if err != nil {
		return false
	}

	return g.data[g.cell(si, di)] != 0
}

// EdgeWeight returns the weight stored for src→dst.
//
// Both endpoints must be live; otherwise ErrVertexNotFound is returned
// rather than 0, since 0 already means "no edge" and silently returning it
// for an absent vertex would alias the two cases. A (0, nil) result
// therefore always means "both vertices exist, no edge between them".
// Complexity: O(1).
func (g *Graph[V]) EdgeWeight(src, dst V) (int64, error) {
	si, err := g.idx.Get(src)
	if err != nil {
		return 0, ErrVertexNotFound
	}
	di, err := g.idx.Get(dst)
	if err != nil {
		return 0, ErrVertexNotFound
	}

	return g.data[g.cell(si, di)], nil
}

// RemoveEdge deletes the directed edge src→dst. Returns false when either
// endpoint is absent or no edge exists (cell already zero).
// Complexity: O(1).
func (g *Graph[V]) RemoveEdge(src, dst V) bool {
	si, err := g.idx.Get(src)
	if err != nil {
		return false
	}
	di, err := g.idx.Get(dst)
	if err != nil {
		return false
	}
	if g.data[g.cell(si, di)] == 0 {
		return false
	}
	g.data[g.cell(si, di)] = 0
	g.edgeCount--

	return true
}

// EdgeCount returns the number of edges, equal to the number of non-zero
// matrix cells at live indices.
// Complexity: O(1).
func (g *Graph[V]) EdgeCount() int {
	return g.edgeCount
}

// Edges returns a snapshot of every edge as (From, To, Weight) values in
// unspecified order. Mutating the returned slice never affects the graph.
//
// This is the dominant cost center of the matrix representation: the full
// Cartesian product of live labels is scanned, so the cost is O(V²)
// regardless of how many edges exist.
func (g *Graph[V]) Edges() []Edge[V] {
	labels := g.idx.Keys()
	edges := make([]Edge[V], 0, g.edgeCount)
	var si, di int
	for _, src := range labels {
		si, _ = g.idx.Get(src)
		row := g.data[si*g.side : (si+1)*g.side]
		for _, dst := range labels {
			di, _ = g.idx.Get(dst)
			if w := row[di]; w != 0 {
				edges = append(edges, Edge[V]{From: src, To: dst, Weight: w})
			}
		}
	}

	return edges
}

// Degree returns the directed degree components of v: the number of incoming
// edges (column scan) and outgoing edges (row scan). A self-loop contributes
// one to each. Returns ErrVertexNotFound for an absent vertex.
//
// Dead indices are safe to scan: vertex removal zeroes its row and column,
// so only live endpoints can contribute non-zero cells.
// Complexity: O(V).
func (g *Graph[V]) Degree(v V) (in, out int, err error) {
	i, err := g.idx.Get(v)
	if err != nil {
		return 0, 0, ErrVertexNotFound
	}
	for j := 0; j < g.side; j++ {
		if g.data[g.cell(i, j)] != 0 {
			out++
		}
		if g.data[g.cell(j, i)] != 0 {
			in++
		}
	}

	return in, out, nil
}
