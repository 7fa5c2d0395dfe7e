package digraph

import "github.com/katalvlaran/digraph/bimap"

// Graph is a generic weighted directed graph over a dense adjacency matrix.
//
// Vertex labels of any comparable type are translated to matrix indices by an
// internal bijection; the square row-major weight matrix stores one int64 per
// ordered index pair, with 0 meaning "no edge". The matrix side only ever
// grows (by one, when full) and is never shrunk, not even by Clear.
//
// All methods are single-threaded; see the package documentation for the
// locking guidance when sharing a Graph across goroutines.
type Graph[V comparable] struct {
	idx  *bimap.Bimap[V, int] // label ↔ matrix index
	data []int64              // side×side weights, row-major, 0 = absent
	side int                  // current matrix dimension (capacity)

	edgeCount int      // number of non-zero cells at live indices
	free      freeList // index allocator
}

// New constructs an empty Graph. The default initial capacity is 10; use
// WithCapacity to size the matrix up front.
// Complexity: O(capacity²) for the zeroed backing slice.
func New[V comparable](opts ...Option) *Graph[V] {
	cfg := config{capacity: defaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[V]{
		idx:  bimap.New[V, int](),
		data: make([]int64, cfg.capacity*cfg.capacity),
		side: cfg.capacity,
	}
}

// cell returns the flat offset of (row, col). Callers guarantee bounds:
// every index handed out by the free list is < side by the growth invariant.
func (g *Graph[V]) cell(row, col int) int {
	return row*g.side + col
}

// grow reallocates the matrix with side+1, preserving every weight at its
// existing coordinates. Called only when the matrix is full, so insertion
// stays O(1) amortized with an O(side²) copy at the growth boundary.
func (g *Graph[V]) grow() {
	next := g.side + 1
	data := make([]int64, next*next)
	for row := 0; row < g.side; row++ {
		copy(data[row*next:row*next+g.side], g.data[row*g.side:(row+1)*g.side])
	}
	g.data = data
	g.side = next
}

// AddVertex inserts a vertex. Returns false without changes if the label is
// already present. Grows the matrix by one when every index is occupied;
// otherwise reuses a recycled index.
// Complexity: O(1) amortized, O(V²) at the growth boundary.
func (g *Graph[V]) AddVertex(v V) bool {
	if g.idx.Contains(v) {
		return false
	}
	// Keep capacity strictly ahead of occupancy so the popped index is
	// always a valid matrix coordinate.
	if g.idx.Len() == g.side {
		g.grow()
	}
	// Collision-free by construction: v was checked above and the free list
	// never hands out a live index.
	_ = g.idx.Add(v, g.free.pop())

	return true
}

// HasVertex reports whether the label is in the graph.
// Complexity: O(1).
func (g *Graph[V]) HasVertex(v V) bool {
	return g.idx.Contains(v)
}

// RemoveVertex deletes a vertex together with every incident edge.
// Stage 1 (Validate): resolve the label; absent → false.
// Stage 2 (Execute): unbind the label, zero the vertex's entire matrix row
// and column, and decrement the edge count by the number of weights cleared
// (a self-loop counts once).
// Stage 3 (Finalize): recycle the index for the next insertion.
//
// Zeroing is what keeps recycled indices safe: a later vertex reusing this
// index can never observe a stale weight.
// Complexity: O(V).
func (g *Graph[V]) RemoveVertex(v V) bool {
	i, err := g.idx.Get(v)
	if err != nil {
		return false
	}
	_, _ = g.idx.Remove(v)

	cleared := 0
	for j := 0; j < g.side; j++ {
		if g.data[g.cell(i, j)] != 0 { // outgoing i→j
			g.data[g.cell(i, j)] = 0
			cleared++
		}
		if j != i && g.data[g.cell(j, i)] != 0 { // incoming j→i
			g.data[g.cell(j, i)] = 0
			cleared++
		}
	}
	g.edgeCount -= cleared
	g.free.push(i)

	return true
}

// VertexCount returns the number of live vertices.
// Complexity: O(1).
func (g *Graph[V]) VertexCount() int {
	return g.idx.Len()
}

// Vertices returns a snapshot of all vertex labels in unspecified order.
// Mutating the returned slice never affects the graph.
// Complexity: O(V).
func (g *Graph[V]) Vertices() []V {
	return g.idx.Keys()
}

// Clear resets the graph to the empty state while keeping the current matrix
// capacity. The backing slice is zeroed and the index allocator restarts at
// zero, so nothing inserted afterwards can observe pre-Clear weights.
// Complexity: O(side²) for the zeroing pass.
func (g *Graph[V]) Clear() {
	g.idx.Clear()
	g.free.reset()
	g.edgeCount = 0
	clear(g.data)
}
