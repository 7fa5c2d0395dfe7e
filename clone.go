// File: clone.go
// Role: Deep copying of graph instances.

package digraph

import "github.com/katalvlaran/digraph/bimap"

// Clone returns a deep copy of the graph: bijection, weight matrix, edge
// count and allocator state. The clone shares no storage with the source;
// mutations on either side are invisible to the other. Index assignments are
// preserved, so a clone behaves identically under further insertion and
// removal sequences.
// Complexity: O(V + side²).
func (g *Graph[V]) Clone() *Graph[V] {
	idx := bimap.New[V, int]()
	for _, v := range g.idx.Keys() {
		i, _ := g.idx.Get(v)
		_ = idx.Add(v, i) // source bijection is injective, cannot collide
	}

	data := make([]int64, len(g.data))
	copy(data, g.data)

	return &Graph[V]{
		idx:       idx,
		data:      data,
		side:      g.side,
		edgeCount: g.edgeCount,
		free:      g.free.clone(),
	}
}
