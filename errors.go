package digraph

import "errors"

// Sentinel errors for graph operations. Boolean-returning methods report
// "operation not applicable" (duplicate vertex, absent endpoint, missing edge)
// via a false return; only invalid input and lookups against absent vertices
// escalate to these sentinels. Match with errors.Is.
var (
	// ErrNegativeWeight indicates a negative weight passed to AddEdge.
	ErrNegativeWeight = errors.New("digraph: negative edge weight")

	// ErrVertexNotFound indicates a weight or degree query against a vertex
	// that is not in the graph.
	ErrVertexNotFound = errors.New("digraph: vertex not found")
)
