// Package core defines the Graph store used by every analyzer in zagreb:
// a simple undirected graph over the dense vertex range 0..n-1.
//
// This file declares Graph, EdgeError, the sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrInvalidSize       - vertex count is zero or negative.
//	ErrVertexOutOfRange  - a vertex index lies outside [0, n).
//	ErrSelfLoop          - an edge would connect a vertex to itself.
//	ErrDuplicateEdge     - the edge is already present.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidSize indicates NewGraph was asked for a graph with no vertices.
	ErrInvalidSize = errors.New("core: vertex count must be positive")

	// ErrVertexOutOfRange indicates a vertex index outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrSelfLoop indicates an attempted edge (v, v).
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates the edge {u, v} already exists.
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)

// EdgeError carries the operation and endpoints of a rejected edge.
// It unwraps to one of the sentinel errors above.
type EdgeError struct {
	Op   string
	U, V int
	Err  error
}

// Error implements the error interface.
func (e *EdgeError) Error() string {
	return fmt.Sprintf("%s(%d, %d): %v", e.Op, e.U, e.V, e.Err)
}

// Unwrap exposes the underlying sentinel for errors.Is.
func (e *EdgeError) Unwrap() error { return e.Err }

// Graph is a simple undirected graph with a fixed vertex range 0..n-1.
//
// Invariants:
//   - adj[u] contains v  ⇔  adj[v] contains u;
//   - no vertex is its own neighbor;
//   - edges == Σ len(adj[v]) / 2.
//
// The graph only grows: edges are inserted, never removed, and the vertex
// range never changes. Graph holds no locks; a single owner mutates it and
// any sharing across goroutines needs external synchronization.
type Graph struct {
	n     int
	edges int
	adj   []map[int]struct{}
}

// NewGraph creates an edgeless graph on vertices 0..n-1.
// Returns ErrInvalidSize if n <= 0.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewGraph: n=%d: %w", n, ErrInvalidSize)
	}
	adj := make([]map[int]struct{}, n)
	for i := range adj {
		adj[i] = make(map[int]struct{})
	}

	return &Graph{n: n, adj: adj}, nil
}

// validVertex reports whether v lies in [0, n).
func (g *Graph) validVertex(v int) bool { return v >= 0 && v < g.n }
