// File: methods_vertices.go
// Role: Vertex-level queries: VertexCount/Degree/Neighbors/DegreeSequence.
// Determinism:
//   - Neighbors() returns indices in ascending order.

package core

import (
	"fmt"
	"sort"
)

// VertexCount returns n. O(1).
func (g *Graph) VertexCount() int { return g.n }

// Degree returns the number of neighbors of v.
// Returns ErrVertexOutOfRange if v is outside [0, n).
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	if !g.validVertex(v) {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrVertexOutOfRange)
	}

	return len(g.adj[v]), nil
}

// Neighbors returns a sorted copy of the neighbors of v.
// Returns ErrVertexOutOfRange if v is outside [0, n).
// Complexity: O(d log d), d = Degree(v).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if !g.validVertex(v) {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrVertexOutOfRange)
	}

	return g.neighbors(v), nil
}

// neighbors is the unchecked form of Neighbors used by package internals.
func (g *Graph) neighbors(v int) []int {
	out := make([]int, 0, len(g.adj[v]))
	for w := range g.adj[v] {
		out = append(out, w)
	}
	sort.Ints(out)

	return out
}

// DegreeSequence returns deg(0), deg(1), ..., deg(n-1).
func (g *Graph) DegreeSequence() []int {
	out := make([]int, g.n)
	for v := range g.adj {
		out[v] = len(g.adj[v])
	}

	return out
}

// Clone returns an independent deep copy of g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	adj := make([]map[int]struct{}, g.n)
	for v := range g.adj {
		m := make(map[int]struct{}, len(g.adj[v]))
		for w := range g.adj[v] {
			m[w] = struct{}{}
		}
		adj[v] = m
	}

	return &Graph{n: g.n, edges: g.edges, adj: adj}
}
