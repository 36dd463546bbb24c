// File: methods_edges.go
// Role: Edge insertion and queries: AddEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns pairs (u < v) sorted by u, then v.
// Failure atomicity:
//   - AddEdge validates everything before touching adjacency, so a rejected
//     insertion leaves the graph exactly as it was.

package core

import "sort"

const methodAddEdge = "AddEdge"

// AddEdge inserts the undirected edge {u, v}.
//
// Errors (checked in this order, each wrapped in *EdgeError):
//   - ErrVertexOutOfRange if u or v is outside [0, n);
//   - ErrSelfLoop if u == v;
//   - ErrDuplicateEdge if {u, v} is already present.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if !g.validVertex(u) || !g.validVertex(v) {
		return &EdgeError{Op: methodAddEdge, U: u, V: v, Err: ErrVertexOutOfRange}
	}
	if u == v {
		return &EdgeError{Op: methodAddEdge, U: u, V: v, Err: ErrSelfLoop}
	}
	if _, ok := g.adj[u][v]; ok {
		return &EdgeError{Op: methodAddEdge, U: u, V: v, Err: ErrDuplicateEdge}
	}

	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.edges++

	return nil
}

// HasEdge reports whether {u, v} is present. Out-of-range indices yield false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.validVertex(u) || !g.validVertex(v) {
		return false
	}
	_, ok := g.adj[u][v]

	return ok
}

// EdgeCount returns the number of undirected edges. O(1).
func (g *Graph) EdgeCount() int { return g.edges }

// Edges returns every edge once as [u, v] with u < v, sorted lexicographically.
// Complexity: O(E log E).
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.edges)
	for u := 0; u < g.n; u++ {
		for v := range g.adj[u] {
			if u < v {
				out = append(out, [2]int{u, v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})

	return out
}
