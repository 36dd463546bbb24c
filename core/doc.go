// Package core provides the Graph store behind every zagreb analyzer:
// a simple undirected graph G = (V, E) over the dense vertex range 0..n-1.
//
// What
//
//   - Fixed vertex range chosen at construction (NewGraph(n), n >= 1).
//   - Edge insertion only; no edge removal, no vertex addition or removal.
//   - Symmetric, irreflexive adjacency with no parallel edges.
//   - O(1) Degree, VertexCount, EdgeCount and HasEdge.
//   - O(n) degree statistics: FirstZagreb (Z1 = Σ deg(v)²), MinDegree (δ),
//     MaxDegree (Δ).
//
// Errors
//
//	NewGraph(0)          → ErrInvalidSize
//	AddEdge(u, n)        → ErrVertexOutOfRange
//	AddEdge(v, v)        → ErrSelfLoop
//	AddEdge twice        → ErrDuplicateEdge
//
// AddEdge wraps the sentinel in *EdgeError, so callers may use either
// errors.Is(err, core.ErrSelfLoop) or errors.As(err, &edgeErr).
// A rejected insertion never changes the graph.
//
// Concurrency
//
//	Graph carries no locks. It has a single owner; concurrent readers are
//	fine once construction is finished, but interleaving AddEdge with any
//	other call requires external mutual exclusion.
//
// Usage
//
//	g, err := core.NewGraph(4)
//	if err != nil { ... }
//	_ = g.AddEdge(0, 1)
//	_ = g.AddEdge(1, 2)
//	fmt.Println(g.FirstZagreb()) // 1 + 4 + 1 + 0 = 6
//
// SPDX-License-Identifier: MIT
package core
