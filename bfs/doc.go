// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: distance from start per vertex (-1 when unreached)
//   - Parent: predecessor in the BFS tree (-1 for the start and unreached)
//   - Supports an OnVisit hook that may abort the search with an error.
//   - Walks induced subgraphs G − S via WithSkip / WithSkipSet.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Reachability is the workhorse of the connectivity analyzer: the
//     exhaustive k-connectivity check removes every (k−1)-subset and asks
//     Connected(g, skip) of what remains.
//   - Components and Connected back the generators' connectivity guarantees.
//
// Determinism
//
//	core.Graph.Neighbors returns indices in ascending order and BFS enqueues
//	in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log Δ)   (neighbor lists are sorted per dequeue)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithSkipSet([]int{3, 4}))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrStartVertexSkipped,
//	    // ErrOptionViolation, or a wrapped OnVisit error
//	}
//	path, _ := res.PathTo(7)
//
//	if !bfs.Connected(g, nil) { ... }
//
// Options
//
//   - DefaultOptions(): no-op hook, no depth limit, nothing skipped.
//   - WithMaxDepth(d):   stop exploring beyond depth d (>0).
//   - WithSkip(fn):      hide vertices for which fn(v)==true.
//   - WithSkipSet(vs):   hide the listed vertices.
//   - WithOnVisit(fn):   hook during visit; returning error aborts BFS.
package bfs
