// Package dfs finds the single points of failure of an undirected
// core.Graph with one depth-first pass: cut vertices (articulation points)
// and bridges.
//
// A vertex is a cut vertex when removing it increases the number of
// connected components; an edge is a bridge under the same rule. A graph
// with n ≥ 3 is 2-connected exactly when it is connected and has no cut
// vertex, so Cuts gives an O(V + E) witness for κ ≤ 1 that the connectivity
// modes otherwise reach through flows or subset enumeration.
//
// Key features:
//   - Cuts(ctx, g): cut vertices and bridges over every component
//   - IsBiconnected(g): connected, n ≥ 3 and no cut vertex
//   - Cancellation via context.Context, checked once per discovered vertex
//
// Complexity:
//
//   - Time:   O(V + E).
//   - Memory: O(V) for discovery times, low-links and the recursion stack.
//
// Errors:
//
//   - ErrGraphNil    if g is nil.
//   - ctx.Err()      if ctx is done before the walk completes.
package dfs
