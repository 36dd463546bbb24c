// Package flow implements maximum-flow algorithms on small integer-capacity
// networks. zagreb uses it to count internally vertex-disjoint paths
// (Menger's theorem) on vertex-split copies of a core.Graph.
//
// The algorithms offered are:
//
//   - Dinic
//
//   - Method: level graph construction + blocking-flow via DFS.
//
//   - Time:   O(E · √V) on unit-capacity networks.
//
//   - Memory: O(V) beyond the network itself.
//
//   - Edmonds–Karp
//
//   - Method: breadth-first search for shortest (fewest-arc) augmenting paths.
//
//   - Time:   O(V · E²) in the worst case.
//
//   - Reference implementation for cross-checking Dinic.
//
// # Network
//
// Network stores arcs in residual pairs (arc i and its reverse i^1).
// NewNetwork(n) creates nodes 0..n-1, AddArc(u, v, c) adds capacity, and
// Reset restores original capacities so one construction can serve many
// source/sink pairs.
//
// # API
//
//	type FlowOptions struct {
//	    Limit                int // stop once the flow reaches Limit (0 = no limit)
//	    LevelRebuildInterval int // Dinic only: rebuild level graph every N pushes
//	}
//
//	func Dinic(nw *Network, source, sink int, opts FlowOptions) (int, error)
//	func EdmondsKarp(nw *Network, source, sink int, opts FlowOptions) (int, error)
//
// # Errors
//
//	ErrInvalidSize    - NewNetwork with n <= 0.
//	ErrNodeOutOfRange - AddArc endpoint outside [0, n).
//	EdgeError         - AddArc with negative capacity.
//	ErrSourceNotFound - source outside [0, n).
//	ErrSinkNotFound   - sink outside [0, n).
//	ErrSameEndpoints  - source == sink.
package flow
