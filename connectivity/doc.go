// Package connectivity answers vertex-connectivity questions about a
// core.Graph: is it k-connected, and what is κ(G)?
//
// A graph is k-connected when it has more than k vertices and removing any
// k−1 of them leaves it connected. κ(G) is the largest such k.
//
// # Modes
//
//	ModeApprox      δ ≥ k and connected. Linear time. May over-report
//	                (false positives), never under-reports.
//	ModeExact       Menger's theorem on a vertex-split unit-capacity
//	                network solved with flow.Dinic. Polynomial.
//	ModeExhaustive  Remove every (k−1)-subset, BFS the remainder.
//	                Exact but combinatorial; keep n small.
//
// ModeExact and ModeExhaustive always agree.
//
// # API
//
//	connectivity.IsKConnected(g, 2, connectivity.ModeExact)
//	connectivity.VertexConnectivity(g, connectivity.ModeApprox)
//	connectivity.LocalConnectivity(g, s, t)
//	connectivity.ParseMode("exhaustive")
package connectivity
