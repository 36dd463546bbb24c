package connectivity

import (
	"github.com/katalvlaran/zagreb/bfs"
	"github.com/katalvlaran/zagreb/core"
)

// IsKConnected reports whether g is k-connected under the given mode:
// g has more than k vertices and stays connected after removing any k−1
// vertices.
//
// Edge cases shared by every mode:
//   - k <= 0 → true (every graph is 0-connected);
//   - k >= n → false (a k-connected graph needs at least k+1 vertices).
//
// ModeApprox may return true for a graph that is not k-connected; it never
// returns false for one that is. An unknown mode falls back to ModeApprox.
func IsKConnected(g *core.Graph, k int, mode Mode) bool {
	if k <= 0 {
		return true
	}
	if k >= g.VertexCount() {
		return false
	}

	switch mode {
	case ModeExact:
		return exactKConnected(g, k)
	case ModeExhaustive:
		return exhaustiveKConnected(g, k)
	default:
		return approxKConnected(g, k)
	}
}

// VertexConnectivity returns κ(g) under the given mode: the largest k for
// which IsKConnected(g, k, mode) holds. Complete graphs give n−1,
// disconnected graphs and the single vertex give 0.
func VertexConnectivity(g *core.Graph, mode Mode) int {
	switch mode {
	case ModeExact:
		return exactConnectivity(g)
	case ModeExhaustive:
		return exhaustiveConnectivity(g)
	default:
		return approxConnectivity(g)
	}
}

// approxKConnected applies the necessary conditions δ ≥ k and connectivity.
func approxKConnected(g *core.Graph, k int) bool {
	if g.MinDegree() < k {
		return false
	}

	return bfs.Connected(g, nil)
}

// approxConnectivity is δ for connected graphs and 0 otherwise, the largest
// k accepted by approxKConnected.
func approxConnectivity(g *core.Graph) int {
	if !bfs.Connected(g, nil) {
		return 0
	}

	return g.MinDegree()
}
