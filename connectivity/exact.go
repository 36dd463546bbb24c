package connectivity

import (
	"fmt"

	"github.com/katalvlaran/zagreb/core"
	"github.com/katalvlaran/zagreb/flow"
)

// splitNetwork returns the vertex-split flow network of g: vertex v becomes
// v_in = 2v and v_out = 2v+1 joined by a unit arc, and each edge {u, v}
// becomes the unit arcs u_out→v_in and v_out→u_in. Any s_out→t_in flow then
// runs along internally vertex-disjoint s–t paths.
func splitNetwork(g *core.Graph) *flow.Network {
	n := g.VertexCount()
	nw, _ := flow.NewNetwork(2 * n) // n >= 1 by construction of core.Graph
	for v := 0; v < n; v++ {
		_, _ = nw.AddArc(2*v, 2*v+1, 1)
	}
	for _, e := range g.Edges() {
		u, v := e[0], e[1]
		_, _ = nw.AddArc(2*u+1, 2*v, 1)
		_, _ = nw.AddArc(2*v+1, 2*u, 1)
	}

	return nw
}

// localFlow counts disjoint s–t paths on nw, stopping at limit (0 = none).
func localFlow(nw *flow.Network, s, t, limit int) int {
	nw.Reset()
	f, _ := flow.Dinic(nw, 2*s+1, 2*t, flow.FlowOptions{Limit: limit}) // endpoints are valid and distinct

	return f
}

// LocalConnectivity returns the maximum number of internally vertex-disjoint
// paths between s and t. When s and t are adjacent the edge itself counts as
// one path.
// Returns core.ErrVertexOutOfRange for invalid endpoints and
// flow.ErrSameEndpoints when s == t.
func LocalConnectivity(g *core.Graph, s, t int) (int, error) {
	n := g.VertexCount()
	if s < 0 || s >= n || t < 0 || t >= n {
		return 0, fmt.Errorf("LocalConnectivity(%d, %d): %w", s, t, core.ErrVertexOutOfRange)
	}
	if s == t {
		return 0, fmt.Errorf("LocalConnectivity(%d, %d): %w", s, t, flow.ErrSameEndpoints)
	}

	return localFlow(splitNetwork(g), s, t, 0), nil
}

// exactKConnected decides k-connectivity for 1 <= k < n.
//
// A separator S with |S| < k misses at least one of v_0..v_{k−1}; call it
// v_i. Some vertex t outside S is then cut off from v_i and not adjacent to
// it, so κ(v_i, t) < k. Checking every non-neighbor t of v_0..v_{k−1} with
// the flow capped at k therefore decides the question.
func exactKConnected(g *core.Graph, k int) bool {
	if g.MinDegree() < k {
		return false
	}
	n := g.VertexCount()
	nw := splitNetwork(g)
	for i := 0; i < k; i++ {
		for t := 0; t < n; t++ {
			if t == i || g.HasEdge(i, t) {
				continue
			}
			if localFlow(nw, i, t, k) < k {
				return false
			}
		}
	}

	return true
}

// exactConnectivity computes κ with Even's scheme: start from the upper
// bound δ and lower it with κ(v_i, t) over non-neighbors t of v_i, for
// i = 0..κ. A complete graph has no non-adjacent pair and keeps κ = δ = n−1.
func exactConnectivity(g *core.Graph) int {
	n := g.VertexCount()
	best := g.MinDegree()
	nw := splitNetwork(g)
	for i := 0; i <= best && i < n; i++ {
		for t := 0; t < n && best > 0; t++ {
			if t == i || g.HasEdge(i, t) {
				continue
			}
			if f := localFlow(nw, i, t, best); f < best {
				best = f
			}
		}
	}

	return best
}
