package bfs

import (
	"sort"

	"github.com/katalvlaran/zagreb/core"
)

// Connected reports whether the vertices of g not removed by skip form a
// single connected piece. A nil skip keeps every vertex. When every vertex
// is skipped the (empty) remainder counts as connected.
//
// Complexity: O(V + E).
func Connected(g *core.Graph, skip func(v int) bool) bool {
	if g == nil {
		return false
	}
	if skip == nil {
		skip = func(int) bool { return false }
	}

	n := g.VertexCount()
	start, kept := -1, 0
	for v := 0; v < n; v++ {
		if !skip(v) {
			if start < 0 {
				start = v
			}
			kept++
		}
	}
	if kept <= 1 {
		return true
	}

	res, err := BFS(g, start, WithSkip(skip))
	if err != nil {
		return false
	}

	return len(res.Order) == kept
}

// Components returns the connected components of g, each sorted ascending,
// ordered by their smallest vertex.
//
// Complexity: O(C·V + E log V), C = number of components.
func Components(g *core.Graph) [][]int {
	if g == nil {
		return nil
	}
	n := g.VertexCount()
	seen := make([]bool, n)
	var out [][]int
	for v := 0; v < n; v++ {
		if seen[v] {
			continue
		}
		res, _ := BFS(g, v)
		comp := append([]int(nil), res.Order...)
		for _, u := range comp {
			seen[u] = true
		}
		sort.Ints(comp)
		out = append(out, comp)
	}

	return out
}
