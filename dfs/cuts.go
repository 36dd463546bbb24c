// SPDX-License-Identifier: MIT
// Package: zagreb/dfs
//
// cuts.go — Tarjan low-link walk for articulation points and bridges.
//
// Contract:
//   - Every component is walked, roots in ascending vertex order.
//   - The graph is simple, so skipping the tree parent once is enough to
//     ignore the tree edge itself.
//   - A root is a cut vertex iff it has ≥ 2 tree children; any other u is a
//     cut vertex iff some child w has low[w] ≥ disc[u].
//   - {u, w} is a bridge iff low[w] > disc[u].

package dfs

import (
	"context"
	"sort"

	"github.com/katalvlaran/zagreb/bfs"
	"github.com/katalvlaran/zagreb/core"
)

// walker carries the per-call state of one Cuts invocation.
type walker struct {
	ctx   context.Context
	graph *core.Graph
	state []int
	disc  []int
	low   []int
	clock int

	cut     []bool
	bridges [][2]int
}

// Cuts returns the cut vertices and bridges of g.
func Cuts(ctx context.Context, g *core.Graph) (CutResult, error) {
	if g == nil {
		return CutResult{}, ErrGraphNil
	}

	n := g.VertexCount()
	w := &walker{
		ctx:     ctx,
		graph:   g,
		state:   make([]int, n),
		disc:    make([]int, n),
		low:     make([]int, n),
		cut:     make([]bool, n),
		bridges: make([][2]int, 0),
	}

	for root := 0; root < n; root++ {
		if w.state[root] != White {
			continue
		}
		children, err := w.visit(root, -1)
		if err != nil {
			return CutResult{}, err
		}
		// The root rule overrides whatever the child rule recorded.
		w.cut[root] = children > 1
	}

	res := CutResult{Vertices: make([]int, 0), Bridges: w.bridges}
	for v, isCut := range w.cut {
		if isCut {
			res.Vertices = append(res.Vertices, v)
		}
	}
	sort.Slice(res.Bridges, func(i, j int) bool {
		if res.Bridges[i][0] != res.Bridges[j][0] {
			return res.Bridges[i][0] < res.Bridges[j][0]
		}
		return res.Bridges[i][1] < res.Bridges[j][1]
	})

	return res, nil
}

// visit explores u and returns the number of tree children it adopted.
func (w *walker) visit(u, parent int) (int, error) {
	if err := w.ctx.Err(); err != nil {
		return 0, err
	}

	w.state[u] = Gray
	w.disc[u] = w.clock
	w.low[u] = w.clock
	w.clock++

	nbs, err := w.graph.Neighbors(u)
	if err != nil {
		return 0, err
	}

	children := 0
	for _, v := range nbs {
		switch {
		case w.state[v] == White:
			children++
			if _, err = w.visit(v, u); err != nil {
				return 0, err
			}
			w.low[u] = min(w.low[u], w.low[v])
			if w.low[v] >= w.disc[u] {
				w.cut[u] = true
			}
			if w.low[v] > w.disc[u] {
				w.bridges = append(w.bridges, [2]int{min(u, v), max(u, v)})
			}
		case v != parent:
			w.low[u] = min(w.low[u], w.disc[v])
		}
	}
	w.state[u] = Black

	return children, nil
}

// IsBiconnected reports whether g has at least 3 vertices, is connected and
// has no cut vertex.
func IsBiconnected(g *core.Graph) bool {
	if g == nil || g.VertexCount() < 3 || !bfs.Connected(g, nil) {
		return false
	}
	res, err := Cuts(context.Background(), g)

	return err == nil && len(res.Vertices) == 0
}
