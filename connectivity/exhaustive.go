package connectivity

import (
	"github.com/katalvlaran/zagreb/bfs"
	"github.com/katalvlaran/zagreb/core"
)

// exhaustiveKConnected decides k-connectivity for 1 <= k < n by removing
// every subset of k−1 vertices and checking the rest with BFS.
// Cost: C(n, k−1) traversals of O(V + E) each.
func exhaustiveKConnected(g *core.Graph, k int) bool {
	n := g.VertexCount()
	removed := make([]bool, n)
	skip := func(v int) bool { return removed[v] }

	ok := true
	forEachSubset(n, k-1, func(subset []int) bool {
		for _, v := range subset {
			removed[v] = true
		}
		ok = bfs.Connected(g, skip)
		for _, v := range subset {
			removed[v] = false
		}

		return ok
	})

	return ok
}

// exhaustiveConnectivity searches k = 1, 2, ... upward and returns the last
// k accepted by exhaustiveKConnected.
func exhaustiveConnectivity(g *core.Graph) int {
	n := g.VertexCount()
	k := 0
	for k+1 < n && exhaustiveKConnected(g, k+1) {
		k++
	}

	return k
}

// forEachSubset calls fn with every r-subset of {0..n-1} in lexicographic
// order, reusing one slice. It stops early when fn returns false.
func forEachSubset(n, r int, fn func([]int) bool) {
	if r < 0 || r > n {
		return
	}
	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}
	for {
		if !fn(idx) {
			return
		}
		// advance to the next combination
		i := r - 1
		for i >= 0 && idx[i] == n-r+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < r; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
