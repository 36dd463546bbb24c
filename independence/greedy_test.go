package independence_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zagreb/core"
	"github.com/katalvlaran/zagreb/independence"
)

func graphOf(t testing.TB, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// requireMaximalIndependent checks that set is independent in g and that no
// other vertex could be added.
func requireMaximalIndependent(t *testing.T, g *core.Graph, set []int) {
	t.Helper()
	in := make(map[int]bool, len(set))
	for _, v := range set {
		in[v] = true
	}
	for i, u := range set {
		for _, v := range set[i+1:] {
			require.False(t, g.HasEdge(u, v), "%d and %d are adjacent", u, v)
		}
	}
	for v := 0; v < g.VertexCount(); v++ {
		if in[v] {
			continue
		}
		covered := false
		for _, u := range set {
			if g.HasEdge(u, v) {
				covered = true
				break
			}
		}
		require.True(t, covered, "vertex %d could be added", v)
	}
}

func TestGreedy_KnownFamilies(t *testing.T) {
	var kEdges, starEdges [][2]int
	for i := 0; i < 6; i++ {
		for j := i + 1; j < 6; j++ {
			kEdges = append(kEdges, [2]int{i, j})
		}
		if i > 0 {
			starEdges = append(starEdges, [2]int{0, i})
		}
	}
	cycle := func(n int) [][2]int {
		var out [][2]int
		for i := 0; i < n; i++ {
			out = append(out, [2]int{i, (i + 1) % n})
		}
		return out
	}

	cases := []struct {
		name string
		g    *core.Graph
		want []int
	}{
		{"K6", graphOf(t, 6, kEdges), []int{0}},
		{"edgeless", graphOf(t, 4, nil), []int{0, 1, 2, 3}},
		{"star", graphOf(t, 6, starEdges), []int{1, 2, 3, 4, 5}},
		{"C5", graphOf(t, 5, cycle(5)), []int{0, 2}},
		{"C6", graphOf(t, 6, cycle(6)), []int{0, 2, 4}},
		{"single", graphOf(t, 1, nil), []int{0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := independence.Greedy(tc.g)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, len(tc.want), independence.Approx(tc.g))
			requireMaximalIndependent(t, tc.g, got)
		})
	}
}

// TestGreedy_Petersen: α(Petersen) = 4 and the greedy set never exceeds it.
func TestGreedy_Petersen(t *testing.T) {
	g := graphOf(t, 10, [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0},
		{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9},
		{5, 7}, {7, 9}, {9, 6}, {6, 8}, {8, 5},
	})
	got := independence.Greedy(g)
	assert.Equal(t, []int{0, 2, 8, 9}, got)
	assert.LessOrEqual(t, independence.Approx(g), 4)
	requireMaximalIndependent(t, g, got)
}

func TestGreedy_RandomGraphsStayIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 40; trial++ {
		n := 1 + rng.Intn(40)
		var edges [][2]int
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() < 0.15 {
					edges = append(edges, [2]int{i, j})
				}
			}
		}
		g := graphOf(t, n, edges)
		t.Run(fmt.Sprintf("trial%d", trial), func(t *testing.T) {
			set := independence.Greedy(g)
			require.NotEmpty(t, set)
			requireMaximalIndependent(t, g, set)
			require.Equal(t, set, independence.Greedy(g), "deterministic")
		})
	}
}
