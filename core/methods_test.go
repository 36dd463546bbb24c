// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in the insertion rules (range, self-loop, duplicate) and their
//     failure atomicity.
//   - Anchor the degree statistics and Z1 closed forms on known families.

package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zagreb/core"
)

// mustGraph builds an n-vertex graph from an edge list or fails the test.
func mustGraph(t testing.TB, n int, edges ...[2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// cycleEdges returns the edge list of C_n.
func cycleEdges(n int) [][2]int {
	out := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, [2]int{i, (i + 1) % n})
	}

	return out
}

// completeEdges returns the edge list of K_n.
func completeEdges(n int) [][2]int {
	var out [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, [2]int{i, j})
		}
	}

	return out
}

func TestNewGraph_InvalidSize(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		g, err := core.NewGraph(n)
		require.ErrorIs(t, err, core.ErrInvalidSize, "n=%d", n)
		require.Nil(t, g)
	}
}

func TestNewGraph_Empty(t *testing.T) {
	g := mustGraph(t, 5)
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, 0, g.FirstZagreb())
	assert.Equal(t, 0, g.MinDegree())
	assert.Equal(t, 0, g.MaxDegree())
}

// TestAddEdge_Rejections covers every insertion error and checks that the
// graph is unchanged after each failure.
func TestAddEdge_Rejections(t *testing.T) {
	g := mustGraph(t, 3, [2]int{0, 1})

	cases := []struct {
		name string
		u, v int
		want error
	}{
		{"upper out of range", 0, 3, core.ErrVertexOutOfRange},
		{"negative", -1, 2, core.ErrVertexOutOfRange},
		{"self-loop", 2, 2, core.ErrSelfLoop},
		{"duplicate", 0, 1, core.ErrDuplicateEdge},
		{"duplicate reversed", 1, 0, core.ErrDuplicateEdge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := g.AddEdge(tc.u, tc.v)
			require.ErrorIs(t, err, tc.want)

			var ee *core.EdgeError
			require.True(t, errors.As(err, &ee))
			assert.Equal(t, tc.u, ee.U)
			assert.Equal(t, tc.v, ee.V)

			assert.Equal(t, 1, g.EdgeCount())
			assert.Equal(t, 2, g.FirstZagreb())
		})
	}
}

func TestAddEdge_Symmetric(t *testing.T) {
	g := mustGraph(t, 4, [2]int{2, 0})
	assert.True(t, g.HasEdge(0, 2))
	assert.True(t, g.HasEdge(2, 0))
	assert.False(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(0, 9))

	d0, err := g.Degree(0)
	require.NoError(t, err)
	d2, err := g.Degree(2)
	require.NoError(t, err)
	assert.Equal(t, 1, d0)
	assert.Equal(t, 1, d2)

	_, err = g.Degree(4)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
	_, err = g.Neighbors(-1)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

func TestNeighborsAndEdges_Sorted(t *testing.T) {
	g := mustGraph(t, 5, [2]int{3, 0}, [2]int{0, 4}, [2]int{1, 0}, [2]int{4, 2})

	nb, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4}, nb)

	assert.Equal(t, [][2]int{{0, 1}, {0, 3}, {0, 4}, {2, 4}}, g.Edges())
	assert.Equal(t, []int{3, 1, 1, 1, 2}, g.DegreeSequence())
}

// TestHandshake checks Σ deg = 2e and Z1 = Σ deg² on several shapes.
func TestHandshake(t *testing.T) {
	graphs := map[string]*core.Graph{
		"K6":   mustGraph(t, 6, completeEdges(6)...),
		"C7":   mustGraph(t, 7, cycleEdges(7)...),
		"P1":   mustGraph(t, 1),
		"mix":  mustGraph(t, 6, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{3, 4}),
		"star": mustGraph(t, 5, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{0, 4}),
	}
	for name, g := range graphs {
		t.Run(name, func(t *testing.T) {
			sum, sq := 0, 0
			for _, d := range g.DegreeSequence() {
				sum += d
				sq += d * d
			}
			assert.Equal(t, 2*g.EdgeCount(), sum)
			assert.Equal(t, sq, g.FirstZagreb())
		})
	}
}

func TestFirstZagreb_ClosedForms(t *testing.T) {
	for n := 2; n <= 9; n++ {
		k := mustGraph(t, n, completeEdges(n)...)
		assert.Equal(t, n*(n-1)*(n-1), k.FirstZagreb(), "K%d", n)
		assert.Equal(t, n-1, k.MinDegree())
		assert.Equal(t, n-1, k.MaxDegree())

		var star [][2]int
		for i := 1; i < n; i++ {
			star = append(star, [2]int{0, i})
		}
		s := mustGraph(t, n, star...)
		assert.Equal(t, (n-1)*(n-1)+(n-1), s.FirstZagreb(), "star n=%d", n)
	}
	for n := 3; n <= 9; n++ {
		c := mustGraph(t, n, cycleEdges(n)...)
		assert.Equal(t, 4*n, c.FirstZagreb(), "C%d", n)
	}
}

func TestStructuralPredicates(t *testing.T) {
	c5 := mustGraph(t, 5, cycleEdges(5)...)
	assert.True(t, c5.IsCycle())
	assert.True(t, c5.IsRegular())
	assert.False(t, c5.IsPath())
	assert.False(t, c5.IsComplete())

	// two disjoint triangles: 2-regular with e == n but disconnected
	twoTri := mustGraph(t, 6,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0},
		[2]int{3, 4}, [2]int{4, 5}, [2]int{5, 3})
	assert.False(t, twoTri.IsCycle())
	assert.True(t, twoTri.IsRegular())

	p4 := mustGraph(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
	assert.True(t, p4.IsPath())
	assert.False(t, p4.IsCycle())

	star := mustGraph(t, 4, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})
	assert.False(t, star.IsPath())

	assert.True(t, mustGraph(t, 1).IsPath())
	assert.True(t, mustGraph(t, 1).IsComplete())
	assert.True(t, mustGraph(t, 4, completeEdges(4)...).IsComplete())
}

func TestBipartition(t *testing.T) {
	cases := []struct {
		name         string
		g            *core.Graph
		small, large int
		ok           bool
	}{
		{"C6", mustGraph(t, 6, cycleEdges(6)...), 3, 3, true},
		{"C5", mustGraph(t, 5, cycleEdges(5)...), 0, 0, false},
		{"P4", mustGraph(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}), 2, 2, true},
		{"Star4", mustGraph(t, 4, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}), 1, 3, true},
		{"K1", mustGraph(t, 1), 0, 1, true},
		{"Disconnected", mustGraph(t, 4, [2]int{0, 1}, [2]int{2, 3}), 0, 0, false},
		{"K4", mustGraph(t, 4, completeEdges(4)...), 0, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			small, large, ok := c.g.Bipartition()
			require.Equal(t, c.ok, ok)
			if ok {
				assert.Equal(t, c.small, small)
				assert.Equal(t, c.large, large)
			}
		})
	}
}

func TestClone_Independent(t *testing.T) {
	g := mustGraph(t, 3, [2]int{0, 1})
	c := g.Clone()
	require.NoError(t, c.AddEdge(1, 2))

	assert.Equal(t, 1, g.EdgeCount())
	assert.False(t, g.HasEdge(1, 2))
	assert.Equal(t, 2, c.EdgeCount())
	assert.True(t, c.HasEdge(0, 1))
}
