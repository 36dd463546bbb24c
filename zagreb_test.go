// SPDX-License-Identifier: MIT
// Package zagreb_test verifies the classifier, the thresholds and the
// analysis snapshot on families with known answers.

package zagreb_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zagreb"
	"github.com/katalvlaran/zagreb/builder"
	"github.com/katalvlaran/zagreb/connectivity"
	"github.com/katalvlaran/zagreb/core"
)

const eps = 1e-3

// graphOf builds an n-vertex graph from an edge list or fails the test.
func graphOf(t testing.TB, n int, edges ...[2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// bowtie is two triangles sharing vertex 2.
func bowtie(t testing.TB) *core.Graph {
	return graphOf(t, 5, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 3}, [2]int{2, 4}, [2]int{3, 4})
}

// must unwraps a builder result or fails the test.
func must(t testing.TB) func(*core.Graph, error) *core.Graph {
	return func(g *core.Graph, err error) *core.Graph {
		t.Helper()
		require.NoError(t, err)

		return g
	}
}

func TestThresholds(t *testing.T) {
	assert.InDelta(t, 150.5227, zagreb.HamiltonianThreshold(10, 15, 3, 3, 2), eps)
	assert.InDelta(t, 117.9708, zagreb.HamiltonianThreshold(10, 15, 3, 3, 3), eps)
	assert.InDelta(t, 93.8092, zagreb.TraceableThreshold(10, 15, 3, 3, 3), eps)
	assert.InDelta(t, 117.9708, zagreb.UpperBoundFor(10, 15, 3, 3, 4), eps)

	// Out-of-domain parameters never satisfy "Z1 ≥ threshold".
	assert.True(t, math.IsInf(zagreb.HamiltonianThreshold(10, 15, 3, 3, 1), 1))
	assert.True(t, math.IsInf(zagreb.HamiltonianThreshold(2, 1, 1, 1, 2), 1))
	assert.True(t, math.IsInf(zagreb.HamiltonianThreshold(4, 6, 3, 3, 4), 1))
	assert.True(t, math.IsInf(zagreb.TraceableThreshold(8, 12, 3, 3, 2), 1))
	assert.True(t, math.IsInf(zagreb.TraceableThreshold(10, 15, 3, 3, 0), 1))
	assert.True(t, math.IsInf(zagreb.UpperBoundFor(10, 15, 3, 3, 0), 1))
}

func TestClassify_KnownFamilies(t *testing.T) {
	type tc struct {
		name       string
		g          *core.Graph
		mode       connectivity.Mode
		ham        bool
		hamBasis   zagreb.Basis
		trace      bool
		traceBasis zagreb.Basis
		connected  int
	}
	cases := []tc{
		{"K5", must(t)(builder.NewComplete(5)), connectivity.ModeExact, true, zagreb.BasisComplete, true, zagreb.BasisHamiltonian, 4},
		{"C6", must(t)(builder.NewCycle(6)), connectivity.ModeExact, true, zagreb.BasisCycle, true, zagreb.BasisHamiltonian, 2},
		{"W6", must(t)(builder.NewWheel(6)), connectivity.ModeExact, true, zagreb.BasisDirac, true, zagreb.BasisHamiltonian, 3},
		{"P4", must(t)(builder.NewPath(4)), connectivity.ModeExact, false, zagreb.BasisLowConnected, true, zagreb.BasisPath, 1},
		{"K1", must(t)(builder.NewComplete(1)), connectivity.ModeExact, false, zagreb.BasisTooSmall, true, zagreb.BasisSingleVertex, 0},
		{"K2", must(t)(builder.NewComplete(2)), connectivity.ModeExact, false, zagreb.BasisTooSmall, true, zagreb.BasisComplete, 1},
		{"Star5", must(t)(builder.NewStar(5)), connectivity.ModeExact, false, zagreb.BasisLowConnected, false, zagreb.BasisOrderTooSmall, 1},
		{"Bowtie/exact", bowtie(t), connectivity.ModeExact, false, zagreb.BasisLowConnected, true, zagreb.BasisDirac, 1},
		{"Bowtie/approx", bowtie(t), connectivity.ModeApprox, false, zagreb.BasisBelowThreshold, true, zagreb.BasisDirac, 2},
		{"Petersen", must(t)(builder.NewPetersen()), connectivity.ModeExact, false, zagreb.BasisBelowThreshold, false, zagreb.BasisBelowThreshold, 3},
		{"Disconnected", graphOf(t, 4, [2]int{0, 1}, [2]int{2, 3}), connectivity.ModeApprox, false, zagreb.BasisLowConnected, false, zagreb.BasisLowConnected, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := zagreb.Classify(c.g, c.mode)
			assert.Equal(t, c.connected, got.Connectivity, "κ")
			assert.Equal(t, c.ham, got.Hamiltonian)
			assert.Equal(t, c.hamBasis, got.HamiltonianBasis)
			assert.Equal(t, c.trace, got.Traceable)
			assert.Equal(t, c.traceBasis, got.TraceableBasis)

			assert.Equal(t, c.ham, zagreb.IsLikelyHamiltonian(c.g, c.mode))
			assert.Equal(t, c.trace, zagreb.IsLikelyTraceable(c.g, c.mode))
		})
	}
}

func TestClassify_Theorem1(t *testing.T) {
	// 2δ = 4 < n = 5, κ = 2, Z1 = 40 ≥ 18 + 49/3.
	g := graphOf(t, 5,
		[2]int{0, 1}, [2]int{0, 2}, [2]int{0, 4}, [2]int{1, 3},
		[2]int{2, 3}, [2]int{2, 4}, [2]int{3, 4})

	got := zagreb.Classify(g, connectivity.ModeExact)
	require.Equal(t, 2, got.Connectivity)
	assert.True(t, got.Hamiltonian)
	assert.Equal(t, zagreb.BasisTheorem1, got.HamiltonianBasis)
	assert.Equal(t, 2, got.HamiltonianK)
	assert.Equal(t, zagreb.BasisHamiltonian, got.TraceableBasis)
}

func TestClassify_Theorem2(t *testing.T) {
	// n = 10, δ = 4 so neither Dirac bound applies; κ = 4, Z1 = 454 ≥ 437.5.
	g := graphOf(t, 10,
		[2]int{0, 1}, [2]int{0, 2}, [2]int{0, 4}, [2]int{0, 5}, [2]int{0, 6}, [2]int{0, 7}, [2]int{0, 8}, [2]int{0, 9},
		[2]int{1, 3}, [2]int{1, 4}, [2]int{1, 5}, [2]int{1, 7}, [2]int{1, 8}, [2]int{1, 9},
		[2]int{2, 3}, [2]int{2, 4}, [2]int{2, 5}, [2]int{2, 7},
		[2]int{3, 4}, [2]int{3, 5}, [2]int{3, 6}, [2]int{3, 7},
		[2]int{4, 5}, [2]int{4, 6}, [2]int{4, 7}, [2]int{4, 9},
		[2]int{5, 6}, [2]int{5, 7}, [2]int{5, 9},
		[2]int{6, 7}, [2]int{6, 9}, [2]int{7, 8}, [2]int{8, 9})
	require.Equal(t, 454, g.FirstZagreb())

	got := zagreb.Classify(g, connectivity.ModeExact)
	require.Equal(t, 4, got.Connectivity)
	assert.False(t, got.Hamiltonian)
	assert.Equal(t, zagreb.BasisBelowThreshold, got.HamiltonianBasis)
	assert.True(t, got.Traceable)
	assert.Equal(t, zagreb.BasisTheorem2, got.TraceableBasis)
	assert.Equal(t, 4, got.TraceableK)
	assert.InDelta(t, 437.5, zagreb.TraceableThreshold(10, g.EdgeCount(), 4, g.MaxDegree(), 4), eps)
}

func TestClassify_UnbalancedCompleteBipartite(t *testing.T) {
	// Each graph meets a Zagreb bound with equality yet has no Hamiltonian
	// cycle (and, for K_{k,k+2}, no Hamiltonian path).
	cases := []struct {
		m, k       int
		trace      bool
		traceBasis zagreb.Basis
	}{
		{2, 3, true, zagreb.BasisDirac},
		{3, 4, true, zagreb.BasisDirac},
		{4, 5, true, zagreb.BasisDirac},
		{4, 6, false, zagreb.BasisUnbalanced},
		{5, 7, false, zagreb.BasisUnbalanced},
	}
	for _, c := range cases {
		g := must(t)(builder.NewCompleteBipartite(c.m, c.k))
		got := zagreb.Classify(g, connectivity.ModeExact)
		require.Equal(t, c.m, got.Connectivity, "K%d,%d", c.m, c.k)
		assert.False(t, got.Hamiltonian, "K%d,%d", c.m, c.k)
		assert.Equal(t, zagreb.BasisUnbalanced, got.HamiltonianBasis, "K%d,%d", c.m, c.k)
		assert.Zero(t, got.HamiltonianK)
		assert.Equal(t, c.trace, got.Traceable, "K%d,%d", c.m, c.k)
		assert.Equal(t, c.traceBasis, got.TraceableBasis, "K%d,%d", c.m, c.k)
	}

	// The bounds really are met: without the colour-class check the
	// thresholds alone would have said yes.
	k23 := must(t)(builder.NewCompleteBipartite(2, 3))
	assert.GreaterOrEqual(t, float64(k23.FirstZagreb())+eps,
		zagreb.HamiltonianThreshold(5, k23.EdgeCount(), k23.MinDegree(), k23.MaxDegree(), 2))
	k46 := must(t)(builder.NewCompleteBipartite(4, 6))
	assert.GreaterOrEqual(t, float64(k46.FirstZagreb())+eps,
		zagreb.TraceableThreshold(10, k46.EdgeCount(), k46.MinDegree(), k46.MaxDegree(), 4))

	balanced := zagreb.Classify(must(t)(builder.NewCompleteBipartite(3, 3)), connectivity.ModeExact)
	assert.True(t, balanced.Hamiltonian)
	assert.Equal(t, zagreb.BasisDirac, balanced.HamiltonianBasis)
}

func TestAnalyze_Petersen(t *testing.T) {
	g := must(t)(builder.NewPetersen())

	res := zagreb.Analyze(g, zagreb.WithMode(connectivity.ModeExact))
	assert.Equal(t, 10, res.VertexCount)
	assert.Equal(t, 15, res.EdgeCount)
	assert.Equal(t, 90, res.ZagrebIndex)
	assert.Equal(t, 3, res.MinDegree)
	assert.Equal(t, 3, res.MaxDegree)
	assert.False(t, res.IsLikelyHamiltonian)
	assert.LessOrEqual(t, res.IndependenceNumber, 4)
	assert.Equal(t, 3, res.Connectivity)
	assert.Equal(t, connectivity.ModeExact, res.Mode)
	assert.InDelta(t, zagreb.UpperBound(g), res.ZagrebUpperBound, eps)
	assert.LessOrEqual(t, float64(res.ZagrebIndex), res.ZagrebUpperBound)
}

func TestAnalyze_DefaultModeAndIdempotence(t *testing.T) {
	g := bowtie(t)
	first := zagreb.Analyze(g)
	second := zagreb.Analyze(g)
	assert.Equal(t, first, second)
	assert.Equal(t, connectivity.ModeApprox, first.Mode)

	exact := zagreb.Analyze(g, zagreb.WithMode(connectivity.ModeExact))
	assert.Equal(t, 1, exact.Connectivity)
	assert.Equal(t, 2, first.Connectivity)
}

func TestAnalyze_FailedInsertDoesNotChangeSnapshot(t *testing.T) {
	g := must(t)(builder.NewCycle(5))
	before := zagreb.Analyze(g)
	require.ErrorIs(t, g.AddEdge(0, 1), core.ErrDuplicateEdge)
	require.ErrorIs(t, g.AddEdge(2, 2), core.ErrSelfLoop)
	require.ErrorIs(t, g.AddEdge(0, 9), core.ErrVertexOutOfRange)
	assert.Equal(t, before, zagreb.Analyze(g))
}

func TestLowConnectivityVertices(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4}, zagreb.LowConnectivityVertices(must(t)(builder.NewStar(5))))
	assert.Equal(t, []int{0, 1, 3, 4}, zagreb.LowConnectivityVertices(bowtie(t)))
	assert.Len(t, zagreb.LowConnectivityVertices(must(t)(builder.NewPetersen())), 10)
	assert.Equal(t, []int{0}, zagreb.LowConnectivityVertices(graphOf(t, 1)))
}
