// SPDX-License-Identifier: MIT
// Package builder_test verifies the generator families against their
// closed-form sizes and degree statistics.

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zagreb/bfs"
	"github.com/katalvlaran/zagreb/builder"
	"github.com/katalvlaran/zagreb/connectivity"
	"github.com/katalvlaran/zagreb/core"
)

func TestDeterministicFamilies(t *testing.T) {
	type tc struct {
		name           string
		build          func() (*core.Graph, error)
		vertices, edge int
		zagreb         int
		minDeg, maxDeg int
	}
	cases := []tc{
		{"K5", func() (*core.Graph, error) { return builder.NewComplete(5) }, 5, 10, 80, 4, 4},
		{"K1", func() (*core.Graph, error) { return builder.NewComplete(1) }, 1, 0, 0, 0, 0},
		{"C6", func() (*core.Graph, error) { return builder.NewCycle(6) }, 6, 6, 24, 2, 2},
		{"P5", func() (*core.Graph, error) { return builder.NewPath(5) }, 5, 4, 14, 1, 2},
		{"P1", func() (*core.Graph, error) { return builder.NewPath(1) }, 1, 0, 0, 0, 0},
		{"Star6", func() (*core.Graph, error) { return builder.NewStar(6) }, 6, 5, 30, 1, 5},
		{"W6", func() (*core.Graph, error) { return builder.NewWheel(6) }, 6, 10, 70, 3, 5},
		{"K2,3", func() (*core.Graph, error) { return builder.NewCompleteBipartite(2, 3) }, 5, 6, 30, 2, 3},
		{"Grid3x4", func() (*core.Graph, error) { return builder.NewGrid(3, 4) }, 12, 17, 0, 2, 4},
		{"Petersen", builder.NewPetersen, 10, 15, 90, 3, 3},
		{"Tetrahedron", func() (*core.Graph, error) { return builder.NewPlatonicSolid(builder.Tetrahedron) }, 4, 6, 36, 3, 3},
		{"Cube", func() (*core.Graph, error) { return builder.NewPlatonicSolid(builder.Cube) }, 8, 12, 72, 3, 3},
		{"Octahedron", func() (*core.Graph, error) { return builder.NewPlatonicSolid(builder.Octahedron) }, 6, 12, 96, 4, 4},
		{"Dodecahedron", func() (*core.Graph, error) { return builder.NewPlatonicSolid(builder.Dodecahedron) }, 20, 30, 180, 3, 3},
		{"Icosahedron", func() (*core.Graph, error) { return builder.NewPlatonicSolid(builder.Icosahedron) }, 12, 30, 300, 5, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := c.build()
			require.NoError(t, err)
			assert.Equal(t, c.vertices, g.VertexCount())
			assert.Equal(t, c.edge, g.EdgeCount())
			if c.zagreb > 0 {
				assert.Equal(t, c.zagreb, g.FirstZagreb())
			}
			assert.Equal(t, c.minDeg, g.MinDegree())
			assert.Equal(t, c.maxDeg, g.MaxDegree())
		})
	}
}

func TestPlatonicFacts(t *testing.T) {
	wantZ1 := map[builder.PlatonicName]int{
		builder.Tetrahedron:  36,
		builder.Cube:         72,
		builder.Octahedron:   96,
		builder.Dodecahedron: 180,
		builder.Icosahedron:  300,
	}
	for name, z1 := range wantZ1 {
		t.Run(name.String(), func(t *testing.T) {
			facts, ok := name.Facts()
			require.True(t, ok)
			assert.Equal(t, name.String(), facts.Name)
			assert.Equal(t, z1, facts.FirstZagreb())
			assert.Equal(t, facts.Vertices*facts.Degree, 2*facts.Edges, "handshake")

			g, err := builder.NewPlatonicSolid(name)
			require.NoError(t, err)
			assert.Equal(t, facts.Vertices, g.VertexCount())
			assert.Equal(t, facts.Edges, g.EdgeCount())
			assert.Equal(t, facts.FirstZagreb(), g.FirstZagreb())
			assert.True(t, g.IsRegular())
			assert.Equal(t, facts.Degree, g.MaxDegree())
			assert.Equal(t, facts.Connectivity, connectivity.VertexConnectivity(g, connectivity.ModeExact))
		})
	}

	_, ok := builder.PlatonicName(42).Facts()
	assert.False(t, ok)
	assert.Equal(t, "PlatonicName(42)", builder.PlatonicName(42).String())
}

func TestDeterministicFamilies_CoreErrors(t *testing.T) {
	_, err := builder.NewCycle(1)
	require.ErrorIs(t, err, core.ErrSelfLoop)

	_, err = builder.NewCycle(2)
	require.ErrorIs(t, err, core.ErrDuplicateEdge)

	_, err = builder.NewComplete(0)
	require.ErrorIs(t, err, core.ErrInvalidSize)

	_, err = builder.NewWheel(2)
	require.ErrorIs(t, err, core.ErrSelfLoop)

	_, err = builder.NewPlatonicSolid(builder.PlatonicName(42))
	require.ErrorIs(t, err, builder.ErrUnknownFamily)

	_, err = builder.NewGrid(0, 3)
	require.ErrorIs(t, err, core.ErrInvalidSize)

	// Constructors applied to a graph that is too small fail on range.
	_, err = builder.BuildGraph(3, nil, builder.Complete(4))
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)

	_, err = builder.BuildGraph(3, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestSimulatedValidatorNetwork(t *testing.T) {
	g, err := builder.NewSimulatedValidatorNetwork()
	require.NoError(t, err)
	assert.Equal(t, 20, g.VertexCount())
	assert.Equal(t, 64, g.EdgeCount())
	assert.True(t, bfs.Connected(g, nil))
	// Every core validator is adjacent to every other core validator.
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			assert.True(t, g.HasEdge(i, j))
		}
	}
}

func TestTiered_Validation(t *testing.T) {
	_, err := builder.NewTiered(0, 3, 3)
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.NewTiered(3, 0, 3)
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	// A single mid vertex has no ring partner; the wrap-around link is skipped.
	g, err := builder.NewTiered(1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 2}}, g.Edges())
}

func TestRandomFamilies_NeedRand(t *testing.T) {
	builds := map[string]func() error{
		"sparse":  func() error { _, err := builder.NewRandomSparse(5, 0.5); return err },
		"regular": func() error { _, err := builder.NewRandomRegular(6, 3); return err },
		"ba":      func() error { _, err := builder.NewBarabasiAlbert(6, 2); return err },
		"gossip":  func() error { _, err := builder.NewGossip(6, 0.5, 1); return err },
		"sharded": func() error { _, err := builder.NewSharded(2, 3, 0.5, 0.1); return err },
	}
	for name, fn := range builds {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, fn(), builder.ErrNeedRandSource)
		})
	}
}

func TestRandomFamilies_Validation(t *testing.T) {
	seed := builder.WithSeed(1)

	_, err := builder.NewRandomSparse(5, 1.5, seed)
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.NewRandomRegular(5, 3, seed)
	require.ErrorIs(t, err, builder.ErrTooFewVertices, "odd n*d")

	_, err = builder.NewRandomRegular(4, 4, seed)
	require.ErrorIs(t, err, builder.ErrTooFewVertices, "d >= n")

	_, err = builder.NewBarabasiAlbert(3, 3, seed)
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.NewGossip(2, 0.5, 0, seed)
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.NewGossip(6, 0.5, 7, seed)
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.NewSharded(2, 3, 0.5, -0.1, seed)
	require.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestRandomSparse_Extremes(t *testing.T) {
	empty, err := builder.NewRandomSparse(6, 0, builder.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.EdgeCount())

	full, err := builder.NewRandomSparse(6, 1, builder.WithSeed(3))
	require.NoError(t, err)
	assert.True(t, full.IsComplete())
}

func TestRandomRegular_Degrees(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		g, err := builder.NewRandomRegular(10, 3, builder.WithSeed(seed))
		require.NoError(t, err)
		assert.True(t, g.IsRegular())
		assert.Equal(t, 3, g.MinDegree())
		assert.Equal(t, 15, g.EdgeCount())
	}
}

func TestBarabasiAlbert_Shape(t *testing.T) {
	const n, m = 30, 2
	g, err := builder.NewBarabasiAlbert(n, m, builder.WithSeed(11))
	require.NoError(t, err)
	assert.Equal(t, m*(m+1)/2+(n-m-1)*m, g.EdgeCount())
	assert.GreaterOrEqual(t, g.MinDegree(), m)
	assert.True(t, bfs.Connected(g, nil))
}

func TestGossip_ContainsRing(t *testing.T) {
	const n = 24
	g, err := builder.NewGossip(n, 0.3, 2, builder.WithSeed(5))
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		assert.True(t, g.HasEdge(i, (i+1)%n))
	}
	assert.True(t, g.HasEdge(0, 1))
	assert.GreaterOrEqual(t, g.MinDegree(), 2)
}

func TestSharded_AlwaysConnected(t *testing.T) {
	cases := []struct {
		name           string
		shards, size   int
		pIntra, pInter float64
	}{
		{"sparse intra", 4, 6, 0.2, 0.0},
		{"no random edges", 4, 6, 0.0, 0.0},
		{"singleton shards", 7, 1, 0.0, 0.0},
		{"single shard", 1, 9, 0.0, 0.0},
		{"single vertex", 1, 1, 0.0, 0.0},
		{"dense", 3, 4, 1.0, 1.0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for seed := int64(0); seed < 50; seed++ {
				g, err := builder.NewSharded(c.shards, c.size, c.pIntra, c.pInter, builder.WithSeed(seed))
				require.NoError(t, err)
				require.True(t, bfs.Connected(g, nil), "seed=%d", seed)
				require.Len(t, bfs.Components(g), 1)
			}
		})
	}

	// With no random edges the backbone is exactly one path.
	g, err := builder.NewSharded(4, 6, 0, 0, builder.WithSeed(1))
	require.NoError(t, err)
	assert.True(t, g.IsPath())
}

func TestRandomFamilies_Determinism(t *testing.T) {
	params := builder.Params{N: 4, M: 5, P: 0.4, Q: 0.05}
	for _, f := range []builder.Family{builder.FamilySharded, builder.FamilyRandomSparse} {
		a, err := builder.ByName(string(f), params, builder.WithSeed(99))
		require.NoError(t, err)
		b, err := builder.ByName(string(f), params, builder.WithSeed(99))
		require.NoError(t, err)
		assert.Equal(t, a.Edges(), b.Edges(), "family %s", f)
	}
}

func TestByName(t *testing.T) {
	g, err := builder.ByName("  Petersen ", builder.Params{})
	require.NoError(t, err)
	assert.Equal(t, 15, g.EdgeCount())

	g, err = builder.ByName("cube", builder.Params{})
	require.NoError(t, err)
	assert.Equal(t, 8, g.VertexCount())

	g, err = builder.ByName("bipartite", builder.Params{N: 3, M: 3})
	require.NoError(t, err)
	assert.Equal(t, 9, g.EdgeCount())

	_, err = builder.ByName("moebius", builder.Params{N: 8})
	require.ErrorIs(t, err, builder.ErrUnknownFamily)

	assert.True(t, builder.FamilyGossip.IsRandom())
	assert.False(t, builder.FamilyWheel.IsRandom())
	assert.Contains(t, builder.Families(), builder.FamilyIcosahedron)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithCoordinatorShare(0) })
	assert.Panics(t, func() { builder.WithMaxAttempts(0) })
}
