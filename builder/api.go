// SPDX-License-Identifier: MIT
// Package: zagreb/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(n, bopts, cons...). Creates g on 0..n-1,
//     resolves cfg, runs cons in order.
//   - Each family has a Constructor (impl_*.go) and a New* wrapper that
//     sizes the graph for it.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; deterministic families surface core insertion
//     errors unchanged (wrapped), random families validate parameters first.

package builder

import (
	"fmt"

	"github.com/katalvlaran/zagreb/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Insert edges only through core.Graph.AddEdge.
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph on n vertices, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any error is wrapped with the context "BuildGraph: %w" and returned
// immediately together with a nil graph.
//
// Errors:
//   - core.ErrInvalidSize for n <= 0.
//   - Wrapped constructor errors; callers branch with errors.Is against
//     builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...) or
//     core sentinels (ErrSelfLoop, ErrDuplicateEdge, ...).
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Deterministic families
// =============================================================================

// NewComplete builds K_n.
func NewComplete(n int) (*core.Graph, error) { return BuildGraph(n, nil, Complete(n)) }

// NewCycle builds C_n. NewCycle(1) fails with core.ErrSelfLoop and
// NewCycle(2) with core.ErrDuplicateEdge.
func NewCycle(n int) (*core.Graph, error) { return BuildGraph(n, nil, Cycle(n)) }

// NewPath builds P_n.
func NewPath(n int) (*core.Graph, error) { return BuildGraph(n, nil, Path(n)) }

// NewStar builds K_{1,n-1} with center 0.
func NewStar(n int) (*core.Graph, error) { return BuildGraph(n, nil, Star(n)) }

// NewWheel builds W_n: rim 0..n-2 as a cycle, hub n-1.
func NewWheel(n int) (*core.Graph, error) { return BuildGraph(n, nil, Wheel(n)) }

// NewCompleteBipartite builds K_{m,k}: left side 0..m-1, right side m..m+k-1.
func NewCompleteBipartite(m, k int) (*core.Graph, error) {
	return BuildGraph(m+k, nil, CompleteBipartite(m, k))
}

// NewGrid builds the rows×cols 4-neighborhood grid; vertex r*cols+c.
func NewGrid(rows, cols int) (*core.Graph, error) {
	return BuildGraph(rows*cols, nil, Grid(rows, cols))
}

// NewPetersen builds the Petersen graph (10 vertices, 15 edges, 3-regular).
func NewPetersen() (*core.Graph, error) { return BuildGraph(petersenVertices, nil, Petersen()) }

// NewPlatonicSolid builds the 1-skeleton of the named solid.
func NewPlatonicSolid(name PlatonicName) (*core.Graph, error) {
	facts, ok := name.Facts()
	if !ok {
		return nil, fmt.Errorf("%s: unknown solid %d: %w", methodPlatonicSolid, int(name), ErrUnknownFamily)
	}

	return BuildGraph(facts.Vertices, nil, PlatonicSolid(name))
}

// NewTiered builds a three-tier validator topology; see Tiered.
func NewTiered(coreSize, midSize, edgeSize int) (*core.Graph, error) {
	return BuildGraph(coreSize+midSize+edgeSize, nil, Tiered(coreSize, midSize, edgeSize))
}

// =============================================================================
// Randomized families (require WithSeed / WithRand / WithEntropy)
// =============================================================================

// NewRandomSparse samples G(n, p).
func NewRandomSparse(n int, p float64, opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(n, opts, RandomSparse(n, p))
}

// NewRandomRegular samples a d-regular simple graph.
func NewRandomRegular(n, d int, opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(n, opts, RandomRegular(n, d))
}

// NewBarabasiAlbert grows a scale-free graph by preferential attachment.
func NewBarabasiAlbert(n, m int, opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(n, opts, BarabasiAlbert(n, m))
}

// NewGossip builds a gossip-network topology; see Gossip.
func NewGossip(n int, pLong float64, coordinators int, opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(n, opts, Gossip(n, pLong, coordinators))
}

// NewSharded builds a connected sharded network; see Sharded.
func NewSharded(shards, shardSize int, pIntra, pInter float64, opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(shards*shardSize, opts, Sharded(shards, shardSize, pIntra, pInter))
}
