// SPDX-License-Identifier: MIT
// Package: zagreb/builder
//
// helpers.go — shared edge-emission and validation helpers.
//
// Design principles:
//   - Fixed families go through addEdges: every edge is inserted, and the
//     first core error is returned with method context.
//   - Randomized families go through linkOnce: membership is tested first,
//     so a repeated draw is skipped instead of relying on a rejected insert.

package builder

import (
	"fmt"

	"github.com/katalvlaran/zagreb/core"
)

// Probability domain.
const (
	probMin = 0.0
	probMax = 1.0
)

// chord is an undirected edge spec (U,V) used by fixed edge sets.
type chord struct {
	U, V int
}

// addEdges inserts every chord in order and wraps the first failure.
// Complexity: O(len(edges)).
func addEdges(g *core.Graph, method string, edges []chord) error {
	for _, e := range edges {
		if err := g.AddEdge(e.U, e.V); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}

	return nil
}

// linkOnce inserts {u, v} unless it is a loop or already present.
// Reports whether an edge was added.
func linkOnce(g *core.Graph, method string, u, v int) (bool, error) {
	if u == v || g.HasEdge(u, v) {
		return false, nil
	}
	if err := g.AddEdge(u, v); err != nil {
		return false, fmt.Errorf("%s: %w", method, err)
	}

	return true, nil
}

// validateProbability enforces p ∈ [0, 1].
func validateProbability(method, name string, p float64) error {
	if p < probMin || p > probMax {
		return fmt.Errorf("%s: %s=%.6f not in [%.1f,%.1f]: %w",
			method, name, p, probMin, probMax, ErrInvalidProbability)
	}

	return nil
}

// validateMin enforces got >= min.
func validateMin(method, name string, got, minimum int) error {
	if got < minimum {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, minimum, ErrTooFewVertices)
	}

	return nil
}

// validateFits checks that g has room for the constructor's vertex range.
func validateFits(g *core.Graph, method string, need int) error {
	if g.VertexCount() < need {
		return fmt.Errorf("%s: needs %d vertices, graph has %d: %w",
			method, need, g.VertexCount(), core.ErrVertexOutOfRange)
	}

	return nil
}

// requireRand rejects a config without an RNG.
func requireRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	return nil
}

// wrapMethod attaches the constructor name to a core insertion error.
func wrapMethod(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
