// SPDX-License-Identifier: MIT
// Package: zagreb/builder
//
// impl_random_regular.go — implementation of RandomRegular(n, d) constructor.
//
// Canonical model:
//   • d-regular simple graph via stub-matching with bounded retries.
//   • Pairs stubs after a deterministic shuffle (per seed) and validates the
//     pairing (no loops, no repeated pairs) before mutating the graph.
//
// Contract:
//   • n ≥ 1; 0 ≤ d < n; (n*d) must be even (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • After cfg.maxAttempts invalid pairings → ErrConstructFailed; g is untouched.
//
// Complexity:
//   • Per attempt O(n·d) time and O(n·d) temporary space.
//
// Determinism:
//   • Fixed attempt limit and fixed trial order → identical outcomes for same seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/zagreb/core"
)

const (
	methodRandomRegular = "RandomRegular"
	minRRVertices       = 1
)

// RandomRegular returns a Constructor that builds a d-regular graph on 0..n-1
// using the classic stub-matching (pairing) strategy.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomRegular, "n", n, minRRVertices); err != nil {
			return err
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if err := requireRand(methodRandomRegular, cfg); err != nil {
			return err
		}
		if err := validateFits(g, methodRandomRegular, n); err != nil {
			return err
		}

		stubCount := n * d
		if stubCount == 0 {
			return nil
		}
		stubs := make([]int, 0, stubCount)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		rng := cfg.rng
		for attempt := 1; attempt <= cfg.maxAttempts; attempt++ {
			rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}
			for i := 0; i < stubCount; i += 2 {
				if err := g.AddEdge(stubs[i], stubs[i+1]); err != nil {
					return wrapMethod(methodRandomRegular, err)
				}
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			methodRandomRegular, cfg.maxAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs form a simple graph.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
