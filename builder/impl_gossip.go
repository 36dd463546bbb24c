// SPDX-License-Identifier: MIT
// Package: zagreb/builder
//
// impl_gossip.go — Gossip(n, pLong, coordinators) topology.
//
// Canonical model:
//   1. Base ring C_n over 0..n-1 (every peer knows two neighbors).
//   2. Long links: each vertex, with probability pLong, links to one uniformly
//      drawn peer (skipped when it is itself or already a neighbor).
//   3. Coordinators 0..c-1 each fan out to n/cfg.coordinatorShare random peers
//      and are pairwise linked.
//
// Contract:
//   • n ≥ 3; 0 ≤ coordinators ≤ n; pLong ∈ [0,1].
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Complexity:
//   • Time: O(n + c·n/share + c²). Space: O(1) extra.
//
// Determinism:
//   • Draw order is fixed: ring, long links by vertex asc, coordinators asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/zagreb/core"
)

const (
	methodGossip  = "Gossip"
	minGossipRing = 3
)

// Gossip returns a Constructor for a ring-plus-shortcuts gossip network.
// The result is always 2-connected (it contains a Hamiltonian ring).
func Gossip(n int, pLong float64, coordinators int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodGossip, "n", n, minGossipRing); err != nil {
			return err
		}
		if coordinators < 0 || coordinators > n {
			return fmt.Errorf("%s: coordinators=%d not in [0,%d]: %w",
				methodGossip, coordinators, n, ErrTooFewVertices)
		}
		if err := validateProbability(methodGossip, "pLong", pLong); err != nil {
			return err
		}
		if err := requireRand(methodGossip, cfg); err != nil {
			return err
		}
		if err := validateFits(g, methodGossip, n); err != nil {
			return err
		}

		if err := Cycle(n)(g, cfg); err != nil {
			return wrapMethod(methodGossip, err)
		}

		rng := cfg.rng
		for v := 0; v < n; v++ {
			if rng.Float64() >= pLong {
				continue
			}
			if _, err := linkOnce(g, methodGossip, v, rng.Intn(n)); err != nil {
				return err
			}
		}

		fanout := n / cfg.coordinatorShare
		for c := 0; c < coordinators; c++ {
			for k := 0; k < fanout; k++ {
				if _, err := linkOnce(g, methodGossip, c, rng.Intn(n)); err != nil {
					return err
				}
			}
			for d := 0; d < c; d++ {
				if _, err := linkOnce(g, methodGossip, c, d); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
