// SPDX-License-Identifier: MIT
// Package: zagreb/builder
//
// impl_sharded.go — Sharded(shards, size, pIntra, pInter) topology.
//
// Canonical model:
//   • Shard s owns vertices s*size .. s*size+size-1.
//   • Each shard is spanned by an internal path, then every other intra-shard
//     pair is linked with probability pIntra.
//   • Every cross-shard pair is linked with probability pInter.
//   • Bridges: the last vertex of shard s links to the first of shard s+1.
//
// Contract:
//   • shards ≥ 1, size ≥ 1; pIntra, pInter ∈ [0,1].
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • The result is connected for every seed (paths + bridges span all vertices).
//
// Complexity:
//   • Time: O(N²) Bernoulli trials with N = shards*size. Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/zagreb/core"
)

const methodSharded = "Sharded"

// Sharded returns a Constructor for a connected sharded network.
func Sharded(shards, size int, pIntra, pInter float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodSharded, "shards", shards, 1); err != nil {
			return err
		}
		if err := validateMin(methodSharded, "size", size, 1); err != nil {
			return err
		}
		if err := validateProbability(methodSharded, "pIntra", pIntra); err != nil {
			return err
		}
		if err := validateProbability(methodSharded, "pInter", pInter); err != nil {
			return err
		}
		if err := requireRand(methodSharded, cfg); err != nil {
			return err
		}
		total := shards * size
		if err := validateFits(g, methodSharded, total); err != nil {
			return err
		}

		rng := cfg.rng
		for u := 0; u < total; u++ {
			for v := u + 1; v < total; v++ {
				p := pInter
				if u/size == v/size {
					p = pIntra
					if v == u+1 {
						p = probMax
					}
				}
				if p < probMax && rng.Float64() >= p {
					continue
				}
				if _, err := linkOnce(g, methodSharded, u, v); err != nil {
					return err
				}
			}
		}

		for s := 0; s+1 < shards; s++ {
			last := s*size + size - 1
			if _, err := linkOnce(g, methodSharded, last, last+1); err != nil {
				return err
			}
		}

		return nil
	}
}
