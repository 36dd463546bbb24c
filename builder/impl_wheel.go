// SPDX-License-Identifier: MIT
// Package: zagreb/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Canonical model:
//   • Rim: vertices 0..n-2 form the cycle C_{n-1}.
//   • Hub: vertex n-1 joins every rim vertex.
//
// Contract:
//   • Rim edges first, then spokes in ascending rim order.
//   • Small n reuses Cycle's failure modes on the rim (n=2 ⇒ self-loop).
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/zagreb/core"
)

const methodWheel = "Wheel"

// Wheel returns a Constructor that builds the wheel W_n on n vertices.
// Rim vertices have degree 3 and the hub n-1, so Z1 = 9(n-1) + (n-1)².
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		rim := n - 1
		if err := Cycle(rim)(g, cfg); err != nil {
			return wrapMethod(methodWheel, err)
		}
		for i := 0; i < rim; i++ {
			if err := g.AddEdge(rim, i); err != nil {
				return wrapMethod(methodWheel, err)
			}
		}

		return nil
	}
}
