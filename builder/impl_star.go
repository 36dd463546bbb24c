// SPDX-License-Identifier: MIT
// Package: zagreb/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • Vertex 0 is the center; leaves are 1..n-1.
//   • Emits spokes (0, i) in ascending leaf order.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/zagreb/core"
)

const methodStar = "Star"

// Star returns a Constructor that builds K_{1,n-1} centered at vertex 0.
// Z1 = (n-1)² + (n-1) = n(n-1).
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for i := 1; i < n; i++ {
			if err := g.AddEdge(0, i); err != nil {
				return wrapMethod(methodStar, err)
			}
		}

		return nil
	}
}
