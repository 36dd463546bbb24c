// SPDX-License-Identifier: MIT
// Package: zagreb/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • Emits (i, i+1) for i = 0..n-2; P_1 is a single isolated vertex.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/zagreb/core"
)

const methodPath = "Path"

// Path returns a Constructor that builds the simple path P_n on 0..n-1.
// For n ≥ 2, Z1 = 4n - 6.
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for i := 0; i+1 < n; i++ {
			if err := g.AddEdge(i, i+1); err != nil {
				return wrapMethod(methodPath, err)
			}
		}

		return nil
	}
}
