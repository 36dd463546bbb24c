// SPDX-License-Identifier: MIT
// Package: zagreb/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • Emits ring edges (i, (i+1) mod n) for i = 0..n-1.
//   • n = 1 closes the ring onto itself and fails with core.ErrSelfLoop.
//   • n = 2 repeats edge {0,1} and fails with core.ErrDuplicateEdge.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/zagreb/core"
)

const methodCycle = "Cycle"

// Cycle returns a Constructor that builds the simple cycle C_n on 0..n-1.
// C_n is 2-regular, so Z1 = 4n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for i := 0; i < n; i++ {
			if err := g.AddEdge(i, (i+1)%n); err != nil {
				return wrapMethod(methodCycle, err)
			}
		}

		return nil
	}
}
