// SPDX-License-Identifier: MIT
// Package: zagreb/builder
//
// impl_bipartite.go — implementation of CompleteBipartite(m, k) constructor.
//
// Canonical model:
//   • Left partition:  0..m-1.
//   • Right partition: m..m+k-1.
//   • Every left vertex joins every right vertex; no intra-partition edges.
//
// Complexity:
//   • Time: O(m·k). Space: O(1) extra.
//
// Determinism:
//   • Stable emission order: i over left, then j over right.

package builder

import (
	"github.com/katalvlaran/zagreb/core"
)

const methodCompleteBipartite = "CompleteBipartite"

// CompleteBipartite returns a Constructor for K_{m,k}.
// Z1 = m·k² + k·m² = mk(m+k).
func CompleteBipartite(m, k int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for i := 0; i < m; i++ {
			for j := 0; j < k; j++ {
				if err := g.AddEdge(i, m+j); err != nil {
					return wrapMethod(methodCompleteBipartite, err)
				}
			}
		}

		return nil
	}
}
