// SPDX-License-Identifier: MIT
// Package: zagreb/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • Emits each unordered pair {i,j} with 0 ≤ i < j < n exactly once.
//   • No size pre-check: a graph smaller than n surfaces core.ErrVertexOutOfRange.
//   • Returns only wrapped core errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n²) edge emission.
//   • Space: O(1) extra.
//
// Determinism:
//   • Deterministic pair order: lexicographic by (i,j), i<j.

package builder

import (
	"github.com/katalvlaran/zagreb/core"
)

const methodComplete = "Complete"

// Complete returns a Constructor that builds the complete simple graph K_n.
// Every vertex ends with degree n-1, so Z1 = n(n-1)².
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := g.AddEdge(i, j); err != nil {
					return wrapMethod(methodComplete, err)
				}
			}
		}

		return nil
	}
}
