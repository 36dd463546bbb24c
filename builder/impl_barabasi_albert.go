// SPDX-License-Identifier: MIT
// Package: zagreb/builder
//
// impl_barabasi_albert.go — BarabasiAlbert(n, m) preferential attachment.
//
// Canonical model:
//   • Seed: K_{m+1} on 0..m.
//   • Each later vertex v attaches to m distinct earlier vertices, chosen with
//     probability proportional to current degree.
//
// Contract:
//   • m ≥ 1 and n ≥ m+1 (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Complexity:
//   • Time: O(m² + n·m) expected. Space: O(n·m) for the endpoint list.

package builder

import (
	"github.com/katalvlaran/zagreb/core"
)

const (
	methodBarabasiAlbert = "BarabasiAlbert"
	minBAAttach          = 1
)

// BarabasiAlbert returns a Constructor for a scale-free graph on 0..n-1.
// The result is connected and has minimum degree m.
func BarabasiAlbert(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodBarabasiAlbert, "m", m, minBAAttach); err != nil {
			return err
		}
		if err := validateMin(methodBarabasiAlbert, "n", n, m+1); err != nil {
			return err
		}
		if err := requireRand(methodBarabasiAlbert, cfg); err != nil {
			return err
		}
		if err := validateFits(g, methodBarabasiAlbert, n); err != nil {
			return err
		}

		// endpoints lists every edge endpoint, so a uniform pick is degree-weighted.
		endpoints := make([]int, 0, 2*(m*(m+1)/2+(n-m-1)*m))
		for i := 0; i <= m; i++ {
			for j := i + 1; j <= m; j++ {
				if err := g.AddEdge(i, j); err != nil {
					return wrapMethod(methodBarabasiAlbert, err)
				}
				endpoints = append(endpoints, i, j)
			}
		}

		for v := m + 1; v < n; v++ {
			targets := make(map[int]struct{}, m)
			order := make([]int, 0, m)
			for len(order) < m {
				t := endpoints[cfg.rng.Intn(len(endpoints))]
				if _, dup := targets[t]; dup {
					continue
				}
				targets[t] = struct{}{}
				order = append(order, t)
			}
			for _, t := range order {
				if err := g.AddEdge(v, t); err != nil {
					return wrapMethod(methodBarabasiAlbert, err)
				}
				endpoints = append(endpoints, v, t)
			}
		}

		return nil
	}
}
