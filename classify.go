// SPDX-License-Identifier: MIT
// Package: zagreb
//
// classify.go — Hamiltonian / traceable classification.
//
// Contract:
//   - Connectivity κ is computed once per Classify call, in the caller's mode.
//   - A true verdict rests on a sufficient condition (known family, Dirac,
//     Theorem 1/2). A false verdict is "inconclusive", never a proof.
//   - The theorem bounds are tight on K_{k,k+1} (cycle) and K_{k,k+2} (path),
//     which have neither property. A connected bipartite graph whose colour
//     classes differ by more than the property allows is rejected before any
//     threshold is consulted.
//   - A k-connected graph is k'-connected for every k' ≤ k, so the theorems
//     are tried for every admissible k' up to κ and the first hit wins.
//
// Determinism:
//   - Pure function of the graph and the mode.

package zagreb

import (
	"github.com/katalvlaran/zagreb/connectivity"
	"github.com/katalvlaran/zagreb/core"
)

// Basis names the condition that decided a verdict.
type Basis string

const (
	BasisTooSmall       Basis = "too-small"                 // fewer than 3 vertices for a cycle
	BasisSingleVertex   Basis = "single-vertex"             // trivial path
	BasisComplete       Basis = "complete"                  // K_n
	BasisCycle          Basis = "cycle"                     // connected 2-regular
	BasisPath           Basis = "path"                      // the graph is a path
	BasisDirac          Basis = "dirac"                     // 2δ ≥ n (cycle) or 2δ ≥ n−1 (path)
	BasisHamiltonian    Basis = "hamiltonian"               // traceable because Hamiltonian
	BasisTheorem1       Basis = "theorem-1"                 // Zagreb threshold, Hamiltonian
	BasisTheorem2       Basis = "theorem-2"                 // Zagreb threshold, traceable
	BasisLowConnected   Basis = "insufficient-connectivity" // κ below what the conditions need
	BasisBelowThreshold Basis = "below-threshold"           // no condition met
	BasisOrderTooSmall  Basis = "order-below-9"             // Theorem 2 needs n ≥ 9
	BasisUnbalanced     Basis = "unbalanced-bipartite"      // colour classes too uneven
)

// Classification is the outcome of Classify.
type Classification struct {
	Mode         connectivity.Mode `json:"mode"`
	Connectivity int               `json:"connectivity"`

	Hamiltonian      bool  `json:"is_likely_hamiltonian"`
	HamiltonianBasis Basis `json:"hamiltonian_basis"`
	// HamiltonianK is the connectivity used by Theorem 1, 0 if unused.
	HamiltonianK int `json:"hamiltonian_k,omitempty"`

	Traceable      bool  `json:"is_likely_traceable"`
	TraceableBasis Basis `json:"traceable_basis"`
	TraceableK     int   `json:"traceable_k,omitempty"`
}

// Classify decides both predicates with a single κ computation.
func Classify(g *core.Graph, mode connectivity.Mode) Classification {
	c := Classification{
		Mode:         mode,
		Connectivity: connectivity.VertexConnectivity(g, mode),
	}
	c.Hamiltonian, c.HamiltonianBasis, c.HamiltonianK = hamiltonian(g, c.Connectivity)
	c.Traceable, c.TraceableBasis, c.TraceableK = traceable(g, c.Connectivity, c.Hamiltonian)

	return c
}

// IsLikelyHamiltonian reports whether a sufficient condition for a
// Hamiltonian cycle holds. False means "unknown".
func IsLikelyHamiltonian(g *core.Graph, mode connectivity.Mode) bool {
	ok, _, _ := hamiltonian(g, connectivity.VertexConnectivity(g, mode))
	return ok
}

// IsLikelyTraceable reports whether a sufficient condition for a
// Hamiltonian path holds. False means "unknown".
func IsLikelyTraceable(g *core.Graph, mode connectivity.Mode) bool {
	return Classify(g, mode).Traceable
}

func hamiltonian(g *core.Graph, kappa int) (bool, Basis, int) {
	n := g.VertexCount()
	switch {
	case n < 3:
		return false, BasisTooSmall, 0
	case g.IsComplete():
		return true, BasisComplete, 0
	case g.IsCycle():
		return true, BasisCycle, 0
	case kappa < 2:
		return false, BasisLowConnected, 0
	case 2*g.MinDegree() >= n:
		return true, BasisDirac, 0
	}

	// A Hamiltonian cycle alternates colours, so both classes must match.
	if small, large, ok := g.Bipartition(); ok && small != large {
		return false, BasisUnbalanced, 0
	}

	z1 := float64(g.FirstZagreb())
	e, minDeg, maxDeg := g.EdgeCount(), g.MinDegree(), g.MaxDegree()
	for k := kappa; k >= 2; k-- {
		if z1 >= HamiltonianThreshold(n, e, minDeg, maxDeg, k) {
			return true, BasisTheorem1, k
		}
	}

	return false, BasisBelowThreshold, 0
}

func traceable(g *core.Graph, kappa int, isHamiltonian bool) (bool, Basis, int) {
	n := g.VertexCount()
	switch {
	case n == 1:
		return true, BasisSingleVertex, 0
	case isHamiltonian:
		return true, BasisHamiltonian, 0
	case g.IsComplete():
		return true, BasisComplete, 0
	case g.IsPath():
		return true, BasisPath, 0
	case kappa < 1:
		return false, BasisLowConnected, 0
	case 2*g.MinDegree() >= n-1:
		return true, BasisDirac, 0
	case n < 9:
		return false, BasisOrderTooSmall, 0
	}

	if small, large, ok := g.Bipartition(); ok && large-small > 1 {
		return false, BasisUnbalanced, 0
	}

	z1 := float64(g.FirstZagreb())
	e, minDeg, maxDeg := g.EdgeCount(), g.MinDegree(), g.MaxDegree()
	top := kappa
	if top > n-2 {
		top = n - 2
	}
	for k := top; k >= 1; k-- {
		if z1 >= TraceableThreshold(n, e, minDeg, maxDeg, k) {
			return true, BasisTheorem2, k
		}
	}

	return false, BasisBelowThreshold, 0
}
