// SPDX-License-Identifier: MIT
// Package: zagreb
//
// theorems.go — closed-form thresholds of the Zagreb-index theorems.
//
// Contract:
//   - Pure functions of (n, e, δ, Δ, k); no graph access.
//   - Real arithmetic throughout: no intermediate truncation.
//   - A parameter combination outside a theorem's domain yields +Inf, so any
//     "Z1 ≥ threshold" comparison fails.

package zagreb

import "math"

// theoremBound evaluates (n−p)Δ² + e²/q + (√(n−p) − √δ)²·e,
// the common shape of all three theorems.
func theoremBound(n, e, minDeg, maxDeg, p, q int) float64 {
	rest := n - p
	if rest < 0 || q <= 0 {
		return math.Inf(1)
	}
	fe := float64(e)
	dmax := float64(maxDeg)
	gap := math.Sqrt(float64(rest)) - math.Sqrt(float64(minDeg))

	return float64(rest)*dmax*dmax + fe*fe/float64(q) + gap*gap*fe
}

// HamiltonianThreshold is the Theorem 1 bound for a k-connected graph
// (k ≥ 2) of order n ≥ 3:
//
//	Z1 ≥ (n−k−1)Δ² + e²/(k+1) + (√(n−k−1) − √δ)²·e  ⇒  G is Hamiltonian.
func HamiltonianThreshold(n, e, minDeg, maxDeg, k int) float64 {
	if k < 2 || n < 3 {
		return math.Inf(1)
	}

	return theoremBound(n, e, minDeg, maxDeg, k+1, k+1)
}

// TraceableThreshold is the Theorem 2 bound for a k-connected graph
// (k ≥ 1) of order n ≥ 9:
//
//	Z1 ≥ (n−k−2)Δ² + e²/(k+2) + (√(n−k−2) − √δ)²·e  ⇒  G is traceable.
func TraceableThreshold(n, e, minDeg, maxDeg, k int) float64 {
	if k < 1 || n < 9 {
		return math.Inf(1)
	}

	return theoremBound(n, e, minDeg, maxDeg, k+2, k+2)
}

// UpperBoundFor is the Theorem 3 upper bound with parameter β:
//
//	Z1 ≤ (n−β)Δ² + e²/β + (√(n−β) − √δ)²·e
func UpperBoundFor(n, e, minDeg, maxDeg, beta int) float64 {
	return theoremBound(n, e, minDeg, maxDeg, beta, beta)
}
