// SPDX-License-Identifier: MIT
// Package: zagreb
//
// analysis.go — the one-call analysis snapshot.
//
// Contract:
//   - Analyze never mutates g and returns a value, not a reference into g.
//   - Two calls on an unmodified graph with the same options are equal.
//   - The default connectivity mode is connectivity.ModeApprox.

package zagreb

import (
	"github.com/katalvlaran/zagreb/connectivity"
	"github.com/katalvlaran/zagreb/core"
	"github.com/katalvlaran/zagreb/independence"
)

// AnalysisResult is an immutable snapshot of one graph at one point in time.
type AnalysisResult struct {
	VertexCount         int     `json:"vertex_count"`
	EdgeCount           int     `json:"edge_count"`
	ZagrebIndex         int     `json:"zagreb_index"`
	MinDegree           int     `json:"min_degree"`
	MaxDegree           int     `json:"max_degree"`
	IsLikelyHamiltonian bool    `json:"is_likely_hamiltonian"`
	IsLikelyTraceable   bool    `json:"is_likely_traceable"`
	IndependenceNumber  int     `json:"independence_number"`
	ZagrebUpperBound    float64 `json:"zagreb_upper_bound"`

	Mode             connectivity.Mode `json:"mode"`
	Connectivity     int               `json:"connectivity"`
	HamiltonianBasis Basis             `json:"hamiltonian_basis"`
	TraceableBasis   Basis             `json:"traceable_basis"`
}

// Option configures Analyze.
type Option func(*analyzeConfig)

type analyzeConfig struct {
	mode connectivity.Mode
}

// WithMode selects the connectivity mode used for κ.
func WithMode(m connectivity.Mode) Option {
	return func(c *analyzeConfig) { c.mode = m }
}

// Analyze computes the full snapshot of g.
//
// Complexity: dominated by κ: O(V + E) in ModeApprox, polynomial in
// ModeExact, combinatorial in ModeExhaustive.
func Analyze(g *core.Graph, opts ...Option) AnalysisResult {
	cfg := analyzeConfig{mode: connectivity.ModeApprox}
	for _, opt := range opts {
		opt(&cfg)
	}

	cls := Classify(g, cfg.mode)
	beta := independence.Approx(g)

	return AnalysisResult{
		VertexCount:         g.VertexCount(),
		EdgeCount:           g.EdgeCount(),
		ZagrebIndex:         g.FirstZagreb(),
		MinDegree:           g.MinDegree(),
		MaxDegree:           g.MaxDegree(),
		IsLikelyHamiltonian: cls.Hamiltonian,
		IsLikelyTraceable:   cls.Traceable,
		IndependenceNumber:  beta,
		ZagrebUpperBound:    UpperBoundFor(g.VertexCount(), g.EdgeCount(), g.MinDegree(), g.MaxDegree(), beta),
		Mode:                cfg.mode,
		Connectivity:        cls.Connectivity,
		HamiltonianBasis:    cls.HamiltonianBasis,
		TraceableBasis:      cls.TraceableBasis,
	}
}

// UpperBound returns the Theorem 3 bound of g with β set to the greedy
// independence approximation.
func UpperBound(g *core.Graph) float64 {
	return UpperBoundFor(g.VertexCount(), g.EdgeCount(), g.MinDegree(), g.MaxDegree(), independence.Approx(g))
}

// LowConnectivityVertices returns, ascending, the vertices whose degree is
// at most MinDegree()+1. In a regular graph every vertex qualifies.
func LowConnectivityVertices(g *core.Graph) []int {
	limit := g.MinDegree() + 1
	var out []int
	for v, d := range g.DegreeSequence() {
		if d <= limit {
			out = append(out, v)
		}
	}

	return out
}
