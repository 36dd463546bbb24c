// SPDX-License-Identifier: MIT
// Package: zagreb/builder
//
// impl_tiered.go — Tiered(core, mid, edge) validator topology.
//
// Canonical model (vertex blocks, in order):
//   • Core tier  0..c-1:        complete subgraph K_c.
//   • Mid tier   c..c+m-1:      each joins core vertices 0..min(c,3)-1 and its
//                               ring successor inside the mid tier.
//   • Edge tier  c+m..c+m+e-1:  vertex i joins i mod c and c + (i mod m).
//
// Contract:
//   • coreSize ≥ 1, midSize ≥ 1, edgeSize ≥ 0 (else ErrTooFewVertices).
//   • Coinciding links are inserted once (no duplicate errors).
//
// Complexity:
//   • Time: O(c² + m + e). Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/zagreb/core"
)

const (
	methodTiered         = "Tiered"
	methodSimulatedNet   = "SimulatedValidatorNetwork"
	tieredCoreAnchors    = 3
	simulatedCoreSize    = 5
	simulatedMidSize     = 7
	simulatedEdgeSize    = 8
	simulatedVertexCount = simulatedCoreSize + simulatedMidSize + simulatedEdgeSize
)

// simulatedExtraLinks are the cross-tier shortcuts of the reference
// 20-validator network.
var simulatedExtraLinks = []chord{
	{U: 3, V: 15}, {U: 7, V: 18}, {U: 2, V: 14}, {U: 9, V: 16}, {U: 1, V: 19},
	{U: 8, V: 13}, {U: 4, V: 11}, {U: 6, V: 17}, {U: 0, V: 12}, {U: 5, V: 10},
}

// Tiered returns a Constructor for a three-tier validator network.
func Tiered(coreSize, midSize, edgeSize int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodTiered, "core", coreSize, 1); err != nil {
			return err
		}
		if err := validateMin(methodTiered, "mid", midSize, 1); err != nil {
			return err
		}
		if err := validateMin(methodTiered, "edge", edgeSize, 0); err != nil {
			return err
		}
		if err := validateFits(g, methodTiered, coreSize+midSize+edgeSize); err != nil {
			return err
		}

		for i := 0; i < coreSize; i++ {
			for j := i + 1; j < coreSize; j++ {
				if _, err := linkOnce(g, methodTiered, i, j); err != nil {
					return err
				}
			}
		}

		anchors := min(coreSize, tieredCoreAnchors)
		for k := 0; k < midSize; k++ {
			v := coreSize + k
			for a := 0; a < anchors; a++ {
				if _, err := linkOnce(g, methodTiered, v, a); err != nil {
					return err
				}
			}
			next := coreSize + (k+1)%midSize
			if _, err := linkOnce(g, methodTiered, v, next); err != nil {
				return err
			}
		}

		first := coreSize + midSize
		for v := first; v < first+edgeSize; v++ {
			if _, err := linkOnce(g, methodTiered, v, v%coreSize); err != nil {
				return err
			}
			if _, err := linkOnce(g, methodTiered, v, coreSize+v%midSize); err != nil {
				return err
			}
		}

		return nil
	}
}

// SimulatedValidatorNetwork returns a Constructor for the fixed 20-validator
// reference network: Tiered(5, 7, 8) plus ten cross-tier shortcuts.
// The result has 20 vertices and 64 edges.
func SimulatedValidatorNetwork() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := Tiered(simulatedCoreSize, simulatedMidSize, simulatedEdgeSize)(g, cfg); err != nil {
			return wrapMethod(methodSimulatedNet, err)
		}
		for _, e := range simulatedExtraLinks {
			if _, err := linkOnce(g, methodSimulatedNet, e.U, e.V); err != nil {
				return err
			}
		}

		return nil
	}
}

// NewSimulatedValidatorNetwork builds the 20-validator reference network.
func NewSimulatedValidatorNetwork() (*core.Graph, error) {
	return BuildGraph(simulatedVertexCount, nil, SimulatedValidatorNetwork())
}
