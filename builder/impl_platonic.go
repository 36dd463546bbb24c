// SPDX-License-Identifier: MIT
// Package: zagreb/builder
//
// impl_platonic.go — PlatonicSolid(name) and Petersen() constructors.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron};
//     anything else → ErrUnknownFamily.
//   • Emits the edges generated by the solid's labelling rule in
//     variants_platonic.go.
//
// Complexity:
//   • Time: O(V+E) for the selected solid (constants: V≤20, E≤30).

package builder

import (
	"fmt"

	"github.com/katalvlaran/zagreb/core"
)

const (
	methodPlatonicSolid = "PlatonicSolid"
	methodPetersen      = "Petersen"
	petersenVertices    = 10
)

// petersenEdges: outer 5-cycle, five spokes, inner pentagram.
var petersenEdges = []chord{
	{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 0},
	{U: 0, V: 5}, {U: 1, V: 6}, {U: 2, V: 7}, {U: 3, V: 8}, {U: 4, V: 9},
	{U: 5, V: 7}, {U: 7, V: 9}, {U: 9, V: 6}, {U: 6, V: 8}, {U: 8, V: 5},
}

// PlatonicSolid returns a Constructor that builds the chosen Platonic shell.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		solid, ok := platonicSolids[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %d: %w", methodPlatonicSolid, int(name), ErrUnknownFamily)
		}

		return addEdges(g, methodPlatonicSolid, solid.edges())
	}
}

// Petersen returns a Constructor for the Petersen graph on 0..9:
// 3-regular, 3-connected, non-Hamiltonian, independence number 4.
func Petersen() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		return addEdges(g, methodPetersen, petersenEdges)
	}
}
