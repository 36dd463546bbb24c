// SPDX-License-Identifier: MIT
// Package: zagreb/builder
//
// variants_platonic.go — the five Platonic skeletons and their invariants.
//
// Contract:
//   - Every solid is regular, so Z1 = V·d² and e = V·d/2 are closed forms.
//   - Vertex connectivity equals the degree: κ = δ = Δ.
//   - Edge lists are generated from a labelling rule, not stored; the
//     rule fixes the emission order, so output is deterministic.

package builder

import "fmt"

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

const (
	Tetrahedron PlatonicName = iota
	Cube
	Octahedron
	Dodecahedron
	Icosahedron
)

// SolidFacts holds the closed-form invariants of a Platonic skeleton.
type SolidFacts struct {
	Name         string
	Vertices     int
	Edges        int
	Degree       int
	Connectivity int
}

// FirstZagreb returns V·d², the index of a d-regular graph on V vertices.
func (f SolidFacts) FirstZagreb() int { return f.Vertices * f.Degree * f.Degree }

// platonic pairs each solid's invariants with the rule that emits its edges.
type platonic struct {
	facts SolidFacts
	edges func() []chord
}

var platonicSolids = map[PlatonicName]platonic{
	Tetrahedron:  {SolidFacts{"Tetrahedron", 4, 6, 3, 3}, tetrahedronEdges},
	Cube:         {SolidFacts{"Cube", 8, 12, 3, 3}, cubeEdges},
	Octahedron:   {SolidFacts{"Octahedron", 6, 12, 4, 4}, octahedronEdges},
	Dodecahedron: {SolidFacts{"Dodecahedron", 20, 30, 3, 3}, dodecahedronEdges},
	Icosahedron:  {SolidFacts{"Icosahedron", 12, 30, 5, 5}, icosahedronEdges},
}

// String returns the solid's name, or PlatonicName(n) when unknown.
func (p PlatonicName) String() string {
	if s, ok := platonicSolids[p]; ok {
		return s.facts.Name
	}

	return fmt.Sprintf("PlatonicName(%d)", int(p))
}

// Facts returns the closed-form invariants of p.
func (p PlatonicName) Facts() (SolidFacts, bool) {
	s, ok := platonicSolids[p]
	return s.facts, ok
}

// tetrahedronEdges is K4.
func tetrahedronEdges() []chord {
	out := make([]chord, 0, 6)
	for u := 0; u < 4; u++ {
		for v := u + 1; v < 4; v++ {
			out = append(out, chord{U: u, V: v})
		}
	}

	return out
}

// cubeEdges is the 3-cube Q3: u and v adjacent iff their labels differ in
// exactly one bit.
func cubeEdges() []chord {
	out := make([]chord, 0, 12)
	for u := 0; u < 8; u++ {
		for bit := 1; bit < 8; bit <<= 1 {
			if v := u ^ bit; u < v {
				out = append(out, chord{U: u, V: v})
			}
		}
	}

	return out
}

// octahedronEdges is K6 minus the perfect matching {2i, 2i+1}: each vertex
// misses only its antipode.
func octahedronEdges() []chord {
	out := make([]chord, 0, 12)
	for u := 0; u < 6; u++ {
		for v := u + 1; v < 6; v++ {
			if u/2 != v/2 {
				out = append(out, chord{U: u, V: v})
			}
		}
	}

	return out
}

// dodecahedronEdges labels an outer pentagon 0..4, an inner pentagon 5..9
// and a 10-ring 10..19 between them. Outer vertex i meets ring vertex
// 10+2i, inner vertex 5+i meets ring vertex 11+2i.
func dodecahedronEdges() []chord {
	out := make([]chord, 0, 30)
	for i := 0; i < 5; i++ {
		out = append(out,
			chord{U: i, V: (i + 1) % 5},
			chord{U: 5 + i, V: 5 + (i+1)%5},
			chord{U: i, V: 10 + 2*i},
			chord{U: 5 + i, V: 11 + 2*i},
		)
	}
	for i := 0; i < 10; i++ {
		out = append(out, chord{U: 10 + i, V: 10 + (i+1)%10})
	}

	return out
}

// icosahedronEdges labels pole 0, upper ring 1..5, lower ring 6..10 and
// pole 11. Upper vertex 1+i meets lower vertices 6+i and 6+(i+1)%5.
func icosahedronEdges() []chord {
	out := make([]chord, 0, 30)
	for i := 0; i < 5; i++ {
		up, next := 1+i, 1+(i+1)%5
		lo, loNext := 6+i, 6+(i+1)%5
		out = append(out,
			chord{U: 0, V: up},
			chord{U: up, V: next},
			chord{U: up, V: lo},
			chord{U: up, V: loNext},
			chord{U: lo, V: loNext},
			chord{U: lo, V: 11},
		)
	}

	return out
}
