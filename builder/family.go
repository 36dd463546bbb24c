// SPDX-License-Identifier: MIT
// Package: zagreb/builder
//
// family.go — name-addressed access to every generator, for the CLI and the
// HTTP binding.

package builder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/zagreb/core"
)

// Family names a graph generator.
type Family string

// Known families.
const (
	FamilyComplete       Family = "complete"
	FamilyCycle          Family = "cycle"
	FamilyPath           Family = "path"
	FamilyStar           Family = "star"
	FamilyWheel          Family = "wheel"
	FamilyPetersen       Family = "petersen"
	FamilyBipartite      Family = "bipartite"
	FamilyGrid           Family = "grid"
	FamilyTetrahedron    Family = "tetrahedron"
	FamilyCube           Family = "cube"
	FamilyOctahedron     Family = "octahedron"
	FamilyDodecahedron   Family = "dodecahedron"
	FamilyIcosahedron    Family = "icosahedron"
	FamilyTiered         Family = "tiered"
	FamilyValidators     Family = "validators"
	FamilyRandomSparse   Family = "random-sparse"
	FamilyRandomRegular  Family = "random-regular"
	FamilyBarabasiAlbert Family = "barabasi-albert"
	FamilyGossip         Family = "gossip"
	FamilySharded        Family = "sharded"
)

// Params carries the size and probability knobs of a family. Each family
// reads only the fields it needs:
//
//	complete, cycle, path, star, wheel   N
//	bipartite                            N (left), M (right)
//	grid                                 N (rows), M (cols)
//	tiered                               N (core), M (mid), K (edge)
//	random-sparse                        N, P
//	random-regular                       N, M (degree)
//	barabasi-albert                      N, M (links per arrival)
//	gossip                               N, P (long-link), M (coordinators)
//	sharded                              N (shards), M (shard size), P (intra), Q (inter)
type Params struct {
	N, M, K int
	P, Q    float64
}

var platonicFamilies = map[Family]PlatonicName{
	FamilyTetrahedron:  Tetrahedron,
	FamilyCube:         Cube,
	FamilyOctahedron:   Octahedron,
	FamilyDodecahedron: Dodecahedron,
	FamilyIcosahedron:  Icosahedron,
}

var randomFamilies = map[Family]bool{
	FamilyRandomSparse:   true,
	FamilyRandomRegular:  true,
	FamilyBarabasiAlbert: true,
	FamilyGossip:         true,
	FamilySharded:        true,
}

// Families lists every known family name in ascending order.
func Families() []Family {
	out := []Family{
		FamilyComplete, FamilyCycle, FamilyPath, FamilyStar, FamilyWheel,
		FamilyPetersen, FamilyBipartite, FamilyGrid, FamilyTiered, FamilyValidators,
		FamilyRandomSparse, FamilyRandomRegular, FamilyBarabasiAlbert, FamilyGossip, FamilySharded,
	}
	for f := range platonicFamilies {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// IsRandom reports whether the family needs an RNG option.
func (f Family) IsRandom() bool { return randomFamilies[f] }

// ByName builds the named family. Names are case-insensitive. Randomized
// families need WithSeed, WithRand or WithEntropy in opts.
func ByName(name string, p Params, opts ...BuilderOption) (*core.Graph, error) {
	f := Family(strings.ToLower(strings.TrimSpace(name)))
	if solid, ok := platonicFamilies[f]; ok {
		return NewPlatonicSolid(solid)
	}

	switch f {
	case FamilyComplete:
		return NewComplete(p.N)
	case FamilyCycle:
		return NewCycle(p.N)
	case FamilyPath:
		return NewPath(p.N)
	case FamilyStar:
		return NewStar(p.N)
	case FamilyWheel:
		return NewWheel(p.N)
	case FamilyPetersen:
		return NewPetersen()
	case FamilyBipartite:
		return NewCompleteBipartite(p.N, p.M)
	case FamilyGrid:
		return NewGrid(p.N, p.M)
	case FamilyTiered:
		return NewTiered(p.N, p.M, p.K)
	case FamilyValidators:
		return NewSimulatedValidatorNetwork()
	case FamilyRandomSparse:
		return NewRandomSparse(p.N, p.P, opts...)
	case FamilyRandomRegular:
		return NewRandomRegular(p.N, p.M, opts...)
	case FamilyBarabasiAlbert:
		return NewBarabasiAlbert(p.N, p.M, opts...)
	case FamilyGossip:
		return NewGossip(p.N, p.P, p.M, opts...)
	case FamilySharded:
		return NewSharded(p.N, p.M, p.P, p.Q, opts...)
	default:
		return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknownFamily)
	}
}
