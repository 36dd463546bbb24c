// SPDX-License-Identifier: MIT
// Package: zagreb/network
//
// report.go — Build and the Report model.
//
// Contract:
//   - Ladder probes k = 1, 2, ... up to maxLadder and stops after the first
//     k that fails; MaxConnected is the last k that passed (0 if none).
//   - Efficiency = Z1 / upper bound, 0 when the bound is not finite and positive.
//   - LowConnectivity uses the degree ≤ δ+1 policy, ascending by id.
//   - CutVertices and Bridges list every single point of failure, unbounded
//     by maxListed, ascending.
//   - Bottleneck score = (stake / total stake) / (degree / n), descending,
//     ties by ascending id; validators with degree 0 are skipped.
//
// Concurrency:
//   - The analysis, the ladder and the cut walk run in separate goroutines over the same
//     read-only graph; ctx cancellation stops the ladder between probes
//     and the cut walk between vertices.

package network

import (
	"context"
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/zagreb"
	"github.com/katalvlaran/zagreb/connectivity"
	"github.com/katalvlaran/zagreb/core"
	"github.com/katalvlaran/zagreb/dfs"
	"github.com/katalvlaran/zagreb/graphio"
)

// Traversal summarizes what the classifier could show.
type Traversal string

const (
	TraversalHamiltonian Traversal = "hamiltonian" // leader rotation can follow a cycle
	TraversalTraceable   Traversal = "traceable"   // a path exists, rotation needs extra hops
	TraversalUnknown     Traversal = "unknown"     // no sufficient condition held
)

// LadderStep is one probe of the k-connectivity ladder.
type LadderStep struct {
	K         int  `json:"k"`
	Connected bool `json:"connected"`
}

// ValidatorDegree names a validator and its degree.
type ValidatorDegree struct {
	ID     int    `json:"id"`
	Pubkey string `json:"pubkey"`
	Name   string `json:"name,omitempty"`
	Degree int    `json:"degree"`
}

// StakeScore is a stake-concentration score; higher means more stake
// carried per connection.
type StakeScore struct {
	ID     int     `json:"id"`
	Pubkey string  `json:"pubkey"`
	Name   string  `json:"name,omitempty"`
	Score  float64 `json:"score"`
}

// Report is the full network assessment.
type Report struct {
	Analysis        zagreb.AnalysisResult `json:"analysis"`
	AverageDegree   float64               `json:"average_degree"`
	Ladder          []LadderStep          `json:"ladder"`
	MaxConnected    int                   `json:"max_connected"`
	Efficiency      float64               `json:"efficiency"`
	Traversal       Traversal             `json:"traversal"`
	LowConnectivity []ValidatorDegree     `json:"low_connectivity"`
	Bottlenecks     []StakeScore          `json:"bottlenecks"`
	CutVertices     []ValidatorDegree     `json:"cut_vertices"`
	Bridges         [][2]int              `json:"bridges"`
	Recommendations []string              `json:"recommendations"`
}

// Build validates the dump, builds its graph and assembles the report.
func Build(ctx context.Context, dump graphio.NetworkDump, opts ...Option) (Report, error) {
	g, err := dump.ToGraph()
	if err != nil {
		return Report{}, fmt.Errorf("network.Build: %w", err)
	}

	return BuildFromGraph(ctx, g, dump.ByID(), opts...)
}

// BuildFromGraph reports on g. validators may be nil; otherwise it must hold
// one entry per vertex, indexed by id.
func BuildFromGraph(ctx context.Context, g *core.Graph, validators []graphio.Validator, opts ...Option) (Report, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := g.VertexCount()
	if validators != nil && len(validators) != n {
		return Report{}, fmt.Errorf("network.BuildFromGraph: %d validators for %d vertices: %w",
			len(validators), n, graphio.ErrInvalidDocument)
	}

	var (
		r      Report
		ladder []LadderStep
		cuts   dfs.CutResult
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		r.Analysis = zagreb.Analyze(g, zagreb.WithMode(o.mode))
		return nil
	})
	eg.Go(func() error {
		var err error
		ladder, err = connectivityLadder(egCtx, g, o.mode, o.maxLadder)
		return err
	})
	eg.Go(func() error {
		var err error
		cuts, err = dfs.Cuts(egCtx, g)
		return err
	})
	if err := eg.Wait(); err != nil {
		return Report{}, fmt.Errorf("network.BuildFromGraph: %w", err)
	}

	r.Ladder = ladder
	for _, s := range ladder {
		if s.Connected {
			r.MaxConnected = s.K
		}
	}
	r.AverageDegree = 2 * float64(g.EdgeCount()) / float64(n)
	r.Efficiency = efficiency(r.Analysis.ZagrebIndex, r.Analysis.ZagrebUpperBound)
	r.Traversal = traversalOf(r.Analysis)
	r.LowConnectivity = lowConnectivity(g, validators, o.maxListed)
	r.Bottlenecks = stakeScores(g, validators, o.maxListed)
	r.CutVertices = describeAll(g, validators, cuts.Vertices)
	r.Bridges = cuts.Bridges
	r.Recommendations = recommend(r)

	return r, nil
}

func connectivityLadder(ctx context.Context, g *core.Graph, mode connectivity.Mode, maxK int) ([]LadderStep, error) {
	steps := make([]LadderStep, 0, maxK)
	for k := 1; k <= maxK; k++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ok := connectivity.IsKConnected(g, k, mode)
		steps = append(steps, LadderStep{K: k, Connected: ok})
		if !ok {
			break
		}
	}

	return steps, nil
}

func efficiency(z1 int, bound float64) float64 {
	if bound <= 0 || math.IsInf(bound, 0) || math.IsNaN(bound) {
		return 0
	}

	return float64(z1) / bound
}

func traversalOf(a zagreb.AnalysisResult) Traversal {
	switch {
	case a.IsLikelyHamiltonian:
		return TraversalHamiltonian
	case a.IsLikelyTraceable:
		return TraversalTraceable
	default:
		return TraversalUnknown
	}
}

func describe(validators []graphio.Validator, id int) (pubkey, name string) {
	if validators == nil {
		return fmt.Sprintf("validator-%d", id), ""
	}

	return validators[id].Pubkey, validators[id].Name
}

func lowConnectivity(g *core.Graph, validators []graphio.Validator, limit int) []ValidatorDegree {
	ids := zagreb.LowConnectivityVertices(g)
	if len(ids) > limit {
		ids = ids[:limit]
	}

	return describeAll(g, validators, ids)
}

func describeAll(g *core.Graph, validators []graphio.Validator, ids []int) []ValidatorDegree {
	deg := g.DegreeSequence()
	out := make([]ValidatorDegree, 0, len(ids))
	for _, id := range ids {
		pk, name := describe(validators, id)
		out = append(out, ValidatorDegree{ID: id, Pubkey: pk, Name: name, Degree: deg[id]})
	}

	return out
}

func stakeScores(g *core.Graph, validators []graphio.Validator, limit int) []StakeScore {
	if validators == nil {
		return nil
	}
	var total float64
	for _, v := range validators {
		total += float64(v.Stake)
	}
	if total == 0 {
		return nil
	}

	n := float64(g.VertexCount())
	deg := g.DegreeSequence()
	var out []StakeScore
	for id, d := range deg {
		if d == 0 {
			continue
		}
		v := validators[id]
		score := (float64(v.Stake) / total) / (float64(d) / n)
		out = append(out, StakeScore{ID: id, Pubkey: v.Pubkey, Name: v.Name, Score: score})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}

	return out
}

// Recommendation texts.
const (
	RecommendRedundancy   = "Add redundant connections so the network is 2-connected (no single point of failure)"
	RecommendMoreLinks    = "Increase overall connectivity for better gossip propagation"
	RecommendFewerLinks   = "The network may have excessive connections, which increases overhead"
	RecommendRotation     = "Improve connectivity to support efficient leader rotation"
	RecommendSatisfactory = "Overall connectivity level appears reasonable"
)

func recommend(r Report) []string {
	var out []string
	if r.MaxConnected < 2 {
		out = append(out, RecommendRedundancy)
	}
	switch {
	case r.AverageDegree < MinHealthyDegree:
		out = append(out, RecommendMoreLinks)
	case r.AverageDegree > MaxHealthyDegree:
		out = append(out, RecommendFewerLinks)
	}
	if !r.Analysis.IsLikelyHamiltonian {
		out = append(out, RecommendRotation)
	}
	if len(out) == 0 {
		out = append(out, RecommendSatisfactory)
	}

	return out
}
