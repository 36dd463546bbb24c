// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/zagreb/builder"
	"github.com/katalvlaran/zagreb/core"
	"github.com/katalvlaran/zagreb/graphio"
)

var errNoSource = errors.New("exactly one of --input or --family is required")

// familyFlags binds the builder.Params knobs and the seed.
type familyFlags struct {
	params builder.Params
	seed   int64
}

func (f *familyFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.IntVar(&f.params.N, "n", 0, "primary size: order, rows, core tier or shard count")
	fl.IntVar(&f.params.M, "m", 0, "secondary size: right side, cols, mid tier, degree, links or shard size")
	fl.IntVar(&f.params.K, "k", 0, "tertiary size: edge tier")
	fl.Float64Var(&f.params.P, "p", 0, "primary probability")
	fl.Float64Var(&f.params.Q, "q", 0, "secondary probability")
	fl.Int64Var(&f.seed, "seed", 0, "RNG seed for randomized families; wall clock when unset")
}

// build generates family name. Randomized families use --seed when given
// and fresh entropy otherwise.
func (f *familyFlags) build(cmd *cobra.Command, name string) (*core.Graph, error) {
	var opts []builder.BuilderOption
	if builder.Family(strings.ToLower(strings.TrimSpace(name))).IsRandom() {
		if cmd.Flags().Changed("seed") {
			opts = append(opts, builder.WithSeed(f.seed))
		} else {
			opts = append(opts, builder.WithEntropy())
		}
	}

	return builder.ByName(name, f.params, opts...)
}

// graphSource resolves --input or --family into a graph.
type graphSource struct {
	input  string
	family string
	familyFlags
}

func (s *graphSource) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.input, "input", "i", "", "graph document (.json, .yaml, .yml)")
	cmd.Flags().StringVarP(&s.family, "family", "f", "", "generate a named family instead of reading a file")
	s.familyFlags.register(cmd)
}

func (s *graphSource) load(cmd *cobra.Command) (*core.Graph, error) {
	switch {
	case (s.input == "") == (s.family == ""):
		return nil, errNoSource
	case s.input != "":
		return graphio.ReadGraphFile(s.input)
	default:
		g, err := s.build(cmd, s.family)
		if err != nil {
			return nil, fmt.Errorf("family %s: %w", s.family, err)
		}
		return g, nil
	}
}
