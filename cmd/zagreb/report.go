// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/zagreb/builder"
	"github.com/katalvlaran/zagreb/connectivity"
	"github.com/katalvlaran/zagreb/graphio"
	"github.com/katalvlaran/zagreb/network"
)

var errReportSource = errors.New("exactly one of --input or --simulated is required")

func newReportCmd(a *app) *cobra.Command {
	var (
		input     string
		simulated bool
		mode      string
		output    string
		maxListed int
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Assess a validator network dump",
		Long: `report reads a network dump (validators plus connection lists) and prints
the Zagreb analysis, the k-connectivity ladder, the degree profile, stake
bottlenecks and recommendations. --simulated uses the built-in 20-validator
topology instead of a file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkOutput(output); err != nil {
				return err
			}
			if maxListed < 1 {
				return fmt.Errorf("--max-listed %d: want ≥ 1", maxListed)
			}
			m := a.cfg.Analysis.Mode
			if mode != "" {
				var err error
				if m, err = connectivity.ParseMode(mode); err != nil {
					return err
				}
			}
			opts := []network.Option{network.WithMode(m), network.WithMaxListed(maxListed)}

			var (
				r   network.Report
				err error
			)
			switch {
			case simulated == (input != ""):
				return errReportSource
			case simulated:
				g, gerr := builder.NewSimulatedValidatorNetwork()
				if gerr != nil {
					return gerr
				}
				r, err = network.BuildFromGraph(cmd.Context(), g, nil, opts...)
			default:
				dump, derr := graphio.ReadDumpFile(input)
				if derr != nil {
					return derr
				}
				r, err = network.Build(cmd.Context(), dump, opts...)
			}
			if err != nil {
				return err
			}
			a.log.Debug("report built", zap.Int("validators", r.Analysis.VertexCount), zap.Int("max_connected", r.MaxConnected))

			if output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), r)
			}
			return r.WriteText(cmd.OutOrStdout())
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&input, "input", "i", "", "network dump (.json, .yaml, .yml)")
	fl.BoolVar(&simulated, "simulated", false, "report on the built-in simulated validator network")
	fl.StringVar(&mode, "mode", "", "connectivity mode (config default when empty)")
	fl.StringVarP(&output, "output", "o", outputText, "output style: text or json")
	fl.IntVar(&maxListed, "max-listed", network.DefaultMaxListed, "rows per ranked list")

	return cmd
}
