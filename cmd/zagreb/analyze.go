// SPDX-License-Identifier: MIT

package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/zagreb"
	"github.com/katalvlaran/zagreb/connectivity"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		src    graphSource
		mode   string
		output string
	)
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a graph file or a generated family",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkOutput(output); err != nil {
				return err
			}
			m := a.cfg.Analysis.Mode
			if mode != "" {
				var err error
				if m, err = connectivity.ParseMode(mode); err != nil {
					return err
				}
			}
			g, err := src.load(cmd)
			if err != nil {
				return err
			}

			start := time.Now()
			res := zagreb.Analyze(g, zagreb.WithMode(m))
			a.log.Debug("analysis done",
				zap.Int("vertices", res.VertexCount),
				zap.Stringer("mode", m),
				zap.Duration("elapsed", time.Since(start)),
			)

			if output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			return writeAnalysisText(cmd.OutOrStdout(), res)
		},
	}
	src.register(cmd)
	cmd.Flags().StringVar(&mode, "mode", "", "connectivity mode: approx, exact or exhaustive (config default when empty)")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output style: text or json")

	return cmd
}
