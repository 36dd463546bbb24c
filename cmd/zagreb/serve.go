// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/zagreb/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis API over HTTP until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			a.log.Info("starting",
				zap.String("addr", a.cfg.Server.Addr),
				zap.Stringer("mode", a.cfg.Analysis.Mode),
				zap.Float64("rate_qps", a.cfg.Server.RateQPS),
			)

			return server.New(a.cfg, a.log).Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address override")

	return cmd
}
