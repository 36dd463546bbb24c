// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/zagreb/internal/config"
	"github.com/katalvlaran/zagreb/internal/logging"
)

// app is the state resolved by the root command before any subcommand runs.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "zagreb",
		Short: "First Zagreb Index Hamiltonicity and traceability analysis",
		Long: `zagreb evaluates sufficient conditions for Hamiltonian cycles and paths:
complete graphs, cycles, paths, Dirac's degree bounds and First Zagreb Index
thresholds parameterized by vertex connectivity.

A positive verdict is a guarantee. A negative verdict means "unknown".`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.setup(cmd) },
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level override: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format override: json or console")

	root.AddCommand(
		newAnalyzeCmd(a),
		newGenerateCmd(a),
		newReportCmd(a),
		newServeCmd(a),
		newFamiliesCmd(),
	)

	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log.With(zap.String("cmd", cmd.Name()))

	return nil
}
