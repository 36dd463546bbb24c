// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/zagreb/builder"
	"github.com/katalvlaran/zagreb/graphio"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		ff     familyFlags
		format string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "generate <family>",
		Short: "Generate a graph family as a JSON or YAML document",
		Long:  "generate writes a graph document. Run `zagreb families` for the list of names.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := ff.build(cmd, args[0])
			if err != nil {
				return err
			}
			a.log.Debug("generated",
				zap.String("family", args[0]),
				zap.Int("vertices", g.VertexCount()),
				zap.Int("edges", g.EdgeCount()),
			)

			if out != "" {
				f, err := graphio.FormatFromPath(out)
				if err != nil {
					return err
				}
				file, err := os.Create(out)
				if err != nil {
					return err
				}
				if err = graphio.WriteGraph(file, g, f); err != nil {
					file.Close()
					return err
				}
				return file.Close()
			}

			f, err := graphio.ParseFormat(format)
			if err != nil {
				return err
			}
			return graphio.WriteGraph(cmd.OutOrStdout(), g, f)
		},
	}
	ff.register(cmd)
	cmd.Flags().StringVar(&format, "format", "json", "stdout format: json or yaml")
	cmd.Flags().StringVarP(&out, "out", "O", "", "write to this file; format follows the extension")

	return cmd
}

func newFamiliesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "List generator family names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, f := range builder.Families() {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
}
