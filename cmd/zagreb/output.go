// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/zagreb"
)

// Output styles for analyze and report.
const (
	outputText = "text"
	outputJSON = "json"
)

func checkOutput(style string) error {
	switch style {
	case outputText, outputJSON:
		return nil
	default:
		return fmt.Errorf("--output %q: want text or json", style)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeAnalysisText renders an AnalysisResult as aligned key/value rows.
func writeAnalysisText(w io.Writer, r zagreb.AnalysisResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := []struct {
		k string
		v any
	}{
		{"vertices", r.VertexCount},
		{"edges", r.EdgeCount},
		{"degree range", fmt.Sprintf("%d..%d", r.MinDegree, r.MaxDegree)},
		{"zagreb index", r.ZagrebIndex},
		{"connectivity", fmt.Sprintf("%d (%s)", r.Connectivity, r.Mode)},
		{"independence", fmt.Sprintf("≤ %d (greedy)", r.IndependenceNumber)},
		{"upper bound", fmt.Sprintf("%.2f", r.ZagrebUpperBound)},
		{"hamiltonian", verdict(r.IsLikelyHamiltonian, r.HamiltonianBasis)},
		{"traceable", verdict(r.IsLikelyTraceable, r.TraceableBasis)},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%v\n", row.k, row.v)
	}

	return tw.Flush()
}

func verdict(ok bool, basis zagreb.Basis) string {
	word := "unknown"
	if ok {
		word = "yes"
	}

	return fmt.Sprintf("%s (%s)", word, basis)
}
