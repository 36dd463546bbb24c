// SPDX-License-Identifier: MIT
// Package: zagreb/network
//
// text.go — human-readable rendering of a Report.

package network

import (
	"bufio"
	"fmt"
	"io"
)

// WriteText renders r as the plain-text report printed by the CLI.
func (r Report) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	a := r.Analysis

	fmt.Fprintln(bw, "--- Network Analysis ---")
	fmt.Fprintf(bw, "Validator count: %d\n", a.VertexCount)
	fmt.Fprintf(bw, "Connection count: %d\n", a.EdgeCount)
	fmt.Fprintf(bw, "First Zagreb index: %d\n", a.ZagrebIndex)
	fmt.Fprintf(bw, "Min connections: %d\n", a.MinDegree)
	fmt.Fprintf(bw, "Max connections: %d\n", a.MaxDegree)
	fmt.Fprintf(bw, "Average connections: %.2f\n", r.AverageDegree)
	fmt.Fprintf(bw, "Connectivity mode: %s\n", a.Mode)

	switch r.Traversal {
	case TraversalHamiltonian:
		fmt.Fprintln(bw, "\nThe network is likely Hamiltonian (efficient leader rotation is possible)")
	case TraversalTraceable:
		fmt.Fprintln(bw, "\nThe network is likely traceable but not Hamiltonian (rotation may need intermediate hops)")
	default:
		fmt.Fprintln(bw, "\nThe network may not be efficiently traversable")
	}

	for _, s := range r.Ladder {
		if s.Connected {
			fmt.Fprintf(bw, "Network is at least %d-connected\n", s.K)
		} else {
			fmt.Fprintf(bw, "Network is not %d-connected\n", s.K)
		}
	}

	if len(r.CutVertices) > 0 {
		fmt.Fprintln(bw, "\nSingle points of failure (cut validators):")
		for _, v := range r.CutVertices {
			fmt.Fprintf(bw, "- %s (%s) - %d connections\n", nameOr(v.Name), v.Pubkey, v.Degree)
		}
	}
	if len(r.Bridges) > 0 {
		fmt.Fprintf(bw, "Critical links (bridges): %d\n", len(r.Bridges))
	}

	fmt.Fprintf(bw, "\nZagreb index upper bound: %.2f\n", a.ZagrebUpperBound)
	fmt.Fprintf(bw, "Efficiency ratio: %.2f%%\n", 100*r.Efficiency)

	fmt.Fprintln(bw, "\n--- Recommendations ---")
	fmt.Fprintln(bw, "Validators that should increase connections:")
	for _, v := range r.LowConnectivity {
		fmt.Fprintf(bw, "- %s (%s) - %d connections\n", nameOr(v.Name), v.Pubkey, v.Degree)
	}
	if len(r.Bottlenecks) > 0 {
		fmt.Fprintln(bw, "\nPotential bottlenecks (high stake, low connectivity):")
		for _, s := range r.Bottlenecks {
			fmt.Fprintf(bw, "- %s (%s) - score %.2f\n", nameOr(s.Name), s.Pubkey, s.Score)
		}
	}
	fmt.Fprintln(bw, "\nNetwork structure recommendations:")
	for _, rec := range r.Recommendations {
		fmt.Fprintf(bw, "- %s\n", rec)
	}

	return bw.Flush()
}

func nameOr(name string) string {
	if name == "" {
		return "Unknown"
	}

	return name
}
