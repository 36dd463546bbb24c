// Package dfs defines the result type, vertex states and sentinel errors of
// the cut analysis.
package dfs

import "errors"

// Vertex states during the walk.
const (
	White = iota // not discovered yet
	Gray         // on the recursion stack
	Black        // fully explored
)

// ErrGraphNil is returned when a nil *core.Graph is passed to Cuts.
var ErrGraphNil = errors.New("dfs: graph is nil")

// CutResult lists the single points of failure of a graph.
// Both slices are non-nil and sorted ascending; every bridge has U < V.
type CutResult struct {
	// Vertices are the articulation points.
	Vertices []int
	// Bridges are the edges whose removal disconnects their component.
	Bridges [][2]int
}
