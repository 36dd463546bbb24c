// SPDX-License-Identifier: MIT
// Package: zagreb/graphio
//
// graph.go — GraphDoc and its conversion to and from core.Graph.
//
// Contract:
//   - FromGraph emits edges sorted with u < v, so equal graphs give equal docs.
//   - ToGraph is all-or-nothing: the first failing edge aborts with its index.
//   - ReadGraphDoc allocates nothing proportional to Vertices, so callers can
//     bound the order before ToGraph commits memory to it.

package graphio

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/zagreb/core"
)

// GraphDoc is the wire form of a simple undirected graph.
type GraphDoc struct {
	Vertices int      `json:"vertices" yaml:"vertices"`
	Edges    [][2]int `json:"edges" yaml:"edges"`
}

// FromGraph snapshots g into a document.
func FromGraph(g *core.Graph) GraphDoc {
	return GraphDoc{Vertices: g.VertexCount(), Edges: g.Edges()}
}

// ToGraph builds a fresh graph from the document.
func (d GraphDoc) ToGraph() (*core.Graph, error) {
	g, err := core.NewGraph(d.Vertices)
	if err != nil {
		return nil, fmt.Errorf("ToGraph: %w", err)
	}
	for i, e := range d.Edges {
		if err = g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("ToGraph: edges[%d]: %w", i, err)
		}
	}

	return g, nil
}

// ReadGraphDoc decodes a GraphDoc from r without building the graph.
func ReadGraphDoc(r io.Reader, f Format) (GraphDoc, error) {
	var doc GraphDoc
	if err := decode(r, &doc, f); err != nil {
		return GraphDoc{}, fmt.Errorf("ReadGraphDoc(%v): %w", f, err)
	}

	return doc, nil
}

// ReadGraph decodes a GraphDoc from r and builds the graph.
func ReadGraph(r io.Reader, f Format) (*core.Graph, error) {
	doc, err := ReadGraphDoc(r, f)
	if err != nil {
		return nil, err
	}

	return doc.ToGraph()
}

// WriteGraph encodes g to w.
func WriteGraph(w io.Writer, g *core.Graph, f Format) error {
	if err := Encode(w, FromGraph(g), f); err != nil {
		return fmt.Errorf("WriteGraph(%v): %w", f, err)
	}

	return nil
}

// ReadGraphFile reads a graph document, choosing the format by extension.
func ReadGraphFile(path string) (*core.Graph, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadGraphFile: %w", err)
	}
	defer file.Close()

	return ReadGraph(file, f)
}
