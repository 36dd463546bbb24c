// SPDX-License-Identifier: MIT
// Package: zagreb/graphio
//
// network.go — NetworkDump, the validator-network snapshot.
//
// Contract:
//   - Validator ids are dense: validators[i].id == i after sorting by id.
//   - A connection {id, peers} contributes edge {id, p} for every peer p;
//     self references and repeats (both sides listing each other) are ignored.
//   - A peer outside 0..n-1 is ErrInvalidDocument.

package graphio

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/katalvlaran/zagreb/core"
)

// Validator describes one network participant.
type Validator struct {
	ID          int    `json:"id" yaml:"id"`
	Pubkey      string `json:"pubkey" yaml:"pubkey"`
	VoteAccount string `json:"vote_account,omitempty" yaml:"vote_account,omitempty"`
	Stake       uint64 `json:"stake" yaml:"stake"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Connection lists the peers a validator is linked to.
type Connection struct {
	ID    int   `json:"id" yaml:"id"`
	Peers []int `json:"peers" yaml:"peers"`
}

// NetworkDump is the persisted form of a validator network.
type NetworkDump struct {
	Validators  []Validator  `json:"validators" yaml:"validators"`
	Connections []Connection `json:"connections" yaml:"connections"`
}

// ToGraph validates the dump and builds its graph on len(Validators) vertices.
func (d NetworkDump) ToGraph() (*core.Graph, error) {
	n := len(d.Validators)
	ids := make([]int, n)
	for i, v := range d.Validators {
		ids[i] = v.ID
	}
	sort.Ints(ids)
	for i, id := range ids {
		if id != i {
			return nil, fmt.Errorf("NetworkDump: validator ids must be 0..%d, found %d: %w",
				n-1, id, ErrInvalidDocument)
		}
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("NetworkDump: %w", err)
	}
	for _, c := range d.Connections {
		if c.ID < 0 || c.ID >= n {
			return nil, fmt.Errorf("NetworkDump: connection id %d: %w", c.ID, ErrInvalidDocument)
		}
		for _, p := range c.Peers {
			if p < 0 || p >= n {
				return nil, fmt.Errorf("NetworkDump: connection %d: peer %d: %w", c.ID, p, ErrInvalidDocument)
			}
			if p == c.ID || g.HasEdge(c.ID, p) {
				continue
			}
			if err = g.AddEdge(c.ID, p); err != nil {
				return nil, fmt.Errorf("NetworkDump: %w", err)
			}
		}
	}

	return g, nil
}

// ByID returns the validators indexed by id. Call after ToGraph succeeded.
func (d NetworkDump) ByID() []Validator {
	out := make([]Validator, len(d.Validators))
	for _, v := range d.Validators {
		out[v.ID] = v
	}

	return out
}

// DumpFromGraph builds a dump from g and validator metadata. Connections list
// each vertex with its full sorted neighborhood; validators may be nil, in
// which case placeholder entries are generated.
func DumpFromGraph(g *core.Graph, validators []Validator) (NetworkDump, error) {
	n := g.VertexCount()
	if validators == nil {
		validators = make([]Validator, n)
		for i := range validators {
			validators[i] = Validator{ID: i, Pubkey: fmt.Sprintf("validator-%d", i)}
		}
	}
	if len(validators) != n {
		return NetworkDump{}, fmt.Errorf("DumpFromGraph: %d validators for %d vertices: %w",
			len(validators), n, ErrInvalidDocument)
	}

	conns := make([]Connection, n)
	for v := 0; v < n; v++ {
		peers, err := g.Neighbors(v)
		if err != nil {
			return NetworkDump{}, fmt.Errorf("DumpFromGraph: %w", err)
		}
		conns[v] = Connection{ID: v, Peers: peers}
	}

	return NetworkDump{Validators: validators, Connections: conns}, nil
}

// ReadDump decodes a NetworkDump from r.
func ReadDump(r io.Reader, f Format) (NetworkDump, error) {
	var d NetworkDump
	if err := decode(r, &d, f); err != nil {
		return NetworkDump{}, fmt.Errorf("ReadDump(%v): %w", f, err)
	}

	return d, nil
}

// WriteDump encodes d to w.
func WriteDump(w io.Writer, d NetworkDump, f Format) error {
	if err := Encode(w, d, f); err != nil {
		return fmt.Errorf("WriteDump(%v): %w", f, err)
	}

	return nil
}

// ReadDumpFile reads a dump, choosing the format by extension.
func ReadDumpFile(path string) (NetworkDump, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return NetworkDump{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		return NetworkDump{}, fmt.Errorf("ReadDumpFile: %w", err)
	}
	defer file.Close()

	return ReadDump(file, f)
}

// WriteDumpFile writes d to path, choosing the format by extension.
func WriteDumpFile(path string, d NetworkDump) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteDumpFile: %w", err)
	}
	if err = WriteDump(file, d, f); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}
