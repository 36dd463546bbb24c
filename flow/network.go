package flow

import (
	"fmt"
	"math"
)

// infinite is the capacity used for "unbounded" arcs.
const infinite = math.MaxInt32

// arc is one direction of a residual pair. Arcs are stored in pairs so that
// the reverse of arc i is always i^1.
type arc struct {
	to   int
	cap  int // residual capacity
	orig int // capacity at construction, restored by Reset
}

// Network is a directed, integer-capacity flow network on nodes 0..n-1.
// It is reusable: Reset restores every arc to its original capacity, so
// many source/sink pairs can be solved on one construction.
type Network struct {
	n    int
	arcs []arc
	out  [][]int // out[u] = indices into arcs leaving u
}

// NewNetwork returns an empty network with n nodes.
func NewNetwork(n int) (*Network, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewNetwork: n=%d: %w", n, ErrInvalidSize)
	}

	return &Network{n: n, out: make([][]int, n)}, nil
}

// Len returns the node count.
func (nw *Network) Len() int { return nw.n }

// AddArc adds u→v with the given capacity (and a zero-capacity reverse arc).
// A negative capacity is rejected with EdgeError. Returns the forward arc id.
func (nw *Network) AddArc(u, v, capacity int) (int, error) {
	if u < 0 || u >= nw.n || v < 0 || v >= nw.n {
		return -1, fmt.Errorf("AddArc(%d, %d): %w", u, v, ErrNodeOutOfRange)
	}
	if capacity < 0 {
		return -1, EdgeError{From: u, To: v, Cap: capacity}
	}
	id := len(nw.arcs)
	nw.arcs = append(nw.arcs, arc{to: v, cap: capacity, orig: capacity}, arc{to: u})
	nw.out[u] = append(nw.out[u], id)
	nw.out[v] = append(nw.out[v], id+1)

	return id, nil
}

// Flow returns the flow currently carried by forward arc id.
func (nw *Network) Flow(id int) int {
	return nw.arcs[id].orig - nw.arcs[id].cap
}

// Reset restores every arc to its construction-time capacity.
func (nw *Network) Reset() {
	for i := range nw.arcs {
		nw.arcs[i].cap = nw.arcs[i].orig
	}
}

// validate checks the source/sink pair shared by all algorithms.
func (nw *Network) validate(source, sink int) error {
	if source < 0 || source >= nw.n {
		return ErrSourceNotFound
	}
	if sink < 0 || sink >= nw.n {
		return ErrSinkNotFound
	}
	if source == sink {
		return ErrSameEndpoints
	}

	return nil
}
