package flow

import (
	"errors"
	"fmt"
)

// ErrSourceNotFound is returned when the specified source node is missing.
var ErrSourceNotFound = errors.New("flow: source node not found")

// ErrSinkNotFound is returned when the specified sink node is missing.
var ErrSinkNotFound = errors.New("flow: sink node not found")

// ErrSameEndpoints is returned when source and sink coincide.
var ErrSameEndpoints = errors.New("flow: source equals sink")

// ErrNodeOutOfRange is returned by AddArc for endpoints outside [0, n).
var ErrNodeOutOfRange = errors.New("flow: node out of range")

// ErrInvalidSize is returned by NewNetwork for a non-positive node count.
var ErrInvalidSize = errors.New("flow: node count must be positive")

// EdgeError is returned when an arc has a negative capacity.
type EdgeError struct {
	From, To int
	Cap      int
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on arc %d→%d: %d", e.From, e.To, e.Cap)
}

// FlowOptions configures the max-flow algorithms.
//   - Limit: if > 0, stop as soon as the flow value reaches Limit. The
//     returned value is then min(maxflow, Limit). Answering "are there at
//     least k disjoint paths?" needs only k augmentations.
//   - LevelRebuildInterval: for Dinic, rebuild level graph every N augmentations.
type FlowOptions struct {
	Limit                int
	LevelRebuildInterval int
}

// DefaultOptions returns unlimited flow with no forced level rebuilds.
func DefaultOptions() FlowOptions {
	return FlowOptions{}
}

// reached reports whether a Limit is set and total has met it.
func (o FlowOptions) reached(total int) bool {
	return o.Limit > 0 && total >= o.Limit
}

// remaining returns how much more flow may be pushed under Limit.
func (o FlowOptions) remaining(total int) int {
	if o.Limit <= 0 {
		return infinite
	}

	return o.Limit - total
}
