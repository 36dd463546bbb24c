// Package graphio converts between core.Graph and its wire documents.
//
// Two document kinds are supported:
//
//   - GraphDoc: {"vertices": n, "edges": [[u, v], ...]}, the exchange form of
//     a single graph. Decoding inserts every edge through core.Graph.AddEdge,
//     so a malformed document fails with the same sentinels as direct
//     insertion (core.ErrVertexOutOfRange, core.ErrSelfLoop,
//     core.ErrDuplicateEdge, core.ErrInvalidSize).
//   - NetworkDump: the validator-network snapshot consumed by the network
//     report: {"validators": [{id, pubkey, vote_account, stake, name}],
//     "connections": [{id, peers}]}.
//
// Both kinds are readable and writable as JSON or YAML (Format). JSON graph
// documents may additionally be checked against GraphDocSchema before
// decoding (ValidateJSON).
package graphio
