// Package network turns a validator-network dump into an operational report:
// the Zagreb analysis snapshot, average degree, a k-connectivity ladder,
// the index efficiency against its upper bound, validators with low
// connectivity, single points of failure (cut validators and bridges),
// stake-concentration bottlenecks and recommendations.
//
// The report reads the graph only; all sections are computed from one
// immutable core.Graph and may run concurrently.
package network
