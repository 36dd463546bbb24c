package flow

// Dinic computes the maximum flow from `source` to `sink` in nw using
// Dinic’s algorithm (level graph + blocking flows). Residual capacities are
// left in nw; call Reset before reusing it for another pair.
//
// It returns:
//   - maxFlow : the total flow value, capped at opts.Limit when set
//   - err     : ErrSourceNotFound, ErrSinkNotFound or ErrSameEndpoints
//
// Steps:
//  1. Validate that `source` and `sink` are distinct nodes of nw (O(1)).
//  2. Repeat until no more augmenting paths or the limit is met:
//     a. BFS to build the level graph over arcs with residual capacity (O(V + E)).
//     b. If sink unreachable, break.
//     c. DFS-based blocking flow pushes until none remains,
//     optionally rebuilding level graph every LevelRebuildInterval augmentations.
//
// Complexity:
//
//	Time:   O(V² · E) in general; O(E · √V) on unit-capacity networks,
//	        which is what vertex-split connectivity networks are.
//	Memory: O(V) for level and iterator slices.
func Dinic(nw *Network, source, sink int, opts FlowOptions) (maxFlow int, err error) {
	if err = nw.validate(source, sink); err != nil {
		return 0, err
	}

	level := make([]int, nw.n)
	iter := make([]int, nw.n)
	queue := make([]int, 0, nw.n)
	augmentCount := 0

	for !opts.reached(maxFlow) {
		// level graph
		for i := range level {
			level[i] = -1
		}
		level[source] = 0
		queue = append(queue[:0], source)
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for _, id := range nw.out[u] {
				a := nw.arcs[id]
				if a.cap > 0 && level[a.to] < 0 {
					level[a.to] = level[u] + 1
					queue = append(queue, a.to)
				}
			}
		}
		if level[sink] < 0 {
			break
		}

		// blocking flow
		for i := range iter {
			iter[i] = 0
		}
		for !opts.reached(maxFlow) {
			pushed := nw.dinicPush(level, iter, source, sink, opts.remaining(maxFlow))
			if pushed == 0 {
				break
			}
			maxFlow += pushed
			augmentCount++
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return maxFlow, nil
}

// dinicPush recursively pushes flow along the level graph, updating
// residual capacities in place, and returns the amount actually sent.
func (nw *Network) dinicPush(level, iter []int, u, sink, available int) int {
	if u == sink {
		return available
	}
	for ; iter[u] < len(nw.out[u]); iter[u]++ {
		id := nw.out[u][iter[u]]
		a := nw.arcs[id]
		if a.cap <= 0 || level[a.to] != level[u]+1 {
			continue
		}
		send := available
		if a.cap < send {
			send = a.cap
		}
		if pushed := nw.dinicPush(level, iter, a.to, sink, send); pushed > 0 {
			nw.arcs[id].cap -= pushed
			nw.arcs[id^1].cap += pushed

			return pushed
		}
	}

	return 0
}
