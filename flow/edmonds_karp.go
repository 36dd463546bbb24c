package flow

// EdmondsKarp computes the maximum flow from source→sink using the
// Edmonds–Karp algorithm (BFS for shortest augmenting paths). Like Dinic it
// leaves residual capacities in nw and honors opts.Limit.
//
// It serves as the reference solver Dinic is cross-checked against.
//
// Complexity: O(V · E²)
// Memory:     O(V)
func EdmondsKarp(nw *Network, source, sink int, opts FlowOptions) (maxFlow int, err error) {
	if err = nw.validate(source, sink); err != nil {
		return 0, err
	}

	via := make([]int, nw.n) // arc id used to reach each node, -1 if unseen
	queue := make([]int, 0, nw.n)

	for !opts.reached(maxFlow) {
		for i := range via {
			via[i] = -1
		}
		queue = append(queue[:0], source)
		for i := 0; i < len(queue) && via[sink] < 0; i++ {
			u := queue[i]
			for _, id := range nw.out[u] {
				a := nw.arcs[id]
				if a.cap > 0 && a.to != source && via[a.to] < 0 {
					via[a.to] = id
					queue = append(queue, a.to)
				}
			}
		}
		if via[sink] < 0 {
			break
		}

		// bottleneck along the discovered path
		bottle := opts.remaining(maxFlow)
		for v := sink; v != source; v = nw.arcs[via[v]^1].to {
			if c := nw.arcs[via[v]].cap; c < bottle {
				bottle = c
			}
		}
		for v := sink; v != source; v = nw.arcs[via[v]^1].to {
			nw.arcs[via[v]].cap -= bottle
			nw.arcs[via[v]^1].cap += bottle
		}
		maxFlow += bottle
	}

	return maxFlow, nil
}
