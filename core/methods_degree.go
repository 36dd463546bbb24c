// File: methods_degree.go
// Role: Degree statistics and the First Zagreb Index, plus the structural
//       predicates (complete, cycle, path, regular) the classifier uses as
//       known-family shortcuts.
// Complexity:
//   - FirstZagreb/MinDegree/MaxDegree/IsRegular/IsComplete: O(V).
//   - IsCycle/IsPath/Bipartition: O(V + E) (they include a reachability sweep).

package core

// FirstZagreb returns Z1 = Σ deg(v)².
func (g *Graph) FirstZagreb() int {
	z := 0
	for v := range g.adj {
		d := len(g.adj[v])
		z += d * d
	}

	return z
}

// MinDegree returns δ, the smallest vertex degree.
func (g *Graph) MinDegree() int {
	m := len(g.adj[0])
	for v := 1; v < g.n; v++ {
		if d := len(g.adj[v]); d < m {
			m = d
		}
	}

	return m
}

// MaxDegree returns Δ, the largest vertex degree.
func (g *Graph) MaxDegree() int {
	m := 0
	for v := range g.adj {
		if d := len(g.adj[v]); d > m {
			m = d
		}
	}

	return m
}

// IsRegular reports whether every vertex has the same degree.
func (g *Graph) IsRegular() bool {
	return g.MinDegree() == g.MaxDegree()
}

// IsComplete reports whether every pair of distinct vertices is adjacent.
// The single-vertex graph is complete.
func (g *Graph) IsComplete() bool {
	return g.edges == g.n*(g.n-1)/2
}

// IsCycle reports whether g is a single cycle through all vertices:
// connected, 2-regular, n >= 3.
func (g *Graph) IsCycle() bool {
	if g.n < 3 || g.edges != g.n {
		return false
	}
	for v := range g.adj {
		if len(g.adj[v]) != 2 {
			return false
		}
	}

	return g.reachableFrom(0) == g.n
}

// IsPath reports whether g is a simple path through all vertices:
// connected with n-1 edges and every degree at most 2.
// The single-vertex graph counts as a (trivial) path.
func (g *Graph) IsPath() bool {
	if g.edges != g.n-1 {
		return false
	}
	for v := range g.adj {
		if len(g.adj[v]) > 2 {
			return false
		}
	}

	return g.reachableFrom(0) == g.n
}

// Bipartition 2-colours a connected graph and returns the sizes of the two
// colour classes, smaller first. ok is false when g is disconnected or has
// an odd cycle; the sizes are then meaningless.
func (g *Graph) Bipartition() (small, large int, ok bool) {
	colour := make([]int8, g.n)
	colour[0] = 1
	stack := []int{0}
	seen, ones := 1, 1
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for w := range g.adj[v] {
			switch colour[w] {
			case 0:
				colour[w] = -colour[v]
				if colour[w] == 1 {
					ones++
				}
				seen++
				stack = append(stack, w)
			case colour[v]:
				return 0, 0, false
			}
		}
	}
	if seen != g.n {
		return 0, 0, false
	}
	other := g.n - ones
	if ones > other {
		return other, ones, true
	}

	return ones, other, true
}

// reachableFrom counts vertices reachable from s by an iterative stack sweep.
// The bfs package offers the full traversal; this stays local to avoid an
// import cycle.
func (g *Graph) reachableFrom(s int) int {
	seen := make([]bool, g.n)
	stack := []int{s}
	seen[s] = true
	count := 0
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		for w := range g.adj[v] {
			if !seen[w] {
				seen[w] = true
				stack = append(stack, w)
			}
		}
	}

	return count
}
