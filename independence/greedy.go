// Package independence approximates the independence number α(G) of a
// core.Graph.
//
// Greedy repeatedly takes the remaining vertex of smallest current degree
// (ties broken by the lowest index), adds it to the set, and deletes it
// together with its neighbors. The result is always an independent, maximal
// set, so its size is a lower bound on α(G); it is not exact in general.
package independence

import (
	"sort"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/zagreb/core"
)

// candidate orders remaining vertices by (current degree, index).
type candidate struct {
	degree int
	v      int
}

func compareCandidates(a, b interface{}) int {
	x, y := a.(candidate), b.(candidate)
	switch {
	case x.degree != y.degree:
		return x.degree - y.degree
	default:
		return x.v - y.v
	}
}

// Greedy returns the greedily chosen independent set, ascending.
//
// Complexity: O((V + E) log V); each degree change is one tree update.
func Greedy(g *core.Graph) []int {
	n := g.VertexCount()
	adj := make([][]int, n)
	degree := g.DegreeSequence()
	alive := make([]bool, n)

	pool := redblacktree.Tree{Comparator: compareCandidates}
	for v := 0; v < n; v++ {
		adj[v], _ = g.Neighbors(v)
		alive[v] = true
		pool.Put(candidate{degree: degree[v], v: v}, nil)
	}

	var chosen []int
	var dropped []int
	for !pool.Empty() {
		pick := pool.Left().Key.(candidate).v
		chosen = append(chosen, pick)

		// delete pick and its closed neighborhood
		dropped = append(dropped[:0], pick)
		for _, w := range adj[pick] {
			if alive[w] {
				dropped = append(dropped, w)
			}
		}
		for _, w := range dropped {
			alive[w] = false
			pool.Remove(candidate{degree: degree[w], v: w})
		}

		// survivors adjacent to a deleted vertex lose one degree per edge
		for _, w := range dropped {
			for _, x := range adj[w] {
				if !alive[x] {
					continue
				}
				pool.Remove(candidate{degree: degree[x], v: x})
				degree[x]--
				pool.Put(candidate{degree: degree[x], v: x}, nil)
			}
		}
	}
	sort.Ints(chosen)

	return chosen
}

// Approx returns the size of Greedy(g), a lower bound on α(G).
func Approx(g *core.Graph) int {
	return len(Greedy(g))
}
