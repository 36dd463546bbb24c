package bfs_test

import (
	"testing"

	"github.com/katalvlaran/zagreb/bfs"
	"github.com/katalvlaran/zagreb/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g, _ := core.NewGraph(N)
	for i := 0; i+1 < N; i++ {
		_ = g.AddEdge(i, i+1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkConnected_Skip measures the induced-subgraph check used by the
// exhaustive connectivity analyzer.
func BenchmarkConnected_Skip(b *testing.B) {
	const N = 2000
	g, _ := core.NewGraph(N)
	for i := 0; i < N; i++ {
		_ = g.AddEdge(i, (i+1)%N)
		_ = g.AddEdge(i, (i+5)%N)
	}
	skip := func(v int) bool { return v%97 == 0 }

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bfs.Connected(g, skip)
	}
}
