package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/zagreb/bfs"
	"github.com/katalvlaran/zagreb/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid.
// Vertex i*3+j sits at row i, column j.
func ExampleBFS_gridTraversal() {
	g, _ := core.NewGraph(9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				_ = g.AddEdge(i*3+j, i*3+j+1)
			}
			if i+1 < 3 {
				_ = g.AddEdge(i*3+j, (i+1)*3+j)
			}
		}
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Depth[8])
	// Output:
	// [0 1 3 2 4 6 5 7 8]
	// 4
}

// ExampleConnected shows a cut vertex: removing the hub disconnects a star.
func ExampleConnected() {
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(0, 2)
	_ = g.AddEdge(0, 3)

	fmt.Println(bfs.Connected(g, nil))
	fmt.Println(bfs.Connected(g, func(v int) bool { return v == 0 }))
	// Output:
	// true
	// false
}
