// SPDX-License-Identifier: MIT

package zagreb_test

import (
	"fmt"

	"github.com/katalvlaran/zagreb"
	"github.com/katalvlaran/zagreb/builder"
	"github.com/katalvlaran/zagreb/connectivity"
)

// ExampleAnalyze runs the exact analysis on the Petersen graph, the classic
// 3-connected graph that has no Hamiltonian cycle.
func ExampleAnalyze() {
	g, err := builder.NewPetersen()
	if err != nil {
		panic(err)
	}
	res := zagreb.Analyze(g, zagreb.WithMode(connectivity.ModeExact))
	fmt.Println("Z1:", res.ZagrebIndex)
	fmt.Println("κ:", res.Connectivity)
	fmt.Println("hamiltonian:", res.IsLikelyHamiltonian, res.HamiltonianBasis)
	fmt.Println("β ≤ 4:", res.IndependenceNumber <= 4)
	fmt.Printf("upper bound: %.2f\n", res.ZagrebUpperBound)
	// Output:
	// Z1: 90
	// κ: 3
	// hamiltonian: false below-threshold
	// β ≤ 4: true
	// upper bound: 117.97
}

// ExampleLowConnectivityVertices flags the leaves of a star.
func ExampleLowConnectivityVertices() {
	g, _ := builder.NewStar(4)
	fmt.Println(zagreb.LowConnectivityVertices(g))
	// Output: [1 2 3]
}
