// SPDX-License-Identifier: MIT

package graphio_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/zagreb/builder"
	"github.com/katalvlaran/zagreb/graphio"
)

// ExampleReadGraph decodes a triangle from JSON.
func ExampleReadGraph() {
	g, err := graphio.ReadGraph(strings.NewReader(`{"vertices":3,"edges":[[0,1],[1,2],[2,0]]}`), graphio.FormatJSON)
	if err != nil {
		panic(err)
	}
	fmt.Println(g.EdgeCount(), g.FirstZagreb())
	// Output: 3 12
}

// ExampleWriteGraph encodes a single edge as JSON.
func ExampleWriteGraph() {
	g, _ := builder.NewPath(2)
	_ = graphio.WriteGraph(os.Stdout, g, graphio.FormatJSON)
	// Output:
	// {
	//   "vertices": 2,
	//   "edges": [
	//     [
	//       0,
	//       1
	//     ]
	//   ]
	// }
}
