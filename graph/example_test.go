// SPDX-License-Identifier: MIT

package graph_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2025/graph"
)

// ExampleDigraph_CountPaths counts walks through a diamond, with and
// without a required waypoint.
func ExampleDigraph_CountPaths() {
	g := graph.New[string]()
	g.AddEdge("in", "left")
	g.AddEdge("in", "right")
	g.AddEdge("left", "out")
	g.AddEdge("right", "out")

	all, _ := g.CountPaths("in", "out")
	viaLeft, _ := g.CountPaths("in", "out", "left")
	fmt.Println(all, viaLeft)
	// Output: 2 1
}
