package vg_test

import (
	"fmt"

	"github.com/katalvlaran/visgraph/vg"
	"github.com/katalvlaran/visgraph/visibility"
)

// ExampleGraph builds a horizontal visibility graph and prints its summary.
func ExampleGraph() {
	g, err := vg.New(visibility.Horizontal())
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := g.Build([]float64{3, 4, 2, 1}, nil, false); err != nil {
		fmt.Println(err)
		return
	}

	edges, _ := g.EdgesUnweighted()
	fmt.Println(edges)
	sum, _ := g.Summary()
	fmt.Print(sum)
	// Output:
	// [[0 1] [1 2] [2 3]]
	//                 Visibility Graph
	// ================================================
	// General Type:                         horizontal
	// Directed:                             undirected
	// Weighted:                             unweighted
	// Parametric Min. Weight:                       --
	// Parametric Max. Weight:                       --
	// Penetrable Limit:                              0
	// Dual Perspective:                          false
	// ------------------------------------------------
	// Time Series Length:                            4
	// No. Vertices:                                  4
	// No. Edges:                                     3
	// ================================================
}
