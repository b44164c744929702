// Package vg is the user-facing facade over package visibility.
//
// A Graph owns one validated configuration and, after Build, one immutable
// visibility.BuildResult. Every derived view (edge list, degree sequence,
// degree counts/distribution, adjacency matrix, node positions, summary) is
// computed from that result on demand; views requested before a successful
// Build return ErrNotBuilt. A failed Build leaves the previous state intact.
//
// Example:
//
//	g, _ := vg.New(visibility.Natural(), visibility.WithWeight(visibility.Distance))
//	_ = g.Build([]float64{3, 4, 2, 1}, nil, false)
//	edges, _ := g.Edges()
//	fmt.Println(g.Summary())
package vg
