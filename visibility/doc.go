// Package visibility turns a numeric time series into a visibility graph.
//
// Every sample of the series becomes a node; an edge joins two samples when
// they can "see" each other over the bars drawn in between. Three families of
// visibility are supported:
//
//   - Natural:    the straight segment between the two bar tops is not
//     touched by any intervening bar.
//   - Horizontal: a horizontal line at the lower of the two heights is not
//     touched by any intervening bar.
//   - Circular:   a circular arc through the two bar tops, bulging upward
//     with central angle 2·atan(1/alpha), is not touched.
//
// On top of the family the Config carries:
//
//   - Direction:        undirected, left_to_right or top_to_bottom.
//   - WeightKind:       eleven weightings (distance, slope, angle, ...).
//   - Min/Max weight:   strict open-interval edge filtering.
//   - Penetrable limit: tolerate up to m obstructing bars per edge.
//   - Dual perspective: union with the graph of the reflected series y -> -y.
//
// Build is the single entry point; it validates the Config and the Series,
// runs the sweep engine and returns an immutable BuildResult with edges
// (sorted by endpoints) and in/out degree counts.
//
// Complexity (n samples, m penetrable limit):
//
//	Natural / Horizontal, m = 0:  divide and conquer around the range
//	maximum, O(n log² n) on noise and on monotone or linear series,
//	O(n²) worst case (every pair visible, e.g. concave runs).
//	Natural / Horizontal, m > 0:  one sweep per origin; each candidate costs
//	O(m) and each end-of-sweep check O(m + log² n). Roughly
//	O(n·m·(m + log² n)) on noise and monotone series, O(n²·m) worst case.
//	Circular:                     arcs pass above the pivot, so every pair of
//	a range is counted directly with an early exit after m+1 obstructions.
//	Close to O(n³) on noise: seconds at n = 2000.
//
// The Natural engine keeps block hulls, O(n log n) memory in the worst case.
//
// Example:
//
//	s, _ := visibility.NewSeries([]float64{3, 4, 2, 1}, nil)
//	cfg, _ := visibility.NewConfig(visibility.Natural(),
//		visibility.WithDirection(visibility.LeftToRight))
//	res, _ := visibility.Build(s, cfg, false)
//	fmt.Println(res.Edges) // [{0 1 0} {1 2 0} {1 3 0} {2 3 0}]
package visibility
