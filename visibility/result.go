// SPDX-License-Identifier: MIT
// Package: visgraph/visibility
//
// result.go — Edge and BuildResult, the immutable output of Build.

package visibility

// Edge is one accepted visibility pair, oriented Source -> Target.
// Undirected edges have Source < Target. Weight is meaningful only when the
// build was weighted (0 otherwise).
type Edge struct {
	Source int
	Target int
	Weight float64
}

// key returns the endpoints as (min, max).
func (e Edge) key() [2]int {
	if e.Source < e.Target {
		return [2]int{e.Source, e.Target}
	}

	return [2]int{e.Target, e.Source}
}

// BuildResult is the output of Build. It must be treated as read-only.
type BuildResult struct {
	// Edges sorted by (min endpoint, max endpoint); nil for degree-only builds.
	Edges []Edge
	// DegreesIn counts edges whose Target is the node.
	DegreesIn []int
	// DegreesOut counts edges whose Source is the node.
	DegreesOut []int
	// OnlyDegrees marks a degree-only build.
	OnlyDegrees bool
	// Weighted reports whether Edge.Weight carries a value.
	Weighted bool
	// Directed reports whether edges carry an orientation.
	Directed bool
}

// NumVertices returns the number of nodes (series length).
func (r *BuildResult) NumVertices() int { return len(r.DegreesIn) }

// Degrees returns in + out degree per node (a fresh slice).
// Complexity: O(n).
func (r *BuildResult) Degrees() []int {
	d := make([]int, len(r.DegreesIn))
	for i := range d {
		d[i] = r.DegreesIn[i] + r.DegreesOut[i]
	}

	return d
}

// EdgeCount returns the number of edges; for degree-only builds it is derived
// from the degree sum.
func (r *BuildResult) EdgeCount() int {
	if !r.OnlyDegrees {
		return len(r.Edges)
	}
	total := 0
	for _, d := range r.DegreesOut {
		total += d
	}

	return total
}
