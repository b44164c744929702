// SPDX-License-Identifier: MIT
// Package: visgraph/visibility
//
// accumulator.go — turns accepted pairs into oriented, weighted, filtered
// edges and in/out degree counts.

package visibility

import (
	"cmp"
	"slices"
)

// accumulator collects the output of one engine pass.
type accumulator struct {
	xs, ys      []float64
	cfg         Config
	onlyDegrees bool
	needWeight  bool
	sign        float64
	edges       []Edge
	in, out     []int
}

// newAccumulator prepares buffers for a series of length s.Len().
// reflected marks the mirrored pass of dual perspective: weights that change
// sign under y -> -y are flipped back to the orientation of the input series.
// Degree-only accumulators never allocate the edge buffer; they evaluate
// weights only when a min/max filter needs them.
func newAccumulator(s Series, cfg Config, onlyDegrees, reflected bool) *accumulator {
	n := s.Len()
	acc := &accumulator{
		xs:          s.xs,
		ys:          s.ys,
		cfg:         cfg,
		onlyDegrees: onlyDegrees,
		needWeight:  cfg.weight.IsWeighted() && (!onlyDegrees || cfg.hasFilter()),
		sign:        1,
		in:          make([]int, n),
		out:         make([]int, n),
	}
	if reflected {
		acc.sign = -1
	}
	if !onlyDegrees {
		acc.edges = make([]Edge, 0, n)
	}

	return acc
}

// add records the pair (i, j), i < j, with pen tolerated obstructions.
// Complexity: O(1) amortized.
func (acc *accumulator) add(i, j, pen int) {
	src, dst := i, j
	if acc.cfg.direction == TopToBottom && acc.ys[j] > acc.ys[i] {
		src, dst = j, i
	}

	var w float64
	if acc.needWeight {
		w = Weight(acc.cfg.weight,
			Point{acc.xs[src], acc.ys[src]},
			Point{acc.xs[dst], acc.ys[dst]}, pen)
		if acc.cfg.weight.flipsUnderReflection() {
			w *= acc.sign
		}
		if !acc.cfg.keep(w) {
			return
		}
	}

	acc.out[src]++
	acc.in[dst]++
	if !acc.onlyDegrees {
		acc.edges = append(acc.edges, Edge{Source: src, Target: dst, Weight: w})
	}
}

// absorb appends the edges of other, skipping pairs already present when
// dedup is set, and counts the degrees of every appended edge.
func (acc *accumulator) absorb(other *accumulator, dedup bool) {
	var seen map[[2]int]struct{}
	if dedup {
		seen = make(map[[2]int]struct{}, len(acc.edges))
		for _, e := range acc.edges {
			seen[e.key()] = struct{}{}
		}
	}
	for _, e := range other.edges {
		if dedup {
			if _, dup := seen[e.key()]; dup {
				continue
			}
		}
		acc.edges = append(acc.edges, e)
		acc.out[e.Source]++
		acc.in[e.Target]++
	}
}

// result freezes the accumulator into a BuildResult with sorted edges.
func (acc *accumulator) result() *BuildResult {
	res := &BuildResult{
		DegreesIn:   acc.in,
		DegreesOut:  acc.out,
		OnlyDegrees: acc.onlyDegrees,
		Weighted:    acc.cfg.weight.IsWeighted(),
		Directed:    acc.cfg.direction.IsDirected(),
	}
	if !acc.onlyDegrees {
		slices.SortFunc(acc.edges, compareEdges)
		res.Edges = acc.edges
	}

	return res
}

// compareEdges orders edges by (min endpoint, max endpoint).
func compareEdges(a, b Edge) int {
	ka, kb := a.key(), b.key()
	if c := cmp.Compare(ka[0], kb[0]); c != 0 {
		return c
	}

	return cmp.Compare(ka[1], kb[1])
}
