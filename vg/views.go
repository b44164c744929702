// SPDX-License-Identifier: MIT
// Package: visgraph/vg
//
// views.go — degree statistics, adjacency matrix and node positions.

package vg

import (
	"math"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/visgraph/matrix"
	"github.com/katalvlaran/visgraph/visibility"
)

// DegreeCounts returns the distinct degree values ks (ascending) and, for
// each, the number of nodes with that degree. Degrees not listed have count 0.
// Complexity: O(n log n).
func (g *Graph) DegreeCounts() (ks, counts []int, err error) {
	d, err := g.cachedDegrees()
	if err != nil {
		return nil, nil, err
	}

	sorted := append([]int(nil), d...)
	sort.Ints(sorted)
	for i, k := range sorted {
		if i == 0 || k != sorted[i-1] {
			ks = append(ks, k)
			counts = append(counts, 0)
		}
		counts[len(counts)-1]++
	}

	return ks, counts, nil
}

// DegreeDistribution returns the distinct degree values ks and the empirical
// probability of each (count / number of vertices).
func (g *Graph) DegreeDistribution() (ks []int, ps []float64, err error) {
	ks, counts, err := g.DegreeCounts()
	if err != nil {
		return nil, nil, err
	}
	n, err := g.NVertices()
	if err != nil {
		return nil, nil, err
	}

	ps = make([]float64, len(counts))
	for i, c := range counts {
		ps[i] = float64(c) / float64(n)
	}

	return ks, ps, nil
}

// Triangle selects which half of an undirected adjacency matrix is filled.
type Triangle uint8

const (
	// TriangleBoth fills (i, j) and (j, i).
	TriangleBoth Triangle = iota
	// TriangleUpper fills (min, max) only.
	TriangleUpper
	// TriangleLower fills (max, min) only.
	TriangleLower
)

var triangleTokens = [...]string{TriangleBoth: "both", TriangleUpper: "upper", TriangleLower: "lower"}

// String returns the token of the triangle mode.
func (t Triangle) String() string {
	if int(t) < len(triangleTokens) {
		return triangleTokens[t]
	}

	return "unknown"
}

// ParseTriangle maps "both", "upper" or "lower" to a Triangle.
func ParseTriangle(name string) (Triangle, error) {
	token := strings.ToLower(strings.TrimSpace(name))
	for t, s := range triangleTokens {
		if s == token {
			return Triangle(t), nil
		}
	}

	return TriangleBoth, errors.WithHint(
		errors.Wrapf(ErrConfiguration, "unknown triangle %q", name),
		"use one of: both, upper, lower")
}

// AdjacencyMatrix materializes the graph as an n×n matrix.
//
// Without useWeights the matrix is binary (1 for an edge, 0 otherwise).
// With useWeights (weighted graphs only) edge cells hold the weight and all
// other cells hold noWeightValue (math.NaN() mirrors the usual default).
// Directed graphs set only (source, target) and accept TriangleBoth only.
//
// Errors: ErrNotBuilt, ErrNoEdges, ErrEmptyGraph, ErrUnweighted,
// ErrConfiguration (triangle mode).
// Complexity: O(n² + |E|) time, O(n²) memory.
func (g *Graph) AdjacencyMatrix(triangle Triangle, useWeights bool, noWeightValue float64) (*matrix.Dense, error) {
	res, err := g.edges()
	if err != nil {
		return nil, err
	}
	if int(triangle) >= len(triangleTokens) {
		return nil, errors.Wrapf(ErrConfiguration, "unknown triangle %d", triangle)
	}
	if triangle != TriangleBoth && res.Directed {
		return nil, errors.WithHint(
			errors.Wrapf(ErrConfiguration, "triangle %q not valid for directed graphs", triangle),
			"use TriangleBoth for directed graphs")
	}
	if useWeights && !res.Weighted {
		return nil, ErrUnweighted
	}
	n := res.NumVertices()
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	var m *matrix.Dense
	if useWeights {
		m, err = matrix.NewDense(n, n, matrix.WithNonFinite(), matrix.WithFill(noWeightValue))
	} else {
		m, err = matrix.NewDense(n, n)
	}
	if err != nil {
		return nil, err
	}

	for _, e := range res.Edges {
		v := 1.0
		if useWeights {
			v = e.Weight
		}
		if res.Directed {
			err = m.Set(e.Source, e.Target, v)
		} else {
			lo, hi := e.Source, e.Target
			if lo > hi {
				lo, hi = hi, lo
			}
			if triangle != TriangleLower {
				err = m.Set(lo, hi, v)
			}
			if err == nil && triangle != TriangleUpper {
				err = m.Set(hi, lo, v)
			}
		}
		if err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Strengths returns the per-node sums of incident edge weights: out over the
// rows and in over the columns of the full adjacency matrix. Unweighted
// graphs count every edge as 1, so the strengths equal the degrees.
// Undirected graphs return out == in.
//
// Errors: as AdjacencyMatrix.
// Complexity: O(n² + |E|).
func (g *Graph) Strengths() (out, in []float64, err error) {
	m, err := g.AdjacencyMatrix(TriangleBoth, g.IsWeighted(), math.NaN())
	if err != nil {
		return nil, nil, err
	}

	return m.RowSums(), m.ColSums(), nil
}

// NodePositions returns the (x, y) of every node, in node order.
func (g *Graph) NodePositions() ([]visibility.Point, error) {
	s, _, err := g.state()
	if err != nil {
		return nil, err
	}

	out := make([]visibility.Point, s.Len())
	for i := range out {
		out[i] = visibility.Point{X: s.X(i), Y: s.Y(i)}
	}

	return out, nil
}
