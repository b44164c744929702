// SPDX-License-Identifier: MIT
// Package: visgraph/visibility
//
// series.go — the immutable (x, y) sample sequence fed to Build.

package visibility

import (
	"math"
)

// Series is an ordered sequence of (x, y) samples with strictly increasing x.
// It is immutable after NewSeries; accessors return copies.
type Series struct {
	xs, ys    []float64
	defaultXs bool
}

// NewSeries validates and copies ys and xs.
// A nil xs means default positions 0..n-1. A non-nil xs must have the same
// length as ys and be strictly increasing. NaN and ±Inf samples are rejected.
// Errors wrap ErrInputShape.
// Complexity: O(n) time and memory.
func NewSeries(ys, xs []float64) (Series, error) {
	n := len(ys)
	for i, y := range ys {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return Series{}, shapeErrorf("ys[%d] = %v is not finite", i, y)
		}
	}

	s := Series{ys: append([]float64(nil), ys...)}
	if xs == nil {
		s.xs = make([]float64, n)
		for i := range s.xs {
			s.xs[i] = float64(i)
		}
		s.defaultXs = true

		return s, nil
	}

	if len(xs) != n {
		return Series{}, shapeErrorf("xs has length %d, ys has length %d", len(xs), n)
	}
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Series{}, shapeErrorf("xs[%d] = %v is not finite", i, x)
		}
		if i > 0 && !(x > xs[i-1]) {
			return Series{}, shapeErrorf("xs not strictly increasing at index %d (%v after %v)", i, x, xs[i-1])
		}
	}
	s.xs = append([]float64(nil), xs...)

	return s, nil
}

// Len returns the number of samples.
func (s Series) Len() int { return len(s.ys) }

// X returns the position of sample i.
func (s Series) X(i int) float64 { return s.xs[i] }

// Y returns the value of sample i.
func (s Series) Y(i int) float64 { return s.ys[i] }

// Xs returns a copy of the positions.
func (s Series) Xs() []float64 { return append([]float64(nil), s.xs...) }

// Ys returns a copy of the values.
func (s Series) Ys() []float64 { return append([]float64(nil), s.ys...) }

// HasDefaultXs reports whether positions were defaulted to 0..n-1.
func (s Series) HasDefaultXs() bool { return s.defaultXs }

// reflected returns the series with values negated (y -> -y); positions are shared.
func (s Series) reflected() Series {
	ys := make([]float64, len(s.ys))
	for i, y := range s.ys {
		ys[i] = -y
	}

	return Series{xs: s.xs, ys: ys, defaultXs: s.defaultXs}
}
