// SPDX-License-Identifier: MIT
// Package: visgraph/visibility
//
// hull.go — upper convex hulls over aligned blocks of samples, answering
// "largest lift above a line through an origin sample, over [lo, hi)".
//
// Level l holds, for every full block [b·2^l, (b+1)·2^l), the upper hull of
// the block's samples. A range decomposes into O(log n) blocks, and the
// maximum of a linear function over a hull is found by binary search on its
// edge slopes.
//
// Complexity: O(n log n) build time, O(n log n) memory worst case (far less on
// noisy data, whose hulls are short); query O(log n · log h).

package visibility

import (
	"math"
	"math/bits"
)

// hullLevel stores the hulls of one level back to back.
type hullLevel struct {
	start []int32 // hull of block b is verts[start[b]:start[b+1]]
	verts []int32
}

// hullTree is the per-build block hull index.
type hullTree struct {
	xs, ys []float64
	levels []hullLevel
}

// newHullTree builds the hulls of every level.
func newHullTree(xs, ys []float64) *hullTree {
	n := len(ys)
	t := &hullTree{xs: xs, ys: ys}
	if n == 0 {
		return t
	}

	base := hullLevel{start: make([]int32, n+1), verts: make([]int32, n)}
	for i := 0; i < n; i++ {
		base.start[i+1] = int32(i + 1)
		base.verts[i] = int32(i)
	}
	t.levels = append(t.levels, base)

	for width := 2; width <= n; width <<= 1 {
		prev := &t.levels[len(t.levels)-1]
		blocks := n / width
		next := hullLevel{start: make([]int32, blocks+1)}
		for b := 0; b < blocks; b++ {
			next.verts = t.appendHull(next.verts, prev.block(2*b), prev.block(2*b+1))
			next.start[b+1] = int32(len(next.verts))
		}
		t.levels = append(t.levels, next)
	}

	return t
}

// block returns the hull vertices of block b.
func (l *hullLevel) block(b int) []int32 {
	return l.verts[l.start[b]:l.start[b+1]]
}

// appendHull appends the upper hull of left ∪ right (both x-sorted hulls,
// left entirely before right) to dst. Collinear middle vertices are dropped.
func (t *hullTree) appendHull(dst, left, right []int32) []int32 {
	base := len(dst)
	push := func(v int32) {
		for len(dst)-base >= 2 && !t.turnsRight(dst[len(dst)-2], dst[len(dst)-1], v) {
			dst = dst[:len(dst)-1]
		}
		dst = append(dst, v)
	}
	for _, v := range left {
		push(v)
	}
	for _, v := range right {
		push(v)
	}

	return dst
}

// turnsRight reports whether o -> a -> b is a strict clockwise turn.
func (t *hullTree) turnsRight(o, a, b int32) bool {
	ox, oy := t.xs[o], t.ys[o]
	cross := (t.xs[a]-ox)*(t.ys[b]-oy) - (t.ys[a]-oy)*(t.xs[b]-ox)

	return cross < 0
}

// lift returns how far sample i lies above the line of slope w through o.
func (t *hullTree) lift(i int32, o int, w float64) float64 {
	return (t.ys[i] - t.ys[o]) - w*(t.xs[i]-t.xs[o])
}

// maxLift returns the largest lift(i, o, w) over i in [lo, hi); hi > lo.
func (t *hullTree) maxLift(lo, hi, o int, w float64) float64 {
	best := math.Inf(-1)
	for lo < hi {
		l := bits.TrailingZeros(uint(lo))
		if l >= len(t.levels) {
			l = len(t.levels) - 1
		}
		for lo+(1<<l) > hi {
			l--
		}
		best = math.Max(best, t.blockMaxLift(&t.levels[l], lo>>l, o, w))
		lo += 1 << l
	}

	return best
}

// blockMaxLift maximizes lift over one hull. Edge slopes decrease along an
// upper hull, so the optimum is the first vertex whose outgoing edge is no
// steeper than w; its neighbors are checked too to absorb rounding.
func (t *hullTree) blockMaxLift(l *hullLevel, b, o int, w float64) float64 {
	h := l.block(b)
	lo, hi := 0, len(h)-1
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		p, q := h[mid], h[mid+1]
		if (t.ys[q]-t.ys[p])/(t.xs[q]-t.xs[p]) > w {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	best := t.lift(h[lo], o, w)
	if lo > 0 {
		best = math.Max(best, t.lift(h[lo-1], o, w))
	}
	if lo+1 < len(h) {
		best = math.Max(best, t.lift(h[lo+1], o, w))
	}

	return best
}
