// SPDX-License-Identifier: MIT
// Package: visgraph/visibility
//
// engine.go — construction of the visibility pairs.
//
// Natural/Horizontal with m = 0, per range [lo, hi) taken from an explicit
// work stack:
//  1. k = leftmost argmax of ys[lo:hi] (sparse table, O(1)).
//  2. Sweep right (k+1 .. hi-1) and left (k-1 .. lo) from k.
//  3. Pairs straddling k are blocked by k itself. Push [lo, k) and [k+1, hi).
//
// Natural/Horizontal with m > 0: one forward sweep from every origin a over
// a+1 .. n-1.
//
// A sweep keeps the m+1 strongest samples passed so far in a tracker; a
// candidate is accepted when at most m of them obstruct it. The sweep stops
// once the tracker provably blocks every remaining candidate: for Horizontal
// via the range maximum, for Natural via the block hulls (hull.go), which
// bound the steepest remaining slope from the origin.
//
// Circular visibility has no obstruction order shared by all candidates of a
// sweep. It keeps the range recursion for every m, deciding pivot and
// straddling pairs by direct counting that checks the pivot first and stops
// after m+1.
//
// Every unordered pair is decided in exactly one step, so each pair is
// reported at most once. Contiguous pairs have no intervening sample and are
// always accepted.

package visibility

import (
	"math"
)

// stopUlps is the slack granted to the tracker bound when deciding that a
// sweep is over. It stays below slackUlps so that a stop never rejects a pair
// the predicate would accept.
const stopUlps = 2

// engine holds one pass over one series.
type engine struct {
	xs, ys         []float64
	family         Family
	m              int
	skipContiguous bool
	obstructs      func(a, b, c int) bool
	st             *sparseTable
	hull           *hullTree
	tr             *tracker
	emit           func(i, j, pen int)
}

// newEngine prepares a pass over s. emit receives every accepted pair with
// i < j and its obstruction count.
func newEngine(s Series, cfg Config, skipContiguous bool, emit func(i, j, pen int)) *engine {
	e := &engine{
		xs:             s.xs,
		ys:             s.ys,
		family:         cfg.family,
		m:              cfg.penetrableLimit,
		skipContiguous: skipContiguous,
		obstructs:      obstructor(cfg.family, s.xs, s.ys),
		st:             newSparseTable(s.ys),
		tr:             newTracker(cfg.penetrableLimit + 1),
		emit:           emit,
	}
	if cfg.family.kind == FamilyNatural {
		e.hull = newHullTree(s.xs, s.ys)
	}

	return e
}

// span is a half-open index range awaiting processing.
type span struct{ lo, hi int }

// run processes the whole series.
// Complexity: see package documentation.
func (e *engine) run() {
	n := len(e.ys)
	if n < 2 {
		return
	}

	if e.family.kind != FamilyCircular && e.m > 0 {
		for a := 0; a < n-1; a++ {
			e.sweep(a, a+1, n, 1)
		}

		return
	}

	stack := []span{{0, n}}
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if r.hi-r.lo < 2 {
			continue
		}

		k := e.st.argmax(r.lo, r.hi)
		if e.family.kind == FamilyCircular {
			e.circularRange(r.lo, k, r.hi)
		} else {
			e.sweep(k, k+1, r.hi, 1)
			e.sweep(k, k-1, r.lo-1, -1)
		}

		stack = append(stack, span{k + 1, r.hi}, span{r.lo, k})
	}
}

// accept forwards the pair (a, b) in ascending order.
func (e *engine) accept(a, b, pen int) {
	if a > b {
		a, b = b, a
	}
	if e.skipContiguous && b-a == 1 {
		return
	}
	e.emit(a, b, pen)
}

// rank orders samples passed by a sweep from origin o: the higher the rank,
// the more candidates c obstructs.
func (e *engine) rank(o, c int) float64 {
	if e.family.kind == FamilyHorizontal {
		return e.ys[c]
	}

	return (e.ys[c] - e.ys[o]) / math.Abs(e.xs[c]-e.xs[o])
}

// sweep walks candidates from, from+step, ... (excluding to) away from the
// origin o. Horizontal checks for the end of the sweep at every candidate,
// Natural at doubling distances.
func (e *engine) sweep(o, from, to, step int) {
	e.tr.reset()
	passed, nextCheck := 0, 1
	for j := from; j != to; j += step {
		if e.tr.full() && passed >= nextCheck {
			if e.blocked(o, j, to, step) {
				return
			}
			if e.family.kind == FamilyNatural {
				nextCheck = 2 * passed
			}
		}
		pen := e.tr.count(o, j, e.obstructs)
		if pen <= e.m {
			e.accept(o, j, pen)
		}
		e.tr.push(j, e.rank(o, j))
		passed++
	}
}

// blocked reports whether every tracked sample obstructs every candidate
// from j up to (excluding) to. The tracker must be full.
func (e *engine) blocked(o, j, to, step int) bool {
	lo, hi := j, to
	if step < 0 {
		lo, hi = to+1, j+1
	}

	if e.family.kind == FamilyHorizontal {
		return e.tr.weakest() >= math.Min(e.ys[o], e.ys[e.st.argmax(lo, hi)])
	}

	w := e.blockingSlope(o)

	return e.hull.maxLift(lo, hi, o, float64(step)*w) <= 0
}

// blockingSlope returns the largest slope from o that every tracked sample
// still obstructs, less than stopUlps of rounding.
func (e *engine) blockingSlope(o int) float64 {
	w := math.Inf(1)
	yo := e.ys[o]
	for _, it := range e.tr.items {
		c := it.idx
		slack := stopUlps * epsilon * math.Max(math.Abs(yo), math.Abs(e.ys[c]))
		w = math.Min(w, (e.ys[c]-yo+slack)/math.Abs(e.xs[c]-e.xs[o]))
	}

	return w
}

// circularRange decides every pair of [lo, hi) that involves or straddles k.
func (e *engine) circularRange(lo, k, hi int) {
	for j := k + 1; j < hi; j++ {
		e.countPair(k, j, -1)
	}
	for j := k - 1; j >= lo; j-- {
		e.countPair(j, k, -1)
	}
	for a := k - 1; a >= lo; a-- {
		for b := k + 1; b < hi; b++ {
			e.countPair(a, b, k)
		}
	}
}

// countPair counts the samples strictly between a and b (a < b) that lie on
// or above the arc, checking first (when >= 0) before the others, and
// accepts the pair when the count stays within m.
func (e *engine) countPair(a, b, first int) {
	ar := newArc(Point{e.xs[a], e.ys[a]}, Point{e.xs[b], e.ys[b]}, e.family.alpha)
	hit := func(c int) bool { return ar.obstructs(Point{e.xs[c], e.ys[c]}) }

	pen := 0
	if first >= 0 && hit(first) {
		pen++
		if pen > e.m {
			return
		}
	}
	for c := a + 1; c < b; c++ {
		if c == first || !hit(c) {
			continue
		}
		pen++
		if pen > e.m {
			return
		}
	}
	e.accept(a, b, pen)
}
