// SPDX-License-Identifier: MIT
// Package: visgraph/visibility
//
// predicates.go — obstruction tests for the three visibility families.
//
// For endpoints a, b and an intervening sample c (x strictly between), each
// predicate answers "does c obstruct the pair?". Equality counts as an
// obstruction (touching blocks). Horizontal is an exact comparison. Natural
// and Circular interpolate a height, so their comparison allows slackUlps
// units of rounding relative to the largest magnitude involved; the result
// does not depend on the scale or offset of the data.

package visibility

import (
	"math"
)

const (
	// slackUlps is the interpolation slack in units of epsilon.
	slackUlps = 8
	// epsilon is the float64 machine epsilon.
	epsilon = 0x1p-52
)

// Point is a single (x, y) sample.
type Point struct {
	X, Y float64
}

// atLeast reports p >= q up to slackUlps of rounding at the given scale.
func atLeast(p, q, scale float64) bool {
	return p >= q-slackUlps*epsilon*scale
}

// absMax returns the largest magnitude of a, b and c.
func absMax(a, b, c float64) float64 {
	return math.Max(math.Abs(a), math.Max(math.Abs(b), math.Abs(c)))
}

// NaturalObstructs reports whether c lies on or above the straight segment
// joining a and b at x = c.X.
func NaturalObstructs(a, b, c Point) bool {
	line := b.Y + (a.Y-b.Y)*(b.X-c.X)/(b.X-a.X)

	return atLeast(c.Y, line, absMax(a.Y, b.Y, c.Y))
}

// HorizontalObstructs reports whether c reaches the lower of the two endpoint
// heights.
func HorizontalObstructs(a, b, c Point) bool {
	return c.Y >= math.Min(a.Y, b.Y)
}

// arc is the upward-bulging circular arc between two points, with center
// below the chord.
type arc struct {
	cx, cy float64
	r2     float64
	scale  float64 // largest magnitude entering heightAt
}

// newArc builds the arc through l and r (l.X < r.X) with central angle
// 2·atan(1/alpha).
func newArc(l, r Point, alpha float64) arc {
	dx, dy := r.X-l.X, r.Y-l.Y
	mx, my := (l.X+r.X)/2, (l.Y+r.Y)/2

	ar := arc{
		cx: mx + alpha*dy/2,
		cy: my - alpha*dx/2,
		r2: (dx*dx + dy*dy) / 4 * (1 + alpha*alpha),
	}
	ar.scale = math.Max(absMax(l.Y, r.Y, ar.cy), math.Sqrt(ar.r2))

	return ar
}

// heightAt returns the arc height above x.
func (ar arc) heightAt(x float64) float64 {
	d := x - ar.cx

	return ar.cy + math.Sqrt(math.Max(0, ar.r2-d*d))
}

// obstructs reports whether c lies on or above the arc.
func (ar arc) obstructs(c Point) bool {
	return atLeast(c.Y, ar.heightAt(c.X), math.Max(ar.scale, math.Abs(c.Y)))
}

// orderedPair returns a and b sorted by x.
func orderedPair(a, b Point) (Point, Point) {
	if a.X > b.X {
		return b, a
	}

	return a, b
}

// CircularObstructs reports whether c lies on or above the circular arc
// through a and b (closed form). The order of a and b does not matter.
func CircularObstructs(a, b, c Point, alpha float64) bool {
	l, r := orderedPair(a, b)

	return newArc(l, r, alpha).obstructs(c)
}

// CircularObstructsAngle is the angle formulation of CircularObstructs: c
// obstructs iff the signed angle at c from c->left to c->right lies in
// (0, π - atan(1/alpha)]. Both formulations agree away from the boundary.
func CircularObstructsAngle(a, b, c Point, alpha float64) bool {
	l, r := orderedPair(a, b)
	ux, uy := l.X-c.X, l.Y-c.Y
	vx, vy := r.X-c.X, r.Y-c.Y
	ang := math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
	if ang <= 0 {
		return false
	}

	return atLeast(math.Pi-math.Atan(1/alpha), ang, math.Pi)
}

// obstructor returns the obstruction test of the family, bound to the series.
func obstructor(f Family, xs, ys []float64) func(a, b, c int) bool {
	switch f.kind {
	case FamilyHorizontal:
		return func(a, b, c int) bool {
			return ys[c] >= math.Min(ys[a], ys[b])
		}
	case FamilyCircular:
		alpha := f.alpha
		return func(a, b, c int) bool {
			return CircularObstructs(Point{xs[a], ys[a]}, Point{xs[b], ys[b]}, Point{xs[c], ys[c]}, alpha)
		}
	default:
		return func(a, b, c int) bool {
			return NaturalObstructs(Point{xs[a], ys[a]}, Point{xs[b], ys[b]}, Point{xs[c], ys[c]})
		}
	}
}
