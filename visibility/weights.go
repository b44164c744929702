// SPDX-License-Identifier: MIT
// Package: visgraph/visibility
//
// weights.go — edge weight evaluation, from the source p to the target q.

package visibility

import (
	"math"
)

// Weight evaluates kind for the oriented edge p -> q.
// pen is the number of tolerated obstructions (used by NumPenetrations only).
// Unweighted yields 0.
// Complexity: O(1).
func Weight(kind WeightKind, p, q Point, pen int) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y

	switch kind {
	case Distance:
		return math.Hypot(dx, dy)
	case SqDistance:
		return dx*dx + dy*dy
	case VDistance:
		return dy
	case AbsVDistance:
		return math.Abs(dy)
	case HDistance:
		return dx
	case AbsHDistance:
		return math.Abs(dx)
	case Slope:
		return dy / dx
	case AbsSlope:
		return math.Abs(dy / dx)
	case Angle:
		return math.Atan(dy / dx)
	case AbsAngle:
		return math.Abs(math.Atan(dy / dx))
	case NumPenetrations:
		return float64(pen)
	default:
		return 0
	}
}
