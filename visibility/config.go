// SPDX-License-Identifier: MIT
// Package: visgraph/visibility
//
// config.go — visibility family, direction, weight kind and the resolved,
// immutable Config.
//
// Contract:
//   • Config values are produced by NewConfig and never mutated afterwards.
//   • Every option combination is validated once, before any computation.
//   • Enum values round-trip through their snake_case tokens
//     (ParseDirection / ParseWeightKind / ParseFamily and String).

package visibility

import (
	"math"
	"strings"
)

// FamilyKind enumerates the supported visibility criteria.
type FamilyKind uint8

const (
	// FamilyNatural — straight segment between bar tops.
	FamilyNatural FamilyKind = iota
	// FamilyHorizontal — horizontal segment at the lower endpoint height.
	FamilyHorizontal
	// FamilyCircular — upward-bulging circular arc parameterized by alpha.
	FamilyCircular
)

// Family is a closed variant over the visibility criteria.
// Only Circular carries a parameter (alpha).
type Family struct {
	kind  FamilyKind
	alpha float64
}

// Natural returns the natural visibility family.
func Natural() Family { return Family{kind: FamilyNatural} }

// Horizontal returns the horizontal visibility family.
func Horizontal() Family { return Family{kind: FamilyHorizontal} }

// Circular returns the circular visibility family with shape parameter alpha.
// The arc through two bar tops has central angle 2·atan(1/alpha); small
// alpha approaches a half circle, large alpha approaches the straight chord.
// alpha is validated by NewConfig (finite, > 0).
func Circular(alpha float64) Family { return Family{kind: FamilyCircular, alpha: alpha} }

// Kind reports the family discriminant.
func (f Family) Kind() FamilyKind { return f.kind }

// Alpha reports the circular shape parameter (0 for other families).
func (f Family) Alpha() float64 { return f.alpha }

// String returns the snake_case token of the family.
func (f Family) String() string {
	switch f.kind {
	case FamilyNatural:
		return "natural"
	case FamilyHorizontal:
		return "horizontal"
	case FamilyCircular:
		return "circular"
	default:
		return "unknown"
	}
}

// ParseFamily maps a token ("natural", "horizontal", "circular") to a Family.
// alpha is used only for "circular".
func ParseFamily(name string, alpha float64) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "natural":
		return Natural(), nil
	case "horizontal":
		return Horizontal(), nil
	case "circular":
		return Circular(alpha), nil
	default:
		return Family{}, configErrorf("use one of: natural, horizontal, circular",
			"unknown visibility family %q", name)
	}
}

// Direction selects the orientation applied to accepted pairs.
type Direction uint8

const (
	// Undirected — edges are unordered pairs, reported as (min, max).
	Undirected Direction = iota
	// LeftToRight — source is the earlier sample.
	LeftToRight
	// TopToBottom — source is the higher sample; equal heights keep left to right.
	TopToBottom
)

var directionTokens = [...]string{
	Undirected:  "undirected",
	LeftToRight: "left_to_right",
	TopToBottom: "top_to_bottom",
}

// String returns the snake_case token of the direction.
func (d Direction) String() string {
	if int(d) < len(directionTokens) {
		return directionTokens[d]
	}

	return "unknown"
}

// IsDirected reports whether edges carry an orientation.
func (d Direction) IsDirected() bool { return d != Undirected }

// ParseDirection maps a token to a Direction. The empty string and "none"
// map to Undirected.
func ParseDirection(name string) (Direction, error) {
	token := strings.ToLower(strings.TrimSpace(name))
	if token == "" || token == "none" {
		return Undirected, nil
	}
	for d, t := range directionTokens {
		if t == token {
			return Direction(d), nil
		}
	}

	return Undirected, configErrorf("use one of: left_to_right, top_to_bottom",
		"unknown direction %q", name)
}

// WeightKind selects the numeric weight attached to every edge.
type WeightKind uint8

const (
	// Unweighted — no weight is attached.
	Unweighted WeightKind = iota
	// Distance — Euclidean distance between the two points.
	Distance
	// SqDistance — squared Euclidean distance.
	SqDistance
	// VDistance — y_target - y_source.
	VDistance
	// AbsVDistance — |y_target - y_source|.
	AbsVDistance
	// HDistance — x_target - x_source.
	HDistance
	// AbsHDistance — |x_target - x_source|.
	AbsHDistance
	// Slope — VDistance / HDistance.
	Slope
	// AbsSlope — |Slope|.
	AbsSlope
	// Angle — atan(Slope), radians.
	Angle
	// AbsAngle — |Angle|.
	AbsAngle
	// NumPenetrations — number of tolerated obstructions of the edge.
	NumPenetrations
)

var weightTokens = [...]string{
	Unweighted:      "unweighted",
	Distance:        "distance",
	SqDistance:      "sq_distance",
	VDistance:       "v_distance",
	AbsVDistance:    "abs_v_distance",
	HDistance:       "h_distance",
	AbsHDistance:    "abs_h_distance",
	Slope:           "slope",
	AbsSlope:        "abs_slope",
	Angle:           "angle",
	AbsAngle:        "abs_angle",
	NumPenetrations: "num_penetrations",
}

// String returns the snake_case token of the weight kind.
func (w WeightKind) String() string {
	if int(w) < len(weightTokens) {
		return weightTokens[w]
	}

	return "unknown"
}

// IsWeighted reports whether the kind attaches a weight.
func (w WeightKind) IsWeighted() bool { return w != Unweighted }

// flipsUnderReflection reports whether the weight changes sign when the series
// is reflected vertically (y -> -y).
func (w WeightKind) flipsUnderReflection() bool {
	return w == VDistance || w == Slope || w == Angle
}

// ParseWeightKind maps a token to a WeightKind. The empty string and "none"
// map to Unweighted.
func ParseWeightKind(name string) (WeightKind, error) {
	token := strings.ToLower(strings.TrimSpace(name))
	if token == "" || token == "none" {
		return Unweighted, nil
	}
	for w, t := range weightTokens {
		if t == token {
			return WeightKind(w), nil
		}
	}

	return Unweighted, configErrorf("see WeightKind for the accepted tokens",
		"unknown weight kind %q", name)
}

// Config is the resolved, validated set of build parameters.
// Construct with NewConfig; the zero value is a valid undirected, unweighted
// natural visibility configuration.
type Config struct {
	family          Family
	direction       Direction
	weight          WeightKind
	minWeight       float64
	maxWeight       float64
	hasMin          bool
	hasMax          bool
	penetrableLimit int
	dual            bool
	concurrent      bool
}

// Option customizes a Config before validation.
// Complexity: applying N options costs O(N).
type Option func(*Config)

// WithDirection sets the edge orientation.
func WithDirection(d Direction) Option {
	return func(c *Config) { c.direction = d }
}

// WithWeight sets the weight kind attached to every edge.
func WithWeight(w WeightKind) Option {
	return func(c *Config) { c.weight = w }
}

// WithMinWeight keeps only edges with weight strictly greater than v.
// Requires a weighted configuration.
func WithMinWeight(v float64) Option {
	return func(c *Config) {
		c.minWeight = v
		c.hasMin = true
	}
}

// WithMaxWeight keeps only edges with weight strictly less than v.
// Requires a weighted configuration.
func WithMaxWeight(v float64) Option {
	return func(c *Config) {
		c.maxWeight = v
		c.hasMax = true
	}
}

// WithPenetrableLimit tolerates up to m obstructing samples per edge.
func WithPenetrableLimit(m int) Option {
	return func(c *Config) { c.penetrableLimit = m }
}

// WithDualPerspective unions the graph with the graph of the reflected
// series y -> -y (contiguous pairs counted once).
func WithDualPerspective(enabled bool) Option {
	return func(c *Config) { c.dual = enabled }
}

// WithConcurrentPasses runs the two dual-perspective passes on separate
// goroutines. It has no effect without WithDualPerspective.
func WithConcurrentPasses(enabled bool) Option {
	return func(c *Config) { c.concurrent = enabled }
}

// NewConfig resolves opts over the given family and validates the result.
// Errors wrap ErrConfiguration.
func NewConfig(family Family, opts ...Option) (Config, error) {
	c := Config{family: family}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// validate checks every invariant of the resolved configuration.
func (c Config) validate() error {
	switch c.family.kind {
	case FamilyNatural, FamilyHorizontal:
	case FamilyCircular:
		if math.IsNaN(c.family.alpha) || math.IsInf(c.family.alpha, 0) || c.family.alpha <= 0 {
			return configErrorf("alpha must be a finite value > 0",
				"circular alpha %v", c.family.alpha)
		}
	default:
		return configErrorf("", "unknown family kind %d", c.family.kind)
	}
	if int(c.direction) >= len(directionTokens) {
		return configErrorf("", "unknown direction %d", c.direction)
	}
	if int(c.weight) >= len(weightTokens) {
		return configErrorf("", "unknown weight kind %d", c.weight)
	}
	if (c.hasMin || c.hasMax) && !c.weight.IsWeighted() {
		return configErrorf("set a weight kind with WithWeight",
			"min/max weight require a weighted graph")
	}
	if (c.hasMin && math.IsNaN(c.minWeight)) || (c.hasMax && math.IsNaN(c.maxWeight)) {
		return configErrorf("", "min/max weight must not be NaN")
	}
	if c.hasMin && c.hasMax && c.minWeight >= c.maxWeight {
		return configErrorf("the filter keeps min < weight < max",
			"min weight %v is not below max weight %v", c.minWeight, c.maxWeight)
	}
	if c.penetrableLimit < 0 {
		return configErrorf("use 0 for plain visibility",
			"penetrable limit %d is negative", c.penetrableLimit)
	}
	if c.dual && c.direction == TopToBottom {
		return configErrorf("use undirected or left_to_right with dual perspective",
			"dual perspective is incompatible with top_to_bottom")
	}

	return nil
}

// Family returns the visibility family.
func (c Config) Family() Family { return c.family }

// Direction returns the edge orientation.
func (c Config) Direction() Direction { return c.direction }

// Weight returns the weight kind.
func (c Config) Weight() WeightKind { return c.weight }

// MinWeight returns the lower filter bound and whether it is set.
func (c Config) MinWeight() (float64, bool) { return c.minWeight, c.hasMin }

// MaxWeight returns the upper filter bound and whether it is set.
func (c Config) MaxWeight() (float64, bool) { return c.maxWeight, c.hasMax }

// PenetrableLimit returns m, the tolerated obstructions per edge.
func (c Config) PenetrableLimit() int { return c.penetrableLimit }

// DualPerspective reports whether the reflected pass is included.
func (c Config) DualPerspective() bool { return c.dual }

// ConcurrentPasses reports whether dual passes run concurrently.
func (c Config) ConcurrentPasses() bool { return c.concurrent }

// hasFilter reports whether a min or max weight bound is configured.
func (c Config) hasFilter() bool { return c.hasMin || c.hasMax }

// keep applies the strict open-interval filter to w.
func (c Config) keep(w float64) bool {
	if c.hasMin && !(w > c.minWeight) {
		return false
	}
	if c.hasMax && !(w < c.maxWeight) {
		return false
	}

	return true
}
