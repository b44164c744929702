// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the Dense numeric policy.
//   - Options are functional (type Option func(*denseConfig)).
//   - Defaults: cells must be finite (DefaultValidateNaNInf).

package matrix

// DefaultValidateNaNInf toggles strict finite-value validation in Set.
const DefaultValidateNaNInf = true

// denseConfig is the resolved construction policy.
type denseConfig struct {
	validateNaNInf bool
	fill           float64
}

// Option customizes Dense construction.
type Option func(*denseConfig)

// WithNonFinite permits NaN and ±Inf cells, e.g. NaN as a "no edge" marker
// in a weighted adjacency matrix.
func WithNonFinite() Option {
	return func(c *denseConfig) { c.validateNaNInf = false }
}

// WithFill initializes every cell with v instead of zero.
// A non-finite v requires WithNonFinite.
func WithFill(v float64) Option {
	return func(c *denseConfig) { c.fill = v }
}

// gatherOptions resolves opts over the defaults.
func gatherOptions(opts ...Option) denseConfig {
	cfg := denseConfig{validateNaNInf: DefaultValidateNaNInf}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
