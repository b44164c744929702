// SPDX-License-Identifier: MIT
// Package: visgraph/visibility
//
// build.go — the Build entry point.

package visibility

// Build computes the visibility graph of s under cfg.
//
// With onlyDegrees set, no edge list is materialized: the result carries
// degree counts only (min/max filters still apply). Dual perspective cannot
// be combined with onlyDegrees.
//
// Errors:
//   - ErrConfiguration — invalid cfg, or dual perspective with onlyDegrees.
//
// Series of length 0 or 1 yield a result without edges.
// Complexity: see package documentation.
func Build(s Series, cfg Config, onlyDegrees bool) (*BuildResult, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.dual && onlyDegrees {
		return nil, configErrorf("build the full edge list for dual perspective",
			"dual perspective is incompatible with degree-only builds")
	}

	if !cfg.dual {
		return runPass(s, cfg, onlyDegrees, false).result(), nil
	}

	acc, err := buildDual(s, cfg)
	if err != nil {
		return nil, err
	}

	return acc.result(), nil
}
