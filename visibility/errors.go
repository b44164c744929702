// SPDX-License-Identifier: MIT
// Package: visgraph/visibility
//
// errors.go — sentinel errors for the visibility package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached by wrapping (errors.Wrapf) at the failing check,
//     with an optional user-facing hint (errors.WithHint).
//   • Build never panics on user input.

package visibility

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrConfiguration indicates an invalid or incompatible option combination
	// (min/max weight on an unweighted graph, negative penetrable limit,
	// dual perspective with top_to_bottom, non-positive alpha, ...).
	ErrConfiguration = errors.New("visibility: invalid configuration")

	// ErrInputShape indicates malformed input arrays: xs length differs from
	// ys length, xs not strictly increasing, or a NaN/±Inf sample.
	ErrInputShape = errors.New("visibility: invalid input shape")

	// ErrNotBuilt indicates that a derived view was requested from a graph
	// that has not been built yet.
	ErrNotBuilt = errors.New("visibility: graph not built")
)

// configErrorf wraps ErrConfiguration with formatted context and a hint.
func configErrorf(hint, format string, args ...interface{}) error {
	err := errors.Wrapf(ErrConfiguration, format, args...)
	if hint != "" {
		err = errors.WithHint(err, hint)
	}

	return err
}

// shapeErrorf wraps ErrInputShape with formatted context.
func shapeErrorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInputShape, format, args...)
}
