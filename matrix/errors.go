// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; context (method and
// coordinates) is attached by wrapping at the detection site, callers match
// with errors.Is.

package matrix

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNaNInf signals a NaN or ±Inf value written into a finite-only matrix.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// denseErrorf wraps err with Dense method context and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return errors.Wrapf(err, "Dense.%s(%d,%d)", method, row, col)
}
