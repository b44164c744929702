// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) init; At/Set: O(1); Row: O(c); RowSums/ColSums: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf rejects NaN/Inf in Set when true.
type Dense struct {
	r, c           int
	data           []float64
	validateNaNInf bool
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c matrix, zero-filled unless WithFill is given.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//   - ErrNaNInf when the fill value is not finite and WithNonFinite is absent.
//
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "NewDense(%d,%d)", rows, cols)
	}
	cfg := gatherOptions(opts...)
	if cfg.validateNaNInf && !isFinite(cfg.fill) {
		return nil, errors.Wrapf(ErrNaNInf, "NewDense fill %v", cfg.fill)
	}

	data := make([]float64, rows*cols)
	if cfg.fill != 0 {
		for i := range data {
			data[i] = cfg.fill
		}
	}

	return &Dense{r: rows, c: cols, data: data, validateNaNInf: cfg.validateNaNInf}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col), honoring the numeric policy.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if m.validateNaNInf && !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxAt, i, 0, ErrIndexOutOfBounds)
	}

	return append([]float64(nil), m.data[i*m.c:(i+1)*m.c]...), nil
}

// each visits every element in row-major order.
func (m *Dense) each(f func(i, j int, v float64)) {
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			f(i, j, m.data[base+j])
		}
	}
}

// RowSums returns the sum of every row, skipping NaN cells.
// On a binary adjacency matrix this is the out-degree vector.
// Complexity: O(r*c).
func (m *Dense) RowSums() []float64 {
	out := make([]float64, m.r)
	m.each(func(i, _ int, v float64) {
		if !math.IsNaN(v) {
			out[i] += v
		}
	})

	return out
}

// ColSums returns the sum of every column, skipping NaN cells.
// On a binary adjacency matrix this is the in-degree vector.
// Complexity: O(r*c).
func (m *Dense) ColSums() []float64 {
	out := make([]float64, m.c)
	m.each(func(_, j int, v float64) {
		if !math.IsNaN(v) {
			out[j] += v
		}
	})

	return out
}

// String renders one bracketed row per line.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
