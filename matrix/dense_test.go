// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/visgraph/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrIndexOutOfBounds on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrIndexOutOfBounds)
	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 7.89}, row)
}

// TestNumericPolicy checks the NaN/Inf guard and its opt-out.
func TestNumericPolicy(t *testing.T) {
	strict, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(1, 0, math.Inf(-1)), matrix.ErrNaNInf)

	_, err = matrix.NewDense(2, 2, matrix.WithFill(math.NaN()))
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	loose, err := matrix.NewDense(2, 2, matrix.WithNonFinite(), matrix.WithFill(math.NaN()))
	require.NoError(t, err)
	v, err := loose.At(1, 1)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
	require.NoError(t, loose.Set(0, 1, 2.5))
	assert.Equal(t, []float64{2.5, 0}, loose.RowSums())
	assert.Equal(t, []float64{0, 2.5}, loose.ColSums())
}

// TestRowColSums checks sums on an asymmetric matrix.
func TestRowColSums(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	for _, c := range []struct {
		i, j int
		v    float64
	}{{0, 0, 1}, {0, 2, 4}, {1, 1, -2}, {1, 2, 0.5}} {
		require.NoError(t, m.Set(c.i, c.j, c.v))
	}

	assert.Equal(t, []float64{5, -1.5}, m.RowSums())
	assert.Equal(t, []float64{1, -2, 4.5}, m.ColSums())
}
