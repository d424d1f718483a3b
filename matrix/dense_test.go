// Package matrix_test contains unit tests for the generic Dense container.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/snailshell/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense[int](-1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense[int](5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseEmpty verifies that a zero extent yields the empty, square grid.
func TestNewDenseEmpty(t *testing.T) {
	m, err := matrix.NewDense[float64](0, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 0, m.Cols())
	assert.True(t, m.IsSquare(), "empty grid counts as 0x0")
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense[int](3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.False(t, m.IsSquare())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense[int](2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 7)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense[string](2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, "x"))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, "x", val)
}

// TestFromRows checks copying semantics and ragged-row rejection.
func TestFromRows(t *testing.T) {
	src := [][]int{{1, 2}, {3, 4}}
	m, err := matrix.FromRows(src)
	require.NoError(t, err)

	src[0][0] = 100 // mutating the source must not leak into the copy
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = matrix.FromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrNonRectangular)

	empty, err := matrix.FromRows([][]int{{}})
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Rows())
}

// TestToRows verifies the copy-out never aliases storage.
func TestToRows(t *testing.T) {
	m, err := matrix.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	rows := m.ToRows()
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, rows)

	rows[0][0] = 42
	orig, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, orig, "ToRows must not share storage")

	empty, err := matrix.NewDense[int](0, 0)
	require.NoError(t, err)
	assert.NotNil(t, empty.ToRows())
	assert.Empty(t, empty.ToRows())
}

// TestString checks the debug rendering.
func TestString(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2.5}, {-3, 4}})
	require.NoError(t, err)
	assert.Equal(t, "[1, 2.5]\n[-3, 4]\n", m.String())
}
