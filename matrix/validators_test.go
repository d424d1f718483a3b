// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/snailshell/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateNotNil covers the nil guard.
func TestValidateNotNil(t *testing.T) {
	var m *matrix.Dense[int]
	require.ErrorIs(t, matrix.ValidateNotNil(m), matrix.ErrNilMatrix)

	ok, err := matrix.NewDense[int](1, 1)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateNotNil(ok))
}

// TestValidateSquare enforces nil-first, then shape ordering.
func TestValidateSquare(t *testing.T) {
	var m *matrix.Dense[int]
	require.ErrorIs(t, matrix.ValidateSquare(m), matrix.ErrNilMatrix)

	rect, err := matrix.NewDense[int](2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)

	sq, err := matrix.NewDense[int](3, 3)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSquare(sq))

	empty, err := matrix.NewDense[int](0, 0)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSquare(empty))
}
