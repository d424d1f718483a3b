// SPDX-License-Identifier: MIT
// Package matrix: Dense is a concrete, row-major grid storing elements in a
// flat slice for cache friendliness. It is generic over the cell type so the
// same container serves integer, float and arbitrary value grids.

package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of T values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense[T any] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to the zero value of T.
// Stage 1 (Validate): ensure rows and cols are non-negative.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// A 0×0 matrix is legal and denotes an empty grid.
// Complexity: O(r*c) time and memory.
func NewDense[T any](rows, cols int) (*Dense[T], error) {
	// Validate dimensions
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	// A zero extent on either axis collapses to the empty grid.
	if rows == 0 || cols == 0 {
		return &Dense[T]{}, nil
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// FromRows builds a Dense by copying a rectangular [][]T.
// Stage 1 (Validate): every row must have the length of the first row.
// Stage 2 (Execute): copy rows into the flat backing slice.
// An input with no rows, or whose first row is empty, yields the empty grid.
// Complexity: O(r*c).
func FromRows[T any](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return &Dense[T]{}, nil
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w", i, len(row), cols, ErrNonRectangular)
		}
	}

	d := &Dense[T]{r: len(rows), c: cols, data: make([]T, len(rows)*cols)}
	for i, row := range rows {
		copy(d.data[i*cols:(i+1)*cols], row) // one contiguous block per row
	}

	return d, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Cols() int {
	return m.c
}

// IsSquare reports whether Rows() == Cols(). The empty grid is square.
func (m *Dense[T]) IsSquare() bool {
	return m.r == m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// ToRows returns the matrix as a freshly allocated [][]T.
// Complexity: O(r*c).
func (m *Dense[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	for i := range out {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
