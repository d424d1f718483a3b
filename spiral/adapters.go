package spiral

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/snailshell/matrix"
)

// TraverseDense is Traverse over a matrix.Dense.
//
// Errors:
//   - ErrNilMatrix (and matrix.ErrNilMatrix) — d is nil.
//   - ErrNonSquare (and matrix.ErrNonSquare) — Rows() != Cols().
func TraverseDense[T any](d *matrix.Dense[T]) ([]T, error) {
	if err := matrix.ValidateNotNil(d); err != nil {
		return nil, fmt.Errorf("TraverseDense: %w: %w", ErrNilMatrix, err)
	}
	if err := matrix.ValidateSquare(d); err != nil {
		return nil, fmt.Errorf("TraverseDense: %w: %w", ErrNonSquare, err)
	}

	n := d.Rows()
	out := make([]T, n*n)
	ix := 0
	walk(n, func(row, col int) bool {
		out[ix], _ = d.At(row, col) // in range by construction
		ix++

		return true
	})

	return out, nil
}

// TraverseMat is Traverse over any gonum mat.Matrix (Dense, SymDense,
// TriDense, transposed views, ...).
//
// Errors:
//   - ErrNilMatrix — m is nil.
//   - ErrNonSquare — r != c.
func TraverseMat(m mat.Matrix) ([]float64, error) {
	if m == nil {
		return nil, fmt.Errorf("TraverseMat: %w", ErrNilMatrix)
	}
	r, c := m.Dims()
	if r != c {
		return nil, fmt.Errorf("TraverseMat: %dx%d: %w", r, c, ErrNonSquare)
	}

	out := make([]float64, r*r)
	ix := 0
	walk(r, func(row, col int) bool {
		out[ix] = m.At(row, col)
		ix++

		return true
	})

	return out, nil
}
