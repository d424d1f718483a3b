package spiral

import "fmt"

// Traverse returns the elements of the square matrix m in clockwise spiral
// order, starting at the top-left corner.
//
// Algorithm Outline:
//  1. Validate the shape (see Validate); n == 0 yields an empty sequence.
//  2. Allocate out with len n².
//  3. Walk the rings (see Walk) and copy m[row][col] into out at each step.
//
// Guarantees:
//   - len(out) == n² and every cell appears exactly once.
//   - m is never mutated; out is freshly allocated per call.
//   - Equal inputs produce equal outputs.
//
// Complexity:
//
//	Time   = O(n²)
//	Memory = O(n²) (the output)
//
// Errors:
//   - ErrNonSquare — raised before any traversal work.
func Traverse[T any](m [][]T) ([]T, error) {
	n, err := Validate(m)
	if err != nil {
		return nil, fmt.Errorf("Traverse: %w", err)
	}

	out := make([]T, n*n)
	ix := 0
	walk(n, func(row, col int) bool {
		out[ix] = m[row][col]
		ix++

		return true
	})

	return out, nil
}

// Validate checks that m is square and returns its order n.
//
// n is the length of the first row. A matrix with no rows, or whose first row
// is empty, is the 0×0 matrix. Otherwise the row count and every row length
// must equal n.
// Complexity: O(n).
func Validate[T any](m [][]T) (int, error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return 0, nil
	}
	n := len(m[0])
	if len(m) != n {
		return 0, fmt.Errorf("%d rows, want %d: %w", len(m), n, ErrNonSquare)
	}
	for i, row := range m {
		if len(row) != n {
			return 0, fmt.Errorf("row %d has length %d, want %d: %w", i, len(row), n, ErrNonSquare)
		}
	}

	return n, nil
}
