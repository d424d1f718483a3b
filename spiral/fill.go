package spiral

import (
	"fmt"
	"math"

	"github.com/katalvlaran/snailshell/matrix"
)

// Fill builds the k×k matrix whose spiral traversal is values, where
// len(values) == k². It is the inverse of Traverse:
//
//	m, _ := Fill(seq)
//	out, _ := Traverse(m) // out equals seq
//
// An empty values slice yields a matrix with no rows.
//
// Complexity: O(k²) time and memory.
//
// Errors:
//   - ErrNotPerfectSquare — len(values) is not a perfect square.
func Fill[T any](values []T) ([][]T, error) {
	k, ok := isqrt(len(values))
	if !ok {
		return nil, fmt.Errorf("Fill: %d values: %w", len(values), ErrNotPerfectSquare)
	}

	d, err := matrix.NewDense[T](k, k)
	if err != nil {
		return nil, fmt.Errorf("Fill: %w", err)
	}
	ix := 0
	walk(k, func(row, col int) bool {
		_ = d.Set(row, col, values[ix]) // in range by construction
		ix++

		return true
	})

	return d.ToRows(), nil
}

// isqrt returns ⌊√v⌋ and whether v is a perfect square.
func isqrt(v int) (int, bool) {
	if v < 0 {
		return 0, false
	}
	r := int(math.Sqrt(float64(v)))
	// Correct float rounding in both directions.
	for r*r > v {
		r--
	}
	for (r+1)*(r+1) <= v {
		r++
	}

	return r, r*r == v
}
