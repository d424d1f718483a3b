// Package spiral computes the "snail shell" (clockwise spiral) traversal of
// a square matrix.
//
// 🚀 What is a snail shell traversal?
//
//	Walk the outer ring of an n×n grid clockwise, starting at the top-left
//	corner: top row left→right, right column top→bottom, bottom row
//	right→left, left column bottom→top. Then peel that ring off and repeat on
//	the inner (n-2)×(n-2) grid until every cell has been visited once.
//
//	    1 → 2 → 3
//	            ↓
//	    8 → 9   4        ⇒  [1 2 3 4 5 6 7 8 9]
//	    ↑       ↓
//	    7 ← 6 ← 5
//
// ✨ Key features:
//   - generic over the cell type (ints, floats, strings, structs)
//   - iterative ring peeling, no recursion, O(n²) time, one output allocation
//   - strict square validation: row count AND every row length
//   - Walk / Coords expose the visiting order as coordinates
//   - Fill builds the matrix whose traversal is a given sequence
//   - adapters for matrix.Dense and gonum mat.Matrix
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/snailshell/spiral"
//
//	seq, err := spiral.Traverse([][]int{{1, 2}, {4, 3}})
//	if errors.Is(err, spiral.ErrNonSquare) {
//	  // reject input
//	}
//	fmt.Println(seq) // [1 2 3 4]
//
// Edge cases:
//
//   - [][]T{{}} (and a matrix with no rows) is the empty 0×0 matrix and
//     yields an empty, non-nil sequence without error.
//   - 1×1 and the centre of every odd-sized matrix are emitted by the
//     centre-cell step.
//
// Performance:
//
//   - Time:   O(n²)
//   - Memory: O(n²) for the output only
package spiral
