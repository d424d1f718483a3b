// Package matrix provides a small generic, row-major container for square and
// rectangular grids, plus the shape validators shared by the traversal code.
//
// The matrix package provides:
//
//   - Dense[T], a flat row-major grid with bounds-checked At/Set and
//     a copy-out helper (ToRows).
//   - FromRows, which ingests a [][]T and rejects ragged input.
//   - ValidateNotNil / ValidateSquare, the single source of truth for
//     nil and shape checks.
//
// Dense never aliases caller memory: FromRows and ToRows copy.
//
// See the examples in this package and in spiral for usage patterns.
package matrix
