package spiral

import "errors"

// Sentinel errors for spiral operations.
var (
	// ErrNonSquare indicates that the row count differs from the first row's
	// length, or that some row has a different length.
	ErrNonSquare = errors.New("spiral: matrix must be square")

	// ErrNotPerfectSquare indicates that Fill received a value count that is
	// not k² for any integer k.
	ErrNotPerfectSquare = errors.New("spiral: value count is not a perfect square")

	// ErrNilMatrix indicates that an adapter received a nil matrix.
	ErrNilMatrix = errors.New("spiral: nil matrix")
)

// Coord is a cell position: Row and Col are zero-based.
type Coord struct {
	Row, Col int
}
