package spiral

// Layers returns the number of rings of an n×n grid: ⌈n/2⌉, 0 for n ≤ 0.
// The centre cell of an odd grid counts as its own ring.
func Layers(n int) int {
	if n <= 0 {
		return 0
	}

	return (n + 1) / 2
}

// Walk calls visit for every cell of an n×n grid in spiral order.
// Iteration stops early when visit returns false. n ≤ 0 visits nothing.
//
// Complexity: O(n²) calls to visit, O(1) extra memory.
func Walk(n int, visit func(Coord) bool) {
	walk(n, func(row, col int) bool {
		return visit(Coord{Row: row, Col: col})
	})
}

// Coords returns the full visiting order of an n×n grid.
// Complexity: O(n²) time and memory.
func Coords(n int) []Coord {
	if n <= 0 {
		return []Coord{}
	}
	out := make([]Coord, 0, n*n)
	Walk(n, func(c Coord) bool {
		out = append(out, c)

		return true
	})

	return out
}

// walk is the ring-peeling loop shared by every operation in this package.
//
// State:
//   - layer — index of the current ring (its top row and left column).
//   - size  — one past the ring's bottom row / right column (n - layer).
//   - ix    — number of cells emitted so far.
//
// Each ring is emitted as four half-open edges, each excluding the corner
// already written by the previous one:
//
//	top    [layer][layer .. size-1]
//	right  [layer+1 .. size-1][size-1]
//	bottom [size-1][size-2 .. layer]      (descending)
//	left   [size-2 .. layer+1][layer]     (descending, strictly above layer)
//
// The loop ends once ix reaches n², checked after every edge, or after the
// centre cell of an odd grid. It reports false when visit stopped it early.
func walk(n int, visit func(row, col int) bool) bool {
	if n <= 0 {
		return true
	}
	total := n * n
	ix := 0

	for layer, size := 0, n; ; layer, size = layer+1, size-1 {
		// Odd grid shrunk to its single middle cell.
		if n%2 == 1 && layer == n/2 {
			return visit(layer, layer)
		}

		// Top edge.
		for i := layer; i < size; i++ {
			if !visit(layer, i) {
				return false
			}
			ix++
		}
		if ix == total {
			return true
		}

		// Right edge.
		for i := layer + 1; i < size; i++ {
			if !visit(i, size-1) {
				return false
			}
			ix++
		}
		if ix == total {
			return true
		}

		// Bottom edge.
		for i := size - 2; i >= layer; i-- {
			if !visit(size-1, i) {
				return false
			}
			ix++
		}
		if ix == total {
			return true
		}

		// Left edge.
		for i := size - 2; i > layer; i-- {
			if !visit(i, layer) {
				return false
			}
			ix++
		}
		if ix == total {
			return true
		}
	}
}
