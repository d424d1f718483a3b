package spiral_test

import (
	"math/rand"
)

// rowMajor returns an n×n matrix holding 1..n² in row-major order.
func rowMajor(n int) [][]int {
	m := make([][]int, n)
	v := 1
	for i := range m {
		m[i] = make([]int, n)
		for j := range m[i] {
			m[i][j] = v
			v++
		}
	}

	return m
}

// randomSquare returns an n×n matrix of values in [0, 1000) from rng.
func randomSquare(rng *rand.Rand, n int) [][]int {
	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
		for j := range m[i] {
			m[i][j] = rng.Intn(1000)
		}
	}

	return m
}

// simulateSpiral is an independent reference: it walks the grid cell by
// cell, turning clockwise whenever the next step leaves the grid or hits a
// visited cell.
func simulateSpiral(m [][]int) []int {
	n := len(m)
	if n == 0 || len(m[0]) == 0 {
		return []int{}
	}
	seen := make([][]bool, n)
	for i := range seen {
		seen[i] = make([]bool, n)
	}
	dr := [4]int{0, 1, 0, -1} // right, down, left, up
	dc := [4]int{1, 0, -1, 0}

	out := make([]int, 0, n*n)
	r, c, d := 0, 0, 0
	for len(out) < n*n {
		out = append(out, m[r][c])
		seen[r][c] = true
		nr, nc := r+dr[d], c+dc[d]
		if nr < 0 || nr >= n || nc < 0 || nc >= n || seen[nr][nc] {
			d = (d + 1) % 4
			nr, nc = r+dr[d], c+dc[d]
		}
		r, c = nr, nc
	}

	return out
}
