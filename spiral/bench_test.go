package spiral_test

import (
	"testing"

	"github.com/katalvlaran/snailshell/spiral"
)

// benchmarkTraverse runs Traverse on a row-major n×n matrix.
func benchmarkTraverse(b *testing.B, n int) {
	m := rowMajor(n)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := spiral.Traverse(m); err != nil {
			b.Fatalf("Traverse failed: %v", err)
		}
	}
}

// BenchmarkTraverse_Small benchmarks a 10×10 matrix.
func BenchmarkTraverse_Small(b *testing.B) { benchmarkTraverse(b, 10) }

// BenchmarkTraverse_Medium benchmarks a 100×100 matrix.
func BenchmarkTraverse_Medium(b *testing.B) { benchmarkTraverse(b, 100) }

// BenchmarkTraverse_Large benchmarks a 1000×1000 matrix.
func BenchmarkTraverse_Large(b *testing.B) { benchmarkTraverse(b, 1000) }

// BenchmarkFill_Medium benchmarks the inverse on 100² values.
func BenchmarkFill_Medium(b *testing.B) {
	values := make([]int, 100*100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := spiral.Fill(values); err != nil {
			b.Fatalf("Fill failed: %v", err)
		}
	}
}
