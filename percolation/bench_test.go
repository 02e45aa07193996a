package percolation_test

import (
	"math/rand"
	"testing"

	"github.com/aev3/algos-percolation/percolation"
)

// BenchmarkOpenUntilPercolation measures random site opening on a 1000×1000
// grid until the system percolates, the dominant workload of a Monte Carlo
// trial. Each Open costs O(α(N²)) amortized.
func BenchmarkOpenUntilPercolation(b *testing.B) {
	const n = 1000
	r := rand.New(rand.NewSource(42))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		p, err := percolation.New(n)
		if err != nil {
			b.Fatalf("setup New failed: %v", err)
		}
		b.StartTimer()
		for !p.Percolates() {
			_ = p.Open(1+r.Intn(n), 1+r.Intn(n))
		}
	}
}

// BenchmarkIsFull measures fullness queries on a percolated 500×500 grid.
func BenchmarkIsFull(b *testing.B) {
	const n = 500
	p, err := percolation.New(n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	r := rand.New(rand.NewSource(42))
	for !p.Percolates() {
		_ = p.Open(1+r.Intn(n), 1+r.Intn(n))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.IsFull(1+r.Intn(n), 1+r.Intn(n))
	}
}
