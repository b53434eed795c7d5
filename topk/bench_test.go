package topk_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlkit/topk"
)

// benchmarkTop runs Top over n random items drawn from d distinct values.
func benchmarkTop(b *testing.B, n, d, k int) {
	rng := rand.New(rand.NewSource(1))
	items := make([]int, n)
	for i := range items {
		items[i] = rng.Intn(d)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := topk.Top(items, k); err != nil {
			b.Fatalf("Top failed: %v", err)
		}
	}
}

// BenchmarkTop_SmallK benchmarks a tight selection (k=10) from many distinct items.
func BenchmarkTop_SmallK(b *testing.B) {
	benchmarkTop(b, 100_000, 10_000, 10)
}

// BenchmarkTop_LargeK benchmarks a selection close to the distinct count.
func BenchmarkTop_LargeK(b *testing.B) {
	benchmarkTop(b, 100_000, 10_000, 5_000)
}
