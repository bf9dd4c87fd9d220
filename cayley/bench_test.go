package cayley_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/clifford/blade"
	"github.com/katalvlaran/clifford/cayley"
	"github.com/katalvlaran/clifford/signature"
)

// BenchmarkBuild_CGA3 tabulates the 32×32 geometric product of conformal
// geometric algebra. Blade enumeration and bitmap construction are included.
func BenchmarkBuild_CGA3(b *testing.B) {
	m, err := signature.Metric[blade.D5](signature.CGA3)
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cayley.Build(ctx, m, blade.OpGeometric); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBuild_D8_Serial is the same work on a single worker for comparison.
func BenchmarkBuild_D8_Serial(b *testing.B) {
	m := blade.Euclidean[blade.D8]()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cayley.Build(ctx, m, blade.OpGeometric, cayley.WithWorkers(1)); err != nil {
			b.Fatal(err)
		}
	}
}
