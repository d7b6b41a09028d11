package gcircle_test

import (
	"testing"

	"github.com/katalvlaran/dirichlet/gcircle"
	"github.com/katalvlaran/dirichlet/mobius"
)

// BenchmarkTransformBy measures pulling a circle back through a map.
func BenchmarkTransformBy(b *testing.B) {
	g, _ := gcircle.FromCenterRadius(1.2+0.4i, 0.6)
	m, _ := mobius.New(1, 0.5, 0.5, 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.TransformBy(m)
	}
}

// BenchmarkDominance measures one triple-inclusion test.
func BenchmarkDominance(b *testing.B) {
	outer, _ := gcircle.FromCenterRadius(2, 1.5)
	inner, _ := gcircle.FromCenterRadius(2.5, 0.5)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = outer.Dominance(0, inner)
	}
}
