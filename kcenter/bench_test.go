package kcenter_test

import (
	"testing"

	"github.com/katalvlaran/kcover/builder"
	"github.com/katalvlaran/kcover/kcenter"
	"github.com/katalvlaran/kcover/reach"
)

func benchmarkSolve(b *testing.B, opts ...kcenter.Option) {
	g := mustBuild(b,
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
		builder.Grid(30, 30),
	)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := kcenter.Solve(g, 12, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_Sequential(b *testing.B) { benchmarkSolve(b) }

func BenchmarkSolve_Parallel4(b *testing.B) { benchmarkSolve(b, kcenter.WithWorkers(4)) }

func BenchmarkSolve_Heap(b *testing.B) {
	benchmarkSolve(b, kcenter.WithStrategy(reach.StrategyHeap))
}
