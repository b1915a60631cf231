package reach_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kcover/builder"
	"github.com/katalvlaran/kcover/core"
	"github.com/katalvlaran/kcover/reach"
)

var strategies = []reach.Strategy{reach.StrategyWorklist, reach.StrategyHeap}

// triangle is the three-vertex line 1 —10— 2 —5— 3 stored in both directions.
func triangle() core.Graph {
	return core.Graph{
		1: {2: 10},
		2: {1: 10, 3: 5},
		3: {2: 5},
	}
}

func TestSearch_LineGraph(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			g := triangle()

			ids, err := reach.Within(g, 2, 5, reach.WithStrategy(s))
			require.NoError(t, err)
			require.Equal(t, []int{2, 3}, ids, "1 is 10 away, beyond radius 5")

			ids, err = reach.Within(g, 1, 5, reach.WithStrategy(s))
			require.NoError(t, err)
			require.Equal(t, []int{1}, ids)

			ids, err = reach.Within(g, 3, 5, reach.WithStrategy(s))
			require.NoError(t, err)
			require.Equal(t, []int{2, 3}, ids)

			dist, err := reach.Search(g, 1, 15, reach.WithStrategy(s))
			require.NoError(t, err)
			require.Equal(t, map[int]int64{1: 0, 2: 10, 3: 15}, dist, "radius is inclusive")
		})
	}
}

func TestSearch_WorklistReexpandsImprovedVertex(t *testing.T) {
	// 1→2 is long, 1→3→2 is short; FIFO reaches 2 first through the long edge.
	g := core.Graph{
		1: {2: 10, 3: 1},
		2: {4: 1},
		3: {2: 1},
		4: {},
	}
	want := map[int]int64{1: 0, 2: 2, 3: 1, 4: 3}

	expansions := map[int]int{}
	dist, err := reach.Search(g, 1, 12, reach.WithOnExpand(func(v int, _ int64) {
		expansions[v]++
	}))
	require.NoError(t, err)
	require.Equal(t, want, dist)
	require.Equal(t, 2, expansions[2], "worklist expands 2 again after its distance improved")

	expansions = map[int]int{}
	dist, err = reach.Search(g, 1, 12,
		reach.WithStrategy(reach.StrategyHeap),
		reach.WithOnExpand(func(v int, _ int64) { expansions[v]++ }),
	)
	require.NoError(t, err)
	require.Equal(t, want, dist)
	for v, n := range expansions {
		require.Equal(t, 1, n, "heap expands %d exactly once", v)
	}
}

func TestSearch_RadiusZero(t *testing.T) {
	g := core.Graph{1: {2: 0, 3: 1}, 2: {}, 3: {}}
	for _, s := range strategies {
		ids, err := reach.Within(g, 1, 0, reach.WithStrategy(s))
		require.NoError(t, err)
		require.Equal(t, []int{1, 2}, ids, "zero-weight edges stay inside radius 0")
	}
}

func TestSearch_Directed(t *testing.T) {
	g := core.Graph{1: {2: 1}, 2: {}}
	ids, err := reach.Within(g, 2, 100)
	require.NoError(t, err)
	require.Equal(t, []int{2}, ids, "edge 1→2 cannot be walked backwards")
}

func TestSearch_MissingVertex(t *testing.T) {
	g := core.Graph{1: {5: 1}}
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			_, err := reach.Search(g, 1, 1, reach.WithStrategy(s))
			var mv *reach.MissingVertexError
			require.True(t, errors.As(err, &mv), "got %v", err)
			require.Equal(t, 5, mv.Vertex)
			require.Equal(t, 1, mv.From)
			require.ErrorIs(t, err, core.ErrVertexNotFound)

			// Beyond the radius the dangling target is never expanded.
			ids, err := reach.Within(g, 1, 0, reach.WithStrategy(s))
			require.NoError(t, err)
			require.Equal(t, []int{1}, ids)
		})
	}
}

func TestSearch_MissingSource(t *testing.T) {
	_, err := reach.Search(core.Graph{1: {}}, 9, 3)
	var mv *reach.MissingVertexError
	require.ErrorAs(t, err, &mv)
	require.Equal(t, 9, mv.Vertex)
	require.Equal(t, 9, mv.From)
	require.Contains(t, err.Error(), "source vertex 9")
}

func TestSearch_InvalidRadius(t *testing.T) {
	_, err := reach.Search(triangle(), 1, -1)
	var ir *reach.InvalidRadiusError
	require.ErrorAs(t, err, &ir)
	require.Equal(t, int64(-1), ir.Radius)
}

func TestSearch_NegativeWeight(t *testing.T) {
	// A negative cycle would otherwise keep improving distances forever.
	g := core.Graph{1: {2: 1}, 2: {1: -2}}
	for _, s := range strategies {
		_, err := reach.Search(g, 1, 10, reach.WithStrategy(s))
		require.ErrorIs(t, err, reach.ErrNegativeWeight)
	}
}

func TestSearch_NoOverflow(t *testing.T) {
	g := core.Graph{
		1: {2: math.MaxInt64 - 1},
		2: {3: 5},
		3: {},
	}
	for _, s := range strategies {
		dist, err := reach.Search(g, 1, math.MaxInt64, reach.WithStrategy(s))
		require.NoError(t, err)
		require.Equal(t, map[int]int64{1: 0, 2: math.MaxInt64 - 1}, dist)
	}
}

func TestStrategiesAgreeOnRandomGraphs(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{
				builder.WithSeed(seed),
				builder.WithDirected(),
				builder.WithWeightFn(builder.UniformWeightFn(0, 20)),
			},
			builder.RandomSparse(25, 0.15),
		)
		require.NoError(t, err)

		for _, src := range g.Vertices() {
			a, err := reach.Search(g, src, 30)
			require.NoError(t, err)
			b, err := reach.Search(g, src, 30, reach.WithStrategy(reach.StrategyHeap))
			require.NoError(t, err)
			require.Equal(t, a, b, "seed=%d source=%d", seed, src)
		}
	}
}

func TestParseStrategy(t *testing.T) {
	s, err := reach.ParseStrategy("heap")
	require.NoError(t, err)
	require.Equal(t, reach.StrategyHeap, s)

	s, err = reach.ParseStrategy("")
	require.NoError(t, err)
	require.Equal(t, reach.StrategyWorklist, s)

	_, err = reach.ParseStrategy("bfs")
	require.Error(t, err)

	require.Equal(t, "Strategy(7)", reach.Strategy(7).String())
	require.Panics(t, func() { reach.WithStrategy(reach.Strategy(7)) })
}
