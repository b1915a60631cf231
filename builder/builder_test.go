package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kcover/builder"
	"github.com/katalvlaran/kcover/core"
)

func build(t *testing.T, opts []builder.BuilderOption, cons ...builder.Constructor) core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(opts, cons...)
	require.NoError(t, err)
	require.NoError(t, g.Validate(), "builders never produce dangling edges")

	return g
}

func TestPath(t *testing.T) {
	g := build(t, nil, builder.Path(4))
	require.Equal(t, []int{0, 1, 2, 3}, g.Vertices())
	require.Equal(t, 6, g.EdgeCount(), "3 undirected edges stored both ways")
	require.True(t, g.HasEdge(2, 1))

	single := build(t, nil, builder.Path(1))
	require.Equal(t, core.Graph{0: {}}, single)

	_, err := builder.BuildGraph(nil, builder.Path(0))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCycle(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithDirected()}, builder.Cycle(3))
	require.Equal(t, core.Graph{0: {1: 1}, 1: {2: 1}, 2: {0: 1}}, g)

	_, err := builder.BuildGraph(nil, builder.Cycle(2))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestStar(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithIDOffset(10), builder.WithWeightFn(builder.ConstantWeightFn(4))},
		builder.Star(4))
	ids, err := g.NeighborIDs(10)
	require.NoError(t, err)
	require.Equal(t, []int{11, 12, 13}, ids)
	w, _ := g.Weight(13, 10)
	require.Equal(t, int64(4), w)
}

func TestComplete(t *testing.T) {
	g := build(t, nil, builder.Complete(4))
	require.Equal(t, 12, g.EdgeCount())

	d := build(t, []builder.BuilderOption{builder.WithDirected()}, builder.Complete(4))
	require.Equal(t, 12, d.EdgeCount(), "directed K4 has every ordered pair")
}

func TestGrid(t *testing.T) {
	g := build(t, nil, builder.Grid(2, 3))
	require.Len(t, g.Vertices(), 6)
	// 2 rows × 2 horizontal + 3 vertical = 7 undirected edges.
	require.Equal(t, 14, g.EdgeCount())
	require.True(t, g.HasEdge(1, 4), "(0,1) — (1,1)")
	require.False(t, g.HasEdge(2, 3), "row ends do not wrap")

	_, err := builder.BuildGraph(nil, builder.Grid(0, 3))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestRandomSparse(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 9))}
	a := build(t, opts, builder.RandomSparse(20, 0.2))
	b := build(t, opts, builder.RandomSparse(20, 0.2))
	require.Equal(t, a, b, "same seed, same graph")

	empty := build(t, nil, builder.RandomSparse(5, 0))
	require.Equal(t, 0, empty.EdgeCount())

	full := build(t, nil, builder.RandomSparse(5, 1))
	require.Equal(t, 20, full.EdgeCount())

	_, err := builder.BuildGraph(nil, builder.RandomSparse(5, 0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(nil, builder.RandomSparse(5, 1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestComposeAndApply(t *testing.T) {
	g := build(t, nil, builder.Path(3))
	require.NoError(t, builder.Apply(g, []builder.BuilderOption{builder.WithIDOffset(100)}, builder.Star(3)))
	require.Equal(t, []int{0, 1, 2, 100, 101, 102}, g.Vertices())

	require.ErrorIs(t, builder.Apply(nil, nil, builder.Path(2)), builder.ErrConstructFailed)
	_, err := builder.BuildGraph(nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestWeightFns(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	u := builder.UniformWeightFn(3, 5)
	for i := 0; i < 100; i++ {
		w := u(rng)
		require.GreaterOrEqual(t, w, int64(3))
		require.LessOrEqual(t, w, int64(5))
	}
	require.Equal(t, int64(3), u(nil))
	require.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))

	require.Panics(t, func() { builder.UniformWeightFn(5, 3) })
	require.Panics(t, func() { builder.ConstantWeightFn(-1) })
	require.Panics(t, func() { builder.WithWeightFn(nil) })
	require.Panics(t, func() { builder.WithRand(nil) })
}
