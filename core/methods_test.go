package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/kcover/core"
)

type GraphSuite struct {
	suite.Suite
	g core.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph(0)
}

func (s *GraphSuite) TestAddVertexIdempotent() {
	require := require.New(s.T())
	require.False(s.g.HasVertex(1), "empty graph should not have 1")

	s.g.AddVertex(1)
	require.True(s.g.HasVertex(1))

	// Adding again keeps existing edges.
	require.NoError(s.g.AddEdge(1, 2, 3))
	s.g.AddVertex(1)
	require.True(s.g.HasEdge(1, 2), "AddVertex must not reset adjacency")
	require.Equal(2, s.g.VertexCount())
}

func (s *GraphSuite) TestAddEdgeAddsEndpoints() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(1, 2, 5))

	require.True(s.g.HasVertex(1))
	require.True(s.g.HasVertex(2), "target must become a vertex")
	require.True(s.g.HasEdge(1, 2))
	require.False(s.g.HasEdge(2, 1), "edges are directed")

	w, ok := s.g.Weight(1, 2)
	require.True(ok)
	require.Equal(int64(5), w)

	// Overwrite keeps a single edge.
	require.NoError(s.g.AddEdge(1, 2, 7))
	w, _ = s.g.Weight(1, 2)
	require.Equal(int64(7), w)
	require.Equal(1, s.g.EdgeCount())
}

func (s *GraphSuite) TestAddEdgeRejectsNegativeWeight() {
	require := require.New(s.T())
	err := s.g.AddEdge(1, 2, -1)
	require.ErrorIs(err, core.ErrBadWeight)
	require.Equal(0, s.g.VertexCount(), "rejected edge must not add vertices")
}

func (s *GraphSuite) TestAddUndirectedEdge() {
	require := require.New(s.T())
	require.NoError(s.g.AddUndirectedEdge(1, 2, 4))
	require.True(s.g.HasEdge(1, 2))
	require.True(s.g.HasEdge(2, 1))
	require.Equal(2, s.g.EdgeCount())

	// Self-loop stored once.
	require.NoError(s.g.AddUndirectedEdge(3, 3, 0))
	require.Equal(3, s.g.EdgeCount())
}

func (s *GraphSuite) TestNeighborsMissingVertex() {
	require := require.New(s.T())
	_, err := s.g.Neighbors(42)
	require.ErrorIs(err, core.ErrVertexNotFound)

	_, err = s.g.NeighborIDs(42)
	require.ErrorIs(err, core.ErrVertexNotFound)
}

func (s *GraphSuite) TestSortedEnumeration() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(3, 1, 1))
	require.NoError(s.g.AddEdge(3, 2, 2))
	require.NoError(s.g.AddEdge(1, 3, 3))
	s.g.AddVertex(-5)

	require.Equal([]int{-5, 1, 2, 3}, s.g.Vertices())

	ids, err := s.g.NeighborIDs(3)
	require.NoError(err)
	require.Equal([]int{1, 2}, ids)

	require.Equal([]core.Edge{
		{From: 1, To: 3, Weight: 3},
		{From: 3, To: 1, Weight: 1},
		{From: 3, To: 2, Weight: 2},
	}, s.g.Edges())
}

func (s *GraphSuite) TestCloneIsDeep() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(1, 2, 1))
	cp := s.g.Clone()

	require.NoError(cp.AddEdge(1, 3, 9))
	cp[1][2] = 100

	require.False(s.g.HasEdge(1, 3))
	w, _ := s.g.Weight(1, 2)
	require.Equal(int64(1), w)

	var nilGraph core.Graph
	require.Nil(nilGraph.Clone())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestFromEdges(t *testing.T) {
	g, err := core.FromEdges([]core.Edge{
		{From: 1, To: 2, Weight: 10},
		{From: 2, To: 3, Weight: 5},
	})
	require.NoError(t, err)
	require.Equal(t, core.Graph{1: {2: 10}, 2: {3: 5}, 3: {}}, g)

	_, err = core.FromEdges([]core.Edge{{From: 1, To: 2, Weight: -3}})
	require.ErrorIs(t, err, core.ErrBadWeight)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		g    core.Graph
		want error
	}{
		{name: "empty", g: core.Graph{}, want: nil},
		{name: "nil", g: nil, want: nil},
		{name: "ok", g: core.Graph{1: {2: 1}, 2: {1: 1}}, want: nil},
		{name: "dangling", g: core.Graph{1: {5: 1}}, want: core.ErrDanglingEdge},
		{name: "negative", g: core.Graph{1: {2: -1}, 2: {}}, want: core.ErrBadWeight},
		// Edge 1→2 is inspected before 3→9, so the weight problem wins.
		{name: "first in order", g: core.Graph{1: {2: -1}, 2: {}, 3: {9: 1}}, want: core.ErrBadWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.g.Validate()
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestEdgeString(t *testing.T) {
	require.Equal(t, "1→2(10)", core.Edge{From: 1, To: 2, Weight: 10}.String())
}
