// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mmgraph/core"
)

// EdgeSuite exercises edge lifecycle and neighborhood queries.
type EdgeSuite struct {
	suite.Suite
	g *core.Graph[*node]
}

func (s *EdgeSuite) SetupTest() {
	s.g = NewGraphFull()
}

// TestAddEdgeRegistersEndpoints verifies endpoints are auto-added.
func (s *EdgeSuite) TestAddEdgeRegistersEndpoints() {
	eid, err := s.g.AddWeightedEdge(N(IDA), N(IDB), Weight5)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "e1", eid)
	require.True(s.T(), s.g.HasVertex(IDA))
	require.True(s.T(), s.g.HasVertex(IDB))
	require.True(s.T(), s.g.HasEdge(IDA, IDB))
	require.True(s.T(), s.g.HasEdge(IDB, IDA), "undirected edges are mirrored")

	var nilNode *node
	_, err = s.g.AddEdge(nilNode, N(IDB))
	require.ErrorIs(s.T(), err, core.ErrNilVertex)
}

// TestParallelEdgesNotMerged verifies each AddEdge yields a distinct edge.
func (s *EdgeSuite) TestParallelEdgesNotMerged() {
	_, err := s.g.AddWeightedEdge(N(IDA), N(IDB), Weight5)
	require.NoError(s.T(), err)
	_, err = s.g.AddWeightedEdge(N(IDA), N(IDB), Weight5)
	require.NoError(s.T(), err)

	between := s.g.EdgesBetween(IDA, IDB)
	require.Len(s.T(), between, 2)
	require.Equal(s.T(), "e1", between[0].ID)
	require.Equal(s.T(), "e2", between[1].ID)
	require.Len(s.T(), s.g.EdgesBetween(IDB, IDA), 2)
	require.Empty(s.T(), s.g.EdgesBetween(IDA, IDC))
}

// TestEdgesOrderedBySequence verifies "e10" sorts after "e9".
func (s *EdgeSuite) TestEdgesOrderedBySequence() {
	for i := 0; i < 12; i++ {
		_, err := s.g.AddWeightedEdge(N(IDA), N(IDB), float64(i))
		require.NoError(s.T(), err)
	}
	edges := s.g.Edges()
	require.Len(s.T(), edges, 12)
	for i, e := range edges {
		require.Equal(s.T(), float64(i), e.Weight)
	}
	require.Equal(s.T(), "e12", edges[11].ID)
}

// TestLoopPolicy verifies self-loops follow WithLoops.
func (s *EdgeSuite) TestLoopPolicy() {
	strict := core.NewBipartiteGraph[*node]()
	_, err := strict.AddEdge(N(IDA), N(IDA))
	require.ErrorIs(s.T(), err, core.ErrLoopNotAllowed)

	_, err = s.g.AddEdge(N(IDA), N(IDA))
	require.NoError(s.T(), err)
	_, _, undirected, err := s.g.Degree(IDA)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, undirected)
}

// TestMixedOverrides verifies per-edge direction needs mixed mode.
func (s *EdgeSuite) TestMixedOverrides() {
	_, err := s.g.AddEdge(N(IDA), N(IDB), core.WithEdgeDirected(true))
	require.ErrorIs(s.T(), err, core.ErrMixedEdgesNotAllowed)

	mg := core.NewGraph[*node](core.WithMixedEdges())
	_, err = mg.AddEdge(N(IDA), N(IDB), core.WithEdgeDirected(true))
	require.NoError(s.T(), err)
	require.True(s.T(), mg.HasDirectedEdges())
	require.True(s.T(), mg.HasEdge(IDA, IDB))
	require.False(s.T(), mg.HasEdge(IDB, IDA))

	in, out, undirected, err := mg.Degree(IDB)
	require.NoError(s.T(), err)
	require.Equal(s.T(), [3]int{1, 0, 0}, [3]int{in, out, undirected})
}

// TestRemoveEdgeAndVertex verifies removal keeps adjacency consistent.
func (s *EdgeSuite) TestRemoveEdgeAndVertex() {
	e1, err := s.g.AddWeightedEdge(N(IDA), N(IDB), Weight5)
	require.NoError(s.T(), err)
	_, err = s.g.AddWeightedEdge(N(IDB), N(IDC), Weight5)
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.g.RemoveEdge(e1))
	require.ErrorIs(s.T(), s.g.RemoveEdge(e1), core.ErrEdgeNotFound)
	require.False(s.T(), s.g.HasEdge(IDA, IDB))

	ids, err := s.g.NeighborIDs(IDA)
	require.NoError(s.T(), err)
	require.Empty(s.T(), ids, "vertex survives edge removal as isolated")

	require.NoError(s.T(), s.g.RemoveVertex(IDB))
	require.Zero(s.T(), s.g.EdgeCount())
	require.False(s.T(), s.g.HasEdge(IDC, IDB))
	_, err = s.g.Neighbors(IDB)
	require.ErrorIs(s.T(), err, core.ErrVertexNotFound)
}

// TestNeighborhood verifies Neighbors/NeighborIDs/AdjacencyList.
func (s *EdgeSuite) TestNeighborhood() {
	_, _ = s.g.AddWeightedEdge(N(IDA), N(IDC), Weight5)
	_, _ = s.g.AddWeightedEdge(N(IDA), N(IDB), Weight5)
	_, _ = s.g.AddWeightedEdge(N(IDA), N(IDB), WeightHalf)
	require.NoError(s.T(), s.g.AddVertex(N(IDD)))

	nb, err := s.g.Neighbors(IDA)
	require.NoError(s.T(), err)
	require.Len(s.T(), nb, 3)
	require.Equal(s.T(), "e1", nb[0].ID)

	ids, err := s.g.NeighborIDs(IDA)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{IDB, IDC}, ids)

	adj := s.g.AdjacencyList()
	require.Equal(s.T(), []string{"e1", "e2", "e3"}, adj[IDA])
	require.Equal(s.T(), []string{"e2", "e3"}, adj[IDB])
	require.Empty(s.T(), adj[IDD])

	st := s.g.Stats()
	require.Equal(s.T(), 4, st.VertexCount)
	require.Equal(s.T(), 1, st.IsolatedVertexCount)
	require.Equal(s.T(), 3, st.UndirectedEdgeCount)
	require.InDelta(s.T(), 10.5, st.TotalWeight, 1e-12)
}

// TestFilterEdges verifies predicate-based removal.
func (s *EdgeSuite) TestFilterEdges() {
	_, _ = s.g.AddWeightedEdge(N(IDA), N(IDB), WeightNeg)
	_, _ = s.g.AddWeightedEdge(N(IDA), N(IDC), Weight5)

	s.g.FilterEdges(func(e *core.Edge) bool { return e.Weight > 0 })
	require.Equal(s.T(), 1, s.g.EdgeCount())
	require.False(s.T(), s.g.HasEdge(IDA, IDB))
	require.True(s.T(), s.g.HasEdge(IDC, IDA))
}

func TestEdgeSuite(t *testing.T) {
	suite.Run(t, new(EdgeSuite))
}
