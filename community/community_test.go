// SPDX-License-Identifier: MIT

package community_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/ncd/community"
	"github.com/katalvlaran/ncd/core"
)

// twoTriangles returns triangles 0-1-2 and 3-4-5 joined by the bridge 2-3.
func twoTriangles(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for _, e := range [][2]string{{"0", "1"}, {"1", "2"}, {"0", "2"}, {"3", "4"}, {"4", "5"}, {"3", "5"}, {"2", "3"}} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}
	return g
}

type AdjacencySuite struct {
	suite.Suite
	g   *core.Graph
	adj *community.Adjacency
}

func (s *AdjacencySuite) SetupTest() {
	s.g = twoTriangles(s.T())
	adj, err := community.NewAdjacency(s.g)
	s.Require().NoError(err)
	s.adj = adj
}

func (s *AdjacencySuite) TestSnapshot() {
	s.Equal(6, s.adj.Len())
	s.Equal(7.0, s.adj.TotalWeight)
	s.Equal([]float64{2, 2, 3, 3, 2, 2}, s.adj.OutDegree)
	s.Equal([]int{0, 1, 3}, s.adj.Neighbors(2))
	s.Nil(s.adj.In)
	s.Equal([]string{"3"}, s.adj.Members[3])
}

func (s *AdjacencySuite) TestQuotient() {
	q, err := community.Quotient(s.adj, []int{0, 0, 0, 1, 1, 1})
	s.Require().NoError(err)
	s.Equal(2, q.Len())
	s.Equal(7.0, q.TotalWeight)
	s.Equal([]float64{3, 3}, q.Loops)
	s.Equal(1.0, q.Out[0][1])
	s.Equal([]string{"0", "1", "2"}, q.Members[0])

	g, err := q.Graph()
	s.Require().NoError(err)
	s.Equal(3, g.EdgeCount())
	v, err := g.Vertex("1")
	s.Require().NoError(err)
	s.Equal([]string{"3", "4", "5"}, v.Metadata[community.NodesKey])
}

func (s *AdjacencySuite) TestQuotientRejectsGaps() {
	_, err := community.Quotient(s.adj, []int{0, 0, 0, 2, 2, 2})
	s.ErrorIs(err, community.ErrNotPartition)
	_, err = community.Quotient(s.adj, []int{0, 0})
	s.ErrorIs(err, community.ErrNotPartition)
}

func (s *AdjacencySuite) TestNewResult() {
	res, err := community.NewResult(s.adj, []int{0, 0, 0, 1, 1, 1}, 1)
	s.Require().NoError(err)
	s.Equal(2, res.Count)
	s.InDelta(5.0/14.0, res.Modularity, 1e-12)
	s.Equal([][]string{{"0", "1", "2"}, {"3", "4", "5"}}, res.Communities)

	got, err := res.Predict([]string{"5", "0"})
	s.Require().NoError(err)
	s.Equal([]int{1, 0}, got)

	_, err = res.Predict([]string{"nope"})
	s.ErrorIs(err, community.ErrUnknownNode)
}

func TestAdjacencySuite(t *testing.T) {
	suite.Run(t, new(AdjacencySuite))
}

func TestModularity_Undirected(t *testing.T) {
	g := twoTriangles(t)

	q, err := community.Modularity(g, [][]string{{"0", "1", "2"}, {"3", "4", "5"}}, 1)
	require.NoError(t, err)
	require.InDelta(t, 5.0/14.0, q, 1e-12)

	q, err = community.Modularity(g, [][]string{{"0"}, {"1"}, {"2"}, {"3"}, {"4"}, {"5"}}, 1)
	require.NoError(t, err)
	require.InDelta(t, -34.0/196.0, q, 1e-12)

	q, err = community.Modularity(g, [][]string{{"0", "1", "2", "3", "4", "5"}}, 1)
	require.NoError(t, err)
	require.InDelta(t, 0, q, 1e-12)

	// resolution 0 leaves only the coverage term
	q, err = community.Modularity(g, [][]string{{"0", "1", "2"}, {"3", "4", "5"}}, 0)
	require.NoError(t, err)
	require.InDelta(t, 6.0/7.0, q, 1e-12)
}

func TestModularity_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range [][2]string{{"a", "b"}, {"b", "a"}, {"c", "d"}, {"d", "c"}, {"b", "c"}} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}
	q, err := community.Modularity(g, [][]string{{"a", "b"}, {"c", "d"}}, 1)
	require.NoError(t, err)
	// L=2 each, m=5; out_ab=3 in_ab=2, out_cd=2 in_cd=3
	require.InDelta(t, 4.0/5.0-12.0/25.0, q, 1e-12)

	q, err = community.Modularity(g, [][]string{{"a", "b", "c", "d"}}, 1)
	require.NoError(t, err)
	require.InDelta(t, 0, q, 1e-12)
}

func TestModularity_SelfLoop(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithLoops())
	_, err := g.AddEdge("0", "0", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("0", "1", 1)
	require.NoError(t, err)

	q, err := community.Modularity(g, [][]string{{"0"}, {"1"}}, 1)
	require.NoError(t, err)
	require.InDelta(t, -0.125, q, 1e-12)
}

func TestModularity_Errors(t *testing.T) {
	g := twoTriangles(t)

	_, err := community.Modularity(g, [][]string{{"0", "1", "2"}, {"2", "3", "4", "5"}}, 1)
	require.ErrorIs(t, err, community.ErrNotPartition)
	_, err = community.Modularity(g, [][]string{{"0", "1", "2"}}, 1)
	require.ErrorIs(t, err, community.ErrNotPartition)
	_, err = community.Modularity(g, [][]string{{"0", "1", "2", "x"}, {"3", "4", "5"}}, 1)
	require.ErrorIs(t, err, community.ErrNotPartition)
	_, err = community.Modularity(nil, nil, 1)
	require.ErrorIs(t, err, community.ErrNilGraph)

	empty := core.NewGraph()
	require.NoError(t, empty.AddVertex("a"))
	q, err := community.Modularity(empty, [][]string{{"a"}}, 1)
	require.NoError(t, err)
	require.Zero(t, q)
}

func TestNewAdjacency_Collapse(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A", 2)
	require.NoError(t, err)

	adj, err := community.NewAdjacency(g)
	require.NoError(t, err)
	require.Equal(t, 3.0, adj.Out[0][1])
	require.Equal(t, 3.0, adj.Out[1][0])
	require.Equal(t, 3.0, adj.TotalWeight)

	_, err = g.AddEdge("A", "C", -1)
	require.NoError(t, err)
	_, err = community.NewAdjacency(g)
	require.ErrorIs(t, err, community.ErrNegativeWeight)
}

func TestRelabel(t *testing.T) {
	got, k := community.Relabel([]int{5, 5, 2, 7, 2})
	require.Equal(t, []int{0, 0, 1, 2, 1}, got)
	require.Equal(t, 3, k)
}

func TestRand_Deterministic(t *testing.T) {
	a := community.Perm(20, community.NewRand(7))
	b := community.Perm(20, community.NewRand(7))
	require.Equal(t, a, b)
	require.Equal(t, community.Perm(20, community.NewRand(0)), community.Perm(20, community.NewRand(community.DefaultSeed)))
	require.ElementsMatch(t, []int{0, 1, 2, 3}, community.Perm(4, nil))
	require.Equal(t, 9, community.Choice([]int{9}, nil))
}

func TestResult_NotFitted(t *testing.T) {
	var r *community.Result
	_, err := r.Predict([]string{"a"})
	require.ErrorIs(t, err, community.ErrNotFitted)
}
