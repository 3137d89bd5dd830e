// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ncd/core"
)

// TestGraph_AddRemoveVertex verifies AddVertex/HasVertex/RemoveVertex lifecycle rules.
func TestGraph_AddRemoveVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("A"))
	require.True(t, g.HasVertex("A"))

	// duplicate insert is a no-op
	require.NoError(t, g.AddVertex("A"))
	require.Equal(t, 1, g.VertexCount())

	require.ErrorIs(t, g.RemoveVertex(""), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.RemoveVertex("missing"), core.ErrVertexNotFound)
	require.NoError(t, g.RemoveVertex("A"))
	require.False(t, g.HasVertex("A"))
}

// TestGraph_AddEdgeConstraints checks every AddEdge validation branch.
func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("", "B", 0)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge("A", "B", 2.5)
	require.ErrorIs(t, err, core.ErrBadWeight, "unweighted graph rejects non-zero weight")

	_, err = g.AddEdge("A", "A", 0)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 0)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	_, err = g.AddEdge("B", "A", 0)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "undirected mirror counts as the same pair")

	w := core.NewGraph(core.WithWeighted())
	_, err = w.AddEdge("A", "B", math.NaN())
	require.ErrorIs(t, err, core.ErrBadWeight)
	_, err = w.AddEdge("A", "B", math.Inf(1))
	require.ErrorIs(t, err, core.ErrBadWeight)
	_, err = w.AddEdge("A", "B", 3)
	require.NoError(t, err)
}

// TestGraph_EdgeOrdering anchors creation-order iteration past e9.
func TestGraph_EdgeOrdering(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge("A", "B", 0)
		require.NoError(t, err)
	}
	edges := g.Edges()
	require.Len(t, edges, 12)
	require.Equal(t, "e1", edges[0].ID)
	require.Equal(t, "e9", edges[8].ID)
	require.Equal(t, "e10", edges[9].ID)
	require.Equal(t, "e12", edges[11].ID)
}

// TestGraph_UndirectedNeighbors checks mirroring and loop handling.
func TestGraph_UndirectedNeighbors(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("C", "A", 0)
	_, _ = g.AddEdge("A", "A", 0)

	nbs, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, nbs, 3)

	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, ids)

	ids, err = g.NeighborIDs("B")
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, ids)

	in, out, total, err := g.Degree("A")
	require.NoError(t, err)
	require.Zero(t, in)
	require.Zero(t, out)
	require.Equal(t, 4, total, "loop counts twice")

	inEdges, err := g.InNeighbors("A")
	require.NoError(t, err)
	require.Empty(t, inEdges)

	_, err = g.Neighbors("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestGraph_DirectedNeighbors checks successor/predecessor separation.
func TestGraph_DirectedNeighbors(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("C", "A", 2)
	_, _ = g.AddEdge("A", "D", 3)

	out, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, "B", out[0].To)
	require.Equal(t, "D", out[1].To)

	in, err := g.InNeighbors("A")
	require.NoError(t, err)
	require.Len(t, in, 1)
	require.Equal(t, "C", in[0].From)
	require.Equal(t, 2.0, in[0].Weight)

	require.True(t, g.HasEdge("A", "B"))
	require.False(t, g.HasEdge("B", "A"))

	din, dout, total, err := g.Degree("A")
	require.NoError(t, err)
	require.Equal(t, 1, din)
	require.Equal(t, 2, dout)
	require.Equal(t, 3, total)
}

// TestGraph_RemoveEdgeAndVertex verifies index cleanup.
func TestGraph_RemoveEdgeAndVertex(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	eid, _ := g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)

	require.ErrorIs(t, g.RemoveEdge("nope"), core.ErrEdgeNotFound)
	require.NoError(t, g.RemoveEdge(eid))
	require.False(t, g.HasEdge("A", "B"))
	in, err := g.InNeighbors("B")
	require.NoError(t, err)
	require.Empty(t, in)

	require.NoError(t, g.RemoveVertex("C"))
	require.Equal(t, 0, g.EdgeCount())
	out, err := g.Neighbors("B")
	require.NoError(t, err)
	require.Empty(t, out)
}

// TestGraph_CloneIsDeep ensures mutations of a clone do not leak back.
func TestGraph_CloneIsDeep(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 4)

	c := g.Clone()
	require.True(t, c.Directed())
	require.True(t, c.Weighted())
	require.True(t, c.HasEdge("A", "B"))

	_, err := c.AddEdge("B", "C", 1)
	require.NoError(t, err)
	require.Equal(t, "e2", c.Edges()[1].ID, "clone continues the edge counter")
	require.False(t, g.HasVertex("C"))

	empty := g.CloneEmpty()
	require.Equal(t, 2, empty.VertexCount())
	require.Equal(t, 0, empty.EdgeCount())
}

// TestGraph_FilterAndClear covers the maintenance helpers.
func TestGraph_FilterAndClear(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 5)

	g.FilterEdges(func(e *core.Edge) bool { return e.Weight > 2 })
	require.Equal(t, 1, g.EdgeCount())
	require.False(t, g.HasEdge("A", "B"))
	require.True(t, g.HasEdge("C", "B"))

	g.Clear()
	require.Equal(t, 0, g.VertexCount())
	require.True(t, g.Weighted(), "flags survive Clear")
}

// TestGraph_Stats checks the snapshot counters.
func TestGraph_Stats(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("C", "C", 0)

	s := g.Stats()
	require.Equal(t, 3, s.VertexCount)
	require.Equal(t, 3, s.EdgeCount)
	require.Equal(t, 1, s.LoopCount)
	require.Equal(t, 3.0, s.TotalWeight)
	require.True(t, s.AllowsMulti)
	require.False(t, s.Directed)
}

// TestGraph_VertexMetadata verifies live metadata access.
func TestGraph_VertexMetadata(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	v, err := g.Vertex("A")
	require.NoError(t, err)
	v.Metadata["nodes"] = []string{"x", "y"}

	again, err := g.Vertex("A")
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y"}, again.Metadata["nodes"])

	_, err = g.Vertex("B")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}
