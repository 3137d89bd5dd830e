// SPDX-License-Identifier: MIT

package louvain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ncd/builder"
	"github.com/katalvlaran/ncd/community"
	"github.com/katalvlaran/ncd/core"
	"github.com/katalvlaran/ncd/louvain"
)

func mustBuild(t *testing.T, ctor builder.Constructor, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(opts, nil, ctor)
	require.NoError(t, err)
	return g
}

// blockOf returns the planted block index of vertex id.
func blockOf(t *testing.T, g *core.Graph, id string) int {
	t.Helper()
	v, err := g.Vertex(id)
	require.NoError(t, err)
	return v.Metadata[builder.BlockKey].(int)
}

func TestFit_RingOfCliques(t *testing.T) {
	t.Parallel()

	for _, directed := range []bool{false, true} {
		directed := directed
		t.Run(map[bool]string{false: "undirected", true: "directed"}[directed], func(t *testing.T) {
			t.Parallel()
			g := mustBuild(t, builder.RingOfCliques(4, 5), core.WithDirected(directed))

			d := louvain.New()
			require.NoError(t, d.Fit(context.Background(), g))
			res, err := d.Result()
			require.NoError(t, err)
			require.Equal(t, 4, res.Count)

			// every clique lands in exactly one community
			for _, members := range res.Communities {
				require.Len(t, members, 5)
				want := blockOf(t, g, members[0])
				for _, id := range members[1:] {
					require.Equal(t, want, blockOf(t, g, id))
				}
			}
			// 4 cliques: Q = 4·(10/44 − (22/88)²)
			assert.InDelta(t, 4*(10.0/44.0-1.0/16.0), res.Modularity, 1e-9)
		})
	}
}

func TestFit_Karate(t *testing.T) {
	g := mustBuild(t, builder.KarateClub())
	d := louvain.New()
	require.NoError(t, d.Fit(context.Background(), g))

	res, err := d.Result()
	require.NoError(t, err)
	assert.Greater(t, res.Modularity, 0.38)
	assert.GreaterOrEqual(t, res.Count, 3)
	assert.LessOrEqual(t, res.Count, 6)
	assert.Equal(t, res.Count, res.Graph.VertexCount())

	q, err := community.Modularity(g, res.Communities, 1)
	require.NoError(t, err)
	assert.InDelta(t, q, res.Modularity, 1e-12)

	// the community graph keeps the total weight
	assert.InDelta(t, 78, res.Graph.Stats().TotalWeight, 1e-9)
}

func TestFit_Deterministic(t *testing.T) {
	g := mustBuild(t, builder.KarateClub())
	d := louvain.New(louvain.WithSeed(7))
	require.NoError(t, d.Fit(context.Background(), g))
	first, err := d.Result()
	require.NoError(t, err)

	require.NoError(t, d.Fit(context.Background(), g))
	second, err := d.Result()
	require.NoError(t, err)
	require.Equal(t, first.Node2Com, second.Node2Com)

	other := louvain.New(louvain.WithSeed(7))
	require.NoError(t, other.Fit(context.Background(), g))
	third, err := other.Result()
	require.NoError(t, err)
	require.Equal(t, first.Node2Com, third.Node2Com)
}

func TestPredict(t *testing.T) {
	g := mustBuild(t, builder.Petersen())
	d := louvain.New()

	_, err := d.Predict([]string{"0"})
	require.ErrorIs(t, err, community.ErrNotFitted)
	_, err = d.Levels()
	require.ErrorIs(t, err, community.ErrNotFitted)

	require.NoError(t, d.Fit(context.Background(), g))
	nodes := g.Vertices()
	coms, err := d.Predict(nodes)
	require.NoError(t, err)
	require.Len(t, coms, len(nodes))

	res, err := d.Result()
	require.NoError(t, err)
	for _, c := range coms {
		require.GreaterOrEqual(t, c, 0)
		require.Less(t, c, res.Count)
	}

	_, err = d.Predict([]string{"missing"})
	require.ErrorIs(t, err, community.ErrUnknownNode)
}

func TestFit_EdgeCases(t *testing.T) {
	err := louvain.New().Fit(context.Background(), core.NewGraph())
	require.ErrorIs(t, err, louvain.ErrEmptyGraph)

	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddVertex(id))
	}
	d := louvain.New()
	require.NoError(t, d.Fit(context.Background(), g))
	res, err := d.Result()
	require.NoError(t, err)
	require.Equal(t, 3, res.Count)
	require.Zero(t, res.Modularity)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = louvain.New().Fit(ctx, mustBuild(t, builder.Petersen()))
	require.ErrorIs(t, err, context.Canceled)
}

func TestPartitions(t *testing.T) {
	g := mustBuild(t, builder.KarateClub())
	d := louvain.New()

	var levels []louvain.Level
	require.NoError(t, d.Partitions(context.Background(), g, func(l louvain.Level) error {
		levels = append(levels, l)
		return nil
	}))
	require.NotEmpty(t, levels)

	prev := -1.0
	for i, l := range levels {
		require.Equal(t, i, l.Index)
		require.Equal(t, l.Graph.VertexCount(), len(l.InnerPartition))
		require.Equal(t, len(l.Partition), len(l.InnerPartition))
		require.GreaterOrEqual(t, l.Modularity, prev)
		prev = l.Modularity
	}

	// ErrStop ends the walk after the first level without error
	calls := 0
	require.NoError(t, d.Partitions(context.Background(), g, func(louvain.Level) error {
		calls++
		return louvain.ErrStop
	}))
	require.Equal(t, 1, calls)

	boom := errors.New("boom")
	require.ErrorIs(t, d.Partitions(context.Background(), g, func(louvain.Level) error { return boom }), boom)
}

func TestMaxLevels(t *testing.T) {
	g := mustBuild(t, builder.KarateClub())
	d := louvain.New(louvain.WithMaxLevels(1))
	require.NoError(t, d.Fit(context.Background(), g))
	levels, err := d.Levels()
	require.NoError(t, err)
	require.Len(t, levels, 1)
}

func TestResolution(t *testing.T) {
	g := mustBuild(t, builder.KarateClub())
	count := func(gamma float64) int {
		d := louvain.New(louvain.WithResolution(gamma))
		require.NoError(t, d.Fit(context.Background(), g))
		res, err := d.Result()
		require.NoError(t, err)
		return res.Count
	}
	require.LessOrEqual(t, count(0.1), count(3))
}

func TestOneLevelAndAggregate(t *testing.T) {
	g := mustBuild(t, builder.Petersen())
	adj, err := community.NewAdjacency(g)
	require.NoError(t, err)

	partition, inner, improvement := louvain.OneLevel(adj, adj.TotalWeight, 1, community.NewRand(0))
	require.True(t, improvement)
	require.Equal(t, len(partition), len(inner))

	next, err := louvain.Aggregate(adj, inner)
	require.NoError(t, err)
	require.Equal(t, len(inner), next.Len())
	require.InDelta(t, adj.TotalWeight, next.TotalWeight, 1e-12)

	_, err = louvain.Aggregate(adj, [][]int{{0, 1}})
	require.ErrorIs(t, err, community.ErrNotPartition)
}

func TestOptions_Panic(t *testing.T) {
	require.Panics(t, func() { louvain.WithResolution(0) })
	require.Panics(t, func() { louvain.WithThreshold(-1) })
	require.Panics(t, func() { louvain.WithMaxLevels(-1) })
	require.Panics(t, func() { louvain.WithLogger(nil) })
}
