// SPDX-License-Identifier: MIT

// Package builder_test verifies topology, counts, determinism and error
// policy of every Constructor.
package builder_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ncd/builder"
	"github.com/katalvlaran/ncd/core"
)

// edgeKey identifies an edge by its endpoints.
type edgeKey struct{ U, V string }

// edgeWeights returns a map from edgeKey to weight for all edges in g.
func edgeWeights(g *core.Graph) map[edgeKey]float64 {
	m := make(map[edgeKey]float64)
	for _, e := range g.Edges() {
		m[edgeKey{U: e.From, V: e.To}] = e.Weight
	}
	return m
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				edges := edgeWeights(g)
				for i := 0; i < 5; i++ {
					w, ok := edges[edgeKey{strconv.Itoa(i), strconv.Itoa((i + 1) % 5)}]
					require.True(t, ok)
					require.Equal(t, builder.DefaultEdgeWeight, w)
				}
			},
		},
		{name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3},
		{
			name: "Star(5)", ctor: builder.Star(5), wantV: 5, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				_, _, deg, err := g.Degree("0")
				require.NoError(t, err)
				require.Equal(t, 4, deg)
			},
		},
		{name: "Complete(6)", ctor: builder.Complete(6), wantV: 6, wantE: 15},
		{
			name: "RingOfCliques(4,5)", ctor: builder.RingOfCliques(4, 5), wantV: 20, wantE: 4*10 + 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				require.True(t, g.HasEdge("4", "5"))
				require.True(t, g.HasEdge("19", "0"))
				v, err := g.Vertex("7")
				require.NoError(t, err)
				require.Equal(t, 1, v.Metadata[builder.BlockKey])
			},
		},
		{
			name: "Petersen", ctor: builder.Petersen(), wantV: 10, wantE: 15,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for _, id := range g.Vertices() {
					_, _, deg, err := g.Degree(id)
					require.NoError(t, err)
					require.Equal(t, 3, deg, "vertex %s", id)
				}
			},
		},
		{
			name: "Tutte", ctor: builder.Tutte(), wantV: 46, wantE: 69,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for _, id := range g.Vertices() {
					_, _, deg, err := g.Degree(id)
					require.NoError(t, err)
					require.Equal(t, 3, deg, "vertex %s", id)
				}
			},
		},
		{
			name: "KarateClub", ctor: builder.KarateClub(), wantV: 34, wantE: 78,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				_, _, deg, err := g.Degree("33")
				require.NoError(t, err)
				require.Equal(t, 17, deg)
				hi, err := g.Vertex("0")
				require.NoError(t, err)
				require.Equal(t, builder.ClubMrHi, hi.Metadata[builder.ClubKey])
				officer, err := g.Vertex("33")
				require.NoError(t, err)
				require.Equal(t, builder.ClubOfficer, officer.Metadata[builder.ClubKey])
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph([]core.GraphOption{core.WithWeighted()}, nil, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.wantV, g.VertexCount())
			require.Equal(t, tc.wantE, g.EdgeCount())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuilders_UnweightedUsesZero(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(3))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		require.Zero(t, e.Weight)
		require.Equal(t, 1.0, g.EdgeWeight(e))
	}
}

func TestBuilders_DirectedMirrors(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Complete(4))
	require.NoError(t, err)
	require.Equal(t, 12, g.EdgeCount())
	require.True(t, g.HasEdge("3", "0"))

	g, err = builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Cycle(4))
	require.NoError(t, err)
	require.Equal(t, 4, g.EdgeCount())
	require.False(t, g.HasEdge("1", "0"))
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Cycle", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Path", builder.Path(1), builder.ErrTooFewVertices},
		{"Star", builder.Star(1), builder.ErrTooFewVertices},
		{"Complete", builder.Complete(0), builder.ErrTooFewVertices},
		{"RingOfCliquesK", builder.RingOfCliques(1, 3), builder.ErrTooFewVertices},
		{"RingOfCliquesSize", builder.RingOfCliques(3, 1), builder.ErrTooFewVertices},
		{"RandomSparseP", builder.RandomSparse(5, 1.5), builder.ErrInvalidProbability},
		{"RandomSparseRNG", builder.RandomSparse(5, 0.5), builder.ErrNeedRandSource},
		{"PlantedPartitionP", builder.PlantedPartition(2, 3, -0.1, 0), builder.ErrInvalidProbability},
		{"PlantedPartitionRNG", builder.PlantedPartition(2, 3, 1, 0), builder.ErrNeedRandSource},
		{"Nil", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRandom_Deterministic(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(30, 0.2))
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	require.Equal(t, edgeWeights(a), edgeWeights(b))
}

func TestPlantedPartition_Extremes(t *testing.T) {
	// pIn=1, pOut=0 yields l disjoint cliques.
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.PlantedPartition(3, 4, 1, 0))
	require.NoError(t, err)
	require.Equal(t, 12, g.VertexCount())
	require.Equal(t, 3*6, g.EdgeCount())
	require.False(t, g.HasEdge("3", "4"))

	v, err := g.Vertex("11")
	require.NoError(t, err)
	require.Equal(t, 2, v.Metadata[builder.BlockKey])
}

func TestOptions(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{
			builder.WithIDScheme(builder.SymbolIDFn),
			builder.WithWeightFn(builder.ConstantWeightFn(2.5)),
		},
		builder.Path(3),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	require.Equal(t, map[edgeKey]float64{{"A", "B"}: 2.5, {"B", "C"}: 2.5}, edgeWeights(g))

	r := rand.New(rand.NewSource(7))
	g, err = builder.Build(builder.Cycle(3), []core.GraphOption{core.WithWeighted()},
		builder.WithRand(r), builder.WithWeightFn(builder.UniformWeightFn(1, 2)))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		require.GreaterOrEqual(t, e.Weight, 1.0)
		require.Less(t, e.Weight, 2.0)
	}

	require.Panics(t, func() { builder.WithIDScheme(nil) })
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithWeightFn(nil) })
	require.Panics(t, func() { builder.ConstantWeightFn(-1) })
	require.Panics(t, func() { builder.PaddedIDFn(0) })
	require.Equal(t, "007", builder.PaddedIDFn(3)(7))
	require.Equal(t, "AA", builder.SymbolIDFn(26))
	require.Equal(t, "ZZ", builder.SymbolIDFn(701))
	require.Equal(t, "AAA", builder.SymbolIDFn(702))
}
