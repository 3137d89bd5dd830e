// SPDX-License-Identifier: MIT

package coloring_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ncd/builder"
	"github.com/katalvlaran/ncd/coloring"
	"github.com/katalvlaran/ncd/core"
)

// assertProper checks that no edge joins two vertices of the same colour.
func assertProper(t *testing.T, g *core.Graph, colors map[string]int) {
	t.Helper()
	require.Len(t, colors, g.VertexCount())
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		assert.NotEqual(t, colors[e.From], colors[e.To], "edge %s-%s", e.From, e.To)
	}
}

func TestGreedy_Proper(t *testing.T) {
	t.Parallel()

	ctors := map[string]builder.Constructor{
		"petersen": builder.Petersen(),
		"tutte":    builder.Tutte(),
		"karate":   builder.KarateClub(),
		"cliques":  builder.RingOfCliques(3, 4),
	}
	for name, ctor := range ctors {
		ctor := ctor
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, ctor)
			require.NoError(t, err)
			for _, s := range []coloring.Strategy{coloring.LargestFirst, coloring.Sequential} {
				colors, err := coloring.Greedy(g, s)
				require.NoError(t, err)
				assertProper(t, g, colors)
			}
		})
	}
}

func TestGreedy_Complete(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(5))
	require.NoError(t, err)
	colors, err := coloring.Greedy(g, coloring.LargestFirst)
	require.NoError(t, err)
	require.Len(t, coloring.Classes(colors), 5)
}

func TestGreedy_LargestFirstStartsWithHub(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Star(6))
	require.NoError(t, err)
	colors, err := coloring.Greedy(g, coloring.LargestFirst)
	require.NoError(t, err)
	require.Equal(t, 0, colors["0"])
	require.Equal(t, [][]string{{"0"}, {"1", "2", "3", "4", "5"}}, coloring.Classes(colors))
}

func TestGreedy_DirectedIgnoresOrientation(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Cycle(3))
	require.NoError(t, err)
	colors, err := coloring.Greedy(g, coloring.Sequential)
	require.NoError(t, err)
	assertProper(t, g, colors)
	require.Len(t, coloring.Classes(colors), 3)
}

func TestGreedy_Errors(t *testing.T) {
	_, err := coloring.Greedy(nil, coloring.Sequential)
	require.ErrorIs(t, err, coloring.ErrNilGraph)
	_, err = coloring.Greedy(core.NewGraph(), coloring.Strategy(9))
	require.ErrorIs(t, err, coloring.ErrUnknownStrategy)
}

func ExampleClasses() {
	g, _ := builder.BuildGraph(nil, nil, builder.Cycle(4))
	colors, _ := coloring.Greedy(g, coloring.Sequential)
	fmt.Println(coloring.Classes(colors))
	// Output: [[0 2] [1 3]]
}
