// SPDX-License-Identifier: MIT

// Package coloring implements greedy vertex colouring of a core.Graph.
//
// A colouring assigns each vertex a non-negative integer so that adjacent
// vertices never share one. Edge direction is ignored and self-loops do not
// constrain the colour of their vertex. Colours are assigned in strategy
// order; each vertex takes the smallest colour unused by its already
// coloured neighbours.
package coloring

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/ncd/core"
)

// Strategy selects the order in which vertices are coloured.
type Strategy int

const (
	// LargestFirst visits vertices by total degree descending, ties by ID.
	LargestFirst Strategy = iota
	// Sequential visits vertices in sorted ID order.
	Sequential
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case LargestFirst:
		return "largest_first"
	case Sequential:
		return "sequential"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Sentinel errors.
var (
	// ErrUnknownStrategy indicates a Strategy value outside the enum.
	ErrUnknownStrategy = errors.New("coloring: unknown strategy")
	// ErrNilGraph indicates a nil graph argument.
	ErrNilGraph = errors.New("coloring: graph is nil")
)

// Greedy colours g with the given strategy and returns vertex -> colour.
// Complexity: O(V log V + E).
func Greedy(g *core.Graph, strategy Strategy) (map[string]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	order, err := orderVertices(g, strategy)
	if err != nil {
		return nil, fmt.Errorf("Greedy: %w", err)
	}

	colors := make(map[string]int, len(order))
	for _, u := range order {
		nbrs, err := undirectedNeighbors(g, u)
		if err != nil {
			return nil, fmt.Errorf("Greedy: %w", err)
		}
		used := make(map[int]struct{}, len(nbrs))
		for _, v := range nbrs {
			if c, ok := colors[v]; ok && v != u {
				used[c] = struct{}{}
			}
		}
		c := 0
		for {
			if _, taken := used[c]; !taken {
				break
			}
			c++
		}
		colors[u] = c
	}

	return colors, nil
}

// Classes groups a colouring into colour classes: element c holds the sorted
// vertices of colour c. Unused colours yield no class.
func Classes(colors map[string]int) [][]string {
	byColor := make(map[int][]string)
	keys := make([]int, 0)
	for v, c := range colors {
		if _, ok := byColor[c]; !ok {
			keys = append(keys, c)
		}
		byColor[c] = append(byColor[c], v)
	}
	sort.Ints(keys)

	out := make([][]string, 0, len(keys))
	for _, c := range keys {
		members := byColor[c]
		sort.Strings(members)
		out = append(out, members)
	}

	return out
}

// orderVertices returns the visiting order for strategy.
func orderVertices(g *core.Graph, strategy Strategy) ([]string, error) {
	ids := g.Vertices()
	switch strategy {
	case Sequential:
		return ids, nil
	case LargestFirst:
		deg := make(map[string]int, len(ids))
		for _, id := range ids {
			_, _, total, err := g.Degree(id)
			if err != nil {
				return nil, err
			}
			deg[id] = total
		}
		sort.SliceStable(ids, func(i, j int) bool {
			return deg[ids[i]] > deg[ids[j]]
		})
		return ids, nil
	default:
		return nil, fmt.Errorf("%v: %w", strategy, ErrUnknownStrategy)
	}
}

// undirectedNeighbors returns successors and predecessors of id.
func undirectedNeighbors(g *core.Graph, id string) ([]string, error) {
	out, err := g.NeighborIDs(id)
	if err != nil {
		return nil, err
	}
	if !g.Directed() {
		return out, nil
	}
	in, err := g.InNeighbors(id)
	if err != nil {
		return nil, err
	}
	for _, e := range in {
		out = append(out, e.From)
	}

	return out, nil
}
