// SPDX-License-Identifier: MIT
//
// File: modularity.go
// Role: Newman–Girvan modularity with a resolution parameter.

package community

import (
	"fmt"

	"github.com/katalvlaran/ncd/core"
)

// Modularity returns the modularity of the partition communities on g with
// resolution γ. Every vertex of g must appear in exactly one community.
//
// Returns ErrNilGraph, ErrNegativeWeight or ErrNotPartition.
// Complexity: O(V log V + E).
func Modularity(g *core.Graph, communities [][]string, resolution float64) (float64, error) {
	a, err := NewAdjacency(g)
	if err != nil {
		return 0, fmt.Errorf("Modularity: %w", err)
	}
	node2com, err := a.Partition(communities)
	if err != nil {
		return 0, fmt.Errorf("Modularity: %w", err)
	}

	return a.Modularity(node2com, resolution), nil
}

// Partition converts communities of vertex IDs into a label per index.
// Empty communities are ignored. Returns ErrNotPartition when a vertex is
// unknown, repeated or missing.
func (a *Adjacency) Partition(communities [][]string) ([]int, error) {
	node2com := make([]int, a.Len())
	for i := range node2com {
		node2com[i] = -1
	}
	label := 0
	for _, members := range communities {
		if len(members) == 0 {
			continue
		}
		for _, id := range members {
			i, ok := a.Index[id]
			if !ok {
				return nil, fmt.Errorf("vertex %q not in graph: %w", id, ErrNotPartition)
			}
			if node2com[i] != -1 {
				return nil, fmt.Errorf("vertex %q in two communities: %w", id, ErrNotPartition)
			}
			node2com[i] = label
		}
		label++
	}
	for i, c := range node2com {
		if c == -1 {
			return nil, fmt.Errorf("vertex %q in no community: %w", a.IDs[i], ErrNotPartition)
		}
	}

	return node2com, nil
}

// Modularity evaluates the partition node2com (one label per index, any
// non-negative values) on a. A view without edges yields 0.
// Complexity: O(V + E).
func (a *Adjacency) Modularity(node2com []int, resolution float64) float64 {
	m := a.TotalWeight
	if m == 0 {
		return 0
	}

	k := 0
	for _, c := range node2com {
		if c+1 > k {
			k = c + 1
		}
	}
	var (
		inner = make([]float64, k)
		kOut  = make([]float64, k)
		kIn   = make([]float64, k)
	)
	for i := 0; i < a.Len(); i++ {
		c := node2com[i]
		inner[c] += a.Loops[i]
		for _, j := range sortedKeys(a.Out[i]) {
			if node2com[j] != c {
				continue
			}
			if a.Directed {
				inner[c] += a.Out[i][j]
			} else {
				// each undirected edge is seen from both ends
				inner[c] += a.Out[i][j] / 2
			}
		}
		kOut[c] += a.OutDegree[i]
		kIn[c] += a.InDegree[i]
	}

	var q float64
	if a.Directed {
		for c := range inner {
			q += inner[c]/m - resolution*kOut[c]*kIn[c]/(m*m)
		}
		return q
	}
	for c := range inner {
		d := kOut[c] / (2 * m)
		q += inner[c]/m - resolution*d*d
	}

	return q
}
