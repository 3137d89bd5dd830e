// SPDX-License-Identifier: MIT
//
// File: level.go
// Role: the two phases of one Louvain level, local moving and aggregation.
// Determinism:
//   - Neighbours are scanned in ascending index order; candidate communities
//     in order of first appearance; ties keep the earlier candidate.

package louvain

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/ncd/community"
)

// neighbour is one weighted entry of a vertex's neighbourhood.
type neighbour struct {
	idx int
	w   float64
}

// OneLevel runs the local-moving phase on adj. m is the total edge weight of
// the input graph (constant across levels), resolution is γ and rng drives
// the visiting order.
//
// It returns the communities found, ordered by community index with empty
// ones removed, in two forms: partition holds the original vertices (union
// of adj.Members) and inner holds adj indices in ascending order.
// improvement reports whether any vertex moved. With m == 0 nothing moves.
//
// Complexity: O(passes · (V + E)).
func OneLevel(adj *community.Adjacency, m, resolution float64, rng *rand.Rand) (partition [][]string, inner [][]int, improvement bool) {
	n := adj.Len()
	node2com := make([]int, n)
	for i := range node2com {
		node2com[i] = i
	}
	if m > 0 {
		improvement = localMoving(adj, m, resolution, node2com, rng)
	}

	byCom := make([][]int, n)
	for i, c := range node2com {
		byCom[c] = append(byCom[c], i)
	}
	for _, members := range byCom {
		if len(members) == 0 {
			continue
		}
		inner = append(inner, members)
		var orig []string
		for _, i := range members {
			orig = append(orig, adj.Members[i]...)
		}
		sort.Strings(orig)
		partition = append(partition, orig)
	}

	return partition, inner, improvement
}

// localMoving mutates node2com until a full pass moves no vertex and
// reports whether at least one move happened.
func localMoving(adj *community.Adjacency, m, resolution float64, node2com []int, rng *rand.Rand) bool {
	var (
		n        = adj.Len()
		directed = adj.Directed
		nbrs     = neighbourhoods(adj)
		stotIn   = append([]float64(nil), adj.InDegree...)
		stotOut  = append([]float64(nil), adj.OutDegree...)
		m2       = m * m
	)
	// undirected: stotOut doubles as Σ_tot (degree with loops twice)
	order := community.Perm(n, rng)

	w2c := make(map[int]float64)
	candidates := make([]int, 0)
	improvement := false
	for moves := 1; moves > 0; {
		moves = 0
		for _, node := range order {
			bestCom := node2com[node]
			bestGain := 0.0

			for k := range w2c {
				delete(w2c, k)
			}
			candidates = candidates[:0]
			for _, nb := range nbrs[node] {
				c := node2com[nb.idx]
				if _, ok := w2c[c]; !ok {
					candidates = append(candidates, c)
				}
				w2c[c] += nb.w
			}

			var removeCost float64
			kIn, kOut := adj.InDegree[node], adj.OutDegree[node]
			if directed {
				stotIn[bestCom] -= kIn
				stotOut[bestCom] -= kOut
				removeCost = -w2c[bestCom]/m + resolution*(kOut*stotIn[bestCom]+kIn*stotOut[bestCom])/m2
			} else {
				stotOut[bestCom] -= kOut
				removeCost = -w2c[bestCom]/m + resolution*stotOut[bestCom]*kOut/(2*m2)
			}

			for _, c := range candidates {
				var gain float64
				if directed {
					gain = removeCost + w2c[c]/m - resolution*(kOut*stotIn[c]+kIn*stotOut[c])/m2
				} else {
					gain = removeCost + w2c[c]/m - resolution*stotOut[c]*kOut/(2*m2)
				}
				if gain > bestGain {
					bestGain = gain
					bestCom = c
				}
			}

			if directed {
				stotIn[bestCom] += kIn
			}
			stotOut[bestCom] += kOut

			if bestCom != node2com[node] {
				node2com[node] = bestCom
				improvement = true
				moves++
			}
		}
	}

	return improvement
}

// neighbourhoods lists, per index, its neighbours (self excluded) with the
// weight summed over both directions when directed.
func neighbourhoods(adj *community.Adjacency) [][]neighbour {
	out := make([][]neighbour, adj.Len())
	for i := range out {
		ids := adj.Neighbors(i)
		row := make([]neighbour, len(ids))
		for k, j := range ids {
			w := adj.Out[i][j]
			if adj.Directed {
				w += adj.In[i][j]
			}
			row[k] = neighbour{idx: j, w: w}
		}
		out[i] = row
	}

	return out
}

// Aggregate builds the next-level view: community c of inner becomes index c,
// holding the union of its super-vertices' members. Weights are summed and
// intra-community weight becomes a self-loop.
//
// Returns community.ErrNotPartition when inner does not cover adj exactly.
func Aggregate(adj *community.Adjacency, inner [][]int) (*community.Adjacency, error) {
	node2com, err := innerToLabels(adj.Len(), inner)
	if err != nil {
		return nil, fmt.Errorf("Aggregate: %w", err)
	}

	return community.Quotient(adj, node2com)
}

// innerToLabels converts index sets into one label per index.
func innerToLabels(n int, inner [][]int) ([]int, error) {
	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}
	for c, set := range inner {
		for _, i := range set {
			if i < 0 || i >= n || labels[i] != -1 {
				return nil, fmt.Errorf("index %d: %w", i, community.ErrNotPartition)
			}
			labels[i] = c
		}
	}
	for i, c := range labels {
		if c == -1 {
			return nil, fmt.Errorf("index %d uncovered: %w", i, community.ErrNotPartition)
		}
	}

	return labels, nil
}
