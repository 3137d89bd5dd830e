// SPDX-License-Identifier: MIT
//
// File: labels.go
// Role: neighbour weighting and label frequency helpers.

package lpa

import (
	"sort"

	"github.com/katalvlaran/ncd/community"
)

// Neighbour is one weighted neighbour of a vertex.
type Neighbour struct {
	Index  int
	Weight float64
}

// Neighbourhood lists, per vertex index, its neighbours in ascending index
// order. The vertex itself never appears.
type Neighbourhood [][]Neighbour

// Neighbours builds the label-propagation weights of adj. Undirected graphs
// use edge weights as is; directed graphs weigh successors by beta and
// predecessors by alpha.
func Neighbours(adj *community.Adjacency, alpha, beta float64) Neighbourhood {
	out := make(Neighbourhood, adj.Len())
	for i := range out {
		ids := adj.Neighbors(i)
		row := make([]Neighbour, len(ids))
		for k, j := range ids {
			w := adj.Out[i][j]
			if adj.Directed {
				w = adj.Out[i][j]*beta + adj.In[i][j]*alpha
			}
			row[k] = Neighbour{Index: j, Weight: w}
		}
		out[i] = row
	}

	return out
}

// MostFrequentLabels returns, sorted, every label of maximal summed weight
// among the neighbours of node. A vertex without neighbours yields its own
// label.
func MostFrequentLabels(node int, labels []int, nbrs Neighbourhood) []int {
	if len(nbrs[node]) == 0 {
		return []int{labels[node]}
	}

	freq := make(map[int]float64, len(nbrs[node]))
	order := make([]int, 0, len(nbrs[node]))
	for _, nb := range nbrs[node] {
		l := labels[nb.Index]
		if _, ok := freq[l]; !ok {
			order = append(order, l)
		}
		freq[l] += nb.Weight
	}

	maxFreq := freq[order[0]]
	for _, l := range order[1:] {
		if freq[l] > maxFreq {
			maxFreq = freq[l]
		}
	}
	best := make([]int, 0, 1)
	for _, l := range order {
		if freq[l] == maxFreq {
			best = append(best, l)
		}
	}
	sort.Ints(best)

	return best
}

// LabelingComplete reports whether every vertex with neighbours holds one of
// its most frequent labels.
func LabelingComplete(labels []int, nbrs Neighbourhood) bool {
	for v := range nbrs {
		if len(nbrs[v]) == 0 {
			continue
		}
		if !contains(MostFrequentLabels(v, labels, nbrs), labels[v]) {
			return false
		}
	}

	return true
}

// contains reports whether the sorted slice a holds x.
func contains(a []int, x int) bool {
	i := sort.SearchInts(a, x)

	return i < len(a) && a[i] == x
}

// updatePrecMax applies the Prec-Max rule to node.
func updatePrecMax(node int, labels []int, nbrs Neighbourhood) {
	high := MostFrequentLabels(node, labels, nbrs)
	switch {
	case len(high) == 1:
		labels[node] = high[0]
	case len(high) > 1 && !contains(high, labels[node]):
		labels[node] = high[len(high)-1]
	}
}
