// SPDX-License-Identifier: MIT
//
// File: quotient.go
// Role: community aggregation (quotient graph) and compact relabelling.

package community

import (
	"fmt"
	"sort"
	"strconv"
)

// Quotient collapses a by node2com. node2com[i] is the community of index i
// and must use every label in 0..k-1. The result has one index per
// community, IDs "0".."k-1", Members unioned and sorted, inter-community
// weights summed and intra-community weight folded into self-loops.
// TotalWeight is preserved.
//
// Returns ErrNotPartition for a length mismatch, a negative label or an
// unused label.
// Complexity: O(V log V + E).
func Quotient(a *Adjacency, node2com []int) (*Adjacency, error) {
	k, err := countLabels(a.Len(), node2com)
	if err != nil {
		return nil, fmt.Errorf("Quotient: %w", err)
	}

	ids := make([]string, k)
	for c := range ids {
		ids[c] = strconv.Itoa(c)
	}
	q := newAdjacency(a.Directed, ids)
	for i := 0; i < a.Len(); i++ {
		c := node2com[i]
		q.Members[c] = append(q.Members[c], a.Members[i]...)
	}
	for c := range q.Members {
		sort.Strings(q.Members[c])
	}

	for i := 0; i < a.Len(); i++ {
		if a.Loops[i] != 0 {
			q.addWeight(node2com[i], node2com[i], a.Loops[i])
		}
		for _, j := range sortedKeys(a.Out[i]) {
			if !a.Directed && j < i {
				continue
			}
			q.addWeight(node2com[i], node2com[j], a.Out[i][j])
		}
	}

	return q, nil
}

// countLabels validates node2com against n indices and returns k.
func countLabels(n int, node2com []int) (int, error) {
	if len(node2com) != n {
		return 0, fmt.Errorf("len(node2com)=%d != n=%d: %w", len(node2com), n, ErrNotPartition)
	}
	k := 0
	for i, c := range node2com {
		if c < 0 {
			return 0, fmt.Errorf("index %d has label %d: %w", i, c, ErrNotPartition)
		}
		if c+1 > k {
			k = c + 1
		}
	}
	used := make([]bool, k)
	for _, c := range node2com {
		used[c] = true
	}
	for c, ok := range used {
		if !ok {
			return 0, fmt.Errorf("label %d unused: %w", c, ErrNotPartition)
		}
	}

	return k, nil
}

// Relabel renumbers labels compactly: the first distinct label met in index
// order becomes 0, the next 1, and so on. It returns the new labels and the
// number of distinct labels. labels is not modified.
// Complexity: O(n).
func Relabel(labels []int) ([]int, int) {
	out := make([]int, len(labels))
	seen := make(map[int]int, len(labels))
	for i, l := range labels {
		c, ok := seen[l]
		if !ok {
			c = len(seen)
			seen[l] = c
		}
		out[i] = c
	}

	return out, len(seen)
}
