// SPDX-License-Identifier: MIT

package community

import "fmt"

// NewResult assembles a Result for the partition node2com of the original
// view a. node2com must be compact (labels 0..k-1 all used); label c becomes
// community c. Modularity is evaluated on a with the given resolution.
func NewResult(a *Adjacency, node2com []int, resolution float64) (*Result, error) {
	q, err := Quotient(a, node2com)
	if err != nil {
		return nil, fmt.Errorf("NewResult: %w", err)
	}
	g, err := q.Graph()
	if err != nil {
		return nil, fmt.Errorf("NewResult: %w", err)
	}

	res := &Result{
		Graph:       g,
		Count:       q.Len(),
		Node2Com:    make(map[string]int, a.Len()),
		Communities: make([][]string, q.Len()),
		Modularity:  a.Modularity(node2com, resolution),
	}
	for c := range q.Members {
		res.Communities[c] = append([]string(nil), q.Members[c]...)
		for _, id := range q.Members[c] {
			res.Node2Com[id] = c
		}
	}

	return res, nil
}
