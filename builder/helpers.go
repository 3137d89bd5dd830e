// SPDX-License-Identifier: MIT
// Package: ncd/builder
//
// helpers.go - shared vertex/edge emission helpers used by constructors.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: every error is wrapped with the calling method name.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ncd/core"
)

// addVertices inserts idFn(offset..offset+n-1) into g and returns the IDs in
// index order.
// Complexity: O(n).
func addVertices(g *core.Graph, cfg builderConfig, method string, offset, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(offset + i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addEdge emits u→v with the configured weight policy.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weight(g.Weighted())
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

// addSymmetric emits u→v and, on directed graphs, v→u as well, so that the
// topology reads the same in both modes.
func addSymmetric(g *core.Graph, cfg builderConfig, method, u, v string) error {
	if err := addEdge(g, cfg, method, u, v); err != nil {
		return err
	}
	if g.Directed() {
		return addEdge(g, cfg, method, v, u)
	}

	return nil
}

// addCompleteEdges connects every unordered pair in ids.
// Complexity: O(len(ids)²).
func addCompleteEdges(g *core.Graph, cfg builderConfig, method string, ids []string) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := addSymmetric(g, cfg, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// addFixture materializes an adjacency table keyed by vertex index. Each
// undirected edge appears once in the table.
func addFixture(g *core.Graph, cfg builderConfig, method string, n int, adj map[int][]int) error {
	ids, err := addVertices(g, cfg, method, 0, n)
	if err != nil {
		return err
	}
	for u := 0; u < n; u++ {
		for _, v := range adj[u] {
			if err = addSymmetric(g, cfg, method, ids[u], ids[v]); err != nil {
				return err
			}
		}
	}

	return nil
}

// checkProbability validates p ∈ [0,1].
func checkProbability(method, name string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%s: %s=%g not in [0,1]: %w", method, name, p, ErrInvalidProbability)
	}

	return nil
}
