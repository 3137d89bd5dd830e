// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters for the construction-time flags plus Stats().
// Policy:
//   - No algorithms or hidden state here.
//   - Flags are immutable after NewGraph; getters still lock muVert so the
//     race detector stays quiet when graphs are shared across goroutines.

package core

// Directed reports whether edges of this graph are directed.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Weighted reports whether non-zero weights are permitted.
// If false, every edge has Weight 0 and readers should treat it as 1.
// Complexity: O(1).
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Multigraph reports whether parallel edges are permitted.
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// Looped reports whether self-loops are permitted.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// EdgeWeight returns the weight an algorithm should use for e:
// e.Weight on weighted graphs, 1 otherwise.
func (g *Graph) EdgeWeight(e *Edge) float64 {
	if g.Weighted() {
		return e.Weight
	}

	return 1
}

// Stats produces a read-only snapshot of configuration flags and catalog sizes.
//
// Implementation:
//   - Stage 1: muVert.RLock, snapshot flags and vertex count, release.
//   - Stage 2: muEdgeAdj.RLock, scan edges once, release.
//
// Complexity: O(V+E) worst case, O(E) in practice.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		Directed:    g.directed,
		Weighted:    g.weighted,
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if e.From == e.To {
			stats.LoopCount++
		}
		if stats.Weighted {
			stats.TotalWeight += e.Weight
		} else {
			stats.TotalWeight++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
