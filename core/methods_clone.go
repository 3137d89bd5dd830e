// SPDX-License-Identifier: MIT

package core

// CloneEmpty returns a new Graph with identical configuration and vertices, but no edges.
// Vertex Metadata maps are shared with the source.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	clone := NewGraph(g.options()...)
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		clone.ensureAdjID(id)
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges and
// both adjacency indexes. Edge IDs are preserved.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for eid, e := range g.edges {
		ne := *e
		clone.edges[eid] = &ne
		link(clone.adjacencyList, e.From, e.To, eid)
		if e.Directed {
			link(clone.reverseList, e.To, e.From, eid)
		} else if e.From != e.To {
			link(clone.adjacencyList, e.To, e.From, eid)
		}
	}
	clone.nextEdgeID = g.nextEdgeID

	return clone
}

// options reconstructs the GraphOption list of g. Caller holds muVert.
func (g *Graph) options() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return opts
}
