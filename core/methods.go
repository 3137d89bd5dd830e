// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Vertex lifecycle (AddVertex/HasVertex/RemoveVertex/Vertices) and
//       the internal adjacency helpers shared by the edge methods.
// Concurrency:
//   - Vertex catalog under muVert; adjacency touched under muEdgeAdj.
//   - Lock order is always muVert -> muEdgeAdj.

package core

import "sort"

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	g.muEdgeAdj.Lock()
	g.ensureAdjID(id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// Vertex returns the live *Vertex for id. Callers may read and write its
// Metadata but must not change ID.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// RemoveVertex deletes the vertex and all incident edges from the graph.
// Returns ErrEmptyVertexID if id is empty, ErrVertexNotFound if vertex does not exist.
// Complexity: O(E) in the worst case (incident-edge scan).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}
	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			g.unlinkEdge(eid, e)
			delete(g.edges, eid)
		}
	}
	delete(g.vertices, id)
	delete(g.adjacencyList, id)
	delete(g.reverseList, id)

	return nil
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V·logV).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Clear resets the graph to empty state but preserves flags.
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacencyList = make(map[string]map[string]map[string]struct{})
	g.reverseList = make(map[string]map[string]map[string]struct{})
	g.nextEdgeID = 0
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}

// Internal helper methods:
////////////////////

// ensureAdjID makes adjacencyList[id] non-nil. Caller holds muEdgeAdj.
func (g *Graph) ensureAdjID(id string) {
	if _, ok := g.adjacencyList[id]; !ok {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
}

// link inserts eid into index[a][b]. Caller holds muEdgeAdj.
func link(index map[string]map[string]map[string]struct{}, a, b, eid string) {
	inner, ok := index[a]
	if !ok {
		inner = make(map[string]map[string]struct{})
		index[a] = inner
	}
	set, ok := inner[b]
	if !ok {
		set = make(map[string]struct{})
		inner[b] = set
	}
	set[eid] = struct{}{}
}

// unlink deletes eid from index[a][b], dropping empty buckets.
func unlink(index map[string]map[string]map[string]struct{}, a, b, eid string) {
	set := index[a][b]
	if set == nil {
		return
	}
	delete(set, eid)
	if len(set) == 0 {
		delete(index[a], b)
	}
}

// unlinkEdge removes e from every adjacency index it appears in.
func (g *Graph) unlinkEdge(eid string, e *Edge) {
	unlink(g.adjacencyList, e.From, e.To, eid)
	if e.Directed {
		unlink(g.reverseList, e.To, e.From, eid)
		return
	}
	if e.From != e.To {
		unlink(g.adjacencyList, e.To, e.From, eid)
	}
}
