// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Adjacency queries: Neighbors/InNeighbors/NeighborIDs/Degree.
// Determinism:
//   - Edge slices are sorted by creation order, ID slices lexicographically.
// Concurrency:
//   - Vertex presence checked under muVert.RLock, released before muEdgeAdj.RLock.

package core

import "sort"

// Neighbors returns all edges leaving vertex id: outgoing directed edges and
// every incident undirected edge. A self-loop appears once; parallel edges
// appear once each.
// Complexity: O(d log d), where d is the number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if err := g.checkVertex(id); err != nil {
		return nil, err
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.collect(g.adjacencyList[id]), nil
}

// InNeighbors returns all directed edges entering vertex id.
// On undirected graphs the result is empty: use Neighbors.
// Complexity: O(d log d).
func (g *Graph) InNeighbors(id string) ([]*Edge, error) {
	if err := g.checkVertex(id); err != nil {
		return nil, err
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.collect(g.reverseList[id]), nil
}

// NeighborIDs returns the unique IDs of vertices reachable from id by one
// edge (successors on directed graphs), sorted.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if err := g.checkVertex(id); err != nil {
		return nil, err
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	ids := make([]string, 0, len(g.adjacencyList[id]))
	for to, set := range g.adjacencyList[id] {
		if len(set) > 0 {
			ids = append(ids, to)
		}
	}
	sort.Strings(ids)

	return ids, nil
}

// Degree returns the edge counts of id.
//
// For directed graphs: in = incoming edges, out = outgoing edges,
// total = in + out (a self-loop counts in both).
// For undirected graphs: in = out = 0 and total counts incident edges,
// with self-loops counted twice.
func (g *Graph) Degree(id string) (in, out, total int, err error) {
	if err = g.checkVertex(id); err != nil {
		return 0, 0, 0, err
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for to, set := range g.adjacencyList[id] {
		for eid := range set {
			e := g.edges[eid]
			switch {
			case e.Directed:
				out++
			case to == id:
				total += 2
			default:
				total++
			}
		}
	}
	for _, set := range g.reverseList[id] {
		in += len(set)
	}
	total += in + out

	return in, out, total, nil
}

// checkVertex validates id and its presence under muVert.
func (g *Graph) checkVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}

	return nil
}

// collect flattens an adjacency row into a sorted edge slice.
// Caller holds muEdgeAdj.
func (g *Graph) collect(row map[string]map[string]struct{}) []*Edge {
	var out []*Edge
	for _, set := range row {
		for eid := range set {
			out = append(out, g.edges[eid])
		}
	}
	sortEdges(out)

	return out
}
