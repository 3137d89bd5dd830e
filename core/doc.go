// SPDX-License-Identifier: MIT

// Package core provides the thread-safe in-memory Graph that every detector
// in ncd consumes.
//
// The Graph G = (V,E) is configured once, at construction time:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//
// Storage uses nested maps so that edge insertion, removal and existence
// checks stay O(1):
//
//	adjacencyList[from][to][edgeID] = struct{}{}   // outgoing + mirrored undirected
//	reverseList[to][from][edgeID]   = struct{}{}   // incoming, directed edges only
//
// Two sync.RWMutex guard the graph: muVert for the vertex catalog and the
// configuration flags, muEdgeAdj for the edge catalog and both adjacency
// indexes. When both are needed they are always taken in that order.
//
// Weights:
//
//	In an unweighted graph every edge is stored with Weight 0 and AddEdge
//	rejects anything else with ErrBadWeight. Community detection reads such
//	edges as weight 1. In a weighted graph weights must be finite.
//
// Determinism:
//
//	Vertices() is sorted by ID, Edges()/Neighbors()/InNeighbors() are sorted
//	by edge creation order ("e1" < "e2" < ... < "e10"). Algorithms built on
//	top of core rely on that to be reproducible for a fixed seed.
//
// Errors:
//
//	ErrEmptyVertexID       - zero-length vertex ID
//	ErrVertexNotFound      - missing vertex
//	ErrEdgeNotFound        - missing edge
//	ErrBadWeight           - non-zero weight on unweighted graph, or NaN/Inf weight
//	ErrLoopNotAllowed      - self-loop when loops disabled
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges disabled
package core
