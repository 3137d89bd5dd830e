// SPDX-License-Identifier: MIT

// Package community holds the vocabulary shared by the community detectors:
// the Detector contract, the fitted Result, an index-based weighted view of a
// core.Graph (Adjacency), modularity, quotient aggregation and the seeded RNG
// policy.
//
// Adjacency:
//
//	NewAdjacency(g) snapshots g into dense indices 0..n-1 following the sorted
//	vertex order. Parallel edges collapse into one entry whose weight is the
//	sum of their weights; unweighted edges count as 1. Self-loops live in a
//	separate slice so that neighbour maps never contain the node itself.
//
// Modularity:
//
//	Undirected: Q = Σ_c [ L_c/m − γ·(K_c/2m)² ]
//	Directed:   Q = Σ_c [ L_c/m − γ·K_c^out·K_c^in/m² ]
//
//	L_c is the weight inside community c (self-loops once), K_c the summed
//	degree (self-loops twice when undirected) and m the total edge weight.
//	A graph without edges has Q = 0.
//
// Determinism:
//
//	Every iteration in this package follows index order, so identical inputs
//	give identical outputs. Randomness comes only from NewRand(seed).
package community
