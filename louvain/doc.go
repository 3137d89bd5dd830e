// SPDX-License-Identifier: MIT

// Package louvain implements the Louvain method for community detection:
// a greedy, multi-level modularity optimisation.
//
// Each level runs two phases:
//
//  1. Local moving (OneLevel): vertices are visited in a seeded random order
//     and each one moves to the neighbouring community with the highest
//     strictly positive modularity gain, until a full pass moves nothing.
//  2. Aggregation (Aggregate): every community becomes one vertex of the next
//     level graph; inter-community weights are summed and intra-community
//     weight becomes a self-loop.
//
// Partitions yields one Level per aggregation, from the finest partition to
// the coarsest, and stops when the modularity gain between two levels is at
// most the threshold or a local-moving pass makes no move. Fit keeps the
// last level.
//
// Gains use the total edge weight m of the input graph at every level:
//
//	undirected: ΔQ = w_{i→C}/m − γ·Σ_tot(C)·k_i/(2m²)
//	directed:   ΔQ = w_{i↔C}/m − γ·(k_i^out·Σ_in(C) + k_i^in·Σ_out(C))/m²
//
// Determinism: the same graph, options and seed give the same dendrogram.
// Every Fit reseeds its RNG, so repeated fits agree.
package louvain
