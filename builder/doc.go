// SPDX-License-Identifier: MIT

// Package builder provides deterministic graph fixtures for community
// detection: classic benchmark graphs with a known structure (ring of
// cliques, planted partition, Zachary's karate club) and the named graphs
// used to smoke-test detectors (Petersen, Tutte).
//
// The package offers:
//
//   - One orchestrator, BuildGraph(gopts, bopts, cons...): creates a
//     core.Graph, resolves builderConfig from BuilderOption values, and runs
//     the constructors in order.
//   - Constructors: Cycle, Path, Star, Complete, RingOfCliques,
//     PlantedPartition, RandomSparse, Petersen, Tutte, KarateClub.
//   - Options: WithSeed/WithRand (stochastic constructors), WithIDScheme
//     (vertex labels), WithWeightFn (edge weights on weighted graphs).
//
// Guarantees:
//
//   - Determinism: same inputs/options/seed and constructor order produce
//     identical graphs.
//   - Option constructors panic on meaningless inputs; constructors never
//     panic and return sentinel errors wrapped with the method name.
//   - Weight policy: on a weighted core.Graph each edge gets
//     cfg.weightFn(cfg.rng); on an unweighted one it gets 0.
package builder
