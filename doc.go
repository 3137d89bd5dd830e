// SPDX-License-Identifier: MIT

// Package ncd is a network community detection toolkit: thread-safe graphs,
// the Louvain method and label propagation, modularity scoring, and the
// plumbing to run them from a CLI or an HTTP API.
//
// Packages:
//
//	core/       - Graph, Vertex and Edge with string IDs, safe for concurrent use
//	builder/    - deterministic fixtures: cycles, cliques, planted partitions, Zachary's karate club
//	community/  - Detector and Result, the Adjacency snapshot, Quotient, Modularity, seeding
//	louvain/    - multi-level modularity optimisation with a per-level generator
//	lpa/        - asynchronous and semi-synchronous label propagation
//	coloring/   - greedy colouring used by semi-synchronous LPA
//	converters/ - edge lists, JSON/YAML documents, result documents, Graphviz DOT
//	config/     - defaults, YAML file and NCD_* environment overrides
//	logger/     - log/slog construction
//	metrics/    - Prometheus instruments
//	store/      - SQLite run history
//	pipeline/   - config-driven runs tying detectors, metrics and the store together
//	server/     - gin HTTP API
//	cmd/ncd     - the command line
//
// Quick start:
//
//	g, _ := builder.BuildGraph(nil, nil, builder.KarateClub())
//	d := louvain.New(louvain.WithSeed(42))
//	if err := d.Fit(ctx, g); err != nil {
//		return err
//	}
//	res, _ := d.Result()
//	fmt.Println(res.Count, res.Modularity)
package ncd
