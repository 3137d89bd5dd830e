// SPDX-License-Identifier: MIT
// Package: ncd/builder
//
// impl_random.go - stochastic constructors: RandomSparse and PlantedPartition.
//
// Contract:
//   - Both require cfg.rng (WithSeed/WithRand), else ErrNeedRandSource.
//   - Probabilities must lie in [0,1], else ErrInvalidProbability.
//   - Undirected graphs consider unordered pairs i<j; directed graphs consider
//     ordered pairs i≠j. One Bernoulli draw per candidate pair, in
//     lexicographic pair order, so a fixed seed yields a fixed graph.
//   - No self-loops are ever emitted.
//
// Complexity: O(n²) draws.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ncd/core"
)

const (
	methodRandomSparse     = "RandomSparse"
	methodPlantedPartition = "PlantedPartition"
	minRandomNodes         = 1
	minPlantedGroups       = 1
	minPlantedGroupSize    = 1
)

// RandomSparse returns a Constructor for the Erdős–Rényi graph G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomNodes, ErrTooFewVertices)
		}
		if err := checkProbability(methodRandomSparse, "p", p); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		ids, err := addVertices(g, cfg, methodRandomSparse, 0, n)
		if err != nil {
			return err
		}

		return emitPairs(g, cfg, methodRandomSparse, ids, func(int, int) float64 { return p })
	}
}

// PlantedPartition returns a Constructor for the planted l-partition model:
// l groups of k vertices, pairs inside a group linked with probability pIn,
// pairs across groups with probability pOut. Vertex index i belongs to group
// i/k, recorded in Metadata[BlockKey].
func PlantedPartition(l, k int, pIn, pOut float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if l < minPlantedGroups {
			return fmt.Errorf("%s: l=%d < min=%d: %w", methodPlantedPartition, l, minPlantedGroups, ErrTooFewVertices)
		}
		if k < minPlantedGroupSize {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodPlantedPartition, k, minPlantedGroupSize, ErrTooFewVertices)
		}
		if err := checkProbability(methodPlantedPartition, "pIn", pIn); err != nil {
			return err
		}
		if err := checkProbability(methodPlantedPartition, "pOut", pOut); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodPlantedPartition, ErrNeedRandSource)
		}

		ids, err := addVertices(g, cfg, methodPlantedPartition, 0, l*k)
		if err != nil {
			return err
		}
		for grp := 0; grp < l; grp++ {
			if err = markBlock(g, methodPlantedPartition, ids[grp*k:(grp+1)*k], grp); err != nil {
				return err
			}
		}

		return emitPairs(g, cfg, methodPlantedPartition, ids, func(i, j int) float64 {
			if i/k == j/k {
				return pIn
			}
			return pOut
		})
	}
}

// emitPairs draws one Bernoulli trial per candidate pair with probability
// prob(i,j) and emits the edge on success.
func emitPairs(g *core.Graph, cfg builderConfig, method string, ids []string, prob func(i, j int) float64) error {
	directed := g.Directed()
	for i := range ids {
		for j := range ids {
			if i == j || (!directed && j < i) {
				continue
			}
			if cfg.rng.Float64() >= prob(i, j) {
				continue
			}
			if err := addEdge(g, cfg, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}
