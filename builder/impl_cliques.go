// SPDX-License-Identifier: MIT
// Package: ncd/builder
//
// impl_cliques.go - implementation of RingOfCliques(k, size) constructor.
//
// Contract:
//   - k ≥ 2 cliques, size ≥ 2 vertices each (else ErrTooFewVertices).
//   - Clique c owns indices [c*size, (c+1)*size) and is complete.
//   - The last vertex of clique c links to the first vertex of clique (c+1)%k.
//   - Each vertex carries Metadata[BlockKey] = c, the planted community.
//
// Complexity: O(k·size²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/ncd/core"
)

const (
	methodRingOfCliques = "RingOfCliques"
	minCliqueCount      = 2
	minCliqueSize       = 2
)

// BlockKey is the vertex Metadata key holding the planted block index for
// RingOfCliques and PlantedPartition.
const BlockKey = "block"

// RingOfCliques returns a Constructor that builds k complete graphs of the
// given size chained in a ring by single bridge edges. Its natural
// community structure is one community per clique.
func RingOfCliques(k, size int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < minCliqueCount {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodRingOfCliques, k, minCliqueCount, ErrTooFewVertices)
		}
		if size < minCliqueSize {
			return fmt.Errorf("%s: size=%d < min=%d: %w", methodRingOfCliques, size, minCliqueSize, ErrTooFewVertices)
		}

		blocks := make([][]string, k)
		for c := 0; c < k; c++ {
			ids, err := addVertices(g, cfg, methodRingOfCliques, c*size, size)
			if err != nil {
				return err
			}
			if err = markBlock(g, methodRingOfCliques, ids, c); err != nil {
				return err
			}
			if err = addCompleteEdges(g, cfg, methodRingOfCliques, ids); err != nil {
				return err
			}
			blocks[c] = ids
		}
		for c := 0; c < k; c++ {
			tail := blocks[c][size-1]
			head := blocks[(c+1)%k][0]
			if err := addSymmetric(g, cfg, methodRingOfCliques, tail, head); err != nil {
				return err
			}
		}

		return nil
	}
}

// markBlock records the planted block index on every vertex of ids.
func markBlock(g *core.Graph, method string, ids []string, block int) error {
	for _, id := range ids {
		v, err := g.Vertex(id)
		if err != nil {
			return fmt.Errorf("%s: Vertex(%s): %w", method, id, err)
		}
		v.Metadata[BlockKey] = block
	}

	return nil
}
