// SPDX-License-Identifier: MIT

package community

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/ncd/core"
)

// Sentinel errors shared by all detectors.
var (
	// ErrNotFitted is returned by Predict/Result before a successful Fit.
	ErrNotFitted = errors.New("community: detector is not fitted")

	// ErrUnknownNode indicates Predict was asked about a vertex that was not
	// part of the fitted graph.
	ErrUnknownNode = errors.New("community: unknown node")

	// ErrNotPartition indicates that the communities passed to Modularity
	// overlap, miss a vertex, or name a vertex absent from the graph.
	ErrNotPartition = errors.New("community: not a partition of the graph")

	// ErrNegativeWeight indicates an edge with a negative weight.
	ErrNegativeWeight = errors.New("community: negative edge weight")

	// ErrNilGraph indicates a nil *core.Graph argument.
	ErrNilGraph = errors.New("community: graph is nil")
)

// NodesKey is the Metadata key under which a community vertex stores its
// sorted member IDs ([]string).
const NodesKey = "nodes"

// Detector is implemented by every community detection algorithm.
//
// Fit learns a partition of g and replaces any previous result. Predict maps
// vertices of the fitted graph to community indices. Both Predict and Result
// return ErrNotFitted until Fit succeeds.
type Detector interface {
	Fit(ctx context.Context, g *core.Graph) error
	Predict(nodes []string) ([]int, error)
	Result() (*Result, error)
	Name() string
}

// Result is the fitted state of a Detector.
type Result struct {
	// Graph is the community graph: one vertex per community ("0".."Count-1")
	// holding its members in Metadata[NodesKey]. Edge weights are summed
	// inter-community weights; intra-community weight is a self-loop.
	Graph *core.Graph

	// Count is the number of communities.
	Count int

	// Node2Com maps each original vertex to its community index.
	Node2Com map[string]int

	// Communities lists the sorted members of community i at index i.
	Communities [][]string

	// Modularity of the partition on the original graph.
	Modularity float64
}

// Predict returns the community index of each requested vertex.
func (r *Result) Predict(nodes []string) ([]int, error) {
	if r == nil {
		return nil, ErrNotFitted
	}
	out := make([]int, len(nodes))
	for i, id := range nodes {
		c, ok := r.Node2Com[id]
		if !ok {
			return nil, fmt.Errorf("Predict: %q: %w", id, ErrUnknownNode)
		}
		out[i] = c
	}

	return out, nil
}
