// SPDX-License-Identifier: MIT

package louvain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/katalvlaran/ncd/community"
	"github.com/katalvlaran/ncd/core"
)

// Name is the algorithm identifier reported by Detector.Name.
const Name = "louvain"

var (
	// ErrEmptyGraph indicates a graph without vertices.
	ErrEmptyGraph = errors.New("louvain: graph has no vertices")

	// ErrStop may be returned by a Partitions callback to end the walk early
	// without error.
	ErrStop = errors.New("louvain: stop")
)

// Level is one step of the dendrogram.
type Level struct {
	// Index counts levels from 0 (finest).
	Index int
	// Graph is the aggregated graph after this level: vertex "c" is community
	// c and holds its original members in Metadata[community.NodesKey].
	Graph *core.Graph
	// InnerPartition partitions the vertex IDs of the previous level graph
	// (the input graph for Index 0).
	InnerPartition [][]string
	// Partition lists the original vertices of each community.
	Partition [][]string
	// Modularity of Partition on the input graph.
	Modularity float64
}

// Detector finds communities with the Louvain method.
// A Detector may be reused; concurrent Fit calls are serialized.
type Detector struct {
	resolution float64
	threshold  float64
	seed       int64
	maxLevels  int
	log        *slog.Logger

	mu     sync.RWMutex
	levels []Level
	result *community.Result
}

var _ community.Detector = (*Detector)(nil)

// New returns a Detector with defaults γ=1, threshold=1e-7, seed 123 and
// no level cap.
func New(opts ...Option) *Detector {
	d := &Detector{
		resolution: DefaultResolution,
		threshold:  DefaultThreshold,
		seed:       community.DefaultSeed,
		log:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Name implements community.Detector.
func (d *Detector) Name() string { return Name }

// Resolution returns γ.
func (d *Detector) Resolution() float64 { return d.resolution }

// Fit runs Partitions to exhaustion and keeps the last level as the result.
// Returns ErrEmptyGraph, ctx.Err() or an error from the graph snapshot.
func (d *Detector) Fit(ctx context.Context, g *core.Graph) error {
	var levels []Level
	err := d.Partitions(ctx, g, func(l Level) error {
		levels = append(levels, l)
		return nil
	})
	if err != nil {
		return fmt.Errorf("Fit: %w", err)
	}

	adj, err := community.NewAdjacency(g)
	if err != nil {
		return fmt.Errorf("Fit: %w", err)
	}
	last := levels[len(levels)-1]
	node2com, err := adj.Partition(last.Partition)
	if err != nil {
		return fmt.Errorf("Fit: %w", err)
	}
	res, err := community.NewResult(adj, node2com, d.resolution)
	if err != nil {
		return fmt.Errorf("Fit: %w", err)
	}

	d.mu.Lock()
	d.levels = levels
	d.result = res
	d.mu.Unlock()

	d.log.Info("louvain fitted",
		slog.Int("vertices", adj.Len()),
		slog.Int("levels", len(levels)),
		slog.Int("communities", res.Count),
		slog.Float64("modularity", res.Modularity))

	return nil
}

// Predict implements community.Detector.
func (d *Detector) Predict(nodes []string) ([]int, error) {
	res, err := d.Result()
	if err != nil {
		return nil, err
	}

	return res.Predict(nodes)
}

// Result implements community.Detector.
func (d *Detector) Result() (*community.Result, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.result == nil {
		return nil, community.ErrNotFitted
	}

	return d.result, nil
}

// Levels returns the dendrogram of the last Fit, finest first.
func (d *Detector) Levels() ([]Level, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.result == nil {
		return nil, community.ErrNotFitted
	}

	return append([]Level(nil), d.levels...), nil
}

// Partitions walks the dendrogram of g, calling yield once per level from
// the finest to the coarsest. The walk stops when the modularity gain of a
// level is at most the threshold, when a local-moving pass makes no move,
// when the level cap is reached, when yield returns ErrStop, or when ctx is
// done. Any other yield error is returned as is.
//
// The first level is always yielded, even if no vertex moves.
func (d *Detector) Partitions(ctx context.Context, g *core.Graph, yield func(Level) error) error {
	adj, err := community.NewAdjacency(g)
	if err != nil {
		return fmt.Errorf("Partitions: %w", err)
	}
	if adj.Len() == 0 {
		return ErrEmptyGraph
	}

	var (
		rng  = community.NewRand(d.seed)
		m    = adj.TotalWeight
		cur  = adj
		mod  = adj.Modularity(identity(adj.Len()), d.resolution)
		next *community.Adjacency
	)
	partition, inner, _ := OneLevel(cur, m, d.resolution, rng)
	for index, improvement := 0, true; improvement; index++ {
		if err = ctx.Err(); err != nil {
			return err
		}

		labels, err := innerToLabels(cur.Len(), inner)
		if err != nil {
			return fmt.Errorf("Partitions: level %d: %w", index, err)
		}
		newMod := cur.Modularity(labels, d.resolution)
		if next, err = community.Quotient(cur, labels); err != nil {
			return fmt.Errorf("Partitions: level %d: %w", index, err)
		}
		lg, err := next.Graph()
		if err != nil {
			return fmt.Errorf("Partitions: level %d: %w", index, err)
		}

		d.log.Debug("louvain level",
			slog.Int("level", index),
			slog.Int("communities", next.Len()),
			slog.Float64("modularity", newMod))

		err = yield(Level{
			Index:          index,
			Graph:          lg,
			InnerPartition: idSets(cur, inner),
			Partition:      partition,
			Modularity:     newMod,
		})
		if errors.Is(err, ErrStop) {
			return nil
		}
		if err != nil {
			return err
		}

		if newMod-mod <= d.threshold {
			return nil
		}
		if d.maxLevels > 0 && index+1 >= d.maxLevels {
			return nil
		}
		mod = newMod
		cur = next
		partition, inner, improvement = OneLevel(cur, m, d.resolution, rng)
	}

	return nil
}

// identity returns the singleton labelling 0..n-1.
func identity(n int) []int {
	labels := make([]int, n)
	for i := range labels {
		labels[i] = i
	}

	return labels
}

// idSets maps index sets of adj to vertex ID sets.
func idSets(adj *community.Adjacency, sets [][]int) [][]string {
	out := make([][]string, len(sets))
	for c, set := range sets {
		ids := make([]string, len(set))
		for k, i := range set {
			ids[k] = adj.IDs[i]
		}
		out[c] = ids
	}

	return out
}
