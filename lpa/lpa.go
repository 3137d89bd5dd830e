// SPDX-License-Identifier: MIT

package lpa

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/katalvlaran/ncd/coloring"
	"github.com/katalvlaran/ncd/community"
	"github.com/katalvlaran/ncd/core"
)

// Name is the algorithm identifier reported by Detector.Name.
const Name = "lpa"

var (
	// ErrUnknownMode indicates a Mode other than ModeAsync or ModeSemi.
	ErrUnknownMode = errors.New("lpa: unknown mode")

	// ErrDirectedNotSupported indicates ModeSemi on a directed graph.
	ErrDirectedNotSupported = errors.New("lpa: semi-synchronous mode requires an undirected graph")

	// ErrEmptyGraph indicates a graph without vertices.
	ErrEmptyGraph = errors.New("lpa: graph has no vertices")
)

// Detector finds communities by label propagation.
// A Detector may be reused; results are guarded for concurrent readers.
type Detector struct {
	mode      Mode
	alpha     float64
	beta      float64
	seed      int64
	maxSweeps int
	log       *slog.Logger

	mu     sync.RWMutex
	result *community.Result
}

var _ community.Detector = (*Detector)(nil)

// New returns a Detector with defaults: async mode, alpha = beta = 1,
// seed 123 and at most DefaultMaxSweeps sweeps.
func New(opts ...Option) *Detector {
	d := &Detector{
		mode:      ModeAsync,
		alpha:     1,
		beta:      1,
		seed:      community.DefaultSeed,
		maxSweeps: DefaultMaxSweeps,
		log:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Name implements community.Detector.
func (d *Detector) Name() string { return Name }

// Mode returns the configured update schedule.
func (d *Detector) Mode() Mode { return d.mode }

// Fit propagates labels on g with the configured mode. Labels are renumbered
// 0..k-1 in vertex order and the community graph is the quotient of g.
// Modularity is reported with resolution 1.
func (d *Detector) Fit(ctx context.Context, g *core.Graph) error {
	adj, err := community.NewAdjacency(g)
	if err != nil {
		return fmt.Errorf("Fit: %w", err)
	}
	if adj.Len() == 0 {
		return ErrEmptyGraph
	}

	var labels []int
	switch d.mode {
	case ModeAsync:
		labels, err = d.Async(ctx, adj)
	case ModeSemi:
		labels, err = d.Semi(ctx, adj)
	default:
		return fmt.Errorf("Fit: %q: %w", d.mode, ErrUnknownMode)
	}
	if err != nil {
		return fmt.Errorf("Fit: %w", err)
	}

	node2com, _ := community.Relabel(labels)
	res, err := community.NewResult(adj, node2com, 1)
	if err != nil {
		return fmt.Errorf("Fit: %w", err)
	}

	d.mu.Lock()
	d.result = res
	d.mu.Unlock()

	d.log.Info("lpa fitted",
		slog.String("mode", string(d.mode)),
		slog.Int("vertices", adj.Len()),
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

// Async runs asynchronous label propagation on adj and returns one label
// per index. Sweeps visit vertices in a freshly shuffled order until a full
// sweep changes nothing or the sweep cap is hit.
func (d *Detector) Async(ctx context.Context, adj *community.Adjacency) ([]int, error) {
	var (
		rng    = community.NewRand(d.seed)
		nbrs   = Neighbours(adj, d.alpha, d.beta)
		labels = identityLabels(adj.Len())
		order  = identityLabels(adj.Len())
	)
	for sweep := 0; ; sweep++ {
		if sweep == d.maxSweeps {
			d.log.Warn("lpa: sweep cap reached, keeping current labels",
				slog.String("mode", string(ModeAsync)), slog.Int("sweeps", sweep))
			return labels, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		changed := false
		community.Shuffle(order, rng)
		for _, node := range order {
			best := MostFrequentLabels(node, labels, nbrs)
			if !contains(best, labels[node]) {
				labels[node] = community.Choice(best, rng)
				changed = true
			}
		}
		if !changed {
			d.log.Debug("lpa converged", slog.String("mode", string(ModeAsync)), slog.Int("sweeps", sweep+1))
			return labels, nil
		}
	}
}

// Semi runs semi-synchronous label propagation on adj and returns one label
// per index. Returns ErrDirectedNotSupported on directed views.
func (d *Detector) Semi(ctx context.Context, adj *community.Adjacency) ([]int, error) {
	if adj.Directed {
		return nil, ErrDirectedNotSupported
	}
	classes, err := colorClasses(adj)
	if err != nil {
		return nil, err
	}

	nbrs := Neighbours(adj, d.alpha, d.beta)
	labels := identityLabels(adj.Len())
	for sweep := 0; !LabelingComplete(labels, nbrs); sweep++ {
		if sweep == d.maxSweeps {
			d.log.Warn("lpa: sweep cap reached, keeping current labels",
				slog.String("mode", string(ModeSemi)), slog.Int("sweeps", sweep))
			break
		}
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		for _, class := range classes {
			for _, node := range class {
				updatePrecMax(node, labels, nbrs)
			}
		}
	}

	return labels, nil
}

// colorClasses colours adj largest-first and returns the index classes in
// ascending colour order, each sorted.
func colorClasses(adj *community.Adjacency) ([][]int, error) {
	g, err := adj.Graph()
	if err != nil {
		return nil, err
	}
	colors, err := coloring.Greedy(g, coloring.LargestFirst)
	if err != nil {
		return nil, err
	}

	classes := coloring.Classes(colors)
	out := make([][]int, len(classes))
	for c, ids := range classes {
		idx := make([]int, len(ids))
		for k, id := range ids {
			idx[k] = adj.Index[id]
		}
		out[c] = idx
	}

	return out, nil
}

// identityLabels returns 0..n-1.
func identityLabels(n int) []int {
	labels := make([]int, n)
	for i := range labels {
		labels[i] = i
	}

	return labels
}
