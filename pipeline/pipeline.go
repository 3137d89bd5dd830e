// SPDX-License-Identifier: MIT

// Package pipeline turns a config.Detection into a fitted detector run,
// recording metrics and persisting the run when a store is attached.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/ncd/community"
	"github.com/katalvlaran/ncd/config"
	"github.com/katalvlaran/ncd/core"
	"github.com/katalvlaran/ncd/logger"
	"github.com/katalvlaran/ncd/louvain"
	"github.com/katalvlaran/ncd/lpa"
	"github.com/katalvlaran/ncd/metrics"
	"github.com/katalvlaran/ncd/store"
)

// ErrUnknownAlgorithm is returned for an algorithm name other than louvain or lpa.
var ErrUnknownAlgorithm = errors.New("pipeline: unknown algorithm")

// NewDetector builds the detector selected by cfg. cfg is validated first so
// that option constructors never see meaningless values.
func NewDetector(cfg config.Detection, log *slog.Logger) (community.Detector, error) {
	if log == nil {
		log = logger.Discard()
	}
	switch cfg.Algorithm {
	case config.AlgorithmLouvain, config.AlgorithmLPA:
	default:
		return nil, fmt.Errorf("NewDetector: %q: %w", cfg.Algorithm, ErrUnknownAlgorithm)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("NewDetector: %w", err)
	}

	if cfg.Algorithm == config.AlgorithmLPA {
		return lpa.New(
			lpa.WithMode(lpa.Mode(cfg.LPA.Mode)),
			lpa.WithAlpha(cfg.LPA.Alpha),
			lpa.WithBeta(cfg.LPA.Beta),
			lpa.WithSeed(cfg.Seed),
			lpa.WithMaxSweeps(cfg.LPA.MaxSweeps),
			lpa.WithLogger(log),
		), nil
	}

	return louvain.New(
		louvain.WithResolution(cfg.Louvain.Resolution),
		louvain.WithThreshold(cfg.Louvain.Threshold),
		louvain.WithSeed(cfg.Seed),
		louvain.WithMaxLevels(cfg.Louvain.MaxLevels),
		louvain.WithLogger(log),
	), nil
}

// Run is one completed detection.
type Run struct {
	ID        string
	Algorithm string
	Params    config.Detection
	Vertices  int
	Edges     int
	Result    *community.Result
	Duration  time.Duration
	CreatedAt time.Time
}

// Record converts the run into its persisted form.
func (r *Run) Record() (*store.Record, error) {
	params, err := json.Marshal(r.Params)
	if err != nil {
		return nil, fmt.Errorf("Record: %w", err)
	}

	return &store.Record{
		ID:          r.ID,
		Algorithm:   r.Algorithm,
		Params:      string(params),
		Vertices:    r.Vertices,
		Edges:       r.Edges,
		Count:       r.Result.Count,
		Modularity:  r.Result.Modularity,
		Assignments: r.Result.Node2Com,
		Duration:    r.Duration,
		CreatedAt:   r.CreatedAt,
	}, nil
}

// Runner executes detections. Every field is optional.
type Runner struct {
	Recorder *metrics.Recorder
	Store    store.Store
	Logger   *slog.Logger
}

// Run fits the configured detector on g. A store failure is returned
// together with the completed run so callers may still report the result.
func (rn *Runner) Run(ctx context.Context, g *core.Graph, cfg config.Detection) (*Run, error) {
	log := rn.Logger
	if log == nil {
		log = logger.Discard()
	}
	if g == nil {
		return nil, fmt.Errorf("Run: %w", community.ErrNilGraph)
	}

	det, err := NewDetector(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	id := uuid.NewString()
	log = log.With(slog.String("run_id", id), slog.String("algorithm", cfg.Algorithm))
	started := time.Now()
	if err = det.Fit(ctx, g); err != nil {
		elapsed := time.Since(started)
		rn.Recorder.ObserveFailure(cfg.Algorithm, elapsed)
		log.Warn("detection failed", logger.Err(err), slog.Duration("elapsed", elapsed))
		return nil, fmt.Errorf("Run: %s: %w", cfg.Algorithm, err)
	}
	elapsed := time.Since(started)

	res, err := det.Result()
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	rn.Recorder.ObserveDetection(cfg.Algorithm, elapsed, res.Count, res.Modularity)

	run := &Run{
		ID:        id,
		Algorithm: cfg.Algorithm,
		Params:    cfg,
		Vertices:  g.VertexCount(),
		Edges:     g.EdgeCount(),
		Result:    res,
		Duration:  elapsed,
		CreatedAt: started.UTC(),
	}
	log.Info("detection finished",
		slog.Int("communities", res.Count),
		slog.Float64("modularity", res.Modularity),
		slog.Duration("elapsed", elapsed))

	if rn.Store == nil {
		return run, nil
	}
	rec, err := run.Record()
	if err != nil {
		return run, err
	}
	if err = rn.Store.Save(ctx, rec); err != nil {
		log.Error("saving run failed", logger.Err(err))
		return run, fmt.Errorf("Run: %w", err)
	}

	return run, nil
}
