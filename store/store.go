// SPDX-License-Identifier: MIT

// Package store persists detection runs.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get for an unknown run ID.
var ErrNotFound = errors.New("store: run not found")

// Record is one persisted detection run.
type Record struct {
	ID          string
	Algorithm   string
	Params      string // JSON-encoded detector settings
	Vertices    int
	Edges       int
	Count       int
	Modularity  float64
	Assignments map[string]int
	Duration    time.Duration
	CreatedAt   time.Time
}

// Store is the run-history backend.
type Store interface {
	Save(ctx context.Context, rec *Record) error
	Get(ctx context.Context, id string) (*Record, error)
	List(ctx context.Context, limit int) ([]*Record, error)
	Close() error
}
