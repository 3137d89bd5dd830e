// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DefaultListLimit applies when List is called with limit <= 0.
const DefaultListLimit = 50

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	algorithm TEXT NOT NULL,
	params TEXT,
	vertices INTEGER NOT NULL,
	edges INTEGER NOT NULL,
	communities INTEGER NOT NULL,
	modularity REAL NOT NULL,
	assignments TEXT NOT NULL,
	duration_ms INTEGER NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);
`

const selectColumns = `SELECT id, algorithm, params, vertices, edges, communities, modularity, assignments, duration_ms, created_at FROM runs`

// SQLiteStore implements Store on a SQL database (SQLite in production).
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// Open opens (or creates) the SQLite database at path and prepares the schema.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	s, err := New(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// New wraps an open database and prepares the schema.
func New(db *sql.DB) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db}
	if err := s.initDB(); err != nil {
		return nil, fmt.Errorf("store: init schema: %w", err)
	}

	return s, nil
}

// initDB creates the runs table if needed.
func (s *SQLiteStore) initDB() error {
	_, err := s.db.Exec(schema)

	return err
}

// Save inserts rec.
func (s *SQLiteStore) Save(ctx context.Context, rec *Record) error {
	assignments, err := json.Marshal(rec.Assignments)
	if err != nil {
		return fmt.Errorf("store: encode assignments: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, algorithm, params, vertices, edges, communities, modularity, assignments, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.Algorithm,
		rec.Params,
		rec.Vertices,
		rec.Edges,
		rec.Count,
		rec.Modularity,
		string(assignments),
		rec.Duration.Milliseconds(),
		rec.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("store: save %s: %w", rec.ID, err)
	}

	return nil
}

// Get loads one run. Returns ErrNotFound when absent.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("store: %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("store: get %s: %w", id, err)
	}

	return rec, nil
}

// List returns the most recent runs first.
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]*Record, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := s.db.QueryContext(ctx, selectColumns+` ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer rows.Close()

	var out []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("store: list: %w", err)
		}
		out = append(out, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}

	return out, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanRecord reads one row in selectColumns order.
func scanRecord(sc scanner) (*Record, error) {
	var (
		rec         Record
		params      sql.NullString
		assignments string
		durationMS  int64
	)
	err := sc.Scan(&rec.ID, &rec.Algorithm, &params, &rec.Vertices, &rec.Edges, &rec.Count,
		&rec.Modularity, &assignments, &durationMS, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	rec.Params = params.String
	rec.Duration = time.Duration(durationMS) * time.Millisecond
	if err = json.Unmarshal([]byte(assignments), &rec.Assignments); err != nil {
		return nil, fmt.Errorf("decode assignments: %w", err)
	}

	return &rec, nil
}
