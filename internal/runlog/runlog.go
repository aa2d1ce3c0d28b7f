// Package runlog records completed conversion runs in a SQLite
// database, one row per run. The log is optional (--runlog); once
// requested, failures to open or write it are fatal like any other
// resource error.
package runlog

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/upc-hep/upc2lhe/internal/convert"
)

//go:embed schema.sql
var schemaSQL string

// Store is a single-writer handle on the run log database.
type Store struct {
	db *sql.DB
}

// Open creates or opens the run log at path and applies the schema.
// Safe to call repeatedly on the same file.
//
// The database is configured with WAL mode, NORMAL synchronous, and a
// 5-second busy timeout; the connection pool is capped at one writer.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open run log: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to run log: %w", err)
	}

	// SQLite allows one writer at a time; a second connection would only
	// produce SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply run log schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one completed run.
func (s *Store) Record(ctx context.Context, sum *convert.Summary) error {
	const insert = `
INSERT INTO runs (run_id, input, output, events, particles,
                  beam_e1, beam_e2, fid_xsec, tot_xsec,
                  started_at, finished_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, insert,
		sum.RunID, sum.Input, sum.Output, sum.Events, sum.Particles,
		sum.BeamE1, sum.BeamE2, sum.FidXsec, sum.TotXsec,
		sum.StartedAt.Format(time.RFC3339Nano),
		sum.FinishedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to record run %s: %w", sum.RunID, err)
	}
	return nil
}

// Count reports the number of recorded runs.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return n, nil
}
