// Package resultstore persists one row per completed solver run to
// Postgres via pgx/v5, so that a fleet of benchmark sweeps can be queried
// later for regressions or gap trends. Nothing in cvrp depends on this
// package; it is a pure collaborator driven by a caller that already holds
// a cvrp.Diagnostics value.
package resultstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/RamiMohamed12/projectVRP/cvrp"
)

// ErrRunNotFound is returned by BestByFingerprint when no run has been
// recorded for the fingerprint.
var ErrRunNotFound = errors.New("resultstore: run not found")

// DB is the subset of pgxpool.Pool (or pgxmock.PgxPoolIface) this package
// needs, so tests can substitute pgxmock without pulling in a live
// database.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Run is one persisted solver run.
type Run struct {
	ID                  int64
	InstanceFingerprint string
	ConfigHash          string
	Seed                int64
	BestCost            float64
	HasGap              bool
	GapPercentage       float64
	Iterations          int
	TimedOut            bool
	DurationMS          int64
	CreatedAt           time.Time
}

// FromDiagnostics builds the row to insert for a completed solve. duration
// and configHash are supplied by the caller since neither lives on
// cvrp.Diagnostics.
func FromDiagnostics(inst *cvrp.Instance, cfg cvrp.Config, diag cvrp.Diagnostics, duration time.Duration, configHash string) Run {
	return Run{
		InstanceFingerprint: inst.Fingerprint(),
		ConfigHash:          configHash,
		Seed:                cfg.General.Seed,
		BestCost:            diag.BestCost,
		HasGap:              diag.HasGap,
		GapPercentage:       diag.GapPercentage,
		Iterations:          diag.Iterations,
		TimedOut:            diag.TimedOut,
		DurationMS:          duration.Milliseconds(),
	}
}

// Store is the Postgres-backed result repository.
type Store struct {
	db DB
}

// NewStore wraps db. Callers typically pass a *pgxpool.Pool built by
// NewPool, or a pgxmock adapter in tests.
func NewStore(db DB) *Store {
	return &Store{db: db}
}

// Insert persists run and fills in its generated ID and CreatedAt.
func (s *Store) Insert(ctx context.Context, run Run) (Run, error) {
	const query = `
		INSERT INTO solver_runs (
			instance_fingerprint, config_hash, seed, best_cost,
			has_gap, gap_percentage, iterations, timed_out, duration_ms
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := s.db.QueryRow(ctx, query,
		run.InstanceFingerprint,
		run.ConfigHash,
		run.Seed,
		run.BestCost,
		run.HasGap,
		run.GapPercentage,
		run.Iterations,
		run.TimedOut,
		run.DurationMS,
	).Scan(&run.ID, &run.CreatedAt)
	if err != nil {
		return Run{}, fmt.Errorf("resultstore: insert run: %w", err)
	}
	return run, nil
}

// ByFingerprint returns the most recent runs for a given instance
// fingerprint, newest first, capped at limit rows.
func (s *Store) ByFingerprint(ctx context.Context, fingerprint string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	const query = `
		SELECT id, instance_fingerprint, config_hash, seed, best_cost,
		       has_gap, gap_percentage, iterations, timed_out, duration_ms, created_at
		FROM solver_runs
		WHERE instance_fingerprint = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := s.db.Query(ctx, query, fingerprint, limit)
	if err != nil {
		return nil, fmt.Errorf("resultstore: list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(
			&r.ID, &r.InstanceFingerprint, &r.ConfigHash, &r.Seed, &r.BestCost,
			&r.HasGap, &r.GapPercentage, &r.Iterations, &r.TimedOut, &r.DurationMS, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("resultstore: scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("resultstore: list runs: %w", err)
	}
	return runs, nil
}

// BestByFingerprint returns the lowest best_cost recorded for fingerprint.
// ErrRunNotFound is returned if no run has been recorded yet.
func (s *Store) BestByFingerprint(ctx context.Context, fingerprint string) (Run, error) {
	const query = `
		SELECT id, instance_fingerprint, config_hash, seed, best_cost,
		       has_gap, gap_percentage, iterations, timed_out, duration_ms, created_at
		FROM solver_runs
		WHERE instance_fingerprint = $1
		ORDER BY best_cost ASC
		LIMIT 1
	`

	var r Run
	err := s.db.QueryRow(ctx, query, fingerprint).Scan(
		&r.ID, &r.InstanceFingerprint, &r.ConfigHash, &r.Seed, &r.BestCost,
		&r.HasGap, &r.GapPercentage, &r.Iterations, &r.TimedOut, &r.DurationMS, &r.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Run{}, ErrRunNotFound
		}
		return Run{}, fmt.Errorf("resultstore: best run: %w", err)
	}
	return r, nil
}
