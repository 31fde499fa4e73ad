package resultstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RamiMohamed12/projectVRP/cvrp"
	"github.com/RamiMohamed12/projectVRP/distmatrix"
)

func setupMockStore(t *testing.T) (pgxmock.PgxPoolIface, *Store) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return mock, NewStore(mock)
}

func TestStore_Insert_Success(t *testing.T) {
	mock, store := setupMockStore(t)
	defer mock.Close()

	now := time.Now()
	run := Run{
		InstanceFingerprint: "fp-abc",
		ConfigHash:          "cfg-123",
		Seed:                42,
		BestCost:            100.5,
		HasGap:              true,
		GapPercentage:       3.2,
		Iterations:          500,
		TimedOut:            false,
		DurationMS:          1200,
	}

	rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), now)
	mock.ExpectQuery(`INSERT INTO solver_runs`).
		WithArgs(run.InstanceFingerprint, run.ConfigHash, run.Seed, run.BestCost,
			run.HasGap, run.GapPercentage, run.Iterations, run.TimedOut, run.DurationMS).
		WillReturnRows(rows)

	got, err := store.Insert(context.Background(), run)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, now, got.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Insert_Error(t *testing.T) {
	mock, store := setupMockStore(t)
	defer mock.Close()

	run := Run{InstanceFingerprint: "fp-abc", ConfigHash: "cfg-123"}

	mock.ExpectQuery(`INSERT INTO solver_runs`).
		WithArgs(run.InstanceFingerprint, run.ConfigHash, run.Seed, run.BestCost,
			run.HasGap, run.GapPercentage, run.Iterations, run.TimedOut, run.DurationMS).
		WillReturnError(errors.New("connection reset"))

	_, err := store.Insert(context.Background(), run)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert run")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ByFingerprint(t *testing.T) {
	mock, store := setupMockStore(t)
	defer mock.Close()

	now := time.Now()
	rows := pgxmock.NewRows([]string{
		"id", "instance_fingerprint", "config_hash", "seed", "best_cost",
		"has_gap", "gap_percentage", "iterations", "timed_out", "duration_ms", "created_at",
	}).AddRow(int64(1), "fp-abc", "cfg-1", int64(1), 50.0, true, 1.5, 100, false, int64(300), now).
		AddRow(int64(2), "fp-abc", "cfg-1", int64(2), 48.0, true, 1.0, 120, false, int64(310), now)

	mock.ExpectQuery(`SELECT id, instance_fingerprint, config_hash, seed, best_cost`).
		WithArgs("fp-abc", 20).
		WillReturnRows(rows)

	runs, err := store.ByFingerprint(context.Background(), "fp-abc", 0)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
	assert.Equal(t, int64(1), runs[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_BestByFingerprint_NotFound(t *testing.T) {
	mock, store := setupMockStore(t)
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, instance_fingerprint, config_hash, seed, best_cost`).
		WithArgs("fp-missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := store.BestByFingerprint(context.Background(), "fp-missing")
	assert.ErrorIs(t, err, ErrRunNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFromDiagnostics(t *testing.T) {
	m, err := distmatrix.New([][]float64{
		{0, 1, 2},
		{1, 0, 1},
		{2, 1, 0},
	}, distmatrix.Options{RequireSymmetric: true})
	require.NoError(t, err)

	inst, err := cvrp.NewInstance(m, []int{0, 1, 1}, 10, nil)
	require.NoError(t, err)

	cfg := cvrp.DefaultConfig()
	cfg.General.Seed = 7
	diag := cvrp.Diagnostics{BestCost: 6, Iterations: 42, HasGap: false}

	run := FromDiagnostics(inst, cfg, diag, 250*time.Millisecond, "cfg-hash")

	assert.Equal(t, inst.Fingerprint(), run.InstanceFingerprint)
	assert.Equal(t, "cfg-hash", run.ConfigHash)
	assert.Equal(t, int64(7), run.Seed)
	assert.Equal(t, 6.0, run.BestCost)
	assert.Equal(t, int64(250), run.DurationMS)
}
