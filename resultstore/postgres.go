package resultstore

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolConfig mirrors the subset of connection settings a solver fleet's
// result store actually needs. Its fields carry koanf tags; the config
// package's loader does not read or populate it.
type PoolConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Database string `koanf:"database"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
	SSLMode  string `koanf:"ssl_mode"`
	MaxConns int32  `koanf:"max_conns"`
}

// DefaultPoolConfig returns a localhost, no-TLS configuration suitable for
// local development against a disposable Postgres instance.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		Host:     "localhost",
		Port:     5432,
		Database: "cvrp",
		Username: "cvrp",
		SSLMode:  "disable",
		MaxConns: 10,
	}
}

func (c PoolConfig) connString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Username, c.Password, c.Host, c.Port, c.Database, c.SSLMode)
}

// NewPool dials Postgres, pings it once, and ensures the solver_runs table
// exists before returning. Construction fails fast rather than deferring
// the error to the first Insert.
func NewPool(ctx context.Context, cfg PoolConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.connString())
	if err != nil {
		return nil, fmt.Errorf("resultstore: parse connection string: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.ConnConfig.ConnectTimeout = 10 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("resultstore: create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("resultstore: ping: %w", err)
	}

	if err := EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// schemaDDL creates the solver_runs table if it does not already exist.
// There is no migration framework here: the schema is small and additive,
// so a single idempotent statement covers it.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS solver_runs (
	id                   BIGSERIAL PRIMARY KEY,
	instance_fingerprint TEXT NOT NULL,
	config_hash          TEXT NOT NULL,
	seed                 BIGINT NOT NULL,
	best_cost            DOUBLE PRECISION NOT NULL,
	has_gap              BOOLEAN NOT NULL,
	gap_percentage       DOUBLE PRECISION NOT NULL,
	iterations           INTEGER NOT NULL,
	timed_out            BOOLEAN NOT NULL,
	duration_ms          BIGINT NOT NULL,
	created_at           TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_solver_runs_fingerprint ON solver_runs (instance_fingerprint);
`

// EnsureSchema applies schemaDDL against db. Safe to call on every startup.
func EnsureSchema(ctx context.Context, db DB) error {
	if _, err := db.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("resultstore: ensure schema: %w", err)
	}
	return nil
}
