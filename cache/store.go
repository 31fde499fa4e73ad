package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/RamiMohamed12/projectVRP/cvrp"
)

// SolutionCache memoizes cvrp.Solve results keyed by instance fingerprint
// and configuration hash, so a caller re-running the same instance under
// the same tunables (a common benchmark-sweep pattern) never pays for the
// metaheuristic twice.
type SolutionCache struct {
	backend Cache
	ttl     time.Duration
}

// NewSolutionCache wraps an existing Cache backend. ttl <= 0 defers to the
// backend's own default TTL.
func NewSolutionCache(backend Cache, ttl time.Duration) *SolutionCache {
	return &SolutionCache{backend: backend, ttl: ttl}
}

// cachedRun is the JSON envelope stored under the solve key. It mirrors
// cvrp.Diagnostics plus the best solution's routes, since Diagnostics alone
// does not carry the solution a caller would want back.
type cachedRun struct {
	Diagnostics cvrp.Diagnostics `json:"diagnostics"`
	Routes      [][]int          `json:"routes"`
}

func configKey(cfg cvrp.Config) string {
	names := make([]string, len(cfg.VND.Neighborhoods))
	for i, n := range cfg.VND.Neighborhoods {
		names[i] = string(n)
	}
	return ConfigHash(configFingerprint{
		InitialTemperature:              cfg.SimulatedAnnealing.InitialTemperature,
		FinalTemperature:                cfg.SimulatedAnnealing.FinalTemperature,
		Alpha:                           cfg.SimulatedAnnealing.Alpha,
		IterationsPerTemperature:        cfg.SimulatedAnnealing.IterationsPerTemperature,
		TabuTenure:                      cfg.TabuSearch.TabuTenure,
		TabuTenureRandomRange:           cfg.TabuSearch.TabuTenureRandomRange,
		AspirationEnabled:               cfg.TabuSearch.AspirationEnabled,
		Neighborhoods:                   names,
		MaxIterationsWithoutImprovement: cfg.VND.MaxIterationsWithoutImprovement,
		CrossExchangeMaxLength:          cfg.VND.CrossExchangeMaxLength,
		MaxIterations:                   cfg.LocalSearch.MaxIterations,
		MaxIterationsWithoutImprove:     cfg.LocalSearch.MaxIterationsWithoutImprove,
		Randomness:                      cfg.InitialSolution.Randomness,
		Seed:                            cfg.General.Seed,
	})
}

// Lookup returns a previously cached run for inst and cfg, if one exists.
// The second return value is false on a cache miss; callers should treat a
// miss exactly like ErrKeyNotFound and fall back to cvrp.Solve.
func (sc *SolutionCache) Lookup(ctx context.Context, inst *cvrp.Instance, cfg cvrp.Config) (cvrp.Diagnostics, [][]int, bool, error) {
	key := BuildSolveKey(inst.Fingerprint(), configKey(cfg))

	raw, err := sc.backend.Get(ctx, key)
	if err != nil {
		if err == ErrKeyNotFound {
			return cvrp.Diagnostics{}, nil, false, nil
		}
		return cvrp.Diagnostics{}, nil, false, fmt.Errorf("cache: lookup %s: %w", key, err)
	}

	var run cachedRun
	if err := json.Unmarshal(raw, &run); err != nil {
		return cvrp.Diagnostics{}, nil, false, fmt.Errorf("cache: decode %s: %w", key, err)
	}
	return run.Diagnostics, run.Routes, true, nil
}

// Store persists the outcome of a completed solve. Routes is the list of
// non-empty routes' customer sequences, in solver order.
func (sc *SolutionCache) Store(ctx context.Context, inst *cvrp.Instance, cfg cvrp.Config, diag cvrp.Diagnostics, routes [][]int) error {
	key := BuildSolveKey(inst.Fingerprint(), configKey(cfg))

	raw, err := json.Marshal(cachedRun{Diagnostics: diag, Routes: routes})
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}
	if err := sc.backend.Set(ctx, key, raw, sc.ttl); err != nil {
		return fmt.Errorf("cache: store %s: %w", key, err)
	}
	return nil
}
