package cvrp

import "context"

// Solve runs the full construction -> VND -> Simulated Annealing / Tabu
// Search pipeline against inst using cfg, and returns the best solution
// found together with run diagnostics.
//
// Solve validates cfg before doing any work and returns a *cvrperr.Error
// with Kind InvalidConfig if it fails; inst is assumed already validated
// by NewInstance. After validation, Solve cannot fail — if ctx is
// cancelled or its deadline is exceeded mid-run, Solve returns the best
// solution found so far with Diagnostics.TimedOut set, never an error.
//
// Solve performs no I/O: it neither reads nor writes files, makes no
// network calls, and is safe to call from any goroutine so long as inst
// and cfg are not mutated concurrently. Caching and persisting results
// (the cache and resultstore packages) are the caller's responsibility,
// performed before and after this call.
func Solve(ctx context.Context, inst *Instance, cfg Config) (*Solution, Diagnostics, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, Diagnostics{}, err
	}

	h := resolveHooks(cfg)
	h.log.Info("solve starting", "customers", inst.N(), "capacity", inst.Capacity())

	if deadline := cfg.General.TimeLimit(); deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, deadline)
		defer cancel()
	}

	s := construct(inst, cfg)
	vnd(s, cfg)

	diag := newDiagnostics()
	best := simulatedAnnealingTabu(ctx, s, cfg, &diag, h)

	diag.BestCost = best.Cost()
	if bk, ok := inst.BestKnown(); ok && bk > 0 {
		diag.HasGap = true
		diag.GapPercentage = (diag.BestCost - bk) / bk * 100
	}

	h.log.Info("solve finished",
		"iterations", diag.Iterations,
		"best_cost", diag.BestCost,
		"timed_out", diag.TimedOut,
	)
	h.met.ObserveBestCost(diag.BestCost)

	return best, diag, nil
}
