package cvrp

import (
	"context"
	"testing"
	"time"
)

func fastTestConfig() Config {
	cfg := DefaultConfig()
	cfg.SimulatedAnnealing.InitialTemperature = 50
	cfg.SimulatedAnnealing.FinalTemperature = 1
	cfg.SimulatedAnnealing.IterationsPerTemperature = 20
	cfg.LocalSearch.MaxIterations = 2000
	cfg.LocalSearch.MaxIterationsWithoutImprove = 500
	return cfg
}

func TestSolve_TrivialThreeCustomer(t *testing.T) {
	inst := lineInstance(t, 100, []int{0, 1, 1, 1})
	sol, diag, err := Solve(context.Background(), inst, fastTestConfig())
	if err != nil {
		t.Fatalf("Solve returned an error: %v", err)
	}
	if err := sol.Verify(); err != nil {
		t.Fatalf("returned solution failed Verify: %v", err)
	}
	if diag.TimedOut {
		t.Fatalf("did not expect a timeout on a trivial instance")
	}
	// The optimal single-route tour costs dist(0,1)+dist(1,2)+dist(2,3)+dist(3,0) = 1+1+1+3 = 6.
	if sol.Cost() > 6+1e-6 {
		t.Fatalf("expected the optimal cost of 6, got %v", sol.Cost())
	}
}

func TestSolve_RejectsInvalidConfig(t *testing.T) {
	inst := lineInstance(t, 100, []int{0, 1, 1, 1})
	cfg := fastTestConfig()
	cfg.SimulatedAnnealing.Alpha = 1.5 // out of (0,1)

	_, _, err := Solve(context.Background(), inst, cfg)
	if err == nil {
		t.Fatalf("expected an InvalidConfig error")
	}
}

func TestSolve_IsReproducibleForFixedSeed(t *testing.T) {
	inst := lineInstance(t, 5, []int{0, 2, 2, 2, 2, 2, 2, 2})
	cfg := fastTestConfig()
	cfg.General.Seed = 123

	a, _, err := Solve(context.Background(), inst, cfg)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	b, _, err := Solve(context.Background(), inst, cfg)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !floatEq(a.Cost(), b.Cost()) {
		t.Fatalf("same seed produced different costs: %v vs %v", a.Cost(), b.Cost())
	}
}

func TestSolve_HonorsTimeLimit(t *testing.T) {
	inst := lineInstance(t, 2, []int{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1})
	cfg := DefaultConfig()
	cfg.General.TimeLimitSeconds = 0.001
	cfg.SimulatedAnnealing.IterationsPerTemperature = 1_000_000
	cfg.LocalSearch.MaxIterations = 100_000_000
	cfg.LocalSearch.MaxIterationsWithoutImprove = 100_000_000

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	sol, diag, err := Solve(ctx, inst, cfg)
	if err != nil {
		t.Fatalf("Solve returned an error: %v", err)
	}
	if !diag.TimedOut {
		t.Fatalf("expected TimedOut given an effectively unreachable iteration cap")
	}
	if err := sol.Verify(); err != nil {
		t.Fatalf("timed-out solution failed Verify: %v", err)
	}
}

func TestSolve_TwoRouteForcedByCapacity(t *testing.T) {
	// Capacity forces at least two routes: total demand 8 with capacity 5.
	inst := lineInstance(t, 5, []int{0, 3, 3, 1, 1})
	sol, _, err := Solve(context.Background(), inst, fastTestConfig())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(sol.NonEmptyRoutes()) < 2 {
		t.Fatalf("expected at least two routes given capacity 5 and total demand 8")
	}
	if err := sol.Verify(); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}
