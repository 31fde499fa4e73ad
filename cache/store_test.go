package cache

import (
	"context"
	"testing"

	"github.com/RamiMohamed12/projectVRP/cvrp"
	"github.com/RamiMohamed12/projectVRP/distmatrix"
)

func lineInstance(t *testing.T, capacity int, demand []int) *cvrp.Instance {
	t.Helper()
	n := len(demand)
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			d := i - j
			if d < 0 {
				d = -d
			}
			rows[i][j] = float64(d)
		}
	}
	m, err := distmatrix.New(rows, distmatrix.Options{RequireSymmetric: true})
	if err != nil {
		t.Fatalf("distmatrix.New: %v", err)
	}
	inst, err := cvrp.NewInstance(m, demand, capacity, nil)
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}
	return inst
}

func TestSolutionCache_RoundTrip(t *testing.T) {
	inst := lineInstance(t, 10, []int{0, 1, 1, 1})
	cfg := cvrp.DefaultConfig()

	sol, diag, err := cvrp.Solve(context.Background(), inst, cfg)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	backend := NewMemoryCache(DefaultOptions())
	defer backend.Close()
	sc := NewSolutionCache(backend, 0)

	if _, _, ok, err := sc.Lookup(context.Background(), inst, cfg); err != nil || ok {
		t.Fatalf("expected miss before Store, got ok=%v err=%v", ok, err)
	}

	if err := sc.Store(context.Background(), inst, cfg, diag, sol.NonEmptyRoutes()); err != nil {
		t.Fatalf("Store: %v", err)
	}

	gotDiag, gotRoutes, ok, err := sc.Lookup(context.Background(), inst, cfg)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if !ok {
		t.Fatalf("expected hit after Store")
	}
	if gotDiag.BestCost != diag.BestCost {
		t.Errorf("BestCost = %v, want %v", gotDiag.BestCost, diag.BestCost)
	}
	if len(gotRoutes) != len(sol.NonEmptyRoutes()) {
		t.Errorf("got %d routes, want %d", len(gotRoutes), len(sol.NonEmptyRoutes()))
	}
}

func TestSolutionCache_DifferentFingerprintMisses(t *testing.T) {
	instA := lineInstance(t, 10, []int{0, 1, 1, 1})
	instB := lineInstance(t, 10, []int{0, 2, 2, 2})
	cfg := cvrp.DefaultConfig()

	backend := NewMemoryCache(DefaultOptions())
	defer backend.Close()
	sc := NewSolutionCache(backend, 0)

	if err := sc.Store(context.Background(), instA, cfg, cvrp.Diagnostics{BestCost: 42}, [][]int{{1, 2, 3}}); err != nil {
		t.Fatalf("Store: %v", err)
	}

	if _, _, ok, err := sc.Lookup(context.Background(), instB, cfg); err != nil || ok {
		t.Fatalf("expected miss for a different instance fingerprint, got ok=%v err=%v", ok, err)
	}
}

func TestSolutionCache_DifferentConfigMisses(t *testing.T) {
	inst := lineInstance(t, 10, []int{0, 1, 1, 1})
	cfgA := cvrp.DefaultConfig()
	cfgB := cvrp.DefaultConfig()
	cfgB.General.Seed = cfgA.General.Seed + 1

	backend := NewMemoryCache(DefaultOptions())
	defer backend.Close()
	sc := NewSolutionCache(backend, 0)

	if err := sc.Store(context.Background(), inst, cfgA, cvrp.Diagnostics{BestCost: 42}, [][]int{{1, 2, 3}}); err != nil {
		t.Fatalf("Store: %v", err)
	}

	if _, _, ok, err := sc.Lookup(context.Background(), inst, cfgB); err != nil || ok {
		t.Fatalf("expected miss for a different config hash, got ok=%v err=%v", ok, err)
	}
}
