package cvrp

import "testing"

func TestVND_ReachesLocalOptimum(t *testing.T) {
	inst := lineInstance(t, 100, []int{0, 1, 1, 1, 1, 1, 1})
	s := NewSolution(inst, [][]int{{1, 3, 2}, {4, 6, 5}})
	cfg := DefaultConfig()

	before := s.Cost()
	vnd(s, cfg)

	if s.Cost() >= before {
		t.Fatalf("VND did not improve a deliberately scrambled solution: before=%v after=%v", before, s.Cost())
	}
	if err := s.Verify(); err != nil {
		t.Fatalf("Verify after VND: %v", err)
	}

	for _, name := range cfg.VND.Neighborhoods {
		if _, ok := bestImprovingMove(s, name, cfg); ok {
			t.Fatalf("VND returned before reaching a local optimum in %s", name)
		}
	}
}

func TestVND_NoOpOnAlreadyOptimal(t *testing.T) {
	inst := lineInstance(t, 100, []int{0, 1, 1, 1})
	s := NewSolution(inst, [][]int{{1, 2, 3}})
	cfg := DefaultConfig()

	before := s.Cost()
	applied := vnd(s, cfg)

	if applied != 0 {
		t.Fatalf("expected no moves on an already-optimal single route, applied %d", applied)
	}
	if s.Cost() != before {
		t.Fatalf("cost changed despite no moves applied")
	}
}
