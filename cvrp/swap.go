package cvrp

import "math/rand"

// swapMoves enumerates every pair of positions (one per route, routes may
// coincide) that could be exchanged. Enumeration order is fixed: outer loop
// over RouteI ascending, then PosA ascending, then RouteJ >= RouteI
// ascending, then PosB ascending (PosB > PosA when RouteI == RouteJ, to
// avoid the degenerate no-op of swapping a position with itself).
func swapMoves(s *Solution, yield func(Move)) {
	for i := range s.Routes {
		for a := range s.Routes[i].Customers {
			for j := i; j < len(s.Routes); j++ {
				startB := 0
				if j == i {
					startB = a + 1
				}
				for b := startB; b < len(s.Routes[j].Customers); b++ {
					yield(Move{Kind: MoveSwap, RouteI: i, RouteJ: j, PosA: a, PosB: b})
				}
			}
		}
	}
}

// bestImprovingSwap returns the most negative-delta feasible swap, or
// ok=false if none exists.
func bestImprovingSwap(s *Solution) (Move, bool) {
	var (
		best  Move
		bestD float64
		found bool
	)
	swapMoves(s, func(m Move) {
		if !feasible(s, m) {
			return
		}
		d := delta(s, m)
		if d < 0 && (!found || d < bestD) {
			m.Delta = d
			best, bestD, found = m, d, true
		}
	})
	return best, found
}

// randomSwap returns a uniformly random feasible swap, via reservoir
// sampling over the enumeration order so no intermediate slice of all
// candidates is materialized.
func randomSwap(s *Solution, rng *rand.Rand) (Move, bool) {
	var (
		chosen Move
		found  bool
		seen   int
	)
	swapMoves(s, func(m Move) {
		if !feasible(s, m) {
			return
		}
		seen++
		if rng.Intn(seen) == 0 {
			m.Delta = delta(s, m)
			chosen = m
			found = true
		}
	})
	return chosen, found
}
