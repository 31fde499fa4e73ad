package cvrp

import "math/rand"

// twoOptMoves enumerates every reversible segment [a,b] (a<b) within each
// route. Two-opt never crosses routes: reversing a single route's segment
// changes exactly the two edges at its boundary. Enumeration order: route
// ascending, then a ascending, then b ascending.
func twoOptMoves(s *Solution, yield func(Move)) {
	for i, r := range s.Routes {
		n := len(r.Customers)
		for a := 0; a < n; a++ {
			for b := a + 1; b < n; b++ {
				yield(Move{Kind: MoveTwoOpt, RouteI: i, RouteJ: i, PosA: a, PosB: b})
			}
		}
	}
}

func bestImprovingTwoOpt(s *Solution) (Move, bool) {
	var (
		best  Move
		bestD float64
		found bool
	)
	twoOptMoves(s, func(m Move) {
		// Reversal never changes load, so every enumerated two-opt move is
		// feasible by construction; feasible() is still called for symmetry
		// with the other neighbourhoods and to stay correct if that ever
		// changes.
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

func randomTwoOpt(s *Solution, rng *rand.Rand) (Move, bool) {
	var (
		chosen Move
		found  bool
		seen   int
	)
	twoOptMoves(s, func(m Move) {
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
