package cvrp

import "math/rand"

// relocateMoves enumerates every (source position, destination position)
// pair: remove the customer at RouteI[PosA] and reinsert it at RouteJ[PosB]
// (insertion positions range over 0..len(RouteJ), i.e. including the end of
// the route). Enumeration order: RouteI ascending, PosA ascending, RouteJ
// ascending, PosB ascending.
func relocateMoves(s *Solution, yield func(Move)) {
	for i := range s.Routes {
		for a := range s.Routes[i].Customers {
			for j := range s.Routes {
				limit := len(s.Routes[j].Customers)
				for b := 0; b <= limit; b++ {
					if i == j && (b == a || b == a+1) {
						continue // both are no-ops: customer lands back where it started
					}
					yield(Move{Kind: MoveRelocate, RouteI: i, RouteJ: j, PosA: a, PosB: b})
				}
			}
		}
	}
}

func bestImprovingRelocate(s *Solution) (Move, bool) {
	var (
		best  Move
		bestD float64
		found bool
	)
	relocateMoves(s, func(m Move) {
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

func randomRelocate(s *Solution, rng *rand.Rand) (Move, bool) {
	var (
		chosen Move
		found  bool
		seen   int
	)
	relocateMoves(s, func(m Move) {
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
