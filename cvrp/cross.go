package cvrp

import "math/rand"

// crossMoves enumerates every pair of contiguous segments, one from each of
// two distinct routes, each of length 1..maxLen (spec Open Question:
// cross-exchange segment length is bounded by vnd.cross_exchange_max_length
// to keep the neighbourhood's size polynomial). Enumeration order: RouteI
// ascending, RouteJ > RouteI, segment-I start ascending, segment-I length
// ascending, segment-J start ascending, segment-J length ascending.
func crossMoves(s *Solution, maxLen int, yield func(Move)) {
	for i := 0; i < len(s.Routes); i++ {
		ni := len(s.Routes[i].Customers)
		for j := i + 1; j < len(s.Routes); j++ {
			nj := len(s.Routes[j].Customers)
			for a1 := 0; a1 < ni; a1++ {
				for lenI := 1; lenI <= maxLen && a1+lenI-1 < ni; lenI++ {
					a2 := a1 + lenI - 1
					for b1 := 0; b1 < nj; b1++ {
						for lenJ := 1; lenJ <= maxLen && b1+lenJ-1 < nj; lenJ++ {
							b2 := b1 + lenJ - 1
							yield(Move{
								Kind:   MoveCross,
								RouteI: i, RouteJ: j,
								PosA: a1, PosA2: a2,
								PosB: b1, PosB2: b2,
							})
						}
					}
				}
			}
		}
	}
}

func bestImprovingCross(s *Solution, maxLen int) (Move, bool) {
	var (
		best  Move
		bestD float64
		found bool
	)
	crossMoves(s, maxLen, func(m Move) {
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

func randomCross(s *Solution, maxLen int, rng *rand.Rand) (Move, bool) {
	var (
		chosen Move
		found  bool
		seen   int
	)
	crossMoves(s, maxLen, func(m Move) {
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
