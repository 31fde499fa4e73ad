package cvrp

import "math/rand"

// vnd runs Variable Neighborhood Descent in place on s: cycle through
// cfg.VND.Neighborhoods in configured order, apply the best improving move
// of the first neighbourhood that has one, then restart the cycle from the
// first neighbourhood.
// Descent stops as soon as a full cycle passes with no improving move.
// MaxIterationsWithoutImprovement caps the total number of cycles as a
// safety net against a degenerate sequence of arbitrarily small improving
// deltas that would otherwise never terminate.
//
// Returns the number of moves actually applied.
func vnd(s *Solution, cfg Config) int {
	applied := 0

	for cycle := 0; cycle < cfg.VND.MaxIterationsWithoutImprovement; cycle++ {
		improved := false
		for _, name := range cfg.VND.Neighborhoods {
			m, ok := bestImprovingMove(s, name, cfg)
			if !ok {
				continue
			}
			s.Apply(m)
			applied++
			improved = true
			break // restart the cycle from the first neighbourhood
		}
		if !improved {
			break
		}
	}

	return applied
}

// bestImprovingMove dispatches to the neighbourhood named by name.
func bestImprovingMove(s *Solution, name NeighborhoodName, cfg Config) (Move, bool) {
	switch name {
	case NeighborhoodSwap:
		return bestImprovingSwap(s)
	case NeighborhoodRelocate:
		return bestImprovingRelocate(s)
	case NeighborhoodTwoOpt:
		return bestImprovingTwoOpt(s)
	case NeighborhoodCross:
		return bestImprovingCross(s, cfg.VND.CrossExchangeMaxLength)
	default:
		panic(assertionErrorf("bestImprovingMove: unknown neighborhood %q", name))
	}
}

// randomMove dispatches a random (not necessarily improving) move from the
// named neighbourhood, for the SA+Tabu outer loop.
func randomMove(s *Solution, name NeighborhoodName, cfg Config, rng *rand.Rand) (Move, bool) {
	switch name {
	case NeighborhoodSwap:
		return randomSwap(s, rng)
	case NeighborhoodRelocate:
		return randomRelocate(s, rng)
	case NeighborhoodTwoOpt:
		return randomTwoOpt(s, rng)
	case NeighborhoodCross:
		return randomCross(s, cfg.VND.CrossExchangeMaxLength, rng)
	default:
		panic(assertionErrorf("randomMove: unknown neighborhood %q", name))
	}
}
