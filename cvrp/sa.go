package cvrp

import (
	"context"
	"math"
	"math/rand"
)

// ctxCheckInterval bounds how often the inner loop pays for a channel
// receive to check ctx cancellation; checking every iteration would be
// wasteful on the hot path.
const ctxCheckInterval = 64

// simulatedAnnealingTabu runs the outer loop (spec 4.H) on top of s, which
// must already be a VND local optimum. At every temperature level it
// repeats IterationsPerTemperature times:
//
//  1. pick a uniformly random configured neighbourhood;
//  2. draw a uniformly random feasible move from it;
//  3. compute the move's signature and check the tabu table, unless
//     aspiration is enabled and the move would beat the best solution ever
//     seen, which overrides a tabu hit;
//  4. accept per the Metropolis criterion: always if delta <= 0, otherwise
//     with probability exp(-delta/T);
//  5. on acceptance, apply the move, mark its signature tabu, and update
//     the global best if improved;
//  6. periodically (every IterationsPerTemperature iterations, i.e. once
//     per temperature level) re-run VND to re-descend to a local optimum.
//
// Cooling multiplies T by Alpha after each temperature level. The loop
// stops when T <= FinalTemperature, LocalSearch.MaxIterations total
// iterations are reached, LocalSearch.MaxIterationsWithoutImprove
// iterations pass without a new global best, or ctx is done.
//
// Returns the best solution seen (which may be s itself, mutated in
// place) and fills in diag's Iterations, FinalTemperature, TimedOut,
// Accepted, and Rejected fields. BestCost and the gap fields are filled by
// the caller once the best solution is finalized.
func simulatedAnnealingTabu(ctx context.Context, s *Solution, cfg Config, diag *Diagnostics, h hooks) *Solution {
	acceptanceRNG := deriveRNG(cfg.General.Seed, streamSAAcceptance)
	neighborhoodRNG := deriveRNG(cfg.General.Seed, streamNeighborhoodChoice)
	tabu := newTabuList(cfg, deriveRNG(cfg.General.Seed, streamTabuTenure))
	moveRNG := map[NeighborhoodName]*rand.Rand{
		NeighborhoodSwap:     deriveRNG(cfg.General.Seed, streamSwapRandom),
		NeighborhoodRelocate: deriveRNG(cfg.General.Seed, streamRelocateRandom),
		NeighborhoodTwoOpt:   deriveRNG(cfg.General.Seed, streamTwoOptRandom),
		NeighborhoodCross:    deriveRNG(cfg.General.Seed, streamCrossRandom),
	}

	best := s.Clone()
	bestCost := best.Cost()

	temperature := cfg.SimulatedAnnealing.InitialTemperature
	iterations := 0
	iterationsWithoutImprovement := 0

	for temperature > cfg.SimulatedAnnealing.FinalTemperature {
		select {
		case <-ctx.Done():
			diag.TimedOut = true
			diag.Iterations = iterations
			diag.FinalTemperature = temperature
			return best
		default:
		}

		_, done := startTemperatureSpan(ctx, cfg, temperature)

		for i := 0; i < cfg.SimulatedAnnealing.IterationsPerTemperature; i++ {
			if iterations >= cfg.LocalSearch.MaxIterations {
				done()
				diag.Iterations = iterations
				diag.FinalTemperature = temperature
				return best
			}
			if iterationsWithoutImprovement >= cfg.LocalSearch.MaxIterationsWithoutImprove {
				done()
				diag.Iterations = iterations
				diag.FinalTemperature = temperature
				return best
			}
			if iterations%ctxCheckInterval == 0 {
				select {
				case <-ctx.Done():
					done()
					diag.TimedOut = true
					diag.Iterations = iterations
					diag.FinalTemperature = temperature
					return best
				default:
				}
			}

			name := cfg.VND.Neighborhoods[neighborhoodRNG.Intn(len(cfg.VND.Neighborhoods))]
			move, ok := randomMove(s, name, cfg, moveRNG[name])
			iterations++
			if !ok {
				iterationsWithoutImprovement++
				continue
			}

			sig := signatureOf(s, move)
			candidateCost := s.Cost() + move.Delta
			aspirated := cfg.TabuSearch.AspirationEnabled && candidateCost < bestCost
			if tabu.isTabu(sig, iterations) && !aspirated {
				diag.Rejected[name]++
				h.met.IncMoveRejected(name)
				iterationsWithoutImprovement++
				continue
			}

			if !accept(move.Delta, temperature, acceptanceRNG) {
				diag.Rejected[name]++
				h.met.IncMoveRejected(name)
				iterationsWithoutImprovement++
				continue
			}

			s.Apply(move)
			tabu.add(sig, iterations)
			diag.Accepted[name]++
			h.met.IncMoveAccepted(name)

			if s.Cost() < bestCost {
				bestCost = s.Cost()
				best = s.Clone()
				h.met.ObserveBestCost(bestCost)
				iterationsWithoutImprovement = 0
			} else {
				iterationsWithoutImprovement++
			}
		}

		vnd(s, cfg)
		if s.Cost() < bestCost {
			bestCost = s.Cost()
			best = s.Clone()
			h.met.ObserveBestCost(bestCost)
		}

		done()
		h.log.Debug("cooled", "temperature", temperature, "best_cost", bestCost)
		h.met.ObserveTemperature(temperature)
		temperature *= cfg.SimulatedAnnealing.Alpha
	}

	diag.Iterations = iterations
	diag.FinalTemperature = temperature
	return best
}

// accept implements the Metropolis acceptance criterion: improving moves
// (delta <= 0) are always accepted; worsening moves are accepted with
// probability exp(-delta/temperature).
func accept(delta, temperature float64, rng *rand.Rand) bool {
	if delta <= 0 {
		return true
	}
	if temperature <= 0 {
		return false
	}
	return rng.Float64() < math.Exp(-delta/temperature)
}

func startTemperatureSpan(ctx context.Context, cfg Config, temperature float64) (context.Context, func()) {
	if cfg.Tracer == nil {
		return ctx, func() {}
	}
	return cfg.Tracer.StartTemperatureSpan(ctx, temperature)
}
