// Package cvrp solves the Capacitated Vehicle Routing Problem (CVRP)
// without time windows via a hybrid metaheuristic: a randomised
// nearest-neighbour construction heuristic, four local-search
// neighbourhoods (swap, relocate, 2-opt, cross-exchange) driven by
// Variable Neighborhood Descent (VND), wrapped in a Simulated-Annealing
// / Tabu-Search outer loop.
//
// # What & Why
//
// Given a depot, n customers with positive demand, a fleet of identical
// vehicles of fixed capacity, and a symmetric distance matrix, Solve
// partitions customers into routes so every route's total demand stays
// within capacity and the sum of route lengths is minimised.
//
// # Algorithm
//
//	Construction (randomised nearest-neighbour, top-K sampling)
//	  -> VND(swap, relocate, two-opt, cross-exchange) to a local optimum
//	  -> Simulated Annealing + Tabu Search outer loop:
//	       repeat L times per temperature level:
//	         pick a random neighbourhood, draw a random feasible move,
//	         screen it against the tabu table (aspiration overrides),
//	         accept per the Metropolis criterion, periodically re-run VND
//	       cool T by alpha until T <= Tf or a budget is exhausted
//	  -> return the best solution ever seen
//
// # Determinism
//
// All randomness flows from a single seed threaded explicitly through
// Construction and every neighbourhood's random sampling (see rng.go).
// Given the same Instance, Config, and seed, Solve returns a
// bit-identical Solution.
//
// # Errors
//
// Solve returns a *cvrperr.Error with Kind InvalidInstance or
// InvalidConfig when the inputs fail validation before the loop starts;
// after that point it cannot fail — a time limit is reported via
// Diagnostics.TimedOut, never as an error.
//
// # Scope
//
// cvrp does not parse instance files, write solution files, or expose a
// command line — those are external collaborators. It accepts an
// already-validated distance matrix (see the distmatrix package) and
// demand vector and returns routes as customer-id sequences.
package cvrp
