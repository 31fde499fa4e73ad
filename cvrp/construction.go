package cvrp

import (
	"math/rand"
	"sort"
)

// Construction builds an initial Solution with a randomized nearest-
// neighbour heuristic: starting from the depot, repeatedly extend the
// current route with a customer drawn from the closest few feasible
// candidates, opening a new route whenever no unvisited customer fits in
// the remaining capacity.
//
// InitialSolutionConfig.Randomness controls how wide that candidate window
// is: 0 always takes the single nearest feasible customer (pure greedy
// nearest-neighbour); 1 samples uniformly among every feasible customer
// regardless of distance. Intermediate values bias toward nearby customers
// while still varying the result across seeds, so runs with different
// seeds start the search from distinct solutions.
//
// Complexity: O(n^2 log n) — each of n customers is placed by scanning and
// sorting the remaining unvisited set.
func construct(inst *Instance, cfg Config) *Solution {
	rng := deriveRNG(cfg.General.Seed, streamConstruction)
	n := inst.N()

	visited := make([]bool, n+1) // index 0 (depot) stays false but is never consulted
	remaining := n

	var routes [][]int
	for remaining > 0 {
		var route []int
		load := 0
		current := 0 // depot

		for {
			next, ok := pickNext(inst, visited, current, load, cfg.InitialSolution.Randomness, rng)
			if !ok {
				break
			}
			route = append(route, next)
			visited[next] = true
			load += inst.Demand(next)
			current = next
			remaining--
		}

		if len(route) == 0 {
			// No feasible customer existed at all; unreachable once
			// NewInstance has validated every demand[i] <= capacity, so
			// reaching this is a bug rather than bad input.
			panic(assertionErrorf("construct: no feasible customer found with %d customers still unplaced", remaining))
		}
		routes = append(routes, route)
	}

	return NewSolution(inst, routes)
}

type constructionCandidate struct {
	customer int
	dist     float64
}

// pickNext chooses the next customer to append to the route currently at
// vertex current with load so far. Returns ok=false when no unvisited
// customer fits in the remaining capacity, signalling the caller to close
// the route.
func pickNext(inst *Instance, visited []bool, current, load int, randomness float64, rng *rand.Rand) (int, bool) {
	capacityLeft := inst.Capacity() - load

	var pool []constructionCandidate
	for c := 1; c <= inst.N(); c++ {
		if visited[c] || inst.Demand(c) > capacityLeft {
			continue
		}
		pool = append(pool, constructionCandidate{customer: c, dist: inst.Dist(current, c)})
	}
	if len(pool) == 0 {
		return 0, false
	}

	sort.Slice(pool, func(i, j int) bool { return pool[i].dist < pool[j].dist })

	windowSize := 1 + int(randomness*float64(len(pool)-1))
	if windowSize > len(pool) {
		windowSize = len(pool)
	}
	choice := 0
	if windowSize > 1 {
		choice = rng.Intn(windowSize)
	}
	return pool[choice].customer, true
}
