package cvrp

import "math/rand"

// tabuList tracks recently-applied move signatures and the iteration each
// entry expires at. Tenure is randomized per entry within
// [tenure, tenure+randomRange] so the search doesn't fall into a fixed-
// length cycle (a classical tabu-search pitfall with a constant tenure).
type tabuList struct {
	expiresAt map[Signature]int
	base      int
	spread    int
	rng       *rand.Rand
}

func newTabuList(cfg Config, rng *rand.Rand) *tabuList {
	return &tabuList{
		expiresAt: make(map[Signature]int),
		base:      cfg.TabuSearch.TabuTenure,
		spread:    cfg.TabuSearch.TabuTenureRandomRange,
		rng:       rng,
	}
}

// isTabu reports whether sig is still forbidden at the given iteration.
func (tl *tabuList) isTabu(sig Signature, iteration int) bool {
	expiry, ok := tl.expiresAt[sig]
	return ok && iteration < expiry
}

// add marks sig tabu starting at iteration, for a randomized tenure.
func (tl *tabuList) add(sig Signature, iteration int) {
	tenure := tl.base
	if tl.spread > 0 {
		tenure += tl.rng.Intn(tl.spread + 1)
	}
	tl.expiresAt[sig] = iteration + tenure
}

// routeIDMarker offsets a destination route index into its own namespace
// so it can never collide with a customer id when paired into a
// Signature's (X, Y) fields.
const routeIDMarker = 1_000_000_000

// signatureOf reduces a Move, evaluated against the solution it is about
// to be applied to, to its canonical tabu Signature. Per the tabu memory's
// contract, a signature must survive small perturbations elsewhere in the
// solution, so it is keyed on customer ids (and, for relocate, the stable
// destination route index) rather than on positions that shift as routes
// mutate:
//   - swap: the unordered pair of customer ids exchanged.
//   - relocate: the moved customer paired with its destination route.
//   - two-opt: the unordered pair of customer ids at the reversed
//     segment's endpoints, i.e. the edge endpoints changed.
//   - cross: the unordered pair of segment-head customer ids.
func signatureOf(s *Solution, m Move) Signature {
	switch m.Kind {
	case MoveSwap:
		customerA := s.Routes[m.RouteI].Customers[m.PosA]
		customerB := s.Routes[m.RouteJ].Customers[m.PosB]
		return newSignature(m.Kind, customerA, customerB)
	case MoveRelocate:
		customer := s.Routes[m.RouteI].Customers[m.PosA]
		return newSignature(m.Kind, customer, routeIDMarker+m.RouteJ)
	case MoveTwoOpt:
		endpointA := s.Routes[m.RouteI].Customers[m.PosA]
		endpointB := s.Routes[m.RouteI].Customers[m.PosB]
		return newSignature(m.Kind, endpointA, endpointB)
	case MoveCross:
		headA := s.Routes[m.RouteI].Customers[m.PosA]
		headB := s.Routes[m.RouteJ].Customers[m.PosB]
		return newSignature(m.Kind, headA, headB)
	default:
		panic(assertionErrorf("signatureOf: unknown move kind %v", m.Kind))
	}
}
