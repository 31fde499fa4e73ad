package cvrp

import (
	"fmt"

	"github.com/RamiMohamed12/projectVRP/cvrperr"
)

// Apply mutates the solution according to move, recomputing each touched
// route's load and cost from scratch (never by accumulating the move's
// delta) and adjusting the cached total by the resulting difference. This
// keeps the cached total exactly equal to a full recomputation at every
// step (spec P3 / design note on floating-point stability).
//
// Apply is a programmer error if move would violate capacity on any
// touched route — callers must screen with feasible first (spec 4.B).
func (s *Solution) Apply(move Move) {
	switch move.Kind {
	case MoveSwap:
		s.applySwap(move)
	case MoveRelocate:
		s.applyRelocate(move)
	case MoveTwoOpt:
		s.applyTwoOpt(move)
	case MoveCross:
		s.applyCross(move)
	default:
		panic(assertionErrorf("apply: unknown move kind %v", move.Kind))
	}
}

// recomputeRoutes recomputes load/cost for the given route indices and
// folds the cost delta into the cached total. Deduplicates indices so a
// route touched twice (e.g. swap within conceptually-adjacent routes) is
// not double counted.
func (s *Solution) recomputeRoutes(indices ...int) {
	seen := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if seen[idx] {
			continue
		}
		seen[idx] = true
		r := s.Routes[idx]
		old := r.Cost
		r.recompute(s.inst)
		s.total += r.Cost - old
	}
}

func (s *Solution) applySwap(m Move) {
	ri, rj := s.Routes[m.RouteI], s.Routes[m.RouteJ]
	if m.RouteI == m.RouteJ {
		ri.Customers[m.PosA], ri.Customers[m.PosB] = ri.Customers[m.PosB], ri.Customers[m.PosA]
		s.checkCapacity(m.RouteI)
		s.recomputeRoutes(m.RouteI)
		return
	}
	ri.Customers[m.PosA], rj.Customers[m.PosB] = rj.Customers[m.PosB], ri.Customers[m.PosA]
	s.checkCapacity(m.RouteI, m.RouteJ)
	s.recomputeRoutes(m.RouteI, m.RouteJ)
}

func (s *Solution) applyRelocate(m Move) {
	ri, rj := s.Routes[m.RouteI], s.Routes[m.RouteJ]
	customer := ri.Customers[m.PosA]
	ri.Customers = append(ri.Customers[:m.PosA], ri.Customers[m.PosA+1:]...)

	insertAt := m.PosB
	if m.RouteI == m.RouteJ && m.PosB > m.PosA {
		// The removal above shifted everything after PosA left by one.
		insertAt--
	}
	rj = s.Routes[m.RouteJ]
	rj.Customers = append(rj.Customers, 0)
	copy(rj.Customers[insertAt+1:], rj.Customers[insertAt:])
	rj.Customers[insertAt] = customer

	if m.RouteI == m.RouteJ {
		s.checkCapacity(m.RouteI)
		s.recomputeRoutes(m.RouteI)
		return
	}
	s.checkCapacity(m.RouteI, m.RouteJ)
	s.recomputeRoutes(m.RouteI, m.RouteJ)
}

func (s *Solution) applyTwoOpt(m Move) {
	r := s.Routes[m.RouteI]
	reverseInPlace(r.Customers, m.PosA, m.PosB)
	s.checkCapacity(m.RouteI) // load is unaffected by reversal but cost must refresh
	s.recomputeRoutes(m.RouteI)
}

func (s *Solution) applyCross(m Move) {
	ri, rj := s.Routes[m.RouteI], s.Routes[m.RouteJ]
	segI := append([]int(nil), ri.Customers[m.PosA:m.PosA2+1]...)
	segJ := append([]int(nil), rj.Customers[m.PosB:m.PosB2+1]...)

	newI := make([]int, 0, len(ri.Customers)-len(segI)+len(segJ))
	newI = append(newI, ri.Customers[:m.PosA]...)
	newI = append(newI, segJ...)
	newI = append(newI, ri.Customers[m.PosA2+1:]...)

	newJ := make([]int, 0, len(rj.Customers)-len(segJ)+len(segI))
	newJ = append(newJ, rj.Customers[:m.PosB]...)
	newJ = append(newJ, segI...)
	newJ = append(newJ, rj.Customers[m.PosB2+1:]...)

	ri.Customers = newI
	rj.Customers = newJ

	s.checkCapacity(m.RouteI, m.RouteJ)
	s.recomputeRoutes(m.RouteI, m.RouteJ)
}

// checkCapacity panics with an InternalAssertion if any named route now
// exceeds capacity. Apply's contract requires callers to have screened the
// move with feasible already; reaching this means that contract was broken.
func (s *Solution) checkCapacity(indices ...int) {
	for _, idx := range indices {
		r := s.Routes[idx]
		if s.inst.routeLoad(r.Customers) > s.inst.Capacity() {
			panic(&cvrperr.Error{
				Kind:    cvrperr.InternalAssertion,
				Message: fmt.Sprintf("%v: route %d", ErrApplyInfeasible, idx),
				Cause:   ErrApplyInfeasible,
			})
		}
	}
}

func reverseInPlace(xs []int, a, b int) {
	for a < b {
		xs[a], xs[b] = xs[b], xs[a]
		a++
		b--
	}
}
