package cvrp

// Cost evaluation without mutation. Every neighbourhood enumerator scores a
// candidate Move by calling delta before deciding whether to keep it and,
// eventually, Apply it. Each function below builds the minimal modified
// copy of the route(s) a move would touch and recomputes its cost directly
// (never incrementally) — the same full-recomputation policy Route.recompute
// uses, so a Move's delta and Apply's resulting state never disagree.

func swappedRoute(customers []int, a, b int) []int {
	out := append([]int(nil), customers...)
	out[a], out[b] = out[b], out[a]
	return out
}

func swappedSingle(customers []int, pos, value int) []int {
	out := append([]int(nil), customers...)
	out[pos] = value
	return out
}

func twoOptRoute(customers []int, a, b int) []int {
	out := append([]int(nil), customers...)
	reverseInPlace(out, a, b)
	return out
}

// relocatedSameRoute returns the route that results from removing the
// customer at position a and reinserting it at position b, within a single
// route.
func relocatedSameRoute(customers []int, a, b int) []int {
	out := append([]int(nil), customers...)
	customer := out[a]
	out = append(out[:a], out[a+1:]...)
	insertAt := b
	if b > a {
		insertAt--
	}
	out = append(out, 0)
	copy(out[insertAt+1:], out[insertAt:])
	out[insertAt] = customer
	return out
}

// relocatedCrossRoute returns the two routes that result from removing the
// customer at ri[a] and inserting it at rj[b].
func relocatedCrossRoute(ri, rj []int, a, b int) ([]int, []int) {
	customer := ri[a]

	newRi := append([]int(nil), ri[:a]...)
	newRi = append(newRi, ri[a+1:]...)

	newRj := append([]int(nil), rj[:b]...)
	newRj = append(newRj, customer)
	newRj = append(newRj, rj[b:]...)

	return newRi, newRj
}

// crossedRoutes returns the two routes that result from swapping segment
// ri[a1..a2] with segment rj[b1..b2].
func crossedRoutes(ri, rj []int, a1, a2, b1, b2 int) ([]int, []int) {
	segI := append([]int(nil), ri[a1:a2+1]...)
	segJ := append([]int(nil), rj[b1:b2+1]...)

	newRi := append([]int(nil), ri[:a1]...)
	newRi = append(newRi, segJ...)
	newRi = append(newRi, ri[a2+1:]...)

	newRj := append([]int(nil), rj[:b1]...)
	newRj = append(newRj, segI...)
	newRj = append(newRj, rj[b2+1:]...)

	return newRi, newRj
}

// delta returns the change in total solution cost that Apply(move) would
// produce, without mutating s. Only the route(s) the move touches are
// recomputed; every other route's cached cost is reused unchanged.
func delta(s *Solution, m Move) float64 {
	inst := s.inst
	switch m.Kind {
	case MoveSwap:
		if m.RouteI == m.RouteJ {
			r := s.Routes[m.RouteI]
			newC := swappedRoute(r.Customers, m.PosA, m.PosB)
			return inst.routeCost(newC) - r.Cost
		}
		ri, rj := s.Routes[m.RouteI], s.Routes[m.RouteJ]
		newRi := swappedSingle(ri.Customers, m.PosA, rj.Customers[m.PosB])
		newRj := swappedSingle(rj.Customers, m.PosB, ri.Customers[m.PosA])
		return (inst.routeCost(newRi) + inst.routeCost(newRj)) - (ri.Cost + rj.Cost)

	case MoveRelocate:
		ri, rj := s.Routes[m.RouteI], s.Routes[m.RouteJ]
		if m.RouteI == m.RouteJ {
			newC := relocatedSameRoute(ri.Customers, m.PosA, m.PosB)
			return inst.routeCost(newC) - ri.Cost
		}
		newRi, newRj := relocatedCrossRoute(ri.Customers, rj.Customers, m.PosA, m.PosB)
		return (inst.routeCost(newRi) + inst.routeCost(newRj)) - (ri.Cost + rj.Cost)

	case MoveTwoOpt:
		r := s.Routes[m.RouteI]
		newC := twoOptRoute(r.Customers, m.PosA, m.PosB)
		return inst.routeCost(newC) - r.Cost

	case MoveCross:
		ri, rj := s.Routes[m.RouteI], s.Routes[m.RouteJ]
		newRi, newRj := crossedRoutes(ri.Customers, rj.Customers, m.PosA, m.PosA2, m.PosB, m.PosB2)
		return (inst.routeCost(newRi) + inst.routeCost(newRj)) - (ri.Cost + rj.Cost)

	default:
		panic(assertionErrorf("delta: unknown move kind %v", m.Kind))
	}
}
