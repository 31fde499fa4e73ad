package cvrp

import "errors"

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Sentinel errors (validation, feasibility, algorithm governance)
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

var (
	// ErrInfeasibleDemand indicates some customer's demand exceeds vehicle capacity.
	ErrInfeasibleDemand = errors.New("cvrp: demand exceeds vehicle capacity")

	// ErrNonPositiveCapacity indicates capacity <= 0.
	ErrNonPositiveCapacity = errors.New("cvrp: capacity must be positive")

	// ErrDemandLengthMismatch indicates len(demand) != n+1, the order of the
	// distance matrix (depot plus n customers).
	ErrDemandLengthMismatch = errors.New("cvrp: demand length does not match instance size")

	// ErrEmptyNeighborhoodList indicates Config.VND.Neighborhoods is empty.
	ErrEmptyNeighborhoodList = errors.New("cvrp: vnd.neighborhoods must not be empty")

	// ErrUnknownNeighborhood indicates a name outside {swap,relocate,two_opt,cross_exchange}.
	ErrUnknownNeighborhood = errors.New("cvrp: unknown neighborhood name")

	// ErrInvalidAlpha indicates alpha not in (0,1).
	ErrInvalidAlpha = errors.New("cvrp: simulated_annealing.alpha must be in (0,1)")

	// ErrInvalidTemperatures indicates final_temperature >= initial_temperature,
	// or either is non-positive.
	ErrInvalidTemperatures = errors.New("cvrp: final_temperature must be positive and less than initial_temperature")

	// ErrInvalidIterationsPerTemperature indicates L <= 0.
	ErrInvalidIterationsPerTemperature = errors.New("cvrp: simulated_annealing.iterations_per_temperature must be positive")

	// ErrNegativeTenure indicates a negative tabu tenure or random range.
	ErrNegativeTenure = errors.New("cvrp: tabu tenure and random range must be non-negative")

	// ErrInvalidRandomness indicates initial_solution.randomness outside [0,1].
	ErrInvalidRandomness = errors.New("cvrp: initial_solution.randomness must be in [0,1]")

	// ErrInvalidMaxIterations indicates a configured iteration bound <= 0.
	ErrInvalidMaxIterations = errors.New("cvrp: iteration bound must be positive")

	// ErrInvalidCrossExchangeLength indicates a configured segment length <= 0.
	ErrInvalidCrossExchangeLength = errors.New("cvrp: vnd.cross_exchange_max_length must be positive")

	// ErrApplyInfeasible is a programmer error: Apply was called with a move
	// that would violate capacity. Callers must screen with feasible first.
	ErrApplyInfeasible = errors.New("cvrp: apply called with infeasible move")
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Move representation
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// MoveKind tags the variant held by a Move.
type MoveKind int

const (
	// MoveSwap exchanges the customers at two positions in two routes.
	MoveSwap MoveKind = iota
	// MoveRelocate removes a customer from one route and inserts it elsewhere.
	MoveRelocate
	// MoveTwoOpt reverses a segment within a single route.
	MoveTwoOpt
	// MoveCross swaps two contiguous segments between two routes.
	MoveCross
)

// String renders the MoveKind for diagnostics and log fields.
func (k MoveKind) String() string {
	switch k {
	case MoveSwap:
		return "swap"
	case MoveRelocate:
		return "relocate"
	case MoveTwoOpt:
		return "two_opt"
	case MoveCross:
		return "cross_exchange"
	default:
		return "unknown"
	}
}

// Move is a tagged value describing one local modification of a Solution.
// Field meaning depends on Kind:
//
//	MoveSwap:     RouteI, PosA <-> RouteJ, PosB
//	MoveRelocate: remove at RouteI[PosA], insert into RouteJ at PosB
//	MoveTwoOpt:   reverse RouteI[PosA..PosB] (RouteJ, PosA2/PosB2 unused)
//	MoveCross:    swap RouteI[PosA..PosA2] with RouteJ[PosB..PosB2]
//
// A Move is created by a neighbourhood enumerator, consumed at most once by
// Apply, and never stored beyond one iteration.
type Move struct {
	Kind           MoveKind
	RouteI, RouteJ int
	PosA, PosB     int
	PosA2, PosB2   int // segment end positions, MoveCross only
	Delta          float64
}

// Signature is a canonical key a Move reduces to for tabu bookkeeping. Two
// moves that are trivial relabellings of each other (e.g. swap(i,j,a,b) vs
// swap(j,i,b,a)) produce the same Signature.
type Signature struct {
	Kind MoveKind
	X, Y int
}

func newSignature(kind MoveKind, x, y int) Signature {
	if x > y {
		x, y = y, x
	}
	return Signature{Kind: kind, X: x, Y: y}
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Neighbourhood names (configuration + dispatch)
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// NeighborhoodName identifies one of the four configured neighbourhoods.
type NeighborhoodName string

const (
	NeighborhoodSwap     NeighborhoodName = "swap"
	NeighborhoodRelocate NeighborhoodName = "relocate"
	NeighborhoodTwoOpt   NeighborhoodName = "two_opt"
	NeighborhoodCross    NeighborhoodName = "cross_exchange"
)

func (n NeighborhoodName) valid() bool {
	switch n {
	case NeighborhoodSwap, NeighborhoodRelocate, NeighborhoodTwoOpt, NeighborhoodCross:
		return true
	default:
		return false
	}
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Diagnostics
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Diagnostics reports what happened during a Solve call, for the caller's
// reporting/CLI collaborator.
type Diagnostics struct {
	Iterations       int
	FinalTemperature float64
	TimedOut         bool
	BestCost         float64
	GapPercentage    float64 // 0 if Instance has no BestKnown
	HasGap           bool
	Accepted         map[NeighborhoodName]int
	Rejected         map[NeighborhoodName]int
}

func newDiagnostics() Diagnostics {
	return Diagnostics{
		Accepted: make(map[NeighborhoodName]int),
		Rejected: make(map[NeighborhoodName]int),
	}
}
