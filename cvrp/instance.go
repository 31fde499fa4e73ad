package cvrp

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"

	"github.com/RamiMohamed12/projectVRP/cvrperr"
	"github.com/RamiMohamed12/projectVRP/distmatrix"
)

// Instance is the immutable problem data shared read-only by every
// component: the distance matrix, per-customer demand, and vehicle
// capacity. Vertex 0 is always the depot; customers are 1..N.
type Instance struct {
	dist        *distmatrix.Matrix
	demand      []int // length n+1; demand[0] is unused (depot has none)
	capacity    int
	bestKnown   float64
	hasBest     bool
	fingerprint string
}

// NewInstance validates and builds an Instance.
//
//   - dist must be square with order n+1 (depot + n customers).
//   - demand must have length n+1; demand[0] is ignored.
//   - capacity must be positive.
//   - every demand[i] (i>=1) must be <= capacity, or the instance is
//     infeasible by construction (ErrInfeasibleDemand).
func NewInstance(dist *distmatrix.Matrix, demand []int, capacity int, bestKnown *float64) (*Instance, error) {
	if capacity <= 0 {
		return nil, cvrperr.Wrap(cvrperr.InvalidInstance, "capacity", ErrNonPositiveCapacity)
	}
	if len(demand) != dist.N() {
		return nil, cvrperr.Wrap(cvrperr.InvalidInstance, "demand", ErrDemandLengthMismatch)
	}
	for i := 1; i < len(demand); i++ {
		if demand[i] < 0 {
			return nil, cvrperr.Wrap(cvrperr.InvalidInstance, "demand", ErrInfeasibleDemand)
		}
		if demand[i] > capacity {
			return nil, cvrperr.Wrap(cvrperr.InvalidInstance, "demand", ErrInfeasibleDemand)
		}
	}

	inst := &Instance{
		dist:     dist,
		demand:   append([]int(nil), demand...),
		capacity: capacity,
	}
	if bestKnown != nil {
		inst.hasBest = true
		inst.bestKnown = *bestKnown
	}
	inst.fingerprint = computeFingerprint(dist, inst.demand, capacity)

	return inst, nil
}

// N returns the number of customers (excluding the depot).
func (inst *Instance) N() int {
	return inst.dist.N() - 1
}

// Dist returns the travel distance between vertices i and j (0 is the depot).
func (inst *Instance) Dist(i, j int) float64 {
	return inst.dist.MustAt(i, j)
}

// Demand returns customer i's demand (i in 1..N()).
func (inst *Instance) Demand(i int) int {
	return inst.demand[i]
}

// Capacity returns the shared vehicle capacity.
func (inst *Instance) Capacity() int {
	return inst.capacity
}

// BestKnown returns the reference objective and whether one was supplied.
func (inst *Instance) BestKnown() (float64, bool) {
	return inst.bestKnown, inst.hasBest
}

// Fingerprint returns a stable hash of the instance data, used as a cache
// and result-store key.
func (inst *Instance) Fingerprint() string {
	return inst.fingerprint
}

// computeFingerprint hashes the canonical encoding of the distance matrix,
// demand vector, and capacity. Deterministic regardless of caller-side
// floating point formatting: IEEE-754 bits are hashed directly.
func computeFingerprint(dist *distmatrix.Matrix, demand []int, capacity int) string {
	h := sha256.New()

	n := dist.N()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(n))
	h.Write(buf[:])

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			binary.BigEndian.PutUint64(buf[:], math.Float64bits(dist.MustAt(i, j)))
			h.Write(buf[:])
		}
	}
	for _, d := range demand {
		binary.BigEndian.PutUint64(buf[:], uint64(int64(d)))
		h.Write(buf[:])
	}
	binary.BigEndian.PutUint64(buf[:], uint64(int64(capacity)))
	h.Write(buf[:])

	return hex.EncodeToString(h.Sum(nil))
}
