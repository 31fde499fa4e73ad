package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ConfigHash returns a short, stable hash of the tunables that affect a
// solver run's outcome. Two Config values that differ only in their
// observability hooks (which never affect the search) hash identically,
// since those fields are never encoded here.
func ConfigHash(c configFingerprint) string {
	canonical := fmt.Sprintf(
		"sa:%.6f:%.6f:%.6f:%d|tabu:%d:%d:%t|vnd:%v:%d:%d|ls:%d:%d|init:%.6f|seed:%d",
		c.InitialTemperature, c.FinalTemperature, c.Alpha, c.IterationsPerTemperature,
		c.TabuTenure, c.TabuTenureRandomRange, c.AspirationEnabled,
		c.Neighborhoods, c.MaxIterationsWithoutImprovement, c.CrossExchangeMaxLength,
		c.MaxIterations, c.MaxIterationsWithoutImprove,
		c.Randomness,
		c.Seed,
	)
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:16])
}

// configFingerprint carries exactly the Config fields ConfigHash needs,
// decoupling this package from cvrp.Config's full shape (including its
// non-hashable Logger/Metrics/Tracer hooks).
type configFingerprint struct {
	InitialTemperature       float64
	FinalTemperature         float64
	Alpha                    float64
	IterationsPerTemperature int

	TabuTenure            int
	TabuTenureRandomRange int
	AspirationEnabled     bool

	Neighborhoods                   []string
	MaxIterationsWithoutImprovement int
	CrossExchangeMaxLength          int

	MaxIterations               int
	MaxIterationsWithoutImprove int

	Randomness float64

	Seed int64
}

// BuildSolveKey composes the cache key for a solver run from the instance's
// fingerprint and the hash of the configuration that produced it.
func BuildSolveKey(instanceFingerprint, configHash string) string {
	return fmt.Sprintf("cvrp:solve:%s:%s", instanceFingerprint, configHash)
}
