package cvrp

import "time"

// Config collects every tunable named in the solver's external interface.
// Field tags match the dotted configuration paths the config package loads
// via koanf (simulated_annealing.initial_temperature, tabu_search.tabu_tenure,
// vnd.neighborhoods, ...).
type Config struct {
	SimulatedAnnealing SimulatedAnnealingConfig `koanf:"simulated_annealing"`
	TabuSearch         TabuSearchConfig         `koanf:"tabu_search"`
	VND                VNDConfig                `koanf:"vnd"`
	LocalSearch        LocalSearchConfig        `koanf:"local_search"`
	InitialSolution    InitialSolutionConfig    `koanf:"initial_solution"`
	General            GeneralConfig            `koanf:"general"`
	Quality            QualityConfig            `koanf:"quality"`

	// Logger, Metrics, and Tracer are optional observability hooks wired by
	// the caller (typically via the obs package), never decoded from a
	// config file. A nil value in any of the three disables it entirely;
	// Solve never requires them.
	Logger  Logger  `koanf:"-"`
	Metrics Metrics `koanf:"-"`
	Tracer  Tracer  `koanf:"-"`
}

// SimulatedAnnealingConfig controls the outer loop's cooling schedule.
type SimulatedAnnealingConfig struct {
	InitialTemperature      float64 `koanf:"initial_temperature"`
	FinalTemperature        float64 `koanf:"final_temperature"`
	Alpha                   float64 `koanf:"alpha"`
	IterationsPerTemperature int    `koanf:"iterations_per_temperature"`
}

// TabuSearchConfig controls tabu memory tenure and aspiration.
type TabuSearchConfig struct {
	TabuTenure            int  `koanf:"tabu_tenure"`
	TabuTenureRandomRange int  `koanf:"tabu_tenure_random_range"`
	AspirationEnabled     bool `koanf:"aspiration_enabled"`
}

// VNDConfig controls Variable Neighborhood Descent and, by sharing its
// neighbourhood list, the outer loop's sampling pool.
type VNDConfig struct {
	Neighborhoods                   []NeighborhoodName `koanf:"neighborhoods"`
	MaxIterationsWithoutImprovement int                `koanf:"max_iterations_without_improvement"`
	// CrossExchangeMaxLength bounds the segment length L considered by the
	// cross-exchange neighbourhood (spec Open Question, fixed default 3).
	CrossExchangeMaxLength int `koanf:"cross_exchange_max_length"`
}

// LocalSearchConfig bounds the outer loop's own runtime, distinct from the
// VND guard above: these bound the SA+Tabu loop's iteration count and
// iterations since the last global-best improvement.
type LocalSearchConfig struct {
	MaxIterations               int `koanf:"max_iterations"`
	MaxIterationsWithoutImprove int `koanf:"max_iterations_without_improvement"`
}

// InitialSolutionConfig controls the construction heuristic.
type InitialSolutionConfig struct {
	Randomness float64 `koanf:"randomness"`
}

// GeneralConfig controls reproducibility and the wall-clock budget.
type GeneralConfig struct {
	Seed int64 `koanf:"seed"`
	// TimeLimitSeconds <= 0 means "no limit".
	TimeLimitSeconds float64 `koanf:"time_limit_seconds"`
}

// QualityConfig is informational, consumed by a reporter collaborator; the
// solver itself never branches on it.
type QualityConfig struct {
	TargetGapPercentage float64 `koanf:"target_gap_percentage"`
}

// TimeLimit returns GeneralConfig.TimeLimitSeconds as a time.Duration, or
// zero if no limit was configured.
func (g GeneralConfig) TimeLimit() time.Duration {
	if g.TimeLimitSeconds <= 0 {
		return 0
	}
	return time.Duration(g.TimeLimitSeconds * float64(time.Second))
}

// DefaultConfig returns a fully populated, production-ready Config:
//   - SA: T0=1000, Tf=1, alpha=0.95, L=200
//   - Tabu: tenure=10, random range=5, aspiration enabled
//   - VND: all four neighbourhoods in spec order, a cap of 50 descent cycles,
//     cross-exchange segments up to length 3
//   - Local search: 100,000 iterations, 2,000 without improvement
//   - Construction: randomness=0.3 (biased but not purely greedy)
//   - General: seed=0 (deterministic default stream), no time limit
func DefaultConfig() Config {
	return Config{
		SimulatedAnnealing: SimulatedAnnealingConfig{
			InitialTemperature:       1000,
			FinalTemperature:         1,
			Alpha:                    0.95,
			IterationsPerTemperature: 200,
		},
		TabuSearch: TabuSearchConfig{
			TabuTenure:            10,
			TabuTenureRandomRange: 5,
			AspirationEnabled:     true,
		},
		VND: VNDConfig{
			Neighborhoods: []NeighborhoodName{
				NeighborhoodSwap, NeighborhoodRelocate, NeighborhoodTwoOpt, NeighborhoodCross,
			},
			MaxIterationsWithoutImprovement: 50,
			CrossExchangeMaxLength:          3,
		},
		LocalSearch: LocalSearchConfig{
			MaxIterations:               100_000,
			MaxIterationsWithoutImprove: 2_000,
		},
		InitialSolution: InitialSolutionConfig{
			Randomness: 0.3,
		},
		General: GeneralConfig{
			Seed: 0,
		},
		Quality: QualityConfig{
			TargetGapPercentage: 7.0,
		},
	}
}
