package cvrp

import "github.com/RamiMohamed12/projectVRP/cvrperr"

// validateConfig checks internal consistency of Config without referencing
// an Instance. All conditions here are detected at loop start and surfaced
// to the caller as InvalidConfig (see spec ERROR HANDLING DESIGN).
func validateConfig(cfg Config) error {
	sa := cfg.SimulatedAnnealing
	if sa.InitialTemperature <= 0 || sa.FinalTemperature <= 0 || sa.FinalTemperature >= sa.InitialTemperature {
		return cvrperr.Wrap(cvrperr.InvalidConfig, "simulated_annealing", ErrInvalidTemperatures)
	}
	if sa.Alpha <= 0 || sa.Alpha >= 1 {
		return cvrperr.Wrap(cvrperr.InvalidConfig, "simulated_annealing.alpha", ErrInvalidAlpha)
	}
	if sa.IterationsPerTemperature <= 0 {
		return cvrperr.Wrap(cvrperr.InvalidConfig, "simulated_annealing.iterations_per_temperature", ErrInvalidIterationsPerTemperature)
	}

	ts := cfg.TabuSearch
	if ts.TabuTenure < 0 || ts.TabuTenureRandomRange < 0 {
		return cvrperr.Wrap(cvrperr.InvalidConfig, "tabu_search", ErrNegativeTenure)
	}

	if len(cfg.VND.Neighborhoods) == 0 {
		return cvrperr.Wrap(cvrperr.InvalidConfig, "vnd.neighborhoods", ErrEmptyNeighborhoodList)
	}
	for _, name := range cfg.VND.Neighborhoods {
		if !name.valid() {
			return cvrperr.Wrap(cvrperr.InvalidConfig, "vnd.neighborhoods", ErrUnknownNeighborhood)
		}
	}
	if cfg.VND.MaxIterationsWithoutImprovement <= 0 {
		return cvrperr.Wrap(cvrperr.InvalidConfig, "vnd.max_iterations_without_improvement", ErrInvalidMaxIterations)
	}
	if cfg.VND.CrossExchangeMaxLength <= 0 {
		return cvrperr.Wrap(cvrperr.InvalidConfig, "vnd.cross_exchange_max_length", ErrInvalidCrossExchangeLength)
	}

	if cfg.LocalSearch.MaxIterations <= 0 || cfg.LocalSearch.MaxIterationsWithoutImprove <= 0 {
		return cvrperr.Wrap(cvrperr.InvalidConfig, "local_search", ErrInvalidMaxIterations)
	}

	if cfg.InitialSolution.Randomness < 0 || cfg.InitialSolution.Randomness > 1 {
		return cvrperr.Wrap(cvrperr.InvalidConfig, "initial_solution.randomness", ErrInvalidRandomness)
	}

	return nil
}
