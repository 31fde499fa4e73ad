// Package config loads a cvrp.Config from defaults, an optional YAML file,
// and environment variables, in that increasing order of priority.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/RamiMohamed12/projectVRP/cvrp"
)

const (
	envPrefix    = "CVRP_"
	configEnvVar = "CVRP_CONFIG_PATH"
)

// Loader loads cvrp.Config from layered sources.
type Loader struct {
	k           *koanf.Koanf
	configPaths []string
	envPrefix   string
}

// LoaderOption customizes a Loader.
type LoaderOption func(*Loader)

// WithConfigPaths overrides the search paths probed for a YAML config file.
func WithConfigPaths(paths ...string) LoaderOption {
	return func(l *Loader) { l.configPaths = paths }
}

// WithEnvPrefix overrides the environment variable prefix (default CVRP_).
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) { l.envPrefix = prefix }
}

// NewLoader builds a Loader with the given options applied over the
// defaults: search config.yaml, config/config.yaml, /etc/cvrp/config.yaml,
// and the CVRP_ environment prefix.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k: koanf.New("."),
		configPaths: []string{
			"config.yaml",
			"config/config.yaml",
			"/etc/cvrp/config.yaml",
		},
		envPrefix: envPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load composes defaults, an optional config file, and environment
// variables (highest priority) into a cvrp.Config.
func (l *Loader) Load() (cvrp.Config, error) {
	if err := l.loadDefaults(); err != nil {
		return cvrp.Config{}, fmt.Errorf("config: defaults: %w", err)
	}

	// A missing config file is not an error: defaults plus env alone are a
	// valid configuration.
	_ = l.loadConfigFile()

	if err := l.loadEnv(); err != nil {
		return cvrp.Config{}, fmt.Errorf("config: env: %w", err)
	}

	var cfg cvrp.Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return cvrp.Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

func (l *Loader) loadDefaults() error {
	d := cvrp.DefaultConfig()
	defaults := map[string]any{
		"simulated_annealing.initial_temperature":       d.SimulatedAnnealing.InitialTemperature,
		"simulated_annealing.final_temperature":         d.SimulatedAnnealing.FinalTemperature,
		"simulated_annealing.alpha":                     d.SimulatedAnnealing.Alpha,
		"simulated_annealing.iterations_per_temperature": d.SimulatedAnnealing.IterationsPerTemperature,

		"tabu_search.tabu_tenure":               d.TabuSearch.TabuTenure,
		"tabu_search.tabu_tenure_random_range":  d.TabuSearch.TabuTenureRandomRange,
		"tabu_search.aspiration_enabled":        d.TabuSearch.AspirationEnabled,

		"vnd.neighborhoods":                          neighborhoodsAsStrings(d.VND.Neighborhoods),
		"vnd.max_iterations_without_improvement":      d.VND.MaxIterationsWithoutImprovement,
		"vnd.cross_exchange_max_length":               d.VND.CrossExchangeMaxLength,

		"local_search.max_iterations":                d.LocalSearch.MaxIterations,
		"local_search.max_iterations_without_improvement": d.LocalSearch.MaxIterationsWithoutImprove,

		"initial_solution.randomness": d.InitialSolution.Randomness,

		"general.seed":               d.General.Seed,
		"general.time_limit_seconds": d.General.TimeLimitSeconds,

		"quality.target_gap_percentage": d.Quality.TargetGapPercentage,
	}
	return l.k.Load(confmap.Provider(defaults, "."), nil)
}

func neighborhoodsAsStrings(names []cvrp.NeighborhoodName) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return out
}

func (l *Loader) loadConfigFile() error {
	if p := os.Getenv(configEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return l.k.Load(file.Provider(p), yaml.Parser())
		}
	}
	for _, path := range l.configPaths {
		abs, err := filepath.Abs(path)
		if err != nil {
			continue
		}
		if _, err := os.Stat(abs); err == nil {
			return l.k.Load(file.Provider(abs), yaml.Parser())
		}
	}
	return fmt.Errorf("config: no file found in %v", l.configPaths)
}

// envKeyToDottedPath maps an env var name (with the prefix already
// stripped, e.g. "SIMULATED_ANNEALING_INITIAL_TEMPERATURE") to its dotted
// koanf path. A blanket "replace every underscore with a dot" mapping
// (the teacher's own pkg/config/loader.go does exactly that) only works
// when every section and field name is a single word; several of this
// config's sections and fields are multi-word
// (simulated_annealing.iterations_per_temperature,
// tabu_search.tabu_tenure_random_range), so the delimiter between section
// and field is ambiguous without an explicit table.
var envKeyToDottedPath = map[string]string{
	"SIMULATED_ANNEALING_INITIAL_TEMPERATURE":        "simulated_annealing.initial_temperature",
	"SIMULATED_ANNEALING_FINAL_TEMPERATURE":          "simulated_annealing.final_temperature",
	"SIMULATED_ANNEALING_ALPHA":                      "simulated_annealing.alpha",
	"SIMULATED_ANNEALING_ITERATIONS_PER_TEMPERATURE": "simulated_annealing.iterations_per_temperature",

	"TABU_SEARCH_TABU_TENURE":               "tabu_search.tabu_tenure",
	"TABU_SEARCH_TABU_TENURE_RANDOM_RANGE":  "tabu_search.tabu_tenure_random_range",
	"TABU_SEARCH_ASPIRATION_ENABLED":        "tabu_search.aspiration_enabled",

	"VND_NEIGHBORHOODS":                      "vnd.neighborhoods",
	"VND_MAX_ITERATIONS_WITHOUT_IMPROVEMENT": "vnd.max_iterations_without_improvement",
	"VND_CROSS_EXCHANGE_MAX_LENGTH":          "vnd.cross_exchange_max_length",

	"LOCAL_SEARCH_MAX_ITERATIONS":                "local_search.max_iterations",
	"LOCAL_SEARCH_MAX_ITERATIONS_WITHOUT_IMPROVEMENT": "local_search.max_iterations_without_improvement",

	"INITIAL_SOLUTION_RANDOMNESS": "initial_solution.randomness",

	"GENERAL_SEED":               "general.seed",
	"GENERAL_TIME_LIMIT_SECONDS": "general.time_limit_seconds",

	"QUALITY_TARGET_GAP_PERCENTAGE": "quality.target_gap_percentage",
}

func (l *Loader) loadEnv() error {
	return l.k.Load(env.Provider(l.envPrefix, ".", func(s string) string {
		key := strings.ToUpper(strings.TrimPrefix(s, l.envPrefix))
		if dotted, ok := envKeyToDottedPath[key]; ok {
			return dotted
		}
		return ""
	}), nil)
}

// Load loads a cvrp.Config using the default search paths and CVRP_
// environment prefix.
func Load() (cvrp.Config, error) {
	return NewLoader().Load()
}
