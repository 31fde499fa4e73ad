package cvrp

import "context"

// Logger is the minimal logging surface Solve uses for progress messages.
// *slog.Logger satisfies this interface directly; the obs package wires it
// to structured, rotated output. A nil Logger in Config disables logging
// entirely — Solve never requires one.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

// Metrics is the minimal observability surface the SA+Tabu outer loop
// reports through. The obs package's Prometheus-backed implementation
// satisfies this; a nil Metrics in Config makes every call below a no-op.
type Metrics interface {
	ObserveBestCost(cost float64)
	ObserveTemperature(temp float64)
	IncMoveAccepted(neighborhood NeighborhoodName)
	IncMoveRejected(neighborhood NeighborhoodName)
}

// Tracer starts a span around one SA+Tabu temperature level. The obs
// package wires this to OpenTelemetry; a nil Tracer in Config makes Solve
// skip span creation entirely rather than falling back to a no-op
// implementation, since Solve must not import the otel SDK itself.
type Tracer interface {
	StartTemperatureSpan(ctx context.Context, temperature float64) (context.Context, func())
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}

type noopMetrics struct{}

func (noopMetrics) ObserveBestCost(float64)          {}
func (noopMetrics) ObserveTemperature(float64)       {}
func (noopMetrics) IncMoveAccepted(NeighborhoodName) {}
func (noopMetrics) IncMoveRejected(NeighborhoodName) {}

// hooks resolves Config's optional observability fields to non-nil
// defaults, so the rest of the solver never checks for nil.
type hooks struct {
	log Logger
	met Metrics
}

func resolveHooks(cfg Config) hooks {
	h := hooks{log: noopLogger{}, met: noopMetrics{}}
	if cfg.Logger != nil {
		h.log = cfg.Logger
	}
	if cfg.Metrics != nil {
		h.met = cfg.Metrics
	}
	return h
}
