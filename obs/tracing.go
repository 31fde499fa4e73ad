package obs

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is an OpenTelemetry-backed implementation of cvrp.Tracer. The
// zero value is usable: it resolves otel's globally registered
// TracerProvider on first use, which is a no-op tracer until the caller
// registers a real one via otel.SetTracerProvider.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer builds a Tracer that starts spans named "cvrp.temperature"
// under the given instrumentation name.
func NewTracer(instrumentationName string) *Tracer {
	return &Tracer{tracer: otel.Tracer(instrumentationName)}
}

// StartTemperatureSpan starts a span covering one simulated-annealing
// temperature level, tagged with the temperature value.
func (t *Tracer) StartTemperatureSpan(ctx context.Context, temperature float64) (context.Context, func()) {
	if t.tracer == nil {
		t.tracer = otel.Tracer("github.com/RamiMohamed12/projectVRP/cvrp")
	}
	spanCtx, span := t.tracer.Start(ctx, "cvrp.temperature",
		trace.WithAttributes(attribute.String("cvrp.temperature", fmt.Sprintf("%.6f", temperature))),
	)
	return spanCtx, func() { span.End() }
}
