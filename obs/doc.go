// Package obs wires cvrp's optional observability hooks (cvrp.Logger,
// cvrp.Metrics, cvrp.Tracer) to concrete backends: structured, rotated
// logging via log/slog and lumberjack, Prometheus metrics, and
// OpenTelemetry tracing. None of these are required by cvrp.Solve — every
// constructor here returns a value ready to be assigned to the matching
// cvrp.Config field, and a caller that never touches this package gets a
// fully silent solver.
package obs
