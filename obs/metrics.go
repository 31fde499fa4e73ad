package obs

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/RamiMohamed12/projectVRP/cvrp"
)

// Metrics is a Prometheus-backed implementation of cvrp.Metrics.
type Metrics struct {
	bestCost      prometheus.Gauge
	temperature   prometheus.Gauge
	movesAccepted *prometheus.CounterVec
	movesRejected *prometheus.CounterVec
}

// NewMetrics registers cvrp's metric family under namespace/subsystem and
// returns a value ready to assign to cvrp.Config.Metrics. Registering the
// same namespace/subsystem pair twice against the same prometheus.Registry
// panics, matching promauto's own contract — callers running multiple
// independent solves in one process should share one Metrics value.
func NewMetrics(namespace, subsystem string) *Metrics {
	return &Metrics{
		bestCost: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "best_cost",
			Help:      "Cost of the best solution found so far in the current run.",
		}),
		temperature: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "temperature",
			Help:      "Current simulated-annealing temperature.",
		}),
		movesAccepted: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "moves_accepted_total",
			Help:      "Moves accepted by the SA+Tabu outer loop, by neighbourhood.",
		}, []string{"neighborhood"}),
		movesRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "moves_rejected_total",
			Help:      "Moves rejected by the SA+Tabu outer loop, by neighbourhood.",
		}, []string{"neighborhood"}),
	}
}

func (m *Metrics) ObserveBestCost(cost float64)    { m.bestCost.Set(cost) }
func (m *Metrics) ObserveTemperature(temp float64) { m.temperature.Set(temp) }

func (m *Metrics) IncMoveAccepted(n cvrp.NeighborhoodName) {
	m.movesAccepted.WithLabelValues(string(n)).Inc()
}

func (m *Metrics) IncMoveRejected(n cvrp.NeighborhoodName) {
	m.movesRejected.WithLabelValues(string(n)).Inc()
}

// Handler returns the Prometheus scrape endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
