package obs

import (
	"testing"

	"github.com/RamiMohamed12/projectVRP/cvrp"
)

func TestMetrics_SatisfiesCvrpInterfaceAndRecords(t *testing.T) {
	m := NewMetrics("cvrp_test", "metrics_test")

	var _ cvrp.Metrics = m

	m.ObserveBestCost(123.4)
	m.ObserveTemperature(50)
	m.IncMoveAccepted(cvrp.NeighborhoodSwap)
	m.IncMoveRejected(cvrp.NeighborhoodRelocate)
}
