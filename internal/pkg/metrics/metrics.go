// Package metrics exposes the simulator's Prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "warehouse"

// SimulationMetrics holds the collectors tracking order generation.
type SimulationMetrics struct {
	// OrdersGenerated counts every order produced since process start.
	OrdersGenerated prometheus.Counter

	// BatchesGenerated counts generation calls, one per batch.
	BatchesGenerated prometheus.Counter

	// EstimatedPickTime observes the derived pick-time metric per order.
	EstimatedPickTime prometheus.Histogram

	// HistorySize tracks the number of orders retained in history.
	HistorySize prometheus.Gauge
}

// NewSimulationMetrics creates and registers the simulation collectors
// with the given registerer.
func NewSimulationMetrics(reg prometheus.Registerer) *SimulationMetrics {
	factory := promauto.With(reg)

	return &SimulationMetrics{
		OrdersGenerated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_generated_total",
			Help:      "Total number of simulated orders generated.",
		}),
		BatchesGenerated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_batches_total",
			Help:      "Total number of order generation batches.",
		}),
		EstimatedPickTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "estimated_pick_time_seconds",
			Help:      "Estimated pick time of generated orders in seconds.",
			Buckets:   prometheus.LinearBuckets(30, 60, 10),
		}),
		HistorySize: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "order_history_size",
			Help:      "Number of orders currently retained in history.",
		}),
	}
}
