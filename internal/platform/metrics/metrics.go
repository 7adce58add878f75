// Package metrics holds the Prometheus collectors for simulations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SimulationsTotal counts single robot runs by robot and result.
	SimulationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "village_simulations_total",
		Help: "Total robot simulations by robot and result",
	}, []string{"robot", "result"})

	// SimulationTurns tracks how many turns finished runs took.
	SimulationTurns = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "village_simulation_turns",
		Help:    "Turns needed to deliver every parcel",
		Buckets: prometheus.ExponentialBuckets(4, 2, 10), // 4 to 2048 turns
	}, []string{"robot"})

	// ComparisonsTotal counts benchmark requests by result.
	ComparisonsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "village_comparisons_total",
		Help: "Total robot comparisons by result",
	}, []string{"result"})

	// HTTPRequestDuration tracks handler latency by path and status.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "village_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
	}, []string{"path", "status"})
)

// ObserveSimulation records one robot run.
func ObserveSimulation(robot string, turns int, err error) {
	if err != nil {
		SimulationsTotal.WithLabelValues(robot, "error").Inc()
		return
	}
	SimulationsTotal.WithLabelValues(robot, "ok").Inc()
	SimulationTurns.WithLabelValues(robot).Observe(float64(turns))
}

// ObserveComparison records one benchmark request.
func ObserveComparison(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	ComparisonsTotal.WithLabelValues(result).Inc()
}
