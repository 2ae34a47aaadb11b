package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAlgorithmMetrics() {
	r.AlgorithmRunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "routerank_algorithm_runs_total",
			Help: "Centrality computations by measure and outcome",
		},
		[]string{"measure", "status"}, // success, error
	)

	r.AlgorithmDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "routerank_algorithm_duration_seconds",
			Help:    "Centrality computation time in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30, 120},
		},
		[]string{"measure"},
	)

	r.EigenvectorIterations = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "routerank_eigenvector_iterations",
			Help:    "Power iterations needed for eigenvector centrality",
			Buckets: []float64{5, 10, 20, 50, 100, 250, 1000},
		},
	)

	r.EigenvectorComponentSize = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "routerank_eigenvector_component_size",
			Help: "Airports included in the last eigenvector computation",
		},
	)

	r.AnalysisRunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "routerank_analysis_runs_total",
			Help: "Analysis runs by outcome",
		},
		[]string{"status"}, // success, degraded, error
	)

	r.AnalysisLastCompletedUnixTime = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "routerank_analysis_last_completed_timestamp_seconds",
			Help: "Unix time of the last completed analysis run",
		},
	)
}
