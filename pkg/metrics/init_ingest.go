package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initIngestMetrics() {
	r.IngestRecordsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "routerank_ingest_records_total",
			Help: "Route records read from sources",
		},
		[]string{"source"}, // file, s3, postgres, memory
	)

	r.IngestFailuresTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "routerank_ingest_failures_total",
			Help: "Failed source reads by reason",
		},
		[]string{"source", "reason"}, // parse, io
	)

	r.IngestDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "routerank_ingest_duration_seconds",
			Help:    "Time spent reading and parsing a route source",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60},
		},
		[]string{"source"},
	)

	r.IngestLastSuccessful = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "routerank_ingest_last_success_timestamp_seconds",
			Help: "Unix time of the last successful ingest",
		},
	)
}
