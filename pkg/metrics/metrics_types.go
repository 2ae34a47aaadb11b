package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// HTTP Metrics
	HTTPRequestsTotal     *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
	HTTPRequestsInFlight  prometheus.Gauge
	HTTPResponseSizeBytes *prometheus.HistogramVec

	// Ingest Metrics
	IngestRecordsTotal   *prometheus.CounterVec
	IngestFailuresTotal  *prometheus.CounterVec
	IngestDuration       *prometheus.HistogramVec
	IngestLastSuccessful prometheus.Gauge

	// Graph Metrics
	GraphNodes         prometheus.Gauge
	GraphEdges         prometheus.Gauge
	GraphSelfLoops     prometheus.Gauge
	GraphParallelEdges prometheus.Gauge
	GraphComponents    prometheus.Gauge

	// Algorithm Metrics
	AlgorithmRunsTotal            *prometheus.CounterVec
	AlgorithmDuration             *prometheus.HistogramVec
	EigenvectorIterations         prometheus.Histogram
	EigenvectorComponentSize      prometheus.Gauge
	AnalysisRunsTotal             *prometheus.CounterVec
	AnalysisLastCompletedUnixTime prometheus.Gauge

	// System Metrics
	UptimeSeconds    prometheus.Gauge
	GoRoutines       prometheus.Gauge
	MemoryAllocBytes prometheus.Gauge
	MemorySysBytes   prometheus.Gauge

	registry  *prometheus.Registry
	startTime time.Time
	mu        sync.RWMutex
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry:  prometheus.NewRegistry(),
		startTime: time.Now(),
	}

	r.initHTTPMetrics()
	r.initIngestMetrics()
	r.initGraphMetrics()
	r.initAlgorithmMetrics()
	r.initSystemMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
