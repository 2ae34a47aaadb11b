package metrics

import (
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RecordHTTPRequest records an HTTP request with its duration and response size
func (r *Registry) RecordHTTPRequest(method, route, status string, duration time.Duration, size int) {
	r.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
	r.HTTPResponseSizeBytes.WithLabelValues(method, route).Observe(float64(size))
}

// IncHTTPRequestsInFlight marks the start of a request
func (r *Registry) IncHTTPRequestsInFlight() {
	r.HTTPRequestsInFlight.Inc()
}

// DecHTTPRequestsInFlight marks the end of a request
func (r *Registry) DecHTTPRequestsInFlight() {
	r.HTTPRequestsInFlight.Dec()
}

// RecordIngest records a successful source read
func (r *Registry) RecordIngest(source string, records int, duration time.Duration) {
	r.IngestRecordsTotal.WithLabelValues(source).Add(float64(records))
	r.IngestDuration.WithLabelValues(source).Observe(duration.Seconds())
	r.IngestLastSuccessful.Set(float64(time.Now().Unix()))
}

// RecordIngestFailure records a failed source read
func (r *Registry) RecordIngestFailure(source, reason string) {
	r.IngestFailuresTotal.WithLabelValues(source, reason).Inc()
}

// UpdateGraphMetrics publishes the shape of the current graph
func (r *Registry) UpdateGraphMetrics(nodes, edges, selfLoops, parallelEdges, components int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.GraphNodes.Set(float64(nodes))
	r.GraphEdges.Set(float64(edges))
	r.GraphSelfLoops.Set(float64(selfLoops))
	r.GraphParallelEdges.Set(float64(parallelEdges))
	r.GraphComponents.Set(float64(components))
}

// RecordAlgorithm records one centrality computation
func (r *Registry) RecordAlgorithm(measure string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	r.AlgorithmRunsTotal.WithLabelValues(measure, status).Inc()
	if err == nil {
		r.AlgorithmDuration.WithLabelValues(measure).Observe(duration.Seconds())
	}
}

// RecordEigenvector records the iteration count and component size of a
// converged eigenvector computation
func (r *Registry) RecordEigenvector(iterations, componentSize int) {
	r.EigenvectorIterations.Observe(float64(iterations))
	r.EigenvectorComponentSize.Set(float64(componentSize))
}

// RecordAnalysisRun records the outcome of a whole run
func (r *Registry) RecordAnalysisRun(status string) {
	r.AnalysisRunsTotal.WithLabelValues(status).Inc()
	r.AnalysisLastCompletedUnixTime.Set(float64(time.Now().Unix()))
}

// UpdateSystemMetrics refreshes uptime, goroutine and memory gauges
func (r *Registry) UpdateSystemMetrics() {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	r.UptimeSeconds.Set(time.Since(r.startTime).Seconds())
	r.GoRoutines.Set(float64(runtime.NumGoroutine()))
	r.MemoryAllocBytes.Set(float64(mem.Alloc))
	r.MemorySysBytes.Set(float64(mem.Sys))
}

// Handler serves the registry in the Prometheus exposition format,
// refreshing system gauges on every scrape
func (r *Registry) Handler() http.Handler {
	inner := promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		r.UpdateSystemMetrics()
		inner.ServeHTTP(w, req)
	})
}
