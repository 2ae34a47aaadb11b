package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()

	var metric dto.Metric
	if err := c.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	return metric.Counter.GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()

	var metric dto.Metric
	if err := g.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	return metric.Gauge.GetValue()
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	if r.HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal not initialized")
	}
	if r.IngestRecordsTotal == nil {
		t.Error("IngestRecordsTotal not initialized")
	}
	if r.GraphNodes == nil {
		t.Error("GraphNodes not initialized")
	}
	if r.AlgorithmRunsTotal == nil {
		t.Error("AlgorithmRunsTotal not initialized")
	}
	if r.registry == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestDefaultRegistry(t *testing.T) {
	if DefaultRegistry() != DefaultRegistry() {
		t.Error("DefaultRegistry() should return the same instance")
	}
}

func TestRecordHTTPRequest(t *testing.T) {
	r := NewRegistry()

	r.RecordHTTPRequest("GET", "/airports/{code}", "200", 100*time.Millisecond, 512)
	r.RecordHTTPRequest("GET", "/airports/{code}", "404", 50*time.Millisecond, 64)
	r.RecordHTTPRequest("GET", "/airports/{code}", "200", 20*time.Millisecond, 512)

	if got := counterValue(t, r.HTTPRequestsTotal.WithLabelValues("GET", "/airports/{code}", "200")); got != 2 {
		t.Errorf("200 counter = %v, want 2", got)
	}
	if got := counterValue(t, r.HTTPRequestsTotal.WithLabelValues("GET", "/airports/{code}", "404")); got != 1 {
		t.Errorf("404 counter = %v, want 1", got)
	}
}

func TestHTTPRequestsInFlight(t *testing.T) {
	r := NewRegistry()

	r.IncHTTPRequestsInFlight()
	r.IncHTTPRequestsInFlight()
	r.DecHTTPRequestsInFlight()

	if got := gaugeValue(t, r.HTTPRequestsInFlight); got != 1 {
		t.Errorf("in-flight = %v, want 1", got)
	}
}

func TestRecordIngest(t *testing.T) {
	r := NewRegistry()

	r.RecordIngest("file", 120, 30*time.Millisecond)
	r.RecordIngest("file", 80, 10*time.Millisecond)
	r.RecordIngestFailure("s3", "parse")

	if got := counterValue(t, r.IngestRecordsTotal.WithLabelValues("file")); got != 200 {
		t.Errorf("Records counter = %v, want 200", got)
	}
	if got := counterValue(t, r.IngestFailuresTotal.WithLabelValues("s3", "parse")); got != 1 {
		t.Errorf("Failure counter = %v, want 1", got)
	}
	if gaugeValue(t, r.IngestLastSuccessful) == 0 {
		t.Error("Last success timestamp not set")
	}
}

func TestUpdateGraphMetrics(t *testing.T) {
	r := NewRegistry()
	r.UpdateGraphMetrics(6, 9, 1, 2, 2)

	tests := []struct {
		name  string
		gauge prometheus.Gauge
		want  float64
	}{
		{"nodes", r.GraphNodes, 6},
		{"edges", r.GraphEdges, 9},
		{"self loops", r.GraphSelfLoops, 1},
		{"parallel edges", r.GraphParallelEdges, 2},
		{"components", r.GraphComponents, 2},
	}
	for _, tt := range tests {
		if got := gaugeValue(t, tt.gauge); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRecordAlgorithm(t *testing.T) {
	r := NewRegistry()

	r.RecordAlgorithm("closeness", 5*time.Millisecond, nil)
	r.RecordAlgorithm("eigenvector", 0, errors.New("graph is disconnected"))
	r.RecordEigenvector(17, 42)
	r.RecordAnalysisRun("degraded")

	if got := counterValue(t, r.AlgorithmRunsTotal.WithLabelValues("closeness", "success")); got != 1 {
		t.Errorf("closeness success = %v, want 1", got)
	}
	if got := counterValue(t, r.AlgorithmRunsTotal.WithLabelValues("eigenvector", "error")); got != 1 {
		t.Errorf("eigenvector error = %v, want 1", got)
	}
	if got := gaugeValue(t, r.EigenvectorComponentSize); got != 42 {
		t.Errorf("component size = %v, want 42", got)
	}
	if got := counterValue(t, r.AnalysisRunsTotal.WithLabelValues("degraded")); got != 1 {
		t.Errorf("degraded runs = %v, want 1", got)
	}
}

func TestHandler(t *testing.T) {
	r := NewRegistry()
	r.UpdateGraphMetrics(3, 3, 0, 0, 1)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	for _, name := range []string{"routerank_graph_nodes 3", "routerank_goroutines", "routerank_uptime_seconds"} {
		if !strings.Contains(string(body), name) {
			t.Errorf("Exposition missing %q", name)
		}
	}
}
