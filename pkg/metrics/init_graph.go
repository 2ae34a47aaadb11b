package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	gauge := func(name, help string) prometheus.Gauge {
		return promauto.With(r.registry).NewGauge(prometheus.GaugeOpts{Name: name, Help: help})
	}

	r.GraphNodes = gauge("routerank_graph_nodes", "Distinct airports in the current graph")
	r.GraphEdges = gauge("routerank_graph_edges", "Route edges in the current graph, parallel edges included")
	r.GraphSelfLoops = gauge("routerank_graph_self_loops", "Routes whose origin equals their destination")
	r.GraphParallelEdges = gauge("routerank_graph_parallel_edges", "Routes duplicating an existing airport pair")
	r.GraphComponents = gauge("routerank_graph_components", "Connected components in the current graph")
}
