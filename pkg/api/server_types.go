package api

import (
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"

	"github.com/dd0wney/cluso-routerank/pkg/analysis"
	"github.com/dd0wney/cluso-routerank/pkg/api/middleware"
	"github.com/dd0wney/cluso-routerank/pkg/graphql"
	"github.com/dd0wney/cluso-routerank/pkg/health"
	"github.com/dd0wney/cluso-routerank/pkg/logging"
	"github.com/dd0wney/cluso-routerank/pkg/metrics"
)

// Server serves the results of the current analysis run over HTTP. The run
// is swapped atomically, so handlers always see one complete run.
type Server struct {
	run             atomic.Pointer[analysis.Run]
	logger          logging.Logger
	metricsRegistry *metrics.Registry
	healthChecker   *health.HealthChecker
	graphqlHandler  *graphql.GraphQLHandler
	corsConfig      *middleware.CORSConfig
	router          *mux.Router
	startTime       time.Time
	version         string
}

// ServerConfig configures NewServer. Zero values select defaults.
type ServerConfig struct {
	Logger          logging.Logger
	Metrics         *metrics.Registry // nil disables /metrics and request metrics
	CORSOrigins     []string
	GraphQLMaxDepth int
	Version         string
}
