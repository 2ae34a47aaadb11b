package api

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/gorilla/mux"

	"github.com/dd0wney/cluso-routerank/pkg/analysis"
	"github.com/dd0wney/cluso-routerank/pkg/api/middleware"
	"github.com/dd0wney/cluso-routerank/pkg/graphql"
	"github.com/dd0wney/cluso-routerank/pkg/health"
	"github.com/dd0wney/cluso-routerank/pkg/logging"
)

// maxGraphQLBodyBytes bounds POST /graphql bodies
const maxGraphQLBodyBytes = 1 << 20

// NewServer creates an API server with no run loaded. Until SetRun is called
// every data endpoint answers 503 and /health reports unhealthy.
func NewServer(cfg ServerConfig) (*Server, error) {
	s := &Server{
		logger:          cfg.Logger,
		metricsRegistry: cfg.Metrics,
		healthChecker:   health.NewHealthChecker(),
		corsConfig:      middleware.NewCORSConfig(cfg.CORSOrigins),
		startTime:       time.Now(),
		version:         cfg.Version,
	}
	if s.logger == nil {
		s.logger = logging.NewNopLogger()
	}
	if s.version == "" {
		s.version = "dev"
	}

	limits := graphql.DefaultLimitConfig()
	if cfg.GraphQLMaxDepth > 0 {
		limits.MaxDepth = cfg.GraphQLMaxDepth
	}
	schema, err := graphql.NewSchema(s.Run, limits)
	if err != nil {
		return nil, fmt.Errorf("failed to build GraphQL schema: %w", err)
	}
	s.graphqlHandler = graphql.NewGraphQLHandler(schema, limits.MaxDepth)

	s.healthChecker.RegisterCheck("analysis", health.RunCheck(s.Run))
	s.healthChecker.RegisterReadinessCheck("analysis", health.RunCheck(s.Run))
	s.healthChecker.RegisterCheck("memory", health.MemoryCheck(func() (uint64, uint64) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		return m.Alloc, m.Sys
	}))
	s.healthChecker.RegisterLivenessCheck("process", func() health.Check {
		return health.SimpleCheck("process")
	})

	s.routes()
	return s, nil
}

// SetRun publishes a completed run to every endpoint
func (s *Server) SetRun(run *analysis.Run) {
	s.run.Store(run)
	if run != nil {
		s.logger.Info("serving analysis",
			logging.RunID(run.ID.String()),
			logging.Source(run.Source),
			logging.Int("nodes", run.Stats.NodeCount),
		)
	}
}

// Run returns the run being served, or nil
func (s *Server) Run() *analysis.Run {
	return s.run.Load()
}

// HealthChecker exposes the checker so callers can register source checks
func (s *Server) HealthChecker() *health.HealthChecker {
	return s.healthChecker
}

func (s *Server) routes() {
	r := mux.NewRouter()

	r.Use(middleware.PanicRecovery(s.logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(s.logger, middleware.GetRequestID))
	if s.metricsRegistry != nil {
		r.Use(middleware.Metrics(s.metricsRegistry, middleware.RouteTemplate))
	}
	r.Use(middleware.SecurityHeaders(nil))

	r.HandleFunc("/health", s.healthChecker.HTTPHandler()).Methods("GET")
	r.HandleFunc("/health/live", s.healthChecker.LivenessHandler()).Methods("GET")
	r.HandleFunc("/health/ready", s.healthChecker.ReadinessHandler()).Methods("GET")
	if s.metricsRegistry != nil {
		r.Handle("/metrics", s.metricsRegistry.Handler()).Methods("GET")
	}

	r.HandleFunc("/graph", s.handleGraph).Methods("GET")
	r.HandleFunc("/airports/{code}", s.handleAirport).Methods("GET")
	r.HandleFunc("/centrality/{measure}", s.handleRanking).Methods("GET")
	r.HandleFunc("/centrality/{measure}/{code}", s.handleScore).Methods("GET")
	r.Handle("/graphql", middleware.BodySizeLimit(maxGraphQLBodyBytes)(s.graphqlHandler)).Methods("POST")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		s.respondError(w, http.StatusNotFound, "no such endpoint")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		s.respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	s.router = r
}

// Handler returns the root handler. CORS wraps the router so preflight
// requests are answered before route method matching.
func (s *Server) Handler() http.Handler {
	return middleware.CORS(s.corsConfig)(s.router)
}
