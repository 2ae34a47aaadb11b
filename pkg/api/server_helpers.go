package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dd0wney/cluso-routerank/pkg/algorithms"
	"github.com/dd0wney/cluso-routerank/pkg/analysis"
	"github.com/dd0wney/cluso-routerank/pkg/graph"
	"github.com/dd0wney/cluso-routerank/pkg/logging"
	"github.com/dd0wney/cluso-routerank/pkg/validation"
)

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to encode response", logging.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	})
}

// statusFor maps a domain error to an HTTP status. Anything that is not a
// lookup or input error is a measure that could not be computed.
func statusFor(err error) int {
	switch {
	case errors.Is(err, graph.ErrNodeNotFound):
		return http.StatusNotFound
	case errors.Is(err, validation.ErrInvalidAirportCode),
		errors.Is(err, algorithms.ErrUnknownMeasure):
		return http.StatusBadRequest
	default:
		return http.StatusUnprocessableEntity
	}
}

func (s *Server) respondDomainError(w http.ResponseWriter, err error) {
	s.respondError(w, statusFor(err), err.Error())
}

// currentRun returns the loaded run, or writes 503 and returns nil
func (s *Server) currentRun(w http.ResponseWriter) *analysis.Run {
	run := s.run.Load()
	if run == nil {
		s.respondError(w, http.StatusServiceUnavailable, "no analysis loaded")
	}
	return run
}
