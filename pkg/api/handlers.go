package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dd0wney/cluso-routerank/pkg/algorithms"
	"github.com/dd0wney/cluso-routerank/pkg/validation"
)

// DefaultRankingLimit is used when a ranking request has no top parameter
const DefaultRankingLimit = 10

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	run := s.currentRun(w)
	if run == nil {
		return
	}

	resp := GraphResponse{
		RunID:           run.ID.String(),
		Source:          run.Source,
		WeightAttribute: run.Attribute.String(),
		StartedAt:       run.StartedAt,
		DurationMs:      run.Duration.Milliseconds(),
		Statistics:      run.Stats,
		Components:      run.Components,
	}
	if ev := run.Result.Eigenvector; ev != nil {
		resp.Eigenvector = &EigenvectorSummary{
			Iterations:    ev.Iterations,
			Converged:     ev.Converged,
			ComponentSize: ev.ComponentSize,
		}
	}
	if len(run.Result.Errors) > 0 {
		resp.FailedMeasures = make(map[algorithms.Measure]string, len(run.Result.Errors))
		for m, err := range run.Result.Errors {
			resp.FailedMeasures[m] = err.Error()
		}
	}

	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAirport(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	if err := validation.ValidateAirportCode(code); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	run := s.currentRun(w)
	if run == nil {
		return
	}

	airport, err := run.Airport(code)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, airport)
}

// handleRanking serves GET /centrality/{measure}?top=N. A missing top means
// DefaultRankingLimit and top=0 ranks every airport.
func (s *Server) handleRanking(w http.ResponseWriter, r *http.Request) {
	req := validation.RankingRequest{
		Measure: mux.Vars(r)["measure"],
		Limit:   DefaultRankingLimit,
	}
	if raw := r.URL.Query().Get("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "top: must be an integer")
			return
		}
		req.Limit = n
	}
	if err := validation.ValidateRankingRequest(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	measure, err := algorithms.ParseMeasure(req.Measure)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	run := s.currentRun(w)
	if run == nil {
		return
	}

	scores, err := run.Result.Scores(measure)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	top := scores.Top(req.Limit)
	resp := RankingResponse{
		Measure:  measure,
		Total:    len(scores),
		Airports: make([]RankedAirport, len(top)),
	}
	for i, node := range top {
		resp.Airports[i] = RankedAirport{Rank: i + 1, ID: node.ID, Score: node.Score}
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	measure, err := algorithms.ParseMeasure(vars["measure"])
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	code := vars["code"]
	if err := validation.ValidateAirportCode(code); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	run := s.currentRun(w)
	if run == nil {
		return
	}

	if _, err := run.Graph.Node(code); err != nil {
		s.respondDomainError(w, err)
		return
	}
	scores, err := run.Result.Scores(measure)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	resp := ScoreResponse{
		Airport: code,
		Measure: measure,
		Total:   len(scores),
	}
	for i, node := range scores.Top(0) {
		if node.ID == code {
			resp.Score = node.Score
			resp.Rank = i + 1
			break
		}
	}
	s.respondJSON(w, http.StatusOK, resp)
}
