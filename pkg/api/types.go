package api

import (
	"time"

	"github.com/dd0wney/cluso-routerank/pkg/algorithms"
	"github.com/dd0wney/cluso-routerank/pkg/graph"
)

// ErrorResponse is the body of every non-2xx JSON response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// EigenvectorSummary describes how the eigenvector iteration ended
type EigenvectorSummary struct {
	Iterations    int  `json:"iterations"`
	Converged     bool `json:"converged"`
	ComponentSize int  `json:"component_size"`
}

// GraphResponse describes the loaded graph and the run that produced it
type GraphResponse struct {
	RunID           string    `json:"run_id"`
	Source          string    `json:"source"`
	WeightAttribute string    `json:"weight_attribute"`
	StartedAt       time.Time `json:"started_at"`
	DurationMs      int64     `json:"duration_ms"`
	graph.Statistics
	Components     int                           `json:"components"`
	Eigenvector    *EigenvectorSummary           `json:"eigenvector,omitempty"`
	FailedMeasures map[algorithms.Measure]string `json:"failed_measures,omitempty"`
}

// RankedAirport is one row of a ranking
type RankedAirport struct {
	Rank  int     `json:"rank"`
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// RankingResponse lists the top airports under one measure
type RankingResponse struct {
	Measure  algorithms.Measure `json:"measure"`
	Total    int                `json:"total"`
	Airports []RankedAirport    `json:"airports"`
}

// ScoreResponse is one airport's score under one measure
type ScoreResponse struct {
	Airport string             `json:"airport"`
	Measure algorithms.Measure `json:"measure"`
	Score   float64            `json:"score"`
	Rank    int                `json:"rank"`
	Total   int                `json:"total"`
}
