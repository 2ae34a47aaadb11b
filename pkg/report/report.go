// Package report assembles the per-airport summary of an analysis run and
// renders it as a styled text table or JSON.
package report

import (
	"errors"
	"time"

	"github.com/dd0wney/cluso-routerank/pkg/algorithms"
	"github.com/dd0wney/cluso-routerank/pkg/analysis"
	"github.com/dd0wney/cluso-routerank/pkg/graph"
)

// Row is one reported airport. Missing is set when the airport does not
// occur in the route table; its scores are then empty.
type Row struct {
	Airport    string                         `json:"airport"`
	Missing    bool                           `json:"missing,omitempty"`
	Population float64                        `json:"population,omitempty"`
	Neighbors  int                            `json:"neighbors,omitempty"`
	Scores     map[algorithms.Measure]float64 `json:"scores,omitempty"`
}

// Ranking lists the top airports under one measure
type Ranking struct {
	Measure  algorithms.Measure      `json:"measure"`
	Airports []algorithms.RankedNode `json:"airports"`
}

// Report is the complete output of one run
type Report struct {
	RunID         string    `json:"run_id"`
	GeneratedAt   time.Time `json:"generated_at"`
	Source        string    `json:"source"`
	Attribute     string    `json:"weight_attribute"`
	Nodes         int       `json:"nodes"`
	Edges         int       `json:"edges"`
	SelfLoops     int       `json:"self_loops"`
	ParallelEdges int       `json:"parallel_edges"`
	Components    int       `json:"components"`

	Rows     []Row     `json:"airports"`
	Rankings []Ranking `json:"rankings,omitempty"`

	// Failed maps each measure that could not be computed to its error
	Failed map[algorithms.Measure]string `json:"failed_measures,omitempty"`
}

// Assemble builds a report for targets, in the given order, plus the top
// airports under every measure that succeeded. top <= 0 omits rankings.
func Assemble(run *analysis.Run, targets []string, top int) (*Report, error) {
	if run == nil || run.Graph == nil || run.Result == nil {
		return nil, errors.New("report: run is incomplete")
	}

	r := &Report{
		RunID:         run.ID.String(),
		GeneratedAt:   time.Now().UTC(),
		Source:        run.Source,
		Attribute:     run.Attribute.String(),
		Nodes:         run.Stats.NodeCount,
		Edges:         run.Stats.EdgeCount,
		SelfLoops:     run.Stats.SelfLoops,
		ParallelEdges: run.Stats.ParallelEdges,
		Components:    run.Components,
		Rows:          make([]Row, 0, len(targets)),
	}

	for m, err := range run.Result.Errors {
		if r.Failed == nil {
			r.Failed = make(map[algorithms.Measure]string)
		}
		r.Failed[m] = err.Error()
	}

	for _, id := range targets {
		scores, err := run.Airport(id)
		if errors.Is(err, graph.ErrNodeNotFound) {
			r.Rows = append(r.Rows, Row{Airport: id, Missing: true})
			continue
		}
		if err != nil {
			return nil, err
		}
		r.Rows = append(r.Rows, Row{
			Airport:    id,
			Population: scores.Population,
			Neighbors:  scores.Neighbors,
			Scores:     scores.Scores,
		})
	}

	if top > 0 {
		for _, m := range algorithms.Measures {
			ranked, err := run.Top(m, top)
			if err != nil {
				continue
			}
			r.Rankings = append(r.Rankings, Ranking{Measure: m, Airports: ranked})
		}
	}

	return r, nil
}
