package analysis

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-routerank/pkg/algorithms"
	"github.com/dd0wney/cluso-routerank/pkg/graph"
	"github.com/dd0wney/cluso-routerank/pkg/routes"
)

// Run is the immutable outcome of one analysis
type Run struct {
	ID         uuid.UUID
	StartedAt  time.Time
	Duration   time.Duration
	Source     string
	Attribute  routes.WeightAttribute
	Graph      *graph.Graph
	Stats      graph.Statistics
	Components int
	Result     *algorithms.Result
}

// AirportScores is every score of one airport
type AirportScores struct {
	ID         string                         `json:"id"`
	Population float64                        `json:"population"`
	Neighbors  int                            `json:"neighbors"`
	Scores     map[algorithms.Measure]float64 `json:"scores"`
	Errors     map[algorithms.Measure]string  `json:"errors,omitempty"`
}

// Airport looks up one airport. Unknown identifiers return an error wrapping
// graph.ErrNodeNotFound. Measures that failed appear in Errors instead of Scores.
func (r *Run) Airport(id string) (*AirportScores, error) {
	node, err := r.Graph.Node(id)
	if err != nil {
		return nil, err
	}
	idx, _ := r.Graph.IndexOf(id)

	out := &AirportScores{
		ID:         node.ID,
		Population: node.Population,
		Neighbors:  r.Graph.Degree(idx),
		Scores:     make(map[algorithms.Measure]float64, len(algorithms.Measures)),
	}
	for _, m := range algorithms.Measures {
		score, err := r.Result.Score(m, id)
		if err != nil {
			if out.Errors == nil {
				out.Errors = make(map[algorithms.Measure]string)
			}
			out.Errors[m] = err.Error()
			continue
		}
		out.Scores[m] = score
	}
	return out, nil
}

// Top ranks the n highest scoring airports under m; n <= 0 ranks all of them
func (r *Run) Top(m algorithms.Measure, n int) ([]algorithms.RankedNode, error) {
	scores, err := r.Result.Scores(m)
	if err != nil {
		return nil, err
	}
	return scores.Top(n), nil
}

// sourceKind reduces a source description to a low-cardinality metric label
func sourceKind(desc string) string {
	switch {
	case strings.HasPrefix(desc, "s3://"):
		return "s3"
	case strings.HasPrefix(desc, "postgres://"), strings.HasPrefix(desc, "postgresql://"):
		return "postgres"
	case desc == "memory":
		return "memory"
	default:
		return "file"
	}
}
