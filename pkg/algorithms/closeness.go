package algorithms

import (
	"github.com/dd0wney/cluso-routerank/pkg/graph"
	"github.com/dd0wney/cluso-routerank/pkg/parallel"
)

// ClosenessOptions configures ClosenessCentrality.
type ClosenessOptions struct {
	Weighted   bool // Use edge weights as distances instead of hop counts
	WFImproved bool // Scale by the fraction of the graph that is reachable
	Workers    int  // Source blocks computed concurrently; <= 1 runs inline
}

// DefaultClosenessOptions returns weighted, reachability-scaled closeness.
func DefaultClosenessOptions() ClosenessOptions {
	return ClosenessOptions{
		Weighted:   true,
		WFImproved: true,
	}
}

// ClosenessCentrality computes (r-1)/Σd for every airport, where r counts the
// airports reachable from it (itself included) and Σd is the total shortest
// distance to them. With WFImproved the value is scaled by (r-1)/(n-1) so
// airports in small components are not overrated. Airports that reach nothing,
// or reach everything at zero distance, score 0.
func ClosenessCentrality(g *graph.Graph, opts ClosenessOptions) (Scores, error) {
	if opts.Weighted {
		if e, ok := g.NegativeEdge(); ok {
			return nil, graph.NegativeWeightError("closeness", e)
		}
	}

	n := g.NodeCount()
	values := make([]float64, n)

	err := parallel.ForEachBlock(n, opts.Workers, func(_ int, b parallel.Block) error {
		s := newSearch(n)
		for v := b.Lo; v < b.Hi; v++ {
			s.run(g, v, opts.Weighted)
			values[v] = closeness(s, n, opts.WFImproved)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return fromVector(g, values), nil
}

func closeness(s *search, n int, wfImproved bool) float64 {
	reached := len(s.order)
	total := 0.0
	for _, v := range s.order {
		total += s.dist[v]
	}
	if total <= 0 || n <= 1 {
		return 0
	}

	c := float64(reached-1) / total
	if wfImproved {
		c *= float64(reached-1) / float64(n-1)
	}
	return c
}
