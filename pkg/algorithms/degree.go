package algorithms

import "github.com/dd0wney/cluso-routerank/pkg/graph"

// DegreeCentrality scores each airport by its number of distinct neighbors
// divided by n-1. Parallel routes count once and self-loops not at all, so
// every score lies in [0, 1]. Graphs with at most one node score 0.
func DegreeCentrality(g *graph.Graph) Scores {
	n := g.NodeCount()
	values := make([]float64, n)
	if n > 1 {
		denom := float64(n - 1)
		for i := range values {
			values[i] = float64(g.Degree(i)) / denom
		}
	}
	return fromVector(g, values)
}
