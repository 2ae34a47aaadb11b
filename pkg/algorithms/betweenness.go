package algorithms

import (
	"github.com/dd0wney/cluso-routerank/pkg/graph"
	"github.com/dd0wney/cluso-routerank/pkg/parallel"
)

// BetweennessOptions configures BetweennessCentrality.
type BetweennessOptions struct {
	Weighted   bool // Shortest paths by edge weight instead of hop count
	Normalized bool // Divide by the number of pairs not involving the node
	Endpoints  bool // Count path endpoints as lying on the path
	Workers    int  // Source blocks computed concurrently; <= 1 runs inline
}

// DefaultBetweennessOptions returns weighted, normalized betweenness.
func DefaultBetweennessOptions() BetweennessOptions {
	return BetweennessOptions{
		Weighted:   true,
		Normalized: true,
	}
}

// BetweennessCentrality computes, for every airport, the fraction of shortest
// paths between other pairs that pass through it, using Brandes' algorithm.
// Paths only follow the lightest of any parallel routes; self-loops never lie
// on a path. Pairs in different components contribute nothing.
//
// Weighted betweenness needs strictly positive weights: a zero-weight route
// puts its two airports at the same distance from every source, so each is a
// shortest-path predecessor of the other and the path counts have no
// consistent value. Such graphs fail with graph.ErrZeroWeight; unweighted
// betweenness is unaffected.
func BetweennessCentrality(g *graph.Graph, opts BetweennessOptions) (Scores, error) {
	if opts.Weighted {
		if e, ok := g.NegativeEdge(); ok {
			return nil, graph.NegativeWeightError("betweenness", e)
		}
		if e, ok := g.ZeroEdge(); ok {
			return nil, graph.ZeroWeightError("betweenness", e)
		}
	}

	n := g.NodeCount()
	blocks := parallel.Blocks(n, opts.Workers)
	partial := make([][]float64, len(blocks))

	err := parallel.ForEachBlock(n, opts.Workers, func(i int, b parallel.Block) error {
		acc := make([]float64, n)
		s := newSearch(n)
		delta := make([]float64, n)
		for source := b.Lo; source < b.Hi; source++ {
			s.run(g, source, opts.Weighted)
			brandesAccumulate(s, source, delta, acc, opts.Endpoints)
		}
		partial[i] = acc
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Block sums are combined in block order so results do not depend on scheduling
	values := make([]float64, n)
	for _, acc := range partial {
		for v, x := range acc {
			values[v] += x
		}
	}

	if scale, ok := betweennessScale(n, opts); ok {
		for v := range values {
			values[v] *= scale
		}
	}

	return fromVector(g, values), nil
}

// brandesAccumulate back-propagates pair dependencies from the farthest node
// towards the source and adds them to acc.
func brandesAccumulate(s *search, source int, delta, acc []float64, endpoints bool) {
	for _, v := range s.order {
		delta[v] = 0
	}
	if endpoints {
		acc[source] += float64(len(s.order) - 1)
	}

	for i := len(s.order) - 1; i >= 0; i-- {
		w := s.order[i]
		coeff := (1 + delta[w]) / s.sigma[w]
		for _, v := range s.preds[w] {
			delta[v] += s.sigma[v] * coeff
		}
		if w == source {
			continue
		}
		if endpoints {
			acc[w] += delta[w] + 1
		} else {
			acc[w] += delta[w]
		}
	}
}

// betweennessScale returns the rescaling factor for an undirected graph.
func betweennessScale(n int, opts BetweennessOptions) (float64, bool) {
	if !opts.Normalized {
		// Every unordered pair was visited from both ends
		return 0.5, true
	}
	if opts.Endpoints {
		if n < 2 {
			return 0, false
		}
		return 1 / float64(n*(n-1)), true
	}
	if n <= 2 {
		return 0, false
	}
	return 1 / float64((n-1)*(n-2)), true
}
