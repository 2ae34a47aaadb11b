package graph

import "strconv"

// Statistics summarizes the shape of a graph.
type Statistics struct {
	NodeCount     int `json:"nodes"`
	EdgeCount     int `json:"edges"`
	SelfLoops     int `json:"self_loops"`
	ParallelEdges int `json:"parallel_edges"` // edges beyond the first between a pair
	NeighborPairs int `json:"neighbor_pairs"` // distinct unordered non-loop pairs
}

// Stats computes summary statistics.
func (g *Graph) Stats() Statistics {
	s := Statistics{
		NodeCount: len(g.nodes),
		EdgeCount: len(g.edges),
		SelfLoops: g.selfLoops,
	}
	for u, neighbors := range g.adj {
		for _, n := range neighbors {
			if n.Index > u {
				s.NeighborPairs++
				s.ParallelEdges += n.Count - 1
			}
		}
	}
	return s
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
