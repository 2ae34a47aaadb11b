package algorithms

import (
	"container/heap"
	"sort"

	"github.com/dd0wney/cluso-routerank/pkg/graph"
)

// Scores maps airport identifiers to a centrality value.
type Scores map[string]float64

// RankedNode is an airport with its score.
type RankedNode struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// Get returns the score for id, or a wrapped graph.ErrNodeNotFound.
func (s Scores) Get(id string) (float64, error) {
	score, ok := s[id]
	if !ok {
		return 0, graph.NodeNotFoundError(id)
	}
	return score, nil
}

// Top returns the n highest scores in descending order. Equal scores are
// ordered by identifier. n <= 0 returns every score ranked.
func (s Scores) Top(n int) []RankedNode {
	if n <= 0 || n > len(s) {
		n = len(s)
	}
	if n == 0 {
		return nil
	}

	h := make(rankedNodeHeap, 0, n)
	for id, score := range s {
		rn := RankedNode{ID: id, Score: score}
		if h.Len() < n {
			heap.Push(&h, rn)
		} else if ranksAbove(rn, h[0]) {
			h[0] = rn
			heap.Fix(&h, 0)
		}
	}

	result := []RankedNode(h)
	sort.Slice(result, func(i, j int) bool {
		return ranksAbove(result[i], result[j])
	})
	return result
}

// fromVector maps per-index values back to identifiers.
func fromVector(g *graph.Graph, values []float64) Scores {
	scores := make(Scores, len(values))
	for i, v := range values {
		scores[g.NodeID(i)] = v
	}
	return scores
}

func ranksAbove(a, b RankedNode) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.ID < b.ID
}

// rankedNodeHeap is a min-heap on rank: the root is the weakest of the
// current top n and is replaced when a stronger node arrives.
type rankedNodeHeap []RankedNode

func (h rankedNodeHeap) Len() int           { return len(h) }
func (h rankedNodeHeap) Less(i, j int) bool { return ranksAbove(h[j], h[i]) }
func (h rankedNodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *rankedNodeHeap) Push(x any) {
	*h = append(*h, x.(RankedNode))
}

func (h *rankedNodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}
