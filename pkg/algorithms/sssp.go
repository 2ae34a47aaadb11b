package algorithms

import (
	"container/heap"

	"github.com/dd0wney/cluso-routerank/pkg/graph"
)

// search holds the state of one single-source shortest-path expansion.
// It is reused across sources by a single goroutine.
type search struct {
	order []int     // nodes in non-decreasing distance, as settled
	preds [][]int   // shortest-path predecessors
	sigma []float64 // number of shortest paths from the source
	dist  []float64 // settled distance, -1 when unreached
	seen  []float64 // tentative distance, -1 when never reached
	pq    searchQueue
	seq   int
}

func newSearch(n int) *search {
	return &search{
		order: make([]int, 0, n),
		preds: make([][]int, n),
		sigma: make([]float64, n),
		dist:  make([]float64, n),
		seen:  make([]float64, n),
	}
}

func (s *search) reset() {
	s.order = s.order[:0]
	for i := range s.dist {
		s.preds[i] = s.preds[i][:0]
		s.sigma[i] = 0
		s.dist[i] = -1
		s.seen[i] = -1
	}
	s.pq = s.pq[:0]
	s.seq = 0
}

// run expands from source using Dijkstra over minimum parallel weights, or
// breadth-first hop counts when weighted is false. Distances are exact for
// any non-negative weights; sigma and preds are only meaningful when every
// weight is positive.
func (s *search) run(g *graph.Graph, source int, weighted bool) {
	if weighted {
		s.dijkstra(g, source)
	} else {
		s.bfs(g, source)
	}
}

func (s *search) bfs(g *graph.Graph, source int) {
	s.reset()
	s.dist[source] = 0
	s.sigma[source] = 1
	s.order = append(s.order, source)

	for head := 0; head < len(s.order); head++ {
		v := s.order[head]
		next := s.dist[v] + 1
		for _, nb := range g.Neighbors(v) {
			w := nb.Index
			if s.dist[w] < 0 {
				s.dist[w] = next
				s.order = append(s.order, w)
			}
			if s.dist[w] == next {
				s.sigma[w] += s.sigma[v]
				s.preds[w] = append(s.preds[w], v)
			}
		}
	}
}

func (s *search) dijkstra(g *graph.Graph, source int) {
	s.reset()
	s.sigma[source] = 1
	s.seen[source] = 0
	s.push(0, source, source)

	for s.pq.Len() > 0 {
		item := heap.Pop(&s.pq).(searchItem)
		v := item.node
		if s.dist[v] >= 0 {
			continue // stale entry
		}
		if v != source {
			s.sigma[v] += s.sigma[item.pred]
		}
		s.dist[v] = item.dist
		s.order = append(s.order, v)

		for _, nb := range g.Neighbors(v) {
			w := nb.Index
			if s.dist[w] >= 0 {
				continue
			}
			d := item.dist + nb.MinWeight
			switch {
			case s.seen[w] < 0 || d < s.seen[w]:
				s.seen[w] = d
				s.sigma[w] = 0
				s.preds[w] = append(s.preds[w][:0], v)
				s.push(d, w, v)
			case d == s.seen[w]:
				s.sigma[w] += s.sigma[v]
				s.preds[w] = append(s.preds[w], v)
			}
		}
	}
}

func (s *search) push(dist float64, node, pred int) {
	heap.Push(&s.pq, searchItem{dist: dist, seq: s.seq, node: node, pred: pred})
	s.seq++
}

// searchItem is a tentative distance to node, reached through pred.
type searchItem struct {
	dist float64
	seq  int
	node int
	pred int
}

// searchQueue is a lazy min-heap ordered by distance, then push order.
// Outdated entries stay in the heap and are skipped when popped.
type searchQueue []searchItem

func (q searchQueue) Len() int { return len(q) }
func (q searchQueue) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}
	return q[i].seq < q[j].seq
}
func (q searchQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *searchQueue) Push(x any) {
	*q = append(*q, x.(searchItem))
}

func (q *searchQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}
