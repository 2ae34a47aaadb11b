package algorithms

import (
	"math"

	"github.com/dd0wney/cluso-routerank/pkg/graph"
)

// DisconnectedPolicy decides how EigenvectorCentrality treats a graph with
// more than one connected component.
type DisconnectedPolicy int

const (
	// DisconnectedFail rejects disconnected graphs with graph.ErrDisconnectedGraph
	DisconnectedFail DisconnectedPolicy = iota
	// DisconnectedLargestComponent scores the largest component and gives
	// every other airport 0
	DisconnectedLargestComponent
)

func (p DisconnectedPolicy) String() string {
	switch p {
	case DisconnectedFail:
		return "fail"
	case DisconnectedLargestComponent:
		return "largest-component"
	default:
		return "unknown"
	}
}

// ParseDisconnectedPolicy resolves a policy name.
func ParseDisconnectedPolicy(s string) (DisconnectedPolicy, bool) {
	switch s {
	case "", "fail":
		return DisconnectedFail, true
	case "largest-component", "largest":
		return DisconnectedLargestComponent, true
	default:
		return DisconnectedFail, false
	}
}

// EigenvectorOptions configures EigenvectorCentrality.
type EigenvectorOptions struct {
	Weighted      bool // Sum of parallel route weights; otherwise 1 per neighbor
	MaxIterations int
	Tolerance     float64 // Convergence threshold per node
	Disconnected  DisconnectedPolicy
}

// DefaultEigenvectorOptions returns default eigenvector configuration.
func DefaultEigenvectorOptions() EigenvectorOptions {
	return EigenvectorOptions{
		Weighted:      true,
		MaxIterations: 100,
		Tolerance:     1e-6,
		Disconnected:  DisconnectedFail,
	}
}

// EigenvectorResult contains eigenvector scores for all nodes.
type EigenvectorResult struct {
	Scores        Scores
	Iterations    int  // Number of iterations performed
	Converged     bool // Whether the iteration converged
	ComponentSize int  // Number of airports iterated over
}

// EigenvectorCentrality computes the principal eigenvector of the weighted
// adjacency matrix by power iteration. The iteration multiplies by A+I, which
// has the same principal eigenvector as A but also converges on bipartite
// graphs. Scores are non-negative with unit Euclidean norm over the iterated
// component.
func EigenvectorCentrality(g *graph.Graph, opts EigenvectorOptions) (*EigenvectorResult, error) {
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultEigenvectorOptions().MaxIterations
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultEigenvectorOptions().Tolerance
	}

	n := g.NodeCount()
	if n == 0 {
		return &EigenvectorResult{Scores: make(Scores), Converged: true}, nil
	}

	if opts.Weighted {
		if e, ok := g.NegativeEdge(); ok {
			return nil, graph.NegativeWeightError("eigenvector", e)
		}
	}

	components := ConnectedComponents(g)
	nodes := components[0].Nodes
	if len(components) > 1 {
		if opts.Disconnected != DisconnectedLargestComponent {
			return nil, graph.DisconnectedGraphError("eigenvector", len(components))
		}
		largest, _ := LargestComponent(g)
		nodes = largest.Nodes
	}

	member := make([]bool, n)
	for _, v := range nodes {
		member[v] = true
	}

	m := len(nodes)
	x := make([]float64, n)
	last := make([]float64, n)
	for _, v := range nodes {
		x[v] = 1 / float64(m)
	}

	result := &EigenvectorResult{ComponentSize: m}
	for result.Iterations < opts.MaxIterations {
		result.Iterations++
		copy(last, x)

		// x = (A + I) * last
		for _, v := range nodes {
			for _, nb := range g.Neighbors(v) {
				if !member[nb.Index] {
					continue
				}
				w := 1.0
				if opts.Weighted {
					w = nb.TotalWeight
				}
				x[nb.Index] += last[v] * w
			}
		}

		norm := 0.0
		for _, v := range nodes {
			norm += x[v] * x[v]
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			norm = 1
		}

		diff := 0.0
		for _, v := range nodes {
			x[v] /= norm
			diff += math.Abs(x[v] - last[v])
		}

		if diff < float64(m)*opts.Tolerance {
			result.Converged = true
			break
		}
	}

	if !result.Converged {
		return nil, graph.ConvergenceError("eigenvector", result.Iterations)
	}

	result.Scores = fromVector(g, x)
	return result, nil
}
