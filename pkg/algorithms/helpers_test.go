package algorithms

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/dd0wney/cluso-routerank/pkg/graph"
	"github.com/dd0wney/cluso-routerank/pkg/routes"
)

const epsilon = 1e-9

// route is a flight-count weighted record between two airports
func route(from, to string, flights float64) routes.Record {
	return routes.Record{Origin: from, Destination: to, Flights: flights}
}

func buildGraph(t *testing.T, records ...routes.Record) *graph.Graph {
	t.Helper()

	g, err := graph.Build(records, routes.AttributeFlights)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return g
}

// scenarioGraph is A-B (2), B-C (2), A-C (10)
func scenarioGraph(t *testing.T) *graph.Graph {
	return buildGraph(t,
		route("A", "B", 2),
		route("B", "C", 2),
		route("A", "C", 10),
	)
}

func pathGraph(t *testing.T) *graph.Graph {
	return buildGraph(t, route("A", "B", 1), route("B", "C", 1))
}

func completeGraph(t *testing.T, ids ...string) *graph.Graph {
	var records []routes.Record
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			records = append(records, route(ids[i], ids[j], 1))
		}
	}
	return buildGraph(t, records...)
}

func starGraph(t *testing.T, center string, leaves ...string) *graph.Graph {
	var records []routes.Record
	for _, leaf := range leaves {
		records = append(records, route(center, leaf, 1))
	}
	return buildGraph(t, records...)
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func assertScores(t *testing.T, name string, got Scores, want map[string]float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Errorf("%s: got %d scores, want %d", name, len(got), len(want))
	}
	for id, w := range want {
		g, ok := got[id]
		if !ok {
			t.Errorf("%s: missing score for %s", name, id)
			continue
		}
		if !approxEqual(g, w) {
			t.Errorf("%s(%s) = %.12f, want %.12f", name, id, g, w)
		}
	}
}

// randomGraph builds a reproducible graph over n airports with m routes,
// including occasional parallel routes and self-loops
func randomGraph(t *testing.T, seed int64, n, m int) *graph.Graph {
	t.Helper()

	rng := rand.New(rand.NewSource(seed))
	records := make([]routes.Record, 0, m)
	for i := 0; i < m; i++ {
		from := fmt.Sprintf("N%02d", rng.Intn(n))
		to := fmt.Sprintf("N%02d", rng.Intn(n))
		records = append(records, route(from, to, float64(1+rng.Intn(9))))
	}
	return buildGraph(t, records...)
}
