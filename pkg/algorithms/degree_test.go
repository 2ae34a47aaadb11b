package algorithms

import (
	"testing"

	"github.com/dd0wney/cluso-routerank/pkg/graph"
	"github.com/dd0wney/cluso-routerank/pkg/routes"
)

func TestDegreeCentrality_EmptyGraph(t *testing.T) {
	g := buildGraph(t)

	if scores := DegreeCentrality(g); len(scores) != 0 {
		t.Errorf("Expected 0 scores for empty graph, got %d", len(scores))
	}
}

func TestDegreeCentrality_SingleNode(t *testing.T) {
	g := buildGraph(t, route("A", "A", 3))

	assertScores(t, "degree", DegreeCentrality(g), map[string]float64{"A": 0})
}

func TestDegreeCentrality_Complete(t *testing.T) {
	g := completeGraph(t, "A", "B", "C", "D", "E")

	assertScores(t, "degree", DegreeCentrality(g), map[string]float64{
		"A": 1, "B": 1, "C": 1, "D": 1, "E": 1,
	})
}

func TestDegreeCentrality_Star(t *testing.T) {
	g := starGraph(t, "HUB", "L1", "L2", "L3", "L4")

	assertScores(t, "degree", DegreeCentrality(g), map[string]float64{
		"HUB": 1, "L1": 0.25, "L2": 0.25, "L3": 0.25, "L4": 0.25,
	})
}

func TestDegreeCentrality_ParallelEdgesAndSelfLoops(t *testing.T) {
	g := buildGraph(t,
		route("A", "B", 1),
		route("B", "A", 4),
		route("A", "B", 2),
		route("A", "A", 9),
		route("C", "C", 1),
	)

	// A has one distinct neighbor out of two possible
	assertScores(t, "degree", DegreeCentrality(g), map[string]float64{
		"A": 0.5, "B": 0.5, "C": 0,
	})
}

func TestDegreeCentrality_Scenario(t *testing.T) {
	assertScores(t, "degree", DegreeCentrality(scenarioGraph(t)), map[string]float64{
		"A": 1, "B": 1, "C": 1,
	})
}

func TestDegreeCentrality_Range(t *testing.T) {
	records := []routes.Record{
		route("ORD", "CMI", 1), route("ORD", "ATL", 1), route("ORD", "ATL", 1),
		route("ATL", "DCA", 1), route("DCA", "DCA", 1), route("PDX", "FLL", 1),
	}
	g, err := graph.Build(records, routes.AttributeFlights)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	for id, score := range DegreeCentrality(g) {
		if score < 0 || score > 1 {
			t.Errorf("degree(%s) = %v outside [0, 1]", id, score)
		}
	}
}
