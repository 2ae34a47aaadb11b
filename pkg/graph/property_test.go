package graph

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dd0wney/cluso-routerank/pkg/routes"
)

// recordsFromPairs turns generated integers into a small route table over
// airports A0..A5. Populations are left at zero so that first-seen order
// does not matter.
func recordsFromPairs(pairs []int) []routes.Record {
	records := make([]routes.Record, 0, len(pairs))
	for _, p := range pairs {
		records = append(records, routes.Record{
			Origin:      fmt.Sprintf("A%d", p%6),
			Destination: fmt.Sprintf("A%d", (p/6)%6),
			Flights:     float64(p%7 + 1),
		})
	}
	return records
}

// TestGraphInvariants verifies structural invariants over random route tables
func TestGraphInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("adjacency does not depend on record order", prop.ForAll(
		func(pairs []int, seed int64) bool {
			records := recordsFromPairs(pairs)
			shuffled := make([]routes.Record, len(records))
			copy(shuffled, records)
			rand.New(rand.NewSource(seed)).Shuffle(len(shuffled), func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})

			g1, err1 := Build(records, routes.AttributeFlights)
			g2, err2 := Build(shuffled, routes.AttributeFlights)
			if err1 != nil || err2 != nil {
				return false
			}
			if !reflect.DeepEqual(g1.Nodes(), g2.Nodes()) {
				return false
			}
			for i := 0; i < g1.NodeCount(); i++ {
				if !reflect.DeepEqual(g1.Neighbors(i), g2.Neighbors(i)) {
					return false
				}
			}
			return g1.Stats() == g2.Stats()
		},
		gen.SliceOf(gen.IntRange(0, 35)),
		gen.Int64(),
	))

	properties.Property("every record is an edge", prop.ForAll(
		func(pairs []int) bool {
			g, err := Build(recordsFromPairs(pairs), routes.AttributeFlights)
			if err != nil {
				return false
			}
			s := g.Stats()
			counted := s.SelfLoops
			for u := 0; u < g.NodeCount(); u++ {
				for _, n := range g.Neighbors(u) {
					if n.Index > u {
						counted += n.Count
					}
				}
			}
			return g.EdgeCount() == len(pairs) && counted == len(pairs)
		},
		gen.SliceOf(gen.IntRange(0, 35)),
	))

	properties.TestingRun(t)
}
