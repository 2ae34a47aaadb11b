package graph

import (
	"math"
	"sort"

	"github.com/dd0wney/cluso-routerank/pkg/routes"
)

// Builder accumulates route records into a graph. It is not safe for
// concurrent use.
type Builder struct {
	attribute routes.WeightAttribute
	registry  *Registry
	edges     []Edge
}

// NewBuilder creates a builder weighting edges by attr.
func NewBuilder(attr routes.WeightAttribute) *Builder {
	return &Builder{
		attribute: attr,
		registry:  NewRegistry(),
	}
}

// Add registers both endpoints of rec (origin first) and appends one edge.
// Records are rejected with a routes.ParseError whose Line is the 1-based
// record number when an identifier fails routes.CheckIdentifier or a weight
// or population is not finite. A rejected record leaves the builder unchanged.
func (b *Builder) Add(rec routes.Record) error {
	line := len(b.edges) + 1

	if err := routes.CheckIdentifier(rec.Origin); err != nil {
		return routes.NewParseError(line, routes.ColumnOrigin, rec.Origin, err)
	}
	if err := routes.CheckIdentifier(rec.Destination); err != nil {
		return routes.NewParseError(line, routes.ColumnDestination, rec.Destination, err)
	}

	weight := rec.Weight(b.attribute)
	checks := []struct {
		column string
		value  float64
	}{
		{b.attribute.String(), weight},
		{routes.ColumnOriginPopulation, rec.OriginPopulation},
		{routes.ColumnDestinationPopulation, rec.DestinationPopulation},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return routes.NewParseError(line, c.column, formatFloat(c.value), routes.ErrNonFinite)
		}
	}

	b.registry.Register(rec.Origin, rec.OriginPopulation)
	b.registry.Register(rec.Destination, rec.DestinationPopulation)
	b.edges = append(b.edges, Edge{From: rec.Origin, To: rec.Destination, Weight: weight})
	return nil
}

// Registry returns the builder's node registry.
func (b *Builder) Registry() *Registry {
	return b.registry
}

// Graph freezes the records added so far into an immutable Graph.
// The builder may keep accepting records afterwards.
func (b *Builder) Graph() *Graph {
	ids := b.registry.IDs()
	g := &Graph{
		attribute: b.attribute,
		nodes:     make([]Node, len(ids)),
		index:     make(map[string]int, len(ids)),
		edges:     make([]Edge, len(b.edges)),
		adj:       make([][]Neighbor, len(ids)),
	}
	copy(g.edges, b.edges)

	for i, id := range ids {
		pop, _ := b.registry.Population(id)
		g.nodes[i] = Node{ID: id, Population: pop}
		g.index[id] = i
	}

	type pair struct{ u, v int }
	parallel := make(map[pair][]float64)
	for i := range g.edges {
		e := &g.edges[i]
		if e.Weight < 0 && g.negative == nil {
			g.negative = e
		}
		u, v := g.index[e.From], g.index[e.To]
		if u == v {
			g.selfLoops++
			continue
		}
		if e.Weight == 0 && g.zero == nil {
			g.zero = e
		}
		if u > v {
			u, v = v, u
		}
		parallel[pair{u, v}] = append(parallel[pair{u, v}], e.Weight)
	}

	for p, weights := range parallel {
		// Summation order must not depend on record order
		sort.Float64s(weights)
		n := Neighbor{MinWeight: weights[0], Count: len(weights)}
		for _, w := range weights {
			n.TotalWeight += w
		}
		n.Index = p.v
		g.adj[p.u] = append(g.adj[p.u], n)
		n.Index = p.u
		g.adj[p.v] = append(g.adj[p.v], n)
	}

	for i := range g.adj {
		sort.Slice(g.adj[i], func(a, b int) bool {
			return g.adj[i][a].Index < g.adj[i][b].Index
		})
	}

	return g
}

// Build constructs a graph from records in order. On error no graph is returned.
func Build(records []routes.Record, attr routes.WeightAttribute) (*Graph, error) {
	b := NewBuilder(attr)
	for _, rec := range records {
		if err := b.Add(rec); err != nil {
			return nil, err
		}
	}
	return b.Graph(), nil
}
