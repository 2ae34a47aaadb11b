package graph

import (
	"github.com/dd0wney/cluso-routerank/pkg/routes"
)

// Node is an airport with the population recorded on its first appearance.
type Node struct {
	ID         string
	Population float64
}

// Edge is one route record. Edges are undirected: From and To keep the
// record's orientation only for display.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Neighbor is an adjacent airport with all parallel edges to it collapsed.
// Index refers to the neighbor's position in Graph.Nodes().
type Neighbor struct {
	Index       int
	MinWeight   float64 // lightest parallel edge, walked by shortest-path searches
	TotalWeight float64 // sum of parallel edges, the multigraph adjacency entry
	Count       int     // number of parallel edges
}

// Graph is an immutable undirected multigraph of airports. Nodes are indexed
// in sorted identifier order and every neighbor list is sorted by index, so
// algorithms iterating over a Graph are independent of input order.
// A Graph is safe for concurrent readers.
type Graph struct {
	attribute routes.WeightAttribute
	nodes     []Node
	index     map[string]int
	edges     []Edge
	adj       [][]Neighbor
	selfLoops int
	negative  *Edge
	zero      *Edge
}

// Attribute returns the weight attribute the edges were built from.
func (g *Graph) Attribute() routes.WeightAttribute {
	return g.attribute
}

// NodeCount returns the number of distinct airports.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges, parallel edges and self-loops included.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Nodes returns a copy of the nodes in index order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns a copy of the edges in record order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Node looks up an airport by identifier.
func (g *Graph) Node(id string) (Node, error) {
	i, ok := g.index[id]
	if !ok {
		return Node{}, NodeNotFoundError(id)
	}
	return g.nodes[i], nil
}

// IndexOf returns the index of id.
func (g *Graph) IndexOf(id string) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// NodeID returns the identifier at index i.
func (g *Graph) NodeID(i int) string {
	return g.nodes[i].ID
}

// Neighbors returns the collapsed neighbor list of node i, self-loops
// excluded. The returned slice is shared and must not be modified.
func (g *Graph) Neighbors(i int) []Neighbor {
	return g.adj[i]
}

// Degree returns the number of distinct neighbors of node i.
func (g *Graph) Degree(i int) int {
	return len(g.adj[i])
}

// NegativeEdge returns the first edge, in record order, with a negative weight.
func (g *Graph) NegativeEdge() (Edge, bool) {
	if g.negative == nil {
		return Edge{}, false
	}
	return *g.negative, true
}

// ZeroEdge returns the first edge, in record order, that joins two distinct
// airports with a weight of exactly zero. Zero-weight self-loops are ignored.
func (g *Graph) ZeroEdge() (Edge, bool) {
	if g.zero == nil {
		return Edge{}, false
	}
	return *g.zero, true
}
