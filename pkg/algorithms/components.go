package algorithms

import (
	"sort"

	"github.com/dd0wney/cluso-routerank/pkg/graph"
)

// Component is a connected set of airports.
type Component struct {
	ID    int
	Nodes []int // node indices, ascending
	Size  int
}

// ConnectedComponents finds the connected components of g. Components are
// numbered in order of their smallest node index, which is also sorted
// identifier order.
func ConnectedComponents(g *graph.Graph) []Component {
	n := g.NodeCount()
	visited := make([]bool, n)
	components := make([]Component, 0)

	// BFS to find each component
	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}

		component := Component{ID: len(components)}
		queue := []int{start}
		visited[start] = true

		for head := 0; head < len(queue); head++ {
			v := queue[head]
			component.Nodes = append(component.Nodes, v)
			for _, nb := range g.Neighbors(v) {
				if !visited[nb.Index] {
					visited[nb.Index] = true
					queue = append(queue, nb.Index)
				}
			}
		}

		sort.Ints(component.Nodes)
		component.Size = len(component.Nodes)
		components = append(components, component)
	}

	return components
}

// LargestComponent returns the component with the most airports. Ties go to
// the component holding the smallest identifier.
func LargestComponent(g *graph.Graph) (Component, bool) {
	var best Component
	found := false
	for _, c := range ConnectedComponents(g) {
		if !found || c.Size > best.Size {
			best = c
			found = true
		}
	}
	return best, found
}

// ComponentIDs converts a component's node indices to identifiers.
func ComponentIDs(g *graph.Graph, c Component) []string {
	ids := make([]string, len(c.Nodes))
	for i, v := range c.Nodes {
		ids[i] = g.NodeID(v)
	}
	return ids
}
