package graph

import "sort"

// Registry deduplicates airport identifiers. The first population seen for
// an identifier is kept; later values are ignored.
type Registry struct {
	populations map[string]float64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{populations: make(map[string]float64)}
}

// Register adds id with its population unless it is already known.
// It reports whether the identifier was inserted.
func (r *Registry) Register(id string, population float64) bool {
	if _, exists := r.populations[id]; exists {
		return false
	}
	r.populations[id] = population
	return true
}

// Population returns the registered population for id.
func (r *Registry) Population(id string) (float64, bool) {
	pop, ok := r.populations[id]
	return pop, ok
}

// Len returns the number of distinct identifiers.
func (r *Registry) Len() int {
	return len(r.populations)
}

// IDs returns every identifier in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.populations))
	for id := range r.populations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
