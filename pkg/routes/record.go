package routes

import "strings"

// Record is one row of the route table: a single origin/destination pair
// with its traffic attributes and the populations of both endpoints.
type Record struct {
	Origin                string
	Destination           string
	Routes                float64 // Numtimes column: how often the route appears in the period
	Passengers            float64
	Seats                 float64
	Flights               float64
	Distance              float64
	OriginPopulation      float64
	DestinationPopulation float64
}

// WeightAttribute selects which numeric column of a Record becomes the edge weight.
type WeightAttribute int

const (
	// AttributeRoutes uses the route count (Numtimes)
	AttributeRoutes WeightAttribute = iota
	// AttributePassengers uses the passenger count
	AttributePassengers
	// AttributeSeats uses the seat count
	AttributeSeats
	// AttributeFlights uses the flight count (the default)
	AttributeFlights
	// AttributeDistance uses the route distance
	AttributeDistance
)

// DefaultWeightAttribute is used when no attribute, or an unknown one, is configured.
const DefaultWeightAttribute = AttributeFlights

// String returns the source column name for the attribute
func (a WeightAttribute) String() string {
	switch a {
	case AttributeRoutes:
		return ColumnRoutes
	case AttributePassengers:
		return ColumnPassengers
	case AttributeSeats:
		return ColumnSeats
	case AttributeFlights:
		return ColumnFlights
	case AttributeDistance:
		return ColumnDistance
	default:
		return "Unknown"
	}
}

// ParseWeightAttribute resolves a selector to an attribute. Both the column
// names (Numtimes, Passengers, ...) and the descriptive names (route-count,
// passenger-count, ...) are accepted, case-insensitively. Anything else yields
// DefaultWeightAttribute with ok set to false so callers can report the fallback.
func ParseWeightAttribute(s string) (attr WeightAttribute, ok bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	switch key {
	case "numtimes", "routes", "route-count":
		return AttributeRoutes, true
	case "passengers", "passenger-count":
		return AttributePassengers, true
	case "seats", "seat-count":
		return AttributeSeats, true
	case "flights", "flight-count":
		return AttributeFlights, true
	case "distance":
		return AttributeDistance, true
	default:
		return DefaultWeightAttribute, false
	}
}

// Weight returns the value of the selected attribute
func (r Record) Weight(attr WeightAttribute) float64 {
	switch attr {
	case AttributeRoutes:
		return r.Routes
	case AttributePassengers:
		return r.Passengers
	case AttributeSeats:
		return r.Seats
	case AttributeDistance:
		return r.Distance
	default:
		return r.Flights
	}
}
