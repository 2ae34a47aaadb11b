package routes

import "testing"

func TestParseWeightAttribute(t *testing.T) {
	tests := []struct {
		input  string
		want   WeightAttribute
		wantOK bool
	}{
		{"Numtimes", AttributeRoutes, true},
		{"route-count", AttributeRoutes, true},
		{"Passengers", AttributePassengers, true},
		{"passenger_count", AttributePassengers, true},
		{"SEATS", AttributeSeats, true},
		{"seat-count", AttributeSeats, true},
		{"Flights", AttributeFlights, true},
		{"flight-count", AttributeFlights, true},
		{" Distance ", AttributeDistance, true},
		{"", AttributeFlights, false},
		{"Payload", AttributeFlights, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseWeightAttribute(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseWeightAttribute(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestWeightAttributeString(t *testing.T) {
	tests := []struct {
		attr     WeightAttribute
		expected string
	}{
		{AttributeRoutes, "Numtimes"},
		{AttributePassengers, "Passengers"},
		{AttributeSeats, "Seats"},
		{AttributeFlights, "Flights"},
		{AttributeDistance, "Distance"},
		{WeightAttribute(42), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.attr.String(); got != tt.expected {
			t.Errorf("WeightAttribute(%d).String() = %q, want %q", int(tt.attr), got, tt.expected)
		}
	}
}

func TestRecordWeight(t *testing.T) {
	rec := Record{Routes: 1, Passengers: 2, Seats: 3, Flights: 4, Distance: 5}

	tests := []struct {
		attr WeightAttribute
		want float64
	}{
		{AttributeRoutes, 1},
		{AttributePassengers, 2},
		{AttributeSeats, 3},
		{AttributeFlights, 4},
		{AttributeDistance, 5},
		{WeightAttribute(-1), 4},
	}

	for _, tt := range tests {
		if got := rec.Weight(tt.attr); got != tt.want {
			t.Errorf("Weight(%v) = %v, want %v", tt.attr, got, tt.want)
		}
	}
}
