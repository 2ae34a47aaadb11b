package graph

import (
	"errors"
	"fmt"
	"testing"
)

func TestGraphError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *GraphError
		expected string
	}{
		{
			name: "with ID",
			err: &GraphError{
				Op:     "lookup",
				Entity: "airport",
				ID:     "ORD",
				Cause:  ErrNodeNotFound,
			},
			expected: "lookup airport ORD: airport not found",
		},
		{
			name: "with ID and field",
			err: &GraphError{
				Op:     "closeness",
				Entity: "edge",
				ID:     "ORD-CMI",
				Field:  "Distance",
				Cause:  ErrNegativeWeight,
			},
			expected: "closeness edge ORD-CMI (field Distance): negative edge weight",
		},
		{
			name: "with ID and context",
			err: &GraphError{
				Op:      "closeness",
				Entity:  "edge",
				ID:      "A-B",
				Context: "weight -1",
				Cause:   ErrNegativeWeight,
			},
			expected: "closeness edge A-B (weight -1): negative edge weight",
		},
		{
			name: "with ID, field and context",
			err: &GraphError{
				Op:      "betweenness",
				Entity:  "edge",
				ID:      "ORD-CMI",
				Field:   "Passengers",
				Context: "weight 0",
				Cause:   ErrZeroWeight,
			},
			expected: "betweenness edge ORD-CMI (field Passengers, weight 0): zero edge weight",
		},
		{
			name: "without ID with field",
			err: &GraphError{
				Op:     "build",
				Entity: "graph",
				Field:  "Seats",
				Cause:  fmt.Errorf("bad weight"),
			},
			expected: "build graph (field Seats): bad weight",
		},
		{
			name: "with context",
			err: &GraphError{
				Op:      "eigenvector",
				Entity:  "graph",
				Context: "after 100 iterations",
				Cause:   ErrConvergence,
			},
			expected: "eigenvector graph (after 100 iterations): power iteration did not converge",
		},
		{
			name: "minimal",
			err: &GraphError{
				Op:     "eigenvector",
				Entity: "graph",
				Cause:  ErrDisconnectedGraph,
			},
			expected: "eigenvector graph: graph is disconnected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestGraphError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying error")
	err := &GraphError{Op: "lookup", Entity: "airport", Cause: cause}

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestGraphError_Is(t *testing.T) {
	err := NodeNotFoundError("XYZ")

	if !errors.Is(err, ErrNodeNotFound) {
		t.Error("Expected errors.Is to match ErrNodeNotFound")
	}
	if errors.Is(err, ErrConvergence) {
		t.Error("Expected errors.Is to not match ErrConvergence")
	}

	wrapped := fmt.Errorf("report: %w", err)
	var ge *GraphError
	if !errors.As(wrapped, &ge) {
		t.Fatal("Expected errors.As to find GraphError")
	}
	if ge.ID != "XYZ" {
		t.Errorf("ID = %q, want XYZ", ge.ID)
	}
}

func TestErrorBuilder(t *testing.T) {
	err := NewError("betweenness").
		Edge("ATL", "DCA").
		Field("Distance").
		Cause(ErrNegativeWeight).
		Build()

	if err.Op != "betweenness" {
		t.Errorf("Op = %q, want %q", err.Op, "betweenness")
	}
	if err.Entity != "edge" {
		t.Errorf("Entity = %q, want %q", err.Entity, "edge")
	}
	if err.ID != "ATL-DCA" {
		t.Errorf("ID = %q, want %q", err.ID, "ATL-DCA")
	}
	if err.Field != "Distance" {
		t.Errorf("Field = %q, want %q", err.Field, "Distance")
	}
}

func TestConvenienceErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"negative weight", NegativeWeightError("closeness", Edge{From: "A", To: "B", Weight: -1}), ErrNegativeWeight},
		{"zero weight", ZeroWeightError("betweenness", Edge{From: "A", To: "B"}), ErrZeroWeight},
		{"convergence", ConvergenceError("eigenvector", 100), ErrConvergence},
		{"disconnected", DisconnectedGraphError("eigenvector", 3), ErrDisconnectedGraph},
		{"not found", NodeNotFoundError("ZZZ"), ErrNodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.target) {
				t.Errorf("Expected %v to match %v", tt.err, tt.target)
			}
		})
	}

	if !IsNotFound(NodeNotFoundError("ZZZ")) {
		t.Error("IsNotFound should match NodeNotFoundError")
	}
	if IsNotFound(ConvergenceError("eigenvector", 1)) {
		t.Error("IsNotFound should not match ConvergenceError")
	}
}

func TestNegativeWeightError_KeepsWeight(t *testing.T) {
	err := NegativeWeightError("closeness", Edge{From: "A", To: "B", Weight: -2.5})

	want := "closeness edge A-B (weight -2.5): negative edge weight"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
