package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateAirportCode(t *testing.T) {
	tests := []struct {
		code    string
		wantErr bool
	}{
		{"ORD", false},
		{"KORD", false},
		{"cmi", false},
		{"4A7", false},
		{"A", false},
		{"ORD-2", false},
		{"LONGERTHANEIGHT", false},
		{strings.Repeat("X", 64), false},
		{"", true},
		{"ORD/CMI", true},
		{"O R D", true},
		{"ORD\t", true},
		{strings.Repeat("X", 65), true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := ValidateAirportCode(tt.code)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateAirportCode(%q) error = %v, wantErr %v", tt.code, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidAirportCode) {
				t.Errorf("Expected ErrInvalidAirportCode, got %v", err)
			}
		})
	}
}

func TestStruct_AirportRequest(t *testing.T) {
	if err := Struct(&AirportRequest{Code: "ATL"}); err != nil {
		t.Errorf("Expected valid request, got %v", err)
	}

	err := Struct(&AirportRequest{})
	if err == nil || !strings.Contains(err.Error(), "required") {
		t.Errorf("Expected required error, got %v", err)
	}

	err = Struct(&AirportRequest{Code: "A B"})
	if !errors.Is(err, ErrInvalidAirportCode) {
		t.Errorf("Expected ErrInvalidAirportCode, got %v", err)
	}

	if err := Struct(nil); err == nil {
		t.Error("Expected error for nil value")
	}
}

func TestValidateRankingRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     RankingRequest
		wantErr string
	}{
		{"valid", RankingRequest{Measure: "betweenness", Limit: 10}, ""},
		{"normalizes measure", RankingRequest{Measure: " Eigenvector ", Limit: 5}, ""},
		{"zero limit means all", RankingRequest{Measure: "degree"}, ""},
		{"missing measure", RankingRequest{Limit: 5}, "required"},
		{"unknown measure", RankingRequest{Measure: "pagerank", Limit: 5}, "must be one of"},
		{"negative limit", RankingRequest{Measure: "degree", Limit: -1}, "at least"},
		{"limit too large", RankingRequest{Measure: "degree", Limit: MaxRankingLimit + 1}, "must not exceed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			err := ValidateRankingRequest(&req)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				if req.Measure != strings.ToLower(strings.TrimSpace(tt.req.Measure)) {
					t.Errorf("Measure not normalized: %q", req.Measure)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}

	if err := ValidateRankingRequest(nil); err == nil {
		t.Error("Expected error for nil request")
	}
}
