package routes

import (
	"errors"
	"strings"
	"testing"
)

func TestCheckIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{"IATA code", "ORD", nil},
		{"single letter", "A", nil},
		{"with dash", "ORD-2", nil},
		{"non-ASCII", "ZÜRICH", nil},
		{"at length limit", strings.Repeat("X", MaxIdentifierLength), nil},
		{"empty", "", ErrEmptyIdentifier},
		{"over length limit", strings.Repeat("X", MaxIdentifierLength+1), ErrInvalidIdentifier},
		{"slash", "ORD/CMI", ErrInvalidIdentifier},
		{"inner space", "O R D", ErrInvalidIdentifier},
		{"control character", "ORD\x00", ErrInvalidIdentifier},
		{"invalid UTF-8", "OR\xff", ErrInvalidIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckIdentifier(tt.id)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("CheckIdentifier(%q) = %v, want nil", tt.id, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CheckIdentifier(%q) = %v, want %v", tt.id, err, tt.wantErr)
			}
		})
	}
}
