package routes

import (
	"errors"
	"strings"
	"testing"
)

const sampleHeader = "Origin_airport,Destination_airport,Numtimes,Passengers,Seats,Flights,Distance,Origin_population,Destination_population\n"

func TestReadCSV(t *testing.T) {
	input := sampleHeader +
		"ORD,CMI,1,1200,1500,30,135,9461105,231891\n" +
		"CMI,ORD,2,800,1000,20,135,231891,9461105\n"

	records, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	want := Record{
		Origin:                "ORD",
		Destination:           "CMI",
		Routes:                1,
		Passengers:            1200,
		Seats:                 1500,
		Flights:               30,
		Distance:              135,
		OriginPopulation:      9461105,
		DestinationPopulation: 231891,
	}
	if records[0] != want {
		t.Errorf("records[0] = %+v, want %+v", records[0], want)
	}
	if records[1].Origin != "CMI" || records[1].Flights != 20 {
		t.Errorf("records[1] = %+v", records[1])
	}
}

func TestReadCSV_ColumnOrderAndExtras(t *testing.T) {
	input := "Fly_date,Destination_population,Origin_population,Distance,Flights,Seats,Passengers,Numtimes,Destination_airport,Origin_airport\n" +
		"200810,100,200,300,4,5,6,7,B,A\n"

	records, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}

	rec := records[0]
	if rec.Origin != "A" || rec.Destination != "B" {
		t.Errorf("Endpoints = %s-%s, want A-B", rec.Origin, rec.Destination)
	}
	if rec.Routes != 7 || rec.Passengers != 6 || rec.Seats != 5 || rec.Flights != 4 || rec.Distance != 300 {
		t.Errorf("Unexpected attributes: %+v", rec)
	}
	if rec.OriginPopulation != 200 || rec.DestinationPopulation != 100 {
		t.Errorf("Unexpected populations: %+v", rec)
	}
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantLine   int
		wantColumn string
		wantCause  error
	}{
		{
			name:       "non-numeric flights",
			input:      sampleHeader + "A,B,1,2,3,4,5,6,7\nA,C,1,2,3,many,5,6,7\n",
			wantLine:   3,
			wantColumn: ColumnFlights,
		},
		{
			name:       "empty distance",
			input:      sampleHeader + "A,B,1,2,3,4,,6,7\n",
			wantLine:   2,
			wantColumn: ColumnDistance,
		},
		{
			name:       "infinite population",
			input:      sampleHeader + "A,B,1,2,3,4,5,+Inf,7\n",
			wantLine:   2,
			wantColumn: ColumnOriginPopulation,
			wantCause:  ErrNonFinite,
		},
		{
			name:       "NaN seats",
			input:      sampleHeader + "A,B,1,2,NaN,4,5,6,7\n",
			wantLine:   2,
			wantColumn: ColumnSeats,
			wantCause:  ErrNonFinite,
		},
		{
			name:       "blank origin",
			input:      sampleHeader + " ,B,1,2,3,4,5,6,7\n",
			wantLine:   2,
			wantColumn: ColumnOrigin,
			wantCause:  ErrEmptyIdentifier,
		},
		{
			name:       "slash in destination",
			input:      sampleHeader + "A,ORD/CMI,1,2,3,4,5,6,7\n",
			wantLine:   2,
			wantColumn: ColumnDestination,
			wantCause:  ErrInvalidIdentifier,
		},
		{
			name:       "missing column",
			input:      "Origin_airport,Destination_airport,Numtimes\nA,B,1\n",
			wantLine:   1,
			wantColumn: ColumnPassengers,
		},
		{
			name:     "short row",
			input:    sampleHeader + "A,B,1,2,3\n",
			wantLine: 2,
		},
		{
			name:     "empty input",
			input:    "",
			wantLine: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := ReadCSV(strings.NewReader(tt.input))
			if err == nil {
				t.Fatalf("Expected error, got %d records", len(records))
			}
			if records != nil {
				t.Errorf("Expected no partial records, got %d", len(records))
			}
			if !errors.Is(err, ErrParse) {
				t.Fatalf("Expected ErrParse, got %v", err)
			}

			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Expected *ParseError, got %T", err)
			}
			if pe.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", pe.Line, tt.wantLine)
			}
			if pe.Column != tt.wantColumn {
				t.Errorf("Column = %q, want %q", pe.Column, tt.wantColumn)
			}
			if tt.wantCause != nil && !errors.Is(err, tt.wantCause) {
				t.Errorf("Expected cause %v, got %v", tt.wantCause, pe.Cause)
			}
		})
	}
}

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		expected string
	}{
		{
			name:     "line and column",
			err:      &ParseError{Line: 4, Column: "Flights", Value: "x", Cause: errors.New("invalid syntax")},
			expected: `parse line 4 (column Flights, value "x"): invalid syntax`,
		},
		{
			name:     "column only",
			err:      &ParseError{Column: "Seats", Value: "", Cause: errors.New("invalid syntax")},
			expected: `parse column Seats (value ""): invalid syntax`,
		},
		{
			name:     "line only",
			err:      &ParseError{Line: 2, Cause: errors.New("wrong number of fields")},
			expected: "parse line 2: wrong number of fields",
		},
		{
			name:     "minimal",
			err:      &ParseError{Cause: errors.New("boom")},
			expected: "parse: boom",
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
