package routes

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
)

// Route table column names, as they appear in the header row
const (
	ColumnOrigin                = "Origin_airport"
	ColumnDestination           = "Destination_airport"
	ColumnRoutes                = "Numtimes"
	ColumnPassengers            = "Passengers"
	ColumnSeats                 = "Seats"
	ColumnFlights               = "Flights"
	ColumnDistance              = "Distance"
	ColumnOriginPopulation      = "Origin_population"
	ColumnDestinationPopulation = "Destination_population"
)

// Columns lists every required column in record order
var Columns = []string{
	ColumnOrigin,
	ColumnDestination,
	ColumnRoutes,
	ColumnPassengers,
	ColumnSeats,
	ColumnFlights,
	ColumnDistance,
	ColumnOriginPopulation,
	ColumnDestinationPopulation,
}

// ReadCSV reads a header-led route table. Columns are located by header name,
// so extra columns and any column order are accepted. The first malformed
// row aborts the read with a ParseError.
func ReadCSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &ParseError{Line: 1, Cause: errors.New("missing header row")}
	}
	if err != nil {
		return nil, wrapCSVError(err)
	}

	colIndex := make(map[string]int, len(header))
	for i, col := range header {
		col = strings.TrimSpace(strings.TrimPrefix(col, "\ufeff"))
		colIndex[col] = i
	}

	positions := make([]int, len(Columns))
	for i, col := range Columns {
		idx, ok := colIndex[col]
		if !ok {
			return nil, &ParseError{Line: 1, Column: col, Cause: errMissingColumn}
		}
		positions[i] = idx
	}

	records := make([]Record, 0, 1024)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapCSVError(err)
		}

		line, _ := reader.FieldPos(0)
		rec, err := parseRecord(line, func(column int) string {
			return row[positions[column]]
		})
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

// parseRecord turns raw column values (indexed as in Columns) into a Record
func parseRecord(line int, field func(column int) string) (Record, error) {
	var rec Record

	rec.Origin = strings.TrimSpace(field(0))
	if err := CheckIdentifier(rec.Origin); err != nil {
		return Record{}, NewParseError(line, ColumnOrigin, field(0), err)
	}
	rec.Destination = strings.TrimSpace(field(1))
	if err := CheckIdentifier(rec.Destination); err != nil {
		return Record{}, NewParseError(line, ColumnDestination, field(1), err)
	}

	targets := []*float64{
		&rec.Routes,
		&rec.Passengers,
		&rec.Seats,
		&rec.Flights,
		&rec.Distance,
		&rec.OriginPopulation,
		&rec.DestinationPopulation,
	}
	for i, target := range targets {
		column := i + 2
		value, err := parseFloat(line, Columns[column], field(column))
		if err != nil {
			return Record{}, err
		}
		*target = value
	}

	return rec, nil
}

func parseFloat(line int, column, raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, NewParseError(line, column, raw, err)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, NewParseError(line, column, raw, ErrNonFinite)
	}
	return value, nil
}

func wrapCSVError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Line: csvErr.Line, Cause: csvErr.Err}
	}
	return &ParseError{Cause: err}
}
