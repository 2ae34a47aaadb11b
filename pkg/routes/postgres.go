package routes

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultPostgresQuery reads the routes table in insertion order. Columns are
// cast to text so every source shares one field parser.
const DefaultPostgresQuery = `SELECT origin_airport, destination_airport,
	numtimes::text, passengers::text, seats::text, flights::text, distance::text,
	origin_population::text, destination_population::text
FROM routes
ORDER BY id`

// PGSource reads route rows from PostgreSQL
type PGSource struct {
	pool  *pgxpool.Pool
	query string
	name  string
}

// NewPGSource connects to the database and verifies it is reachable
func NewPGSource(ctx context.Context, databaseURL, query string) (*PGSource, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	// One-shot reads need few connections
	config.MaxConns = 4
	config.MinConns = 1
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	if query == "" {
		query = DefaultPostgresQuery
	}

	return &PGSource{pool: pool, query: query, name: redactURL(databaseURL)}, nil
}

// Records runs the query and parses every row. Row numbers start at 1.
func (s *PGSource) Records(ctx context.Context) ([]Record, error) {
	rows, err := s.pool.Query(ctx, s.query)
	if err != nil {
		return nil, fmt.Errorf("failed to query routes: %w", err)
	}
	defer rows.Close()

	if n := len(rows.FieldDescriptions()); n != len(Columns) {
		return nil, &ParseError{Cause: fmt.Errorf("query returned %d columns, want %d", n, len(Columns))}
	}

	values := make([]*string, len(Columns))
	dest := make([]any, len(Columns))
	for i := range values {
		dest[i] = &values[i]
	}

	var records []Record
	row := 0
	for rows.Next() {
		row++
		if err := rows.Scan(dest...); err != nil {
			return nil, &ParseError{Line: row, Cause: err}
		}
		rec, err := parseRecord(row, func(column int) string {
			if values[column] == nil {
				return ""
			}
			return *values[column]
		})
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read routes: %w", err)
	}

	return records, nil
}

func (s *PGSource) String() string {
	return s.name
}

// Close closes the connection pool
func (s *PGSource) Close() error {
	s.pool.Close()
	return nil
}

// redactURL drops the password from a connection URL
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "postgres"
	}
	return u.Redacted()
}
