package routes

import (
	"context"
	"strings"
)

// Source supplies the ordered record set of one run. Implementations must
// return records in a stable order: first-seen population values depend on it.
type Source interface {
	// Records reads the whole feed. Any unparsable row fails the call.
	Records(ctx context.Context) ([]Record, error)
	// String describes the source for logs, with credentials removed
	String() string
	// Close releases connections or mappings held by the source
	Close() error
}

// Options configures the remote sources opened by Open
type Options struct {
	PostgresQuery string // Query returning the nine route columns as text
	S3Region      string
	S3Endpoint    string // Custom endpoint (MinIO, localstack); enables path-style addressing
	S3AccessKey   string
	S3SecretKey   string
}

// Open picks a Source from the input string: s3://bucket/key for S3,
// postgres:// or postgresql:// URLs for PostgreSQL, anything else is a local path.
func Open(ctx context.Context, input string, opts Options) (Source, error) {
	switch {
	case strings.HasPrefix(input, "s3://"):
		return NewS3Source(ctx, input, opts)
	case strings.HasPrefix(input, "postgres://"), strings.HasPrefix(input, "postgresql://"):
		return NewPGSource(ctx, input, opts.PostgresQuery)
	default:
		return NewFileSource(input), nil
	}
}

// SliceSource serves records that are already in memory
type SliceSource struct {
	Name string
	Rows []Record
}

// Records returns a copy of the rows
func (s *SliceSource) Records(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Record, len(s.Rows))
	copy(out, s.Rows)
	return out, nil
}

func (s *SliceSource) String() string {
	if s.Name == "" {
		return "memory"
	}
	return s.Name
}

// Close is a no-op
func (s *SliceSource) Close() error { return nil }

// isSnappy reports whether a file or object name carries snappy framing
func isSnappy(name string) bool {
	return strings.HasSuffix(name, ".sz") || strings.HasSuffix(name, ".snappy")
}
