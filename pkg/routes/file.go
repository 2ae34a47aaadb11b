package routes

import (
	"context"
	"fmt"
	"io"

	"github.com/golang/snappy"
	"golang.org/x/exp/mmap"
)

// FileSource reads a route table from the local filesystem. The file is
// memory-mapped; names ending in .sz or .snappy are decoded as snappy-framed streams.
type FileSource struct {
	path string
}

// NewFileSource creates a source for the given path
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Records maps the file and parses it
func (s *FileSource) Records(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mapped, err := mmap.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open route file %s: %w", s.path, err)
	}
	defer mapped.Close()

	var r io.Reader = io.NewSectionReader(mapped, 0, int64(mapped.Len()))
	if isSnappy(s.path) {
		r = snappy.NewReader(r)
	}

	records, err := ReadCSV(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return records, nil
}

func (s *FileSource) String() string {
	return s.path
}

// Close is a no-op; the mapping lives only for the duration of Records
func (s *FileSource) Close() error { return nil }
