package algorithms

import (
	"fmt"
	"strings"
)

// Measure identifies one of the centrality measures.
type Measure int

const (
	MeasureDegree Measure = iota
	MeasureCloseness
	MeasureBetweenness
	MeasureEigenvector
)

// Measures lists every measure in report order.
var Measures = []Measure{
	MeasureDegree,
	MeasureCloseness,
	MeasureBetweenness,
	MeasureEigenvector,
}

// ErrUnknownMeasure is returned by ParseMeasure.
var ErrUnknownMeasure = fmt.Errorf("unknown centrality measure")

func (m Measure) String() string {
	switch m {
	case MeasureDegree:
		return "degree"
	case MeasureCloseness:
		return "closeness"
	case MeasureBetweenness:
		return "betweenness"
	case MeasureEigenvector:
		return "eigenvector"
	default:
		return fmt.Sprintf("measure(%d)", int(m))
	}
}

// ParseMeasure resolves a measure name, case-insensitively.
func ParseMeasure(s string) (Measure, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, m := range Measures {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMeasure, s)
}

// MarshalText encodes the measure by name.
func (m Measure) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a measure name.
func (m *Measure) UnmarshalText(text []byte) error {
	parsed, err := ParseMeasure(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
