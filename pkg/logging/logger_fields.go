package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Domain fields

func Component(name string) Field {
	return String("component", name)
}

// Airport tags an airport identifier
func Airport(id string) Field {
	return String("airport", id)
}

// Measure tags a centrality measure name
func Measure(name string) Field {
	return String("measure", name)
}

// Attribute tags the weight attribute of a run
func Attribute(name string) Field {
	return String("weight_attribute", name)
}

// RunID tags an analysis run
func RunID(id string) Field {
	return String("run_id", id)
}

// Source tags a route source description
func Source(desc string) Field {
	return String("source", desc)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func Count(n int) Field {
	return Int("count", n)
}
