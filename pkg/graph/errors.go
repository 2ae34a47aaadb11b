package graph

import (
	"errors"
	"fmt"
	"strings"
)

// Common sentinel errors.
var (
	ErrNodeNotFound      = errors.New("airport not found")
	ErrNegativeWeight    = errors.New("negative edge weight")
	ErrZeroWeight        = errors.New("zero edge weight")
	ErrConvergence       = errors.New("power iteration did not converge")
	ErrDisconnectedGraph = errors.New("graph is disconnected")
)

// GraphError provides structured error information for graph queries and
// the algorithms running over a graph.
type GraphError struct {
	Op      string // Operation that failed (e.g., "closeness", "lookup")
	Entity  string // Entity type (e.g., "airport", "edge", "graph")
	ID      string // Airport identifier (if applicable)
	Field   string // Weight attribute or option name
	Cause   error  // Underlying error
	Context string // Additional context
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	subject := e.Op + " " + e.Entity
	if e.ID != "" {
		subject += " " + e.ID
	}

	var details []string
	if e.Field != "" {
		details = append(details, "field "+e.Field)
	}
	if e.Context != "" {
		details = append(details, e.Context)
	}
	if len(details) > 0 {
		return fmt.Sprintf("%s (%s): %v", subject, strings.Join(details, ", "), e.Cause)
	}
	return fmt.Sprintf("%s: %v", subject, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *GraphError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error's cause.
func (e *GraphError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// ErrorBuilder provides a fluent interface for building GraphErrors.
type ErrorBuilder struct {
	err GraphError
}

// NewError creates a new error builder with the given operation.
func NewError(op string) *ErrorBuilder {
	return &ErrorBuilder{err: GraphError{Op: op}}
}

// Airport sets the entity to "airport" with the given identifier.
func (b *ErrorBuilder) Airport(id string) *ErrorBuilder {
	b.err.Entity = "airport"
	b.err.ID = id
	return b
}

// Edge sets the entity to "edge" between two airports.
func (b *ErrorBuilder) Edge(from, to string) *ErrorBuilder {
	b.err.Entity = "edge"
	b.err.ID = from + "-" + to
	return b
}

// Graph sets the entity to "graph".
func (b *ErrorBuilder) Graph() *ErrorBuilder {
	b.err.Entity = "graph"
	return b
}

// Field sets the weight attribute or option involved.
func (b *ErrorBuilder) Field(name string) *ErrorBuilder {
	b.err.Field = name
	return b
}

// Context sets additional context information.
func (b *ErrorBuilder) Context(ctx string) *ErrorBuilder {
	b.err.Context = ctx
	return b
}

// Cause sets the underlying error cause.
func (b *ErrorBuilder) Cause(err error) *ErrorBuilder {
	b.err.Cause = err
	return b
}

// Build returns the constructed GraphError.
func (b *ErrorBuilder) Build() *GraphError {
	return &b.err
}

// Err returns the error as an error interface.
func (b *ErrorBuilder) Err() error {
	return &b.err
}

// Convenience functions for common error patterns

// NodeNotFoundError creates an airport not found error.
func NodeNotFoundError(id string) error {
	return NewError("lookup").Airport(id).Cause(ErrNodeNotFound).Err()
}

// NegativeWeightError reports the first negative edge an algorithm met.
func NegativeWeightError(op string, e Edge) error {
	return NewError(op).Edge(e.From, e.To).
		Context(fmt.Sprintf("weight %g", e.Weight)).
		Cause(ErrNegativeWeight).Err()
}

// ZeroWeightError reports a zero-weight edge that makes shortest-path
// counts undefined.
func ZeroWeightError(op string, e Edge) error {
	return NewError(op).Edge(e.From, e.To).
		Context("paths through it tie with paths around it").
		Cause(ErrZeroWeight).Err()
}

// ConvergenceError reports a power iteration that ran out of iterations.
func ConvergenceError(op string, iterations int) error {
	return NewError(op).Graph().
		Context(fmt.Sprintf("after %d iterations", iterations)).
		Cause(ErrConvergence).Err()
}

// DisconnectedGraphError reports a graph with more than one component.
func DisconnectedGraphError(op string, components int) error {
	return NewError(op).Graph().
		Context(fmt.Sprintf("%d components", components)).
		Cause(ErrDisconnectedGraph).Err()
}

// IsNotFound returns true if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNodeNotFound)
}
