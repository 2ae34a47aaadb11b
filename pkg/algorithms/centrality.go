package algorithms

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dd0wney/cluso-routerank/pkg/graph"
)

// Options configures ComputeAll.
type Options struct {
	Closeness   ClosenessOptions
	Betweenness BetweennessOptions
	Eigenvector EigenvectorOptions
	Parallel    bool // Run the four measures concurrently
}

// DefaultOptions returns the default configuration of every measure.
func DefaultOptions() Options {
	return Options{
		Closeness:   DefaultClosenessOptions(),
		Betweenness: DefaultBetweennessOptions(),
		Eigenvector: DefaultEigenvectorOptions(),
	}
}

// Result holds the output of every measure of one run. A measure that failed
// has nil scores and an entry in Errors; the others remain usable.
type Result struct {
	Degree      Scores
	Closeness   Scores
	Betweenness Scores
	Eigenvector *EigenvectorResult

	Errors    map[Measure]error
	Durations map[Measure]time.Duration
}

// Scores returns the scores of m, or its error if it failed.
func (r *Result) Scores(m Measure) (Scores, error) {
	if err := r.Errors[m]; err != nil {
		return nil, err
	}

	var s Scores
	switch m {
	case MeasureDegree:
		s = r.Degree
	case MeasureCloseness:
		s = r.Closeness
	case MeasureBetweenness:
		s = r.Betweenness
	case MeasureEigenvector:
		if r.Eigenvector != nil {
			s = r.Eigenvector.Scores
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMeasure, int(m))
	}
	if s == nil {
		return nil, fmt.Errorf("%s: not computed", m)
	}
	return s, nil
}

// Score returns one airport's score for m.
func (r *Result) Score(m Measure, id string) (float64, error) {
	s, err := r.Scores(m)
	if err != nil {
		return 0, err
	}
	return s.Get(id)
}

// Failed reports whether any measure failed.
func (r *Result) Failed() bool {
	return len(r.Errors) > 0
}

// measureOutcome is the private slot each measure writes to.
type measureOutcome struct {
	scores   Scores
	eigen    *EigenvectorResult
	err      error
	duration time.Duration
}

// ComputeAll runs the four centrality measures over g. Failures are isolated
// per measure and reported in Result.Errors. The context is checked before
// each measure starts; measures that never started record the context error,
// which is also returned.
func ComputeAll(ctx context.Context, g *graph.Graph, opts Options) (*Result, error) {
	outcomes := make([]measureOutcome, len(Measures))

	// run returns only the context error of a measure that never started;
	// algorithm failures stay in the outcome
	run := func(m Measure) error {
		out := &outcomes[m]
		if err := ctx.Err(); err != nil {
			out.err = err
			return err
		}

		start := time.Now()
		switch m {
		case MeasureDegree:
			out.scores = DegreeCentrality(g)
		case MeasureCloseness:
			out.scores, out.err = ClosenessCentrality(g, opts.Closeness)
		case MeasureBetweenness:
			out.scores, out.err = BetweennessCentrality(g, opts.Betweenness)
		case MeasureEigenvector:
			out.eigen, out.err = EigenvectorCentrality(g, opts.Eigenvector)
		}
		out.duration = time.Since(start)
		return nil
	}

	var ctxErr error
	if opts.Parallel {
		var eg errgroup.Group
		for _, m := range Measures {
			m := m
			eg.Go(func() error { return run(m) })
		}
		ctxErr = eg.Wait()
	} else {
		for _, m := range Measures {
			if err := run(m); err != nil && ctxErr == nil {
				ctxErr = err
			}
		}
	}

	result := &Result{
		Errors:    make(map[Measure]error),
		Durations: make(map[Measure]time.Duration, len(Measures)),
	}
	for _, m := range Measures {
		out := outcomes[m]
		if out.err != nil {
			result.Errors[m] = out.err
			continue
		}
		result.Durations[m] = out.duration
		switch m {
		case MeasureDegree:
			result.Degree = out.scores
		case MeasureCloseness:
			result.Closeness = out.scores
		case MeasureBetweenness:
			result.Betweenness = out.scores
		case MeasureEigenvector:
			result.Eigenvector = out.eigen
		}
	}

	return result, ctxErr
}
