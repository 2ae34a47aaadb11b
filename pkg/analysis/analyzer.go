// Package analysis runs the full pipeline of one route table: load the
// records, build the graph, compute every centrality measure, and publish
// logs and metrics along the way.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-routerank/pkg/algorithms"
	"github.com/dd0wney/cluso-routerank/pkg/graph"
	"github.com/dd0wney/cluso-routerank/pkg/logging"
	"github.com/dd0wney/cluso-routerank/pkg/metrics"
	"github.com/dd0wney/cluso-routerank/pkg/routes"
)

// Run statuses recorded in metrics
const (
	StatusSuccess  = "success"
	StatusPartial  = "partial" // at least one measure failed
	StatusFailed   = "failed"
	StatusCanceled = "canceled"
)

// Analyzer executes analysis runs
type Analyzer struct {
	attribute routes.WeightAttribute
	options   algorithms.Options
	logger    logging.Logger
	metrics   *metrics.Registry
}

// Option customizes an Analyzer
type Option func(*Analyzer)

// WithLogger sets the logger; the default discards everything
func WithLogger(logger logging.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithMetrics publishes run metrics to reg
func WithMetrics(reg *metrics.Registry) Option {
	return func(a *Analyzer) {
		a.metrics = reg
	}
}

// NewAnalyzer creates an analyzer weighting routes by attr
func NewAnalyzer(attr routes.WeightAttribute, opts algorithms.Options, options ...Option) *Analyzer {
	a := &Analyzer{
		attribute: attr,
		options:   opts,
		logger:    logging.NewNopLogger(),
	}
	for _, opt := range options {
		opt(a)
	}
	return a
}

// Open resolves input with routes.Open, runs it and closes the source
func (a *Analyzer) Open(ctx context.Context, input string, opts routes.Options) (*Run, error) {
	src, err := routes.Open(ctx, input, opts)
	if err != nil {
		if a.metrics != nil {
			a.metrics.RecordIngestFailure(sourceKind(input), "open")
			a.metrics.RecordAnalysisRun(StatusFailed)
		}
		return nil, fmt.Errorf("failed to open %s: %w", input, err)
	}
	defer src.Close()

	return a.Run(ctx, src)
}

// Run analyzes one source. Failures of individual measures do not fail the
// run; they are kept in Run.Result.Errors. Load and build errors, and
// cancellation, do.
func (a *Analyzer) Run(ctx context.Context, src routes.Source) (*Run, error) {
	run := &Run{
		ID:        uuid.New(),
		StartedAt: time.Now(),
		Source:    src.String(),
		Attribute: a.attribute,
	}
	kind := sourceKind(run.Source)
	log := a.logger.With(
		logging.RunID(run.ID.String()),
		logging.Source(run.Source),
		logging.Attribute(a.attribute.String()),
	)

	timer := logging.StartTimer(log, "records loaded")
	records, err := src.Records(ctx)
	if err != nil {
		reason := "read"
		if routes.IsParseError(err) {
			reason = "parse"
		}
		timer.EndError(err)
		a.fail(kind, reason)
		return nil, fmt.Errorf("failed to load routes: %w", err)
	}
	timer.End(logging.Count(len(records)))
	if a.metrics != nil {
		a.metrics.RecordIngest(kind, len(records), timer.Elapsed())
	}

	g, err := graph.Build(records, a.attribute)
	if err != nil {
		log.Error("graph build failed", logging.Error(err))
		a.fail(kind, "build")
		return nil, fmt.Errorf("failed to build graph: %w", err)
	}
	run.Graph = g
	run.Stats = g.Stats()
	run.Components = len(algorithms.ConnectedComponents(g))

	log.Info("graph built",
		logging.Int("nodes", run.Stats.NodeCount),
		logging.Int("edges", run.Stats.EdgeCount),
		logging.Int("self_loops", run.Stats.SelfLoops),
		logging.Int("parallel_edges", run.Stats.ParallelEdges),
		logging.Int("components", run.Components),
	)
	if a.metrics != nil {
		a.metrics.UpdateGraphMetrics(run.Stats.NodeCount, run.Stats.EdgeCount,
			run.Stats.SelfLoops, run.Stats.ParallelEdges, run.Components)
	}

	result, err := algorithms.ComputeAll(ctx, g, a.options)
	if err != nil {
		log.Warn("analysis canceled", logging.Error(err))
		if a.metrics != nil {
			a.metrics.RecordAnalysisRun(StatusCanceled)
		}
		return nil, err
	}
	run.Result = result
	run.Duration = time.Since(run.StartedAt)

	a.report(log, result)

	status := StatusSuccess
	if result.Failed() {
		status = StatusPartial
	}
	if a.metrics != nil {
		a.metrics.RecordAnalysisRun(status)
	}
	log.Info("analysis complete", logging.String("status", status), logging.Latency(run.Duration))

	return run, nil
}

// report logs and records the outcome of every measure
func (a *Analyzer) report(log logging.Logger, result *algorithms.Result) {
	for _, m := range algorithms.Measures {
		err := result.Errors[m]
		d := result.Durations[m]
		if a.metrics != nil {
			a.metrics.RecordAlgorithm(m.String(), d, err)
		}
		if err != nil {
			log.Warn("measure failed", logging.Measure(m.String()), logging.Error(err))
			continue
		}
		log.Debug("measure computed", logging.Measure(m.String()), logging.Latency(d))
	}

	if ev := result.Eigenvector; ev != nil {
		log.Debug("eigenvector converged",
			logging.Int("iterations", ev.Iterations),
			logging.Int("component_size", ev.ComponentSize),
		)
		if a.metrics != nil {
			a.metrics.RecordEigenvector(ev.Iterations, ev.ComponentSize)
		}
	} else if err := result.Errors[algorithms.MeasureEigenvector]; errors.Is(err, graph.ErrConvergence) && a.metrics != nil {
		a.metrics.RecordEigenvector(a.options.Eigenvector.MaxIterations, 0)
	}
}

func (a *Analyzer) fail(kind, reason string) {
	if a.metrics == nil {
		return
	}
	a.metrics.RecordIngestFailure(kind, reason)
	a.metrics.RecordAnalysisRun(StatusFailed)
}
