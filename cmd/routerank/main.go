// Command routerank computes degree, closeness, betweenness and eigenvector
// centrality for an airport route table and prints a report.
//
//	routerank [flags] <input> [Numtimes|Passengers|Seats|Flights|Distance]
//
// The input is a CSV file (snappy framed when it ends in .sz), an
// s3://bucket/key object or a postgres:// URL. Logs go to stderr; the report
// goes to stdout.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dd0wney/cluso-routerank/pkg/analysis"
	"github.com/dd0wney/cluso-routerank/pkg/config"
	"github.com/dd0wney/cluso-routerank/pkg/logging"
	"github.com/dd0wney/cluso-routerank/pkg/metrics"
	"github.com/dd0wney/cluso-routerank/pkg/report"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
	exitPartial = 3 // report written, at least one measure failed
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("routerank", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: routerank [flags] <input> [Numtimes|Passengers|Seats|Flights|Distance]")
		fs.PrintDefaults()
	}
	config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintf(stderr, "routerank: %v\n", err)
		return exitUsage
	}

	// Positional arguments keep the original "<file> <weight>" calling form
	switch fs.NArg() {
	case 0:
	case 1:
		cfg.Input = fs.Arg(0)
	case 2:
		cfg.Input, cfg.Weight = fs.Arg(0), fs.Arg(1)
	default:
		fs.Usage()
		return exitUsage
	}
	if cfg.Input == "" {
		fs.Usage()
		return exitUsage
	}

	logger := logging.NewLogger(stderr, logging.ParseLevel(cfg.Log.Level), logging.ParseFormat(cfg.Log.Format))

	attr, ok := cfg.Attribute()
	if !ok {
		logger.Warn("unknown weight attribute, using default",
			logging.String("requested", cfg.Weight),
			logging.Attribute(attr.String()),
		)
	}

	analyzer := analysis.NewAnalyzer(attr, cfg.AlgorithmOptions(),
		analysis.WithLogger(logger),
		analysis.WithMetrics(metrics.DefaultRegistry()),
	)

	result, err := analyzer.Open(ctx, cfg.Input, cfg.SourceOptions())
	if err != nil {
		logger.Error("analysis failed", logging.Source(cfg.Input), logging.Error(err))
		return exitFailure
	}

	rep, err := report.Assemble(result, cfg.Report.Targets, cfg.Report.Top)
	if err != nil {
		logger.Error("failed to assemble report", logging.Error(err))
		return exitFailure
	}
	if err := report.Write(stdout, rep, cfg.Report.Format); err != nil {
		logger.Error("failed to write report", logging.Error(err))
		return exitFailure
	}

	if result.Result.Failed() {
		return exitPartial
	}
	return exitOK
}
