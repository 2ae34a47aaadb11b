// Command routerank-server runs the centrality analysis once and serves the
// results over HTTP (REST, GraphQL, health and Prometheus metrics) until
// SIGINT or SIGTERM. SIGHUP re-runs the analysis over the same input and
// swaps the results in when it succeeds.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dd0wney/cluso-routerank/pkg/analysis"
	"github.com/dd0wney/cluso-routerank/pkg/api"
	"github.com/dd0wney/cluso-routerank/pkg/config"
	"github.com/dd0wney/cluso-routerank/pkg/health"
	"github.com/dd0wney/cluso-routerank/pkg/logging"
	"github.com/dd0wney/cluso-routerank/pkg/metrics"
	"github.com/dd0wney/cluso-routerank/pkg/routes"
	"github.com/dd0wney/cluso-routerank/pkg/server"
)

var version = "dev"

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "routerank-server: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("routerank-server", flag.ContinueOnError)
	fs.SetOutput(stderr)
	config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}
	if fs.NArg() > 0 {
		cfg.Input = fs.Arg(0)
	}
	if cfg.Input == "" {
		return errors.New("no input: pass -input, ROUTERANK_INPUT or a positional argument")
	}

	logger := logging.NewLogger(stderr, logging.ParseLevel(cfg.Log.Level), logging.ParseFormat(cfg.Log.Format))
	logging.SetDefaultLogger(logger)
	registry := metrics.DefaultRegistry()

	attr, ok := cfg.Attribute()
	if !ok {
		logger.Warn("unknown weight attribute, using default",
			logging.String("requested", cfg.Weight),
			logging.Attribute(attr.String()),
		)
	}
	analyzer := analysis.NewAnalyzer(attr, cfg.AlgorithmOptions(),
		analysis.WithLogger(logger),
		analysis.WithMetrics(registry),
	)

	srv, err := api.NewServer(api.ServerConfig{
		Logger:      logger,
		Metrics:     registry,
		CORSOrigins: cfg.Server.CORSOrigins,
		Version:     version,
	})
	if err != nil {
		return err
	}
	srv.HealthChecker().RegisterCheck("source", health.SourceCheck("source", sourcePing(cfg)))

	load := func(ctx context.Context) error {
		result, err := analyzer.Open(ctx, cfg.Input, cfg.SourceOptions())
		if err != nil {
			return err
		}
		srv.SetRun(result)
		return nil
	}
	if err := load(ctx); err != nil {
		return fmt.Errorf("initial analysis failed: %w", err)
	}

	gs := server.NewGracefulServer(server.Config{
		Addr:            cfg.Server.Addr,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		IdleTimeout:     2 * cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, srv.Handler(), logger)
	gs.SetReloadFunc(load)

	return gs.Run(ctx)
}

// sourcePing checks that the input is still reachable. Remote sources are
// opened and closed again; local files are stat'ed.
func sourcePing(cfg *config.Config) func() error {
	input := cfg.Input
	local := !strings.Contains(input, "://")
	return func() error {
		if local {
			_, err := os.Stat(input)
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		src, err := routes.Open(ctx, input, cfg.SourceOptions())
		if err != nil {
			return err
		}
		return src.Close()
	}
}
