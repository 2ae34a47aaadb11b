// Command routerank-tui runs the centrality analysis and browses the
// rankings in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dd0wney/cluso-routerank/pkg/analysis"
	"github.com/dd0wney/cluso-routerank/pkg/config"
	"github.com/dd0wney/cluso-routerank/pkg/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "routerank-tui: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	m, logFile, err := setup(args, stderr)
	if err != nil || m.load == nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// setup parses the command line and builds the initial model. A nil load
// function with a nil error means -help was requested.
func setup(args []string, stderr io.Writer) (model, *os.File, error) {
	fs := flag.NewFlagSet("routerank-tui", flag.ContinueOnError)
	fs.SetOutput(stderr)
	config.RegisterFlags(fs)
	logPath := fs.String("log-file", "", "Write logs to this file; the terminal is taken by the UI")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return model{}, nil, nil
		}
		return model{}, nil, err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return model{}, nil, err
	}
	if fs.NArg() > 0 {
		cfg.Input = fs.Arg(0)
	}
	if cfg.Input == "" {
		return model{}, nil, errors.New("no input: pass -input, ROUTERANK_INPUT or a positional argument")
	}

	logger := logging.NewNopLogger()
	var logFile *os.File
	if *logPath != "" {
		logFile, err = os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return model{}, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logger = logging.NewLogger(logFile, logging.ParseLevel(cfg.Log.Level), logging.ParseFormat(cfg.Log.Format))
	}

	attr, ok := cfg.Attribute()
	if !ok {
		logger.Warn("unknown weight attribute, using default",
			logging.String("requested", cfg.Weight),
			logging.Attribute(attr.String()),
		)
	}
	analyzer := analysis.NewAnalyzer(attr, cfg.AlgorithmOptions(), analysis.WithLogger(logger))

	input, opts := cfg.Input, cfg.SourceOptions()
	load := func(ctx context.Context) (*analysis.Run, error) {
		return analyzer.Open(ctx, input, opts)
	}
	return initialModel(input, load), logFile, nil
}
