package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dd0wney/cluso-routerank/pkg/logging"
)

// ReloadFunc rebuilds whatever the server is serving, typically by running
// the analysis again over the configured input
type ReloadFunc func(ctx context.Context) error

// Config holds HTTP server timeouts
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DefaultConfig returns production timeouts
func DefaultConfig(addr string) Config {
	return Config{
		Addr:            addr,
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    60 * time.Second,
		IdleTimeout:     120 * time.Second,
		ShutdownTimeout: 30 * time.Second,
	}
}

// GracefulServer wraps an HTTP server with signal driven shutdown and reload
type GracefulServer struct {
	server          *http.Server
	shutdownTimeout time.Duration
	logger          logging.Logger
	shutdownCh      chan struct{}
	shutdownOnce    sync.Once
	reloadFn        ReloadFunc
	reloadMu        sync.Mutex // serializes reloads
	fnMu            sync.RWMutex
}

// NewGracefulServer creates a new graceful HTTP server
func NewGracefulServer(cfg Config, handler http.Handler, logger logging.Logger) *GracefulServer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 30 * time.Second
	}
	return &GracefulServer{
		server: &http.Server{
			Addr:           cfg.Addr,
			Handler:        handler,
			ReadTimeout:    cfg.ReadTimeout,
			WriteTimeout:   cfg.WriteTimeout,
			IdleTimeout:    cfg.IdleTimeout,
			MaxHeaderBytes: 1 << 20,
		},
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger.With(logging.Component("http")),
		shutdownCh:      make(chan struct{}),
	}
}

// Run serves until ctx is canceled or SIGINT/SIGTERM arrives, then drains
// connections within the shutdown timeout. SIGHUP triggers Reload.
func (gs *GracefulServer) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", gs.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", gs.server.Addr, err)
	}
	return gs.Serve(ctx, ln)
}

// Serve is Run on an existing listener
func (gs *GracefulServer) Serve(ctx context.Context, ln net.Listener) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	errCh := make(chan error, 1)
	go func() {
		gs.logger.Info("HTTP server listening", logging.String("addr", ln.Addr().String()))
		if err := gs.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	for {
		select {
		case err, ok := <-errCh:
			if ok {
				return err
			}
			return nil
		case <-hup:
			gs.logger.Info("received SIGHUP, reloading")
			if err := gs.Reload(ctx); err != nil {
				gs.logger.Error("reload failed", logging.Error(err))
			}
		case <-ctx.Done():
			gs.logger.Info("shutdown requested")
			return gs.Shutdown()
		}
	}
}

// Shutdown stops accepting connections and waits for in-flight requests
func (gs *GracefulServer) Shutdown() error {
	var err error
	gs.shutdownOnce.Do(func() {
		close(gs.shutdownCh)

		ctx, cancel := context.WithTimeout(context.Background(), gs.shutdownTimeout)
		defer cancel()

		gs.logger.Info("draining connections", logging.Duration("timeout", gs.shutdownTimeout))
		if err = gs.server.Shutdown(ctx); err != nil {
			gs.logger.Error("shutdown did not complete", logging.Error(err))
			return
		}
		gs.logger.Info("server stopped")
	})
	return err
}

// IsShuttingDown returns true if shutdown has been initiated
func (gs *GracefulServer) IsShuttingDown() bool {
	select {
	case <-gs.shutdownCh:
		return true
	default:
		return false
	}
}

// ShutdownChannel returns a channel that closes when shutdown is initiated
func (gs *GracefulServer) ShutdownChannel() <-chan struct{} {
	return gs.shutdownCh
}

// SetReloadFunc sets the function called on SIGHUP
func (gs *GracefulServer) SetReloadFunc(fn ReloadFunc) {
	gs.fnMu.Lock()
	defer gs.fnMu.Unlock()
	gs.reloadFn = fn
}

// Reload runs the reload function. Concurrent reloads run one after another.
func (gs *GracefulServer) Reload(ctx context.Context) error {
	gs.fnMu.RLock()
	fn := gs.reloadFn
	gs.fnMu.RUnlock()

	if fn == nil {
		gs.logger.Warn("reload requested, but no reload function configured")
		return nil
	}

	gs.reloadMu.Lock()
	defer gs.reloadMu.Unlock()

	start := time.Now()
	if err := fn(ctx); err != nil {
		return err
	}
	gs.logger.Info("reload complete", logging.Latency(time.Since(start)))
	return nil
}
