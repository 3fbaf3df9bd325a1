// Package site wires the JPPF site modules into an HTTP server.
package site

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"

	"github.com/jppf-project/site/internal/platform/timeouts"
	"github.com/jppf-project/site/internal/services/site/app"
	"github.com/jppf-project/site/internal/services/site/modules"
	"github.com/jppf-project/site/internal/services/site/modules/public"
	"github.com/jppf-project/site/internal/services/site/modules/slideshow"
	"github.com/jppf-project/site/internal/services/site/platform/httpx"
	"github.com/jppf-project/site/internal/services/site/platform/observability"
	"github.com/jppf-project/site/internal/services/site/storage"
)

// Config defines the inputs for the site server.
type Config struct {
	HTTPAddr string
	// Directories opens one link directory per request.
	Directories storage.LinkDirectoryOpener
	// SnapshotReads reads groups and links inside one transaction.
	SnapshotReads bool
	Sessions      storage.SessionValueStore
	Deck          slideshow.Deck
	// Health is pinged by GET /up; nil keeps the probe static.
	Health public.Pinger
	Logger *log.Logger
}

// Server hosts the site HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *log.Logger
}

// NewHandler composes the site modules behind the shared middleware chain.
func NewHandler(config Config) (http.Handler, error) {
	if config.Directories == nil {
		return nil, errors.New("link directory opener is required")
	}
	if config.Sessions == nil {
		return nil, errors.New("session store is required")
	}
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}
	composed, err := app.Compose(modules.Default(modules.Dependencies{
		Directories:   config.Directories,
		SnapshotReads: config.SnapshotReads,
		Sessions:      config.Sessions,
		Deck:          config.Deck,
		Health:        config.Health,
		Logger:        logger,
	}))
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}
	return httpx.Chain(composed,
		httpx.RequestID(),
		observability.RequestLogger(logger),
		httpx.RecoverPanic(),
	), nil
}

// NewServer builds a configured site server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(config)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			IdleTimeout:       timeouts.Idle,
			ErrorLog:          logger,
		},
		logger: logger,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("site server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	listener, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpAddr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve runs the HTTP server on listener until the context ends.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if s == nil {
		return errors.New("site server is nil")
	}
	if listener == nil {
		return errors.New("listener is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Printf("site listening on %s", listener.Addr())
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close stops the HTTP server immediately.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	if err := s.httpServer.Close(); err != nil {
		s.logger.Printf("close http server: %v", err)
	}
}
