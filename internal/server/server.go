// Package server exposes the depvis analysis over HTTP.
//
// Every request builds a fresh graph through a [pipeline.Runner]; nothing is
// cached between requests.
//
// # Routes
//
//	GET /healthz
//	GET /v1/packages/{name}/direct
//	GET /v1/packages/{name}/graph?depth=N&format=json|dot|tree
//	GET /v1/packages/{name}/cycles
//	GET /v1/packages/{name}/reverse
//
// Errors are JSON objects {"code": "...", "error": "..."}: invalid input is
// 400, an unknown package 404, a failing source or construction 502, and
// anything else 500.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// Server wraps an http.Server with start and graceful shutdown.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
}

// New creates a server listening on addr.
func New(addr string, handler http.Handler, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Run serves until ctx is done, then shuts down within the grace period.
func (s *Server) Run(ctx context.Context, grace time.Duration) error {
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("starting API server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	s.logger.Info("shutting down API server")
	return s.httpServer.Shutdown(shutdownCtx)
}
