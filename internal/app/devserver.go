package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/Areeb006/FAJR/internal/api/apitest"
)

// DevServer serves the in-memory storefront API for local use.
type DevServer struct {
	logger     *slog.Logger
	backend    *apitest.Backend
	httpServer *http.Server
}

// NewDevServer creates a demo API server on addr.
func NewDevServer(addr string, logger *slog.Logger) *DevServer {
	backend := apitest.NewBackend(logger)
	return &DevServer{
		logger:  logger,
		backend: backend,
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      backend,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Backend exposes the server state for seeding.
func (s *DevServer) Backend() *apitest.Backend { return s.backend }

// Run starts the HTTP server and blocks until the context is canceled.
func (s *DevServer) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *DevServer) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("starting demo API server",
			slog.String("addr", ln.Addr().String()),
		)
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *DevServer) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	s.logger.Info("demo API server stopped")
	return nil
}
