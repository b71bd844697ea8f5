package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/concordlib/concord/internal/core/app"
)

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 120 * time.Second
)

// Server receives ingested message payloads over HTTP and runs them through
// the reconciliation pipeline.
type Server struct {
	server *http.Server
	app    *app.App
	logger *zap.Logger
}

// NewServer creates a new ingest server.
func NewServer(addr string, appInstance *app.App, logger *zap.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		server: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
		app:    appInstance,
		logger: logger,
	}

	mux.HandleFunc("/ingest/message", s.handleIngestMessage)

	return s
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.logger.Info("starting ingest server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
