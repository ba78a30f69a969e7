// SPDX-License-Identifier: Apache-2.0

// Package server wires and runs the reference-store HTTP server, including
// startup, signal handling, and graceful shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-settings-sync/internal/config"
	myHTTP "github.com/MKhiriev/go-settings-sync/internal/handler/http"
	"github.com/MKhiriev/go-settings-sync/internal/logger"
)

const defaultShutdownTimeout = 10 * time.Second

// Server defines the lifecycle contract of the store server.
//
// Implementations are expected to block in [Server.RunServer] until shutdown
// is requested and to release resources in [Server.Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

type server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration

	logger *logger.Logger
}

// NewServer creates the store server listening on cfg.HTTPAddress with the
// handler's routes mounted.
func NewServer(handler *myHTTP.Handler, cfg config.ServerConfig, logger *logger.Logger) (Server, error) {
	if cfg.HTTPAddress == "" {
		return nil, errors.New("no listen address configured")
	}

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	logger.Info().Str("address", cfg.HTTPAddress).Msg("creating new server...")
	return &server{
		httpServer: &http.Server{
			Addr:    cfg.HTTPAddress,
			Handler: handler.Init(),
		},
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}, nil
}

// RunServer implements [Server]. It blocks until a termination signal
// arrives, then shuts down gracefully.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	idleConnectionsClosed := make(chan struct{})
	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error().Msgf("HTTP server ListenAndServe: %v", err)
		return
	}

	<-idleConnectionsClosed
}

// Shutdown implements [Server].
func (s *server) Shutdown() {
	s.logger.Info().Msg("HTTP server Shutdown")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error().Msgf("HTTP server Shutdown: %v", err)
	}
}
