// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/go-parkour-client/internal/config"
	"github.com/MKhiriev/go-parkour-client/internal/handler"
	"github.com/MKhiriev/go-parkour-client/internal/logger"
)

type server struct {
	httpServer      *httpServer
	address         string
	shutdownTimeout time.Duration
	logger          *logger.Logger

	// addr receives the bound address once the listener is up.
	addr chan net.Addr
}

// NewServer builds the replay server around handlers.
func NewServer(handlers *handler.Handlers, cfg config.ReplayServerConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg.Address),
		address:         cfg.Address,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
		addr:            make(chan net.Addr, 1),
	}, nil
}

// RunServer implements [Server].
func (s *server) RunServer(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.address, err)
	}
	s.addr <- ln.Addr()
	s.logger.Info().Str("address", ln.Addr().String()).Msg("Launching HTTP server")

	served := make(chan error, 1)
	go func() {
		served <- s.httpServer.serve(ln)
	}()

	select {
	case err = <-served:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err = s.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err = <-served; err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

// Shutdown implements [Server].
func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.shutdown(ctx)
}
