package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/rental-blocklist/internal/config"
	"github.com/MKhiriev/rental-blocklist/internal/logger"
)

type httpServer struct {
	server   *http.Server
	listener net.Listener

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (*httpServer, error) {
	listener, err := net.Listen("tcp", cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", cfg.HTTPAddress, err)
	}

	return &httpServer{
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       2 * time.Minute,
		},
		listener: listener,
		logger:   logger,
	}, nil
}

func (h *httpServer) RunServer() error {
	h.logger.Info().Str("address", h.listener.Addr().String()).Msg("launching HTTP server")

	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server Serve: %w", err)
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	h.logger.Info().Msg("HTTP server Shutdown")

	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP server Shutdown: %w", err)
	}
	return nil
}
