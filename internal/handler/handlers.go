package handler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/rental-blocklist/internal/config"
	"github.com/MKhiriev/rental-blocklist/internal/handler/grpc"
	"github.com/MKhiriev/rental-blocklist/internal/handler/http"
	"github.com/MKhiriev/rental-blocklist/internal/logger"
	"github.com/MKhiriev/rental-blocklist/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds a transport handler for every configured address.
// gatherer backs the metrics endpoint of the HTTP handler.
func NewHandlers(services *service.Services, cfg config.Server, gatherer prometheus.Gatherer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, http.Options{
			Gatherer:       gatherer,
			MetricsPath:    cfg.MetricsPath,
			RequestTimeout: cfg.RequestTimeout,
		}, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
