package http

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/rental-blocklist/internal/logger"
	"github.com/MKhiriev/rental-blocklist/internal/service"
)

type Handler struct {
	services *service.Services
	gatherer prometheus.Gatherer

	requestTimeout time.Duration
	metricsPath    string

	logger *logger.Logger
}

// Options tune the routes built by Handler.Init.
type Options struct {
	// Gatherer is exposed on MetricsPath. Nil disables the endpoint.
	Gatherer prometheus.Gatherer

	// MetricsPath defaults to "/metrics".
	MetricsPath string

	// RequestTimeout bounds every /api request. Zero means no timeout.
	RequestTimeout time.Duration
}

func NewHandler(services *service.Services, opts Options, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	if opts.MetricsPath == "" {
		opts.MetricsPath = "/metrics"
	}

	return &Handler{
		services:       services,
		gatherer:       opts.Gatherer,
		requestTimeout: opts.RequestTimeout,
		metricsPath:    opts.MetricsPath,
		logger:         logger,
	}
}
