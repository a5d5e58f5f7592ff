// Package grpc exposes the standard gRPC health checking protocol
// (grpc.health.v1) for the blocklist service, so orchestrators can probe
// the same database and cache checks as GET /healthz.
package grpc

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/rental-blocklist/internal/logger"
	"github.com/MKhiriev/rental-blocklist/internal/service"
	"github.com/MKhiriev/rental-blocklist/internal/utils"
)

// ServiceName is the health service name reported next to the overall
// ("") status.
const ServiceName = "blocklist.v1.Blocklist"

// Handler is the root gRPC transport handler.
//
// It owns a [health.Server] whose status follows [service.AppInfoService.Health].
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Refresh runs the health check once and publishes the result.
func (h *Handler) Refresh(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING
	if err := h.services.AppInfoService.Health(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("health check failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.setStatus(status)
}

// Watch refreshes the health status every interval until ctx is done, then
// marks the service as shutting down.
func (h *Handler) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		h.Refresh(ctx)

		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return
		case <-ticker.C:
		}
	}
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}

// UnaryLogging attaches a trace-scoped logger to the context of every unary
// call and logs its outcome.
func (h *Handler) UnaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", utils.NewTraceID())
	})
	ctx = l.WithContext(ctx)

	resp, err := next(ctx, req)

	event := l.Debug()
	if err != nil {
		event = l.Warn().Err(err)
	}
	event.Str("method", info.FullMethod).Dur("duration", time.Since(start)).Send()

	return resp, err
}
