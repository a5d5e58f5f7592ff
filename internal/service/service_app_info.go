package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/rental-blocklist/internal/config"
	"github.com/MKhiriev/rental-blocklist/internal/logger"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// appInfoService answers the operational endpoints: version and health.
type appInfoService struct {
	appVersion string
	pinger     Pinger

	logger *logger.Logger
}

// NewAppInfoService requires a version. A nil pinger makes Health always
// succeed.
func NewAppInfoService(cfg config.App, pinger Pinger, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		pinger:     pinger,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Health(ctx context.Context) error {
	if s.pinger == nil {
		return nil
	}
	if err := s.pinger.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("health check failed")
		return fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}

	return nil
}
