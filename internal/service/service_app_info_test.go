package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/rental-blocklist/internal/config"
	"github.com/MKhiriev/rental-blocklist/internal/logger"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: ""}, nil, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	version := "v1.2.3-beta+build.42"
	svc, err := NewAppInfoService(config.App{Version: version}, nil, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, version, svc.GetAppVersion(context.Background()))
}

func TestHealth(t *testing.T) {
	down := errors.New("connection refused")

	tests := []struct {
		name    string
		pinger  Pinger
		wantErr error
	}{
		{name: "no dependencies", pinger: nil},
		{name: "healthy", pinger: pingerFunc(func(context.Context) error { return nil })},
		{name: "database down", pinger: pingerFunc(func(context.Context) error { return down }), wantErr: down},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, tt.pinger, logger.Nop())
			require.NoError(t, err)

			err = svc.Health(context.Background())
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrUnhealthy)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
