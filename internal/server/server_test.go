package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/rental-blocklist/internal/config"
	"github.com/MKhiriev/rental-blocklist/internal/handler"
	"github.com/MKhiriev/rental-blocklist/internal/logger"
	"github.com/MKhiriev/rental-blocklist/internal/metrics"
	"github.com/MKhiriev/rental-blocklist/internal/service"
	"github.com/MKhiriev/rental-blocklist/internal/store"
)

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()

	registry := prometheus.NewRegistry()
	services, err := service.NewServices(store.NewMemoryStorages(), config.StructuredConfig{
		App: config.App{TokenSignKey: "k", TokenIssuer: "test", TokenDuration: time.Hour, Version: "9.9.9"},
	}, metrics.New(registry), logger.Nop())
	require.NoError(t, err)

	handlers, err := handler.NewHandlers(services, cfg, registry, logger.Nop())
	require.NoError(t, err)
	return handlers
}

func TestServer_ServesUntilCancelled(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}
	srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	address := srv.(*server).httpServer.listener.Addr().String()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	resp, err := http.Get("http://" + address + "/api/version")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "9.9.9", string(body))

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestNewServer_NoAddresses(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_AddressInUse(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}
	first, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)
	listener := first.(*server).httpServer.listener
	defer listener.Close()

	taken := config.Server{HTTPAddress: listener.Addr().String()}
	_, err = NewServer(newTestHandlers(t, taken), taken, logger.Nop())
	assert.Error(t, err)
}
