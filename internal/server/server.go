package server

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/rental-blocklist/internal/config"
	"github.com/MKhiriev/rental-blocklist/internal/handler"
	"github.com/MKhiriev/rental-blocklist/internal/logger"
)

// shutdownTimeout bounds the graceful shutdown of all transports.
const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer binds the listeners of every configured transport. Binding
// happens here so address errors surface before anything is served.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	var err error
	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		if servers.httpServer, err = newHTTPServer(handlers.HTTP.Init(), cfg, logger); err != nil {
			return nil, err
		}
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		if servers.gRPCServer, err = newGRPCServer(handlers.GRPC, cfg, logger); err != nil {
			if servers.httpServer != nil {
				servers.httpServer.listener.Close()
			}
			return nil, err
		}
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	if s.httpServer != nil {
		g.Go(s.httpServer.RunServer)
	}
	if s.gRPCServer != nil {
		g.Go(s.gRPCServer.RunServer)
		g.Go(func() error {
			s.gRPCServer.handler.Watch(ctx, healthRefreshInterval)
			return nil
		})
	}

	// stop on cancellation or when one transport failed
	g.Go(func() error {
		<-ctx.Done()
		return s.shutdown()
	})

	err := g.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}

func (s *server) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var err error
	if s.httpServer != nil {
		err = s.httpServer.Shutdown(ctx)
	}
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown(ctx)
	}

	return err
}
