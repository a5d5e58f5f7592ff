package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"

	"github.com/MKhiriev/rental-blocklist/internal/config"
	myGRPC "github.com/MKhiriev/rental-blocklist/internal/handler/grpc"
	"github.com/MKhiriev/rental-blocklist/internal/logger"
)

// healthRefreshInterval is how often the gRPC health status is re-evaluated.
const healthRefreshInterval = 15 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer(grpc.UnaryInterceptor(handler.UnaryLogging))
	handler.Register(server)

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer() error {
	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("launching gRPC server")

	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// Shutdown waits for in-flight calls until ctx expires, then stops hard.
func (g *grpcServer) Shutdown(ctx context.Context) {
	g.logger.Info().Msg("gRPC server Shutdown")

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		g.server.Stop()
	}
}
