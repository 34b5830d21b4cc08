package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/go-user-gateway/internal/config"
	myGRPC "github.com/MKhiriev/go-user-gateway/internal/handler/grpc"
	"github.com/MKhiriev/go-user-gateway/internal/logger"

	"google.golang.org/grpc"
)

// healthProbeInterval is how often the storage is pinged for the gRPC
// health status.
const healthProbeInterval = 10 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	lis, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on gRPC address %q: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: lis,
		logger:          logger,
	}, nil
}

func (g *grpcServer) serve() error {
	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("Launching GRPC server")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// watchHealth keeps the health status current until ctx is done.
func (g *grpcServer) watchHealth(ctx context.Context) {
	g.handler.Watch(ctx, healthProbeInterval)
}

// shutdown reports NOT_SERVING first so that balancers drain the instance,
// then stops accepting RPCs.
func (g *grpcServer) shutdown(ctx context.Context) {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.handler.Shutdown()

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
