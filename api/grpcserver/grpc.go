package grpcserver

import (
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	pb "coffee/api/pb"
)

// NewGRPCServer builds a gRPC server exposing the coffee service and the
// standard health service. The coffee service starts SERVING; callers
// flip it with health.Server.Shutdown when draining.
func NewGRPCServer(srv *Server, log *zap.Logger, opts ...grpc.ServerOption) (*grpc.Server, *health.Server) {
	opts = append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(UnaryInterceptor(log)),
	}, opts...)

	gs := grpc.NewServer(opts...)
	pb.RegisterCoffeeServiceServer(gs, srv)

	hs := health.NewServer()
	hs.SetServingStatus(pb.CoffeeService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(gs, hs)

	return gs, hs
}
