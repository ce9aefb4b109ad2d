package delivery_grpc

import (
	"fmt"
	"log/slog"
	"net"

	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	pb "github.com/soloda1/pinstack-proto-definitions/gen/go/pinstack-proto-definitions/post/v1"
	"google.golang.org/grpc"

	ports "blog-service/internal/domain/ports/output"
	post_grpc "blog-service/internal/infrastructure/inbound/grpc/post"
)

type Server struct {
	postGRPCService *post_grpc.PostGRPCService
	server          *grpc.Server
	address         string
	port            int
	log             ports.Logger
	metrics         ports.MetricsProvider
}

func NewServer(grpcServer *post_grpc.PostGRPCService, address string, port int, log ports.Logger, metrics ports.MetricsProvider) *Server {
	s := &Server{
		postGRPCService: grpcServer,
		address:         address,
		port:            port,
		log:             log,
		metrics:         metrics,
	}

	s.server = grpc.NewServer(
		grpc.UnaryInterceptor(grpc_middleware.ChainUnaryServer(
			UnaryMetricsInterceptor(s.metrics),
			UnaryLoggerInterceptor(s.log),
			grpc_recovery.UnaryServerInterceptor(),
		)),
	)
	pb.RegisterPostServiceServer(s.server, s.postGRPCService)

	return s
}

func (s *Server) Run() error {
	address := fmt.Sprintf("%s:%d", s.address, s.port)
	lis, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	return s.Serve(lis)
}

// Serve accepts connections on lis until Shutdown is called.
func (s *Server) Serve(lis net.Listener) error {
	s.log.Info("Starting gRPC server", slog.String("address", lis.Addr().String()))
	return s.server.Serve(lis)
}

func (s *Server) Shutdown() error {
	s.server.GracefulStop()
	return nil
}
