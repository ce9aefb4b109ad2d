package delivery_grpc

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ports "blog-service/internal/domain/ports/output"
)

func UnaryLoggerInterceptor(log ports.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)

		attrs := []any{
			slog.String("method", info.FullMethod),
			slog.String("code", code.String()),
			slog.Duration("duration", time.Since(start)),
		}
		switch code {
		case codes.OK, codes.NotFound, codes.InvalidArgument, codes.Unimplemented:
			log.Info("gRPC request", attrs...)
		default:
			log.Error("gRPC request failed", append(attrs, slog.String("error", err.Error()))...)
		}
		return resp, err
	}
}

func UnaryMetricsInterceptor(metrics ports.MetricsProvider) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err).String()
		metrics.IncrementGRPCRequests(info.FullMethod, code)
		metrics.RecordGRPCRequestDuration(info.FullMethod, code, time.Since(start))
		return resp, err
	}
}
