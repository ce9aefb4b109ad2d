package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	post_service "blog-service/internal/application/service/post"
	ports "blog-service/internal/domain/ports/output"
	post_repository "blog-service/internal/domain/ports/output/post"
	"blog-service/internal/infrastructure/config"
	delivery_grpc "blog-service/internal/infrastructure/inbound/grpc"
	post_grpc "blog-service/internal/infrastructure/inbound/grpc/post"
	delivery_http "blog-service/internal/infrastructure/inbound/http"
	post_http "blog-service/internal/infrastructure/inbound/http/post"
	metrics_server "blog-service/internal/infrastructure/inbound/metrics"
	"blog-service/internal/infrastructure/logger"
	prometheus_metrics "blog-service/internal/infrastructure/outbound/metrics/prometheus"
	"blog-service/internal/infrastructure/outbound/repository/migrations"
	post_memory "blog-service/internal/infrastructure/outbound/repository/post/memory"
	post_postgres "blog-service/internal/infrastructure/outbound/repository/post/postgres"
	post_sqlite "blog-service/internal/infrastructure/outbound/repository/post/sqlite"
	"blog-service/internal/infrastructure/outbound/repository/postgres"
)

func main() {
	cfg := config.MustLoad()
	ctx := context.Background()
	log := logger.New(cfg.Env)

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()

	postRepo, closeRepo, err := openPostRepository(ctx, cfg.Database, log.With(slog.String("component", "repository")), metrics)
	if err != nil {
		log.Error("Failed to open post repository",
			slog.String("driver", cfg.Database.Driver),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeRepo()

	postService := post_service.NewPostService(postRepo, log.With(slog.String("component", "service")), metrics)

	httpLog := log.With(slog.String("component", "http"))
	httpServer, err := delivery_http.NewServer(post_http.NewPostHTTPAPI(postService, httpLog), cfg.HTTPServer.Address, cfg.HTTPServer.Port, httpLog, metrics)
	if err != nil {
		log.Error("Failed to create HTTP server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	grpcLog := log.With(slog.String("component", "grpc"))
	postGRPCApi := post_grpc.NewPostGRPCService(postService, grpcLog)
	grpcServer := delivery_grpc.NewServer(postGRPCApi, cfg.GRPCServer.Address, cfg.GRPCServer.Port, grpcLog, metrics)

	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log.With(slog.String("component", "metrics")))

	metrics.SetServiceHealth(true)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	httpDone := make(chan bool, 1)
	grpcDone := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		httpDone <- true
	}()

	go func() {
		if err := grpcServer.Run(); err != nil {
			log.Error("gRPC server error", slog.String("error", err.Error()))
		}
		grpcDone <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := grpcServer.Shutdown(); err != nil {
		log.Error("gRPC server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-httpDone
	<-grpcDone
	<-metricsDone

	log.Info("Server exited")
}

// openPostRepository builds the post store selected by database.driver.
// The returned func releases the underlying connection.
func openPostRepository(ctx context.Context, cfg config.Database, log *logger.Logger, metrics ports.MetricsProvider) (post_repository.Repository, func(), error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		if cfg.Migrate {
			if err := migrations.UpPostgres(cfg.DSN(), log); err != nil {
				return nil, nil, err
			}
		}
		pool, err := postgres.NewPool(ctx, cfg.DSN())
		if err != nil {
			return nil, nil, err
		}
		log.Info("Connected to postgres", slog.String("host", cfg.Host), slog.String("db", cfg.DbName))
		return post_postgres.NewPostRepository(pool, log, metrics), pool.Close, nil

	case config.DriverSQLite:
		if cfg.Migrate {
			if err := migrations.UpSQLite(cfg.SQLitePath, log); err != nil {
				return nil, nil, err
			}
		}
		db, err := post_sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Opened sqlite database", slog.String("path", cfg.SQLitePath))
		return post_sqlite.NewPostRepository(db, log, metrics), func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close sqlite database", slog.String("error", err.Error()))
			}
		}, nil

	case config.DriverMemory:
		log.Warn("Using in-memory post repository, data is not persisted")
		return post_memory.NewPostRepository(log), func() {}, nil
	}

	return nil, nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
}
