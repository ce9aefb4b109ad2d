package delivery_http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	ports "blog-service/internal/domain/ports/output"
	post_http "blog-service/internal/infrastructure/inbound/http/post"
)

type Server struct {
	echo    *echo.Echo
	address string
	port    int
	log     ports.Logger
}

func NewServer(api *post_http.PostHTTPAPI, address string, port int, log ports.Logger, metrics ports.MetricsProvider) (*Server, error) {
	renderer, err := NewTemplateRenderer()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	e.Use(requestMetrics(metrics))
	e.Use(requestLogger(log))
	e.Use(middleware.Recover())

	registerRoutes(e, api)

	return &Server{
		echo:    e,
		address: address,
		port:    port,
		log:     log,
	}, nil
}

// Handler exposes the routed echo instance.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Run() error {
	address := fmt.Sprintf("%s:%d", s.address, s.port)
	s.log.Info("Starting HTTP server", slog.Int("port", s.port))
	if err := s.echo.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
