// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"textconv/src/app/http/handler"
	"textconv/src/app/http/response"
	"textconv/src/app/middleware"
	"textconv/src/app/web"
	"textconv/src/core/ports"
	"textconv/src/core/usecase"
	"textconv/src/infra/config"
	"textconv/src/infra/logger"
	"textconv/src/infra/metrics"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg     *config.Config
	log     *slog.Logger
	router  *gin.Engine
	http    *http.Server
	metrics *metrics.Metrics

	// Handlers
	pageHandler    *handler.PageHandler
	convertHandler *handler.ConvertHandler
	healthHandler  *handler.HealthHandler
}

// New creates a new Server with all dependencies wired up.
// m may be nil, in which case no metrics are collected or exposed.
func New(cfg *config.Config, log *slog.Logger, m *metrics.Metrics) *Server {
	if cfg.Server.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router without default middleware
	router := gin.New()
	router.HandleMethodNotAllowed = true

	var recorder ports.ConversionRecorder = ports.NopRecorder{}
	if m != nil {
		recorder = m
	}

	// Create services
	convertService := usecase.NewConvertService(recorder, log)
	healthService := usecase.NewHealthService(log)
	healthService.Register("converter", convertService)

	s := &Server{
		cfg:            cfg,
		log:            logger.WithComponent(log, "http"),
		router:         router,
		metrics:        m,
		pageHandler:    handler.NewPageHandler(web.IndexHTML()),
		convertHandler: handler.NewConvertHandler(convertService),
		healthHandler:  handler.NewHealthHandler(healthService),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Order matters: Recovery should be first to catch all panics
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS())
	if s.metrics != nil {
		s.router.Use(middleware.Metrics(s.metrics))
	}
	s.router.Use(middleware.Logging(s.log))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.GET("/", s.pageHandler.Index)

	api := s.router.Group("/api")
	{
		api.POST("/convert", s.convertHandler.Convert)
	}

	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)

	if s.metrics != nil && s.cfg.Metrics.Enabled {
		s.router.GET(s.cfg.Metrics.Path, gin.WrapH(s.metrics.Handler()))
	}

	s.router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "The requested resource was not found", middleware.GetRequestID(c))
	})
	s.router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, response.Error{
			Error:     "Method not allowed",
			Code:      "METHOD_NOT_ALLOWED",
			RequestID: middleware.GetRequestID(c),
		})
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:              s.cfg.Server.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: s.cfg.Server.ReadTimeout.Std(),
		ReadTimeout:       s.cfg.Server.ReadTimeout.Std(),
		WriteTimeout:      s.cfg.Server.WriteTimeout.Std(),
	}
}

// Run starts the HTTP server and blocks until ctx is cancelled, SIGINT or
// SIGTERM arrives, or the listener fails. Shutdown is graceful.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Channel to receive server errors
	errCh := make(chan error, 1)

	go func() {
		s.log.Info("starting HTTP server",
			"addr", s.cfg.Server.Addr(),
			"debug", s.cfg.Server.Debug,
		)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.log.Info("received shutdown signal", "cause", context.Cause(ctx))
	case err := <-errCh:
		return err
	}

	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout.String())

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout.Std())
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// WaitForReady waits until the server is ready to accept connections.
// Useful for integration tests.
func (s *Server) WaitForReady(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	client := &http.Client{Timeout: 250 * time.Millisecond}
	for time.Now().Before(deadline) {
		resp, err := client.Get(fmt.Sprintf("http://%s/health", s.cfg.Server.Addr()))
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	return fmt.Errorf("server not ready after %v", timeout)
}
