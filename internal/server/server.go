// Package server exposes the shim's HTTP surface to the dialer: one
// endpoint to log a call, two read endpoints, plus health and metrics.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"clipbook-dialer/internal/common/config"
	"clipbook-dialer/internal/common/logger"
	"clipbook-dialer/internal/dialer/calls"
)

// CallService is what the HTTP layer needs from the calls service.
type CallService interface {
	LogCall(ctx context.Context, event *calls.CallEvent) (*calls.LogCallResult, error)
	GetLastCallForPhone(ctx context.Context, rawPhone string) (*calls.LastCall, error)
	ListCallLog(ctx context.Context) ([]calls.LogEntry, error)
}

type Server struct {
	engine            *gin.Engine
	service           CallService
	logger            logger.Logger
	addr              string
	hubspotConfigured bool
}

func New(cfg *config.Config, service CallService, log logger.Logger) *Server {
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		engine:            gin.New(),
		service:           service,
		logger:            log,
		addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		hubspotConfigured: cfg.HubSpot.Configured(),
	}

	s.engine.Use(gin.Recovery())
	s.engine.Use(requestID())
	s.engine.Use(cors())
	s.engine.Use(requestLogger(log))

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")
	{
		api.POST("/log-call", s.handleLogCall)
		api.GET("/call-status", s.handleCallStatus)
		api.GET("/call-log", s.handleCallLog)
	}

	s.engine.GET("/health", s.handleHealth)
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Run blocks serving HTTP until the context is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", map[string]interface{}{"addr": s.addr})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}
