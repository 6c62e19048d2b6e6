package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DivyKalyani05/SPF-prediction-draft-2/internal/config"
	"github.com/DivyKalyani05/SPF-prediction-draft-2/internal/ozone"
	"github.com/DivyKalyani05/SPF-prediction-draft-2/internal/server/handlers"
	"github.com/DivyKalyani05/SPF-prediction-draft-2/internal/server/middlewares"
	"github.com/DivyKalyani05/SPF-prediction-draft-2/internal/simulator"
	"github.com/DivyKalyani05/SPF-prediction-draft-2/pkg/telemetry"
)

type Server struct {
	engine  *gin.Engine
	server  *http.Server
	sim     *simulator.Simulator
	metrics *handlers.MetricsHandler
	logger  *zap.Logger
	tele    *telemetry.Telemetry
}

var (
	instance *Server
	once     sync.Once
)

func NewServer(logger *zap.Logger, tele *telemetry.Telemetry) *Server {
	once.Do(func() {
		cfg := config.GetConfig()

		var provider simulator.OzoneProvider
		if cfg.Ozone.Enabled {
			provider = ozone.NewClientWithConfig(cfg.Ozone, logger, tele)
			logger.Info("Registered live ozone provider", zap.String("base_url", cfg.Ozone.BaseURL))
		} else {
			logger.Info("Live ozone lookup disabled, manual values only")
		}

		sim := simulator.NewSimulator(cfg, provider, logger, tele)

		metricsHandler := handlers.NewMetricsHandler(logger)
		sim.SetMetricsRecorder(metricsHandler)

		gin.SetMode(gin.ReleaseMode)
		engine := gin.New()

		engine.Use(middlewares.RequestIDMiddleware())
		engine.Use(middlewares.LoggingMiddleware(logger, true))
		engine.Use(middlewares.RecoveryMiddleware(logger, true))
		engine.Use(middlewares.TelemetryMiddleware(tele))
		engine.Use(middlewares.NewMetricsMiddleware(logger).Handler())

		instance = &Server{
			engine:  engine,
			sim:     sim,
			metrics: metricsHandler,
			logger:  logger,
			tele:    tele,
		}

		instance.setupRoutes(cfg, provider)
	})

	return instance
}

func (s *Server) setupRoutes(cfg *config.Config, provider simulator.OzoneProvider) {
	// Business endpoints
	simulateHandler := handlers.NewSimulateHandler(s.sim, s.logger)
	s.engine.GET("/simulate", simulateHandler.Simulate)
	s.engine.GET("/simulate/export", simulateHandler.ExportCurve)
	s.engine.GET("/ozone", handlers.NewOzoneHandler(provider, s.metrics, s.logger).GetOzone)

	// Health endpoints (Kubernetes friendly)
	healthHandler := handlers.NewHealthHandler(cfg.Version, s.logger)
	s.engine.GET("/health", healthHandler.Health)
	s.engine.GET("/health/live", healthHandler.Liveness)
	s.engine.GET("/health/ready", healthHandler.Readiness)

	// Monitoring endpoints
	s.engine.GET("/metrics", s.metrics.ServeMetrics)
}

func (s *Server) Start() error {
	cfg := config.GetConfig()

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	s.logger.Info("Starting server", zap.String("addr", s.server.Addr))
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}
