package server

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/pathkit/internal/config"
	"github.com/GriffinCanCode/pathkit/internal/logging"
	"github.com/GriffinCanCode/pathkit/internal/middleware"
	"github.com/GriffinCanCode/pathkit/internal/monitoring"
	"github.com/GriffinCanCode/pathkit/internal/providers"
	"github.com/GriffinCanCode/pathkit/internal/service"
	"github.com/GriffinCanCode/pathkit/internal/storage"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router     *gin.Engine
	registry   *service.Registry
	logger     *logging.Logger
	config     *config.Config
	metrics    *monitoring.Metrics
	instanceID string
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	// Initialize logger
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	instanceID := uuid.NewString()

	logger.Info("Initializing pathname server",
		zap.String("port", cfg.Server.Port),
		zap.String("base_dir", cfg.Storage.BaseDir),
		zap.String("instance", instanceID),
	)

	// Initialize metrics first (needed by middleware)
	metrics := monitoring.NewMetrics()

	// Initialize storage backend and service registry
	store := storage.NewLocal()
	registry := service.NewRegistry()

	fsProvider := providers.NewFilesystem(store, cfg.Storage.BaseDir, logger).WithMetrics(metrics)
	if err := registry.Register(fsProvider); err != nil {
		return nil, err
	}
	logger.Info("Registered pathname provider",
		zap.Int("tools", len(fsProvider.Definition().Tools)))

	// Create router
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	router.Use(middleware.RequestID())
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	srv := &Server{
		router:     router,
		registry:   registry,
		logger:     logger,
		config:     cfg,
		metrics:    metrics,
		instanceID: instanceID,
	}

	handlers := newHandlers(registry, metrics, instanceID)

	// Register routes
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Service management
	router.GET("/services", handlers.ListServices)
	router.POST("/services/execute", handlers.ExecuteService)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{})))

	logger.Info("Server initialized successfully")

	return srv, nil
}

// Run starts the HTTP server
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Router exposes the underlying router. Used in tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Close gracefully shuts down the server
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")
	s.metrics.Close()
	s.logger.Sync()
	return nil
}
