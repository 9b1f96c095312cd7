package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/argo-float-service/internal/config"
	"github.com/argo-float-service/internal/delivery/http/handler"
	"github.com/argo-float-service/internal/delivery/http/middleware"
	"github.com/argo-float-service/internal/domain/repository"
	"github.com/argo-float-service/internal/pkg/errors"
	"github.com/argo-float-service/internal/pkg/metrics"
	"github.com/argo-float-service/internal/pkg/utils"
)

// healthTimeout - сколько ждём ответа хранилища в /health
const healthTimeout = 5 * time.Second

// Handlers - обработчики API
type Handlers struct {
	Float   *handler.FloatHandler
	Profile *handler.ProfileHandler
	Stats   *handler.StatsHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app     *fiber.App
	config  *config.Config
	logger  *zap.Logger
	metrics *metrics.Provider
	health  repository.HealthChecker

	handlers Handlers
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	m *metrics.Provider,
	health repository.HealthChecker,
	handlers Handlers,
) *Server {
	app := fiber.New(fiber.Config{
		AppName: "ARGO Float Search",
		// запросы к хранилищу ограничены WAREHOUSE_TIMEOUT_MS, запас на сериализацию
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.Warehouse.Timeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		metrics:  m,
		health:   health,
		handlers: handlers,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App возвращает fiber.App (используется в тестах)
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger, s.metrics))
	s.app.Use(middleware.CORS(s.config.CORSOrigins()))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Prometheus
	if s.metrics != nil {
		s.app.Get("/metrics", adaptor.HTTPHandler(s.metrics.Handler()))
	}

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", s.healthCheck)

	// Floats
	api.Get("/floats", s.handlers.Float.Search)
	api.Get("/floats/nearest", s.handlers.Float.Nearest)
	api.Get("/floats/:id/profile", s.handlers.Float.Profile)
	api.Get("/floats/:id/timeseries", s.handlers.Float.TimeSeries)
	api.Get("/floats/:id/trajectory", s.handlers.Float.Trajectory)

	// Profiles
	api.Get("/profiles", s.handlers.Profile.List)
	api.Get("/profiles/:id/measurements", s.handlers.Profile.Measurements)

	// Statistics
	api.Get("/compare/regions", s.handlers.Stats.CompareRegions)
	api.Get("/quality-control-stats", s.handlers.Stats.QualityControl)
	api.Get("/stats", s.handlers.Stats.GetStatistics)
}

// healthCheck godoc
// @Summary Проверка состояния
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (s *Server) healthCheck(c *fiber.Ctx) error {
	status := fiber.Map{
		"status":    "healthy",
		"warehouse": s.config.Warehouse.Driver,
		"time":      time.Now(),
	}

	if s.health != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()

		if err := s.health.Health(ctx); err != nil {
			s.logger.Warn("Warehouse health check failed", zap.Error(err))
			status["status"] = "unhealthy"
			status["error"] = "warehouse unavailable"
			return c.Status(fiber.StatusServiceUnavailable).JSON(status)
		}
	}

	return c.JSON(status)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки fiber (404 маршрута, 405 и т.п.) в формате {error}
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		appErr := errors.ErrInternalServer

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			appErr = errors.New("HTTP_ERROR", e.Message, e.Code)
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(utils.ErrorResponse{Error: appErr})
	}
}
