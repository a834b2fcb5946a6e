package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"taxi-fleet-service/internal/config"
	"taxi-fleet-service/internal/db"
	authHandler "taxi-fleet-service/internal/handlers/auth"
	carHandler "taxi-fleet-service/internal/handlers/car"
	driverHandler "taxi-fleet-service/internal/handlers/driver"
	manufacturerHandler "taxi-fleet-service/internal/handlers/manufacturer"
	"taxi-fleet-service/internal/middleware"
	"taxi-fleet-service/internal/pkg/jwt"
	"taxi-fleet-service/internal/pkg/session"
	"taxi-fleet-service/internal/repository/postgres"
	authService "taxi-fleet-service/internal/service/auth"
	carService "taxi-fleet-service/internal/service/car"
	driverService "taxi-fleet-service/internal/service/driver"
	manufacturerService "taxi-fleet-service/internal/service/manufacturer"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger

	httpServer *http.Server
	pool       *pgxpool.Pool
	redis      *redis.Client
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

// Init connects the backing stores and wires every dependency explicitly.
// It must complete before Start so that Shutdown never observes a
// half-initialized server.
func (s *Server) Init(ctx context.Context) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	s.logger = logger

	// ----- PostgreSQL -----
	pool, err := db.ConnectDB(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	s.pool = pool

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       0,
		PoolSize: 10,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	s.redis = redisClient

	// ----- Auth plumbing -----
	jwtManager := jwt.NewManager(s.cfg.JWT)
	sessionManager := session.NewManager(redisClient)

	// ----- Repositories -----
	dbWrapper := postgres.NewDB(pool)
	manufacturerRepo := postgres.NewManufacturerRepository(pool)
	driverRepo := postgres.NewDriverRepository(pool)
	carRepo := postgres.NewCarRepository(pool, dbWrapper)

	// ----- Services -----
	manufacturerSvc := manufacturerService.NewService(manufacturerRepo, logger)
	driverSvc := driverService.NewService(driverRepo, logger)
	carSvc := carService.NewService(carRepo, manufacturerRepo, driverRepo, logger)
	authSvc := authService.NewService(driverRepo, jwtManager, sessionManager, logger)

	// ----- Handlers -----
	handlers := &Handlers{
		Auth:         authHandler.NewAuthHandler(authSvc, logger),
		Manufacturer: manufacturerHandler.NewManufacturerHandler(manufacturerSvc),
		Driver:       driverHandler.NewDriverHandler(driverSvc, carSvc),
		Car:          carHandler.NewCarHandler(carSvc),
	}

	// ----- Middlewares -----
	authMiddleware := middleware.NewAuthMiddleware(authSvc)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
	)

	s.registerRoutes(handlers, authMiddleware)

	s.httpServer = &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}

	return nil
}

// Start serves HTTP until Shutdown. Init must have succeeded first.
func (s *Server) Start() error {
	s.logger.Info("server starting", zap.String("addr", s.cfg.HTTPAddr))

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}

	return nil
}

// Shutdown stops the HTTP server and closes the backing stores.
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var err error
	if s.httpServer != nil {
		err = s.httpServer.Shutdown(shutdownCtx)
	}
	if s.pool != nil {
		s.pool.Close()
	}
	if s.redis != nil {
		s.redis.Close()
	}
	if s.logger != nil {
		s.logger.Sync()
	}

	return err
}
