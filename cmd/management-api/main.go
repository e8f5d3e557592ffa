package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/olenagerasimova/management-api/internal/config"
	"github.com/olenagerasimova/management-api/internal/domain"
	"github.com/olenagerasimova/management-api/internal/handler"
	authMiddleware "github.com/olenagerasimova/management-api/internal/handler/middleware"
	"github.com/olenagerasimova/management-api/internal/infrastructure"
	"github.com/olenagerasimova/management-api/internal/infrastructure/crypto"
	"github.com/olenagerasimova/management-api/internal/infrastructure/logging"
	"github.com/olenagerasimova/management-api/internal/infrastructure/memory"
	"github.com/olenagerasimova/management-api/internal/infrastructure/postgres"
	"github.com/olenagerasimova/management-api/internal/infrastructure/redis"
	"github.com/olenagerasimova/management-api/internal/infrastructure/s3"
	"github.com/olenagerasimova/management-api/internal/usecase"
)

const (
	readTimeout  = 30 * time.Second
	writeTimeout = 30 * time.Second
	idleTimeout  = 120 * time.Second
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       slog.LevelInfo,
		ReplaceAttr: logging.MaskSensitiveAttrs,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var store domain.RepoPermissions
	var checkers []usecase.HealthChecker

	switch cfg.Storage.Backend {
	case config.StorageBackendPostgres:
		pool, err := postgres.NewPostgresConnection(postgres.PostgresConfig{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			Database: cfg.Database.DBName,
			SSLMode:  cfg.Database.SSLMode,
		})
		if err != nil {
			return err
		}
		defer pool.Close()
		slog.Info("PostgreSQL connection established")

		store = postgres.NewRepoPermissionsRepository(pool)
		checkers = append(checkers, postgres.NewPostgresHealthChecker(pool))

	case config.StorageBackendS3:
		s3Conn, err := s3.NewS3Connection(s3.S3Config{
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			Region:          cfg.S3.Region,
		})
		if err != nil {
			return err
		}
		s3Client := s3.NewS3Client(s3Conn, cfg.S3.BucketName)
		slog.Info("S3 connection established")

		store = s3.NewRepoPermissionsRepository(s3Client)
		checkers = append(checkers, s3.NewS3HealthChecker(s3Client))

	case config.StorageBackendMemory:
		store = memory.NewRepoPermissions()
		slog.Info("using in-memory permission store")

	default:
		return fmt.Errorf("未知のストレージバックエンドです: %s", cfg.Storage.Backend)
	}

	if cfg.Redis.Enabled {
		redisConn, err := redis.NewRedisConnection(redis.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer func() { _ = redisConn.Close() }()
		redisClient := redis.NewRedisClient(redisConn)
		slog.Info("Redis connection established")

		store = infrastructure.NewCachingRepoPermissions(store, redisClient)
		checkers = append(checkers, redis.NewRedisHealthChecker(redisClient))
	}

	repoPermissionsUC := usecase.NewRepoPermissionsUseCase(store)

	sessionDecoder := crypto.NewSessionDecoder(cfg.Auth.SessionKeyPath)
	cookiesUC := usecase.NewCookiesUseCase(sessionDecoder)
	if cfg.Auth.SessionKeyPath == "" {
		slog.Info("session key not configured, cookie sessions disabled")
	}

	tokenKeyPath := ""
	if cfg.Auth.BearerEnabled {
		tokenKeyPath = cfg.Auth.SessionKeyPath
	}
	tokenVerifier := crypto.NewTokenVerifier(tokenKeyPath)

	readinessUC := usecase.NewReadinessUseCase(checkers...)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = authMiddleware.CustomHTTPErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", authMiddleware.MaskSensitiveParams(v.URI)),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				slog.LogAttrs(c.Request().Context(), slog.LevelError, "REQUEST", attrs...)
			} else {
				slog.LogAttrs(c.Request().Context(), slog.LevelInfo, "REQUEST", attrs...)
			}
			return nil
		},
	}))

	e.GET("/healthz", handler.HealthHandler)

	readyzHandler := handler.NewReadyzHandler(readinessUC)
	e.GET("/readyz", readyzHandler.Handle)

	permissionsHandler := handler.NewPermissionsHandler(repoPermissionsUC)
	usersHandler := handler.NewUsersHandler(repoPermissionsUC)
	authDispatcher := authMiddleware.AuthDispatcher(tokenVerifier, cookiesUC)

	apiGroup := e.Group("/api")
	apiGroup.Use(authDispatcher)
	apiGroup.GET("/repositories", permissionsHandler.HandleListRepositories)
	apiGroup.GET("/repositories/:repo/permissions", permissionsHandler.HandleGetPermissions)
	apiGroup.GET("/repositories/:repo/patterns", permissionsHandler.HandleGetPatterns)
	apiGroup.PUT("/repositories/:repo/permissions", permissionsHandler.HandleUpdatePermissions)
	apiGroup.DELETE("/repositories/:repo/permissions", permissionsHandler.HandleRemovePermissions)

	usersGroup := apiGroup.Group("/users")
	usersGroup.Use(authMiddleware.SelfAccessOnly())
	usersGroup.GET("/:name", usersHandler.HandleListUserRepositories)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("starting server", "port", cfg.Server.Port)
		if err := e.StartServer(server); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		slog.Info("received shutdown signal")
	case err := <-errChan:
		if err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	slog.Info("shutting down server")
	if err := e.Shutdown(ctx); err != nil {
		return err
	}

	slog.Info("server stopped gracefully")
	return nil
}
