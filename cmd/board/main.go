package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"adboard/internal/board/adapters/cache"
	boardhttp "adboard/internal/board/adapters/http"
	"adboard/internal/board/adapters/postgres"
	"adboard/internal/board/adapters/services"
	"adboard/internal/board/app"
	"adboard/internal/board/config"
	"adboard/internal/board/db"
	portservices "adboard/internal/board/ports/services"
	"adboard/pkg/logger"
	"adboard/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "BOARD_LOGGER_MODE"
	EnvLoggerLevel = "BOARD_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDatabase         = "failed to initialize database"
	ErrCreateRedisClient    = "failed to create Redis client"
	ErrStartHTTPServer      = "failed to start HTTP server"
	ErrShutdown             = "graceful shutdown finished with errors"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "board service started"
	LogServiceShutdownDone = "board service shutdown complete"
	LogInitDatabase        = "initializing database"
	LogInitCache           = "initializing cache"
	LogCacheDisabled       = "cache disabled, serving reads from store"
	LogInitServices        = "initializing services"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
	LogStoppingHTTP        = "stopping HTTP server"
	LogClosingCache        = "closing cache"
	LogClosingDatabase     = "closing database"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), logger.GenerateRequestID())

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitDatabase)
		database, err := db.New(ctx, &cfg.Postgres)
		if err != nil {
			log.Error(ctx, ErrInitDatabase, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitCache)
		readCache, err := newCache(ctx, cfg)
		if err != nil {
			log.Error(ctx, ErrCreateRedisClient, zap.Error(err))
			database.Close(ctx)
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitServices)
		factory := services.NewServiceFactory(cfg.Password.BCryptCost)
		uow := postgres.NewUnitOfWork(database)
		userService := app.NewUserUseCase(uow, factory.Validator(), readCache)
		advService := app.NewAdvertisementUseCase(uow, factory.Validator(), readCache)

		log.Info(ctx, LogInitHTTPServer)
		server := boardhttp.NewApp(&cfg.HTTP)
		boardhttp.SetupRouter(server, userService, advService)

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		listen := func() error {
			return server.Listen(cfg.HTTP.GetAddress(), fiber.ListenConfig{DisableStartupMessage: true})
		}

		// Сначала HTTP, затем кэш и пул.
		err = shutdown.Serve(ctx, listen, cfg.Shutdown.GetTimeout(),
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				httpErr := server.ShutdownWithContext(ctx)

				log.Info(ctx, LogClosingCache)
				cacheErr := readCache.Close()

				log.Info(ctx, LogClosingDatabase)
				database.Close(ctx)

				return errors.Join(httpErr, cacheErr)
			},
		)
		switch {
		case errors.Is(err, shutdown.ErrServeFailed):
			log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			exitCode = 1
		case err != nil:
			log.Error(ctx, ErrShutdown, zap.Error(err))
			exitCode = 1
		}

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

func newCache(ctx context.Context, cfg *config.Config) (portservices.Cache, error) {
	if !cfg.Cache.Enabled {
		logger.Log(ctx).Info(ctx, LogCacheDisabled)
		return cache.NewNoop(), nil
	}
	return cache.NewRedisCache(ctx, &cfg.Redis)
}
