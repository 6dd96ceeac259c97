// Package config содержит конфигурацию сервиса доски объявлений.
package config

import (
	"context"
	"os"

	"go.uber.org/zap"

	"adboard/pkg/config"
	"adboard/pkg/logger"
)

const (
	// ServiceName - имя сервиса в логах.
	ServiceName = "board"
	// EnvConfigFile задает путь к dotenv-файлу конфигурации.
	EnvConfigFile = "BOARD_CONFIG_FILE"
	// DefaultConfigFile используется, если EnvConfigFile не задан.
	DefaultConfigFile = "deploy/.env"
)

// Config представляет полную конфигурацию сервиса.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Postgres PostgresConfig `yaml:"postgres"`
	Password PasswordConfig `yaml:"password"`
	Cache    CacheConfig    `yaml:"cache"`
	Redis    RedisConfig    `yaml:"redis"`
	Logging  LoggingConfig  `yaml:"logging"`
	Shutdown ShutdownConfig `yaml:"shutdown"`
}

// Load загружает конфигурацию из файла EnvConfigFile и окружения.
func Load(ctx context.Context) (*Config, error) {
	path, ok := os.LookupEnv(EnvConfigFile)
	if !ok {
		path = DefaultConfigFile
	}

	cfg, err := config.Load[Config](ctx, ServiceName, path)
	if err != nil {
		return nil, err
	}

	logger.Log(ctx).Info(ctx, "effective configuration",
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("postgres_host", cfg.Postgres.Host),
		zap.Int("postgres_port", cfg.Postgres.Port),
		zap.String("postgres_db", cfg.Postgres.Database),
		zap.Int("postgres_min_conn", cfg.Postgres.MinConn),
		zap.Int("postgres_max_conn", cfg.Postgres.MaxConn),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.String("redis_address", cfg.Redis.GetAddress()),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Int("shutdown_timeout_seconds", cfg.Shutdown.Timeout))

	return cfg, nil
}
