// Package db поднимает хранилище доски объявлений: миграции и пул соединений.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"adboard/internal/board/config"
	"adboard/migrations"
	"adboard/pkg/db/postgres"
	"adboard/pkg/logger"
)

// Константы для сообщений логгера.
const (
	LogDBInitializing    = "initializing board database"
	LogDBInitialized     = "board database initialized successfully"
	LogMigrationStarting = "applying embedded board migrations"
)

// Константы для сообщений об ошибках.
const (
	ErrDBMigrations = "failed to apply board database migrations"
	ErrDBConnection = "failed to connect to board database"
)

// DB представляет соединение с базой данных доски объявлений.
type DB struct {
	database *postgres.Database
}

// New применяет встроенные миграции и открывает пул соединений.
func New(ctx context.Context, cfg *config.PostgresConfig) (*DB, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogDBInitializing,
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
		zap.Int("min_conn", cfg.MinConn),
		zap.Int("max_conn", cfg.MaxConn))

	log.Info(ctx, LogMigrationStarting, zap.String("dir", migrations.BoardDir))
	if err := postgres.Migrate(ctx, cfg.GetDSN(), migrations.Board, migrations.BoardDir); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBMigrations, err)
	}

	database, err := postgres.New(ctx, postgres.Options{
		DSN:     cfg.GetDSN(),
		MinConn: int32(cfg.MinConn), //nolint:gosec
		MaxConn: int32(cfg.MaxConn), //nolint:gosec
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBConnection, err)
	}

	log.Info(ctx, LogDBInitialized)

	return &DB{database: database}, nil
}

// Begin открывает транзакцию.
func (db *DB) Begin(ctx context.Context) (pgx.Tx, error) {
	return db.database.Begin(ctx)
}

// Close закрывает пул соединений.
func (db *DB) Close(ctx context.Context) {
	db.database.Close(ctx)
}
