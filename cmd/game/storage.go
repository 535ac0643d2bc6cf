package main

import (
	"fmt"

	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/storage"
	gormstorage "go-zombie-survival/internal/storage/gorm"
	"go-zombie-survival/internal/storage/memory"

	"github.com/rs/zerolog"
)

// createStorageBackend opens the profile store selected in the config.
// The backend is not initialized yet.
func createStorageBackend(cfg config.StorageConfig, logger zerolog.Logger) (storage.Backend, error) {
	switch cfg.Type {
	case "postgres":
		db, err := gormstorage.OpenPostgres(cfg.Postgres.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres: %w", err)
		}
		logger.Info().Str("host", cfg.Postgres.Host).Str("database", cfg.Postgres.Database).Msg("Postgres storage backend initialized")
		return gormstorage.New(db, logger), nil

	case "sqlite":
		db, err := gormstorage.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite: %w", err)
		}
		logger.Info().Str("path", cfg.SQLitePath).Msg("SQLite storage backend initialized")
		return gormstorage.New(db, logger), nil

	case "memory":
		logger.Info().Msg("Memory storage backend initialized")
		return memory.New(), nil

	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
