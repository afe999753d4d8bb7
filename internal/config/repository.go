package config

import (
	"context"
	"os"

	"todo-list/internal/errors"
	"todo-list/internal/repository"
	"todo-list/internal/repository/postgres"
	"todo-list/internal/repository/sqlite"
)

// CreateRepository opens the task store selected by the configuration
func CreateRepository(ctx context.Context, config *Config) (repository.Repository, error) {
	switch config.Database.Driver {
	case DriverPostgres:
		return postgres.New(ctx, config.Database.DSN)
	case DriverSQLite:
		dbPath := config.GetDatabasePath()
		if dbPath != ":memory:" {
			dir := expandPath(config.Database.Dir)
			if err := os.MkdirAll(dir, os.FileMode(config.Database.DirPermissions)); err != nil {
				return nil, errors.NewStorageUnavailableError(dir, err)
			}
		}
		return sqlite.New(dbPath)
	default:
		return nil, errors.NewStorageUnavailableError(config.Database.Driver, &ConfigError{Field: "database.driver", Message: "unsupported driver"})
	}
}
