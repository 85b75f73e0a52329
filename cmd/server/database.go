package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/migrations"
	"github.com/phrazzld/todo-api/internal/platform/postgres"
	"github.com/phrazzld/todo-api/internal/platform/sqlite"
	"github.com/phrazzld/todo-api/internal/store"
)

const databaseConnectTimeout = 5 * time.Second

// setupAppDatabase opens the configured database and verifies the connection.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseConnectTimeout)
	defer cancel()

	var (
		db  *sql.DB
		err error
	)

	switch cfg.Database.Driver {
	case "sqlite":
		// sqlite.Open pins the pool to one connection; pool settings are not applied.
		db, err = sqlite.Open(ctx, cfg.Database.URL)
		if err != nil {
			return nil, err
		}
	case "postgres":
		db, err = sql.Open("pgx", cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to open database connection: %w", err)
		}

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

		if err := db.PingContext(ctx); err != nil {
			closeDB(db, logger)
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	logger.Info("Database connection established", slog.String("driver", cfg.Database.Driver))
	return db, nil
}

// newTaskStore returns the TaskStore implementation for driver.
func newTaskStore(driver string, db *sql.DB, logger *slog.Logger) (store.TaskStore, error) {
	switch driver {
	case "sqlite":
		return sqlite.NewSQLiteTaskStore(db, logger), nil
	case "postgres":
		return postgres.NewPostgresTaskStore(db, logger), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

// runMigrations runs a goose command with the migrations matching the
// configured driver.
func runMigrations(ctx context.Context, cfg *config.Config, db *sql.DB, command string) error {
	dialect, err := migrations.DialectForDriver(cfg.Database.Driver)
	if err != nil {
		return err
	}
	return migrations.Run(ctx, db, dialect, command)
}

func closeDB(db *sql.DB, logger *slog.Logger) {
	if err := db.Close(); err != nil {
		logger.Error("Failed to close database connection", slog.String("error", err.Error()))
	}
}
