package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/cache"
	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config

	logger *slog.Logger
	db     *sql.DB
	cache  cache.Cache

	taskStore   store.TaskStore
	taskService service.TaskService
}

// newApplication wires stores and services on top of an open database and
// cache. The application owns both: they are released in cleanup, or right
// away when wiring fails.
func newApplication(
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
	c cache.Cache,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
		cache:  c,
	}

	var err error
	app.taskStore, err = newTaskStore(cfg.Database.Driver, db, logger)
	if err != nil {
		app.cleanup()
		return nil, err
	}

	app.taskService, err = service.NewTaskService(
		service.NewTaskRepositoryAdapter(app.taskStore, db),
		c,
		service.OptionsFromConfig(cfg.Cache),
		logger,
	)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	return app, nil
}

// cleanup releases the cache and database connections.
func (app *application) cleanup() {
	if app.cache != nil {
		if err := app.cache.Close(); err != nil {
			app.logger.Error("Failed to close cache", slog.String("error", err.Error()))
		}
	}
	if app.db != nil {
		closeDB(app.db, app.logger)
	}
}
