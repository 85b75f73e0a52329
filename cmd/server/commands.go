package main

import (
	"fmt"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"

	"github.com/phrazzld/todo-api/internal/platform/migrations"
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Running the binary without a
// subcommand starts the server.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "todo-api",
		Short: "Todo API - a cache-augmented task list service",
		Long: `Todo API serves a task list over HTTP. Reads go through a Redis cache
and report their origin in the X-Data-Source header.

Configuration is read from config.yaml and TODO_* environment variables.`,
		SilenceUsage: true,
		RunE:         runServe,
	}

	rootCmd.AddCommand(serveCmd(), migrateCmd())
	return rootCmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate <" + strings.Join(migrations.Commands, "|") + ">",
		Short: "Run database migrations",
		Long: `Run a goose migration command against the configured database.

Examples:
  # Apply all pending migrations
  todo-api migrate up

  # Show applied and pending migrations
  todo-api migrate status
`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: migrations.Commands,
		RunE:      runMigrate,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to set up database", slog.String("error", err.Error()))
		return err
	}

	if cfg.Database.AutoMigrate {
		if err := runMigrations(ctx, cfg, db, "up"); err != nil {
			closeDB(db, logger)
			return err
		}
	}

	app, err := newApplication(cfg, logger, db, setupAppCache(ctx, cfg, logger))
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeDB(db, logger)

	return runMigrations(ctx, cfg, db, args[0])
}
