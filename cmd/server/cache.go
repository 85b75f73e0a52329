package main

import (
	"context"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/cache"
	"github.com/phrazzld/todo-api/internal/config"
)

// setupAppCache returns the configured cache backend. An unreachable Redis
// server is logged but not fatal: reads fall back to the database until it
// comes back.
func setupAppCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) cache.Cache {
	if !cfg.Cache.Enabled {
		logger.Info("Cache disabled, serving every read from the database")
		return cache.NopCache{}
	}

	c := cache.NewRedisCache(cfg.Cache, logger)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Cache.DialTimeout)
	defer cancel()

	if err := c.Ping(pingCtx); err != nil {
		logger.Warn("Cache not reachable at startup",
			slog.String("addr", cfg.Cache.Addr),
			slog.String("error", err.Error()))
		return c
	}

	logger.Info("Cache connection established",
		slog.String("addr", cfg.Cache.Addr),
		slog.Duration("default_ttl", cfg.Cache.DefaultTTL))
	return c
}
