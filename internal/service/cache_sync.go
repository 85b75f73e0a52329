package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/cache"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/sethvargo/go-retry"
)

// cacheSync applies write-invalidation after a store mutation has committed.
// Failures never reach the caller: the mutation is durable, so the write is
// reported as successful and the failure is logged.
type cacheSync struct {
	cache  cache.Cache
	opts   Options
	logger *slog.Logger
}

func newCacheSync(c cache.Cache, opts Options, logger *slog.Logger) *cacheSync {
	return &cacheSync{cache: c, opts: opts, logger: logger}
}

func (c *cacheSync) invalidateCollection(ctx context.Context) {
	key := cache.CollectionKey()
	c.do(ctx, "invalidate", key, func(ctx context.Context) error {
		return c.cache.Delete(ctx, key)
	})
}

func (c *cacheSync) invalidateItem(ctx context.Context, id int64) {
	key := cache.ItemKey(id)
	c.do(ctx, "invalidate", key, func(ctx context.Context) error {
		return c.cache.Delete(ctx, key)
	})
}

// refreshItem overwrites the item entry with task. If the write cannot be
// made, the entry is deleted instead so a stale copy does not outlive the
// mutation.
func (c *cacheSync) refreshItem(ctx context.Context, task *domain.Task) {
	key := cache.ItemKey(task.ID)
	ok := c.do(ctx, "refresh", key, func(ctx context.Context) error {
		return cache.SetJSON(ctx, c.cache, key, task, 0)
	})
	if !ok {
		c.invalidateItem(ctx, task.ID)
	}
}

// do runs fn with retries and reports whether it eventually succeeded.
// Cancellation of ctx is ignored; the store change has already committed.
func (c *cacheSync) do(ctx context.Context, action, key string, fn func(context.Context) error) bool {
	log := logger.FromContextOrDefault(ctx, c.logger)
	ctx = context.WithoutCancel(ctx)

	backoff := retry.WithMaxRetries(
		uint64(c.opts.InvalidationAttempts-1),
		retry.NewExponential(c.opts.InvalidationBackoff),
	)

	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		opCtx, cancel := context.WithTimeout(ctx, c.opts.OperationTimeout)
		defer cancel()

		if err := fn(opCtx); err != nil {
			log.Debug("cache write attempt failed",
				slog.String("action", action),
				slog.String("key", key),
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()))
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		log.Error("cache write failed after retries, entry may be stale until its TTL expires",
			slog.String("action", action),
			slog.String("key", key),
			slog.Int("attempts", attempt),
			slog.String("error", err.Error()))
		return false
	}
	return true
}
