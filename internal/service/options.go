package service

import (
	"time"

	"github.com/phrazzld/todo-api/internal/config"
)

// Options tune how the task service talks to the cache.
type Options struct {
	// OperationTimeout bounds every single cache call.
	OperationTimeout time.Duration

	// InvalidationAttempts is how often a cache write after a committed
	// store mutation is tried before it is logged and dropped.
	InvalidationAttempts int

	// InvalidationBackoff is the first retry delay; it doubles per attempt.
	InvalidationBackoff time.Duration
}

const (
	defaultOperationTimeout     = 2 * time.Second
	defaultInvalidationAttempts = 3
	defaultInvalidationBackoff  = 50 * time.Millisecond
)

// OptionsFromConfig derives service options from the cache settings.
func OptionsFromConfig(cfg config.CacheConfig) Options {
	return Options{
		OperationTimeout:     cfg.OperationTimeout,
		InvalidationAttempts: cfg.InvalidationAttempts,
		InvalidationBackoff:  cfg.InvalidationBackoff,
	}
}

func (o Options) withDefaults() Options {
	if o.OperationTimeout <= 0 {
		o.OperationTimeout = defaultOperationTimeout
	}
	if o.InvalidationAttempts <= 0 {
		o.InvalidationAttempts = defaultInvalidationAttempts
	}
	if o.InvalidationBackoff <= 0 {
		o.InvalidationBackoff = defaultInvalidationBackoff
	}
	return o
}
