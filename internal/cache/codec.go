package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// GetJSON reads key and decodes it into a T. It returns ErrMiss when the key
// is absent, and a decode error when the stored value is not valid JSON for T.
func GetJSON[T any](ctx context.Context, c Cache, key string) (T, error) {
	var value T

	data, err := c.Get(ctx, key)
	if err != nil {
		return value, err
	}

	if err := json.Unmarshal(data, &value); err != nil {
		return value, fmt.Errorf("failed to decode cache entry %q: %w", key, err)
	}
	return value, nil
}

// SetJSON encodes value as JSON and stores it under key.
func SetJSON(ctx context.Context, c Cache, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry %q: %w", key, err)
	}
	return c.Set(ctx, key, data, ttl)
}
