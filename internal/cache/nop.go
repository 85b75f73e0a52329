package cache

import (
	"context"
	"time"
)

// NopCache is a Cache that stores nothing. Every Get is a miss.
type NopCache struct{}

var _ Cache = NopCache{}

func (NopCache) Get(context.Context, string) ([]byte, error) {
	return nil, ErrMiss
}

func (NopCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (NopCache) Delete(context.Context, ...string) error {
	return nil
}

func (NopCache) Ping(context.Context) error {
	return nil
}

func (NopCache) Close() error {
	return nil
}
