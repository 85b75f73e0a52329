package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/phrazzld/todo-api/internal/cache"
)

// MockCache implements cache.Cache for testing. Without function overrides
// it behaves as an in-memory cache (TTLs are recorded but never expire) and
// counts every call.
type MockCache struct {
	GetFn    func(ctx context.Context, key string) ([]byte, error)
	SetFn    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFn func(ctx context.Context, keys ...string) error
	PingFn   func(ctx context.Context) error

	mu      sync.Mutex
	entries map[string][]byte
	ttls    map[string]time.Duration
	calls   map[string]int
}

var _ cache.Cache = (*MockCache)(nil)

// NewMockCache creates an empty MockCache.
func NewMockCache() *MockCache {
	return &MockCache{}
}

func (m *MockCache) record(method string) {
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[method]++
}

// Get implements cache.Cache.Get
func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	m.record("Get")
	m.mu.Unlock()

	if m.GetFn != nil {
		return m.GetFn(ctx, key)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.entries[key]
	if !ok {
		return nil, cache.ErrMiss
	}
	return data, nil
}

// Set implements cache.Cache.Set
func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	m.record("Set")
	m.mu.Unlock()

	if m.SetFn != nil {
		return m.SetFn(ctx, key, value, ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries == nil {
		m.entries = make(map[string][]byte)
		m.ttls = make(map[string]time.Duration)
	}
	m.entries[key] = append([]byte(nil), value...)
	m.ttls[key] = ttl
	return nil
}

// Delete implements cache.Cache.Delete
func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	m.record("Delete")
	m.mu.Unlock()

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, keys...)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.entries, k)
		delete(m.ttls, k)
	}
	return nil
}

// Ping implements cache.Cache.Ping
func (m *MockCache) Ping(ctx context.Context) error {
	if m.PingFn != nil {
		return m.PingFn(ctx)
	}
	return nil
}

// Close implements cache.Cache.Close
func (m *MockCache) Close() error {
	m.mu.Lock()
	m.record("Close")
	m.mu.Unlock()
	return nil
}

// Has reports whether key currently holds a value.
func (m *MockCache) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[key]
	return ok
}

// Raw returns the stored bytes for key.
func (m *MockCache) Raw(key string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[key]
}

// TTL returns the ttl key was last written with.
func (m *MockCache) TTL(key string) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ttls[key]
}

// Calls returns how often method was invoked.
func (m *MockCache) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

// Put seeds an entry without counting a Set call.
func (m *MockCache) Put(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries == nil {
		m.entries = make(map[string][]byte)
		m.ttls = make(map[string]time.Duration)
	}
	m.entries[key] = value
}
