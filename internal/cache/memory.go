package cache

import (
	"context"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory es el backend in-process sobre patrickmn/go-cache.
type Memory struct {
	c          *gocache.Cache
	defaultTTL time.Duration
}

func NewMemory(defaultTTL time.Duration) *Memory {
	if defaultTTL <= 0 {
		defaultTTL = 2 * time.Minute
	}
	return &Memory{
		c:          gocache.New(defaultTTL, time.Minute),
		defaultTTL: defaultTTL,
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.c.Get(key)
	if !ok {
		return nil, ErrNotFound
	}
	b, _ := v.([]byte)
	return b, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = m.defaultTTL
	}
	m.c.Set(key, value, ttl)
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.c.Delete(key)
	return nil
}

func (m *Memory) DeletePrefix(_ context.Context, prefix string) error {
	for k := range m.c.Items() {
		if strings.HasPrefix(k, prefix) {
			m.c.Delete(k)
		}
	}
	return nil
}

func (m *Memory) Ping(context.Context) error { return nil }
func (m *Memory) Close() error               { return nil }
