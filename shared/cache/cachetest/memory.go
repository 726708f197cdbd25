// Package cachetest provides an in-process RedisCache for service tests.
package cachetest

import (
	"context"
	"encoding/json"
	"fmt"
	"serenity/shared/cache"
	"strings"
	"sync"
)

type Memory struct {
	mu    sync.Mutex
	items map[string][]byte
	ttls  map[string]int
}

func NewMemory() *Memory {
	return &Memory{items: map[string][]byte{}, ttls: map[string]int{}}
}

func (m *Memory) Save(_ context.Context, key string, value any, duration int) error {
	var raw []byte
	if s, ok := value.(string); ok {
		raw = []byte(s)
	} else {
		b, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to marshal cache value: %w", err)
		}
		raw = b
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = raw
	m.ttls[key] = duration

	return nil
}

func (m *Memory) Get(_ context.Context, key string, value any) error {
	m.mu.Lock()
	raw, ok := m.items[key]
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("failed to get cache value: %w", cache.Nil)
	}

	if s, ok := value.(*string); ok {
		*s = string(raw)
		return nil
	}

	return json.Unmarshal(raw, value)
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	delete(m.ttls, key)

	return nil
}

func (m *Memory) Clear(_ context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key := range m.items {
		if strings.HasPrefix(key, prefix) {
			delete(m.items, key)
			delete(m.ttls, key)
		}
	}

	return nil
}

func (m *Memory) Acquire(_ context.Context, key string, duration int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[key]; ok {
		return false, nil
	}
	m.items[key] = []byte("1")
	m.ttls[key] = duration

	return true, nil
}

// Has reports whether key is present.
func (m *Memory) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.items[key]

	return ok
}

// TTL returns the expiry in seconds key was last written with; zero means none.
func (m *Memory) TTL(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.ttls[key]
}

var _ cache.RedisCache = (*Memory)(nil)
