package cache

import (
	"context"
	"errors"
	"fmt"
)

// Store keeps typed values under a common key prefix.
type Store[T any] struct {
	cache  RedisCache
	prefix string
	ttl    int
}

func NewStore[T any](cache RedisCache, prefix string, ttlSeconds int) *Store[T] {
	return &Store[T]{cache: cache, prefix: prefix, ttl: ttlSeconds}
}

func (s *Store[T]) Key(id string) string {
	return s.prefix + id
}

// Load returns the stored value and whether it existed.
func (s *Store[T]) Load(ctx context.Context, id string) (value T, found bool, err error) {
	err = s.cache.Get(ctx, s.Key(id), &value)
	if errors.Is(err, Nil) {
		return value, false, nil
	}
	if err != nil {
		return value, false, fmt.Errorf("failed to load %s: %w", s.Key(id), err)
	}

	return value, true, nil
}

func (s *Store[T]) Save(ctx context.Context, id string, value T) error {
	return s.cache.Save(ctx, s.Key(id), value, s.ttl)
}

func (s *Store[T]) Delete(ctx context.Context, id string) error {
	return s.cache.Delete(ctx, s.Key(id))
}
