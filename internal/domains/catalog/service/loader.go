package service

import (
	"context"
	"errors"
	"serenity/infras/backend"
	"serenity/internal/domains/catalog/model"
	"serenity/shared/cache"

	"github.com/rs/zerolog/log"
)

// ErrEmpty is reported when the backend answered with an empty collection.
var ErrEmpty = errors.New("backend returned no items")

// Loader prefers remote data and falls back to built-in defaults on any failure.
// Non-empty remote results are cached for ttl seconds.
type Loader[T any] struct {
	name     string
	fetch    func(ctx context.Context) ([]T, error)
	fallback func() []T
	cache    cache.RedisCache
	ttl      int
	breaker  backend.Breaker
}

func NewLoader[T any](name string, fetch func(context.Context) ([]T, error), fallback func() []T, redisCache cache.RedisCache, ttl int, breaker backend.Breaker) *Loader[T] {
	return &Loader[T]{
		name:     name,
		fetch:    fetch,
		fallback: fallback,
		cache:    redisCache,
		ttl:      ttl,
		breaker:  breaker,
	}
}

func (l *Loader[T]) key() string {
	return model.EntityName + ":" + l.name
}

// Load never fails: the Err of a fallback result only records why remote data was not used.
func (l *Loader[T]) Load(ctx context.Context) model.Result[[]T] {
	var cached []T
	if err := l.cache.Get(ctx, l.key(), &cached); err == nil && len(cached) > 0 {
		return model.Result[[]T]{Data: cached, Source: model.SourceRemote}
	} else if err != nil && !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Str("catalog", l.name).Msg("failed to read catalog cache")
	}

	out, err := l.breaker.Execute(func() (any, error) {
		return l.fetch(ctx)
	})

	var data []T
	if err == nil {
		data, _ = out.([]T)
		if len(data) == 0 {
			err = ErrEmpty
		}
	}

	if err != nil {
		log.Warn().Err(err).Str("catalog", l.name).Msg("using fallback catalog data")

		return model.Result[[]T]{Data: l.fallback(), Source: model.SourceFallback, Err: err}
	}

	if l.ttl > 0 {
		if err = l.cache.Save(context.WithoutCancel(ctx), l.key(), data, l.ttl); err != nil {
			log.Warn().Err(err).Str("catalog", l.name).Msg("failed to cache catalog data")
		}
	}

	return model.Result[[]T]{Data: data, Source: model.SourceRemote}
}
