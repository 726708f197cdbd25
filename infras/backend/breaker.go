package backend

import (
	"context"
	"errors"
	"net/http"
	"serenity/config"
	"serenity/shared/failure"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
)

// Breaker guards read paths that have a local fallback.
type Breaker interface {
	Execute(req func() (any, error)) (any, error)
}

func NewBreaker(cfg *config.Config) Breaker {
	maxFailures := cfg.Backend.Breaker.MaxFailures

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "backend-catalog",
		Timeout: time.Duration(cfg.Backend.Breaker.TimeoutSeconds) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return maxFailures > 0 && counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !IsOutage(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
	})
}

// IsOutage reports whether err means the backend is down rather than answering normally.
// A caller that gave up on its own request says nothing about the backend.
func IsOutage(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}

	if errors.Is(err, ErrUnreachable) {
		return true
	}

	return failure.GetCode(err) >= http.StatusInternalServerError
}
