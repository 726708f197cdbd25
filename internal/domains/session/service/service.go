package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"serenity/config"
	"serenity/infras/backend"
	"serenity/infras/otel"
	"serenity/internal/domains/session/model"
	"serenity/internal/domains/session/model/dto"
	"serenity/shared"
	"serenity/shared/cache"
	"serenity/shared/constant"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const pathLogin = "/auth/login"

// Provider is the single source of truth for admin sessions.
type Provider interface {
	Current(ctx context.Context, sessionID string) (model.Session, error)
	// Login authenticates against the backend and stores the result under a fresh session id.
	Login(ctx context.Context, sessionID string, req dto.LoginRequest) (model.Session, error)
	Save(ctx context.Context, sessionID, token string, user model.User) (model.Session, error)
	Logout(ctx context.Context, sessionID string) error
	Subscribe(fn func(model.Change)) (unsubscribe func())
}

type serviceImpl struct {
	client backend.Client
	cache  cache.RedisCache
	otel   otel.Otel
	ttl    int

	mu          sync.Mutex
	nextID      int
	subscribers map[int]func(model.Change)
}

// New keeps sessions for SESSION_TTL_MIN minutes after login; zero disables expiry.
func New(cfg *config.Config, client backend.Client, cache cache.RedisCache, otel otel.Otel) Provider {
	return &serviceImpl{
		client:      client,
		cache:       cache,
		otel:        otel,
		ttl:         cfg.Session.TTLMinutes * constant.MinutesToSeconds,
		subscribers: map[int]func(model.Change){},
	}
}

func key(sessionID, name string) string {
	return shared.BuildCacheKey(model.EntityName, sessionID, name)
}

func (s *serviceImpl) Current(ctx context.Context, sessionID string) (res model.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Session.Current")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res.ID = sessionID
	if sessionID == constant.Empty {
		return res, nil
	}

	var token string
	if err = s.cache.Get(ctx, key(sessionID, model.KeyToken), &token); err != nil {
		if errors.Is(err, cache.Nil) {
			return res, nil
		}

		log.Error().Err(err).Msg("failed to read session token")

		return res, fmt.Errorf("failed to read session token: %w", err)
	}

	var user model.User
	if err = s.cache.Get(ctx, key(sessionID, model.KeyUser), &user); err != nil && !errors.Is(err, cache.Nil) {
		log.Error().Err(err).Msg("failed to read session user")

		return res, fmt.Errorf("failed to read session user: %w", err)
	} else if err == nil {
		res.User = &user
	}

	res.Token = token

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, sessionID string, req dto.LoginRequest) (res model.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Session.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	var login dto.LoginResponse
	if err = s.client.Post(ctx, pathLogin, req, constant.Empty, &login); err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("admin login rejected")

		return res, fmt.Errorf("failed to log in: %w", err)
	}

	if sessionID != constant.Empty {
		if err = s.Logout(ctx, sessionID); err != nil {
			return res, err
		}
	}

	return s.Save(ctx, uuid.NewString(), login.Token, login.User)
}

func (s *serviceImpl) Save(ctx context.Context, sessionID, token string, user model.User) (res model.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Session.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.cache.Save(ctx, key(sessionID, model.KeyToken), token, s.ttl); err != nil {
		return res, fmt.Errorf("failed to store session token: %w", err)
	}

	if err = s.cache.Save(ctx, key(sessionID, model.KeyUser), user, s.ttl); err != nil {
		return res, fmt.Errorf("failed to store session user: %w", err)
	}

	res = model.Session{ID: sessionID, Token: token, User: &user}
	s.notify(model.Change{SessionID: sessionID, Session: res})

	log.Info().Str("role", user.Role).Msg("admin session stored")

	return res, nil
}

func (s *serviceImpl) Logout(ctx context.Context, sessionID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Session.Logout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if sessionID == constant.Empty {
		return nil
	}

	for _, name := range []string{model.KeyToken, model.KeyUser} {
		if err = s.cache.Delete(ctx, key(sessionID, name)); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
	}

	s.notify(model.Change{SessionID: sessionID, Session: model.Session{ID: sessionID}, LoggedOut: true})

	return nil
}

func (s *serviceImpl) Subscribe(fn func(model.Change)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *serviceImpl) notify(change model.Change) {
	s.mu.Lock()
	subscribers := make([]func(model.Change), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subscribers = append(subscribers, fn)
	}
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(change)
	}
}
