package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/url"
	"serenity/config"
	"serenity/infras/backend"
	"serenity/infras/otel"
	"serenity/internal/domains/catalog/model"
	"serenity/internal/domains/catalog/model/dto"
	roomDto "serenity/internal/domains/room/model/dto"
	"serenity/shared/cache"
	"serenity/shared/constant"
	"serenity/shared/failure"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	pathRooms         = "/rooms"
	pathFeaturedRooms = "/rooms/featured"
	pathPackages      = "/packages"

	MessageRoomNotFound = "room not found"
)

type Catalog interface {
	Rooms(ctx context.Context) model.Result[[]model.Room]
	FeaturedRooms(ctx context.Context) model.Result[[]model.Room]
	Packages(ctx context.Context) model.Result[[]model.Package]
	// RoomBySlug reports every failure as not found.
	RoomBySlug(ctx context.Context, slug string) (model.Room, error)
	Gallery() model.Gallery
}

type serviceImpl struct {
	client   backend.Client
	otel     otel.Otel
	rooms    *Loader[model.Room]
	featured *Loader[model.Room]
	packages *Loader[model.Package]
}

func New(cfg *config.Config, client backend.Client, redisCache cache.RedisCache, breaker backend.Breaker, otel otel.Otel) Catalog {
	ttl := cfg.Cache.TTL

	s := &serviceImpl{
		client: client,
		otel:   otel,
	}
	s.rooms = NewLoader("rooms", s.fetchRooms(pathRooms), model.FallbackRooms, redisCache, ttl, breaker)
	s.featured = NewLoader("featured", s.fetchRooms(pathFeaturedRooms), model.FallbackFeaturedRooms, redisCache, ttl, breaker)
	s.packages = NewLoader("packages", s.fetchPackages, model.FallbackPackages, redisCache, ttl, breaker)

	return s
}

func (s *serviceImpl) fetchRooms(path string) func(context.Context) ([]model.Room, error) {
	return func(ctx context.Context) ([]model.Room, error) {
		var res roomDto.RoomsResponse
		if err := s.client.Get(ctx, path, constant.Empty, &res); err != nil {
			return nil, fmt.Errorf("failed to get %s: %w", path, err)
		}

		return res.Rooms, nil
	}
}

func (s *serviceImpl) fetchPackages(ctx context.Context) ([]model.Package, error) {
	var res dto.PackagesResponse
	if err := s.client.Get(ctx, pathPackages, constant.Empty, &res); err != nil {
		return nil, fmt.Errorf("failed to get packages: %w", err)
	}

	return res.Packages, nil
}

func (s *serviceImpl) Rooms(ctx context.Context) model.Result[[]model.Room] {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Catalog.Rooms")
	defer scope.End()

	res := s.rooms.Load(ctx)
	scope.SetAttribute("catalog.source", string(res.Source))

	return res
}

func (s *serviceImpl) FeaturedRooms(ctx context.Context) model.Result[[]model.Room] {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Catalog.FeaturedRooms")
	defer scope.End()

	res := s.featured.Load(ctx)
	scope.SetAttribute("catalog.source", string(res.Source))

	return res
}

func (s *serviceImpl) Packages(ctx context.Context) model.Result[[]model.Package] {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Catalog.Packages")
	defer scope.End()

	res := s.packages.Load(ctx)
	scope.SetAttribute("catalog.source", string(res.Source))

	return res
}

func (s *serviceImpl) RoomBySlug(ctx context.Context, slug string) (res model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Catalog.RoomBySlug")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	slug = strings.TrimSpace(slug)
	if slug == constant.Empty {
		return res, failure.NotFound(MessageRoomNotFound)
	}

	var body roomDto.RoomResponse
	if err = s.client.Get(ctx, pathRooms+"/"+url.PathEscape(slug), constant.Empty, &body); err != nil {
		event := log.Info()
		if backend.IsOutage(err) {
			event = log.Warn()
		}
		event.Err(err).Str("slug", slug).Bool("outage", backend.IsOutage(err)).Msg("room detail unavailable, reporting not found")

		return res, failure.NotFound(MessageRoomNotFound)
	}

	if body.Room.Slug == constant.Empty && body.Room.ID == "" {
		return res, failure.NotFound(MessageRoomNotFound)
	}

	return body.Room, nil
}

func (s *serviceImpl) Gallery() model.Gallery {
	return model.DefaultGallery()
}
