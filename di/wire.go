//go:build wireinject
// +build wireinject

package di

import (
	"serenity/config"
	"serenity/infras/backend"
	"serenity/infras/jwt"
	"serenity/infras/otel"
	"serenity/infras/redis"
	"serenity/infras/s3"
	"serenity/permissions"
	"serenity/shared/cache"
	"serenity/transport/http"
	"serenity/transport/http/middleware"
	"serenity/transport/http/router"

	catalogService "serenity/internal/domains/catalog/service"
	dashboardService "serenity/internal/domains/dashboard/service"
	eventService "serenity/internal/domains/eventinquiry/service"
	formService "serenity/internal/domains/form/service"
	inquiryService "serenity/internal/domains/inquiry/service"
	roomService "serenity/internal/domains/room/service"
	sessionService "serenity/internal/domains/session/service"

	catalogHandler "serenity/internal/handlers/catalog"
	dashboardHandler "serenity/internal/handlers/dashboard"
	eventHandler "serenity/internal/handlers/eventinquiry"
	formHandler "serenity/internal/handlers/form"
	inquiryHandler "serenity/internal/handlers/inquiry"
	roomHandler "serenity/internal/handlers/room"
	sessionHandler "serenity/internal/handlers/session"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	backend.New,
	backend.NewBreaker,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var domains = wire.NewSet(
	sessionService.New,
	catalogService.New,
	inquiryService.New,
	eventService.New,
	formService.New,
	roomService.New,
	dashboardService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	catalogHandler.New,
	formHandler.New,
	sessionHandler.New,
	dashboardHandler.New,
	inquiryHandler.New,
	eventHandler.New,
	roomHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
