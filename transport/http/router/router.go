package router

import (
	"serenity/internal/handlers/catalog"
	"serenity/internal/handlers/dashboard"
	"serenity/internal/handlers/eventinquiry"
	"serenity/internal/handlers/form"
	"serenity/internal/handlers/inquiry"
	"serenity/internal/handlers/room"
	"serenity/internal/handlers/session"
	"serenity/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Catalog      catalog.Handler
	Form         form.Handler
	Session      session.Handler
	Dashboard    dashboard.Handler
	Inquiry      inquiry.Handler
	EventInquiry eventinquiry.Handler
	Room         room.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Form.Router(routerGroup)

		routerGroup.Route("/admin", func(admin chi.Router) {
			admin.Use(r.Middleware.Session)

			r.DomainHandlers.Session.Router(admin)

			admin.Group(func(protected chi.Router) {
				protected.Use(r.Middleware.RequireSession, r.Middleware.RBAC)

				r.DomainHandlers.Dashboard.Router(protected)
				r.DomainHandlers.Inquiry.Router(protected)
				r.DomainHandlers.EventInquiry.Router(protected)
				r.DomainHandlers.Room.Router(protected)
			})
		})
	})
}

func New(domainHandlers DomainHandlers, middleware middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     middleware,
	}
}
