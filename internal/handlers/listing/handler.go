package listing

import (
	"context"
	"net/http"
	"serenity/infras/otel"
	"serenity/shared/constant"
	"serenity/shared/dto"
	"serenity/shared/listing"
	"serenity/shared/validator"
	"serenity/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Handler exposes one admin list view over HTTP. The view itself lives server side,
// keyed by the admin session.
type Handler[T any] struct {
	name string
	flow listing.Flow[T]
	otel otel.Otel
}

func New[T any](name string, flow listing.Flow[T], otel otel.Otel) Handler[T] {
	return Handler[T]{
		name: name,
		flow: flow,
		otel: otel,
	}
}

func (handler Handler[T]) Router(router chi.Router) {
	router.Route("/view", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.View)
		routerGroup.Post("/refresh", handler.Refresh)
		routerGroup.Post("/filter", handler.Filter)
		routerGroup.Post("/page", handler.Page)
		routerGroup.Post("/next", handler.Next)
		routerGroup.Post("/prev", handler.Prev)
		routerGroup.Post("/dismiss", handler.Dismiss)
		routerGroup.Post("/close", handler.Close)
		routerGroup.Post("/select/{id}", handler.Select)
		routerGroup.Post("/rows/{id}/{action}", handler.Apply)
	})
}

// View returns the current list view, loading the first page on first use.
// @Summary Get the admin list view
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Data[listing.View[any]]
// @Failure 401 {object} response.Error
// @Router /v1/admin/{resource}/view [get]
func (handler Handler[T]) View(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, "View", handler.flow.Current)
}

func (handler Handler[T]) Refresh(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, "Refresh", handler.flow.Refresh)
}

// Filter changes the status or type filter and returns to the first page.
// @Summary Filter the admin list
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body listing.FilterRequest true "Filters"
// @Success 200 {object} response.Data[listing.View[any]]
// @Failure 400 {object} response.Error
// @Router /v1/admin/{resource}/view/filter [post]
func (handler Handler[T]) Filter(w http.ResponseWriter, r *http.Request) {
	req := listing.FilterRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		log.Error().Err(err).Msg("failed to validate request body")
		response.WithError(w, err)

		return
	}

	handler.serve(w, r, "Filter", func(ctx context.Context) (listing.View[T], error) {
		return handler.flow.SetFilter(ctx, req.Status, req.Type)
	})
}

// Page jumps to the offset given in the query string.
// @Summary Jump to an offset
// @Tags Admin
// @Produce json
// @Param offset query int true "Offset"
// @Success 200 {object} response.Data[listing.View[any]]
// @Failure 400 {object} response.Error
// @Router /v1/admin/{resource}/view/page [post]
func (handler Handler[T]) Page(w http.ResponseWriter, r *http.Request) {
	params := dto.PageParams{}

	if err := params.FromRequest(r); err != nil {
		response.WithError(w, err)

		return
	}

	handler.serve(w, r, "Page", func(ctx context.Context) (listing.View[T], error) {
		return handler.flow.SetOffset(ctx, params.Offset)
	})
}

func (handler Handler[T]) Next(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, "Next", handler.flow.NextPage)
}

func (handler Handler[T]) Prev(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, "Prev", handler.flow.PrevPage)
}

func (handler Handler[T]) Dismiss(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, "Dismiss", handler.flow.DismissError)
}

func (handler Handler[T]) Close(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, "Close", handler.flow.Close)
}

// Select opens the detail panel of a loaded row.
// @Summary Open a row
// @Tags Admin
// @Produce json
// @Param id path string true "Row ID"
// @Success 200 {object} response.Data[listing.View[any]]
// @Failure 404 {object} response.Error
// @Router /v1/admin/{resource}/view/select/{id} [post]
func (handler Handler[T]) Select(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, constant.RequestParamID)

	handler.serve(w, r, "Select", func(ctx context.Context) (listing.View[T], error) {
		return handler.flow.Select(ctx, id)
	})
}

// Apply runs a row action, then answers with the refetched view.
// A rejected action is reported in the view's error banner.
// @Summary Run a row action
// @Tags Admin
// @Produce json
// @Param id path string true "Row ID"
// @Param action path string true "Action"
// @Success 200 {object} response.Data[listing.View[any]]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/admin/{resource}/view/rows/{id}/{action} [post]
func (handler Handler[T]) Apply(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, constant.RequestParamID)
	action := chi.URLParam(r, constant.RequestParamAction)

	handler.serve(w, r, "Apply", func(ctx context.Context) (listing.View[T], error) {
		return handler.flow.Apply(ctx, id, action)
	})
}

func (handler Handler[T]) serve(w http.ResponseWriter, r *http.Request, name string, fn func(ctx context.Context) (listing.View[T], error)) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+handler.name+"."+name)
	defer scope.End()

	view, err := fn(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("list", handler.name).Msgf("failed to %s", name)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, view)
}
