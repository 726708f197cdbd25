package catalog

import (
	"net/http"
	"serenity/infras/otel"
	"serenity/internal/domains/catalog/model/dto"
	"serenity/internal/domains/catalog/service"
	"serenity/shared/constant"
	"serenity/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/featured", handler.GetFeaturedRooms)
		routerGroup.Get("/{slug}", handler.GetRoomBySlug)
	})
	router.Get("/packages", handler.GetPackages)
	router.Get("/gallery", handler.GetGallery)
}

// GetRooms lists every active room. The built-in list is served when the backend
// is unavailable or returns nothing.
// @Summary List rooms
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Data[dto.RoomsResponse]
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	result := handler.service.Rooms(ctx)
	scope.SetAttribute("catalog.source", string(result.Source))

	response.WithJSON(w, http.StatusOK, dto.RoomsResponse{Rooms: result.Data, Source: result.Source})
}

// GetFeaturedRooms lists the rooms shown on the home page.
// @Summary List featured rooms
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Data[dto.RoomsResponse]
// @Router /v1/rooms/featured [get]
func (handler *Handler) GetFeaturedRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFeaturedRooms")
	defer scope.End()

	result := handler.service.FeaturedRooms(ctx)
	scope.SetAttribute("catalog.source", string(result.Source))

	response.WithJSON(w, http.StatusOK, dto.RoomsResponse{Rooms: result.Data, Source: result.Source})
}

// GetRoomBySlug returns one room. Any failure is reported as not found.
// @Summary Get a room by slug
// @Tags Catalog
// @Produce json
// @Param slug path string true "Room slug"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{slug} [get]
func (handler *Handler) GetRoomBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomBySlug")
	defer scope.End()

	slug := chi.URLParam(r, constant.RequestParamSlug)

	room, err := handler.service.RoomBySlug(ctx, slug)
	if err != nil {
		scope.TraceError(err)
		log.Debug().Str("slug", slug).Msg("room detail not available")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dto.RoomResponse{Room: room})
}

// GetPackages lists whole-property packages.
// @Summary List packages
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Data[dto.PackagesListResponse]
// @Router /v1/packages [get]
func (handler *Handler) GetPackages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPackages")
	defer scope.End()

	result := handler.service.Packages(ctx)
	scope.SetAttribute("catalog.source", string(result.Source))

	response.WithJSON(w, http.StatusOK, dto.PackagesListResponse{Packages: result.Data, Source: result.Source})
}

// GetGallery returns the home page slides and their rotation settings.
// @Summary Get the gallery
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Data[model.Gallery]
// @Router /v1/gallery [get]
func (handler *Handler) GetGallery(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGallery")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Gallery())
}
