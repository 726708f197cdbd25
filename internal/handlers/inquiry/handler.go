package inquiry

import (
	"net/http"
	"serenity/infras/otel"
	"serenity/internal/domains/inquiry/model"
	"serenity/internal/domains/inquiry/service"
	listingHandler "serenity/internal/handlers/listing"
	"serenity/shared/listing"
	"serenity/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	list listingHandler.Handler[model.Inquiry]
}

func New(service service.Service, otel otel.Otel) Handler {
	return Handler{
		list: listingHandler.New("Inquiries", service.Inquiries(), otel),
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/inquiries", func(routerGroup chi.Router) {
		routerGroup.Get("/filters", handler.GetFilters)
		handler.list.Router(routerGroup)
	})
}

// GetFilters lists the status and type filters of the inquiries table.
// @Summary Inquiry filters
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Data[listing.FiltersResponse]
// @Router /v1/admin/inquiries/filters [get]
func (handler *Handler) GetFilters(w http.ResponseWriter, _ *http.Request) {
	response.WithJSON(w, http.StatusOK, listing.FiltersResponse{
		Statuses: service.StatusNames(),
		Types:    service.Types,
	})
}
