package eventinquiry

import (
	"net/http"
	"serenity/infras/otel"
	"serenity/internal/domains/eventinquiry/model"
	"serenity/internal/domains/eventinquiry/service"
	inquiryService "serenity/internal/domains/inquiry/service"
	listingHandler "serenity/internal/handlers/listing"
	"serenity/shared/listing"
	"serenity/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	list listingHandler.Handler[model.EventInquiry]
}

func New(service service.Service, otel otel.Otel) Handler {
	return Handler{
		list: listingHandler.New("EventInquiries", service.EventInquiries(), otel),
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/event-inquiries", func(routerGroup chi.Router) {
		routerGroup.Get("/filters", handler.GetFilters)
		handler.list.Router(routerGroup)
	})
}

// GetFilters lists the status and event type filters of the event inquiries table.
// @Summary Event inquiry filters
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Data[listing.FiltersResponse]
// @Router /v1/admin/event-inquiries/filters [get]
func (handler *Handler) GetFilters(w http.ResponseWriter, _ *http.Request) {
	response.WithJSON(w, http.StatusOK, listing.FiltersResponse{
		Statuses: inquiryService.StatusNames(),
		Types:    model.EventTypes,
	})
}
