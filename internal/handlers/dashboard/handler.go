package dashboard

import (
	"net/http"
	"serenity/infras/otel"
	"serenity/internal/domains/dashboard/service"
	"serenity/shared/constant"
	"serenity/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/dashboard", handler.GetSummary)
}

// GetSummary returns inquiry and room counts for the admin dashboard.
// @Summary Dashboard stats
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Data[model.Summary]
// @Failure 401 {object} response.Error
// @Router /v1/admin/dashboard [get]
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	summary, err := handler.service.Summary(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load dashboard")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, summary)
}
