package form

import (
	"net/http"
	"serenity/infras/otel"
	"serenity/internal/domains/form/model"
	"serenity/internal/domains/form/model/dto"
	"serenity/internal/domains/form/service"
	"serenity/shared/constant"
	"serenity/shared/validator"
	"serenity/transport/http/middleware"
	"serenity/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Service
	middleware middleware.AppMiddleware
	otel       otel.Otel
}

func New(service service.Service, middleware middleware.AppMiddleware, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/forms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Open)
		routerGroup.Get("/{id}", handler.Get)
		routerGroup.With(handler.middleware.RateLimit(constant.RateLimitBucketForms)).Post("/{id}/submit", handler.Submit)
		routerGroup.Post("/{id}/reset", handler.Reset)
	})
}

// Open starts a public form instance in the idle state.
// @Summary Open a form
// @Description Opens a contact, room booking, package booking or event inquiry form.
// @Tags Form
// @Accept json
// @Produce json
// @Param request body dto.OpenRequest true "Form kind and target"
// @Success 201 {object} response.Data[model.Form]
// @Failure 400 {object} response.Error
// @Router /v1/forms [post]
func (handler *Handler) Open(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OpenForm")
	defer scope.End()

	req := dto.OpenRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	form, err := handler.service.Open(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to open form")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Form opened: " + string(form.Kind))

	response.WithJSON(w, http.StatusCreated, form)
}

// Get returns a form instance with its submission state.
// @Summary Get a form
// @Tags Form
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} response.Data[model.Form]
// @Failure 404 {object} response.Error
// @Router /v1/forms/{id} [get]
func (handler *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetForm")
	defer scope.End()

	form, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, form)
}

// Submit validates the fields and sends the inquiry. A backend rejection answers 200
// with the message in the form's submission; invalid fields answer 400 and change nothing.
// @Summary Submit a form
// @Tags Form
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param request body model.Fields true "Form fields"
// @Success 200 {object} response.Data[model.Form]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 429 {object} response.Message
// @Router /v1/forms/{id}/submit [post]
func (handler *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitForm")
	defer scope.End()

	fields := model.Fields{}

	if err := validator.Validate(r.Body, &fields); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode form fields")

		response.WithError(w, err)

		return
	}

	form, err := handler.service.Submit(ctx, chi.URLParam(r, constant.RequestParamID), fields)
	if err != nil {
		scope.TraceError(err)
		log.Info().Err(err).Msg("form submission refused")

		response.WithError(w, err)

		return
	}

	scope.SetAttribute("form.state", string(form.Submission.State))

	response.WithJSON(w, http.StatusOK, form)
}

// Reset returns a finished form to idle so another inquiry can be sent.
// @Summary Reset a form
// @Tags Form
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param request body dto.ResetRequest false "Reset options"
// @Success 200 {object} response.Data[model.Form]
// @Failure 409 {object} response.Error
// @Router /v1/forms/{id}/reset [post]
func (handler *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResetForm")
	defer scope.End()

	req := dto.ResetRequest{}

	if r.ContentLength != 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}
	}

	form, err := handler.service.Reset(ctx, chi.URLParam(r, constant.RequestParamID), req.ClearFields)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reset form")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, form)
}
