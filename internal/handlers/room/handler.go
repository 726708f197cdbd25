package room

import (
	"context"
	"net/http"
	"serenity/config"
	"serenity/infras/otel"
	"serenity/internal/domains/room/model"
	"serenity/internal/domains/room/model/dto"
	"serenity/internal/domains/room/service"
	listingHandler "serenity/internal/handlers/listing"
	"serenity/shared/constant"
	"serenity/shared/failure"
	"serenity/shared/validator"
	"serenity/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	list    listingHandler.Handler[model.Room]
	otel    otel.Otel
	maxBody int64
}

func New(cfg *config.Config, service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		list:    listingHandler.New("Rooms", service.Rooms(), otel),
		otel:    otel,
		maxBody: int64(cfg.External.S3.MaxFileSizeMB+1) << 20,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		handler.list.Router(routerGroup)

		routerGroup.Post("/drafts", handler.NewDraft)
		routerGroup.Post("/{id}/draft", handler.EditDraft)
		routerGroup.Get("/drafts/{draftID}", handler.GetDraft)
		routerGroup.Patch("/drafts/{draftID}", handler.UpdateDraft)
		routerGroup.Delete("/drafts/{draftID}", handler.DiscardDraft)
		routerGroup.Post("/drafts/{draftID}/amenities", handler.AddAmenity)
		routerGroup.Delete("/drafts/{draftID}/amenities", handler.RemoveAmenity)
		routerGroup.Post("/drafts/{draftID}/images", handler.AddImage)
		routerGroup.Delete("/drafts/{draftID}/images", handler.RemoveImage)
		routerGroup.Post("/drafts/{draftID}/images/upload", handler.UploadImage)
		routerGroup.Post("/drafts/{draftID}/save", handler.SaveDraft)
	})
}

// NewDraft opens an empty room editor.
// @Summary Start a new room
// @Tags Room
// @Produce json
// @Success 201 {object} response.Data[model.Draft]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/admin/rooms/drafts [post]
func (handler *Handler) NewDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".NewDraft")
	defer scope.End()

	draft, err := handler.service.NewDraft(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to open room draft")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, draft)
}

// EditDraft opens the editor on a room from the current admin list.
// @Summary Edit a room
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 201 {object} response.Data[model.Draft]
// @Failure 404 {object} response.Error
// @Router /v1/admin/rooms/{id}/draft [post]
func (handler *Handler) EditDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EditDraft")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	draft, err := handler.service.EditDraft(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_id", id).Msg("failed to open room for editing")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, draft)
}

func (handler *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDraft")
	defer scope.End()

	draft, err := handler.service.GetDraft(ctx, chi.URLParam(r, constant.RequestParamDraftID))
	handler.respond(w, scope, draft, err)
}

// UpdateDraft patches the scalar fields of a draft.
// @Summary Update a room draft
// @Tags Room
// @Accept json
// @Produce json
// @Param draftID path string true "Draft ID"
// @Param request body dto.DraftRequest true "Changed fields"
// @Success 200 {object} response.Data[model.Draft]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/admin/rooms/drafts/{draftID} [patch]
func (handler *Handler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDraft")
	defer scope.End()

	req := dto.DraftRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	draft, err := handler.service.UpdateDraft(ctx, chi.URLParam(r, constant.RequestParamDraftID), req)
	handler.respond(w, scope, draft, err)
}

func (handler *Handler) AddAmenity(w http.ResponseWriter, r *http.Request) {
	handler.value(w, r, "AddAmenity", handler.service.AddAmenity)
}

func (handler *Handler) RemoveAmenity(w http.ResponseWriter, r *http.Request) {
	handler.value(w, r, "RemoveAmenity", handler.service.RemoveAmenity)
}

func (handler *Handler) AddImage(w http.ResponseWriter, r *http.Request) {
	handler.value(w, r, "AddImage", handler.service.AddImage)
}

func (handler *Handler) RemoveImage(w http.ResponseWriter, r *http.Request) {
	handler.value(w, r, "RemoveImage", handler.service.RemoveImage)
}

// UploadImage stores an image and appends its public URL to the draft.
// @Summary Upload a room image
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param draftID path string true "Draft ID"
// @Param file formData file true "Image"
// @Success 200 {object} response.Data[dto.UploadImageResponse]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/admin/rooms/drafts/{draftID}/images/upload [post]
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	r.Body = http.MaxBytesReader(w, r.Body, handler.maxBody)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, failure.BadRequest(err))

		return
	}
	defer file.Close()

	req := dto.UploadImageRequest{
		Image:     fileHeader,
		ImageFile: file,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadImage(ctx, chi.URLParam(r, constant.RequestParamDraftID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload room image")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room image uploaded")

	response.WithJSON(w, http.StatusOK, res)
}

// SaveDraft sends the draft to the backend. A rejected save answers 200 with the
// failure recorded on the draft's submission.
// @Summary Save a room draft
// @Tags Room
// @Produce json
// @Param draftID path string true "Draft ID"
// @Success 200 {object} response.Data[model.Draft]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/admin/rooms/drafts/{draftID}/save [post]
func (handler *Handler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveDraft")
	defer scope.End()

	draft, err := handler.service.SaveDraft(ctx, chi.URLParam(r, constant.RequestParamDraftID))
	handler.respond(w, scope, draft, err)
}

// DiscardDraft drops the draft and any images uploaded for it.
// @Summary Discard a room draft
// @Tags Room
// @Produce json
// @Param draftID path string true "Draft ID"
// @Success 200 {object} response.Message
// @Router /v1/admin/rooms/drafts/{draftID} [delete]
func (handler *Handler) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DiscardDraft")
	defer scope.End()

	if err := handler.service.DiscardDraft(ctx, chi.URLParam(r, constant.RequestParamDraftID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to discard room draft")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Room draft discarded")
}

func (handler *Handler) value(w http.ResponseWriter, r *http.Request, name string, fn func(ctx context.Context, draftID, value string) (model.Draft, error)) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	req := dto.ValueRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	draft, err := fn(ctx, chi.URLParam(r, constant.RequestParamDraftID), req.Value)
	handler.respond(w, scope, draft, err)
}

func (handler *Handler) respond(w http.ResponseWriter, scope otel.Scope, draft model.Draft, err error) {
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("room draft request failed")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, draft)
}
