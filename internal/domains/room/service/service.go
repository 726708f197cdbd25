package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"serenity/config"
	"serenity/infras/backend"
	"serenity/infras/otel"
	"serenity/infras/s3"
	"serenity/internal/domains/room/model"
	"serenity/internal/domains/room/model/dto"
	sessionModel "serenity/internal/domains/session/model"
	sessionService "serenity/internal/domains/session/service"
	"serenity/shared"
	"serenity/shared/cache"
	"serenity/shared/constant"
	"serenity/shared/failure"
	"serenity/shared/listing"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	pathAdminRooms = "/admin/rooms"

	viewName  = "room"
	draftName = "room-draft"
)

type Room interface {
	// Rooms is the admin room table, inactive rooms included.
	Rooms() listing.Flow[model.Room]

	NewDraft(ctx context.Context) (model.Draft, error)
	// EditDraft copies a room from the admin table into a new draft.
	EditDraft(ctx context.Context, roomID string) (model.Draft, error)
	GetDraft(ctx context.Context, draftID string) (model.Draft, error)
	UpdateDraft(ctx context.Context, draftID string, req dto.DraftRequest) (model.Draft, error)
	AddAmenity(ctx context.Context, draftID, value string) (model.Draft, error)
	RemoveAmenity(ctx context.Context, draftID, value string) (model.Draft, error)
	AddImage(ctx context.Context, draftID, value string) (model.Draft, error)
	RemoveImage(ctx context.Context, draftID, value string) (model.Draft, error)
	UploadImage(ctx context.Context, draftID string, req dto.UploadImageRequest) (dto.UploadImageResponse, error)
	// SaveDraft sends the draft to the backend. A saved draft is discarded and the room table refetched.
	SaveDraft(ctx context.Context, draftID string) (model.Draft, error)
	DiscardDraft(ctx context.Context, draftID string) error
}

type serviceImpl struct {
	client backend.Client
	otel   otel.Otel
	s3     s3.S3
	list   *listing.List[model.Room]
	drafts *cache.Store[model.Draft]
}

func New(cfg *config.Config, client backend.Client, redisCache cache.RedisCache, sessions sessionService.Provider, otel otel.Otel, s3 s3.S3) Room {
	ttl := cfg.Session.ViewTTLMinutes * constant.MinutesToSeconds

	s := &serviceImpl{
		client: client,
		otel:   otel,
		s3:     s3,
		drafts: cache.NewStore[model.Draft](redisCache, shared.BuildCacheKey(draftName, constant.Empty), ttl),
	}
	s.list = listing.New[model.Room](
		&resource{client: client},
		cache.NewStore[listing.View[model.Room]](redisCache, shared.BuildCacheKey("view", viewName, constant.Empty), ttl),
		listing.Options{Name: model.EntityName},
	)

	sessions.Subscribe(func(change sessionModel.Change) {
		if !change.LoggedOut {
			return
		}

		if err := s.list.Forget(context.Background(), change.SessionID); err != nil {
			log.Warn().Err(err).Msg("failed to drop room view")
		}
	})

	return s
}

func (s *serviceImpl) Rooms() listing.Flow[model.Room] {
	return s.list
}

// draftKey scopes drafts to the admin session that opened them.
func draftKey(ctx context.Context, draftID string) (string, error) {
	viewer := shared.ViewerFromContext(ctx)
	if viewer.SessionID == constant.Empty {
		return constant.Empty, failure.SessionRequired
	}

	return shared.BuildCacheKey(viewer.SessionID, draftID), nil
}

func (s *serviceImpl) loadDraft(ctx context.Context, draftID string) (model.Draft, error) {
	key, err := draftKey(ctx, draftID)
	if err != nil {
		return model.Draft{}, err
	}

	draft, found, err := s.drafts.Load(ctx, key)
	if err != nil {
		return draft, err
	}
	if !found {
		return draft, failure.NotFound(model.DraftEntityName + " not found")
	}

	return draft, nil
}

func (s *serviceImpl) saveDraft(ctx context.Context, draft model.Draft) error {
	key, err := draftKey(ctx, draft.ID)
	if err != nil {
		return err
	}

	if err = s.drafts.Save(context.WithoutCancel(ctx), key, draft); err != nil {
		return fmt.Errorf("failed to store room draft: %w", err)
	}

	return nil
}

func (s *serviceImpl) NewDraft(ctx context.Context) (res model.Draft, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.NewDraft")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res = model.NewDraft(uuid.NewString())

	return res, s.saveDraft(ctx, res)
}

func (s *serviceImpl) EditDraft(ctx context.Context, roomID string) (res model.Draft, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.EditDraft")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	view, err := s.list.Current(ctx)
	if err != nil {
		return res, err
	}

	for _, row := range view.Rows {
		if row.Item.ID.String() == roomID {
			res = model.EditDraft(uuid.NewString(), row.Item)

			return res, s.saveDraft(ctx, res)
		}
	}

	return res, failure.NotFound(model.EntityName + " not found")
}

func (s *serviceImpl) GetDraft(ctx context.Context, draftID string) (model.Draft, error) {
	return s.loadDraft(ctx, draftID)
}

// edit loads a draft, applies fn and stores it again.
func (s *serviceImpl) edit(ctx context.Context, draftID string, fn func(*model.Draft) error) (model.Draft, error) {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return draft, err
	}

	if draft.Submission.InFlight() {
		return draft, failure.SubmissionInProgress
	}

	if err = fn(&draft); err != nil {
		return draft, err
	}

	return draft, s.saveDraft(ctx, draft)
}

func (s *serviceImpl) UpdateDraft(ctx context.Context, draftID string, req dto.DraftRequest) (model.Draft, error) {
	return s.edit(ctx, draftID, func(d *model.Draft) error {
		req.Apply(d)
		return nil
	})
}

func (s *serviceImpl) AddAmenity(ctx context.Context, draftID, value string) (model.Draft, error) {
	return s.edit(ctx, draftID, func(d *model.Draft) error {
		d.AddAmenity(value)
		return nil
	})
}

func (s *serviceImpl) RemoveAmenity(ctx context.Context, draftID, value string) (model.Draft, error) {
	return s.edit(ctx, draftID, func(d *model.Draft) error {
		d.RemoveAmenity(value)
		return nil
	})
}

func (s *serviceImpl) AddImage(ctx context.Context, draftID, value string) (model.Draft, error) {
	return s.edit(ctx, draftID, func(d *model.Draft) error {
		d.AddImage(value)
		return nil
	})
}

func (s *serviceImpl) RemoveImage(ctx context.Context, draftID, value string) (model.Draft, error) {
	return s.edit(ctx, draftID, func(d *model.Draft) error {
		d.RemoveImage(value)
		return nil
	})
}

func (s *serviceImpl) UploadImage(ctx context.Context, draftID string, req dto.UploadImageRequest) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.UploadImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.loadDraft(ctx, draftID); err != nil {
		return res, err
	}

	filename := uuid.NewString() + strings.ToLower(filepath.Ext(req.Image.Filename))

	imageURL, err := s.s3.Upload(ctx, s3.Object{
		Directory:   model.ImageDirectory,
		Name:        filename,
		ContentType: req.Image.Header.Get(constant.RequestHeaderContentType),
		Size:        req.Image.Size,
		Body:        req.ImageFile,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to upload room image")

		return res, fmt.Errorf("failed to upload image: %w", err)
	}

	draft, err := s.edit(ctx, draftID, func(d *model.Draft) error {
		d.AddImage(imageURL)
		d.Uploaded = append(d.Uploaded, imageURL)
		return nil
	})
	if err != nil {
		s.deleteImages(ctx, []string{imageURL})

		return res, err
	}

	return dto.UploadImageResponse{URL: imageURL, Draft: draft}, nil
}

func (s *serviceImpl) SaveDraft(ctx context.Context, draftID string) (res model.Draft, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.SaveDraft")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.loadDraft(ctx, draftID)
	if err != nil {
		return res, err
	}

	payload, err := dto.NewRoomPayload(res.Room)
	if err != nil {
		return res, err
	}

	if err = res.Submission.Begin(); err != nil {
		return res, failure.SubmissionInProgress
	}
	if err = s.saveDraft(ctx, res); err != nil {
		return res, err
	}

	token := shared.ViewerFromContext(ctx).Token
	var saved dto.RoomResponse
	if res.Editing() {
		err = s.client.Patch(ctx, pathAdminRooms+"/"+url.PathEscape(res.RoomID.String()), payload, token, &saved)
	} else {
		err = s.client.Post(ctx, pathAdminRooms, payload, token, &saved)
	}

	if err != nil {
		log.Warn().Err(err).Str("draft", draftID).Msg("failed to save room")
		_ = res.Submission.Fail(failureMessage(err))

		return res, s.saveDraft(ctx, res)
	}

	_ = res.Submission.Succeed()
	if saved.Room.ID != "" {
		res.Room = saved.Room
		res.RoomID = saved.Room.ID
	}

	s.deleteImages(ctx, res.Orphans())

	key, _ := draftKey(ctx, draftID)
	if err = s.drafts.Delete(context.WithoutCancel(ctx), key); err != nil {
		log.Warn().Err(err).Str("draft", draftID).Msg("failed to drop saved room draft")
	}

	if _, err = s.list.Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to refresh rooms after save")
	}

	return res, nil
}

func (s *serviceImpl) DiscardDraft(ctx context.Context, draftID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room.DiscardDraft")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return err
	}

	s.deleteImages(ctx, draft.Uploaded)

	key, _ := draftKey(ctx, draftID)

	return s.drafts.Delete(ctx, key)
}

// deleteImages removes uploads nothing references any more. Failures only leave stray objects.
func (s *serviceImpl) deleteImages(ctx context.Context, urls []string) {
	for _, imageURL := range urls {
		if err := s.s3.Delete(context.WithoutCancel(ctx), imageURL); err != nil {
			log.Warn().Err(err).Str("url", imageURL).Msg("failed to delete unused room image")
		}
	}
}

func failureMessage(err error) string {
	if fail, ok := failure.As(err); ok {
		return fail.Message
	}

	return "Failed to save room"
}

type resource struct {
	client backend.Client
}

func (r *resource) Fetch(ctx context.Context, token string, _ listing.Query) (listing.Page[model.Room], error) {
	var res dto.RoomsResponse
	if err := r.client.Get(ctx, pathAdminRooms+"?"+constant.RequestParamInactive+"=true", token, &res); err != nil {
		return listing.Page[model.Room]{}, fmt.Errorf("failed to list rooms: %w", err)
	}

	if res.Rooms == nil {
		res.Rooms = []model.Room{}
	}

	return listing.Page[model.Room]{Rows: res.Rooms, Total: len(res.Rooms)}, nil
}

func (r *resource) Transition(row model.Room, action string) (model.Room, bool, error) {
	switch action {
	case model.ActionToggleFeatured:
		row.IsFeatured = !row.IsFeatured
	case model.ActionToggleActive:
		row.IsActive = !row.IsActive
	default:
		return row, false, fmt.Errorf("unknown room action %q", action)
	}

	return row, true, nil
}

func (r *resource) Commit(ctx context.Context, token string, row model.Room, action string) error {
	base := pathAdminRooms + "/" + url.PathEscape(row.ID.String())

	var err error
	switch {
	case action == model.ActionToggleFeatured:
		err = r.client.Post(ctx, base+"/toggle-featured", struct{}{}, token, nil)
	case row.IsActive:
		err = r.client.Delete(ctx, base, token, nil)
	default:
		err = r.client.Post(ctx, base+"/activate", struct{}{}, token, nil)
	}

	if err != nil {
		return fmt.Errorf("failed to %s room %s: %w", action, row.ID, err)
	}

	return nil
}

func (r *resource) ID(row model.Room) string {
	return row.ID.String()
}

func (r *resource) Actions(_ model.Room) []string {
	return []string{model.ActionToggleFeatured, model.ActionToggleActive}
}
