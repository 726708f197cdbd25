package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/url"
	"serenity/config"
	"serenity/infras/backend"
	"serenity/infras/otel"
	"serenity/internal/domains/eventinquiry/model"
	"serenity/internal/domains/eventinquiry/model/dto"
	inquiryModel "serenity/internal/domains/inquiry/model"
	inquiryService "serenity/internal/domains/inquiry/service"
	sessionModel "serenity/internal/domains/session/model"
	sessionService "serenity/internal/domains/session/service"
	"serenity/shared"
	"serenity/shared/cache"
	"serenity/shared/constant"
	"serenity/shared/listing"

	"github.com/rs/zerolog/log"
)

const (
	pathEventInquiry        = "/inquiries/event"
	pathAdminEventInquiries = "/admin/event-inquiries"

	queryEventType = "event_type"
	viewName       = "event-inquiry"
)

type Service interface {
	SubmitEvent(ctx context.Context, payload dto.EventPayload) error
	EventInquiries() listing.Flow[model.EventInquiry]
}

type serviceImpl struct {
	client backend.Client
	otel   otel.Otel
	list   *listing.List[model.EventInquiry]
}

func New(cfg *config.Config, client backend.Client, redisCache cache.RedisCache, sessions sessionService.Provider, otel otel.Otel) Service {
	store := cache.NewStore[listing.View[model.EventInquiry]](
		redisCache,
		shared.BuildCacheKey("view", viewName, constant.Empty),
		cfg.Session.ViewTTLMinutes*constant.MinutesToSeconds,
	)

	s := &serviceImpl{
		client: client,
		otel:   otel,
	}
	s.list = listing.New[model.EventInquiry](&resource{client: client}, store, listing.Options{
		Name:     model.EntityName,
		Statuses: inquiryService.StatusNames(),
		Types:    model.EventTypes,
		Limit:    constant.DefaultValueLimit,
	})

	sessions.Subscribe(func(change sessionModel.Change) {
		if !change.LoggedOut {
			return
		}

		if err := s.list.Forget(context.Background(), change.SessionID); err != nil {
			log.Warn().Err(err).Msg("failed to drop event inquiry view")
		}
	})

	return s
}

func (s *serviceImpl) SubmitEvent(ctx context.Context, payload dto.EventPayload) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EventInquiry.SubmitEvent")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("event.type", payload.EventType)

	if err = s.client.Post(ctx, pathEventInquiry, payload, constant.Empty, nil); err != nil {
		log.Error().Err(err).Str("event_type", payload.EventType).Msg("failed to submit event inquiry")

		return fmt.Errorf("failed to submit event inquiry: %w", err)
	}

	return nil
}

func (s *serviceImpl) EventInquiries() listing.Flow[model.EventInquiry] {
	return s.list
}

type resource struct {
	client backend.Client
}

func (r *resource) Fetch(ctx context.Context, token string, query listing.Query) (listing.Page[model.EventInquiry], error) {
	var res dto.ListResponse
	path := pathAdminEventInquiries + "?" + inquiryService.PageQuery(query, queryEventType)
	if err := r.client.Get(ctx, path, token, &res); err != nil {
		return listing.Page[model.EventInquiry]{}, fmt.Errorf("failed to list event inquiries: %w", err)
	}

	rows := make([]model.EventInquiry, 0, len(res.EventInquiries))
	for _, row := range res.EventInquiries {
		row.VenueLabel = model.VenueLabel(row.VenuePreference)
		rows = append(rows, row)
	}

	return listing.Page[model.EventInquiry]{Rows: rows, Total: res.Total}, nil
}

func (r *resource) Transition(row model.EventInquiry, action string) (model.EventInquiry, bool, error) {
	next, changed, err := row.Status.Apply(inquiryModel.Action(action))
	if err != nil {
		return row, false, err
	}
	row.Status = next

	return row, changed, nil
}

func (r *resource) Commit(ctx context.Context, token string, row model.EventInquiry, action string) error {
	target, _ := inquiryModel.Action(action).Target()

	path := pathAdminEventInquiries + "/" + url.PathEscape(row.ID.String())
	if err := r.client.Patch(ctx, path, dto.StatusRequest{Status: target}, token, nil); err != nil {
		return fmt.Errorf("failed to update event inquiry %s: %w", row.ID, err)
	}

	return nil
}

func (r *resource) ID(row model.EventInquiry) string {
	return row.ID.String()
}

func (r *resource) Actions(row model.EventInquiry) []string {
	return inquiryService.ActionNames(row.Status)
}
