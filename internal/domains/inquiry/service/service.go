package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/url"
	"serenity/config"
	"serenity/infras/backend"
	"serenity/infras/otel"
	"serenity/internal/domains/inquiry/model"
	"serenity/internal/domains/inquiry/model/dto"
	sessionModel "serenity/internal/domains/session/model"
	sessionService "serenity/internal/domains/session/service"
	"serenity/shared"
	"serenity/shared/cache"
	"serenity/shared/constant"
	"serenity/shared/listing"
	"strconv"

	"github.com/rs/zerolog/log"
)

const (
	pathContact        = "/contact"
	pathInquiries      = "/inquiries"
	pathAdminInquiries = "/admin/inquiries"

	queryInquiryType = "inquiry_type"
)

var Types = []string{model.TypeBooking, model.TypeGeneral}

type Service interface {
	SubmitContact(ctx context.Context, req dto.ContactRequest) error
	SubmitBooking(ctx context.Context, payload dto.BookingPayload) error
	// Inquiries is the admin inquiry table of the session on ctx.
	Inquiries() listing.Flow[model.Inquiry]
}

type serviceImpl struct {
	client backend.Client
	otel   otel.Otel
	list   *listing.List[model.Inquiry]
}

func New(cfg *config.Config, client backend.Client, redisCache cache.RedisCache, sessions sessionService.Provider, otel otel.Otel) Service {
	store := cache.NewStore[listing.View[model.Inquiry]](
		redisCache,
		shared.BuildCacheKey("view", model.EntityName, constant.Empty),
		cfg.Session.ViewTTLMinutes*constant.MinutesToSeconds,
	)

	s := &serviceImpl{
		client: client,
		otel:   otel,
	}
	s.list = listing.New[model.Inquiry](&resource{client: client}, store, listing.Options{
		Name:     model.EntityName,
		Statuses: StatusNames(),
		Types:    Types,
		Limit:    constant.DefaultValueLimit,
	})

	sessions.Subscribe(func(change sessionModel.Change) {
		if !change.LoggedOut {
			return
		}

		if err := s.list.Forget(context.Background(), change.SessionID); err != nil {
			log.Warn().Err(err).Msg("failed to drop inquiry view")
		}
	})

	return s
}

func (s *serviceImpl) SubmitContact(ctx context.Context, req dto.ContactRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Inquiry.SubmitContact")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.client.Post(ctx, pathContact, req, constant.Empty, nil); err != nil {
		log.Error().Err(err).Msg("failed to submit contact inquiry")

		return fmt.Errorf("failed to submit contact inquiry: %w", err)
	}

	return nil
}

func (s *serviceImpl) SubmitBooking(ctx context.Context, payload dto.BookingPayload) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Inquiry.SubmitBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.client.Post(ctx, pathInquiries, payload, constant.Empty, nil); err != nil {
		log.Error().Err(err).Str("room_id", payload.RoomID.String()).Msg("failed to submit booking inquiry")

		return fmt.Errorf("failed to submit booking inquiry: %w", err)
	}

	return nil
}

func (s *serviceImpl) Inquiries() listing.Flow[model.Inquiry] {
	return s.list
}

// StatusNames lists the status filter values accepted by admin inquiry tables.
func StatusNames() []string {
	names := make([]string, 0, len(model.Statuses))
	for _, status := range model.Statuses {
		names = append(names, string(status))
	}

	return names
}

// ActionNames converts the actions available on status into row actions.
func ActionNames(status model.Status) []string {
	actions := status.AvailableActions()
	names := make([]string, 0, len(actions))
	for _, action := range actions {
		names = append(names, string(action))
	}

	return names
}

// PageQuery encodes a list query for the backend, naming the type filter typeParam.
func PageQuery(query listing.Query, typeParam string) string {
	values := url.Values{}
	values.Set(constant.RequestParamLimit, strconv.Itoa(query.Limit))
	values.Set(constant.RequestParamOffset, strconv.Itoa(query.Offset))

	if query.Status != constant.Empty {
		values.Set(constant.RequestParamStatus, query.Status)
	}
	if query.Type != constant.Empty {
		values.Set(typeParam, query.Type)
	}

	return values.Encode()
}

type resource struct {
	client backend.Client
}

func (r *resource) Fetch(ctx context.Context, token string, query listing.Query) (listing.Page[model.Inquiry], error) {
	var res dto.ListResponse
	if err := r.client.Get(ctx, pathAdminInquiries+"?"+PageQuery(query, queryInquiryType), token, &res); err != nil {
		return listing.Page[model.Inquiry]{}, fmt.Errorf("failed to list inquiries: %w", err)
	}

	if res.Inquiries == nil {
		res.Inquiries = []model.Inquiry{}
	}

	return listing.Page[model.Inquiry]{Rows: res.Inquiries, Total: res.Total}, nil
}

func (r *resource) Transition(row model.Inquiry, action string) (model.Inquiry, bool, error) {
	next, changed, err := row.Status.Apply(model.Action(action))
	if err != nil {
		return row, false, err
	}
	row.Status = next

	return row, changed, nil
}

func (r *resource) Commit(ctx context.Context, token string, row model.Inquiry, action string) error {
	target, _ := model.Action(action).Target()

	if err := r.client.Patch(ctx, pathAdminInquiries+"/"+url.PathEscape(row.ID.String()), dto.StatusRequest{Status: target}, token, nil); err != nil {
		return fmt.Errorf("failed to update inquiry %s: %w", row.ID, err)
	}

	return nil
}

func (r *resource) ID(row model.Inquiry) string {
	return row.ID.String()
}

func (r *resource) Actions(row model.Inquiry) []string {
	return ActionNames(row.Status)
}
