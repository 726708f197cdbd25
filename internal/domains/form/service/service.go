package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"serenity/config"
	"serenity/infras/otel"
	eventModel "serenity/internal/domains/eventinquiry/model"
	eventDto "serenity/internal/domains/eventinquiry/model/dto"
	eventService "serenity/internal/domains/eventinquiry/service"
	"serenity/internal/domains/form/model"
	"serenity/internal/domains/form/model/dto"
	inquiryDto "serenity/internal/domains/inquiry/model/dto"
	inquiryService "serenity/internal/domains/inquiry/service"
	"serenity/shared"
	"serenity/shared/cache"
	"serenity/shared/constant"
	"serenity/shared/failure"
	"serenity/shared/flow"
	"serenity/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	MessageGeneric   = "Something went wrong. Please try again."
	MessageCancelled = "The submission was cancelled before it finished. Please try again."
	// MessageInterrupted replaces a submission whose in-flight marker lapsed without an outcome.
	MessageInterrupted = "The previous submission did not finish. Please try again."

	inflightSuffix = "inflight"
	// lockSeconds bounds the in-flight marker when no backend timeout is configured.
	lockSeconds = 120
)

type Service interface {
	Open(ctx context.Context, req dto.OpenRequest) (model.Form, error)
	Get(ctx context.Context, id string) (model.Form, error)
	// Submit validates fields, then sends exactly one backend request. Validation
	// failures leave the submission state untouched.
	Submit(ctx context.Context, id string, fields model.Fields) (model.Form, error)
	Reset(ctx context.Context, id string, clearFields bool) (model.Form, error)
}

type serviceImpl struct {
	cache     cache.RedisCache
	store     *cache.Store[model.Form]
	inquiries inquiryService.Service
	events    eventService.Service
	otel      otel.Otel
	lockTTL   int
}

func New(cfg *config.Config, redisCache cache.RedisCache, inquiries inquiryService.Service, events eventService.Service, otel otel.Otel) Service {
	lockTTL := lockSeconds
	if cfg.Backend.TimeoutSeconds > 0 {
		lockTTL = cfg.Backend.TimeoutSeconds + 1
	}

	return &serviceImpl{
		cache:     redisCache,
		store:     cache.NewStore[model.Form](redisCache, shared.BuildCacheKey(model.EntityName, constant.Empty), cfg.Session.FormTTLMinutes*constant.MinutesToSeconds),
		inquiries: inquiries,
		events:    events,
		otel:      otel,
		lockTTL:   lockTTL,
	}
}

func (s *serviceImpl) Open(ctx context.Context, req dto.OpenRequest) (res model.Form, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Form.Open")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	target, err := req.Target()
	if err != nil {
		return res, err
	}

	res = model.Form{
		ID:         uuid.NewString(),
		Kind:       req.Kind,
		Target:     target,
		Submission: flow.New(),
	}
	res.Hints = hints(res)

	if err = s.store.Save(ctx, res.ID, res); err != nil {
		log.Error().Err(err).Str("kind", string(req.Kind)).Msg("failed to store form")

		return res, fmt.Errorf("failed to open form: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res model.Form, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Form.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.load(ctx, id)
}

func (s *serviceImpl) load(ctx context.Context, id string) (model.Form, error) {
	form, found, err := s.store.Load(ctx, id)
	if err != nil {
		return form, err
	}
	if !found {
		return form, failure.NotFound(model.EntityName + " not found")
	}

	if form.Submission.InFlight() {
		form = s.settleStale(ctx, form)
	}

	form.Hints = hints(form)

	return form, nil
}

// settleStale fails a Submitting form whose in-flight marker is gone, so it can be
// resubmitted or reset instead of staying stuck until the form expires.
func (s *serviceImpl) settleStale(ctx context.Context, form model.Form) model.Form {
	var marker string
	err := s.cache.Get(ctx, s.lockKey(form.ID), &marker)
	if err == nil {
		return form
	}
	if !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Str("form", form.ID).Msg("failed to check in-flight marker")

		return form
	}

	_ = form.Submission.Fail(MessageInterrupted)
	if err = s.store.Save(ctx, form.ID, form); err != nil {
		log.Warn().Err(err).Str("form", form.ID).Msg("failed to store interrupted form")
	}
	log.Warn().Str("form", form.ID).Str("kind", string(form.Kind)).Msg("in-flight marker lapsed, form marked failed")

	return form
}

func (s *serviceImpl) lockKey(id string) string {
	return shared.BuildCacheKey(model.EntityName, id, inflightSuffix)
}

func (s *serviceImpl) Submit(ctx context.Context, id string, fields model.Fields) (res model.Form, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Form.Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.load(ctx, id)
	if err != nil {
		return res, err
	}

	switch res.Submission.State {
	case flow.Submitting:
		return res, failure.SubmissionInProgress
	case flow.Succeeded:
		return res, failure.Conflict("this form was already sent; reset it to send another")
	}

	res.Fields = fields
	send, err := s.prepare(res)
	if err != nil {
		if saveErr := s.store.Save(ctx, id, res); saveErr != nil {
			log.Warn().Err(saveErr).Str("form", id).Msg("failed to keep rejected form fields")
		}

		return res, err
	}

	lockKey := s.lockKey(id)
	acquired, err := s.cache.Acquire(ctx, lockKey, s.lockTTL)
	if err != nil {
		return res, fmt.Errorf("failed to mark form in flight: %w", err)
	}
	if !acquired {
		return res, failure.SubmissionInProgress
	}
	defer func() {
		if delErr := s.cache.Delete(context.WithoutCancel(ctx), lockKey); delErr != nil {
			log.Warn().Err(delErr).Str("form", id).Msg("failed to clear in-flight marker")
		}
	}()

	if err = res.Submission.Begin(); err != nil {
		return res, failure.Conflict(err.Error())
	}
	if err = s.store.Save(ctx, id, res); err != nil {
		return res, fmt.Errorf("failed to store form: %w", err)
	}

	if sendErr := send(ctx); sendErr != nil {
		_ = res.Submission.Fail(message(sendErr))
		log.Warn().Err(sendErr).Str("form", id).Str("kind", string(res.Kind)).Msg("form submission failed")
	} else {
		_ = res.Submission.Succeed()
		if res.Kind == model.KindContact {
			res.Fields = model.Fields{}
		}
		log.Info().Str("form", id).Str("kind", string(res.Kind)).Msg("form submitted")
	}

	if err = s.store.Save(context.WithoutCancel(ctx), id, res); err != nil {
		return res, fmt.Errorf("failed to store form: %w", err)
	}

	return res, nil
}

// prepare validates the fields and returns the single backend call for the form.
func (s *serviceImpl) prepare(form model.Form) (func(context.Context) error, error) {
	f := form.Fields

	switch form.Kind {
	case model.KindContact:
		req := inquiryDto.ContactRequest{Name: f.Name, Email: f.Email, Phone: f.Phone, Subject: f.Subject, Message: f.Message}
		if err := req.Normalize(); err != nil {
			return nil, err
		}

		return func(ctx context.Context) error { return s.inquiries.SubmitContact(ctx, req) }, nil
	case model.KindBooking, model.KindPackage:
		req := inquiryDto.BookingRequest{
			Name: f.Name, Email: f.Email, Phone: f.Phone,
			CheckIn: f.CheckIn, CheckOut: f.CheckOut, Guests: f.Guests, Message: f.Message,
		}
		payload, err := req.ToPayload(form.Target)
		if err != nil {
			return nil, err
		}

		return func(ctx context.Context) error { return s.inquiries.SubmitBooking(ctx, payload) }, nil
	case model.KindEvent:
		req := eventDto.EventRequest{
			Name: f.Name, Email: f.Email, Phone: f.Phone,
			EventType: f.EventType, EventDate: f.EventDate, GuestCount: f.GuestCount,
			VenuePreference: f.VenuePreference, Message: f.Message,
		}
		payload, err := req.ToPayload()
		if err != nil {
			return nil, err
		}

		return func(ctx context.Context) error { return s.events.SubmitEvent(ctx, payload) }, nil
	default:
		return nil, failure.BadRequestFromString(fmt.Sprintf("unknown form kind %q", form.Kind))
	}
}

func (s *serviceImpl) Reset(ctx context.Context, id string, clearFields bool) (res model.Form, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Form.Reset")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if err = res.Submission.Reset(); err != nil {
		return res, failure.SubmissionInProgress
	}
	if clearFields {
		res.Fields = model.Fields{}
	}

	if err = s.store.Save(ctx, id, res); err != nil {
		return res, fmt.Errorf("failed to store form: %w", err)
	}

	return res, nil
}

// message is what the guest sees when a submission fails.
func message(err error) string {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return MessageCancelled
	}

	if fail, ok := failure.As(err); ok && fail.Message != constant.Empty {
		return fail.Message
	}

	return MessageGeneric
}

func hints(form model.Form) model.Hints {
	today := timezone.FormatDate(timezone.Today())

	switch form.Kind {
	case model.KindContact:
		return model.Hints{Subjects: inquiryDto.Subjects}
	case model.KindBooking:
		return model.Hints{
			MinCheckIn:      today,
			MinCheckOut:     inquiryDto.MinCheckOut(form.Fields.CheckIn),
			MaxGuests:       inquiryDto.MaxRoomGuests,
			SuggestedGuests: form.Target.Capacity,
		}
	case model.KindPackage:
		return model.Hints{
			MinCheckIn:      today,
			MinCheckOut:     inquiryDto.MinCheckOut(form.Fields.CheckIn),
			SuggestedGuests: form.Target.Capacity,
		}
	case model.KindEvent:
		return model.Hints{
			MinDate:    today,
			MaxGuests:  eventDto.MaxGuestCount,
			EventTypes: eventModel.EventTypes,
			Venues:     model.Venues(),
		}
	default:
		return model.Hints{}
	}
}
