package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"serenity/config"
	backendMocks "serenity/infras/backend/mocks"
	otelMocks "serenity/infras/otel/mocks"
	"serenity/internal/domains/eventinquiry/model"
	"serenity/internal/domains/eventinquiry/model/dto"
	"serenity/internal/domains/eventinquiry/service"
	inquiryModel "serenity/internal/domains/inquiry/model"
	sessionService "serenity/internal/domains/session/service"
	"serenity/shared"
	"serenity/shared/cache/cachetest"
)

func newService(t *testing.T) (service.Service, *backendMocks.MockClient) {
	ctrl := gomock.NewController(t)
	mockClient := backendMocks.NewMockClient(ctrl)
	memory := cachetest.NewMemory()
	ot := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.Session.ViewTTLMinutes = 60

	return service.New(cfg, mockClient, memory, sessionService.New(cfg, mockClient, memory, ot), ot), mockClient
}

func TestService_SubmitEvent(t *testing.T) {
	svc, mockClient := newService(t)

	payload := dto.EventPayload{Name: "Grace", EventType: "wedding", GuestCount: 150, VenuePreference: "field_1"}
	mockClient.EXPECT().Post(gomock.Any(), "/inquiries/event", payload, "", nil).Return(nil)

	require.NoError(t, svc.SubmitEvent(context.Background(), payload))
}

func TestService_EventInquiriesMarkReplied(t *testing.T) {
	svc, mockClient := newService(t)
	ctx := shared.WithViewer(context.Background(), shared.Viewer{SessionID: "sid", Token: "tok"})

	row := model.EventInquiry{ID: "12", EventType: "wedding", VenuePreference: "field_2", Status: inquiryModel.StatusNew}
	replied := row
	replied.Status = inquiryModel.StatusReplied

	list := func(rows ...model.EventInquiry) func(context.Context, string, string, any) error {
		return func(_ context.Context, _, _ string, out any) error {
			res := out.(*dto.ListResponse)
			res.EventInquiries = rows
			res.Total = 41
			return nil
		}
	}

	gomock.InOrder(
		mockClient.EXPECT().Get(gomock.Any(), "/admin/event-inquiries?event_type=wedding&limit=20&offset=0", "tok", gomock.Any()).DoAndReturn(list(row)),
		mockClient.EXPECT().Patch(gomock.Any(), "/admin/event-inquiries/12", dto.StatusRequest{Status: inquiryModel.StatusReplied}, "tok", nil).Return(nil),
		mockClient.EXPECT().Get(gomock.Any(), "/admin/event-inquiries?event_type=wedding&limit=20&offset=0", "tok", gomock.Any()).DoAndReturn(list(replied)),
	)

	view, err := svc.EventInquiries().SetFilter(ctx, "", "wedding")
	require.NoError(t, err)
	assert.Equal(t, "Garden Terrace", view.Rows[0].Item.VenueLabel)
	assert.Equal(t, []string{"mark-read", "mark-replied", "archive"}, view.Rows[0].Actions)
	assert.Equal(t, 3, view.Pager.TotalPages)

	view, err = svc.EventInquiries().Apply(ctx, "12", "mark-replied")
	require.NoError(t, err)
	assert.Equal(t, inquiryModel.StatusReplied, view.Rows[0].Item.Status)
	assert.Equal(t, []string{"archive"}, view.Rows[0].Actions)
}

func TestVenueLabel(t *testing.T) {
	assert.Equal(t, "Main Event Field", model.VenueLabel("field_1"))
	assert.Equal(t, "No preference", model.VenueLabel(""))
	assert.Equal(t, "rooftop", model.VenueLabel("rooftop"))
}
