package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	backendMocks "serenity/infras/backend/mocks"
	otelMocks "serenity/infras/otel/mocks"
	"serenity/internal/domains/dashboard/model"
	"serenity/internal/domains/dashboard/service"
	"serenity/shared"
	"serenity/shared/failure"
)

func TestDashboard_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := backendMocks.NewMockClient(ctrl)
	svc := service.New(mockClient, otelMocks.NewOtel())

	ctx := shared.WithViewer(context.Background(), shared.Viewer{SessionID: "sid", Token: "tok"})

	mockClient.EXPECT().Get(gomock.Any(), "/admin/dashboard", "tok", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, out any) error {
			res := out.(*model.Response)
			res.Stats.Inquiries = model.InquiryStats{Total: 30, New: 4, Last7Days: 6}
			res.Stats.EventInquiries = model.InquiryStats{Total: 8, Last7Days: 2}
			res.Stats.Rooms = model.RoomStats{Total: 7, Featured: 3}
			return nil
		})

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, summary.ThisWeek)
	assert.Equal(t, 3, summary.Stats.Rooms.Featured)
}

func TestDashboard_SummaryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := backendMocks.NewMockClient(ctrl)
	svc := service.New(mockClient, otelMocks.NewOtel())

	mockClient.EXPECT().Get(gomock.Any(), gomock.Any(), "", gomock.Any()).Return(failure.Unauthorized("Invalid token"))

	_, err := svc.Summary(context.Background())

	assert.Equal(t, 401, failure.GetCode(err))
}
