package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"serenity/config"
	backendMocks "serenity/infras/backend/mocks"
	otelMocks "serenity/infras/otel/mocks"
	"serenity/internal/domains/session/model"
	"serenity/internal/domains/session/model/dto"
	"serenity/internal/domains/session/service"
	"serenity/shared/cache/cachetest"
	"serenity/shared/failure"
)

func TestProvider_LoginStoresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := backendMocks.NewMockClient(ctrl)
	memory := cachetest.NewMemory()

	provider := service.New(&config.Config{}, mockClient, memory, otelMocks.NewOtel())

	mockClient.EXPECT().
		Post(gomock.Any(), "/auth/login", dto.LoginRequest{Email: "manager@wima.test", Password: " secret "}, "", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ any, _ string, out any) error {
			res := out.(*dto.LoginResponse)
			res.Token = "backend-token"
			res.User = model.User{ID: "1", Name: "Mina", Role: "manager"}
			return nil
		})

	var changes []model.Change
	unsubscribe := provider.Subscribe(func(c model.Change) { changes = append(changes, c) })
	defer unsubscribe()

	session, err := provider.Login(context.Background(), "", dto.LoginRequest{Email: "  manager@wima.test ", Password: " secret "})
	require.NoError(t, err)

	assert.NotEmpty(t, session.ID)
	assert.True(t, session.Authenticated())
	assert.True(t, memory.Has("session:"+session.ID+":wima_admin_token"))
	assert.True(t, memory.Has("session:"+session.ID+":wima_admin_user"))

	current, err := provider.Current(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, "backend-token", current.Token)
	require.NotNil(t, current.User)
	assert.True(t, current.User.CanManageRooms())

	require.Len(t, changes, 1)
	assert.Equal(t, session.ID, changes[0].SessionID)
}

func TestProvider_LoginRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := backendMocks.NewMockClient(ctrl)
	memory := cachetest.NewMemory()

	provider := service.New(&config.Config{}, mockClient, memory, otelMocks.NewOtel())

	_, err := provider.Save(context.Background(), "old", "old-token", model.User{Role: "staff"})
	require.NoError(t, err)

	mockClient.EXPECT().
		Post(gomock.Any(), "/auth/login", gomock.Any(), "", gomock.Any()).
		Return(failure.Unauthorized("Invalid credentials"))

	_, err = provider.Login(context.Background(), "old", dto.LoginRequest{Email: "a@b.c", Password: "x"})

	assert.EqualError(t, errors.Unwrap(err), "Invalid credentials")
	assert.True(t, memory.Has("session:old:wima_admin_token"), "a failed login keeps the previous session")
}

func TestProvider_LogoutClearsAndNotifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	memory := cachetest.NewMemory()
	provider := service.New(&config.Config{}, backendMocks.NewMockClient(ctrl), memory, otelMocks.NewOtel())

	_, err := provider.Save(context.Background(), "sid", "token", model.User{Name: "Ari", Role: "admin"})
	require.NoError(t, err)

	var loggedOut bool
	unsubscribe := provider.Subscribe(func(c model.Change) { loggedOut = c.LoggedOut })

	require.NoError(t, provider.Logout(context.Background(), "sid"))
	assert.True(t, loggedOut)
	assert.False(t, memory.Has("session:sid:wima_admin_token"))

	current, err := provider.Current(context.Background(), "sid")
	require.NoError(t, err)
	assert.False(t, current.Authenticated())

	unsubscribe()
	loggedOut = false
	_, err = provider.Save(context.Background(), "sid", "token", model.User{})
	require.NoError(t, err)
	require.NoError(t, provider.Logout(context.Background(), "sid"))
	assert.False(t, loggedOut, "unsubscribed listeners are not called")
}

func TestProvider_CurrentWithoutSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := service.New(&config.Config{}, backendMocks.NewMockClient(ctrl), cachetest.NewMemory(), otelMocks.NewOtel())

	for _, sessionID := range []string{"", "unknown"} {
		current, err := provider.Current(context.Background(), sessionID)
		require.NoError(t, err)
		assert.False(t, current.Authenticated())
		assert.Nil(t, current.User)
	}
}

func TestProvider_SessionExpires(t *testing.T) {
	ctrl := gomock.NewController(t)
	memory := cachetest.NewMemory()

	cfg := &config.Config{}
	cfg.Session.TTLMinutes = 720

	provider := service.New(cfg, backendMocks.NewMockClient(ctrl), memory, otelMocks.NewOtel())

	session, err := provider.Save(context.Background(), "sid", "backend-token", model.User{ID: "1", Role: "staff"})
	require.NoError(t, err)

	assert.Equal(t, 720*60, memory.TTL("session:"+session.ID+":wima_admin_token"))
	assert.Equal(t, 720*60, memory.TTL("session:"+session.ID+":wima_admin_user"))
}
