package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"serenity/config"
	"serenity/infras/backend"
	otelMocks "serenity/infras/otel/mocks"
	"serenity/shared/failure"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) backend.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Backend.BaseURL = server.URL + "/"

	return backend.New(cfg, otelMocks.NewOtel())
}

func TestClient_RequestShape(t *testing.T) {
	tests := []struct {
		name       string
		call       func(backend.Client) error
		method     string
		path       string
		auth       string
		expectBody string
	}{
		{
			name:   "get without token",
			call:   func(c backend.Client) error { return c.Get(context.Background(), "/rooms/featured", "", nil) },
			method: http.MethodGet,
			path:   "/api/rooms/featured",
		},
		{
			name: "post with token",
			call: func(c backend.Client) error {
				return c.Post(context.Background(), "/admin/rooms/7/toggle-featured", map[string]any{}, "tok", nil)
			},
			method:     http.MethodPost,
			path:       "/api/admin/rooms/7/toggle-featured",
			auth:       "Bearer tok",
			expectBody: `{}`,
		},
		{
			name: "patch with body",
			call: func(c backend.Client) error {
				return c.Patch(context.Background(), "/admin/inquiries/3", map[string]string{"status": "read"}, "tok", nil)
			},
			method:     http.MethodPatch,
			path:       "/api/admin/inquiries/3",
			auth:       "Bearer tok",
			expectBody: `{"status":"read"}`,
		},
		{
			name:   "delete",
			call:   func(c backend.Client) error { return c.Delete(context.Background(), "/admin/rooms/7", "tok", nil) },
			method: http.MethodDelete,
			path:   "/api/admin/rooms/7",
			auth:   "Bearer tok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.method, r.Method)
				assert.Equal(t, tt.path, r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.Equal(t, tt.auth, r.Header.Get("Authorization"))

				body, _ := io.ReadAll(r.Body)
				if tt.expectBody != "" {
					assert.JSONEq(t, tt.expectBody, string(body))
				} else {
					assert.Empty(t, body)
				}

				_, _ = w.Write([]byte(`{"ok":true}`))
			})

			assert.NoError(t, tt.call(client))
		})
	}
}

func TestClient_DecodesSuccess(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"rooms": []map[string]any{{"id": "r1", "name": "Premier Room"}},
		})
	})

	var out struct {
		Rooms []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"rooms"`
	}

	require.NoError(t, client.Get(context.Background(), "/rooms", "", &out))
	require.Len(t, out.Rooms, 1)
	assert.Equal(t, "Premier Room", out.Rooms[0].Name)
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		code        int
		message     string
		unreachable bool
	}{
		{name: "backend message is surfaced verbatim", status: http.StatusUnauthorized, body: `{"error":"Invalid credentials"}`, code: http.StatusUnauthorized, message: "Invalid credentials"},
		{name: "missing message falls back to status", status: http.StatusInternalServerError, body: `{}`, code: http.StatusInternalServerError, message: "Request failed: 500"},
		{name: "non json error body", status: http.StatusBadGateway, body: `<html>bad gateway</html>`, code: http.StatusBadGateway, message: "Request failed: 502"},
		{name: "malformed success body", status: http.StatusOK, body: `{"rooms":`, code: http.StatusBadGateway, message: backend.MessageUnreachable, unreachable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			var out map[string]any
			err := client.Get(context.Background(), "/rooms", "", &out)

			require.Error(t, err)
			assert.Equal(t, tt.code, failure.GetCode(err))
			assert.Equal(t, tt.message, err.Error())
			assert.Equal(t, tt.unreachable, errors.Is(err, backend.ErrUnreachable))
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	cfg := &config.Config{}
	cfg.Backend.BaseURL = server.URL
	client := backend.New(cfg, otelMocks.NewOtel())

	err := client.Get(context.Background(), "/rooms", "", nil)

	assert.ErrorIs(t, err, backend.ErrUnreachable)
	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	assert.True(t, backend.IsOutage(err))
}

func TestClient_Cancellation(t *testing.T) {
	release := make(chan struct{})
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := client.Get(ctx, "/rooms", "", nil)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.ErrorIs(t, err, backend.ErrUnreachable)
}

func TestIsOutage(t *testing.T) {
	assert.False(t, backend.IsOutage(failure.NotFound("room not found")))
	assert.True(t, backend.IsOutage(&failure.Failure{Code: http.StatusServiceUnavailable, Message: "down"}))
}

func TestClient_CallerCancelIsNotOutage(t *testing.T) {
	release := make(chan struct{})
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	err := client.Get(ctx, "/rooms", "", nil)

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, backend.IsOutage(err))
}

func TestBreaker_IgnoresCallerCancel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Backend.Breaker.MaxFailures = 2
	cfg.Backend.Breaker.TimeoutSeconds = 30
	breaker := backend.NewBreaker(cfg)

	cancelled := fmt.Errorf("failed to load rooms: %w", context.Canceled)
	for range 5 {
		_, err := breaker.Execute(func() (any, error) { return nil, cancelled })
		assert.ErrorIs(t, err, context.Canceled)
	}

	called := false
	_, err := breaker.Execute(func() (any, error) {
		called = true
		return nil, nil
	})
	require.NoError(t, err)
	assert.True(t, called)

	down := &failure.Failure{Code: http.StatusServiceUnavailable, Message: "down"}
	for range 2 {
		_, _ = breaker.Execute(func() (any, error) { return nil, down })
	}

	_, err = breaker.Execute(func() (any, error) { return nil, nil })
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}
