package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"serenity/config"
	jwtMocks "serenity/infras/jwt/mocks"
	otelMocks "serenity/infras/otel/mocks"
	"serenity/internal/domains/session/mocks"
	"serenity/internal/domains/session/model"
	"serenity/permissions"
	"serenity/shared"
	"serenity/transport/http/middleware"
)

const cookieName = "wima_admin_session"

func newAdminRouter(t *testing.T) (http.Handler, *jwtMocks.MockSigner, *mocks.MockProvider) {
	ctrl := gomock.NewController(t)
	signer := jwtMocks.NewMockSigner(ctrl)
	provider := mocks.NewMockProvider(ctrl)

	cfg := &config.Config{}
	cfg.Session.CookieName = cookieName

	m := middleware.NewAuthRoleMiddleware(signer, provider, otelMocks.NewOtel(), permissions.Get(), cfg)

	ok := func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(shared.ViewerFromContext(r.Context()).Role))
	}

	router := chi.NewRouter()
	router.Route("/v1/admin", func(admin chi.Router) {
		admin.Use(m.Session)
		admin.With(m.RedirectIfAuthenticated).Get("/login", ok)
		admin.Group(func(protected chi.Router) {
			protected.Use(m.RequireSession, m.RBAC)
			protected.Get("/dashboard", ok)
			protected.Post("/rooms/drafts", ok)
		})
	})

	return router, signer, provider
}

func request(method, path, cookie string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: cookie})
	}

	return req
}

func signedIn(signer *jwtMocks.MockSigner, provider *mocks.MockProvider, role string) {
	signer.EXPECT().Parse("signed").Return("sid", nil)
	provider.EXPECT().Current(gomock.Any(), "sid").Return(model.Session{
		ID:    "sid",
		Token: "tok",
		User:  &model.User{Name: "Wanjiru", Role: role},
	}, nil)
}

func TestRequireSession_RedirectsAnonymous(t *testing.T) {
	router, _, _ := newAdminRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, request(http.MethodGet, "/v1/admin/dashboard", ""))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
	assert.Empty(t, rec.Body.String())
}

func TestSession_ForgedCookieIsAnonymous(t *testing.T) {
	router, signer, _ := newAdminRouter(t)
	signer.EXPECT().Parse("forged").Return("", errors.New("invalid token"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, request(http.MethodGet, "/v1/admin/dashboard", "forged"))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestSession_LoggedOutSessionIsAnonymous(t *testing.T) {
	router, signer, provider := newAdminRouter(t)
	signer.EXPECT().Parse("signed").Return("sid", nil)
	provider.EXPECT().Current(gomock.Any(), "sid").Return(model.Session{ID: "sid"}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, request(http.MethodGet, "/v1/admin/dashboard", "signed"))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestSession_StoreFailure(t *testing.T) {
	router, signer, provider := newAdminRouter(t)
	signer.EXPECT().Parse("signed").Return("sid", nil)
	provider.EXPECT().Current(gomock.Any(), "sid").Return(model.Session{}, errors.New("redis down"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, request(http.MethodGet, "/v1/admin/dashboard", "signed"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRBAC(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		method   string
		path     string
		expected int
	}{
		{name: "staff reads dashboard", role: "staff", method: http.MethodGet, path: "/v1/admin/dashboard", expected: http.StatusOK},
		{name: "staff cannot create rooms", role: "staff", method: http.MethodPost, path: "/v1/admin/rooms/drafts", expected: http.StatusForbidden},
		{name: "manager creates rooms", role: "manager", method: http.MethodPost, path: "/v1/admin/rooms/drafts", expected: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, signer, provider := newAdminRouter(t)
			signedIn(signer, provider, tt.role)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, request(tt.method, tt.path, "signed"))

			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}

func TestRedirectIfAuthenticated(t *testing.T) {
	router, signer, provider := newAdminRouter(t)
	signedIn(signer, provider, "admin")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, request(http.MethodGet, "/v1/admin/login", "signed"))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, request(http.MethodGet, "/v1/admin/login", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
}
