package middleware

import (
	"net/http"
	"serenity/config"
	"serenity/infras/jwt"
	"serenity/infras/otel"
	sessionService "serenity/internal/domains/session/service"
	"serenity/permissions"
	"serenity/shared"
	"serenity/shared/constant"
	"serenity/shared/failure"
	"serenity/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Auth resolves and guards admin sessions
type Auth interface {
	Session(http.Handler) http.Handler
	RequireSession(http.Handler) http.Handler
	RedirectIfAuthenticated(http.Handler) http.Handler
}

// Role defines the interface for role-based access control middleware
type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole combines all middleware interfaces
type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	signer     jwt.Signer
	sessions   sessionService.Provider
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

// NewAuthRoleMiddleware creates a new middleware instance
func NewAuthRoleMiddleware(signer jwt.Signer, sessions sessionService.Provider, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		signer:     signer,
		sessions:   sessions,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

// Session reads the signed session cookie and places the admin viewer on the request context.
// A missing or forged cookie yields an anonymous viewer.
func (m *authRoleImpl) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "session.middleware")

		cookie, err := request.Cookie(m.cfg.Session.CookieName)
		if err != nil {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		sessionID, err := m.signer.Parse(cookie.Value)
		if err != nil {
			log.Warn().Err(err).Msg("ignoring invalid session cookie")
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		session, err := m.sessions.Current(ctx, sessionID)
		if err != nil {
			scope.TraceError(err)
			scope.End()
			response.WithError(writer, err)

			return
		}

		viewer := shared.Viewer{SessionID: sessionID, Token: session.Token}
		if session.User != nil {
			viewer.Role = session.User.Role
		}

		scope.SetAttribute("session.authenticated", session.Authenticated())
		scope.End()

		next.ServeHTTP(writer, request.WithContext(shared.WithViewer(request.Context(), viewer)))
	})
}

// RequireSession sends anonymous visitors to the login page before the handler writes anything.
func (m *authRoleImpl) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if shared.ViewerFromContext(request.Context()).Token == constant.Empty {
			response.WithRedirect(writer, constant.PathAdminLogin)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

// RedirectIfAuthenticated keeps signed-in admins off the login page.
func (m *authRoleImpl) RedirectIfAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if shared.ViewerFromContext(request.Context()).Token != constant.Empty {
			response.WithRedirect(writer, constant.PathAdminDashboard)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

// RBAC checks if user has required role
// Requires a resolved session via the Session middleware
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "rbac.middleware")

		if m.permission == nil {
			scope.End()
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		rctx := chi.RouteContext(ctx)
		path := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
		userRole := shared.ViewerFromContext(ctx).Role

		if !m.permission.Allows(path, request.Method, userRole) {
			err := failure.ForbiddenError
			scope.TraceError(err)
			scope.SetAttributes(map[string]any{
				"user_role":     userRole,
				"allowed_roles": m.permission.FindPermissions(path, request.Method).Permissions,
				"reason":        "role_not_allowed",
			})
			scope.End()
			response.WithError(writer, err)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}
