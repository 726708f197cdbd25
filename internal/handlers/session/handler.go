package session

import (
	"net/http"
	"serenity/config"
	"serenity/infras/jwt"
	"serenity/infras/otel"
	"serenity/internal/domains/session/model/dto"
	"serenity/internal/domains/session/service"
	"serenity/shared"
	"serenity/shared/constant"
	"serenity/shared/validator"
	"serenity/transport/http/middleware"
	"serenity/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Provider
	signer  jwt.Signer
	auth    middleware.AuthRole
	app     middleware.AppMiddleware
	cfg     *config.Config
	otel    otel.Otel
}

func New(cfg *config.Config, service service.Provider, signer jwt.Signer, auth middleware.AuthRole, app middleware.AppMiddleware, otel otel.Otel) Handler {
	return Handler{
		service: service,
		signer:  signer,
		auth:    auth,
		app:     app,
		cfg:     cfg,
		otel:    otel,
	}
}

// Router mounts the session endpoints. The caller must have applied the Session middleware.
func (handler *Handler) Router(router chi.Router) {
	router.With(handler.auth.RedirectIfAuthenticated).Get("/login", handler.LoginPage)
	router.With(handler.app.RateLimit(constant.RateLimitBucketLogin)).Post("/login", handler.Login)
	router.Post("/logout", handler.Logout)
	router.Get("/session", handler.Session)
}

// LoginPage answers for anonymous visitors only; signed-in admins are sent to the dashboard.
// @Summary Login page state
// @Tags Session
// @Produce json
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Success 303 "Already signed in"
// @Router /v1/admin/login [get]
func (handler *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	response.WithJSON(w, http.StatusOK, dto.SessionResponse{})
}

// Login authenticates against the backend and issues the session cookie.
// @Summary Admin login
// @Tags Session
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/admin/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	session, err := handler.service.Login(ctx, shared.ViewerFromContext(ctx).SessionID, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	cookie, err := handler.signer.Sign(session.ID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sign session cookie")

		response.WithError(w, err)

		return
	}

	http.SetCookie(w, handler.cookie(cookie, handler.cfg.Session.TTLMinutes*constant.MinutesToSeconds))

	res := dto.SessionResponse{}
	res.FromModel(session)

	scope.AddEvent("Admin logged in")

	response.WithJSON(w, http.StatusOK, res)
}

// Logout clears the stored session and the cookie.
// @Summary Admin logout
// @Tags Session
// @Produce json
// @Success 200 {object} response.Message
// @Router /v1/admin/logout [post]
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	if err := handler.service.Logout(ctx, shared.ViewerFromContext(ctx).SessionID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to log out")

		response.WithError(w, err)

		return
	}

	http.SetCookie(w, handler.cookie(constant.Empty, -1))

	response.WithMessage(w, http.StatusOK, "Logged out")
}

// Session reports whether the caller is signed in and what they may manage.
// @Summary Current admin session
// @Tags Session
// @Produce json
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Router /v1/admin/session [get]
func (handler *Handler) Session(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Session")
	defer scope.End()

	session, err := handler.service.Current(ctx, shared.ViewerFromContext(ctx).SessionID)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res := dto.SessionResponse{}
	res.FromModel(session)

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     handler.cfg.Session.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   handler.cfg.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
