package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeySessionID contextKey = "session_id"
	ContextKeyToken     contextKey = "token"
	ContextKeyUserRole  contextKey = "user_role"
)

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

const (
	RequestParamID       = "id"
	RequestParamSlug     = "slug"
	RequestParamDraftID  = "draftID"
	RequestParamLimit    = "limit"
	RequestParamOffset   = "offset"
	RequestParamStatus   = "status"
	RequestParamAction   = "action"
	RequestMaxMemory     = 10 << 20 // 10 MB
	RequestParamInactive = "include_inactive"
)

const (
	DefaultValueLimit = 20
	FilterAll         = "all"
)

const (
	DayDateFormat = time.DateOnly
)

const (
	MinutesToSeconds = 60
)

const (
	OtelServiceScopeName  = "service"
	OtelHandlerScopeName  = "handler"
	OtelExternalScopeName = "external"
	OtelCacheScopeName    = "cache"
	OtelS3ScopeName       = "s3"

	OtelPathAttributeKey = "http.path"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	AuthorizationBearerPrefix       = "Bearer "
	ResponseHeaderLocation          = "Location"
	ResponseHeaderRetryAfter        = "Retry-After"
)

const (
	ContentTypeJSON              = "application/json"
	FormFile                     = "file"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
)

const (
	PathAdminLogin     = "/admin/login"
	PathAdminDashboard = "/admin/dashboard"
)

const (
	RateLimitBucketForms = "forms"
	RateLimitBucketLogin = "login"
)

const (
	Asterix = "*"
	Empty   = ""
)
