package shared

import (
	"context"
	"math"
	"serenity/shared/constant"
	"strconv"
	"strings"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins key parts with ':'.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, cacheKeySeparator)
}

// ConvertStringToInt parses a trimmed decimal integer.
func ConvertStringToInt(value string) (int, bool) {
	intValue, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, false
	}

	return intValue, true
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// Viewer identifies the admin session a request acts for.
type Viewer struct {
	SessionID string
	Token     string
	Role      string
}

// ViewerFromContext reads the admin session placed on the request context by the session middleware.
func ViewerFromContext(ctx context.Context) Viewer {
	var viewer Viewer
	viewer.SessionID, _ = ctx.Value(constant.ContextKeySessionID).(string)
	viewer.Token, _ = ctx.Value(constant.ContextKeyToken).(string)
	viewer.Role, _ = ctx.Value(constant.ContextKeyUserRole).(string)

	return viewer
}

// WithViewer stores viewer on ctx.
func WithViewer(ctx context.Context, viewer Viewer) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeySessionID, viewer.SessionID)
	ctx = context.WithValue(ctx, constant.ContextKeyToken, viewer.Token)

	return context.WithValue(ctx, constant.ContextKeyUserRole, viewer.Role)
}
