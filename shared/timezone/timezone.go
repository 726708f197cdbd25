package timezone

import (
	"serenity/config"
	"serenity/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	name := cfg.App.Timezone
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		name = "UTC"
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC")
		appLocation = time.UTC
		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", name).
		Msg("Application timezone initialized")
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}
	return appLocation
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// Today returns midnight of the current local day.
func Today() time.Time {
	now := Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// ParseDate parses a YYYY-MM-DD value as a local calendar day.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(constant.DayDateFormat, value, GetLocation())
}

// FormatDate renders t as YYYY-MM-DD in the application timezone.
func FormatDate(t time.Time) string {
	return t.In(GetLocation()).Format(constant.DayDateFormat)
}
