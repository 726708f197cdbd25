package timezone_test

import (
	"serenity/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimezoneInit(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.NotNil(t, timezone.GetLocation())
}

func TestToday(t *testing.T) {
	today := timezone.Today()

	assert.Zero(t, today.Hour())
	assert.Zero(t, today.Minute())
	assert.Equal(t, timezone.Now().Day(), today.Day())
}

func TestParseAndFormatDate(t *testing.T) {
	day, err := timezone.ParseDate("2099-02-28")
	require.NoError(t, err)

	assert.Equal(t, time.February, day.Month())
	assert.Equal(t, "2099-03-01", timezone.FormatDate(day.AddDate(0, 0, 1)))

	_, err = timezone.ParseDate("28/02/2099")
	assert.Error(t, err)
}
