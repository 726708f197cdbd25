package dto_test

import (
	"encoding/json"
	"serenity/internal/domains/eventinquiry/model/dto"
	"serenity/shared/timezone"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func validRequest() dto.EventRequest {
	return dto.EventRequest{
		Name:            "Grace",
		Email:           "grace@example.com",
		Phone:           "+254700000000",
		EventType:       "wedding",
		EventDate:       timezone.FormatDate(timezone.Today().AddDate(0, 2, 0)),
		GuestCount:      intPtr(150),
		VenuePreference: "field_1",
		Message:         "Outdoor ceremony pls",
	}
}

func TestEventRequest_ToPayload(t *testing.T) {
	payload, err := validRequest().ToPayload()
	require.NoError(t, err)

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	got := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &got))

	names := make([]string, 0, len(got))
	for key := range got {
		names = append(names, key)
	}
	sort.Strings(names)

	assert.Equal(t, []string{"email", "event_date", "event_type", "guest_count", "message", "name", "phone", "venue_preference"}, names)
	assert.Equal(t, float64(150), got["guest_count"])
	assert.Contains(t, string(raw), `"guest_count":150`)
}

func TestEventRequest_NoVenueOmitsKey(t *testing.T) {
	req := validRequest()
	req.VenuePreference = ""

	payload, err := req.ToPayload()
	require.NoError(t, err)

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "venue_preference")
}

func TestEventRequest_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*dto.EventRequest)
	}{
		{name: "unknown event type", modify: func(r *dto.EventRequest) { r.EventType = "funeral" }},
		{name: "too many guests", modify: func(r *dto.EventRequest) { r.GuestCount = intPtr(501) }},
		{name: "no guests", modify: func(r *dto.EventRequest) { r.GuestCount = nil }},
		{name: "unknown venue", modify: func(r *dto.EventRequest) { r.VenuePreference = "field_3" }},
		{name: "short message", modify: func(r *dto.EventRequest) { r.Message = "hello" }},
		{name: "date in the past", modify: func(r *dto.EventRequest) {
			r.EventDate = timezone.FormatDate(timezone.Today().AddDate(0, 0, -1))
		}},
		{name: "missing phone", modify: func(r *dto.EventRequest) { r.Phone = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(&req)

			_, err := req.ToPayload()
			assert.Error(t, err)
		})
	}
}
