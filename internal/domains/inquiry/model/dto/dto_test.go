package dto_test

import (
	"encoding/json"
	"serenity/internal/domains/inquiry/model/dto"
	gDto "serenity/shared/dto"
	"serenity/shared/timezone"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keys(t *testing.T, v any) map[string]any {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err)

	out := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &out))

	return out
}

func day(offset int) string {
	return timezone.FormatDate(timezone.Today().AddDate(0, 0, offset))
}

func intPtr(v int) *int { return &v }

func TestBookingRequest_RequiredOnlyOmitsOptionalKeys(t *testing.T) {
	req := dto.BookingRequest{Name: " Ann ", Email: "ann@example.com", Phone: "0700000000"}

	payload, err := req.ToPayload(dto.Target{RoomName: "Premier Suite"})
	require.NoError(t, err)

	got := keys(t, payload)
	assert.Len(t, got, 5)
	for _, key := range []string{"check_in", "check_out", "guests", "room_id"} {
		assert.NotContains(t, got, key)
	}
	assert.Equal(t, "Ann", got["name"])
	assert.Equal(t, "booking", got["inquiry_type"])
	assert.Equal(t, "Booking inquiry for Premier Suite.", got["message"])
}

func TestBookingRequest_RoomBooking(t *testing.T) {
	req := dto.BookingRequest{
		Name: "Ann", Email: "ann@example.com", Phone: "0700000000",
		CheckIn: day(1), CheckOut: day(3), Guests: intPtr(2), Message: "Late arrival",
	}

	payload, err := req.ToPayload(dto.Target{RoomID: "4", RoomName: "Cottage"})
	require.NoError(t, err)

	got := keys(t, payload)
	assert.Equal(t, float64(2), got["guests"])
	assert.Equal(t, float64(4), got["room_id"])
	assert.Equal(t, "Late arrival", got["message"])

	t.Run("numeric room id from the catalog stays numeric", func(t *testing.T) {
		var room struct {
			ID gDto.ID `json:"id"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"id":5}`), &room))

		payload, err := req.ToPayload(dto.Target{RoomID: room.ID, RoomName: "Deluxe"})
		require.NoError(t, err)

		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"room_id":5`)
		assert.NotContains(t, string(raw), `"room_id":"5"`)
	})

	t.Run("string room id stays a string", func(t *testing.T) {
		payload, err := req.ToPayload(dto.Target{RoomID: "fallback-deluxe-1", RoomName: "Deluxe"})
		require.NoError(t, err)

		assert.Equal(t, "fallback-deluxe-1", keys(t, payload)["room_id"])
	})
}

func TestBookingRequest_PackageFoldsGuestsIntoMessage(t *testing.T) {
	req := dto.BookingRequest{Name: "Ann", Email: "ann@example.com", Phone: "0700000000", Guests: intPtr(18)}

	payload, err := req.ToPayload(dto.Target{RoomID: "9", Package: true, Capacity: 16})
	require.NoError(t, err)

	got := keys(t, payload)
	assert.NotContains(t, got, "guests")
	assert.NotContains(t, got, "room_id")
	assert.Equal(t, "Booking inquiry for the entire property package. Guest count: 18.", got["message"])
}

func TestBookingRequest_Validation(t *testing.T) {
	base := dto.BookingRequest{Name: "Ann", Email: "ann@example.com", Phone: "0700000000"}

	tests := []struct {
		name   string
		modify func(*dto.BookingRequest)
		target dto.Target
	}{
		{name: "missing phone", modify: func(r *dto.BookingRequest) { r.Phone = "  " }},
		{name: "bad email", modify: func(r *dto.BookingRequest) { r.Email = "ann" }},
		{name: "check-in in the past", modify: func(r *dto.BookingRequest) { r.CheckIn = day(-1) }},
		{name: "check-out same day as check-in", modify: func(r *dto.BookingRequest) { r.CheckIn = day(2); r.CheckOut = day(2) }},
		{name: "check-out before today", modify: func(r *dto.BookingRequest) { r.CheckOut = day(-1) }},
		{name: "malformed date", modify: func(r *dto.BookingRequest) { r.CheckIn = "12/01/2099" }},
		{name: "zero guests", modify: func(r *dto.BookingRequest) { r.Guests = intPtr(0) }},
		{name: "room over capacity cap", modify: func(r *dto.BookingRequest) { r.Guests = intPtr(11) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.modify(&req)

			_, err := req.ToPayload(tt.target)
			assert.Error(t, err)
		})
	}
}

func TestValidateStay(t *testing.T) {
	assert.NoError(t, dto.ValidateStay(day(1), day(2)))
	assert.NoError(t, dto.ValidateStay("", day(0)))
	assert.NoError(t, dto.ValidateStay("", ""))
	assert.Error(t, dto.ValidateStay(day(3), day(3)))
}

func TestMinCheckOut(t *testing.T) {
	assert.Equal(t, day(4), dto.MinCheckOut(day(3)))
	assert.Equal(t, day(0), dto.MinCheckOut(""))
}

func TestContactRequest_Normalize(t *testing.T) {
	req := dto.ContactRequest{Name: " Ann ", Email: "ann@example.com", Message: "  Is the garden open?  "}

	require.NoError(t, req.Normalize())
	assert.Equal(t, dto.DefaultSubject, req.Subject)
	assert.Equal(t, "Is the garden open?", req.Message)
	assert.NotContains(t, keys(t, req), "phone")

	short := dto.ContactRequest{Name: "Ann", Email: "ann@example.com", Message: "hi"}
	assert.Error(t, short.Normalize())

	unknown := dto.ContactRequest{Name: "Ann", Email: "ann@example.com", Subject: "Spam", Message: "long enough message"}
	assert.Error(t, unknown.Normalize())
}
