package dto

import (
	"serenity/internal/domains/eventinquiry/model"
	inquiryModel "serenity/internal/domains/inquiry/model"
	"serenity/shared/failure"
	"serenity/shared/timezone"
	"serenity/shared/validator"
	"strings"
)

const MaxGuestCount = 500

type EventRequest struct {
	Name            string `json:"name"             validate:"required"`
	Email           string `json:"email"            validate:"required,email"`
	Phone           string `json:"phone"            validate:"required"`
	EventType       string `json:"event_type"       validate:"required,oneof=wedding corporate birthday reunion graduation other"`
	EventDate       string `json:"event_date"       validate:"required,isodate"`
	GuestCount      *int   `json:"guest_count"      validate:"required,gte=1,lte=500"`
	VenuePreference string `json:"venue_preference" validate:"omitempty,oneof=field_1 field_2"`
	Message         string `json:"message"          validate:"required,min=10"`
}

// EventPayload is the body of POST /inquiries/event.
type EventPayload struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	EventType       string `json:"event_type"`
	EventDate       string `json:"event_date"`
	GuestCount      int    `json:"guest_count"`
	VenuePreference string `json:"venue_preference,omitempty"`
	Message         string `json:"message"`
}

func (r EventRequest) ToPayload() (EventPayload, error) {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Message = strings.TrimSpace(r.Message)

	if err := validator.ValidateStruct(&r); err != nil {
		return EventPayload{}, err
	}

	day, err := timezone.ParseDate(r.EventDate)
	if err != nil {
		return EventPayload{}, failure.BadRequestFromString("event_date must be a date formatted as YYYY-MM-DD")
	}
	if day.Before(timezone.Today()) {
		return EventPayload{}, failure.BadRequestFromString("event_date cannot be in the past")
	}

	return EventPayload{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		EventType:       r.EventType,
		EventDate:       r.EventDate,
		GuestCount:      *r.GuestCount,
		VenuePreference: r.VenuePreference,
		Message:         r.Message,
	}, nil
}

// ListResponse is the backend's answer to GET /admin/event-inquiries.
type ListResponse struct {
	EventInquiries []model.EventInquiry `json:"event_inquiries"`
	Total          int                  `json:"total"`
}

type StatusRequest struct {
	Status inquiryModel.Status `json:"status"`
}
