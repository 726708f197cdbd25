package model

import (
	inquiryModel "serenity/internal/domains/inquiry/model"
	"serenity/shared/dto"
)

const EntityName = "event inquiry"

const (
	VenueMainField     = "field_1"
	VenueGardenTerrace = "field_2"
)

var EventTypes = []string{"wedding", "corporate", "birthday", "reunion", "graduation", "other"}

var venueLabels = map[string]string{
	VenueMainField:     "Main Event Field",
	VenueGardenTerrace: "Garden Terrace",
}

// VenueLabel names a venue preference for display, falling back to the raw value.
func VenueLabel(venue string) string {
	if venue == "" {
		return "No preference"
	}

	if label, ok := venueLabels[venue]; ok {
		return label
	}

	return venue
}

type EventInquiry struct {
	ID              dto.ID              `json:"id"`
	Name            string              `json:"name"`
	Email           string              `json:"email"`
	Phone           string              `json:"phone"`
	EventType       string              `json:"event_type"`
	EventDate       string              `json:"event_date"`
	GuestCount      int                 `json:"guest_count"`
	VenuePreference string              `json:"venue_preference,omitempty"`
	VenueLabel      string              `json:"venue_label,omitempty"`
	Message         string              `json:"message"`
	Status          inquiryModel.Status `json:"status"`
	CreatedAt       string              `json:"created_at,omitempty"`
}
