package model

import (
	eventModel "serenity/internal/domains/eventinquiry/model"
	inquiryDto "serenity/internal/domains/inquiry/model/dto"
	"serenity/shared/flow"
)

const EntityName = "form"

type Kind string

const (
	KindContact Kind = "contact"
	KindBooking Kind = "booking"
	KindPackage Kind = "package"
	KindEvent   Kind = "event"
)

// Fields is everything a guest can type into any public form. Each kind reads its own subset.
type Fields struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Subject         string `json:"subject,omitempty"`
	Message         string `json:"message"`
	CheckIn         string `json:"check_in,omitempty"`
	CheckOut        string `json:"check_out,omitempty"`
	Guests          *int   `json:"guests,omitempty"`
	EventType       string `json:"event_type,omitempty"`
	EventDate       string `json:"event_date,omitempty"`
	GuestCount      *int   `json:"guest_count,omitempty"`
	VenuePreference string `json:"venue_preference,omitempty"`
}

// Hints are input constraints the page renders next to the fields.
type Hints struct {
	MinCheckIn      string   `json:"min_check_in,omitempty"`
	MinCheckOut     string   `json:"min_check_out,omitempty"`
	MinDate         string   `json:"min_date,omitempty"`
	MaxGuests       int      `json:"max_guests,omitempty"`
	SuggestedGuests int      `json:"suggested_guests,omitempty"`
	Subjects        []string `json:"subjects,omitempty"`
	EventTypes      []string `json:"event_types,omitempty"`
	Venues          []Venue  `json:"venues,omitempty"`
}

type Venue struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Form struct {
	ID         string            `json:"id"`
	Kind       Kind              `json:"kind"`
	Target     inquiryDto.Target `json:"target"`
	Fields     Fields            `json:"fields"`
	Submission flow.Submission   `json:"submission"`
	Hints      Hints             `json:"hints"`
}

// Venues lists the event venues in display order.
func Venues() []Venue {
	return []Venue{
		{Value: eventModel.VenueMainField, Label: eventModel.VenueLabel(eventModel.VenueMainField)},
		{Value: eventModel.VenueGardenTerrace, Label: eventModel.VenueLabel(eventModel.VenueGardenTerrace)},
	}
}
