package dto

import (
	"fmt"
	"serenity/internal/domains/inquiry/model"
	gDto "serenity/shared/dto"
	"serenity/shared/failure"
	"serenity/shared/timezone"
	"serenity/shared/validator"
	"strings"
)

const (
	DefaultSubject = "General Inquiry"
	MaxRoomGuests  = 10
)

var Subjects = []string{DefaultSubject, "Room Booking", "Event Inquiry", "Corporate Event", "General Feedback"}

// ContactRequest is the general contact form and also its wire payload for POST /contact.
type ContactRequest struct {
	Name    string `json:"name"            validate:"required"`
	Email   string `json:"email"           validate:"required,email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"         validate:"required,oneof='General Inquiry' 'Room Booking' 'Event Inquiry' 'Corporate Event' 'General Feedback'"`
	Message string `json:"message"         validate:"required,min=10"`
}

func (r *ContactRequest) Normalize() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Message = strings.TrimSpace(r.Message)
	if r.Subject == "" {
		r.Subject = DefaultSubject
	}

	return validator.ValidateStruct(r)
}

// Target is what a booking inquiry is about: one room, or the whole property.
type Target struct {
	RoomID   gDto.ID `json:"room_id,omitempty"`
	RoomName string  `json:"room_name,omitempty"`
	Package  bool    `json:"package,omitempty"`
	Capacity int     `json:"capacity,omitempty"`
}

type BookingRequest struct {
	Name     string `json:"name"      validate:"required"`
	Email    string `json:"email"     validate:"required,email"`
	Phone    string `json:"phone"     validate:"required"`
	CheckIn  string `json:"check_in"  validate:"omitempty,isodate"`
	CheckOut string `json:"check_out" validate:"omitempty,isodate"`
	Guests   *int   `json:"guests"    validate:"omitempty,gte=1"`
	Message  string `json:"message"`
}

// BookingPayload is the body of POST /inquiries. Unset optional fields are omitted.
type BookingPayload struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	InquiryType string  `json:"inquiry_type"`
	Message     string  `json:"message"`
	CheckIn     string  `json:"check_in,omitempty"`
	CheckOut    string  `json:"check_out,omitempty"`
	Guests      int     `json:"guests,omitempty"`
	RoomID      gDto.ID `json:"room_id,omitempty"`
}

func (r BookingRequest) ToPayload(target Target) (BookingPayload, error) {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)

	if err := validator.ValidateStruct(&r); err != nil {
		return BookingPayload{}, err
	}

	if err := ValidateStay(r.CheckIn, r.CheckOut); err != nil {
		return BookingPayload{}, err
	}

	if !target.Package && r.Guests != nil && *r.Guests > MaxRoomGuests {
		return BookingPayload{}, failure.BadRequestFromString(fmt.Sprintf("guests must be less than or equal to %d", MaxRoomGuests))
	}

	payload := BookingPayload{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		InquiryType: model.TypeBooking,
		Message:     strings.TrimSpace(r.Message),
		CheckIn:     r.CheckIn,
		CheckOut:    r.CheckOut,
	}

	if payload.Message == "" {
		payload.Message = DefaultBookingMessage(target, r.Guests)
	}

	if !target.Package {
		if r.Guests != nil {
			payload.Guests = *r.Guests
		}
		payload.RoomID = target.RoomID
	}

	return payload, nil
}

// DefaultBookingMessage describes the booking target when the guest left no message.
// The package guest count travels in the message because the per-room API caps guests.
func DefaultBookingMessage(target Target, guests *int) string {
	if !target.Package {
		return fmt.Sprintf("Booking inquiry for %s.", target.RoomName)
	}

	message := "Booking inquiry for the entire property package."
	if guests != nil {
		message += fmt.Sprintf(" Guest count: %d.", *guests)
	}

	return message
}

// ValidateStay checks a stay window in the local calendar: check-in no earlier
// than today, check-out at least one day after check-in (or today when no check-in).
func ValidateStay(checkIn, checkOut string) error {
	minCheckOut := timezone.Today()

	if checkIn != "" {
		day, err := timezone.ParseDate(checkIn)
		if err != nil {
			return failure.BadRequestFromString("check_in must be a date formatted as YYYY-MM-DD")
		}

		if day.Before(timezone.Today()) {
			return failure.BadRequestFromString("check_in cannot be in the past")
		}

		minCheckOut = day.AddDate(0, 0, 1)
	}

	if checkOut != "" {
		day, err := timezone.ParseDate(checkOut)
		if err != nil {
			return failure.BadRequestFromString("check_out must be a date formatted as YYYY-MM-DD")
		}

		if day.Before(minCheckOut) {
			return failure.BadRequestFromString("check_out must be on or after " + timezone.FormatDate(minCheckOut))
		}
	}

	return nil
}

// MinCheckOut is the earliest check-out the date picker should offer.
func MinCheckOut(checkIn string) string {
	if day, err := timezone.ParseDate(checkIn); err == nil {
		return timezone.FormatDate(day.AddDate(0, 0, 1))
	}

	return timezone.FormatDate(timezone.Today())
}

// ListResponse is the backend's answer to GET /admin/inquiries.
type ListResponse struct {
	Inquiries []model.Inquiry `json:"inquiries"`
	Total     int             `json:"total"`
}

// StatusRequest is the body of PATCH /admin/inquiries/:id.
type StatusRequest struct {
	Status model.Status `json:"status"`
}
