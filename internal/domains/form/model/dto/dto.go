package dto

import (
	"serenity/internal/domains/form/model"
	inquiryDto "serenity/internal/domains/inquiry/model/dto"
	gDto "serenity/shared/dto"
	"serenity/shared/failure"
	"serenity/shared/validator"
	"strings"
)

// OpenRequest starts a form instance. Booking forms name the room they are about.
type OpenRequest struct {
	Kind     model.Kind `json:"kind"      validate:"required,oneof=contact booking package event"`
	RoomID   gDto.ID    `json:"room_id"`
	RoomName string     `json:"room_name"`
	Capacity int        `json:"capacity"  validate:"gte=0"`
}

func (r *OpenRequest) Target() (inquiryDto.Target, error) {
	r.RoomName = strings.TrimSpace(r.RoomName)

	if err := validator.ValidateStruct(r); err != nil {
		return inquiryDto.Target{}, err
	}

	switch r.Kind {
	case model.KindBooking:
		if r.RoomName == "" {
			return inquiryDto.Target{}, failure.BadRequestFromString("room_name is required for a room booking")
		}

		return inquiryDto.Target{RoomID: r.RoomID, RoomName: r.RoomName, Capacity: r.Capacity}, nil
	case model.KindPackage:
		return inquiryDto.Target{RoomName: r.RoomName, Package: true, Capacity: r.Capacity}, nil
	default:
		return inquiryDto.Target{}, nil
	}
}

type ResetRequest struct {
	ClearFields bool `json:"clear_fields"`
}
