package dto

import (
	"mime/multipart"
	"serenity/internal/domains/room/model"
	"serenity/shared/validator"
	"strings"
)

// RoomsResponse is the backend's answer to every room list endpoint.
type RoomsResponse struct {
	Rooms []model.Room `json:"rooms"`
}

type RoomResponse struct {
	Room model.Room `json:"room"`
}

// DraftRequest patches the scalar fields of a draft. Nil fields are left alone.
type DraftRequest struct {
	Name              *string `json:"name"`
	Slug              *string `json:"slug"`
	Type              *string `json:"type"`
	Description       *string `json:"description"`
	Capacity          *int    `json:"capacity"`
	PricePerNight     *int    `json:"price_per_night"`
	BreakfastIncluded *bool   `json:"breakfast_included"`
	IsFeatured        *bool   `json:"is_featured"`
	IsActive          *bool   `json:"is_active"`
}

func (r DraftRequest) Apply(d *model.Draft) {
	if r.Name != nil {
		d.SetName(*r.Name)
	}
	if r.Slug != nil {
		d.SetSlug(*r.Slug)
	}
	if r.Type != nil {
		d.Room.Type = *r.Type
	}
	if r.Description != nil {
		d.Room.Description = *r.Description
	}
	if r.Capacity != nil {
		d.Room.Capacity = *r.Capacity
	}
	if r.PricePerNight != nil {
		d.Room.PricePerNight = *r.PricePerNight
	}
	if r.BreakfastIncluded != nil {
		d.Room.BreakfastIncluded = *r.BreakfastIncluded
	}
	if r.IsFeatured != nil {
		d.Room.IsFeatured = *r.IsFeatured
	}
	if r.IsActive != nil {
		d.Room.IsActive = *r.IsActive
	}
}

// ValueRequest carries one amenity or image URL.
type ValueRequest struct {
	Value string `json:"value" validate:"required"`
}

// RoomPayload is the body of POST /admin/rooms and PATCH /admin/rooms/:id.
type RoomPayload struct {
	Name              string   `json:"name"               validate:"required,max=100"`
	Slug              string   `json:"slug"               validate:"required,slug"`
	Type              string   `json:"type"               validate:"required,oneof=premier cottage double standard deluxe executive family"`
	Description       string   `json:"description"        validate:"required"`
	Capacity          int      `json:"capacity"           validate:"gte=1,lte=20"`
	PricePerNight     int      `json:"price_per_night"    validate:"gte=0"`
	BreakfastIncluded bool     `json:"breakfast_included"`
	IsFeatured        bool     `json:"is_featured"`
	IsActive          bool     `json:"is_active"`
	Amenities         []string `json:"amenities"          validate:"dive,required"`
	Images            []string `json:"images"             validate:"dive,required"`
}

func NewRoomPayload(room model.Room) (RoomPayload, error) {
	payload := RoomPayload{
		Name:              strings.TrimSpace(room.Name),
		Slug:              room.Slug,
		Type:              room.Type,
		Description:       strings.TrimSpace(room.Description),
		Capacity:          room.Capacity,
		PricePerNight:     room.PricePerNight,
		BreakfastIncluded: room.BreakfastIncluded,
		IsFeatured:        room.IsFeatured,
		IsActive:          room.IsActive,
		Amenities:         room.Amenities,
		Images:            room.Images,
	}

	if err := validator.ValidateStruct(&payload); err != nil {
		return RoomPayload{}, err
	}

	return payload, nil
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
	ImageFile multipart.File        `json:"-"`
}

type UploadImageResponse struct {
	URL   string      `json:"url"`
	Draft model.Draft `json:"draft"`
}
