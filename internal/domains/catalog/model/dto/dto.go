package dto

import "serenity/internal/domains/catalog/model"

type PackagesResponse struct {
	Packages []model.Package `json:"packages"`
}

// RoomsResponse is what the site receives for a room collection.
type RoomsResponse struct {
	Rooms  []model.Room `json:"rooms"`
	Source model.Source `json:"source"`
}

type PackagesListResponse struct {
	Packages []model.Package `json:"packages"`
	Source   model.Source    `json:"source"`
}

type RoomResponse struct {
	Room model.Room `json:"room"`
}
