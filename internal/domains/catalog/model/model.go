package model

import (
	roomModel "serenity/internal/domains/room/model"
)

const (
	EntityName = "catalog"

	SlideIntervalMillis = 4500
)

// Source tells whether catalog data came from the backend or the built-in defaults.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// Result is the outcome of a catalog load. Err is the swallowed failure behind a fallback, if any.
type Result[T any] struct {
	Data   T      `json:"data"`
	Source Source `json:"source"`
	Err    error  `json:"-"`
}

type Package struct {
	Name          string   `json:"name"`
	Tagline       string   `json:"tagline"`
	Description   string   `json:"description,omitempty"`
	PricePerNight int      `json:"price_per_night"`
	OriginalPrice int      `json:"original_price"`
	Savings       int      `json:"savings"`
	Capacity      int      `json:"capacity"`
	RoomsIncluded []string `json:"rooms_included"`
	Benefits      []string `json:"benefits"`
}

type Slide struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Gallery describes the auto-advancing slideshow: it moves every IntervalMillis
// and holds while the pointer is over it.
type Gallery struct {
	Slides         []Slide `json:"slides"`
	IntervalMillis int     `json:"interval_ms"`
	PauseOnHover   bool    `json:"pause_on_hover"`
}

type Room = roomModel.Room
