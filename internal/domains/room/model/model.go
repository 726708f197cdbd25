package model

import (
	"regexp"
	"serenity/shared/dto"
	"serenity/shared/flow"
	"slices"
	"strings"
)

const (
	EntityName      = "room"
	DraftEntityName = "room draft"
	ImageDirectory  = "rooms"

	ActionToggleFeatured = "toggle-featured"
	ActionToggleActive   = "toggle-active"

	DefaultType = "standard"
)

var Types = []string{"premier", "cottage", "double", "standard", "deluxe", "executive", "family"}

type Room struct {
	ID                dto.ID   `json:"id,omitempty"`
	Name              string   `json:"name"`
	Slug              string   `json:"slug"`
	Type              string   `json:"type"`
	Description       string   `json:"description"`
	Capacity          int      `json:"capacity"`
	PricePerNight     int      `json:"price_per_night"`
	BreakfastIncluded bool     `json:"breakfast_included"`
	IsFeatured        bool     `json:"is_featured"`
	IsActive          bool     `json:"is_active"`
	Amenities         []string `json:"amenities"`
	Images            []string `json:"images"`
}

var (
	whitespace = regexp.MustCompile(`\s+`)
	unsafeChar = regexp.MustCompile(`[^a-z0-9-]`)
)

// Slugify lowercases and trims s, turns whitespace runs into hyphens and drops anything outside [a-z0-9-].
func Slugify(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = whitespace.ReplaceAllString(s, "-")

	return unsafeChar.ReplaceAllString(s, "")
}

// Draft is the working copy behind the room create/edit form. Nothing is sent
// to the backend until it is saved.
type Draft struct {
	ID     string `json:"id"`
	RoomID dto.ID `json:"room_id,omitempty"`
	Room   Room   `json:"room"`
	// SlugTouched is set once the slug was edited directly; from then on the name no longer drives it.
	SlugTouched bool            `json:"slug_touched"`
	Uploaded    []string        `json:"uploaded,omitempty"`
	Submission  flow.Submission `json:"submission"`
}

func NewDraft(id string) Draft {
	return Draft{
		ID: id,
		Room: Room{
			Type:              DefaultType,
			BreakfastIncluded: true,
			IsActive:          true,
			Amenities:         []string{},
			Images:            []string{},
		},
		Submission: flow.New(),
	}
}

// EditDraft starts from a loaded room. Its slug stays exactly as loaded.
func EditDraft(id string, room Room) Draft {
	room.Amenities = slices.Clone(room.Amenities)
	room.Images = slices.Clone(room.Images)
	if room.Amenities == nil {
		room.Amenities = []string{}
	}
	if room.Images == nil {
		room.Images = []string{}
	}

	return Draft{ID: id, RoomID: room.ID, Room: room, SlugTouched: true, Submission: flow.New()}
}

func (d Draft) Editing() bool {
	return d.RoomID != ""
}

func (d *Draft) SetName(name string) {
	d.Room.Name = name
	if !d.Editing() && !d.SlugTouched {
		d.Room.Slug = Slugify(name)
	}
}

func (d *Draft) SetSlug(slug string) {
	d.Room.Slug = Slugify(slug)
	d.SlugTouched = true
}

func (d *Draft) AddAmenity(value string) bool {
	var added bool
	d.Room.Amenities, added = addUnique(d.Room.Amenities, value)

	return added
}

func (d *Draft) RemoveAmenity(value string) bool {
	var removed bool
	d.Room.Amenities, removed = remove(d.Room.Amenities, value)

	return removed
}

func (d *Draft) AddImage(url string) bool {
	var added bool
	d.Room.Images, added = addUnique(d.Room.Images, url)

	return added
}

func (d *Draft) RemoveImage(url string) bool {
	var removed bool
	d.Room.Images, removed = remove(d.Room.Images, url)

	return removed
}

// Orphans are images uploaded for this draft that the room no longer references.
func (d Draft) Orphans() []string {
	var out []string
	for _, url := range d.Uploaded {
		if !slices.Contains(d.Room.Images, url) {
			out = append(out, url)
		}
	}

	return out
}

func addUnique(list []string, value string) ([]string, bool) {
	value = strings.TrimSpace(value)
	if value == "" || slices.Contains(list, value) {
		return list, false
	}

	return append(list, value), true
}

func remove(list []string, value string) ([]string, bool) {
	i := slices.Index(list, strings.TrimSpace(value))
	if i < 0 {
		return list, false
	}

	return slices.Delete(list, i, i+1), true
}
