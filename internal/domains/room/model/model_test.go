package model_test

import (
	"serenity/internal/domains/room/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Deluxe Room 1", want: "deluxe-room-1"},
		{in: "  Garden   Cottage ", want: "garden-cottage"},
		{in: "Chez Wima's Suite!", want: "chez-wimas-suite"},
		{in: "Exécutive\tRoom", want: "excutive-room"},
		{in: "already-a-slug", want: "already-a-slug"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Slugify(tt.in))
		})
	}
}

func TestDraft_SlugFollowsNameUntilEdited(t *testing.T) {
	d := model.NewDraft("d1")

	d.SetName("Family Room")
	assert.Equal(t, "family-room", d.Room.Slug)

	d.SetName("Family Room Deluxe")
	assert.Equal(t, "family-room-deluxe", d.Room.Slug)

	d.SetSlug("Family Suite")
	assert.Equal(t, "family-suite", d.Room.Slug)

	d.SetName("Big Family Room")
	assert.Equal(t, "family-suite", d.Room.Slug)
}

func TestDraft_EditKeepsLoadedSlug(t *testing.T) {
	d := model.EditDraft("d2", model.Room{ID: "5", Name: "Premier", Slug: "Premier_Legacy"})

	d.SetName("Premier Room")
	assert.Equal(t, "Premier_Legacy", d.Room.Slug)

	d.SetSlug("Premier Room")
	assert.Equal(t, "premier-room", d.Room.Slug)
}

func TestDraft_Sets(t *testing.T) {
	d := model.NewDraft("d3")

	assert.True(t, d.AddAmenity(" WiFi "))
	assert.False(t, d.AddAmenity("WiFi"))
	assert.False(t, d.AddAmenity("   "))
	assert.True(t, d.AddAmenity("Hot shower"))
	assert.True(t, d.AddAmenity("Garden view"))

	assert.True(t, d.RemoveAmenity("Hot shower"))
	assert.False(t, d.RemoveAmenity("Hot shower"))
	assert.Equal(t, []string{"WiFi", "Garden view"}, d.Room.Amenities)

	assert.True(t, d.AddImage("https://cdn.example.com/a.jpg"))
	assert.False(t, d.AddImage("https://cdn.example.com/a.jpg"))
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg"}, d.Room.Images)
}

func TestDraft_Orphans(t *testing.T) {
	d := model.NewDraft("d4")
	d.Uploaded = []string{"u1", "u2"}
	d.AddImage("u1")
	d.AddImage("u2")
	d.RemoveImage("u2")

	assert.Equal(t, []string{"u2"}, d.Orphans())
}

func TestEditDraft_DoesNotAliasRoom(t *testing.T) {
	room := model.Room{ID: "1", Amenities: []string{"WiFi"}}
	d := model.EditDraft("d5", room)

	d.AddAmenity("Balcony")
	d.RemoveAmenity("WiFi")

	assert.Equal(t, []string{"WiFi"}, room.Amenities)
	assert.True(t, d.Editing())
}
