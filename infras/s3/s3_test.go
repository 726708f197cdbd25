package s3_test

import (
	"serenity/infras/s3"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	tests := []struct {
		name     string
		domain   string
		url      string
		expected string
	}{
		{name: "inside bucket", domain: "https://media.example.com", url: "https://media.example.com/rooms/deluxe.jpg", expected: "rooms/deluxe.jpg"},
		{name: "trailing slash on domain", domain: "https://media.example.com/", url: "https://media.example.com/rooms/deluxe.jpg", expected: "rooms/deluxe.jpg"},
		{name: "foreign url", domain: "https://media.example.com", url: "https://cdn.other.com/rooms/deluxe.jpg", expected: ""},
		{name: "no domain configured", domain: "", url: "/rooms/deluxe.jpg", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s3.ObjectKey(tt.domain, tt.url))
		})
	}
}
