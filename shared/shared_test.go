package shared_test

import (
	"context"
	"serenity/shared"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "catalog:rooms:featured", shared.BuildCacheKey("catalog", "rooms", "featured"))
	assert.Equal(t, "session", shared.BuildCacheKey("session"))
}

func TestConvertStringToInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		ok       bool
	}{
		{name: "plain number", input: "4", expected: 4, ok: true},
		{name: "padded number", input: " 12 ", expected: 12, ok: true},
		{name: "empty", input: "", ok: false},
		{name: "decimal", input: "2.5", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := shared.ConvertStringToInt(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 10, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "division with remainder", total: 45, limit: 20, expected: 3},
		{name: "limit greater than total", total: 5, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestViewerContext(t *testing.T) {
	ctx := shared.WithViewer(context.Background(), shared.Viewer{SessionID: "sid", Token: "tok", Role: "manager"})

	assert.Equal(t, shared.Viewer{SessionID: "sid", Token: "tok", Role: "manager"}, shared.ViewerFromContext(ctx))
	assert.Equal(t, shared.Viewer{}, shared.ViewerFromContext(context.Background()))
}
