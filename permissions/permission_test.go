package permissions_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serenity/permissions"
)

func TestGet_EmbeddedTable(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name     string
		path     string
		method   string
		role     string
		expected bool
	}{
		{name: "manager creates room draft", path: "/v1/admin/rooms/drafts", method: http.MethodPost, role: "manager", expected: true},
		{name: "admin saves room draft", path: "/v1/admin/rooms/drafts/{draftID}/save", method: http.MethodPost, role: "admin", expected: true},
		{name: "staff cannot toggle rooms", path: "/v1/admin/rooms/view/rows/{id}/{action}", method: http.MethodPost, role: "staff", expected: false},
		{name: "staff may read inquiries", path: "/v1/admin/inquiries/view/", method: http.MethodGet, role: "staff", expected: true},
		{name: "staff sees dashboard", path: "/v1/admin/dashboard", method: http.MethodGet, role: "staff", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, data.Allows(tt.path, tt.method, tt.role))
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := permissions.Parse([]byte("{"))

	assert.Error(t, err)
}
