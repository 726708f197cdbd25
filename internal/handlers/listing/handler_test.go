package listing_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	otelMocks "serenity/infras/otel/mocks"
	listingHandler "serenity/internal/handlers/listing"
	"serenity/shared"
	"serenity/shared/cache"
	"serenity/shared/cache/cachetest"
	"serenity/shared/failure"
	"serenity/shared/listing"
)

type message struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type messages struct {
	rows   []message
	tokens []string
}

func (m *messages) Fetch(_ context.Context, token string, query listing.Query) (listing.Page[message], error) {
	m.tokens = append(m.tokens, token)

	var rows []message
	for _, row := range m.rows {
		if query.Status == "" || row.Status == query.Status {
			rows = append(rows, row)
		}
	}

	total := len(rows)
	end := min(query.Offset+query.Limit, total)
	if query.Offset >= end {
		return listing.Page[message]{Total: total}, nil
	}

	return listing.Page[message]{Rows: rows[query.Offset:end], Total: total}, nil
}

func (m *messages) Transition(row message, action string) (message, bool, error) {
	if action != "archive" {
		return row, false, fmt.Errorf("cannot %s", action)
	}
	if row.Status == "archived" {
		return row, false, nil
	}
	row.Status = "archived"

	return row, true, nil
}

func (m *messages) Commit(_ context.Context, _ string, row message, _ string) error {
	for i := range m.rows {
		if m.rows[i].ID == row.ID {
			m.rows[i].Status = "archived"
		}
	}

	return nil
}

func (m *messages) ID(row message) string { return row.ID }

func (m *messages) Actions(row message) []string {
	if row.Status == "archived" {
		return []string{}
	}

	return []string{"archive"}
}

func newRouter(sessionID string) (http.Handler, *messages) {
	resource := &messages{}
	for i := range 25 {
		resource.rows = append(resource.rows, message{ID: fmt.Sprintf("m%d", i), Status: "new"})
	}

	flow := listing.New[message](resource, cache.NewStore[listing.View[message]](cachetest.NewMemory(), "view:message:", 0), listing.Options{
		Name:     "message",
		Statuses: []string{"new", "archived"},
		Limit:    20,
	})

	handler := listingHandler.New("Messages", flow, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.WithViewer(r.Context(), shared.Viewer{SessionID: sessionID, Token: "tok"})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	handler.Router(router)

	return router, resource
}

func call(t *testing.T, router http.Handler, method, path, body string) (int, listing.View[message], string) {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))

	var res struct {
		Data  listing.View[message] `json:"data"`
		Error string                `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	return rec.Code, res.Data, res.Error
}

func TestView_Paging(t *testing.T) {
	router, resource := newRouter("sid")

	code, view, _ := call(t, router, http.MethodGet, "/view", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, view.Rows, 20)
	assert.Equal(t, 25, view.Total)
	assert.Equal(t, "all", view.Status)
	assert.True(t, view.Pager.HasNext)

	_, view, _ = call(t, router, http.MethodPost, "/view/next", "")
	assert.Equal(t, 20, view.Offset)
	assert.Len(t, view.Rows, 5)
	assert.False(t, view.Pager.HasNext)

	_, view, _ = call(t, router, http.MethodPost, "/view/prev", "")
	assert.Equal(t, 0, view.Offset)

	_, view, _ = call(t, router, http.MethodPost, "/view/page?offset=20", "")
	assert.Equal(t, 20, view.Offset)

	code, _, errMsg := call(t, router, http.MethodPost, "/view/page?offset=-1", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, failure.InvalidOffsetParam.Message, errMsg)

	assert.Contains(t, resource.tokens, "tok")
}

func TestView_FilterAndArchive(t *testing.T) {
	router, _ := newRouter("sid")

	_, view, _ := call(t, router, http.MethodPost, "/view/page?offset=20", "")
	require.Equal(t, 20, view.Offset)

	code, view, _ := call(t, router, http.MethodPost, "/view/filter", `{"status":"new"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0, view.Offset)
	assert.Equal(t, "new", view.Status)

	_, view, _ = call(t, router, http.MethodPost, "/view/select/m3", "")
	require.NotNil(t, view.Selected)
	assert.Equal(t, "m3", view.Selected.Item.ID)

	_, view, _ = call(t, router, http.MethodPost, "/view/rows/m3/archive", "")
	require.NotNil(t, view.Selected)
	assert.Equal(t, "archived", view.Selected.Item.Status)
	assert.Equal(t, 24, view.Total)

	code, _, _ = call(t, router, http.MethodPost, "/view/rows/m3/archive", "")
	assert.Equal(t, http.StatusOK, code)

	code, _, errMsg := call(t, router, http.MethodPost, "/view/rows/m3/delete", "")
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "cannot delete", errMsg)

	_, view, _ = call(t, router, http.MethodPost, "/view/close", "")
	assert.Nil(t, view.Selected)

	code, _, _ = call(t, router, http.MethodPost, "/view/filter", `{"status":"spam"}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestView_RequiresSession(t *testing.T) {
	router, _ := newRouter("")

	code, _, errMsg := call(t, router, http.MethodGet, "/view", "")

	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, failure.SessionRequired.Message, errMsg)
}
