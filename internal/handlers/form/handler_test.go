package form_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"serenity/config"
	otelMocks "serenity/infras/otel/mocks"
	"serenity/internal/domains/form/mocks"
	"serenity/internal/domains/form/model"
	"serenity/internal/domains/form/model/dto"
	"serenity/internal/handlers/form"
	"serenity/shared/cache/cachetest"
	"serenity/shared/failure"
	"serenity/shared/flow"
	"serenity/transport/http/middleware"
)

func newRouter(t *testing.T) (http.Handler, *mocks.MockService) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	ot := otelMocks.NewOtel()

	handler := form.New(svc, middleware.NewAppMiddleware(ot, &config.Config{}, cachetest.NewMemory()), ot)

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))

	return rec
}

type envelope struct {
	Data  *model.Form `json:"data"`
	Error *string     `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	var res envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	return res
}

func TestOpen(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Open(gomock.Any(), dto.OpenRequest{Kind: model.KindBooking, RoomName: "Garden Cottage", Capacity: 2}).
		Return(model.Form{ID: "f1", Kind: model.KindBooking, Submission: flow.New()}, nil)

	rec := serve(router, http.MethodPost, "/forms", `{"kind":"booking","room_name":"Garden Cottage","capacity":2}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	res := decode(t, rec)
	require.NotNil(t, res.Data)
	assert.Equal(t, "f1", res.Data.ID)
	assert.Equal(t, flow.Idle, res.Data.Submission.State)
}

func TestOpen_UnknownKind(t *testing.T) {
	router, _ := newRouter(t)

	rec := serve(router, http.MethodPost, "/forms", `{"kind":"newsletter"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmit(t *testing.T) {
	tests := []struct {
		name     string
		result   model.Form
		err      error
		expected int
		message  string
	}{
		{
			name:     "backend rejection is reported on the form",
			result:   model.Form{ID: "f1", Submission: flow.Submission{State: flow.Failed, Error: "Invalid email"}},
			expected: http.StatusOK,
		},
		{
			name:     "invalid fields",
			err:      failure.BadRequestFromString("message must be at least 10 characters"),
			expected: http.StatusBadRequest,
			message:  "message must be at least 10 characters",
		},
		{
			name:     "already in flight",
			err:      failure.SubmissionInProgress,
			expected: http.StatusConflict,
			message:  "a submission is already in progress",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)

			svc.EXPECT().Submit(gomock.Any(), "f1", model.Fields{Name: "Amina", Email: "amina@example.com", Message: "Hello there"}).
				Return(tt.result, tt.err)

			rec := serve(router, http.MethodPost, "/forms/f1/submit", `{"name":"Amina","email":"amina@example.com","message":"Hello there"}`)

			assert.Equal(t, tt.expected, rec.Code)

			res := decode(t, rec)
			if tt.err != nil {
				require.NotNil(t, res.Error)
				assert.Equal(t, tt.message, *res.Error)

				return
			}

			require.NotNil(t, res.Data)
			assert.Equal(t, flow.Failed, res.Data.Submission.State)
			assert.Equal(t, "Invalid email", res.Data.Submission.Error)
		})
	}
}

func TestReset(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Reset(gomock.Any(), "f1", false).Return(model.Form{ID: "f1", Submission: flow.New()}, nil)
	svc.EXPECT().Reset(gomock.Any(), "f1", true).Return(model.Form{ID: "f1", Submission: flow.New()}, nil)

	assert.Equal(t, http.StatusOK, serve(router, http.MethodPost, "/forms/f1/reset", "").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodPost, "/forms/f1/reset", `{"clear_fields":true}`).Code)
}

func TestGet_NotFound(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Get(gomock.Any(), "gone").Return(model.Form{}, failure.NotFound("form not found"))

	rec := serve(router, http.MethodGet, "/forms/gone", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
