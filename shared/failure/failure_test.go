package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"serenity/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	assert.Equal(t, "test error message", f.Error())
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
	}{
		{name: "InvalidOffsetParam", failure: failure.InvalidOffsetParam, code: http.StatusBadRequest},
		{name: "InvalidLimitParam", failure: failure.InvalidLimitParam, code: http.StatusBadRequest},
		{name: "ForbiddenError", failure: failure.ForbiddenError, code: http.StatusForbidden},
		{name: "SessionRequired", failure: failure.SessionRequired, code: http.StatusUnauthorized},
		{name: "SubmissionInProgress", failure: failure.SubmissionInProgress, code: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.failure.Code)
			assert.NotEmpty(t, tt.failure.Message)
		})
	}
}

func TestBadRequest(t *testing.T) {
	assert.Nil(t, failure.BadRequest(nil))

	err := failure.BadRequest(errors.New("name is required"))
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Equal(t, "name is required", err.Error())
}

func TestInternalError(t *testing.T) {
	assert.Nil(t, failure.InternalError(nil))

	err := failure.InternalError(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{name: "bad request from string", err: failure.BadRequestFromString("bad"), code: http.StatusBadRequest, msg: "bad"},
		{name: "unauthorized", err: failure.Unauthorized("Invalid credentials"), code: http.StatusUnauthorized, msg: "Invalid credentials"},
		{name: "bad gateway", err: failure.BadGateway("Request failed: 502"), code: http.StatusBadGateway, msg: "Request failed: 502"},
		{name: "not found", err: failure.NotFound("room not found"), code: http.StatusNotFound, msg: "room not found"},
		{name: "conflict", err: failure.Conflict("already archived"), code: http.StatusConflict, msg: "already archived"},
		{name: "forbidden", err: failure.Forbidden("managers only"), code: http.StatusForbidden, msg: "managers only"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.Equal(t, tt.msg, tt.err.Error())
		})
	}
}

func TestGetCode(t *testing.T) {
	t.Run("plain error defaults to internal", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain")))
	})

	t.Run("wrapped failure keeps its code", func(t *testing.T) {
		err := fmt.Errorf("failed to fetch rooms: %w", failure.NotFound("room not found"))
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("failed to list rooms: %w", failure.Forbidden("Forbidden"))

	fail, ok := failure.As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "Forbidden", fail.Message)

	_, ok = failure.As(errors.New("plain"))
	assert.False(t, ok)
}
