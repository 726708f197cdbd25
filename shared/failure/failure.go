package failure

import (
	"errors"
	"net/http"
)

// Failure carries an HTTP status and the message shown to the caller.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	InvalidOffsetParam   = New(http.StatusBadRequest, "invalid offset parameter")
	InvalidLimitParam    = New(http.StatusBadRequest, "invalid limit parameter")
	ForbiddenError       = New(http.StatusForbidden, "You don't have the required permissions")
	SessionRequired      = New(http.StatusUnauthorized, "admin session required")
	SubmissionInProgress = New(http.StatusConflict, "a submission is already in progress")
)

func New(code int, message string) *Failure {
	return &Failure{Code: code, Message: message}
}

func (e *Failure) Error() string {
	return e.Message
}

// BadRequest wraps err as a 400. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return New(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return New(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) error {
	return New(http.StatusForbidden, msg)
}

// NotFound reports a missing entity; msg is shown as is.
func NotFound(msg string) error {
	return New(http.StatusNotFound, msg)
}

func Conflict(msg string) error {
	return New(http.StatusConflict, msg)
}

// InternalError wraps err as a 500. A nil err stays nil.
func InternalError(err error) error {
	if err == nil {
		return nil
	}

	return New(http.StatusInternalServerError, err.Error())
}

// BadGateway marks an upstream that could not be reached or understood.
func BadGateway(msg string) error {
	return New(http.StatusBadGateway, msg)
}

// As returns the Failure carried by err, if any.
func As(err error) (*Failure, bool) {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail, true
	}

	return nil, false
}

// GetCode returns the status carried by err, 500 when it carries none.
func GetCode(err error) int {
	if fail, ok := As(err); ok {
		return fail.Code
	}

	return http.StatusInternalServerError
}
