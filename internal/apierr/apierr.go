package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the service-wide error type. Status is the HTTP status to
// respond with, Code is a stable machine-readable identifier.
type Error struct {
	Status  int
	Code    string
	Err     error
	Details interface{}
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func Validation(format string, args ...interface{}) *Error {
	return New(http.StatusBadRequest, "VALIDATION_ERROR", fmt.Errorf(format, args...))
}

func NotFound(format string, args ...interface{}) *Error {
	return New(http.StatusNotFound, "NOT_FOUND", fmt.Errorf(format, args...))
}

func InvalidToken() *Error {
	return New(http.StatusUnauthorized, "INVALID_TOKEN", errors.New("invalid or expired token"))
}

func Unauthorized(format string, args ...interface{}) *Error {
	return New(http.StatusUnauthorized, "UNAUTHORIZED", fmt.Errorf(format, args...))
}

// Upstream wraps a NASA API failure. Upstream 4xx statuses are passed
// through so callers can distinguish e.g. a bad id from an outage;
// anything else maps to 502.
func Upstream(upstreamStatus int, err error) *Error {
	status := http.StatusBadGateway
	if upstreamStatus >= 400 && upstreamStatus < 500 {
		status = upstreamStatus
	}
	return New(status, "UPSTREAM_ERROR", err)
}

// From extracts an *Error from err's chain, or wraps err as an internal
// error so handlers never leak unclassified failures.
func From(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return New(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", err)
}
