package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is an error that knows which HTTP status it should be rendered with.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// NewHTTPErrorf is NewHTTPError with fmt formatting.
func NewHTTPErrorf(statusCode int, format string, args ...any) *HTTPError {
	return NewHTTPError(statusCode, fmt.Sprintf(format, args...))
}

// Common HTTP errors.
var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
)

// StatusCode returns the HTTP status carried by err, or 400 when err is not an HTTPError.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return http.StatusBadRequest
}
