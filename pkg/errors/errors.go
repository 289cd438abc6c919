package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is an error that carries the HTTP status it should be reported with.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// NewHTTPErrorf creates an HTTPError with a formatted message.
func NewHTTPErrorf(statusCode int, format string, args ...any) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: fmt.Sprintf(format, args...)}
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)

// StatusCode returns the status of the first HTTPError in err's chain, or 400.
func StatusCode(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode
	}
	return http.StatusBadRequest
}
