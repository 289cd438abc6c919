package http

import (
	"errors"
	"net/http"

	"sccse-chatbot/internal/user"
	pkgErrors "sccse-chatbot/pkg/errors"
)

var (
	errMissingFields      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Name, Email and Password required")
	errMissingCredentials = pkgErrors.NewHTTPError(http.StatusBadRequest, "Email and Password required")
	errUserExists         = pkgErrors.NewHTTPError(http.StatusBadRequest, "User already exists")
	errInvalidCredentials = pkgErrors.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrMissingFields):
		return errMissingFields
	case errors.Is(err, user.ErrMissingCredentials):
		return errMissingCredentials
	case errors.Is(err, user.ErrUserExists):
		return errUserExists
	case errors.Is(err, user.ErrInvalidCredentials):
		return errInvalidCredentials
	default:
		return pkgErrors.ErrInternalServerError
	}
}
