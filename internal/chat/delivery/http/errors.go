package http

import (
	"errors"
	"net/http"

	"sccse-chatbot/internal/chat"
	pkgErrors "sccse-chatbot/pkg/errors"
)

var (
	errMessageMissing = pkgErrors.NewHTTPError(http.StatusBadRequest, "Message missing")
	errInvalidLimit   = pkgErrors.NewHTTPError(http.StatusBadRequest, "limit must be between 0 and 500")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Anything unrecognised is a store failure and becomes a generic 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return errMessageMissing
	case errors.Is(err, chat.ErrInvalidHistoryLimit):
		return errInvalidLimit
	default:
		return pkgErrors.ErrInternalServerError
	}
}
