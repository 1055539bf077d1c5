package http

import (
	"errors"
	"net/http"

	"adaptive-response-engine/internal/session"
	pkgErrors "adaptive-response-engine/pkg/errors"
)

var (
	errMissingSessionID = pkgErrors.NewHTTPError(http.StatusBadRequest, "session id is required")
	errMissingAudio     = pkgErrors.NewHTTPError(http.StatusBadRequest, "multipart field \"audio\" is required")
	errInvalidMaxTurns  = pkgErrors.NewHTTPError(http.StatusBadRequest, "max_turns must be an integer")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, session.ErrEmptyText), errors.Is(err, session.ErrEmptyAudio):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, session.ErrTrivialUtterance):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, session.ErrNoTranscriber):
		return pkgErrors.NewHTTPError(http.StatusNotImplemented, err.Error())
	case errors.Is(err, session.ErrTranscribeFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, session.ErrTranscribeFailed.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
