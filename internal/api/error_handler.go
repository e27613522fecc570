package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/falaklabs/natal-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. Kind is
// the stable machine-readable tag; Error is the human-readable detail.
type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>", "kind": "<tag>"}.
//
// Nothing reaches the client as an unhandled fault: every failure path ends
// here with a tagged payload.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, kind := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg, Kind: kind})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), ""
	}

	// Known domain errors map to deterministic HTTP codes plus a kind tag.
	switch {
	case errors.Is(err, domain.ErrInvalidDateTimeFormat),
		errors.Is(err, domain.ErrDateOutOfRange),
		errors.Is(err, domain.ErrInvalidLocalTime):
		return http.StatusBadRequest, err.Error(), domain.ErrorKind(err)
	case errors.Is(err, domain.ErrLocationNotFound):
		return http.StatusNotFound, err.Error(), domain.ErrorKind(err)
	case errors.Is(err, domain.ErrHouseCalculation),
		errors.Is(err, domain.ErrProviderUnavailable):
		return http.StatusBadGateway, err.Error(), domain.ErrorKind(err)
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials", ""
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found", ""
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "user already exists", ""
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error", "INTERNAL"
}
