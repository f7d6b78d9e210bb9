package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/contactdesk/contacts-api/internal/api/handler"
	"github.com/contactdesk/contacts-api/internal/core/domain"
)

// errorEnvelope is the canonical error body: a field name (or the literal
// "message") mapped to an ordered list of human-readable strings.
type errorEnvelope struct {
	Errors map[string][]string `json:"errors"`
}

func messageEnvelope(msg string) errorEnvelope {
	return errorEnvelope{Errors: map[string][]string{"message": {msg}}}
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders validation failures as per-field message lists.
//   - Maps known domain errors to their HTTP status codes. Ownership
//     failures render the same 404 body whether the entity is missing or
//     belongs to someone else; auth failures render the same 401 whether
//     the token is absent or unknown.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorEnvelope) {
	var fe handler.FieldErrors
	if errors.As(err, &fe) {
		return http.StatusBadRequest, errorEnvelope{Errors: fe}
	}

	// Echo's own errors (bind failures, 404 from the router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, messageEnvelope(fmt.Sprintf("%v", he.Message))
	}

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, messageEnvelope("Unauthorized")
	// A user row deleted between authentication and the operation means the
	// caller's identity is stale; treat it like any other auth failure.
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusUnauthorized, messageEnvelope("Unauthorized")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, messageEnvelope("username or password is wrong")
	case errors.Is(err, domain.ErrContactNotFound):
		return http.StatusNotFound, messageEnvelope("Contact not found.")
	case errors.Is(err, domain.ErrAddressNotFound):
		return http.StatusNotFound, messageEnvelope("Address not found.")
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusBadRequest, errorEnvelope{Errors: map[string][]string{
			"username": {"Username already registered."},
		}}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, messageEnvelope("internal server error")
}
