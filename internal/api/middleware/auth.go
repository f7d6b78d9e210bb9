package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/contactdesk/contacts-api/internal/api/metrics"
	"github.com/contactdesk/contacts-api/internal/core/domain"
	"github.com/contactdesk/contacts-api/internal/core/ports"
)

// Auth resolves the raw Authorization header value against the user store
// and injects the authenticated user into the request context. The header
// value is the opaque session token itself, compared byte-for-byte; there
// is no session cache, so a token cleared by logout stops working on the
// next request.
//
// A missing header and an unrecognized token both yield the same 401 —
// the distinction is deliberately not observable.
func Auth(users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get("Authorization")
			if token == "" {
				metrics.AuthFailuresTotal.Inc()
				return domain.ErrUnauthorized
			}

			user, err := users.FindByToken(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AuthFailuresTotal.Inc()
					return domain.ErrUnauthorized
				}
				return err
			}

			c.Set("user", user)
			return next(c)
		}
	}
}
