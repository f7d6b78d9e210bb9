package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/contactdesk/contacts-api/internal/core/domain"
)

// ctxUser extracts the authenticated user injected by the Auth middleware.
// Its absence means the route was registered without the middleware — fail
// closed with the same 401 the middleware produces.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get("user").(*domain.User)
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}
