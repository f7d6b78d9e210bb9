package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/contactdesk/contacts-api/internal/api/metrics"
	"github.com/contactdesk/contacts-api/internal/core/domain"
	"github.com/contactdesk/contacts-api/internal/core/ports"
)

// UserHandler handles account endpoints: register, login, current-user
// read/update, and logout.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register handles POST /api/users.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  dataResponse
// @Failure      400   {object}  map[string]map[string][]string
// @Router       /api/users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dataResponse{Data: toUserResponse(user)})
}

// Login handles POST /api/users/login. On success the response carries the
// fresh session token; any previously issued token for the same user stops
// authenticating.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  dataResponse
// @Failure      401   {object}  map[string]map[string][]string
// @Router       /api/users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Login(c.Request().Context(), ports.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		// Only credential rejections count as failed logins; an
		// infrastructure error is not an attempt outcome.
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	resp := toUserResponse(user)
	resp.Token = user.Token
	return c.JSON(http.StatusOK, dataResponse{Data: resp})
}

// Current handles GET /api/users/current.
//
// @Summary      Get the authenticated user
// @Tags         users
// @Produce      json
// @Security     TokenAuth
// @Success      200  {object}  dataResponse
// @Failure      401  {object}  map[string]map[string][]string
// @Router       /api/users/current [get]
func (h *UserHandler) Current(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Data: toUserResponse(user)})
}

// Update handles PATCH /api/users/current — a partial update of name
// and/or password.
//
// @Summary      Update the authenticated user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  dataResponse
// @Failure      401   {object}  map[string]map[string][]string
// @Router       /api/users/current [patch]
func (h *UserHandler) Update(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), user, ports.UpdateUserInput{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Data: toUserResponse(updated)})
}

// Logout handles DELETE /api/users/logout. The session token is cleared;
// subsequent requests with the old token fail with 401.
//
// @Summary      Logout
// @Tags         users
// @Produce      json
// @Security     TokenAuth
// @Success      200  {object}  dataResponse
// @Failure      401  {object}  map[string]map[string][]string
// @Router       /api/users/logout [delete]
func (h *UserHandler) Logout(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Logout(c.Request().Context(), user); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Data: true})
}
