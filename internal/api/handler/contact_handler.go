package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/contactdesk/contacts-api/internal/api/metrics"
	"github.com/contactdesk/contacts-api/internal/core/domain"
	"github.com/contactdesk/contacts-api/internal/core/ports"
)

// ContactHandler handles contact CRUD and search, all scoped to the
// authenticated user.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// contactID parses the :contactId path parameter. The routing layer only
// promises a string; a non-numeric value can never identify a contact, so
// it surfaces as the same not-found as a missing row.
func contactID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("contactId"), 10, 64)
	if err != nil || id < 1 {
		return 0, domain.ErrContactNotFound
	}
	return id, nil
}

// Create handles POST /api/contacts.
//
// @Summary      Create a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      contactRequest  true  "Contact attributes"
// @Success      201   {object}  dataResponse
// @Failure      400   {object}  map[string]map[string][]string
// @Failure      401   {object}  map[string]map[string][]string
// @Router       /api/contacts [post]
func (h *ContactHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	contact, err := h.service.Create(c.Request().Context(), user, ports.ContactInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		return err
	}

	metrics.ContactsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, dataResponse{Data: toContactResponse(contact)})
}

// Get handles GET /api/contacts/:contactId.
//
// @Summary      Get a contact
// @Tags         contacts
// @Produce      json
// @Security     TokenAuth
// @Param        contactId  path      int  true  "Contact ID"
// @Success      200        {object}  dataResponse
// @Failure      404        {object}  map[string]map[string][]string
// @Router       /api/contacts/{contactId} [get]
func (h *ContactHandler) Get(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	id, err := contactID(c)
	if err != nil {
		return err
	}

	contact, err := h.service.Get(c.Request().Context(), user, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Data: toContactResponse(contact)})
}

// Update handles PUT /api/contacts/:contactId — a full replacement of the
// contact's attributes.
//
// @Summary      Update a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        contactId  path      int             true  "Contact ID"
// @Param        body       body      contactRequest  true  "Contact attributes"
// @Success      200        {object}  dataResponse
// @Failure      404        {object}  map[string]map[string][]string
// @Router       /api/contacts/{contactId} [put]
func (h *ContactHandler) Update(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	id, err := contactID(c)
	if err != nil {
		return err
	}

	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	contact, err := h.service.Update(c.Request().Context(), user, id, ports.ContactInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Data: toContactResponse(contact)})
}

// Delete handles DELETE /api/contacts/:contactId. Deletion cascades to the
// contact's addresses and acknowledges with a boolean, not the entity.
//
// @Summary      Delete a contact
// @Tags         contacts
// @Produce      json
// @Security     TokenAuth
// @Param        contactId  path      int  true  "Contact ID"
// @Success      200        {object}  dataResponse
// @Failure      404        {object}  map[string]map[string][]string
// @Router       /api/contacts/{contactId} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	id, err := contactID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user, id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Data: true})
}

// Search handles GET /api/contacts. All filters are optional; absent or
// empty parameters impose no constraint.
//
// @Summary      Search contacts
// @Tags         contacts
// @Produce      json
// @Security     TokenAuth
// @Param        name   query     string  false  "Substring match on first or last name"
// @Param        email  query     string  false  "Substring match on email"
// @Param        phone  query     string  false  "Substring match on phone"
// @Param        page   query     int     false  "1-based page number"
// @Param        size   query     int     false  "Rows per page (default 10, max 100)"
// @Success      200    {object}  listResponse
// @Failure      401    {object}  map[string]map[string][]string
// @Router       /api/contacts [get]
func (h *ContactHandler) Search(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	input := ports.SearchContactsInput{
		Name:  c.QueryParam("name"),
		Email: c.QueryParam("email"),
		Phone: c.QueryParam("phone"),
	}
	// Unparseable paging values fall back to the defaults applied by the
	// service.
	input.Page, _ = strconv.Atoi(c.QueryParam("page"))
	input.Size, _ = strconv.Atoi(c.QueryParam("size"))

	result, err := h.service.Search(c.Request().Context(), user, input)
	if err != nil {
		return err
	}

	filtered := input.Name != "" || input.Email != "" || input.Phone != ""
	metrics.ContactSearchesTotal.WithLabelValues(strconv.FormatBool(filtered)).Inc()

	return c.JSON(http.StatusOK, listResponse{
		Data: toContactResponses(result.Items),
		Meta: metaResponse{
			Total:       result.Total,
			CurrentPage: result.Page,
			Size:        result.Size,
		},
	})
}
