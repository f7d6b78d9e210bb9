package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/contactdesk/contacts-api/internal/core/domain"
	"github.com/contactdesk/contacts-api/internal/core/ports"
)

// AddressHandler handles the nested address endpoints. Every operation goes
// through the full ownership chain: the contact is resolved under the
// caller before the address is looked at.
type AddressHandler struct {
	service ports.AddressService
}

func NewAddressHandler(service ports.AddressService) *AddressHandler {
	return &AddressHandler{service: service}
}

func addressID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("addressId"), 10, 64)
	if err != nil || id < 1 {
		return 0, domain.ErrAddressNotFound
	}
	return id, nil
}

// Create handles POST /api/contacts/:contactId/addresses.
//
// @Summary      Create an address under a contact
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        contactId  path      int             true  "Contact ID"
// @Param        body       body      addressRequest  true  "Address attributes"
// @Success      201        {object}  dataResponse
// @Failure      404        {object}  map[string]map[string][]string
// @Router       /api/contacts/{contactId}/addresses [post]
func (h *AddressHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	cid, err := contactID(c)
	if err != nil {
		return err
	}

	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	address, err := h.service.Create(c.Request().Context(), user, cid, ports.AddressInput{
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dataResponse{Data: toAddressResponse(address)})
}

// Get handles GET /api/contacts/:contactId/addresses/:addressId.
//
// @Summary      Get an address
// @Tags         addresses
// @Produce      json
// @Security     TokenAuth
// @Param        contactId  path      int  true  "Contact ID"
// @Param        addressId  path      int  true  "Address ID"
// @Success      200        {object}  dataResponse
// @Failure      404        {object}  map[string]map[string][]string
// @Router       /api/contacts/{contactId}/addresses/{addressId} [get]
func (h *AddressHandler) Get(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	cid, err := contactID(c)
	if err != nil {
		return err
	}
	aid, err := addressID(c)
	if err != nil {
		return err
	}

	address, err := h.service.Get(c.Request().Context(), user, cid, aid)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Data: toAddressResponse(address)})
}

// Update handles PUT /api/contacts/:contactId/addresses/:addressId.
//
// @Summary      Update an address
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        contactId  path      int             true  "Contact ID"
// @Param        addressId  path      int             true  "Address ID"
// @Param        body       body      addressRequest  true  "Address attributes"
// @Success      200        {object}  dataResponse
// @Failure      404        {object}  map[string]map[string][]string
// @Router       /api/contacts/{contactId}/addresses/{addressId} [put]
func (h *AddressHandler) Update(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	cid, err := contactID(c)
	if err != nil {
		return err
	}
	aid, err := addressID(c)
	if err != nil {
		return err
	}

	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	address, err := h.service.Update(c.Request().Context(), user, cid, aid, ports.AddressInput{
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Data: toAddressResponse(address)})
}

// Delete handles DELETE /api/contacts/:contactId/addresses/:addressId.
//
// @Summary      Delete an address
// @Tags         addresses
// @Produce      json
// @Security     TokenAuth
// @Param        contactId  path      int  true  "Contact ID"
// @Param        addressId  path      int  true  "Address ID"
// @Success      200        {object}  dataResponse
// @Failure      404        {object}  map[string]map[string][]string
// @Router       /api/contacts/{contactId}/addresses/{addressId} [delete]
func (h *AddressHandler) Delete(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	cid, err := contactID(c)
	if err != nil {
		return err
	}
	aid, err := addressID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user, cid, aid); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Data: true})
}

// List handles GET /api/contacts/:contactId/addresses — all addresses of
// the contact, unpaginated, ordered by ascending ID.
//
// @Summary      List a contact's addresses
// @Tags         addresses
// @Produce      json
// @Security     TokenAuth
// @Param        contactId  path      int  true  "Contact ID"
// @Success      200        {object}  dataResponse
// @Failure      404        {object}  map[string]map[string][]string
// @Router       /api/contacts/{contactId}/addresses [get]
func (h *AddressHandler) List(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	cid, err := contactID(c)
	if err != nil {
		return err
	}

	addresses, err := h.service.List(c.Request().Context(), user, cid)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Data: toAddressResponses(addresses)})
}
