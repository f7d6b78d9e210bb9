package handler

import "github.com/contactdesk/contacts-api/internal/core/domain"

type addressRequest struct {
	Street     string `json:"street"      validate:"max=200"`
	City       string `json:"city"        validate:"max=100"`
	Province   string `json:"province"    validate:"max=100"`
	Country    string `json:"country"     validate:"required,max=100"`
	PostalCode string `json:"postal_code" validate:"required,max=10"`
}

type addressResponse struct {
	ID         int64  `json:"id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

func toAddressResponse(a *domain.Address) addressResponse {
	return addressResponse{
		ID:         a.ID,
		Street:     a.Street,
		City:       a.City,
		Province:   a.Province,
		Country:    a.Country,
		PostalCode: a.PostalCode,
	}
}

func toAddressResponses(addresses []*domain.Address) []addressResponse {
	out := make([]addressResponse, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, toAddressResponse(a))
	}
	return out
}
