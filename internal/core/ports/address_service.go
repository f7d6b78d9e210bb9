package ports

import (
	"context"

	"github.com/contactdesk/contacts-api/internal/core/domain"
)

// AddressInput carries pre-validated address attributes.
type AddressInput struct {
	Street     string
	City       string
	Province   string
	Country    string
	PostalCode string
}

// AddressService defines address use cases. Every operation resolves the
// ownership chain in order: the contact under the caller first, then the
// address under that contact.
type AddressService interface {
	Create(ctx context.Context, user *domain.User, contactID int64, input AddressInput) (*domain.Address, error)
	Get(ctx context.Context, user *domain.User, contactID, addressID int64) (*domain.Address, error)
	Update(ctx context.Context, user *domain.User, contactID, addressID int64, input AddressInput) (*domain.Address, error)
	Delete(ctx context.Context, user *domain.User, contactID, addressID int64) error
	List(ctx context.Context, user *domain.User, contactID int64) ([]*domain.Address, error)
}
