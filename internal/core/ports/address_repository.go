package ports

import (
	"context"

	"github.com/contactdesk/contacts-api/internal/core/domain"
)

// AddressRepository defines persistence operations for addresses. Lookups
// are scoped to the owning contact the same way contact lookups are scoped
// to the owning user.
type AddressRepository interface {
	Create(ctx context.Context, address *domain.Address) error
	// FindByID retrieves the address by primary key scoped to contactID.
	// An address under a different contact returns domain.ErrAddressNotFound.
	FindByID(ctx context.Context, contactID, addressID int64) (*domain.Address, error)
	Update(ctx context.Context, address *domain.Address) error
	Delete(ctx context.Context, contactID, addressID int64) error
	// ListByContact returns all addresses of the contact ordered by ascending ID.
	ListByContact(ctx context.Context, contactID int64) ([]*domain.Address, error)
	// DeleteByContact removes every address of the contact (cascade on
	// contact deletion).
	DeleteByContact(ctx context.Context, contactID int64) error
}
