package ports

import (
	"context"

	"github.com/contactdesk/contacts-api/internal/core/domain"
)

// SearchContactsFilter carries the scoped query for the contact listing.
// UserID is always set by the service layer — search never crosses users.
// Name, Email, and Phone are optional case-insensitive substring filters,
// AND-combined when more than one is present; an empty string imposes no
// constraint. Page and Size arrive already normalized by the service.
type SearchContactsFilter struct {
	UserID int64
	Name   string // matches first_name OR last_name
	Email  string
	Phone  string
	Page   int // 1-based
	Size   int // rows per page
}

// ContactRepository defines persistence operations for contacts. Every
// lookup and mutation takes the owning user's ID as part of the query
// predicate, never as an after-the-fact comparison.
type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) error
	// FindByID retrieves the contact by primary key scoped to userID.
	// A contact that exists under a different user is indistinguishable
	// from one that does not exist: both return domain.ErrContactNotFound.
	FindByID(ctx context.Context, userID, contactID int64) (*domain.Contact, error)
	Update(ctx context.Context, contact *domain.Contact) error
	Delete(ctx context.Context, userID, contactID int64) error
	// Search returns one page of matching contacts ordered by ascending ID,
	// plus the total match count across all pages.
	Search(ctx context.Context, filter SearchContactsFilter) ([]*domain.Contact, int64, error)
}
