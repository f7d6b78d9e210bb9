package ports

import (
	"context"

	"github.com/contactdesk/contacts-api/internal/core/domain"
)

// ContactInput carries pre-validated contact attributes.
type ContactInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// SearchContactsInput carries the raw listing parameters as they arrive
// from the query string. The service normalizes paging before querying.
type SearchContactsInput struct {
	Name  string
	Email string
	Phone string
	Page  int
	Size  int
}

// SearchContactsResult is one page of matches plus pagination metadata.
// Total counts every matching row, not just the returned slice.
type SearchContactsResult struct {
	Items []*domain.Contact
	Total int64
	Page  int
	Size  int
}

// ContactService defines contact use cases, all scoped to the
// authenticated user.
type ContactService interface {
	Create(ctx context.Context, user *domain.User, input ContactInput) (*domain.Contact, error)
	Get(ctx context.Context, user *domain.User, contactID int64) (*domain.Contact, error)
	Update(ctx context.Context, user *domain.User, contactID int64, input ContactInput) (*domain.Contact, error)
	// Delete removes the contact and all its addresses.
	Delete(ctx context.Context, user *domain.User, contactID int64) error
	Search(ctx context.Context, user *domain.User, input SearchContactsInput) (*SearchContactsResult, error)
}
