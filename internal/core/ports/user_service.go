package ports

import (
	"context"

	"github.com/contactdesk/contacts-api/internal/core/domain"
)

// RegisterInput carries pre-validated registration data.
type RegisterInput struct {
	Username string
	Password string
	Name     string
}

// LoginInput carries pre-validated login credentials.
type LoginInput struct {
	Username string
	Password string
}

// UpdateUserInput carries a partial profile update. Nil fields are left
// untouched — this is a tagged present/absent contract, not an empty-string
// sentinel.
type UpdateUserInput struct {
	Name     *string
	Password *string
}

// UserService defines account use cases.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies credentials and issues a fresh session token, stored on
	// the user row. Any prior token is overwritten (single active session).
	Login(ctx context.Context, input LoginInput) (*domain.User, error)
	Update(ctx context.Context, user *domain.User, input UpdateUserInput) (*domain.User, error)
	// Logout clears the user's session token; the old token stops
	// authenticating immediately.
	Logout(ctx context.Context, user *domain.User) error
}
