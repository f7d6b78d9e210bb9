package ports

import (
	"context"

	"github.com/contactdesk/contacts-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user and returns it with its assigned ID.
	// A duplicate username surfaces as domain.ErrUsernameTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByToken retrieves the unique user whose current session token
	// equals token (exact match). An empty token never matches.
	FindByToken(ctx context.Context, token string) (*domain.User, error)
	// Update persists the user's mutable fields (name, password hash, token).
	Update(ctx context.Context, user *domain.User) error
}
