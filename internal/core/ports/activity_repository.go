package ports

import (
	"context"

	"github.com/contactdesk/contacts-api/internal/core/domain"
)

// ActivityRepository persists audit records of user mutations.
type ActivityRepository interface {
	Insert(ctx context.Context, event *domain.ActivityEvent) error
}
