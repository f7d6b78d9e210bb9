package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/contactdesk/contacts-api/internal/core/domain"
	"github.com/contactdesk/contacts-api/internal/core/ports"
)

const (
	defaultPageSize = 10
	// maxPageSize bounds the per-page row count. Larger values are clamped,
	// not rejected.
	maxPageSize = 100
)

// ActivityRecorder accepts audit events for asynchronous persistence.
// Recording never blocks the request path beyond the queue hand-off.
type ActivityRecorder interface {
	Record(event domain.ActivityEvent)
}

// ContactService implements contact use cases scoped to the owning user.
type ContactService struct {
	repo      ports.ContactRepository
	addresses ports.AddressRepository
	activity  ActivityRecorder
	logger    zerolog.Logger
}

func NewContactService(
	repo ports.ContactRepository,
	addresses ports.AddressRepository,
	activity ActivityRecorder,
	logger zerolog.Logger,
) *ContactService {
	return &ContactService{repo: repo, addresses: addresses, activity: activity, logger: logger}
}

func (s *ContactService) Create(ctx context.Context, user *domain.User, input ports.ContactInput) (*domain.Contact, error) {
	now := time.Now().UTC()
	contact := &domain.Contact{
		UserID:    user.ID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		s.logger.Error().Err(err).Int64("user_id", user.ID).Msg("failed to create contact")
		return nil, err
	}

	s.record(user.ID, domain.ActionContactCreated, contact.ID)
	return contact, nil
}

func (s *ContactService) Get(ctx context.Context, user *domain.User, contactID int64) (*domain.Contact, error) {
	return s.repo.FindByID(ctx, user.ID, contactID)
}

func (s *ContactService) Update(ctx context.Context, user *domain.User, contactID int64, input ports.ContactInput) (*domain.Contact, error) {
	contact, err := s.repo.FindByID(ctx, user.ID, contactID)
	if err != nil {
		return nil, err
	}

	contact.FirstName = input.FirstName
	contact.LastName = input.LastName
	contact.Email = input.Email
	contact.Phone = input.Phone
	contact.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, contact); err != nil {
		return nil, err
	}

	s.record(user.ID, domain.ActionContactUpdated, contact.ID)
	return contact, nil
}

// Delete removes the contact and cascades to its addresses. The contact is
// resolved under the caller first, so a foreign ID fails before anything is
// touched.
func (s *ContactService) Delete(ctx context.Context, user *domain.User, contactID int64) error {
	contact, err := s.repo.FindByID(ctx, user.ID, contactID)
	if err != nil {
		return err
	}

	if err := s.addresses.DeleteByContact(ctx, contact.ID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, user.ID, contact.ID); err != nil {
		return err
	}

	s.record(user.ID, domain.ActionContactDeleted, contact.ID)
	return nil
}

// Search runs the filtered listing. Paging is normalized here: page < 1
// becomes 1, size < 1 becomes the default of 10, size above maxPageSize is
// clamped. A page past the last match returns an empty slice with the full
// total — not an error.
func (s *ContactService) Search(ctx context.Context, user *domain.User, input ports.SearchContactsInput) (*ports.SearchContactsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	size := input.Size
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	items, total, err := s.repo.Search(ctx, ports.SearchContactsFilter{
		UserID: user.ID,
		Name:   input.Name,
		Email:  input.Email,
		Phone:  input.Phone,
		Page:   page,
		Size:   size,
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", user.ID).Msg("contact search failed")
		return nil, err
	}

	return &ports.SearchContactsResult{Items: items, Total: total, Page: page, Size: size}, nil
}

func (s *ContactService) record(userID int64, action string, contactID int64) {
	s.activity.Record(domain.ActivityEvent{
		UserID:    userID,
		Action:    action,
		Entity:    "contact",
		EntityID:  contactID,
		Timestamp: time.Now().UTC(),
	})
}
