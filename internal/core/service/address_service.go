package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/contactdesk/contacts-api/internal/core/domain"
	"github.com/contactdesk/contacts-api/internal/core/ports"
)

// AddressService implements address use cases. Resolution is strictly
// sequential: the contact is resolved under the caller first, then the
// address under that contact. An address is never looked up on its own.
type AddressService struct {
	contacts ports.ContactRepository
	repo     ports.AddressRepository
	activity ActivityRecorder
	logger   zerolog.Logger
}

func NewAddressService(
	contacts ports.ContactRepository,
	repo ports.AddressRepository,
	activity ActivityRecorder,
	logger zerolog.Logger,
) *AddressService {
	return &AddressService{contacts: contacts, repo: repo, activity: activity, logger: logger}
}

func (s *AddressService) Create(ctx context.Context, user *domain.User, contactID int64, input ports.AddressInput) (*domain.Address, error) {
	contact, err := s.contacts.FindByID(ctx, user.ID, contactID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	address := &domain.Address{
		ContactID:  contact.ID,
		Street:     input.Street,
		City:       input.City,
		Province:   input.Province,
		Country:    input.Country,
		PostalCode: input.PostalCode,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, address); err != nil {
		s.logger.Error().Err(err).Int64("contact_id", contact.ID).Msg("failed to create address")
		return nil, err
	}

	s.record(user.ID, domain.ActionAddressCreated, address.ID)
	return address, nil
}

func (s *AddressService) Get(ctx context.Context, user *domain.User, contactID, addressID int64) (*domain.Address, error) {
	contact, err := s.contacts.FindByID(ctx, user.ID, contactID)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, contact.ID, addressID)
}

func (s *AddressService) Update(ctx context.Context, user *domain.User, contactID, addressID int64, input ports.AddressInput) (*domain.Address, error) {
	contact, err := s.contacts.FindByID(ctx, user.ID, contactID)
	if err != nil {
		return nil, err
	}

	address, err := s.repo.FindByID(ctx, contact.ID, addressID)
	if err != nil {
		return nil, err
	}

	address.Street = input.Street
	address.City = input.City
	address.Province = input.Province
	address.Country = input.Country
	address.PostalCode = input.PostalCode
	address.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, address); err != nil {
		return nil, err
	}

	s.record(user.ID, domain.ActionAddressUpdated, address.ID)
	return address, nil
}

func (s *AddressService) Delete(ctx context.Context, user *domain.User, contactID, addressID int64) error {
	contact, err := s.contacts.FindByID(ctx, user.ID, contactID)
	if err != nil {
		return err
	}

	address, err := s.repo.FindByID(ctx, contact.ID, addressID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, contact.ID, address.ID); err != nil {
		return err
	}

	s.record(user.ID, domain.ActionAddressDeleted, address.ID)
	return nil
}

func (s *AddressService) List(ctx context.Context, user *domain.User, contactID int64) ([]*domain.Address, error) {
	contact, err := s.contacts.FindByID(ctx, user.ID, contactID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByContact(ctx, contact.ID)
}

func (s *AddressService) record(userID int64, action string, addressID int64) {
	s.activity.Record(domain.ActivityEvent{
		UserID:    userID,
		Action:    action,
		Entity:    "address",
		EntityID:  addressID,
		Timestamp: time.Now().UTC(),
	})
}
