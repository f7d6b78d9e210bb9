package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/contactdesk/contacts-api/internal/core/domain"
	"github.com/contactdesk/contacts-api/internal/core/ports"
)

// LoginThrottle abstracts the failed-login counter (Redis). The throttle
// degrades open: when it errors, the attempt proceeds with a logged warning.
type LoginThrottle interface {
	// TooMany reports whether the username has exceeded the failure budget
	// inside the current window.
	TooMany(ctx context.Context, username string) (bool, error)
	// Fail records one failed attempt.
	Fail(ctx context.Context, username string) error
	// Reset clears the counter after a successful login.
	Reset(ctx context.Context, username string) error
}

// UserService implements registration, login, profile update, and logout.
type UserService struct {
	repo     ports.UserRepository
	throttle LoginThrottle
	logger   zerolog.Logger
}

func NewUserService(repo ports.UserRepository, throttle LoginThrottle, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, throttle: throttle, logger: logger}
}

func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if _, err := s.repo.FindByUsername(ctx, input.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Name:         input.Name,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Login verifies credentials and stores a fresh opaque token on the user
// row. The token overwrites any previous one, so a login from a second
// device invalidates the first session.
func (s *UserService) Login(ctx context.Context, input ports.LoginInput) (*domain.User, error) {
	blocked, err := s.throttle.TooMany(ctx, input.Username)
	if err != nil {
		s.logger.Warn().Err(err).Str("username", input.Username).Msg("login throttle check failed, allowing attempt")
	} else if blocked {
		s.logger.Warn().Str("username", input.Username).Msg("login throttled")
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, input.Username)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		s.recordFailure(ctx, input.Username)
		return nil, domain.ErrInvalidCredentials
	}

	user.Token = uuid.NewString()
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	if err := s.throttle.Reset(ctx, input.Username); err != nil {
		s.logger.Warn().Err(err).Str("username", input.Username).Msg("failed to reset login throttle")
	}

	s.logger.Info().Str("username", user.Username).Msg("user logged in")
	return user, nil
}

func (s *UserService) Update(ctx context.Context, user *domain.User, input ports.UpdateUserInput) (*domain.User, error) {
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout clears the session token. Authentication with the old token fails
// on the very next request — token lookups are uncached.
func (s *UserService) Logout(ctx context.Context, user *domain.User) error {
	user.Token = ""
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Str("username", user.Username).Msg("user logged out")
	return nil
}

func (s *UserService) recordFailure(ctx context.Context, username string) {
	if err := s.throttle.Fail(ctx, username); err != nil {
		s.logger.Warn().Err(err).Str("username", username).Msg("failed to record login failure")
	}
}
