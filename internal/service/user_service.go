package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/signaidy/nexus-standalone/internal/auth"
	"github.com/signaidy/nexus-standalone/internal/domain"
	"github.com/signaidy/nexus-standalone/internal/repository"
	apperrors "github.com/signaidy/nexus-standalone/pkg/util/errorutil"
)

// UserService handles account administration.
type UserService struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, bcryptCost int) *UserService {
	return &UserService{users: users, bcryptCost: bcryptCost}
}

// List returns all accounts.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Get returns one account by id.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFound("user", map[string]any{"id": id})
	}
	return user, err
}

// Create adds an account with an already-chosen role, hashing the given
// plaintext password.
func (s *UserService) Create(ctx context.Context, user *domain.User, password string) error {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if user.Role == "" {
		user.Role = domain.RoleUser
	}
	return s.users.Create(ctx, user)
}

// Update modifies account fields. A non-empty password is re-hashed;
// otherwise the stored hash is kept.
func (s *UserService) Update(ctx context.Context, id int64, updated *domain.User, password string) (*domain.User, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	current.FirstName = updated.FirstName
	current.LastName = updated.LastName
	current.Email = updated.Email
	current.Age = updated.Age
	current.Country = updated.Country
	current.Passport = updated.Passport
	current.Percentage = updated.Percentage
	if updated.Role != "" {
		current.Role = updated.Role
	}
	if password != "" {
		hash, err := auth.HashPassword(password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		current.PasswordHash = hash
	}

	if err := s.users.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// Delete removes an account.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	err := s.users.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("user", map[string]any{"id": id})
	}
	return err
}
