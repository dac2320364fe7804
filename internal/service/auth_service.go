package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/signaidy/nexus-standalone/internal/auth"
	"github.com/signaidy/nexus-standalone/internal/config"
	"github.com/signaidy/nexus-standalone/internal/domain"
	"github.com/signaidy/nexus-standalone/internal/repository"
	apperrors "github.com/signaidy/nexus-standalone/pkg/util/errorutil"
)

// SignupInput carries the fields accepted by signup.
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Age       int
	Country   string
	Passport  string
}

// AuthService coordinates signup and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service. Fails when the signing secret is
// absent or malformed.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) (*AuthService, error) {
	tokenMgr, err := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL())
	if err != nil {
		return nil, err
	}
	return &AuthService{
		users:      users,
		tokenMgr:   tokenMgr,
		bcryptCost: cfg.BcryptCost,
	}, nil
}

// Signup creates a new account and returns it with a fresh token.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*domain.User, string, time.Time, error) {
	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, "", time.Time{}, apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		Age:          input.Age,
		Country:      input.Country,
		Passport:     input.Passport,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.Issue(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password collapse to the same error so callers cannot tell them apart.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, auth.ErrInvalidCredentials
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, auth.ErrInvalidCredentials
	}

	token, exp, err := s.tokenMgr.Issue(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
