package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/signaidy/nexus-standalone/internal/auth"
	"github.com/signaidy/nexus-standalone/internal/config"
	"github.com/signaidy/nexus-standalone/internal/domain"
	apperrors "github.com/signaidy/nexus-standalone/pkg/util/errorutil"
)

// memoryUserRepository is an in-memory stand-in for the pgx-backed store.
type memoryUserRepository struct {
	byEmail map[string]*domain.User
	nextID  int64
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{byEmail: map[string]*domain.User{}, nextID: 1}
}

func (r *memoryUserRepository) Create(_ context.Context, user *domain.User) error {
	user.ID = r.nextID
	r.nextID++
	r.byEmail[user.Email] = user
	return nil
}

func (r *memoryUserRepository) Update(_ context.Context, user *domain.User) error {
	r.byEmail[user.Email] = user
	return nil
}

func (r *memoryUserRepository) Delete(_ context.Context, id int64) error {
	for email, user := range r.byEmail {
		if user.ID == id {
			delete(r.byEmail, email)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *memoryUserRepository) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, user := range r.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (r *memoryUserRepository) List(_ context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(r.byEmail))
	for _, user := range r.byEmail {
		users = append(users, *user)
	}
	return users, nil
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:       base64.StdEncoding.EncodeToString([]byte("01234567890123456789012345678901")),
		TokenTTLMinutes: 60,
		BcryptCost:      4,
	}
}

func newTestAuthService(t *testing.T) (*AuthService, *memoryUserRepository) {
	t.Helper()
	repo := newMemoryUserRepository()
	svc, err := NewAuthService(testAuthConfig(), repo)
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}
	return svc, repo
}

func TestNewAuthServiceRequiresSecret(t *testing.T) {
	cfg := testAuthConfig()
	cfg.JWTSecret = ""
	if _, err := NewAuthService(cfg, newMemoryUserRepository()); err == nil {
		t.Fatal("expected error when signing secret is absent")
	}
}

func TestSignupThenLogin(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	user, token, exp, err := svc.Signup(ctx, SignupInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "s3cret",
		Age:       36,
		Country:   "GB",
		Passport:  "P-100",
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("signup should persist the user")
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("new accounts get the USER role, got %q", user.Role)
	}
	if user.PasswordHash == "s3cret" {
		t.Fatal("password must not be stored in plaintext")
	}
	if token == "" || exp.IsZero() {
		t.Fatal("signup should issue a token with an expiry")
	}
	if !svc.TokenManager().IsValid(token, user) {
		t.Fatal("signup token should validate for the new user")
	}

	loggedIn, loginToken, _, err := svc.Login(ctx, "ada@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if loggedIn.Email != user.Email {
		t.Fatalf("login returned %q, want %q", loggedIn.Email, user.Email)
	}
	if !svc.TokenManager().IsValid(loginToken, loggedIn) {
		t.Fatal("login token should validate")
	}

	if _, ok := repo.byEmail["ada@example.com"]; !ok {
		t.Fatal("user missing from the store after signup")
	}
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	input := SignupInput{Email: "dup@example.com", Password: "pw"}
	if _, _, _, err := svc.Signup(ctx, input); err != nil {
		t.Fatalf("first Signup: %v", err)
	}

	_, _, _, err := svc.Signup(ctx, input)
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "CONFLICT" {
		t.Fatalf("expected CONFLICT for duplicate email, got %v", err)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, _, _, err := svc.Signup(ctx, SignupInput{Email: "ada@example.com", Password: "s3cret"}); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	_, _, _, unknownErr := svc.Login(ctx, "nobody@example.com", "s3cret")
	_, _, _, wrongErr := svc.Login(ctx, "ada@example.com", "wrong")

	if !errors.Is(unknownErr, auth.ErrInvalidCredentials) {
		t.Fatalf("unknown email: got %v, want ErrInvalidCredentials", unknownErr)
	}
	if !errors.Is(wrongErr, auth.ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v, want ErrInvalidCredentials", wrongErr)
	}
	// Identical errors keep the failure mode unobservable to the caller.
	if unknownErr.Error() != wrongErr.Error() {
		t.Fatalf("failure modes leak: %q vs %q", unknownErr.Error(), wrongErr.Error())
	}
}
