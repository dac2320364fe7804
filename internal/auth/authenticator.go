package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/signaidy/nexus-standalone/internal/domain"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller for the current request.
type Principal struct {
	User *domain.User
}

// UserLookup resolves a user by login subject. Implemented by the user
// repository; narrow so the authenticator can be tested without a store.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Authenticator binds an identity to the request when a valid bearer token
// is presented. It never rejects a request itself; routes that require an
// identity are gated by the policy middleware afterwards.
type Authenticator struct {
	tokens *TokenManager
	users  UserLookup
}

// NewAuthenticator constructs the middleware.
func NewAuthenticator(tokens *TokenManager, users UserLookup) *Authenticator {
	return &Authenticator{tokens: tokens, users: users}
}

// Handle inspects the Authorization header and, when the bearer token is
// valid, stores a Principal in the request-scoped locals. Every branch
// falls through to the next handler exactly once.
func (a *Authenticator) Handle(c *fiber.Ctx) error {
	// Idempotent: an identity established earlier in the chain is never
	// overwritten or cleared, even by an invalid header.
	if _, ok := PrincipalFromContext(c); ok {
		return c.Next()
	}

	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return c.Next()
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return c.Next()
	}
	token := strings.TrimSpace(parts[1])

	subject, err := a.tokens.Subject(token)
	if err != nil || subject == "" {
		return c.Next()
	}

	// Any lookup failure is treated the same as an unknown subject: the
	// request continues unauthenticated.
	user, err := a.users.GetByEmail(c.Context(), subject)
	if err != nil || user == nil {
		return c.Next()
	}

	if a.tokens.IsValid(token, user) {
		c.Locals(principalKey, &Principal{User: user})
	}
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated caller, if any.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
