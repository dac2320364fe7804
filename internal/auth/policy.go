package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/signaidy/nexus-standalone/internal/domain"
	apperrors "github.com/signaidy/nexus-standalone/pkg/util/errorutil"
)

// Access tags a route rule as open or requiring an authenticated caller.
type Access int

const (
	// Public routes are served without an identity.
	Public Access = iota
	// Protected routes require a Principal established by the Authenticator.
	Protected
)

// AnyMethod matches every HTTP method in a rule.
const AnyMethod = "*"

// Rule maps an HTTP method and path pattern to an access level. Patterns
// are either exact paths or a prefix followed by "/**", which also matches
// the bare prefix itself.
type Rule struct {
	Method  string
	Pattern string
	Access  Access
}

// Policy is an ordered rule table evaluated top to bottom, first match
// wins. Requests matching no rule are protected.
type Policy struct {
	rules []Rule
}

// NewPolicy builds a policy from an ordered rule list.
func NewPolicy(rules []Rule) *Policy {
	return &Policy{rules: rules}
}

// DefaultPolicy is the canonical route table. Health, auth, and CORS
// preflight are open; catalog reads are open; the deactivation and
// cancellation sub-paths stay open so emailed cancellation links work
// without a session. Everything else requires authentication.
func DefaultPolicy() *Policy {
	return NewPolicy([]Rule{
		{Method: fiber.MethodGet, Pattern: "/healthz/**", Access: Public},
		{Method: AnyMethod, Pattern: "/auth/**", Access: Public},
		{Method: fiber.MethodOptions, Pattern: "/**", Access: Public},
		{Method: fiber.MethodGet, Pattern: "/aboutus/**", Access: Public},
		{Method: fiber.MethodGet, Pattern: "/flights/**", Access: Public},
		{Method: fiber.MethodGet, Pattern: "/reservations/**", Access: Public},
		{Method: fiber.MethodPut, Pattern: "/flights/deactivateTicket/**", Access: Public},
		{Method: fiber.MethodPut, Pattern: "/flights/deactivate/**", Access: Public},
		{Method: fiber.MethodPut, Pattern: "/reservations/cancel/**", Access: Public},
		{Method: fiber.MethodPut, Pattern: "/reservations/cancelHotel/**", Access: Public},
	})
}

// Access returns the access level for a method and path.
func (p *Policy) Access(method, path string) Access {
	for _, rule := range p.rules {
		if rule.matches(method, path) {
			return rule.Access
		}
	}
	return Protected
}

// Decide reports whether a request may proceed. Pure: no side effects,
// deterministic in its arguments.
func (p *Policy) Decide(method, path string, authenticated bool) bool {
	if p.Access(method, path) == Public {
		return true
	}
	return authenticated
}

func (r Rule) matches(method, path string) bool {
	if r.Method != AnyMethod && !strings.EqualFold(r.Method, method) {
		return false
	}
	if base, ok := strings.CutSuffix(r.Pattern, "/**"); ok {
		if base == "" {
			return true
		}
		return path == base || strings.HasPrefix(path, base+"/")
	}
	return path == r.Pattern
}

// Enforce rejects unauthenticated requests to protected routes before the
// business handler runs.
func Enforce(policy *Policy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, authenticated := PrincipalFromContext(c)
		if !policy.Decide(c.Method(), c.Path(), authenticated) {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}

// RequireAdmin gates a handler behind the ADMIN role. Used on top of the
// policy table for admin-only mutations.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.User == nil {
			return apperrors.NewUnauthorized("authentication required")
		}
		if principal.User.Role != domain.RoleAdmin {
			return apperrors.NewForbidden("admin role required")
		}
		return c.Next()
	}
}
